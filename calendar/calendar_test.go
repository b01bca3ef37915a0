// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func nyTime(t *testing.T, value string) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := time.ParseInLocation("2006-01-02 15:04", value, loc)
	if err != nil {
		t.Fatal(err)
	}
	return parsed
}

func TestIsTradingDay(t *testing.T) {
	c := NewUSBankCalendar()

	// A regular Wednesday.
	assert.True(t, c.IsTradingDay(nyTime(t, "2024-06-12 12:00")))
	// Saturday and Sunday.
	assert.False(t, c.IsTradingDay(nyTime(t, "2024-06-15 12:00")))
	assert.False(t, c.IsTradingDay(nyTime(t, "2024-06-16 12:00")))
	// Independence Day.
	assert.False(t, c.IsTradingDay(nyTime(t, "2024-07-04 12:00")))
}

func TestInSession(t *testing.T) {
	c := NewUSBankCalendar()

	assert.True(t, c.InSession(nyTime(t, "2024-06-12 09:30")))
	assert.True(t, c.InSession(nyTime(t, "2024-06-12 12:00")))
	assert.False(t, c.InSession(nyTime(t, "2024-06-12 09:29")))
	assert.False(t, c.InSession(nyTime(t, "2024-06-12 16:00")))
	assert.False(t, c.InSession(nyTime(t, "2024-06-15 12:00")))
}

func TestInSessionConvertsLocation(t *testing.T) {
	c := NewUSBankCalendar()

	// 18:00 UTC on a trading day is 14:00 ET during daylight saving.
	assert.True(t, c.InSession(time.Date(2024, 6, 12, 18, 0, 0, 0, time.UTC)))
	// 02:00 UTC is 22:00 ET the previous day.
	assert.False(t, c.InSession(time.Date(2024, 6, 12, 2, 0, 0, 0, time.UTC)))
}
