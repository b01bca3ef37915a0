// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

// BankCalendar answers whether a point in time falls into a regular
// US equity trading session.
type BankCalendar struct {
	bankLocation *time.Location
	calendar     *cal.BusinessCalendar
	openTime     bankTime
	closeTime    bankTime
}

type bankTime struct {
	hours   int
	minutes int
}

func NewUSBankCalendar() BankCalendar {
	// NYSE uses ET, which can be either EST or EDT.
	// Luckily, changing to/from daylight saving time does not occur during market hours.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic("NYSE time location not supported")
	}
	c := cal.NewBusinessCalendar()
	// Source for bank holidays: https://www.federalreserve.gov/aboutthefed/k8.htm
	c.AddHoliday(
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ColumbusDay,
		us.VeteransDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	)
	c.Cacheable = true
	return BankCalendar{
		calendar:     c,
		bankLocation: loc,
		openTime:     bankTime{hours: 9, minutes: 30},
		closeTime:    bankTime{hours: 16, minutes: 0},
	}
}

func (b BankCalendar) IsTradingDay(t time.Time) bool {
	return b.calendar.IsWorkday(t.In(b.bankLocation))
}

// InSession reports whether t is within regular trading hours of a
// trading day. Partial trading days are treated like full ones; the
// session shading only needs day granularity precision.
func (b BankCalendar) InSession(t time.Time) bool {
	day := t.In(b.bankLocation)
	if !b.IsTradingDay(day) {
		return false
	}
	y, m, d := day.Date()
	open := time.Date(y, m, d, b.openTime.hours, b.openTime.minutes, 0, 0, b.bankLocation)
	close := time.Date(y, m, d, b.closeTime.hours, b.closeTime.minutes, 0, 0, b.bankLocation)
	return !day.Before(open) && day.Before(close)
}
