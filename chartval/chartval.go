// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"errors"
	"fmt"
)

// Bar holds the open/high/low/close prices of a single time period.
// A series is ordered oldest first; the index of a bar implies its
// elapsed time (index times the configured time unit).
type Bar struct {
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// ErrEmptySeries is returned when a series contains no bars at all.
// Downstream width calculations divide by the series length, so this
// is checked explicitly before any canvas is allocated.
var ErrEmptySeries = errors.New("bar series is empty")

type Relation int

const (
	RelationOpenAboveHigh Relation = iota
	RelationCloseAboveHigh
	RelationLowAboveHigh
	RelationOpenBelowLow
	RelationCloseBelowLow
)

func (r Relation) String() string {
	switch r {
	case RelationOpenAboveHigh:
		return "open > high"
	case RelationCloseAboveHigh:
		return "close > high"
	case RelationLowAboveHigh:
		return "low > high"
	case RelationOpenBelowLow:
		return "open < low"
	case RelationCloseBelowLow:
		return "close < low"
	default:
		panic("unsupported relation")
	}
}

// ValidationError names the first ordering relation a bar violates.
type ValidationError struct {
	Index    int
	Violated Relation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("bar %d violates %s", e.Index, e.Violated)
}

// Validate checks every bar for low <= open <= high and
// low <= close <= high. Relations are checked in a fixed priority
// order per bar and the first violation wins; bars after a failing
// one are not checked.
func Validate(bars []Bar) error {
	if len(bars) == 0 {
		return ErrEmptySeries
	}
	for i, b := range bars {
		switch {
		case b.Open > b.High:
			return &ValidationError{Index: i, Violated: RelationOpenAboveHigh}
		case b.Close > b.High:
			return &ValidationError{Index: i, Violated: RelationCloseAboveHigh}
		case b.Low > b.High:
			return &ValidationError{Index: i, Violated: RelationLowAboveHigh}
		case b.Open < b.Low:
			return &ValidationError{Index: i, Violated: RelationOpenBelowLow}
		case b.Close < b.Low:
			return &ValidationError{Index: i, Violated: RelationCloseBelowLow}
		}
	}
	return nil
}
