// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

// Summary holds aggregate values of an entire bar series. It is
// derived once per render call and not modified afterwards.
type Summary struct {
	High      float64
	Low       float64
	LastClose float64
	Range     float64
}

// Summarize scans the series once. NaN inputs are a precondition
// violation, there is no special handling for them.
func Summarize(bars []Bar) Summary {
	if len(bars) == 0 {
		return Summary{}
	}
	s := Summary{
		High:      bars[0].High,
		Low:       bars[0].Low,
		LastClose: bars[len(bars)-1].Close,
	}
	for _, b := range bars[1:] {
		if b.High > s.High {
			s.High = b.High
		}
		if b.Low < s.Low {
			s.Low = b.Low
		}
	}
	s.Range = s.High - s.Low
	return s
}
