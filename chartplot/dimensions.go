// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

// CandleWidths derives the candle geometry from the horizontal space
// available per bar. Wide bodies are inset by one pixel on each side
// to keep a visible gap between neighbouring candles; the wick always
// keeps a minimum width of one pixel.
func CandleWidths(drawableWidth, barCount int) (bodyWidth, wickWidth, inset int) {
	const minBodyWidth = 1
	const minWickWidth = 1

	bodyWidth = drawableWidth / barCount
	if bodyWidth < minBodyWidth {
		bodyWidth = minBodyWidth
	}
	wickWidth = bodyWidth / 16
	if wickWidth < minWickWidth {
		wickWidth = minWickWidth
	}
	if bodyWidth >= 3 {
		inset = 1
	}
	return
}
