// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import "image/color"

type Theme struct {
	Background      color.NRGBA
	GridColor       color.NRGBA
	AxesTextColor   color.NRGBA
	Text            color.NRGBA
	CandleUpColor   color.NRGBA
	CandleDownColor color.NRGBA
	QuoteColor      color.NRGBA
}

func NewDarkTheme() Theme {
	return Theme{
		Background:      color.NRGBA{R: 20, G: 20, B: 20, A: 255},
		GridColor:       color.NRGBA{R: 60, G: 60, B: 60, A: 255},
		AxesTextColor:   color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Text:            color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		CandleUpColor:   color.NRGBA{R: 0, G: 255, B: 0, A: 255},
		CandleDownColor: color.NRGBA{R: 255, G: 0, B: 0, A: 255},
		QuoteColor:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

func NewLightTheme() Theme {
	return Theme{
		Background:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		GridColor:       color.NRGBA{R: 230, G: 230, B: 230, A: 255},
		AxesTextColor:   color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		Text:            color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		CandleUpColor:   color.NRGBA{R: 0, G: 255, B: 0, A: 255},
		CandleDownColor: color.NRGBA{R: 255, G: 0, B: 0, A: 255},
		QuoteColor:      color.NRGBA{R: 0, G: 0, B: 0, A: 255},
	}
}
