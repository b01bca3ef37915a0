// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"candlechart/chartplot"
	"candlechart/chartval"
	"candlechart/config"
	"candlechart/fonts/ascii"
)

// Built-in layers run before any user-registered extension, in a
// fixed order: grid lines, candles, current-value markers. Later
// layers overwrite earlier ones at shared pixels.

type gridLayer struct {
	opts config.RenderOptions
}

func (l gridLayer) Apply(c *chartplot.Canvas, bars []chartval.Bar) {
	area := c.PlotArea()

	// Horizontal lines at multiples of the price interval.
	interval := l.opts.VAxis.LineInterval
	if interval > chartval.NearZero && c.High()-c.Low() > 0 {
		base := math.Ceil(c.Low()/interval) * interval
		for i := 0; ; i++ {
			v := base + float64(i)*interval
			if v > c.High()+chartval.NearZero {
				break
			}
			y := c.DataToPx(v, 0).Y
			c.Line(image.Pt(area.Min.X, y), image.Pt(area.Max.X-1, y), l.opts.VAxis.LineColor)
			if l.opts.VAxis.LabelFrequency > 0 && i%l.opts.VAxis.LabelFrequency == 0 {
				l.priceLabel(c, v, y)
			}
		}
	}

	// Vertical lines at multiples of the time interval.
	interval = l.opts.HAxis.LineInterval
	if interval > chartval.NearZero {
		for i := 1; ; i++ {
			t := int64(float64(i) * interval)
			if t >= c.TimeSpan() {
				break
			}
			x := c.DataToPx(0, t).X
			c.Line(image.Pt(x, area.Min.Y), image.Pt(x, area.Max.Y-1), l.opts.HAxis.LineColor)
			if l.opts.HAxis.LabelFrequency > 0 && (i-1)%l.opts.HAxis.LabelFrequency == 0 {
				l.timeLabel(c, t, x)
			}
		}
	}
}

// priceLabel draws a right-aligned label in the left margin,
// truncated to the margin width.
func (l gridLayer) priceLabel(c *chartplot.Canvas, v float64, y int) {
	maxChars := (c.Margin().Left - 2) / ascii.GlyphWidth
	label := truncateLabel(chartval.FormatPrice(v, l.opts.ValuePrefix, l.opts.ValueSuffix), maxChars)
	x := c.PlotArea().Min.X - 2 - chartplot.TextWidth(label)
	if x < 0 {
		x = 0
	}
	c.Text(image.Pt(x, y-ascii.GlyphHeight/2), label, l.opts.VAxis.LabelColor)
}

// timeLabel draws a centered label in the bottom margin.
func (l gridLayer) timeLabel(c *chartplot.Canvas, t int64, x int) {
	label := formatElapsed(t)
	c.Text(image.Pt(x-chartplot.TextWidth(label)/2, c.PlotArea().Max.Y+2), label, l.opts.HAxis.LabelColor)
}

func (l gridLayer) LegendColor() (color.NRGBA, bool) {
	return color.NRGBA{}, false
}

func (l gridLayer) Name() string {
	return "Grid"
}

type candleLayer struct {
	opts config.RenderOptions
}

func (l candleLayer) Apply(c *chartplot.Canvas, bars []chartval.Bar) {
	area := c.PlotArea()
	_, wickWidth, inset := chartplot.CandleWidths(area.Dx(), len(bars))
	timeUnit := c.TimeSpan() / int64(len(bars))

	for i, b := range bars {
		col := l.opts.UpColor
		if !chartval.IsGreenCandle(b.Open, b.Close) {
			col = l.opts.DownColor
		}
		x0 := c.DataToPx(0, int64(i)*timeUnit).X
		x1 := c.DataToPx(0, int64(i+1)*timeUnit).X

		// Wick first, centered, spanning low to high.
		yHigh := c.DataToPx(b.High, 0).Y
		yLow := c.DataToPx(b.Low, 0).Y
		cx := (x0 + x1) / 2
		c.FillRect(image.Rect(cx-wickWidth/2, yHigh, cx-wickWidth/2+wickWidth, yLow+1), col)

		// Body spanning open to close with a minimum height of 1 px.
		yTop := c.DataToPx(math.Max(b.Open, b.Close), 0).Y
		yBottom := c.DataToPx(math.Min(b.Open, b.Close), 0).Y
		if yBottom == yTop {
			yBottom++
		}
		c.FillRect(image.Rect(x0+inset, yTop, x1-inset, yBottom), col)
	}
}

func (l candleLayer) LegendColor() (color.NRGBA, bool) {
	return color.NRGBA{}, false
}

func (l candleLayer) Name() string {
	return "OHLC Candles"
}

// quoteLayer marks the most recent close price: a horizontal line
// across the drawable width, a diamond at the last bar and a label in
// the right margin.
type quoteLayer struct {
	opts config.RenderOptions
}

func (l quoteLayer) Apply(c *chartplot.Canvas, bars []chartval.Bar) {
	lastClose := bars[len(bars)-1].Close
	area := c.PlotArea()
	y := c.DataToPx(lastClose, 0).Y
	col := l.opts.CurrentValueColor

	c.Line(image.Pt(area.Min.X, y), image.Pt(area.Max.X-1, y), col)

	// Diamond at the center of the last bar.
	timeUnit := c.TimeSpan() / int64(len(bars))
	cx := c.DataToPx(0, int64(len(bars)-1)*timeUnit+timeUnit/2).X
	const radius = 3
	for dy := -radius; dy <= radius; dy++ {
		span := radius - int(math.Abs(float64(dy)))
		c.Line(image.Pt(cx-span, y+dy), image.Pt(cx+span, y+dy), col)
	}

	label := chartval.FormatPrice(lastClose, l.opts.ValuePrefix, l.opts.ValueSuffix)
	label = truncateLabel(label, (c.Margin().Right-2)/ascii.GlyphWidth)
	c.Text(image.Pt(area.Max.X+2, y-ascii.GlyphHeight/2), label, col)
}

func (l quoteLayer) LegendColor() (color.NRGBA, bool) {
	return l.opts.CurrentValueColor, true
}

func (l quoteLayer) Name() string {
	return "Current Value"
}

func truncateLabel(s string, maxChars int) string {
	if maxChars < 0 {
		maxChars = 0
	}
	r := []rune(s)
	if len(r) <= maxChars {
		return s
	}
	return string(r[:maxChars])
}

// formatElapsed renders an elapsed time in seconds compactly for the
// time axis, using the largest unit that divides it evenly.
func formatElapsed(t int64) string {
	switch {
	case t%86400 == 0:
		return fmt.Sprintf("%dd", t/86400)
	case t%3600 == 0:
		return fmt.Sprintf("%dh", t/3600)
	case t%60 == 0:
		return fmt.Sprintf("%dm", t/60)
	default:
		return fmt.Sprintf("%ds", t)
	}
}
