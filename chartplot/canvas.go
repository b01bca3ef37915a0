// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"image"
	"image/color"
	"math"
)

// Note that this is, by design, not a generic raster library.
// It is specifically for stock market charts.
// X axis is always elapsed time, Y axis is always price.

type Margin struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Canvas owns the pixel buffer of a single render pass together with
// its geometry and the price/time ranges of the plotted series. It is
// created at the start of a render call, mutated by every layer in
// sequence and read once by the codec at the end.
type Canvas struct {
	buf        []uint8 // RGBA, row-major
	width      int
	height     int
	margin     Margin
	high       float64
	low        float64
	timeSpan   int64 // seconds
	background color.NRGBA
	proj       projection
}

// Projection f(v)=m*v+b, split per axis like the subplot projection
// of a windowed chart.
type projection struct {
	mX float64
	mY float64
	bX float64
	bY float64
}

func (proj projection) getXpos(elapsed float64) float64 {
	return proj.mX*elapsed + proj.bX
}

func (proj projection) getYpos(v float64) float64 {
	return proj.mY*v + proj.bY
}

// NewCanvas allocates the buffer and fills it with the background
// colour. high/low come from the aggregate summary of the series,
// timeSpan is the total elapsed time covered by the series in
// seconds.
func NewCanvas(width, height int, m Margin, high, low float64, timeSpan int64, background color.NRGBA) *Canvas {
	c := &Canvas{
		buf:        make([]uint8, width*height*4),
		width:      width,
		height:     height,
		margin:     m,
		high:       high,
		low:        low,
		timeSpan:   timeSpan,
		background: background,
	}
	drawableW := float64(width - m.Left - m.Right)
	drawableH := float64(height - m.Top - m.Bottom)
	c.proj.mX = drawableW / float64(timeSpan)
	c.proj.bX = float64(m.Left)
	if high-low > 0 {
		// Y values decrease as prices increase.
		c.proj.mY = -drawableH / (high - low)
		c.proj.bY = float64(m.Top) + high*drawableH/(high-low)
	} else {
		// A flat series maps every price to the vertical middle.
		c.proj.mY = 0
		c.proj.bY = float64(m.Top) + drawableH/2
	}
	for i := 0; i < len(c.buf); i += 4 {
		c.buf[i] = background.R
		c.buf[i+1] = background.G
		c.buf[i+2] = background.B
		c.buf[i+3] = background.A
	}
	return c
}

func (c *Canvas) Width() int              { return c.width }
func (c *Canvas) Height() int             { return c.height }
func (c *Canvas) Margin() Margin          { return c.margin }
func (c *Canvas) High() float64           { return c.high }
func (c *Canvas) Low() float64            { return c.low }
func (c *Canvas) TimeSpan() int64         { return c.timeSpan }
func (c *Canvas) Background() color.NRGBA { return c.background }

// PlotArea is the drawable rectangle inside the margins.
func (c *Canvas) PlotArea() image.Rectangle {
	return image.Rectangle{
		Min: image.Point{X: c.margin.Left, Y: c.margin.Top},
		Max: image.Point{X: c.width - c.margin.Right, Y: c.height - c.margin.Bottom},
	}
}

// DataToPx maps a price and an elapsed time in seconds to a pixel
// position. The X position is clamped to the drawable rectangle.
func (c *Canvas) DataToPx(price float64, elapsed int64) image.Point {
	x := int(math.Round(c.proj.getXpos(float64(elapsed))))
	if x < c.margin.Left {
		x = c.margin.Left
	}
	if x > c.width-c.margin.Right {
		x = c.width - c.margin.Right
	}
	y := int(math.Round(c.proj.getYpos(price)))
	return image.Point{X: x, Y: y}
}

// At returns the current colour of a pixel. Out-of-bounds positions
// read as zero.
func (c *Canvas) At(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return color.NRGBA{}
	}
	i := (y*c.width + x) * 4
	return color.NRGBA{R: c.buf[i], G: c.buf[i+1], B: c.buf[i+2], A: c.buf[i+3]}
}

// Image exposes the buffer to the image codec without copying.
func (c *Canvas) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    c.buf,
		Stride: c.width * 4,
		Rect:   image.Rect(0, 0, c.width, c.height),
	}
}

// Pix returns the raw pixel buffer, mainly for byte-level comparison.
func (c *Canvas) Pix() []uint8 {
	return c.buf
}
