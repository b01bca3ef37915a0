// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var red = color.NRGBA{R: 255, A: 255}
var green = color.NRGBA{G: 255, A: 255}

func TestSetPixelOverwrites(t *testing.T) {
	c := newTestCanvas()

	c.SetPixel(15, 15, red)
	c.SetPixel(15, 15, green)

	assert.Equal(t, green, c.At(15, 15))
}

func TestSetPixelTransparentSkips(t *testing.T) {
	c := newTestCanvas()

	c.SetPixel(15, 15, red)
	c.SetPixel(15, 15, color.NRGBA{R: 255, G: 255, B: 255, A: 0})

	assert.Equal(t, red, c.At(15, 15))
}

func TestSetPixelOutOfBounds(t *testing.T) {
	c := newTestCanvas()

	c.SetPixel(-1, 0, red)
	c.SetPixel(0, -1, red)
	c.SetPixel(100, 0, red)
	c.SetPixel(0, 80, red)

	assert.Equal(t, testBackground, c.At(0, 0))
}

func TestLineSinglePixel(t *testing.T) {
	c := newTestCanvas()

	c.Line(image.Pt(30, 30), image.Pt(30, 30), red)

	assert.Equal(t, red, c.At(30, 30))
	assert.Equal(t, testBackground, c.At(31, 30))
}

func TestLineHorizontal(t *testing.T) {
	c := newTestCanvas()

	c.Line(image.Pt(40, 20), image.Pt(20, 20), red)

	for x := 20; x <= 40; x++ {
		assert.Equal(t, red, c.At(x, 20))
	}
	assert.Equal(t, testBackground, c.At(19, 20))
	assert.Equal(t, testBackground, c.At(41, 20))
}

func TestLineVertical(t *testing.T) {
	c := newTestCanvas()

	c.Line(image.Pt(20, 20), image.Pt(20, 40), red)

	for y := 20; y <= 40; y++ {
		assert.Equal(t, red, c.At(20, y))
	}
}

func TestLineDiagonal(t *testing.T) {
	c := newTestCanvas()

	c.Line(image.Pt(20, 20), image.Pt(30, 30), red)

	// A 45 degree segment covers exactly one pixel per column.
	for i := 0; i <= 10; i++ {
		assert.Equal(t, red, c.At(20+i, 20+i))
	}
}

func TestLineSteep(t *testing.T) {
	c := newTestCanvas()

	c.Line(image.Pt(20, 20), image.Pt(22, 40), red)

	// Every row between the endpoints must be covered.
	for y := 20; y <= 40; y++ {
		covered := false
		for x := 20; x <= 22; x++ {
			if c.At(x, y) == red {
				covered = true
			}
		}
		assert.True(t, covered, "row %d not covered", y)
	}
}

func TestFillRect(t *testing.T) {
	c := newTestCanvas()

	c.FillRect(image.Rect(20, 20, 23, 22), red)

	for y := 20; y < 22; y++ {
		for x := 20; x < 23; x++ {
			assert.Equal(t, red, c.At(x, y))
		}
	}
	assert.Equal(t, testBackground, c.At(23, 20))
	assert.Equal(t, testBackground, c.At(20, 22))
}

func TestCandleWidths(t *testing.T) {
	body, wick, inset := CandleWidths(80, 10)
	assert.Equal(t, 8, body)
	assert.Equal(t, 1, wick)
	assert.Equal(t, 1, inset)

	body, wick, inset = CandleWidths(80, 100)
	assert.Equal(t, 1, body)
	assert.Equal(t, 1, wick)
	assert.Equal(t, 0, inset)

	body, wick, _ = CandleWidths(3200, 10)
	assert.Equal(t, 320, body)
	assert.Equal(t, 20, wick)
}
