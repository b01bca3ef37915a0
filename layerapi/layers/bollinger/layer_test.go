// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package bollinger

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"candlechart/chartplot"
	"candlechart/chartval"
)

var testBackground = color.NRGBA{R: 20, G: 20, B: 20, A: 255}

func newTestCanvas() *chartplot.Canvas {
	return chartplot.NewCanvas(
		200, 100,
		chartplot.Margin{Top: 10, Bottom: 10, Left: 10, Right: 10},
		120, 80,
		200,
		testBackground,
	)
}

func flatBars(n int, price float64) []chartval.Bar {
	bars := make([]chartval.Bar, n)
	for i := range bars {
		bars[i] = chartval.Bar{Open: price, High: price, Low: price, Close: price}
	}
	return bars
}

func TestApplyShortSeriesDrawsNothing(t *testing.T) {
	c := newTestCanvas()
	before := make([]uint8, len(c.Pix()))
	copy(before, c.Pix())

	l := New(20, 2, color.NRGBA{R: 255, G: 255, A: 255})
	l.Apply(c, flatBars(20, 100))

	assert.Equal(t, before, c.Pix())
}

func TestApplyLongSeriesDraws(t *testing.T) {
	c := newTestCanvas()
	ink := color.NRGBA{R: 255, G: 255, A: 255}

	l := New(5, 2, ink)
	l.Apply(c, flatBars(30, 100))

	assert.NotEmpty(t, pixels(c, ink))
}

func TestApplyFlatSeriesBandsCoincide(t *testing.T) {
	c := newTestCanvas()
	ink := color.NRGBA{R: 255, G: 255, A: 255}

	// A flat window has zero standard deviation, so all three bands
	// collapse onto the constant price.
	l := New(5, 2, ink)
	l.Apply(c, flatBars(30, 100))

	y := c.DataToPx(100, 0).Y
	for _, p := range pixels(c, ink) {
		assert.Equal(t, y, p[1])
	}
}

func TestProperties(t *testing.T) {
	l := NewLayer().(*Layer)

	l.SetProperties(map[string]string{"Time Units": "10", "Deviations": "1.5"})

	assert.Equal(t, map[string]string{"Time Units": "10", "Deviations": "1.5"}, l.GetProperties())
	assert.Equal(t, "BB(10, 1.5)", l.Name())
}

func TestPropertiesRejectInvalid(t *testing.T) {
	l := NewLayer().(*Layer)

	l.SetProperties(map[string]string{"Time Units": "-3", "Deviations": "bogus"})

	assert.Equal(t, map[string]string{"Time Units": "20", "Deviations": "2"}, l.GetProperties())
}

func TestLegendColor(t *testing.T) {
	ink := color.NRGBA{B: 255, A: 255}
	l := New(20, 2, ink)

	legend, ok := l.LegendColor()

	assert.True(t, ok)
	assert.Equal(t, ink, legend)
}

// pixels returns the coordinates of all pixels matching the given colour.
func pixels(c *chartplot.Canvas, match color.NRGBA) [][2]int {
	var result [][2]int
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.At(x, y) == match {
				result = append(result, [2]int{x, y})
			}
		}
	}
	return result
}
