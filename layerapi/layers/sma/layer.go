// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package sma

import (
	"fmt"
	"image/color"
	"log"
	"strconv"

	"github.com/cinar/indicator"

	"candlechart/chartplot"
	"candlechart/chartval"
	"candlechart/layerapi"
	"candlechart/layerapi/properties"
)

const Id = "sma"

// Layer draws a simple moving average of the close prices as a
// single polyline through the bar centers.
type Layer struct {
	numPeriods int
	lineColor  color.NRGBA
}

func New(numPeriods int, lineColor color.NRGBA) *Layer {
	return &Layer{numPeriods: numPeriods, lineColor: lineColor}
}

func NewLayer() layerapi.Layer {
	return &Layer{numPeriods: 9}
}

func (l *Layer) GetProperties() map[string]string {
	return map[string]string{
		"Time Periods": strconv.Itoa(l.numPeriods),
	}
}

func (l *Layer) SetProperties(prop map[string]string) {
	for key, value := range prop {
		switch key {
		case "Time Periods":
			properties.SetPositiveValue(&l.numPeriods, value)
		default:
			log.Printf("Unknown property %s was ignored.", key)
		}
	}
}

func (l *Layer) SetColor(c color.NRGBA) {
	l.lineColor = c
}

func (l *Layer) Apply(c *chartplot.Canvas, bars []chartval.Bar) {
	if len(bars) < l.numPeriods {
		return
	}
	closePrices := make([]float64, len(bars))
	for i, b := range bars {
		closePrices[i] = b.Close
	}
	result := indicator.Sma(l.numPeriods, closePrices)

	timeSpan := c.TimeSpan()
	barCenter := func(i int) int64 {
		return int64((float64(i) + 0.5) * float64(timeSpan) / float64(len(bars)))
	}
	// Skip the warm-up values, they average over a partial window.
	for i := l.numPeriods - 1; i+1 < len(result); i++ {
		p1 := c.DataToPx(result[i], barCenter(i))
		p2 := c.DataToPx(result[i+1], barCenter(i+1))
		c.Line(p1, p2, l.lineColor)
	}
}

func (l *Layer) LegendColor() (color.NRGBA, bool) {
	return l.lineColor, true
}

func (l *Layer) Name() string {
	return fmt.Sprintf("SMA(%d)", l.numPeriods)
}
