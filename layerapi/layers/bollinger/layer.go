// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package bollinger

import (
	"fmt"
	"image/color"
	"log"
	"strconv"

	"candlechart/chartplot"
	"candlechart/chartval"
	"candlechart/chartval/calc"
	"candlechart/layerapi"
	"candlechart/layerapi/properties"
)

const Id = "bollinger"

// Layer draws Bollinger Bands: for every sliding window of periods
// consecutive bars, the mean and the sample standard deviation of the
// representative prices yield an {upper, median, lower} triple, and
// consecutive triples are connected with line segments.
type Layer struct {
	periods    int
	deviations float64
	lineColor  color.NRGBA
}

type bandPoint struct {
	upper  float64
	median float64
	lower  float64
}

func New(periods int, deviations float64, lineColor color.NRGBA) *Layer {
	return &Layer{periods: periods, deviations: deviations, lineColor: lineColor}
}

func NewLayer() layerapi.Layer {
	return &Layer{periods: 20, deviations: 2}
}

func (l *Layer) GetProperties() map[string]string {
	return map[string]string{
		"Time Units": strconv.Itoa(l.periods),
		"Deviations": strconv.FormatFloat(l.deviations, 'f', -1, 64),
	}
}

func (l *Layer) SetProperties(prop map[string]string) {
	for key, value := range prop {
		switch key {
		case "Time Units":
			properties.SetPositiveValue(&l.periods, value)
		case "Deviations":
			properties.SetPositiveFloatValue(&l.deviations, value)
		default:
			log.Printf("Unknown property %s was ignored.", key)
		}
	}
}

func (l *Layer) SetColor(c color.NRGBA) {
	l.lineColor = c
}

func (l *Layer) Apply(c *chartplot.Canvas, bars []chartval.Bar) {
	// A series shorter than the window produces no bands.
	if len(bars) <= l.periods {
		return
	}
	bands := make([]bandPoint, 0, len(bars)-l.periods)
	for i := l.periods; i < len(bars); i++ {
		window := calc.RepresentativeList(bars[i-l.periods : i])
		mean := calc.Mean(window)
		scaledDev := calc.SampleStdDev(window) * l.deviations
		bands = append(bands, bandPoint{
			upper:  mean + scaledDev,
			median: mean,
			lower:  mean - scaledDev,
		})
	}

	// Shift band positions forward by half a period so that each
	// window sits over the trailing span it was computed from.
	timeSpan := c.TimeSpan()
	offset := int64((float64(l.periods) + 0.5) * float64(timeSpan) / float64(len(bars)))
	for i := 0; i+1 < len(bands); i++ {
		t := int64(i)*timeSpan/int64(len(bars)) + offset
		tNext := int64(i+1)*timeSpan/int64(len(bars)) + offset

		c.Line(c.DataToPx(bands[i].upper, t), c.DataToPx(bands[i+1].upper, tNext), l.lineColor)
		c.Line(c.DataToPx(bands[i].median, t), c.DataToPx(bands[i+1].median, tNext), l.lineColor)
		c.Line(c.DataToPx(bands[i].lower, t), c.DataToPx(bands[i+1].lower, tNext), l.lineColor)
	}
}

func (l *Layer) LegendColor() (color.NRGBA, bool) {
	return l.lineColor, true
}

func (l *Layer) Name() string {
	return fmt.Sprintf("BB(%d, %g)", l.periods, l.deviations)
}
