// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package session

import (
	"image"
	"image/color"
	"log"
	"time"

	"candlechart/calendar"
	"candlechart/chartplot"
	"candlechart/chartval"
	"candlechart/layerapi"
)

const Id = "session"

// Height of the marker band at the bottom of the plot area.
const bandHeight = 3

// Layer marks bars whose timestamp falls outside regular US trading
// hours with a thin band at the bottom of the plot area. The series
// itself carries no timestamps, so the layer anchors the first bar at
// a configured start time and spaces the rest by the canvas time span.
type Layer struct {
	start      time.Time
	shadeColor color.NRGBA
	cal        calendar.BankCalendar
}

func New(start time.Time, shadeColor color.NRGBA) *Layer {
	return &Layer{
		start:      start,
		shadeColor: shadeColor,
		cal:        calendar.NewUSBankCalendar(),
	}
}

func NewLayer() layerapi.Layer {
	return New(time.Unix(0, 0).UTC(), color.NRGBA{R: 100, G: 100, B: 100, A: 255})
}

func (l *Layer) GetProperties() map[string]string {
	return map[string]string{
		"Start": l.start.Format(time.RFC3339),
	}
}

func (l *Layer) SetProperties(prop map[string]string) {
	for key, value := range prop {
		switch key {
		case "Start":
			if t, err := time.Parse(time.RFC3339, value); err == nil {
				l.start = t
			}
		default:
			log.Printf("Unknown property %s was ignored.", key)
		}
	}
}

func (l *Layer) SetColor(c color.NRGBA) {
	l.shadeColor = c
}

func (l *Layer) Apply(c *chartplot.Canvas, bars []chartval.Bar) {
	if len(bars) == 0 {
		return
	}
	area := c.PlotArea()
	timeUnit := c.TimeSpan() / int64(len(bars))
	for i := range bars {
		t := l.start.Add(time.Duration(int64(i)*timeUnit) * time.Second)
		if l.cal.InSession(t) {
			continue
		}
		x0 := c.DataToPx(0, int64(i)*timeUnit).X
		x1 := c.DataToPx(0, int64(i+1)*timeUnit).X
		c.FillRect(image.Rect(x0, area.Max.Y-bandHeight, x1, area.Max.Y), l.shadeColor)
	}
}

func (l *Layer) LegendColor() (color.NRGBA, bool) {
	return l.shadeColor, true
}

func (l *Layer) Name() string {
	return "Session(US)"
}
