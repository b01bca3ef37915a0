// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"image/color"

	"candlechart/chartplot"
	"candlechart/chartval"
	"candlechart/layerapi"
)

// AxisOptions configures one axis of the chart grid.
type AxisOptions struct {
	// LineInterval is the data-space distance between grid lines:
	// a price difference for the vertical axis, seconds for the
	// horizontal axis. Zero disables the grid lines of this axis.
	LineInterval float64
	LineColor    color.NRGBA
	LabelColor   color.NRGBA
	// LabelFrequency draws a label at every n-th grid line. Zero
	// disables labels.
	LabelFrequency int
}

// RenderOptions is the complete configuration of a render call. The
// With* methods return updated copies, the options passed into a
// renderer are never mutated.
type RenderOptions struct {
	Title             string
	TextColor         color.NRGBA
	ValuePrefix       string
	ValueSuffix       string
	TimeUnits         int64 // seconds represented by each bar
	HAxis             AxisOptions
	VAxis             AxisOptions
	DownColor         color.NRGBA
	UpColor           color.NRGBA
	CurrentValueColor color.NRGBA
	Background        color.NRGBA
	Width             int
	Height            int
	Margin            chartplot.Margin
	Layers            []layerapi.Layer
}

const DefaultWidth = 1280
const DefaultHeight = 720
const DefaultTimeUnits = 3600 // 1 hour

func NewRenderOptions() RenderOptions {
	o := RenderOptions{
		TimeUnits: DefaultTimeUnits,
		DownColor: chartval.ColorFromRGBA(0xFF0000FF),
		UpColor:   chartval.ColorFromRGBA(0x00FF00FF),
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Margin:    chartplot.Margin{Top: 40, Bottom: 30, Left: 80, Right: 90},
	}
	return o.WithTheme(NewDarkTheme())
}

func (o RenderOptions) WithTitle(title string, c color.NRGBA) RenderOptions {
	o.Title = title
	o.TextColor = c
	return o
}

func (o RenderOptions) WithValueLabels(prefix, suffix string) RenderOptions {
	o.ValuePrefix = prefix
	o.ValueSuffix = suffix
	return o
}

func (o RenderOptions) WithTimeUnits(seconds int64) RenderOptions {
	o.TimeUnits = seconds
	return o
}

func (o RenderOptions) WithAxisOptions(h, v AxisOptions) RenderOptions {
	o.HAxis = h
	o.VAxis = v
	return o
}

func (o RenderOptions) WithCandleColors(down, up color.NRGBA) RenderOptions {
	o.DownColor = down
	o.UpColor = up
	return o
}

func (o RenderOptions) WithCurrentValueColor(c color.NRGBA) RenderOptions {
	o.CurrentValueColor = c
	return o
}

func (o RenderOptions) WithBackground(c color.NRGBA) RenderOptions {
	o.Background = c
	return o
}

func (o RenderOptions) WithSize(width, height int) RenderOptions {
	o.Width = width
	o.Height = height
	return o
}

func (o RenderOptions) WithMargin(m chartplot.Margin) RenderOptions {
	o.Margin = m
	return o
}

// WithLayer appends an extension layer. Extension layers run after
// the built-in ones, in registration order.
func (o RenderOptions) WithLayer(l layerapi.Layer) RenderOptions {
	layers := make([]layerapi.Layer, 0, len(o.Layers)+1)
	layers = append(layers, o.Layers...)
	o.Layers = append(layers, l)
	return o
}

func (o RenderOptions) WithTheme(t Theme) RenderOptions {
	o.Background = t.Background
	o.TextColor = t.Text
	o.DownColor = t.CandleDownColor
	o.UpColor = t.CandleUpColor
	o.CurrentValueColor = t.QuoteColor
	o.HAxis.LineColor = t.GridColor
	o.HAxis.LabelColor = t.AxesTextColor
	o.VAxis.LineColor = t.GridColor
	o.VAxis.LabelColor = t.AxesTextColor
	return o
}
