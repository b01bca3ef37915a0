// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"github.com/barkimedes/go-deepcopy"

	"candlechart/chartval"
	"candlechart/layerapi"
	"candlechart/layerapi/layers"
)

// ChartConfig is the stored, serializable form of the render
// configuration. Layers are stored by registry id plus their string
// properties, mirroring how they are created.
type ChartConfig struct {
	LightTheme  bool   `yaml:",omitempty"`
	Title       string `yaml:",omitempty"`
	Width       int
	Height      int
	TimeUnits   int64
	ValuePrefix string        `yaml:",omitempty"`
	ValueSuffix string        `yaml:",omitempty"`
	Layers      []LayerConfig `yaml:",omitempty"`
}

type LayerConfig struct {
	Id         string
	Color      uint32            `yaml:",omitempty"`
	Properties map[string]string `yaml:",omitempty"`
}

func NewChartConfig() ChartConfig {
	return ChartConfig{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		TimeUnits: DefaultTimeUnits,
	}
}

func (c *ChartConfig) Sanitize() {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.TimeUnits <= 0 {
		c.TimeUnits = DefaultTimeUnits
	}
}

func (c *ChartConfig) deepCopy() ChartConfig {
	copied, err := deepcopy.Anything(c)
	if err != nil {
		panic(err)
	}
	return *copied.(*ChartConfig)
}

// BuildOptions turns the stored form into render options, creating
// the configured extension layers through the registry.
func (c ChartConfig) BuildOptions() RenderOptions {
	o := NewRenderOptions()
	if c.LightTheme {
		o = o.WithTheme(NewLightTheme())
	}
	o = o.WithTitle(c.Title, o.TextColor).
		WithSize(c.Width, c.Height).
		WithTimeUnits(c.TimeUnits).
		WithValueLabels(c.ValuePrefix, c.ValueSuffix)
	for _, lc := range c.Layers {
		o = o.WithLayer(layers.Create(layerapi.LayerId(lc.Id), lc.Properties, chartval.ColorFromRGBA(lc.Color)))
	}
	return o
}
