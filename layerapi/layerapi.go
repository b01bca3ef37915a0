// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layerapi

import (
	"image/color"

	"candlechart/chartplot"
	"candlechart/chartval"
)

type LayerId string

// For sorting
type LayerList []LayerId

func (x LayerList) Len() int           { return len(x) }
func (x LayerList) Less(i, j int) bool { return x[i] < x[j] }
func (x LayerList) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }

// Layer is a self-contained drawing step. Layers run strictly in
// sequence and draw directly into the shared canvas, so a later layer
// overwrites earlier ones at shared pixel coordinates. A layer must
// not retain the canvas beyond its own Apply call.
type Layer interface {
	// Apply draws the layer. Layers requiring a minimum series
	// length draw nothing when the series is shorter; that is an
	// empty visual result, not an error.
	Apply(c *chartplot.Canvas, bars []chartval.Bar)
	// LegendColor reports the colour a legend entry would use, if
	// the layer has one.
	LegendColor() (color.NRGBA, bool)
	// Name returns a diagnostic label such as "BB(20, 2)".
	Name() string
}

// Configurable layers accept string-keyed properties, used when
// layers are instantiated from a stored configuration.
type Configurable interface {
	GetProperties() map[string]string
	SetProperties(map[string]string)
}
