// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"candlechart/chartplot"
	"candlechart/chartval"
	"candlechart/config"
	"candlechart/fonts/ascii"
	"candlechart/layerapi"
)

const chartFileName = "chart.png"

// Renderer turns a bar series into a chart image. Rendering is
// single-threaded and synchronous; one render call owns the pixel
// buffer for its entire duration and identical options and data
// always produce byte-identical output.
type Renderer struct {
	opts config.RenderOptions
	log  zerolog.Logger
}

func New(opts config.RenderOptions) *Renderer {
	return &Renderer{opts: opts, log: zerolog.Nop()}
}

// SetLogger enables timing diagnostics. Logging never affects control
// flow or output bytes.
func (r *Renderer) SetLogger(log zerolog.Logger) {
	r.log = log
}

// Render stages the chart in a temporary directory, invokes fn while
// the file still exists and removes the directory before returning,
// regardless of the outcome of fn. The first return value carries the
// result of fn, the second any validation or I/O failure of the
// render itself.
func (r *Renderer) Render(bars []chartval.Bar, fn func(path string) error) (fnErr error, err error) {
	dir, err := os.MkdirTemp("", config.AppName)
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, chartFileName)
	if err := r.renderToFile(bars, path); err != nil {
		return nil, err
	}
	return fn(path), nil
}

// RenderAndSave validates, renders and writes the chart to
// destination as a PNG.
func (r *Renderer) RenderAndSave(bars []chartval.Bar, destination string) error {
	return r.renderToFile(bars, destination)
}

func (r *Renderer) renderToFile(bars []chartval.Bar, path string) error {
	c, err := r.renderImage(bars)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	if err := png.Encode(f, c.Image()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write chart file: %w", err)
	}
	return nil
}

// renderImage runs the full pipeline: validate, summarize, allocate
// the canvas, built-in layers, extension layers, title.
func (r *Renderer) renderImage(bars []chartval.Bar) (*chartplot.Canvas, error) {
	start := time.Now()
	if err := chartval.Validate(bars); err != nil {
		return nil, err
	}
	sum := chartval.Summarize(bars)
	timeSpan := int64(len(bars)) * r.opts.TimeUnits
	c := chartplot.NewCanvas(
		r.opts.Width,
		r.opts.Height,
		r.opts.Margin,
		sum.High,
		sum.Low,
		timeSpan,
		r.opts.Background,
	)
	for _, l := range r.builtinLayers() {
		l.Apply(c, bars)
	}
	for _, l := range r.opts.Layers {
		l.Apply(c, bars)
	}
	r.drawTitle(c)
	r.log.Debug().
		Int("bars", len(bars)).
		Dur("elapsed", time.Since(start)).
		Msg("chart rendered")
	return c, nil
}

func (r *Renderer) builtinLayers() []layerapi.Layer {
	return []layerapi.Layer{
		gridLayer{opts: r.opts},
		candleLayer{opts: r.opts},
		quoteLayer{opts: r.opts},
	}
}

// The title is always drawn last so that it stays readable.
func (r *Renderer) drawTitle(c *chartplot.Canvas) {
	if r.opts.Title == "" {
		return
	}
	y := (c.Margin().Top - ascii.GlyphHeight) / 2
	if y < 0 {
		y = 0
	}
	c.Text(image.Pt(c.PlotArea().Min.X, y), r.opts.Title, r.opts.TextColor)
}
