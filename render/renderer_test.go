// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package render

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candlechart/chartplot"
	"candlechart/chartval"
	"candlechart/config"
)

var testBars = []chartval.Bar{
	{Open: 1.0, High: 2.0, Low: 0.5, Close: 1.5},
	{Open: 1.5, High: 3.0, Low: 1.0, Close: 2.5},
	{Open: 2.5, High: 5.0, Low: 2.0, Close: 3.0},
	{Open: 3.0, High: 3.5, Low: 0.0, Close: 1.0},
}

func newTestOptions() config.RenderOptions {
	return config.NewRenderOptions().WithSize(200, 100)
}

// fillLayer paints a single pixel, used to test layer ordering.
type fillLayer struct {
	p   image.Point
	col color.NRGBA
}

func (l fillLayer) Apply(c *chartplot.Canvas, bars []chartval.Bar) {
	c.SetPixel(l.p.X, l.p.Y, l.col)
}

func (l fillLayer) LegendColor() (color.NRGBA, bool) {
	return l.col, true
}

func (l fillLayer) Name() string {
	return "Fill"
}

func TestRenderImageDeterministic(t *testing.T) {
	r := New(newTestOptions().WithTitle("BTC/USD", color.NRGBA{R: 200, G: 200, B: 200, A: 255}))

	c1, err := r.renderImage(testBars)
	require.NoError(t, err)
	c2, err := r.renderImage(testBars)
	require.NoError(t, err)

	assert.Equal(t, c1.Pix(), c2.Pix())
}

func TestRenderImageLaterLayerWins(t *testing.T) {
	p := image.Pt(50, 50)
	opts := newTestOptions().
		WithLayer(fillLayer{p: p, col: color.NRGBA{R: 255, A: 255}}).
		WithLayer(fillLayer{p: p, col: color.NRGBA{B: 255, A: 255}})
	r := New(opts)

	c, err := r.renderImage(testBars)

	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, c.At(p.X, p.Y))
}

func TestRenderImageValidationFailure(t *testing.T) {
	r := New(newTestOptions())

	_, err := r.renderImage([]chartval.Bar{{Open: 3, High: 2, Low: 1, Close: 2}})

	var verr *chartval.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, verr.Index)
}

func TestRenderImageEmptySeries(t *testing.T) {
	r := New(newTestOptions())

	_, err := r.renderImage(nil)

	assert.ErrorIs(t, err, chartval.ErrEmptySeries)
}

func TestRenderInvokesCallbackWhileFileExists(t *testing.T) {
	r := New(newTestOptions())

	var seenPath string
	fnErr, err := r.Render(testBars, func(path string) error {
		seenPath = path
		_, statErr := os.Stat(path)
		return statErr
	})

	require.NoError(t, err)
	assert.NoError(t, fnErr)
	// The staging directory is gone once Render returns.
	_, statErr := os.Stat(filepath.Dir(seenPath))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRenderPropagatesCallbackError(t *testing.T) {
	r := New(newTestOptions())
	want := errors.New("upload failed")

	fnErr, err := r.Render(testBars, func(path string) error {
		return want
	})

	require.NoError(t, err)
	assert.ErrorIs(t, fnErr, want)
}

func TestRenderCleansUpOnCallbackError(t *testing.T) {
	r := New(newTestOptions())

	var seenPath string
	fnErr, err := r.Render(testBars, func(path string) error {
		seenPath = path
		return errors.New("boom")
	})

	require.NoError(t, err)
	require.Error(t, fnErr)
	_, statErr := os.Stat(filepath.Dir(seenPath))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRenderDoesNotInvokeCallbackOnInvalidSeries(t *testing.T) {
	r := New(newTestOptions())

	called := false
	fnErr, err := r.Render(nil, func(path string) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, chartval.ErrEmptySeries)
	assert.NoError(t, fnErr)
	assert.False(t, called)
}

func TestRenderAndSave(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.png")
	r := New(newTestOptions())

	require.NoError(t, r.RenderAndSave(testBars, dest))

	f, err := os.Open(dest)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "12.34", truncateLabel("12.34", 10))
	assert.Equal(t, "12.", truncateLabel("12.34", 3))
	assert.Equal(t, "", truncateLabel("12.34", -1))
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "2d", formatElapsed(172800))
	assert.Equal(t, "3h", formatElapsed(10800))
	assert.Equal(t, "90m", formatElapsed(5400))
	assert.Equal(t, "45s", formatElapsed(45))
}
