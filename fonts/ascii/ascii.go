// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package ascii

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Fixed-pitch bitmap glyphs for the printable ASCII range. The table
// holds one coverage value per pixel (0 background, 255 ink) and is
// built once from the 7x13 basic font; it is never mutated afterwards.

const (
	GlyphWidth  = 7
	GlyphHeight = 13
	FirstRune   = 0x20
	LastRune    = 0x7e
)

type Glyph [GlyphHeight * GlyphWidth]uint8

// Coverage returns the value for pixel (x, y) of the glyph cell.
func (g *Glyph) Coverage(x, y int) uint8 {
	return g[y*GlyphWidth+x]
}

var once sync.Once
var glyphs [LastRune - FirstRune + 1]Glyph

// Lookup returns the glyph for r. Runes outside the printable ASCII
// range, including control characters, substitute the space glyph.
func Lookup(r rune) *Glyph {
	once.Do(build)
	if r < FirstRune || r > LastRune {
		r = FirstRune
	}
	return &glyphs[r-FirstRune]
}

func build() {
	face := basicfont.Face7x13
	d := font.Drawer{
		Src:  image.NewUniform(color.Opaque),
		Face: face,
	}
	for i := range glyphs {
		dst := image.NewAlpha(image.Rect(0, 0, GlyphWidth, GlyphHeight))
		d.Dst = dst
		d.Dot = fixed.P(0, face.Ascent)
		d.DrawString(string(rune(FirstRune + i)))
		copy(glyphs[i][:], dst.Pix)
	}
}
