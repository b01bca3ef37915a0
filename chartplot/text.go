// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"image"
	"image/color"

	"candlechart/fonts/ascii"
)

// Text blits s starting at origin, one glyph cell per character at a
// fixed horizontal pitch. Each output channel is the coverage
// weighted interpolation between the ink and the configured
// background colour. Glyphs never blend against what was previously
// drawn at a pixel; text is meant to sit in the margin over flat
// background.
func (c *Canvas) Text(origin image.Point, s string, ink color.NRGBA) {
	x := origin.X
	for _, r := range s {
		g := ascii.Lookup(r)
		for gy := 0; gy < ascii.GlyphHeight; gy++ {
			for gx := 0; gx < ascii.GlyphWidth; gx++ {
				cov := g.Coverage(gx, gy)
				c.SetPixel(x+gx, origin.Y+gy, color.NRGBA{
					R: blend(cov, ink.R, c.background.R),
					G: blend(cov, ink.G, c.background.G),
					B: blend(cov, ink.B, c.background.B),
					A: 255,
				})
			}
		}
		x += ascii.GlyphWidth
	}
}

// TextWidth returns the pixel width s occupies at the fixed pitch.
func TextWidth(s string) int {
	n := 0
	for range s {
		n++
	}
	return n * ascii.GlyphWidth
}

func blend(cov, ink, background uint8) uint8 {
	return uint8((int(cov)*int(ink) + (255-int(cov))*int(background) + 127) / 255)
}
