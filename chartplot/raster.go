// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"image"
	"image/color"
)

// SetPixel writes a colour to the buffer. A fully transparent colour
// (alpha 0) leaves the pixel untouched; any other colour overwrites
// the previous content, there is no alpha compositing.
func (c *Canvas) SetPixel(x, y int, col color.NRGBA) {
	if col.A == 0 {
		return
	}
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	i := (y*c.width + x) * 4
	c.buf[i] = col.R
	c.buf[i+1] = col.G
	c.buf[i+2] = col.B
	c.buf[i+3] = col.A
}

// Line rasterizes the segment between p1 and p2 inclusive, covering
// every pixel the segment crosses. A zero length segment draws a
// single pixel.
func (c *Canvas) Line(p1, p2 image.Point, col color.NRGBA) {
	dx := p2.X - p1.X
	if dx < 0 {
		dx = -dx
	}
	dy := p2.Y - p1.Y
	if dy > 0 {
		dy = -dy
	}
	sx := 1
	if p1.X > p2.X {
		sx = -1
	}
	sy := 1
	if p1.Y > p2.Y {
		sy = -1
	}
	x, y := p1.X, p1.Y
	err := dx + dy
	for {
		c.SetPixel(x, y, col)
		if x == p2.X && y == p2.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// FillRect fills every pixel of r (max positions exclusive).
func (c *Canvas) FillRect(r image.Rectangle, col color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.SetPixel(x, y, col)
		}
	}
}
