// seehuhn.de/go/logo - a logo and icon generator
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package paint

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/logo/raster"
)

// Canvas composites filled and stroked paths onto an RGBA image, using
// the Porter-Duff "over" operator.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	Img *image.RGBA

	r *raster.Rasterizer
}

// NewCanvas returns a canvas drawing onto img.
func NewCanvas(img *image.RGBA) *Canvas {
	b := img.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	return &Canvas{Img: img, r: raster.NewRasterizer(clip)}
}

// Fill paints the interior of p (nonzero rule) in the colour col.
// The alpha channel of col scales the opacity of the fill.
func (c *Canvas) Fill(p *path.Data, col color.NRGBA) {
	c.r.FillNonZero(p, c.blender(col))
}

// Stroke paints the outline of p, with round joins.
func (c *Canvas) Stroke(p *path.Data, width float64, col color.NRGBA) {
	c.r.Width = width
	c.r.Join = graphics.LineJoinRound
	c.r.Cap = graphics.LineCapRound
	c.r.Stroke(p, c.blender(col))
}

func (c *Canvas) blender(col color.NRGBA) raster.EmitFunc {
	img := c.Img
	alpha := float32(col.A) / 255
	sr, sg, sb := float32(col.R), float32(col.G), float32(col.B)
	return func(y, xMin int, coverage []float32) {
		row := img.Pix[img.PixOffset(xMin, y):]
		for i, cov := range coverage {
			a := cov * alpha
			if a <= 0 {
				continue
			}
			a = min(a, 1)
			pix := row[4*i : 4*i+4 : 4*i+4]
			keep := 1 - a
			pix[0] = uint8(sr*a + float32(pix[0])*keep + 0.5)
			pix[1] = uint8(sg*a + float32(pix[1])*keep + 0.5)
			pix[2] = uint8(sb*a + float32(pix[2])*keep + 0.5)
			pix[3] = uint8(255*a + float32(pix[3])*keep + 0.5)
		}
	}
}
