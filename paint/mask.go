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

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/logo/raster"
)

// kappa is the control point distance for a quarter circle of radius 1.
const kappa = 0.5522847498307936

// RoundedRect returns a closed path for the rectangle (x0,y0)-(x1,y1) with
// quarter-circle corners.  The radius is clamped to half the shorter side.
func RoundedRect(x0, y0, x1, y1, radius float64) *path.Data {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	radius = max(min(radius, (x1-x0)/2, (y1-y0)/2), 0)
	k := kappa * radius

	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	p := (&path.Data{}).MoveTo(pt(x0+radius, y0))
	p = p.LineTo(pt(x1-radius, y0))
	if radius > 0 {
		p = p.CubeTo(pt(x1-radius+k, y0), pt(x1, y0+radius-k), pt(x1, y0+radius))
	}
	p = p.LineTo(pt(x1, y1-radius))
	if radius > 0 {
		p = p.CubeTo(pt(x1, y1-radius+k), pt(x1-radius+k, y1), pt(x1-radius, y1))
	}
	p = p.LineTo(pt(x0+radius, y1))
	if radius > 0 {
		p = p.CubeTo(pt(x0+radius-k, y1), pt(x0, y1-radius+k), pt(x0, y1-radius))
	}
	p = p.LineTo(pt(x0, y0+radius))
	if radius > 0 {
		p = p.CubeTo(pt(x0, y0+radius-k), pt(x0+radius-k, y0), pt(x0+radius, y0))
	}
	return p.Close()
}

// RoundedRectMask returns a w×h alpha mask which is opaque inside a
// rounded rectangle covering the whole image, and transparent in the
// corners.  Edge pixels are anti-aliased.
func RoundedRectMask(w, h int, radius float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r := raster.NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)})
	r.FillNonZero(RoundedRect(0, 0, float64(w), float64(h), radius),
		func(y, xMin int, coverage []float32) {
			row := mask.Pix[y*mask.Stride+xMin:]
			for i, c := range coverage {
				row[i] = toByte(c)
			}
		})
	return mask
}

// ClipToMask returns a copy of src in which every pixel is scaled by the
// corresponding mask value.  Pixels outside the mask become transparent.
func ClipToMask(src image.Image, mask image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	draw.DrawMask(dst, b, src, b.Min, mask, mask.Bounds().Min, draw.Src)
	return dst
}

// toByte converts a coverage value in [0, 1] to an 8-bit alpha value.
func toByte(c float32) uint8 {
	switch {
	case c <= 0:
		return 0
	case c >= 1:
		return 255
	default:
		return uint8(c*255 + 0.5)
	}
}
