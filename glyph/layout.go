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

package glyph

import (
	"errors"
	"image/color"
)

// ErrEmptyLayout is returned when a layout contains no visible glyphs.
var ErrEmptyLayout = errors.New("empty glyph layout")

// Placement is one hand-positioned glyph.
type Placement struct {
	X, Y   float64 // top-left corner of the em box
	Char   rune
	Fill   color.RGBA
	Shadow *color.RGBA // nil if the glyph casts no shadow
}

// Moved returns a copy of p shifted by (dx, dy).
func (p Placement) Moved(dx, dy float64) Placement {
	p.X += dx
	p.Y += dy
	return p
}

// Measure returns the union of the ink boxes of all placements.
// Glyphs without ink do not contribute.
func Measure(face *Face, placements []Placement) (Box, error) {
	var acc boxAcc
	for _, pl := range placements {
		b, ok, err := face.Bounds(pl.Char, pl.X, pl.Y)
		if err != nil {
			return Box{}, err
		}
		if !ok {
			continue
		}
		if !acc.ok {
			acc.box, acc.ok = b, true
		} else {
			acc.box = acc.box.Union(b)
		}
	}
	if !acc.ok {
		return Box{}, ErrEmptyLayout
	}
	return acc.box, nil
}

// Center computes the offset which moves the union box of the placements
// to the middle of a w×h canvas.  The same offset applies to every glyph.
func Center(face *Face, placements []Placement, w, h int) (dx, dy float64, err error) {
	box, err := Measure(face, placements)
	if err != nil {
		return 0, 0, err
	}
	dx = (float64(w)-box.Width())/2 - box.MinX
	dy = (float64(h)-box.Height())/2 - box.MinY
	return dx, dy, nil
}

// Layout returns the placements shifted so that their union box is
// centered on a w×h canvas.
func Layout(face *Face, placements []Placement, w, h int) ([]Placement, error) {
	dx, dy, err := Center(face, placements, w, h)
	if err != nil {
		return nil, err
	}
	res := make([]Placement, len(placements))
	for i, pl := range placements {
		res[i] = pl.Moved(dx, dy)
	}
	return res, nil
}
