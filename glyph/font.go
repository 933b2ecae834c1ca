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

// Package glyph loads outline fonts and lays out individually placed
// glyphs.
//
// Coordinates follow the image convention: x to the right, y downwards,
// in canvas pixels.  A glyph placed at (x, y) has the top-left corner of
// its em box at (x, y) and its baseline at y + Ascent.
package glyph

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrNoGlyph is returned when a character is not covered by the font.
var ErrNoGlyph = errors.New("glyph not in font")

// Font is a parsed OpenType or TrueType font.
//
// A Font is not safe for concurrent use.
type Font struct {
	sf  *sfnt.Font
	buf sfnt.Buffer
}

// LoadFont reads and parses the font file fname.
func LoadFont(fname string) (*Font, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	f, err := ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", fname, err)
	}
	return f, nil
}

// ParseFont parses font data in OpenType or TrueType format.
// The data must not be modified while the Font is in use.
func ParseFont(data []byte) (*Font, error) {
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	return &Font{sf: sf}, nil
}

// Face returns the font scaled to the given size in pixels per em.
func (f *Font) Face(size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %g", size)
	}
	ppem := fixed.Int26_6(size*64 + 0.5)
	m, err := f.sf.Metrics(&f.buf, ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("font metrics: %w", err)
	}
	return &Face{
		font:   f,
		ppem:   ppem,
		Size:   size,
		Ascent: fromFixed(m.Ascent),
	}, nil
}

// Face is a font at a fixed pixel size.
type Face struct {
	font *Font
	ppem fixed.Int26_6

	// Size is the font size in pixels per em.
	Size float64

	// Ascent is the distance from the top of the em box to the baseline.
	Ascent float64
}

// Outline returns the outline of r, placed with the top-left corner of its
// em box at (x, y).  Glyphs without ink, like the space character, give an
// empty path.
func (f *Face) Outline(r rune, x, y float64) (*path.Data, error) {
	sf := f.font.sf
	buf := &f.font.buf

	idx, err := sf.GlyphIndex(buf, r)
	if err != nil {
		return nil, fmt.Errorf("glyph %q: %w", r, err)
	}
	if idx == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoGlyph, r)
	}
	segs, err := sf.LoadGlyph(buf, idx, f.ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("glyph %q: %w", r, err)
	}

	y += f.Ascent
	pt := func(p fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{X: x + fromFixed(p.X), Y: y + fromFixed(p.Y)}
	}

	p := &path.Data{}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p = p.Close()
			}
			p = p.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			p = p.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p = p.QuadTo(pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p = p.CubeTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
	if open {
		p = p.Close()
	}
	return p, nil
}

// Bounds returns the ink bounding box of r placed at (x, y).  The box is
// tight: curve extrema are used rather than control points.  The second
// return value is false if the glyph has no ink.
func (f *Face) Bounds(r rune, x, y float64) (Box, bool, error) {
	p, err := f.Outline(r, x, y)
	if err != nil {
		return Box{}, false, err
	}
	b, ok := PathBounds(p)
	return b, ok, nil
}

// Advance returns the horizontal advance of r in pixels.
func (f *Face) Advance(r rune) (float64, error) {
	sf := f.font.sf
	buf := &f.font.buf
	idx, err := sf.GlyphIndex(buf, r)
	if err != nil {
		return 0, fmt.Errorf("glyph %q: %w", r, err)
	}
	if idx == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoGlyph, r)
	}
	adv, err := sf.GlyphAdvance(buf, idx, f.ppem, font.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("glyph %q: %w", r, err)
	}
	return fromFixed(adv), nil
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
