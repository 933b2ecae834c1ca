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

// Package logo renders the BibCiTeX logo.
//
// A [Variant] describes one version of the logo: canvas size, background
// card, hand-placed glyphs and glyph effects.  [Render] turns a variant
// into an image.  The built-in variants are listed in [Variants].
package logo

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/logo/glyph"
	"seehuhn.de/go/logo/paint"
)

// ErrUnknownVariant is returned when a variant name is not defined.
var ErrUnknownVariant = errors.New("unknown variant")

// Background selects the backdrop of a logo.
type Background int

const (
	Transparent Background = iota
	Radial                 // radial gradient card
	Linear                 // top-to-bottom gradient card
)

func (b Background) String() string {
	switch b {
	case Transparent:
		return "none"
	case Radial:
		return "radial"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("Background(%d)", int(b))
	}
}

// ParseBackground converts the output of [Background.String] back into a
// Background.
func ParseBackground(s string) (Background, error) {
	switch s {
	case "none", "transparent", "":
		return Transparent, nil
	case "radial":
		return Radial, nil
	case "linear":
		return Linear, nil
	}
	return 0, fmt.Errorf("invalid background %q", s)
}

// Glyph effect parameters.
const (
	GlowAlpha    = 30
	ShadowAlpha  = 80
	ShadowOffset = 3
)

// glowOffsets are the displacements of the four glow passes.
var glowOffsets = [4]image.Point{{1, 1}, {-1, -1}, {1, -1}, {-1, 1}}

// Variant describes one version of the logo.
type Variant struct {
	Name string

	Size     int     // width and height of the canvas in pixels
	FontSize float64 // pixels per em

	Background   Background
	Inner, Outer color.RGBA // gradient colours, center/top and edge/bottom
	Noise        int        // gradient noise amplitude
	CornerRadius float64

	// Border is the width of an optional outline around the card.
	// Zero disables the border.
	Border      float64
	BorderColor color.NRGBA

	Glyphs []glyph.Placement

	Glow   bool
	Shadow bool

	Output string // path of the PNG file
	DPI    int
}

// Clone returns a deep copy of v.
func (v *Variant) Clone() *Variant {
	res := *v
	res.Glyphs = make([]glyph.Placement, len(v.Glyphs))
	for i, g := range v.Glyphs {
		if g.Shadow != nil {
			s := *g.Shadow
			g.Shadow = &s
		}
		res.Glyphs[i] = g
	}
	return &res
}

// Layout returns the glyphs of v, moved so that they are centered on the
// canvas, together with the face used to measure them.
func Layout(font *glyph.Font, v *Variant) ([]glyph.Placement, *glyph.Face, error) {
	face, err := font.Face(v.FontSize)
	if err != nil {
		return nil, nil, fmt.Errorf("variant %q: %w", v.Name, err)
	}
	placed, err := glyph.Layout(face, v.Glyphs, v.Size, v.Size)
	if err != nil {
		return nil, nil, fmt.Errorf("variant %q: %w", v.Name, err)
	}
	return placed, face, nil
}

// Render draws the variant v using the given font.
//
// Layers are drawn in a fixed order: background card, glow passes for all
// glyphs, shadows for all glyphs, and finally the glyphs themselves.
func Render(font *glyph.Font, v *Variant) (*image.RGBA, error) {
	if v.Size <= 0 {
		return nil, fmt.Errorf("variant %q: invalid canvas size %d", v.Name, v.Size)
	}
	placed, face, err := Layout(font, v)
	if err != nil {
		return nil, err
	}

	img := Card(v)
	c := paint.NewCanvas(img)

	draw := func(pl glyph.Placement, dx, dy float64, col color.RGBA, alpha uint8) error {
		p, err := face.Outline(pl.Char, pl.X+dx, pl.Y+dy)
		if err != nil {
			return fmt.Errorf("variant %q: %w", v.Name, err)
		}
		c.Fill(p, color.NRGBA{R: col.R, G: col.G, B: col.B, A: alpha})
		return nil
	}

	if v.Glow {
		for _, pl := range placed {
			for _, o := range glowOffsets {
				if err := draw(pl, float64(o.X), float64(o.Y), pl.Fill, GlowAlpha); err != nil {
					return nil, err
				}
			}
		}
	}
	if v.Shadow {
		for _, pl := range placed {
			if pl.Shadow == nil {
				continue
			}
			if err := draw(pl, ShadowOffset, ShadowOffset, *pl.Shadow, ShadowAlpha); err != nil {
				return nil, err
			}
		}
	}
	for _, pl := range placed {
		if err := draw(pl, 0, 0, pl.Fill, 255); err != nil {
			return nil, err
		}
	}

	return img, nil
}

// Card returns the background of v: either a transparent canvas, or a
// gradient clipped to a rounded rectangle.
func Card(v *Variant) *image.RGBA {
	n := v.Size
	var grad *image.RGBA
	switch v.Background {
	case Radial:
		grad = paint.RadialGradient(n, n, v.Inner, v.Outer, v.Noise)
	case Linear:
		grad = paint.LinearGradient(n, n, v.Inner, v.Outer, v.Noise)
	default:
		return image.NewRGBA(image.Rect(0, 0, n, n))
	}

	img := paint.ClipToMask(grad, paint.RoundedRectMask(n, n, v.CornerRadius))
	if v.Border > 0 {
		d := v.Border / 2
		outline := paint.RoundedRect(d, d, float64(n)-d, float64(n)-d, v.CornerRadius-d)
		paint.NewCanvas(img).Stroke(outline, v.Border, v.BorderColor)
	}
	return img
}
