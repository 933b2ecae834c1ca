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

// Package config reads logo variants from TOML files.
//
// Each [[variant]] table either overrides fields of the built-in variant
// with the same name, or defines a new variant based on the "logo"
// variant.  Fields which are not set keep the value of the base variant.
//
//	[[variant]]
//	name = "small"
//	output = "out/small.png"
//	dpi = 300
//	background = "linear"
//
//	[[variant.glyph]]
//	x = 100
//	y = 100
//	char = "B"
//	fill = [0, 0, 150]
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/logo"
	"seehuhn.de/go/logo/glyph"
)

// BaseVariant is used as the starting point for new variant names.
const BaseVariant = "logo"

// File is the top-level structure of a configuration file.
type File struct {
	Variants []Variant `toml:"variant"`
}

// Variant holds the settings of one [[variant]] table.  Nil fields are
// inherited from the base variant.
type Variant struct {
	Name         string   `toml:"name"`
	Output       *string  `toml:"output"`
	DPI          *int     `toml:"dpi"`
	Size         *int     `toml:"size"`
	FontSize     *float64 `toml:"font_size"`
	Background   *string  `toml:"background"`
	Inner        []int    `toml:"inner"`
	Outer        []int    `toml:"outer"`
	Noise        *int     `toml:"noise"`
	CornerRadius *float64 `toml:"corner_radius"`
	Border       *float64 `toml:"border"`
	BorderColor  []int    `toml:"border_color"`
	Glow         *bool    `toml:"glow"`
	Shadow       *bool    `toml:"shadow"`
	Glyphs       []Glyph  `toml:"glyph"`
}

// Glyph is one [[variant.glyph]] entry.
type Glyph struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Char   string  `toml:"char"`
	Fill   []int   `toml:"fill"`
	Shadow []int   `toml:"shadow"`
}

// Load reads the configuration file fname and returns the variants it
// defines, in file order.
func Load(fname string) ([]*logo.Variant, error) {
	var f File
	md, err := toml.DecodeFile(fname, &f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", fname, err)
	}
	vv, err := f.resolve(md)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", fname, err)
	}
	return vv, nil
}

// Parse decodes configuration data in TOML format.
func Parse(data string) ([]*logo.Variant, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, err
	}
	return f.resolve(md)
}

func (f *File) resolve(md toml.MetaData) ([]*logo.Variant, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	seen := make(map[string]bool)
	res := make([]*logo.Variant, 0, len(f.Variants))
	for i := range f.Variants {
		vc := &f.Variants[i]
		if vc.Name == "" {
			return nil, fmt.Errorf("variant %d: missing name", i+1)
		}
		if seen[vc.Name] {
			return nil, fmt.Errorf("variant %q defined twice", vc.Name)
		}
		seen[vc.Name] = true

		base, err := logo.Lookup(vc.Name)
		if errors.Is(err, logo.ErrUnknownVariant) {
			base, err = logo.Lookup(BaseVariant)
		}
		if err != nil {
			return nil, err
		}
		v, err := vc.Apply(base)
		if err != nil {
			return nil, fmt.Errorf("variant %q: %w", vc.Name, err)
		}
		res = append(res, v)
	}
	return res, nil
}

// Apply returns a copy of base with the fields set in vc replaced.
func (vc *Variant) Apply(base *logo.Variant) (*logo.Variant, error) {
	v := base.Clone()
	v.Name = vc.Name

	if vc.Output != nil {
		v.Output = *vc.Output
	} else if v.Name != base.Name {
		v.Output = v.Name + ".png"
	}
	if vc.DPI != nil {
		if *vc.DPI < 0 {
			return nil, fmt.Errorf("invalid dpi %d", *vc.DPI)
		}
		v.DPI = *vc.DPI
	}
	if vc.Size != nil {
		if *vc.Size <= 0 {
			return nil, fmt.Errorf("invalid size %d", *vc.Size)
		}
		v.Size = *vc.Size
	}
	if vc.FontSize != nil {
		v.FontSize = *vc.FontSize
	}
	if vc.Background != nil {
		bg, err := logo.ParseBackground(*vc.Background)
		if err != nil {
			return nil, err
		}
		v.Background = bg
	}
	if vc.Inner != nil {
		c, err := toColor(vc.Inner)
		if err != nil {
			return nil, fmt.Errorf("inner: %w", err)
		}
		v.Inner = c
	}
	if vc.Outer != nil {
		c, err := toColor(vc.Outer)
		if err != nil {
			return nil, fmt.Errorf("outer: %w", err)
		}
		v.Outer = c
	}
	if vc.Noise != nil {
		v.Noise = *vc.Noise
	}
	if vc.CornerRadius != nil {
		v.CornerRadius = *vc.CornerRadius
	}
	if vc.Border != nil {
		v.Border = *vc.Border
	}
	if vc.BorderColor != nil {
		c, err := toNRGBA(vc.BorderColor)
		if err != nil {
			return nil, fmt.Errorf("border_color: %w", err)
		}
		v.BorderColor = c
	} else if v.Border > 0 && v.BorderColor.A == 0 {
		v.BorderColor = logo.DefaultBorderColor
	}
	if vc.Glow != nil {
		v.Glow = *vc.Glow
	}
	if vc.Shadow != nil {
		v.Shadow = *vc.Shadow
	}

	if vc.Glyphs != nil {
		v.Glyphs = v.Glyphs[:0]
		for i, gc := range vc.Glyphs {
			pl, err := gc.placement()
			if err != nil {
				return nil, fmt.Errorf("glyph %d: %w", i+1, err)
			}
			v.Glyphs = append(v.Glyphs, pl)
		}
	}
	return v, nil
}

func (gc *Glyph) placement() (glyph.Placement, error) {
	r, n := utf8.DecodeRuneInString(gc.Char)
	if n == 0 || n != len(gc.Char) || r == utf8.RuneError {
		return glyph.Placement{}, fmt.Errorf("char must be a single character, got %q", gc.Char)
	}
	fill, err := toColor(gc.Fill)
	if err != nil {
		return glyph.Placement{}, fmt.Errorf("fill: %w", err)
	}
	pl := glyph.Placement{X: gc.X, Y: gc.Y, Char: r, Fill: fill}
	if gc.Shadow != nil {
		s, err := toColor(gc.Shadow)
		if err != nil {
			return glyph.Placement{}, fmt.Errorf("shadow: %w", err)
		}
		pl.Shadow = &s
	}
	return pl, nil
}

// toColor converts an [r, g, b] triple into an opaque colour.
func toColor(c []int) (color.RGBA, error) {
	if len(c) != 3 {
		return color.RGBA{}, fmt.Errorf("expected [r, g, b], got %v", c)
	}
	for _, x := range c {
		if x < 0 || x > 255 {
			return color.RGBA{}, fmt.Errorf("colour component %d out of range", x)
		}
	}
	return color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255}, nil
}

// toNRGBA converts an [r, g, b, a] quadruple into a colour.  For an
// [r, g, b] triple the colour is opaque.
func toNRGBA(c []int) (color.NRGBA, error) {
	if len(c) == 3 {
		rgb, err := toColor(c)
		if err != nil {
			return color.NRGBA{}, err
		}
		return color.NRGBA{rgb.R, rgb.G, rgb.B, 255}, nil
	}
	if len(c) != 4 {
		return color.NRGBA{}, fmt.Errorf("expected [r, g, b, a], got %v", c)
	}
	for _, x := range c {
		if x < 0 || x > 255 {
			return color.NRGBA{}, fmt.Errorf("colour component %d out of range", x)
		}
	}
	return color.NRGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), uint8(c[3])}, nil
}
