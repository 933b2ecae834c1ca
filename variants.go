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

package logo

import (
	"fmt"
	"image/color"
	"maps"
	"slices"

	"seehuhn.de/go/logo/glyph"
)

// Default values shared by the built-in variants.
const (
	DefaultSize   = 512
	DefaultDPI    = 500
	DefaultFont   = "font/lmromancaps.otf"
	defaultRadius = 60
	defaultNoise  = 8
)

var (
	blue       = color.RGBA{0, 0, 150, 255}
	darkBlue   = color.RGBA{0, 0, 100, 255}
	red        = color.RGBA{180, 0, 0, 255}
	darkRed    = color.RGBA{120, 0, 0, 255}
	lightCard  = color.RGBA{240, 245, 255, 255}
	darkCard   = color.RGBA{45, 55, 120, 255}
)

// DefaultBorderColor is used for card borders which have no colour set.
var DefaultBorderColor = color.NRGBA{255, 255, 255, 60}

// Variants contains the built-in logo variants, keyed by name.
var Variants = map[string]*Variant{
	"logo":        logoVariant,
	"transparent": transparentVariant,
	"classic":     classicVariant,
	"linear":      linearVariant,
}

// DefaultVariants are written when no variant is selected explicitly.
var DefaultVariants = []string{"logo", "transparent"}

// Names returns the names of all built-in variants in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(Variants))
}

// Lookup returns a copy of the built-in variant with the given name.
func Lookup(name string) (*Variant, error) {
	v, ok := Variants[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return v.Clone(), nil
}

// The gradient card with "Bib" above "CiTeX".
var logoVariant = &Variant{
	Name:         "logo",
	Size:         DefaultSize,
	FontSize:     150,
	Background:   Radial,
	Inner:        lightCard,
	Outer:        darkCard,
	Noise:        defaultNoise,
	CornerRadius: defaultRadius,
	Glyphs:       bibCiTeX(),
	Glow:         true,
	Shadow:       true,
	Output:       "../assets/logo.png",
	DPI:          DefaultDPI,
}

var transparentVariant = &Variant{
	Name:         "transparent",
	Size:         DefaultSize,
	FontSize:     150,
	Background:   Transparent,
	CornerRadius: defaultRadius,
	Glyphs:       bibCiTeX(),
	Output:       "../assets/transparent_logo.png",
	DPI:          DefaultDPI,
}

// The larger "Bib"/"CiTe" lettering with floating lower-case letters.
var classicVariant = &Variant{
	Name:         "classic",
	Size:         DefaultSize,
	FontSize:     200,
	Background:   Transparent,
	CornerRadius: defaultRadius,
	Glyphs: []glyph.Placement{
		{X: 210, Y: 135, Char: 'B', Fill: blue},
		{X: 350, Y: 165, Char: 'i', Fill: blue},
		{X: 400, Y: 135, Char: 'b', Fill: blue},
		{X: 150, Y: 315, Char: 'C', Fill: red},
		{X: 290, Y: 345, Char: 'i', Fill: red},
		{X: 320, Y: 315, Char: 'T', Fill: red},
		{X: 440, Y: 345, Char: 'e', Fill: red},
	},
	Output: "../assets/classic_logo.png",
	DPI:    DefaultDPI,
}

var linearVariant = &Variant{
	Name:         "linear",
	Size:         DefaultSize,
	FontSize:     150,
	Background:   Linear,
	Inner:        lightCard,
	Outer:        darkCard,
	CornerRadius: defaultRadius,
	Border:       4,
	BorderColor:  DefaultBorderColor,
	Glyphs:       bibCiTeX(),
	Glow:         true,
	Shadow:       true,
	Output:       "../assets/linear_logo.png",
	DPI:          DefaultDPI,
}

// bibCiTeX returns the "Bib" / "CiTeX" lettering.  The "E" is lowered
// below the baseline of its neighbours.
func bibCiTeX() []glyph.Placement {
	return []glyph.Placement{
		{X: 260, Y: 195, Char: 'B', Fill: blue, Shadow: &darkBlue},
		{X: 367, Y: 195, Char: 'i', Fill: blue, Shadow: &darkBlue},
		{X: 410, Y: 195, Char: 'b', Fill: blue, Shadow: &darkBlue},
		{X: 150, Y: 320, Char: 'C', Fill: red, Shadow: &darkRed},
		{X: 260, Y: 320, Char: 'i', Fill: red, Shadow: &darkRed},
		{X: 300, Y: 320, Char: 'T', Fill: red, Shadow: &darkRed},
		{X: 390, Y: 355, Char: 'E', Fill: red, Shadow: &darkRed},
		{X: 470, Y: 320, Char: 'X', Fill: red, Shadow: &darkRed},
	}
}
