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

package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/logo"
)

func TestOverrideBuiltin(t *testing.T) {
	vv, err := Parse(`
[[variant]]
name = "logo"
dpi = 300
output = "out/logo.png"
glow = false
`)
	if err != nil {
		t.Fatal(err)
	}
	if len(vv) != 1 {
		t.Fatalf("got %d variants", len(vv))
	}
	v := vv[0]
	base, _ := logo.Lookup("logo")
	if v.DPI != 300 || v.Output != "out/logo.png" || v.Glow {
		t.Errorf("overrides not applied: %+v", v)
	}
	if !v.Shadow || v.FontSize != base.FontSize || v.Background != logo.Radial {
		t.Error("unset fields were not inherited")
	}
	if len(v.Glyphs) != len(base.Glyphs) {
		t.Errorf("glyphs changed: %d != %d", len(v.Glyphs), len(base.Glyphs))
	}
}

func TestNewVariant(t *testing.T) {
	vv, err := Parse(`
[[variant]]
name = "mini"
size = 128
font_size = 40
background = "linear"
inner = [255, 255, 255]
outer = [0, 0, 0]

[[variant.glyph]]
x = 10
y = 10
char = "B"
fill = [0, 0, 150]
shadow = [0, 0, 100]

[[variant.glyph]]
x = 50
y = 10
char = "i"
fill = [180, 0, 0]
`)
	if err != nil {
		t.Fatal(err)
	}
	v := vv[0]
	if v.Name != "mini" || v.Size != 128 || v.FontSize != 40 || v.Background != logo.Linear {
		t.Errorf("unexpected variant %+v", v)
	}
	if v.Output != "mini.png" {
		t.Errorf("output %q, want mini.png", v.Output)
	}
	if len(v.Glyphs) != 2 {
		t.Fatalf("got %d glyphs", len(v.Glyphs))
	}
	g := v.Glyphs[0]
	if g.Char != 'B' || g.Fill.B != 150 || g.Shadow == nil || g.Shadow.B != 100 {
		t.Errorf("glyph 0 = %+v", g)
	}
	if v.Glyphs[1].Shadow != nil {
		t.Error("glyph 1 should have no shadow")
	}

	// the built-in variant is not modified
	base, _ := logo.Lookup("logo")
	if base.Size != logo.DefaultSize || len(base.Glyphs) != 8 {
		t.Error("built-in variant was modified")
	}
}

// TestBorder checks that a border set on a base without a border colour
// is visible on the card.
func TestBorder(t *testing.T) {
	vv, err := Parse("[[variant]]\nname = \"logo\"\nborder = 4\n")
	if err != nil {
		t.Fatal(err)
	}
	v := vv[0]
	if v.BorderColor != logo.DefaultBorderColor {
		t.Errorf("border colour %v, want %v", v.BorderColor, logo.DefaultBorderColor)
	}

	plain, _ := logo.Lookup("logo")
	with, without := logo.Card(v), logo.Card(plain)
	mid := logo.DefaultSize / 2
	for _, y := range []int{1, 2} {
		if with.RGBAAt(mid, y) == without.RGBAAt(mid, y) {
			t.Errorf("edge pixel (%d,%d) unchanged by the border", mid, y)
		}
	}
	if with.RGBAAt(mid, mid) != without.RGBAAt(mid, mid) {
		t.Error("border changed the card interior")
	}

	vv, err = Parse("[[variant]]\nname = \"transparent\"\nborder = 2\nborder_color = [10, 20, 30, 200]\n")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := vv[0].BorderColor, (color.NRGBA{10, 20, 30, 200}); got != want {
		t.Errorf("border colour %v, want %v", got, want)
	}
}

func TestInvalid(t *testing.T) {
	cases := map[string]string{
		"missing_name":   "[[variant]]\ndpi = 100\n",
		"duplicate":      "[[variant]]\nname = \"a\"\n[[variant]]\nname = \"a\"\n",
		"unknown_key":    "[[variant]]\nname = \"a\"\ncolour = 1\n",
		"bad_background": "[[variant]]\nname = \"a\"\nbackground = \"plaid\"\n",
		"bad_size":       "[[variant]]\nname = \"a\"\nsize = 0\n",
		"bad_color":      "[[variant]]\nname = \"a\"\ninner = [1, 2]\n",
		"color_range":    "[[variant]]\nname = \"a\"\nouter = [1, 2, 300]\n",
		"border_color":   "[[variant]]\nname = \"a\"\nborder_color = [1, 2, 3, 4, 5]\n",
		"bad_char":       "[[variant]]\nname = \"a\"\n[[variant.glyph]]\nchar = \"ab\"\nfill = [0, 0, 0]\n",
		"syntax":         "[[variant]\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(data); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "logo.toml")
	data := "[[variant]]\nname = \"transparent\"\nfont_size = 120\n"
	if err := os.WriteFile(fname, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	vv, err := Load(fname)
	if err != nil {
		t.Fatal(err)
	}
	if len(vv) != 1 || vv[0].FontSize != 120 || vv[0].Background != logo.Transparent {
		t.Errorf("unexpected result %+v", vv)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
