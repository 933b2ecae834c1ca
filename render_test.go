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
	"bytes"
	"errors"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/logo/glyph"
)

func testFont(t testing.TB) *glyph.Font {
	t.Helper()
	f, err := glyph.ParseFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestRenderAllVariants(t *testing.T) {
	font := testFont(t)
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			v, err := Lookup(name)
			if err != nil {
				t.Fatal(err)
			}
			img, err := Render(font, v)
			if err != nil {
				t.Fatal(err)
			}
			if b := img.Bounds(); b.Dx() != DefaultSize || b.Dy() != DefaultSize {
				t.Errorf("image size %v", b)
			}
			if a := img.RGBAAt(0, 0).A; a != 0 {
				t.Errorf("corner pixel alpha %d, want 0", a)
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	font := testFont(t)
	v, err := Lookup("logo")
	if err != nil {
		t.Fatal(err)
	}
	a, err := Render(font, v)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render(font, v)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("rendering is not deterministic")
	}
}

func TestCardOpaqueInside(t *testing.T) {
	for _, name := range []string{"logo", "linear"} {
		v, _ := Lookup(name)
		img := Card(v)
		if a := img.RGBAAt(DefaultSize/2, DefaultSize/2).A; a != 255 {
			t.Errorf("%s: center alpha %d", name, a)
		}
		if a := img.RGBAAt(DefaultSize-1, DefaultSize-1).A; a != 0 {
			t.Errorf("%s: corner alpha %d", name, a)
		}
	}
}

func TestLayoutCentered(t *testing.T) {
	font := testFont(t)
	for _, name := range Names() {
		v, _ := Lookup(name)
		placed, face, err := Layout(font, v)
		if err != nil {
			t.Fatal(err)
		}
		box, err := glyph.Measure(face, placed)
		if err != nil {
			t.Fatal(err)
		}
		cx, cy := box.Center()
		mid := float64(v.Size) / 2
		if math.Abs(cx-mid) > 1 || math.Abs(cy-mid) > 1 {
			t.Errorf("%s: union box centered at (%.2f, %.2f)", name, cx, cy)
		}
	}
}

// TestLayerOrder renders a single glyph and checks the solid, shadow and
// background areas.
func TestLayerOrder(t *testing.T) {
	font := testFont(t)
	shadow := color.RGBA{120, 0, 0, 255}
	v := &Variant{
		Name:     "test",
		Size:     200,
		FontSize: 150,
		Glyphs: []glyph.Placement{
			{X: 0, Y: 0, Char: 'I', Fill: color.RGBA{0, 0, 150, 255}, Shadow: &shadow},
		},
		Glow:   true,
		Shadow: true,
	}
	img, err := Render(font, v)
	if err != nil {
		t.Fatal(err)
	}
	placed, face, err := Layout(font, v)
	if err != nil {
		t.Fatal(err)
	}
	box, err := glyph.Measure(face, placed)
	if err != nil {
		t.Fatal(err)
	}
	cx, cy := box.Center()

	if got := img.RGBAAt(int(cx), int(cy)); got != (color.RGBA{0, 0, 150, 255}) {
		t.Errorf("glyph interior %v", got)
	}

	// right of the glyph, reached by the shadow but not by the glow
	sx := int(math.Ceil(box.MaxX)) + 1
	if got := img.RGBAAt(sx, int(cy)); got.A != ShadowAlpha || got.B != 0 || got.R == 0 {
		t.Errorf("shadow pixel %v", got)
	}

	if got := img.RGBAAt(2, 2); got.A != 0 {
		t.Errorf("background pixel %v", got)
	}
}

func TestRenderErrors(t *testing.T) {
	font := testFont(t)

	v, _ := Lookup("transparent")
	v.Glyphs[0].Char = '\U0001F600'
	if _, err := Render(font, v); !errors.Is(err, glyph.ErrNoGlyph) {
		t.Errorf("missing glyph: got %v", err)
	}

	v, _ = Lookup("transparent")
	v.Glyphs = nil
	if _, err := Render(font, v); !errors.Is(err, glyph.ErrEmptyLayout) {
		t.Errorf("no glyphs: got %v", err)
	}

	if _, err := Lookup("nonexistent"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("unknown variant: got %v", err)
	}
}

func TestLookupCopies(t *testing.T) {
	a, _ := Lookup("logo")
	a.Glyphs[0].Char = 'Z'
	a.Glyphs[0].Shadow.R = 1
	b, _ := Lookup("logo")
	if b.Glyphs[0].Char != 'B' || b.Glyphs[0].Shadow.R != 0 {
		t.Error("Lookup returned shared data")
	}
}

func TestParseBackground(t *testing.T) {
	for _, bg := range []Background{Transparent, Radial, Linear} {
		got, err := ParseBackground(bg.String())
		if err != nil || got != bg {
			t.Errorf("%s: got %v, %v", bg, got, err)
		}
	}
	if _, err := ParseBackground("plaid"); err == nil {
		t.Error("expected error")
	}
}

func BenchmarkRender(b *testing.B) {
	font := testFont(b)
	v, _ := Lookup("logo")
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Render(font, v); err != nil {
			b.Fatal(err)
		}
	}
}
