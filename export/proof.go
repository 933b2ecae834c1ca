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

package export

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/logo"
	"seehuhn.de/go/logo/glyph"
	"seehuhn.de/go/logo/paint"
)

// Proof is the vector outline of a rendered logo, used to check the glyph
// layout independently of rasterisation.
type Proof struct {
	Size   int          // canvas width and height in pixels
	Card   *path.Data   // outline of the background card, or nil
	Glyphs []*path.Data // glyph outlines at their final positions
	Box    glyph.Box    // union of the glyph ink boxes
}

// NewProof lays out the glyphs of v and collects their outlines.
func NewProof(font *glyph.Font, v *logo.Variant) (*Proof, error) {
	placed, face, err := logo.Layout(font, v)
	if err != nil {
		return nil, err
	}
	box, err := glyph.Measure(face, placed)
	if err != nil {
		return nil, err
	}

	proof := &Proof{Size: v.Size, Box: box}
	if v.Background != logo.Transparent {
		n := float64(v.Size)
		proof.Card = paint.RoundedRect(0, 0, n, n, v.CornerRadius)
	}
	for _, pl := range placed {
		p, err := face.Outline(pl.Char, pl.X, pl.Y)
		if err != nil {
			return nil, err
		}
		proof.Glyphs = append(proof.Glyphs, p)
	}
	return proof, nil
}

// WriteProof writes a one-page PDF showing the card outline, the glyphs,
// their union bounding box and the canvas center.  One PDF unit
// corresponds to one pixel.
func WriteProof(fname string, proof *Proof) error {
	size := float64(proof.Size)
	paper := &pdf.Rectangle{URx: size, URy: size}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("proof %s: %w", fname, err)
	}

	// PDF origin is bottom-left; canvas coordinates start top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, size})

	if proof.Card != nil {
		page.SetFillColor(color.DeviceGray(0.9))
		drawPath(page, proof.Card)
		page.Fill()
		page.SetStrokeColor(color.DeviceGray(0.5))
		page.SetLineWidth(1)
		drawPath(page, proof.Card)
		page.Stroke()
	}

	page.SetFillColor(color.DeviceGray(0.2))
	for _, p := range proof.Glyphs {
		drawPath(page, p)
		page.Fill()
	}

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(0.5)
	page.SetLineJoin(graphics.LineJoinMiter)
	page.SetLineDash([]float64{4, 2}, 0)
	b := proof.Box
	page.Rectangle(b.MinX, b.MinY, b.Width(), b.Height())
	page.Stroke()

	page.SetLineDash(nil, 0)
	page.SetLineCap(graphics.LineCapRound)
	c := size / 2
	page.MoveTo(c-8, c)
	page.LineTo(c+8, c)
	page.MoveTo(c, c-8)
	page.LineTo(c, c+8)
	page.Stroke()

	if err := page.Close(); err != nil {
		return fmt.Errorf("proof %s: %w", fname, err)
	}
	return nil
}

// drawPath appends p to the current PDF path.  PDF has no quadratic
// curves, so these are converted to cubics.
func drawPath(page *document.Page, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}
