package raster

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var benchSizes = []int{64, 512, 2048}

// BenchmarkRasterizerO fills an "O" shape: outer circle and a reversed
// inner circle.
func BenchmarkRasterizerO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := NewRasterizer(clipRect(size, size))
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			c := float64(size) / 2
			p := oPath(c, c, float64(size)*0.45, float64(size)*0.30)

			b.ReportAllocs()
			for b.Loop() {
				r.FillNonZero(p, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, v := range coverage {
						row[i] = uint8(v * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorO draws the same shape using golang.org/x/image/vector.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			v := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})
			c := float32(size) / 2

			b.ReportAllocs()
			for b.Loop() {
				v.Reset(size, size)
				addCircleToVector(v, c, c, float32(size)*0.45)
				addReversedCircleToVector(v, c, c, float32(size)*0.30)
				v.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeCard strokes a rounded square, as used for card borders.
func BenchmarkStrokeCard(b *testing.B) {
	r := NewRasterizer(clipRect(512, 512))
	r.Width = 6
	r.Join = graphics.LineJoinRound
	p := circlePath(256, 256, 200)

	b.ReportAllocs()
	for b.Loop() {
		r.Stroke(p, func(y, xMin int, coverage []float32) {})
	}
}

// oPath returns the outer circle counter-clockwise and the inner circle
// clockwise, so that the nonzero rule leaves a hole.
func oPath(cx, cy, outer, inner float64) *path.Data {
	p := circlePath(cx, cy, outer)
	k := kappa * inner
	return p.
		MoveTo(vec.Vec2{X: cx + inner, Y: cy}).
		CubeTo(vec.Vec2{X: cx + inner, Y: cy - k}, vec.Vec2{X: cx + k, Y: cy - inner}, vec.Vec2{X: cx, Y: cy - inner}).
		CubeTo(vec.Vec2{X: cx - k, Y: cy - inner}, vec.Vec2{X: cx - inner, Y: cy - k}, vec.Vec2{X: cx - inner, Y: cy}).
		CubeTo(vec.Vec2{X: cx - inner, Y: cy + k}, vec.Vec2{X: cx - k, Y: cy + inner}, vec.Vec2{X: cx, Y: cy + inner}).
		CubeTo(vec.Vec2{X: cx + k, Y: cy + inner}, vec.Vec2{X: cx + inner, Y: cy + k}, vec.Vec2{X: cx + inner, Y: cy}).
		Close()
}

// addReversedCircleToVector adds a circle with the opposite orientation to
// the one used by addCircleToVector.
func addReversedCircleToVector(v *vector.Rasterizer, cx, cy, radius float32) {
	k := float32(kappa) * radius
	v.MoveTo(cx+radius, cy)
	v.CubeTo(cx+radius, cy-k, cx+k, cy-radius, cx, cy-radius)
	v.CubeTo(cx-k, cy-radius, cx-radius, cy-k, cx-radius, cy)
	v.CubeTo(cx-radius, cy+k, cx-k, cy+radius, cx, cy+radius)
	v.CubeTo(cx+k, cy+radius, cx+radius, cy+k, cx+radius, cy)
	v.ClosePath()
}
