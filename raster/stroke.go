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

package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke rasterises the outline of p, using Width, Cap, Join and
// MiterLimit.
//
// The stroke is assembled from simple convex pieces: one quadrilateral per
// segment, plus join and cap geometry.  All pieces are given the same
// orientation and filled together with the nonzero rule, so that overlaps
// merge into a single shape.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	r.flattenSubpaths(p)

	r.beginEdges()
	d := r.Width / 2
	for i, start := range r.flatStart {
		end := len(r.flat)
		if i+1 < len(r.flatStart) {
			end = r.flatStart[i+1]
		}
		r.strokeSubpath(r.flat[start:end], r.flatClosed[i], d)
	}
	r.scan(NonZero, emit)
}

// flattenSubpaths stores the vertices of every subpath of p in r.flat.
// Consecutive duplicate vertices are dropped.  A subpath which consists of
// a MoveTo only is ignored.
func (r *Rasterizer) flattenSubpaths(p *path.Data) {
	r.flat = r.flat[:0]
	r.flatStart = r.flatStart[:0]
	r.flatClosed = r.flatClosed[:0]

	begin := 0
	drawn := false
	r.walk(p,
		func(a, b vec.Vec2) {
			drawn = true
			if len(r.flat) == begin {
				r.flat = append(r.flat, a)
			}
			if b.Sub(r.flat[len(r.flat)-1]).Length() >= zeroLengthThreshold {
				r.flat = append(r.flat, b)
			}
		},
		func(start vec.Vec2, closed bool) {
			if !drawn {
				return
			}
			if len(r.flat) == begin {
				r.flat = append(r.flat, start)
			}
			r.flatStart = append(r.flatStart, begin)
			r.flatClosed = append(r.flatClosed, closed)
			begin = len(r.flat)
			drawn = false
		})
}

func (r *Rasterizer) strokeSubpath(pts []vec.Vec2, closed bool, d float64) {
	n := len(pts)
	if closed && n > 1 && pts[n-1].Sub(pts[0]).Length() < zeroLengthThreshold {
		n--
	}
	if n == 1 {
		// A zero-length subpath has no direction; only round caps are visible.
		if r.Cap == graphics.LineCapRound {
			r.circle(pts[0], d)
		}
		return
	}

	numSegs := n - 1
	if closed {
		numSegs = n
	}
	tangent := func(i int) vec.Vec2 {
		a, b := pts[i%n], pts[(i+1)%n]
		return unit(b.Sub(a))
	}

	for i := range numSegs {
		a, b := pts[i], pts[(i+1)%n]
		nd := normal(tangent(i)).Mul(d)
		r.setPiece(a.Add(nd), b.Add(nd), b.Sub(nd), a.Sub(nd))
	}

	if closed {
		for i := range n {
			r.join(pts[i], tangent(i+n-1), tangent(i), d)
		}
		return
	}
	for i := 1; i < n-1; i++ {
		r.join(pts[i], tangent(i-1), tangent(i), d)
	}
	r.lineCap(pts[0], tangent(0).Mul(-1), d)
	r.lineCap(pts[n-1], tangent(n-2), d)
}

// join adds the corner geometry at P, where the path direction changes
// from t1 to t2.
func (r *Rasterizer) join(P, t1, t2 vec.Vec2, d float64) {
	cos := t1.Dot(t2)
	sin := t1.X*t2.Y - t1.Y*t2.X
	if math.Abs(sin) < collinearityThreshold {
		if cos > 0 {
			return
		}
		// The path doubles back on itself.
		r.lineCap(P, t1, d)
		r.lineCap(P, t2.Mul(-1), d)
		return
	}

	// The gap between the two segment pieces is on the outer side.
	side := 1.0
	if sin > 0 {
		side = -1
	}
	n1 := normal(t1).Mul(side * d)
	n2 := normal(t2).Mul(side * d)

	switch r.Join {
	case graphics.LineJoinRound:
		r.circle(P, d)

	case graphics.LineJoinMiter:
		// distance from P to the miter tip is d / cos(θ/2)
		cosHalf := math.Sqrt((1 + cos) / 2)
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+1e-10 {
			dir := unit(n1.Add(n2))
			tip := P.Add(dir.Mul(d / cosHalf))
			r.setPiece(P, P.Add(n1), tip, P.Add(n2))
			return
		}
		fallthrough

	case graphics.LineJoinBevel:
		r.setPiece(P, P.Add(n1), P.Add(n2))
	}
}

// lineCap adds a cap at P.  The unit vector t points away from the line.
func (r *Rasterizer) lineCap(P, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.circle(P, d)
	case graphics.LineCapSquare:
		nd := normal(t).Mul(d)
		ext := P.Add(t.Mul(d))
		r.setPiece(P.Add(nd), ext.Add(nd), ext.Sub(nd), P.Sub(nd))
	}
}

// circle adds a full circle, approximated by a polygon whose maximum
// deviation from the true circle is Flatness device pixels.
func (r *Rasterizer) circle(center vec.Vec2, radius float64) {
	devRadius := max(
		r.linearPart(vec.Vec2{X: radius}).Length(),
		r.linearPart(vec.Vec2{Y: radius}).Length())

	n := 4
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 && !math.IsNaN(step) {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}

	r.piece = r.piece[:0]
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.piece = append(r.piece, vec.Vec2{
			X: center.X + radius*math.Cos(phi),
			Y: center.Y + radius*math.Sin(phi),
		})
	}
	r.addPiece()
}

// setPiece adds the convex polygon with the given vertices.
func (r *Rasterizer) setPiece(pts ...vec.Vec2) {
	r.piece = append(r.piece[:0], pts...)
	r.addPiece()
}

// addPiece adds the edges of the polygon in r.piece, oriented so that
// the signed area is positive.
func (r *Rasterizer) addPiece() {
	pts := r.piece
	if len(pts) < 3 {
		return
	}
	var area2 float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area2 += p.X*q.Y - q.X*p.Y
	}
	if area2 < 0 {
		slices.Reverse(pts)
	}
	for i, p := range pts {
		r.addEdge(p, pts[(i+1)%len(pts)])
	}
}

// normal returns t rotated by 90°.
func normal(t vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -t.Y, Y: t.X}
}

// unit returns v scaled to length 1.
func unit(v vec.Vec2) vec.Vec2 {
	return v.Mul(1 / v.Length())
}
