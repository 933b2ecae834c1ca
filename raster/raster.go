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

// Package raster turns vector paths into anti-aliased pixel coverage.
//
// Coverage is delivered row by row through an emit callback, so that the
// caller decides how to composite it (alpha mask, colour fill, ...).
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one pixel row, starting at column xMin.
// Coverage values range from 0 (outside) to 1 (inside).  The slice is only
// valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// Rule selects how overlapping subpaths are combined.
type Rule int

const (
	NonZero Rule = iota
	EvenOdd
)

// edge is a line segment in device coordinates, with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 if the original segment pointed down, -1 otherwise
}

// Rasterizer converts paths to pixel coverage.  One instance is meant to be
// reused for all paths of an image; internal buffers grow as needed and are
// kept between calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip limits output to this device-space rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is used for the ends of open subpaths when stroking.
	Cap graphics.LineCapStyle

	// Join is used at the corners of stroked paths.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to the
	// stroke width.  Must be at least 1.
	MiterLimit float64

	edges  []edge
	active []int // indices into edges
	cover  []float32
	area   []float32

	// device-space bounding box of the collected edges
	haveBBox     bool
	bxMin, bxMax float64
	byMin, byMax float64

	// stroking buffers
	flat       []vec.Vec2 // vertices of all flattened subpaths
	flatStart  []int      // start index of each subpath in flat
	flatClosed []bool
	piece      []vec.Vec2 // scratch polygon
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, using
// the PDF default values for all other parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is retained.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit

	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.flat = r.flat[:0]
	r.flatStart = r.flatStart[:0]
	r.flatClosed = r.flatClosed[:0]
	r.piece = r.piece[:0]
}

// Fill rasterises the interior of p using the given fill rule.
func (r *Rasterizer) Fill(p *path.Data, rule Rule, emit EmitFunc) {
	r.beginEdges()
	r.walk(p, r.addEdge, nil)
	r.scan(rule, emit)
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.Fill(p, NonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.Fill(p, EvenOdd, emit)
}

// walk iterates over the path, flattening curves into line segments.
// Every segment, including the implicit closing segment of a closed
// subpath, is passed to line.  If subpath is non-nil, it is called at the
// end of every subpath with a flag indicating whether the subpath was
// explicitly closed.
func (r *Rasterizer) walk(p *path.Data, line func(a, b vec.Vec2), subpath func(start vec.Vec2, closed bool)) {
	var cur, start vec.Vec2
	open := false
	finish := func(closed bool) {
		if !open {
			return
		}
		if cur != start {
			if closed || subpath == nil {
				line(cur, start)
			}
		}
		if subpath != nil {
			subpath(start, closed)
		}
		cur = start
		open = false
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			cur = p.Coords[k]
			start = cur
			open = true
			k++
		case path.CmdLineTo:
			line(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1], line)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], line)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			finish(true)
		}
	}
	finish(false)
}

// linearPart applies the 2×2 part of the CTM, ignoring translation.
func (r *Rasterizer) linearPart(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// toDevice applies the full CTM.
func (r *Rasterizer) toDevice(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y + r.CTM[4],
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y + r.CTM[5],
	}
}

// flattenQuadratic splits a quadratic Bézier curve into line segments.
// The number of segments is chosen so that the deviation in device space
// stays below Flatness.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, line func(a, b vec.Vec2)) {
	dev := r.linearPart(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		next := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		line(prev, next)
		prev = next
	}
}

// flattenCubic splits a cubic Bézier curve into line segments, using
// Wang's formula for the segment count.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, line func(a, b vec.Vec2)) {
	d1 := r.linearPart(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linearPart(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		next := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		line(prev, next)
		prev = next
	}
}

func (r *Rasterizer) beginEdges() {
	r.edges = r.edges[:0]
	r.haveBBox = false
}

// addEdge records the segment a→b, given in user space.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	a = r.toDevice(a)
	b = r.toDevice(b)

	dy := b.Y - a.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	e := edge{dir: 1}
	if dy < 0 {
		a, b = b, a
		e.dir = -1
	}
	e.x0, e.y0 = a.X, a.Y
	e.x1, e.y1 = b.X, b.Y
	e.dxdy = (b.X - a.X) / (b.Y - a.Y)
	r.edges = append(r.edges, e)

	xl, xr := min(a.X, b.X), max(a.X, b.X)
	if !r.haveBBox {
		r.bxMin, r.bxMax = xl, xr
		r.byMin, r.byMax = a.Y, b.Y
		r.haveBBox = true
		return
	}
	r.bxMin = min(r.bxMin, xl)
	r.bxMax = max(r.bxMax, xr)
	r.byMin = min(r.byMin, a.Y)
	r.byMax = max(r.byMax, b.Y)
}

// scan rasterises the collected edges, one scanline at a time, using an
// active edge list.
func (r *Rasterizer) scan(rule Rule, emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := top + 1

		for next < len(r.edges) && r.edges[next].y0 < bottom {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			if next == len(r.edges) {
				break
			}
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.y1 <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, top, bottom, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		if rule == EvenOdd {
			integrateEvenOdd(r.cover, r.area)
		} else {
			integrateNonZero(r.cover, r.area)
		}
		if row, offs := trimZeros(r.cover); row != nil {
			emit(y, xMin+offs, row)
		}
	}
}

// Coverage accumulation.
//
// For every pixel of the current row two values are collected: cover, the
// signed vertical extent of all edge pieces in the pixel's column, and
// area, the part of that extent weighted by the horizontal distance of the
// crossing from the right pixel border.  Integrating from left to right,
// the coverage of pixel i is (sum of cover[j] for j < i) + area[i].
// Edge pieces left of the row's range are folded into column 0.

// accumulate adds the part of e between the scanlines top and bottom to the
// cover and area buffers.  It reports whether anything was added.
func (r *Rasterizer) accumulate(e *edge, top, bottom float64, xMin, xMax int) bool {
	yTop := max(top, e.y0)
	yBot := min(bottom, e.y1)
	if yBot <= yTop {
		return false
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	left := int(math.Floor(min(xTop, xBot)))
	right := int(math.Floor(max(xTop, xBot)))

	if right < xMin {
		c := e.dir * float32(yBot-yTop)
		r.cover[0] += c
		r.area[0] += c
		return true
	}
	if left >= xMax {
		return false
	}

	if left == right {
		r.deposit(e, left, yTop, yBot, xMin, xMax)
		return true
	}

	// The edge crosses several columns; split it at the column borders.
	dydx := 1 / e.dxdy
	for px := left; px <= right; px++ {
		ya := e.y0 + dydx*(float64(px)-e.x0)
		yb := e.y0 + dydx*(float64(px+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		r.deposit(e, px, lo, hi, xMin, xMax)
	}
	return true
}

// deposit adds the piece of e between y-values lo and hi, which lies
// within pixel column px.
func (r *Rasterizer) deposit(e *edge, px int, lo, hi float64, xMin, xMax int) {
	c := e.dir * float32(hi-lo)
	switch {
	case px < xMin:
		r.cover[0] += c
		r.area[0] += c
	case px < xMax:
		xMid := e.x0 + e.dxdy*((lo+hi)/2-e.y0)
		frac := xMid - float64(px)
		i := px - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-frac)
	}
}

// integrateNonZero converts cover/area to coverage in place, using the
// nonzero winding rule.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd converts cover/area to coverage in place, using the
// even-odd rule.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros strips leading and trailing zeros.  It returns nil if the
// whole row is zero.
func trimZeros(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the smallest vertical extent for an
	// edge to contribute coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the smallest length of a stroked segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the smallest |sin| of a corner angle which
	// still gets a join.
	collinearityThreshold = 1e-6
)
