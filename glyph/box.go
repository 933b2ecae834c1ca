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

package glyph

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Box is an axis-aligned rectangle in canvas coordinates.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the box.
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Center returns the midpoint of the box.
func (b Box) Center() (x, y float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		MinX: min(b.MinX, o.MinX),
		MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX),
		MaxY: max(b.MaxY, o.MaxY),
	}
}

// Translate returns the box shifted by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	return Box{b.MinX + dx, b.MinY + dy, b.MaxX + dx, b.MaxY + dy}
}

// PathBounds returns the exact bounding box of the curves in p.
// The second return value is false if p contains no drawing commands.
func PathBounds(p *path.Data) (Box, bool) {
	var acc boxAcc
	var cur, start vec.Vec2
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			cur, start = pts[0], pts[0]
		case path.CmdLineTo:
			acc.add(cur)
			acc.add(pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			acc.add(cur)
			acc.add(pts[1])
			quadExtrema(&acc, cur, pts[0], pts[1])
			cur = pts[1]
		case path.CmdCubeTo:
			acc.add(cur)
			acc.add(pts[2])
			cubicExtrema(&acc, cur, pts[0], pts[1], pts[2])
			cur = pts[2]
		case path.CmdClose:
			cur = start
		}
	}
	return acc.box, acc.ok
}

type boxAcc struct {
	box Box
	ok  bool
}

func (a *boxAcc) add(p vec.Vec2) {
	if !a.ok {
		a.box = Box{p.X, p.Y, p.X, p.Y}
		a.ok = true
		return
	}
	a.box.MinX = min(a.box.MinX, p.X)
	a.box.MinY = min(a.box.MinY, p.Y)
	a.box.MaxX = max(a.box.MaxX, p.X)
	a.box.MaxY = max(a.box.MaxY, p.Y)
}

func quadExtrema(acc *boxAcc, p0, p1, p2 vec.Vec2) {
	at := func(t float64) vec.Vec2 {
		s := 1 - t
		return p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
	}
	for _, c := range [2][3]float64{{p0.X, p1.X, p2.X}, {p0.Y, p1.Y, p2.Y}} {
		den := c[0] - 2*c[1] + c[2]
		if den == 0 {
			continue
		}
		if t := (c[0] - c[1]) / den; t > 0 && t < 1 {
			acc.add(at(t))
		}
	}
}

func cubicExtrema(acc *boxAcc, p0, p1, p2, p3 vec.Vec2) {
	at := func(t float64) vec.Vec2 {
		s := 1 - t
		return p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
	}
	for _, c := range [2][4]float64{{p0.X, p1.X, p2.X, p3.X}, {p0.Y, p1.Y, p2.Y, p3.Y}} {
		// derivative / 3 = a t² + b t + k
		a := -c[0] + 3*c[1] - 3*c[2] + c[3]
		b := 2 * (c[0] - 2*c[1] + c[2])
		k := c[1] - c[0]
		for _, t := range quadRoots(a, b, k) {
			if t > 0 && t < 1 {
				acc.add(at(t))
			}
		}
	}
}

// quadRoots returns the real roots of a t² + b t + c.
func quadRoots(a, b, c float64) []float64 {
	const eps = 1e-12
	if math.Abs(a) < eps {
		if math.Abs(b) < eps {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)}
}
