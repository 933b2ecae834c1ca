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

// Package paint draws backgrounds and composites filled paths onto RGBA
// canvases.
package paint

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"
)

// RadialGradient returns an opaque w×h image which fades from inner at the
// canvas center to outer at the corners.  Each pixel is perturbed by a
// noise value in [-noise, +noise], which depends only on the pixel
// position.  The same noise value is added to all three channels.
func RadialGradient(w, h int, inner, outer color.RGBA, noise int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx, cy := w/2, h/2
	maxDist := math.Hypot(float64(w)/2, float64(h)/2)

	n := newNoise(noise)
	for y := range h {
		row := img.Pix[y*img.Stride:]
		for x := range w {
			d := math.Hypot(float64(x-cx), float64(y-cy))
			ratio := min(d/maxDist, 1)
			setPixel(row[4*x:], inner, outer, ratio, n.at(x, y))
		}
	}
	return img
}

// LinearGradient returns an opaque w×h image which fades from top in the
// first row to bottom in the last row.  Noise is applied as for
// RadialGradient.
func LinearGradient(w, h int, top, bottom color.RGBA, noise int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	n := newNoise(noise)
	for y := range h {
		ratio := 0.0
		if h > 1 {
			ratio = float64(y) / float64(h-1)
		}
		row := img.Pix[y*img.Stride:]
		for x := range w {
			setPixel(row[4*x:], top, bottom, ratio, n.at(x, y))
		}
	}
	return img
}

func setPixel(pix []uint8, c0, c1 color.RGBA, ratio float64, offs int) {
	pix[0] = clampChannel(interpolate(c0.R, c1.R, ratio) + offs)
	pix[1] = clampChannel(interpolate(c0.G, c1.G, ratio) + offs)
	pix[2] = clampChannel(interpolate(c0.B, c1.B, ratio) + offs)
	pix[3] = 255
}

// interpolate returns c0 - (c0-c1)*ratio, truncated towards zero.
func interpolate(c0, c1 uint8, ratio float64) int {
	a, b := float64(c0), float64(c1)
	return int(a - (a-b)*ratio)
}

func clampChannel(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}

// noise generates reproducible per-pixel offsets.  The generator is
// re-seeded from the pixel position for every pixel, so the value at a
// position does not depend on the order in which pixels are visited.
type noise struct {
	amp int
	src *rand.PCG
	rng *rand.Rand
}

func newNoise(amp int) *noise {
	src := rand.NewPCG(0, 0)
	return &noise{amp: max(amp, 0), src: src, rng: rand.New(src)}
}

func (n *noise) at(x, y int) int {
	if n.amp == 0 {
		return 0
	}
	n.src.Seed(uint64(x*1000+y), 0)
	return n.rng.IntN(2*n.amp+1) - n.amp
}

// Noise returns the offset added to the pixel (x, y) by the gradient
// functions, for the given amplitude.
func Noise(x, y, amp int) int {
	return newNoise(amp).at(x, y)
}
