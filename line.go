// seehuhn.de/go/scan - integer scan conversion for 2D primitives
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

package scan

import (
	"iter"
	"slices"
)

// DrawLine returns the pixels of the segment from p0 to p1, in order.
// A segment with p0 == p1 gives the single pixel p0.
func DrawLine(p0, p1 Point, alg LineAlgorithm) []Point {
	return slices.Collect(lineSeq(p0, p1, alg))
}

// DrawPolygon returns the outline of the closed polygon with the given
// vertices.  The edge from the last vertex back to the first is drawn
// first, followed by the edges between consecutive vertices.  Shared
// vertices appear once per incident edge.
func DrawPolygon(pts []Point, alg LineAlgorithm) []Point {
	return slices.Collect(polygonSeq(pts, alg))
}

func polygonSeq(pts []Point, alg LineAlgorithm) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		n := len(pts)
		for i := range n {
			prev := pts[(i+n-1)%n]
			for p := range lineSeq(prev, pts[i], alg) {
				if !yield(p) {
					return
				}
			}
		}
	}
}

func lineSeq(p0, p1 Point, alg LineAlgorithm) iter.Seq[Point] {
	if p0 == p1 {
		return func(yield func(Point) bool) {
			yield(p0)
		}
	}
	switch alg {
	case Naive:
		return naiveLine(p0, p1)
	case DDA:
		return ddaLine(p0, p1)
	case Bresenham:
		return func(yield func(Point) bool) {
			b := newBresenham(p0, p1)
			for range b.steps {
				if !yield(b.pos) {
					return
				}
				b.advance()
			}
		}
	default:
		panic("unexpected line algorithm " + alg.String())
	}
}

// naiveLine iterates over x (or over y for vertical lines) and truncates
// the interpolated minor coordinate.  Steep lines get gaps.
func naiveLine(p0, p1 Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if p0.X == p1.X {
			step := sign(p1.Y - p0.Y)
			for y := p0.Y; ; y += step {
				if !yield(Point{X: p0.X, Y: y}) || y == p1.Y {
					return
				}
			}
		}

		if p0.X > p1.X {
			p0, p1 = p1, p0
		}
		dx := float64(p1.X - p0.X)
		dy := float64(p1.Y - p0.Y)
		for x := p0.X; x <= p1.X; x++ {
			y := float64(p0.Y) + dy*float64(x-p0.X)/dx
			if !yield(Point{X: x, Y: int(y)}) {
				return
			}
		}
	}
}

// ddaLine takes max(|dx|, |dy|) unit steps along the major axis.
// The floating point error accumulates over the steps.
func ddaLine(p0, p1 Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		length := max(abs(p1.X-p0.X), abs(p1.Y-p0.Y))
		dx := float64(p1.X-p0.X) / float64(length)
		dy := float64(p1.Y-p0.Y) / float64(length)
		x, y := float64(p0.X), float64(p0.Y)
		for range length + 1 {
			if !yield(Point{X: round(x), Y: round(y)}) {
				return
			}
			x += dx
			y += dy
		}
	}
}

// bresenham is the state of the integer line algorithm.  The major axis
// is x unless interchange is set.
type bresenham struct {
	pos         Point
	sx, sy      int  // step directions
	dx, dy      int  // extents along the major and minor axis
	e           int  // decision variable
	interchange bool // true if y is the major axis
	steps       int  // number of pixels to emit
}

func newBresenham(p0, p1 Point) *bresenham {
	b := &bresenham{
		pos: p0,
		sx:  sign(p1.X - p0.X),
		sy:  sign(p1.Y - p0.Y),
		dx:  abs(p1.X - p0.X),
		dy:  abs(p1.Y - p0.Y),
	}
	if b.dy > b.dx {
		b.dx, b.dy = b.dy, b.dx
		b.interchange = true
	}
	b.e = 2*b.dy - b.dx
	b.steps = b.dx + 1
	return b
}

// advance moves pos to the next pixel.
func (b *bresenham) advance() {
	for b.e > 0 {
		if b.interchange {
			b.pos.X += b.sx
		} else {
			b.pos.Y += b.sy
		}
		b.e -= 2 * b.dx
	}
	if b.interchange {
		b.pos.Y += b.sy
	} else {
		b.pos.X += b.sx
	}
	b.e += 2 * b.dy
}
