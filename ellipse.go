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

// DrawEllipse returns the pixels of the axis-aligned ellipse inscribed in
// the rectangle with opposite corners c0 and c1, using the midpoint
// algorithm.  The center and the semi-axes are rounded down.
//
// The walk starts on the x axis at (a, 0) and ends on the y axis.  Points
// are emitted in groups of four reflections, as for DrawCircle.
func DrawEllipse(c0, c1 Point) []Point {
	return slices.Collect(ellipseSeq(c0, c1))
}

func ellipseSeq(c0, c1 Point) iter.Seq[Point] {
	center := Point{X: floorDiv(c0.X+c1.X, 2), Y: floorDiv(c0.Y+c1.Y, 2)}
	a := abs(c1.X-c0.X) / 2
	b := abs(c1.Y-c0.Y) / 2

	return func(yield func(Point) bool) {
		e := newEllipseState(a, b)
		for e.inRegion1() {
			if !yieldQuadrants(yield, center, e.x, e.y) {
				return
			}
			e.advance1()
		}
		e.enterRegion2()
		for e.x >= 0 {
			if !yieldQuadrants(yield, center, e.x, e.y) {
				return
			}
			e.advance2()
		}
	}
}

// ellipseState holds the position and the decision variable of the
// midpoint ellipse walk.  The decision variables are half-integers,
// so float64 represents them exactly.
type ellipseState struct {
	x, y int
	d    float64

	aa, bb float64 // a², b²
}

func newEllipseState(a, b int) *ellipseState {
	aa := float64(a * a)
	bb := float64(b * b)
	x := a
	return &ellipseState{
		x:  x,
		y:  0,
		d:  2*bb*float64(x)*float64(x-1) + bb/2 + 2*aa*(1-bb),
		aa: aa,
		bb: bb,
	}
}

// inRegion1 reports whether the slope of the arc at the current point
// is still steeper than -1 in the (y, x) walk, i.e. b²(x-½) > a²(y+1).
func (e *ellipseState) inRegion1() bool {
	return e.bb*(float64(e.x)-0.5) > e.aa*float64(e.y+1)
}

// advance1 always steps y and steps x when the midpoint lies outside.
func (e *ellipseState) advance1() {
	if e.d < 0 {
		e.y++
		e.d += 4*e.aa*float64(e.y) + 2*e.aa
	} else {
		e.x--
		e.y++
		e.d += 4*e.aa*float64(e.y) - 4*e.bb*float64(e.x) + 2*e.aa
	}
}

func (e *ellipseState) enterRegion2() {
	x, y := float64(e.x), float64(e.y)
	e.d = 2*e.bb*(x*x+1) - 4*e.bb*x + 2*e.aa*(y*y+y-e.bb) + e.aa/2
}

// advance2 always steps x and steps y when the midpoint lies inside.
func (e *ellipseState) advance2() {
	if e.d < 0 {
		e.x--
		e.y++
		e.d += 4*e.aa*float64(e.y) - 4*e.bb*float64(e.x) + 2*e.bb
	} else {
		e.x--
		e.d += -4*e.bb*float64(e.x) + 2*e.bb
	}
}
