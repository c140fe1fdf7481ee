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
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
)

// Translate returns pts shifted by (tx, ty).
func Translate(pts []Point, tx, ty int) []Point {
	res := make([]Point, len(pts))
	for i, p := range pts {
		res[i] = Point{X: p.X + tx, Y: p.Y + ty}
	}
	return res
}

// Rotate returns pts rotated by deg degrees around (cx, cy).  Positive
// angles turn the positive x axis towards the positive y axis, which is
// clockwise on a y-down screen.  Results are truncated towards zero.
func Rotate(pts []Point, cx, cy int, deg float64) []Point {
	rad := deg / 180 * math.Pi
	s, c := math.Sincos(rad)
	return transformAbout(pts, matrix.Matrix{c, s, -s, c, 0, 0}, cx, cy)
}

// Scale returns pts scaled by factor relative to (cx, cy).
// Results are truncated towards zero.
func Scale(pts []Point, cx, cy int, factor float64) []Point {
	return transformAbout(pts, matrix.Scale(factor, factor), cx, cy)
}

// transformAbout applies the linear part of m to pts, with (cx, cy) as
// the origin.  The translation part of m is ignored.
func transformAbout(pts []Point, m matrix.Matrix, cx, cy int) []Point {
	res := make([]Point, len(pts))
	for i, p := range pts {
		x := float64(p.X - cx)
		y := float64(p.Y - cy)
		res[i] = Point{
			X: int(m[0]*x + m[2]*y + float64(cx)),
			Y: int(m[1]*x + m[3]*y + float64(cy)),
		}
	}
	return res
}

// Shape tracks the control points of a primitive during interactive
// editing.  Rotation and scaling are always computed from the base
// points recorded by the last Commit, using the cumulative parameter of
// the edit in progress, so that repeated updates do not accumulate
// rounding errors.
type Shape struct {
	base []Point
	cur  []Point
}

// NewShape returns a Shape whose base and current points are copies of pts.
func NewShape(pts []Point) *Shape {
	return &Shape{
		base: slices.Clone(pts),
		cur:  slices.Clone(pts),
	}
}

// Points returns a copy of the current control points.
func (s *Shape) Points() []Point {
	return slices.Clone(s.cur)
}

// Base returns a copy of the points recorded by the last Commit.
func (s *Shape) Base() []Point {
	return slices.Clone(s.base)
}

// Translate moves the current points by (dx, dy).
func (s *Shape) Translate(dx, dy int) {
	s.cur = Translate(s.cur, dx, dy)
}

// Rotate sets the current points to the base points rotated by deg
// degrees around (cx, cy).  Uncommitted translations are discarded.
func (s *Shape) Rotate(cx, cy int, deg float64) {
	s.cur = Rotate(s.base, cx, cy, deg)
}

// Scale sets the current points to the base points scaled by factor
// relative to (cx, cy).  Uncommitted translations are discarded.
func (s *Shape) Scale(cx, cy int, factor float64) {
	s.cur = Scale(s.base, cx, cy, factor)
}

// Commit ends the current edit.  The current points become the base for
// subsequent rotations and scalings.
func (s *Shape) Commit() {
	s.base = slices.Clone(s.cur)
}

// Center returns the center of the bounding box of the current points.
func (s *Shape) Center() Point {
	return Bounds(s.cur).Center()
}
