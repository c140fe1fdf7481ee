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
	"fmt"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Point is a pixel or control point in device space.
// The y axis points down.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Vec returns p as a floating point vector.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// round converts a coordinate to an integer by adding 0.5 and truncating
// towards zero.  For negative values this is not round-to-nearest.
func round(x float64) int {
	return int(x + 0.5)
}

// roundVec applies round to both coordinates of v.
func roundVec(v vec.Vec2) Point {
	return Point{X: round(v.X), Y: round(v.Y)}
}

// Window is an axis-aligned clip rectangle with inclusive bounds.
// A valid window has XMin <= XMax and YMin <= YMax.
type Window struct {
	XMin, YMin int
	XMax, YMax int
}

// NewWindow returns the window spanned by two opposite corners,
// given in any order.
func NewWindow(x0, y0, x1, y1 int) Window {
	return Window{
		XMin: min(x0, x1),
		YMin: min(y0, y1),
		XMax: max(x0, x1),
		YMax: max(y0, y1),
	}
}

// Contains reports whether p lies inside w or on its boundary.
func (w Window) Contains(p Point) bool {
	return p.X >= w.XMin && p.X <= w.XMax && p.Y >= w.YMin && p.Y <= w.YMax
}

// Rect returns the device space rectangle covered by the pixels of w.
// Pixel (x, y) covers the unit square with lower left corner (x, y).
func (w Window) Rect() rect.Rect {
	return rect.Rect{
		LLx: float64(w.XMin),
		LLy: float64(w.YMin),
		URx: float64(w.XMax + 1),
		URy: float64(w.YMax + 1),
	}
}

// Bounds returns the bounding box of pts.
// The result is the zero Window if pts is empty.
func Bounds(pts []Point) Window {
	if len(pts) == 0 {
		return Window{}
	}
	w := Window{XMin: pts[0].X, YMin: pts[0].Y, XMax: pts[0].X, YMax: pts[0].Y}
	for _, p := range pts[1:] {
		w.XMin = min(w.XMin, p.X)
		w.YMin = min(w.YMin, p.Y)
		w.XMax = max(w.XMax, p.X)
		w.YMax = max(w.YMax, p.Y)
	}
	return w
}

// Center returns the center of w, rounded down.
func (w Window) Center() Point {
	return Point{X: floorDiv(w.XMin+w.XMax, 2), Y: floorDiv(w.YMin+w.YMax, 2)}
}

// floorDiv divides a by b > 0, rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
