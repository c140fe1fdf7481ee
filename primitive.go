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
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	// ErrPointCount is returned for a primitive with the wrong number of
	// control points.
	ErrPointCount = errors.New("wrong number of control points")

	// ErrNotClippable is returned when clipping a primitive other than a line.
	ErrNotClippable = errors.New("only lines can be clipped")
)

// Primitive is a geometric primitive described by control points.
// The implementations are Line, Polygon, Circle, Ellipse and Curve.
//
// Color, stroke width and other drawing attributes are not part of a
// Primitive; they belong to the caller.
type Primitive interface {
	// ControlPoints returns the control points of the primitive.
	// The caller must not modify the returned slice.
	ControlPoints() []Point

	isPrimitive()
}

// Line is a straight segment between exactly two points.
type Line struct {
	Points    []Point
	Algorithm LineAlgorithm
}

// Polygon is a closed polygon through one or more vertices.
type Polygon struct {
	Points    []Point
	Algorithm LineAlgorithm
}

// Circle is the circle inscribed in the square with the two given
// opposite corners.
type Circle struct {
	Points []Point
}

// Ellipse is the axis-aligned ellipse inscribed in the rectangle with the
// two given opposite corners.
type Ellipse struct {
	Points []Point
}

// Curve is a Bezier curve or uniform cubic B-spline with two or more
// control points.
type Curve struct {
	Points    []Point
	Algorithm CurveAlgorithm
}

func (p Line) ControlPoints() []Point    { return p.Points }
func (p Polygon) ControlPoints() []Point { return p.Points }
func (p Circle) ControlPoints() []Point  { return p.Points }
func (p Ellipse) ControlPoints() []Point { return p.Points }
func (p Curve) ControlPoints() []Point   { return p.Points }

func (Line) isPrimitive()    {}
func (Polygon) isPrimitive() {}
func (Circle) isPrimitive()  {}
func (Ellipse) isPrimitive() {}
func (Curve) isPrimitive()   {}

// Pixels checks the control points of p and returns an iterator over the
// pixels of the primitive.  A primitive without control points has no
// pixels and is not an error.  All validation happens before the
// iterator is returned.
func Pixels(p Primitive) (iter.Seq[Point], error) {
	pts := p.ControlPoints()
	if len(pts) == 0 {
		return func(func(Point) bool) {}, nil
	}

	switch p := p.(type) {
	case Line:
		if err := checkCount("line", pts, 2, 2); err != nil {
			return nil, err
		}
		return lineSeq(pts[0], pts[1], p.Algorithm), nil
	case Polygon:
		return polygonSeq(pts, p.Algorithm), nil
	case Circle:
		if err := checkCount("circle", pts, 2, 2); err != nil {
			return nil, err
		}
		return circleSeq(pts[0], pts[1])
	case Ellipse:
		if err := checkCount("ellipse", pts, 2, 2); err != nil {
			return nil, err
		}
		return ellipseSeq(pts[0], pts[1]), nil
	case Curve:
		if err := checkCount("curve", pts, 2, -1); err != nil {
			return nil, err
		}
		return curveSeq(pts, p.Algorithm), nil
	default:
		panic(fmt.Sprintf("unexpected primitive %T", p))
	}
}

// Rasterize returns the pixels of p.
func Rasterize(p Primitive) ([]Point, error) {
	seq, err := Pixels(p)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// WithPoints returns a primitive of the same kind and with the same
// algorithm as p, but with control points pts.
func WithPoints(p Primitive, pts []Point) Primitive {
	switch p := p.(type) {
	case Line:
		p.Points = pts
		return p
	case Polygon:
		p.Points = pts
		return p
	case Circle:
		p.Points = pts
		return p
	case Ellipse:
		p.Points = pts
		return p
	case Curve:
		p.Points = pts
		return p
	default:
		panic(fmt.Sprintf("unexpected primitive %T", p))
	}
}

// ClipPrimitive clips a Line against w.  If nothing of the line is
// visible, the result is a Line without control points.
func ClipPrimitive(p Primitive, w Window, alg ClipAlgorithm) (Primitive, error) {
	l, ok := p.(Line)
	if !ok {
		return nil, fmt.Errorf("%T: %w", p, ErrNotClippable)
	}
	if len(l.Points) == 0 {
		return l, nil
	}
	if err := checkCount("line", l.Points, 2, 2); err != nil {
		return nil, err
	}
	l.Points = Clip(l.Points[0], l.Points[1], w, alg)
	return l, nil
}

// checkCount verifies that lo <= len(pts) <= hi.  A negative hi means
// no upper limit.
func checkCount(kind string, pts []Point, lo, hi int) error {
	n := len(pts)
	if n < lo || (hi >= 0 && n > hi) {
		return fmt.Errorf("%s with %d points: %w", kind, n, ErrPointCount)
	}
	return nil
}
