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

	"seehuhn.de/go/geom/vec"
)

// bsplineOrder is the order (degree + 1) of the B-spline basis.
const bsplineOrder = 4

// DrawCurve samples the curve given by the control points pts.
//
// For Bezier, the curve passes through the first and the last control
// point and is sampled at u = i/n for i = 0, ..., n, where n is
// CurveSamples(pts).  For BSpline, the curve is a uniform cubic B-spline
// which in general passes through none of the control points.  It is
// sampled at n evenly spaced parameters in [3, len(pts)); fewer than four
// control points give no output.
func DrawCurve(pts []Point, alg CurveAlgorithm) []Point {
	return slices.Collect(curveSeq(pts, alg))
}

// CurveSamples returns the number of parameter steps used to sample a
// curve with control points pts.  The count grows with the size of the
// control point bounding box so that consecutive samples are close at
// raster resolution.
func CurveSamples(pts []Point) int {
	b := Bounds(pts)
	return max(2, 2*((b.XMax-b.XMin)+(b.YMax-b.YMin)))
}

func curveSeq(pts []Point, alg CurveAlgorithm) iter.Seq[Point] {
	if len(pts) == 0 {
		return func(func(Point) bool) {}
	}
	n := CurveSamples(pts)
	switch alg {
	case Bezier:
		return func(yield func(Point) bool) {
			work := make([]vec.Vec2, len(pts))
			for i := 0; i <= n; i++ {
				u := float64(i) / float64(n)
				if !yield(roundVec(deCasteljau(work, pts, u))) {
					return
				}
			}
		}
	case BSpline:
		return func(yield func(Point) bool) {
			m := len(pts)
			if m < bsplineOrder {
				return
			}
			basis := make([]float64, m+bsplineOrder-1)
			lo := float64(bsplineOrder - 1)
			span := float64(m - (bsplineOrder - 1))
			for i := range n {
				u := lo + float64(i)*span/float64(n)
				if !yield(roundVec(deBoor(basis, pts, u))) {
					return
				}
			}
		}
	default:
		panic("unexpected curve algorithm " + alg.String())
	}
}

// BezierPoint evaluates the Bezier curve with control points pts at
// parameter u in [0, 1], using the de Casteljau algorithm.
func BezierPoint(pts []Point, u float64) Point {
	if len(pts) == 0 {
		return Point{}
	}
	return roundVec(deCasteljau(make([]vec.Vec2, len(pts)), pts, u))
}

// deCasteljau repeatedly replaces neighbouring points by their convex
// combination until one point is left.  work must have len(pts) elements.
func deCasteljau(work []vec.Vec2, pts []Point, u float64) vec.Vec2 {
	for i, p := range pts {
		work[i] = p.Vec()
	}
	for n := len(work) - 1; n > 0; n-- {
		for i := range n {
			work[i] = work[i].Mul(1 - u).Add(work[i+1].Mul(u))
		}
	}
	return work[0]
}

// BSplinePoint evaluates the uniform cubic B-spline with control points
// pts at parameter u.  The knot vector is 0, 1, 2, ... and the curve is
// defined for u in [3, len(pts)).  Outside this range the basis functions
// do not sum to one.
func BSplinePoint(pts []Point, u float64) Point {
	if len(pts) == 0 {
		return Point{}
	}
	return roundVec(deBoor(make([]float64, len(pts)+bsplineOrder-1), pts, u))
}

// deBoor computes the point Σ B_{i,4}(u)·pts[i].  basis must have
// len(pts)+3 elements.
func deBoor(basis []float64, pts []Point, u float64) vec.Vec2 {
	bsplineBasis(basis, u)
	var sum vec.Vec2
	for i, p := range pts {
		sum = sum.Add(p.Vec().Mul(basis[i]))
	}
	return sum
}

// bsplineBasis fills basis[:len(basis)-3] with the values B_{i,4}(u) of
// the uniform B-spline basis with knots t_i = i.  The Cox-de Boor
// recurrence is evaluated bottom-up, one order at a time, overwriting
// the order k-1 values in place.
func bsplineBasis(basis []float64, u float64) {
	for i := range basis {
		if float64(i) <= u && u < float64(i+1) {
			basis[i] = 1
		} else {
			basis[i] = 0
		}
	}
	for k := 2; k <= bsplineOrder; k++ {
		for i := 0; i < len(basis)-k+1; i++ {
			// knot differences t_{i+k-1}-t_i and t_{i+k}-t_{i+1}
			d1 := float64(k - 1)
			d2 := float64(k - 1)

			var w1, w2 float64
			if d1 != 0 {
				w1 = (u - float64(i)) / d1
			}
			if d2 != 0 {
				w2 = (float64(i+k) - u) / d2
			}
			basis[i] = w1*basis[i] + w2*basis[i+1]
		}
	}
}
