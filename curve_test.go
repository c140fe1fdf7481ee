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
	"math/rand/v2"
	"testing"
)

func TestCurveSamples(t *testing.T) {
	cases := []struct {
		pts  []Point
		want int
	}{
		{[]Point{{0, 0}, {3, 4}}, 14},
		{[]Point{{5, 5}, {5, 5}}, 2},
		{[]Point{{0, 0}, {1, 0}}, 2},
		{[]Point{{10, 0}, {0, 10}, {5, 20}}, 60},
	}
	for _, tc := range cases {
		if got := CurveSamples(tc.pts); got != tc.want {
			t.Errorf("%v: expected %d, got %d", tc.pts, tc.want, got)
		}
	}
}

func TestBezierEndpoints(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 200 {
		n := 2 + rng.IntN(6)
		pts := make([]Point, n)
		for i := range pts {
			pts[i] = Pt(rng.IntN(100), rng.IntN(100))
		}
		got := DrawCurve(pts, Bezier)
		if len(got) != CurveSamples(pts)+1 {
			t.Fatalf("%v: expected %d samples, got %d", pts, CurveSamples(pts)+1, len(got))
		}
		if got[0] != pts[0] || got[len(got)-1] != pts[n-1] {
			t.Errorf("%v: curve runs from %s to %s", pts, got[0], got[len(got)-1])
		}
	}
}

func TestBezierPoint(t *testing.T) {
	// quadratic with control points (0,0), (10,20), (20,0) peaks at u=1/2
	pts := []Point{{0, 0}, {10, 20}, {20, 0}}
	if got := BezierPoint(pts, 0.5); got != Pt(10, 10) {
		t.Errorf("expected (10,10), got %s", got)
	}
	if got := BezierPoint(nil, 0.5); got != (Point{}) {
		t.Errorf("expected zero point, got %s", got)
	}
}

// coxDeBoor is the textbook recursion for the uniform basis with
// knots t_i = i.
func coxDeBoor(i, k int, u float64) float64 {
	if k == 1 {
		if float64(i) <= u && u < float64(i+1) {
			return 1
		}
		return 0
	}
	t := float64(i)
	d := float64(k - 1)
	return (u-t)/d*coxDeBoor(i, k-1, u) + (t+float64(k)-u)/d*coxDeBoor(i+1, k-1, u)
}

func TestBSplineBasis(t *testing.T) {
	const m = 7
	basis := make([]float64, m+bsplineOrder-1)
	for step := 0; step <= 80; step++ {
		u := float64(step) / 10
		bsplineBasis(basis, u)
		for i := range m {
			want := coxDeBoor(i, bsplineOrder, u)
			if math.Abs(basis[i]-want) > 1e-12 {
				t.Errorf("B_%d(%g): expected %g, got %g", i, u, want, basis[i])
			}
		}

		if u < bsplineOrder-1 || u >= m {
			continue
		}
		var sum float64
		for i := range m {
			if basis[i] < 0 {
				t.Errorf("B_%d(%g) = %g < 0", i, u, basis[i])
			}
			sum += basis[i]
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("u=%g: basis sums to %g", u, sum)
		}
	}
}

func TestBSplineLinear(t *testing.T) {
	// Evenly spaced collinear control points give x(u) = 10(u-2).
	pts := []Point{{0, 0}, {10, 0}, {20, 0}, {30, 0}, {40, 0}}
	got := DrawCurve(pts, BSpline)
	if len(got) != CurveSamples(pts) {
		t.Fatalf("expected %d samples, got %d", CurveSamples(pts), len(got))
	}
	if got[0] != Pt(10, 0) {
		t.Errorf("curve starts at %s", got[0])
	}
	for i, p := range got {
		if p.Y != 0 || p.X < 10 || p.X > 30 {
			t.Errorf("sample %d: unexpected %s", i, p)
		}
		if i > 0 && p.X < got[i-1].X {
			t.Errorf("sample %d: x decreases from %d to %d", i, got[i-1].X, p.X)
		}
	}

	if got := BSplinePoint(pts, 4); got != Pt(20, 0) {
		t.Errorf("expected (20,0) at u=4, got %s", got)
	}
}

func TestBSplineTooShort(t *testing.T) {
	for n := range bsplineOrder {
		pts := make([]Point, n)
		for i := range pts {
			pts[i] = Pt(3*i, i*i)
		}
		if got := DrawCurve(pts, BSpline); len(got) != 0 {
			t.Errorf("%d points: expected no output, got %v", n, got)
		}
	}
}
