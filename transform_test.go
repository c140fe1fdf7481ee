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
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTranslate(t *testing.T) {
	in := []Point{{1, 1}, {3, 3}}
	got := Translate(in, 2, -1)
	if d := cmp.Diff([]Point{{3, 0}, {5, 2}}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	if d := cmp.Diff(in, Translate(got, -2, 1)); d != "" {
		t.Errorf("inverse (-want +got):\n%s", d)
	}
	if in[0] != Pt(1, 1) {
		t.Error("input was modified")
	}
}

func TestRotateQuarter(t *testing.T) {
	got := Rotate([]Point{{3, 0}, {0, 3}}, 0, 0, 90)
	if d := cmp.Diff([]Point{{0, 3}, {-3, 0}}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	got = Rotate([]Point{{10, 5}, {13, 5}}, 10, 5, 90)
	if d := cmp.Diff([]Point{{10, 5}, {10, 8}}, got); d != "" {
		t.Errorf("about (10,5) (-want +got):\n%s", d)
	}

	got = Rotate([]Point{{7, 2}}, 4, 4, 0)
	if d := cmp.Diff([]Point{{7, 2}}, got); d != "" {
		t.Errorf("zero angle (-want +got):\n%s", d)
	}
}

func TestRotateRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for range 2000 {
		p := Pt(rng.IntN(201), rng.IntN(201))
		cx, cy := rng.IntN(201), rng.IntN(201)
		deg := rng.Float64()*720 - 360

		q := Rotate(Rotate([]Point{p}, cx, cy, deg), cx, cy, -deg)[0]
		if abs(q.X-p.X) > 2 || abs(q.Y-p.Y) > 2 {
			t.Errorf("%s rotated by %g and back about (%d,%d) gives %s", p, deg, cx, cy, q)
		}
	}
}

func TestScale(t *testing.T) {
	got := Scale([]Point{{10, 10}, {14, 10}}, 10, 10, 1.5)
	if d := cmp.Diff([]Point{{10, 10}, {16, 10}}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	// results are truncated
	got = Scale([]Point{{2, 2}, {3, 3}, {5, 5}}, 0, 0, 0.7)
	if d := cmp.Diff([]Point{{1, 1}, {2, 2}, {3, 3}}, got); d != "" {
		t.Errorf("truncation (-want +got):\n%s", d)
	}

	rng := rand.New(rand.NewPCG(9, 10))
	for range 1000 {
		p := Pt(rng.IntN(201), rng.IntN(201))
		cx, cy := rng.IntN(201), rng.IntN(201)
		for _, f := range []float64{2, 4} {
			q := Scale(Scale([]Point{p}, cx, cy, f), cx, cy, 1/f)[0]
			if q != p {
				t.Errorf("%s scaled by %g and back about (%d,%d) gives %s", p, f, cx, cy, q)
			}
		}
	}
}

func TestShape(t *testing.T) {
	s := NewShape([]Point{{0, 0}, {10, 0}})

	// Translation accumulates.
	s.Translate(1, 1)
	s.Translate(1, 1)
	if d := cmp.Diff([]Point{{2, 2}, {12, 2}}, s.Points()); d != "" {
		t.Errorf("translate (-want +got):\n%s", d)
	}

	// Scaling starts from the base, so the uncommitted translation is
	// lost.  Repeated calls do not compound.
	s.Scale(0, 0, 2)
	s.Scale(0, 0, 2)
	if d := cmp.Diff([]Point{{0, 0}, {20, 0}}, s.Points()); d != "" {
		t.Errorf("scale (-want +got):\n%s", d)
	}

	s.Commit()
	if d := cmp.Diff(s.Points(), s.Base()); d != "" {
		t.Errorf("commit (-base +points):\n%s", d)
	}
	if got := s.Center(); got != Pt(10, 0) {
		t.Errorf("expected center (10,0), got %s", got)
	}

	s.Rotate(10, 0, 90)
	if d := cmp.Diff([]Point{{10, -10}, {10, 10}}, s.Points()); d != "" {
		t.Errorf("rotate (-want +got):\n%s", d)
	}
	s.Rotate(10, 0, 180)
	if d := cmp.Diff([]Point{{20, 0}, {0, 0}}, s.Points()); d != "" {
		t.Errorf("rotate twice (-want +got):\n%s", d)
	}

	// The returned slices are copies.
	pts := s.Points()
	pts[0] = Pt(99, 99)
	if slices.Contains(s.Points(), Pt(99, 99)) {
		t.Error("Points returned internal state")
	}
}
