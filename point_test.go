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
	"testing"

	"seehuhn.de/go/geom/rect"
)

func TestWindow(t *testing.T) {
	w := NewWindow(10, 0, 0, 20)
	if w != (Window{XMin: 0, YMin: 0, XMax: 10, YMax: 20}) {
		t.Errorf("unexpected window %v", w)
	}

	for _, p := range []Point{{0, 0}, {10, 20}, {5, 7}, {0, 20}} {
		if !w.Contains(p) {
			t.Errorf("%s should be inside", p)
		}
	}
	for _, p := range []Point{{-1, 0}, {11, 5}, {5, 21}, {5, -1}} {
		if w.Contains(p) {
			t.Errorf("%s should be outside", p)
		}
	}

	if r := w.Rect(); r != (rect.Rect{LLx: 0, LLy: 0, URx: 11, URy: 21}) {
		t.Errorf("unexpected rectangle %v", r)
	}
	if c := w.Center(); c != Pt(5, 10) {
		t.Errorf("unexpected center %s", c)
	}
}

func TestBounds(t *testing.T) {
	got := Bounds([]Point{{3, -1}, {-2, 4}, {0, 0}})
	if got != (Window{XMin: -2, YMin: -1, XMax: 3, YMax: 4}) {
		t.Errorf("unexpected bounds %v", got)
	}
	if got := Bounds(nil); got != (Window{}) {
		t.Errorf("unexpected bounds %v for no points", got)
	}
	if c := got.Center(); c != Pt(0, 1) {
		t.Errorf("unexpected center %s", c)
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct{ a, want int }{
		{7, 3}, {6, 3}, {0, 0}, {-1, -1}, {-2, -1}, {-3, -2},
	}
	for _, tc := range cases {
		if got := floorDiv(tc.a, 2); got != tc.want {
			t.Errorf("floorDiv(%d, 2) = %d, want %d", tc.a, got, tc.want)
		}
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		x    float64
		want int
	}{
		{0.5, 1}, {0.49, 0}, {2.5, 3}, {-0.4, 0}, {-0.5, 0}, {-1.6, -1},
	}
	for _, tc := range cases {
		if got := round(tc.x); got != tc.want {
			t.Errorf("round(%g) = %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestPointString(t *testing.T) {
	if s := Pt(-3, 12).String(); s != "(-3,12)" {
		t.Errorf("unexpected %q", s)
	}
}
