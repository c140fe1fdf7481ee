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

import "testing"

func TestEllipseSymmetry(t *testing.T) {
	for a := 0; a < 30; a++ {
		for b := 0; b < 30; b++ {
			pts := DrawEllipse(Pt(10, 10), Pt(10+2*a, 10+2*b))
			if len(pts) == 0 || len(pts)%4 != 0 {
				t.Fatalf("a=%d, b=%d: got %d pixels", a, b, len(pts))
			}
			center := Pt(10+a, 10+b)
			if pts[0] != Pt(center.X+a, center.Y) {
				t.Errorf("a=%d, b=%d: walk starts at %s", a, b, pts[0])
			}

			seen := make(map[Point]bool)
			for _, p := range pts {
				seen[p] = true
			}
			for p := range seen {
				mirror := []Point{
					{2*center.X - p.X, p.Y},
					{p.X, 2*center.Y - p.Y},
				}
				for _, q := range mirror {
					if !seen[q] {
						t.Errorf("a=%d, b=%d: %s present but %s missing", a, b, p, q)
					}
				}
				if p.X < center.X-a || p.X > center.X+a {
					t.Errorf("a=%d, b=%d: %s outside the bounding box", a, b, p)
				}
			}
		}
	}
}

func TestEllipseWideReachesTop(t *testing.T) {
	// For wide ellipses the walk ends on the y axis.
	for a := 1; a < 30; a++ {
		for b := 1; b <= a; b++ {
			pts := DrawEllipse(Pt(0, 0), Pt(2*a, 2*b))
			found := false
			for _, p := range pts {
				if p == Pt(a, 0) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("a=%d, b=%d: top point missing", a, b)
			}
		}
	}
}

func TestEllipseCircle(t *testing.T) {
	// An ellipse with equal axes stays close to the circle.
	for r := 1; r < 30; r++ {
		pts := DrawEllipse(Pt(0, 0), Pt(2*r, 2*r))
		for _, p := range pts {
			dx, dy := p.X-r, p.Y-r
			d2 := dx*dx + dy*dy
			if d2 < (r-1)*(r-1) || d2 > (r+1)*(r+1) {
				t.Errorf("r=%d: pixel %s too far from the circle", r, p)
			}
		}
	}
}
