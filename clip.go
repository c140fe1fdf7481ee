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

// Clip clips the segment from p0 to p1 against the window w.
//
// The result is nil if no part of the segment lies inside w, the
// unchanged pair [p0, p1] if the segment lies entirely inside, and the
// clipped pair otherwise.  Clipped pairs keep the direction of the input.
//
// Both algorithms compute intersections exactly, in integer arithmetic,
// and truncate the intersection coordinates towards zero.  For the same
// input they return the same result.
func Clip(p0, p1 Point, w Window, alg ClipAlgorithm) []Point {
	switch alg {
	case CohenSutherland:
		return cohenSutherland(p0, p1, w)
	case LiangBarsky:
		return liangBarsky(p0, p1, w)
	default:
		panic("unexpected clip algorithm " + alg.String())
	}
}

// outcode classifies a point relative to a window, one bit per window
// edge the point lies beyond.
type outcode uint8

const (
	outLeft  outcode = 1 << iota // x < XMin
	outRight                     // x > XMax
	outLow                       // y < YMin
	outHigh                      // y > YMax
)

// ratPoint is the point (x/den, y/den).  den is always positive.
type ratPoint struct {
	x, y, den int
}

func (p ratPoint) truncate() Point {
	return Point{X: p.x / p.den, Y: p.y / p.den}
}

func (w Window) outcode(p ratPoint) outcode {
	var c outcode
	if p.y > w.YMax*p.den {
		c |= outHigh
	}
	if p.y < w.YMin*p.den {
		c |= outLow
	}
	if p.x > w.XMax*p.den {
		c |= outRight
	}
	if p.x < w.XMin*p.den {
		c |= outLeft
	}
	return c
}

// segmentKind distinguishes the segments which never cross a vertical or
// a horizontal window edge.
type segmentKind int

const (
	generalSegment segmentKind = iota
	verticalSegment
	horizontalSegment
)

// csMaxPasses bounds the number of sweeps over the window edges.
// With exact intersections two sweeps always suffice.
const csMaxPasses = 4

func cohenSutherland(p0, p1 Point, w Window) []Point {
	a := ratPoint{x: p0.X, y: p0.Y, den: 1}
	b := ratPoint{x: p1.X, y: p1.Y, den: 1}
	ca, cb := w.outcode(a), w.outcode(b)
	if ca|cb == 0 {
		return []Point{p0, p1}
	}
	if ca&cb != 0 {
		return nil
	}

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	kind := generalSegment
	switch {
	case dx == 0:
		kind = verticalSegment
	case dy == 0:
		kind = horizontalSegment
	}

	edges := [4]struct {
		bit   outcode
		value int
	}{
		{outLeft, w.XMin},
		{outRight, w.XMax},
		{outLow, w.YMin},
		{outHigh, w.YMax},
	}

	// a is always the endpoint being moved; swapped records whether a
	// and b are currently exchanged relative to the input.
	swapped := false
	result := func() []Point {
		if swapped {
			return []Point{b.truncate(), a.truncate()}
		}
		return []Point{a.truncate(), b.truncate()}
	}

	for range csMaxPasses {
		for i, e := range edges {
			if ca&e.bit == cb&e.bit {
				continue
			}
			if ca&e.bit == 0 {
				a, b = b, a
				ca, cb = cb, ca
				swapped = !swapped
			}

			// Intersections are computed from the input endpoints.
			if i <= 1 {
				if kind != verticalSegment {
					den := abs(dx)
					a = ratPoint{
						x:   e.value * den,
						y:   p0.Y*den + (e.value-p0.X)*dy*sign(dx),
						den: den,
					}
				}
			} else if kind != horizontalSegment {
				den := abs(dy)
				a = ratPoint{
					x:   p0.X*den + (e.value-p0.Y)*dx*sign(dy),
					y:   e.value * den,
					den: den,
				}
			}
			ca = w.outcode(a)

			if ca|cb == 0 {
				return result()
			}
			if ca&cb != 0 {
				return nil
			}
		}
	}
	return nil
}

// ratio is the fraction num/den with den > 0.
type ratio struct {
	num, den int
}

func (t ratio) less(s ratio) bool {
	return t.num*s.den < s.num*t.den
}

// at returns the point p0 + t·(p1-p0), truncated towards zero.
func (t ratio) at(p0, p1 Point) Point {
	return ratPoint{
		x:   p0.X*t.den + (p1.X-p0.X)*t.num,
		y:   p0.Y*t.den + (p1.Y-p0.Y)*t.num,
		den: t.den,
	}.truncate()
}

func liangBarsky(p0, p1 Point, w Window) []Point {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	d := [4]int{-dx, dx, -dy, dy}
	q := [4]int{p0.X - w.XMin, w.XMax - p0.X, p0.Y - w.YMin, w.YMax - p0.Y}

	zero := ratio{0, 1}
	one := ratio{1, 1}
	tL, tU := zero, one
	for i := range d {
		switch {
		case d[i] == 0:
			if q[i] < 0 {
				return nil
			}
		case d[i] < 0: // entering
			t := ratio{-q[i], -d[i]}
			if tU.less(t) {
				return nil
			}
			if tL.less(t) {
				tL = t
			}
		default: // leaving
			t := ratio{q[i], d[i]}
			if t.less(tL) {
				return nil
			}
			if t.less(tU) {
				tU = t
			}
		}
	}

	start, end := p0, p1
	if tU.less(one) {
		end = tU.at(p0, p1)
	}
	if zero.less(tL) {
		start = tL.at(p0, p1)
	}
	return []Point{start, end}
}
