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

// ErrNotSquare is returned when the bounding box of a circle is not square.
var ErrNotSquare = errors.New("circle bounding box is not square")

// DrawCircle returns the pixels of the circle inscribed in the square
// with opposite corners c0 and c1.  The center is the midpoint of the
// corners and the radius is half the side length, both rounded down.
//
// Each step emits the four reflections of the current octant-pair point,
// in the order (+x,+y), (-x,+y), (-x,-y), (+x,-y) relative to the center,
// so points on the axes appear more than once.
func DrawCircle(c0, c1 Point) ([]Point, error) {
	seq, err := circleSeq(c0, c1)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

func circleSeq(c0, c1 Point) (iter.Seq[Point], error) {
	if abs(c1.X-c0.X) != abs(c1.Y-c0.Y) {
		return nil, fmt.Errorf("corners %s, %s: %w", c0, c1, ErrNotSquare)
	}
	center := Point{X: floorDiv(c0.X+c1.X, 2), Y: floorDiv(c0.Y+c1.Y, 2)}
	r := abs(c1.X-c0.X) / 2

	return func(yield func(Point) bool) {
		c := newCircleState(r)
		for c.y >= 0 {
			if !yieldQuadrants(yield, center, c.x, c.y) {
				return
			}
			c.advance()
		}
	}, nil
}

// circleState tracks the error dis = (x+1)² + (y-1)² - R² of the
// diagonal candidate pixel while walking from (0, R) clockwise to (R, 0).
type circleState struct {
	x, y int
	dis  int
}

func newCircleState(r int) *circleState {
	return &circleState{
		x:   0,
		y:   r,
		dis: 1 + (r-1)*(r-1) - r*r,
	}
}

// advance chooses between the horizontal, diagonal and vertical
// neighbour.  Two tests are made on either side of dis == 0.
func (c *circleState) advance() {
	switch {
	case c.dis < 0:
		if 2*c.dis+2*c.y-1 <= 0 {
			c.horizontal()
		} else {
			c.diagonal()
		}
	case c.dis > 0:
		if 2*c.dis-2*c.x-1 <= 0 {
			c.diagonal()
		} else {
			c.vertical()
		}
	default:
		c.diagonal()
	}
}

func (c *circleState) horizontal() {
	c.x++
	c.dis += 2*c.x + 1
}

func (c *circleState) diagonal() {
	c.x++
	c.y--
	c.dis += 2*c.x - 2*c.y + 2
}

func (c *circleState) vertical() {
	c.y--
	c.dis += -2*c.y + 1
}

// yieldQuadrants emits the reflections of (x, y) across both axes
// through center.
func yieldQuadrants(yield func(Point) bool, center Point, x, y int) bool {
	return yield(Point{X: center.X + x, Y: center.Y + y}) &&
		yield(Point{X: center.X - x, Y: center.Y + y}) &&
		yield(Point{X: center.X - x, Y: center.Y - y}) &&
		yield(Point{X: center.X + x, Y: center.Y - y})
}
