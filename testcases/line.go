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

package testcases

import "seehuhn.de/go/scan"

var lineCases = []TestCase{
	{
		Name:   "bresenham_shallow",
		Prim:   scan.Line{Points: pts(0, 0, 5, 2), Algorithm: scan.Bresenham},
		Width:  8,
		Height: 8,
		Want:   pts(0, 0, 1, 0, 2, 1, 3, 1, 4, 2, 5, 2),
	},
	{
		Name:   "bresenham_steep",
		Prim:   scan.Line{Points: pts(0, 0, 2, 5), Algorithm: scan.Bresenham},
		Width:  8,
		Height: 8,
		Want:   pts(0, 0, 0, 1, 1, 2, 1, 3, 2, 4, 2, 5),
	},
	{
		Name:   "bresenham_reverse",
		Prim:   scan.Line{Points: pts(5, 2, 0, 0), Algorithm: scan.Bresenham},
		Width:  8,
		Height: 8,
		Want:   pts(5, 2, 4, 2, 3, 1, 2, 1, 1, 0, 0, 0),
	},
	{
		Name:   "bresenham_horizontal",
		Prim:   scan.Line{Points: pts(1, 3, 4, 3), Algorithm: scan.Bresenham},
		Width:  8,
		Height: 8,
		Want:   pts(1, 3, 2, 3, 3, 3, 4, 3),
	},
	{
		Name:   "bresenham_vertical",
		Prim:   scan.Line{Points: pts(2, 1, 2, 4), Algorithm: scan.Bresenham},
		Width:  8,
		Height: 8,
		Want:   pts(2, 1, 2, 2, 2, 3, 2, 4),
	},
	{
		Name:   "bresenham_long",
		Prim:   scan.Line{Points: pts(3, 60, 58, 7), Algorithm: scan.Bresenham},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dda_shallow",
		Prim:   scan.Line{Points: pts(0, 0, 5, 2), Algorithm: scan.DDA},
		Width:  8,
		Height: 8,
		Want:   pts(0, 0, 1, 0, 2, 1, 3, 1, 4, 2, 5, 2),
	},
	{
		Name:   "dda_point",
		Prim:   scan.Line{Points: pts(2, 2, 2, 2), Algorithm: scan.DDA},
		Width:  8,
		Height: 8,
		Want:   pts(2, 2),
	},
	{
		Name:   "dda_diagonal",
		Prim:   scan.Line{Points: pts(1, 1, 4, 4), Algorithm: scan.DDA},
		Width:  8,
		Height: 8,
		Want:   pts(1, 1, 2, 2, 3, 3, 4, 4),
	},
	{
		Name:   "dda_long",
		Prim:   scan.Line{Points: pts(60, 2, 5, 41), Algorithm: scan.DDA},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "naive_shallow",
		Prim:   scan.Line{Points: pts(0, 0, 5, 2), Algorithm: scan.Naive},
		Width:  8,
		Height: 8,
		Want:   pts(0, 0, 1, 0, 2, 0, 3, 1, 4, 1, 5, 2),
	},
	{
		Name:   "naive_vertical",
		Prim:   scan.Line{Points: pts(3, 5, 3, 1), Algorithm: scan.Naive},
		Width:  8,
		Height: 8,
		Want:   pts(3, 5, 3, 4, 3, 3, 3, 2, 3, 1),
	},
	{
		Name:   "empty",
		Prim:   scan.Line{Algorithm: scan.Bresenham},
		Width:  8,
		Height: 8,
		Want:   []scan.Point{},
	},
}
