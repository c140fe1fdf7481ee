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

var polygonCases = []TestCase{
	{
		Name:   "triangle_bresenham",
		Prim:   scan.Polygon{Points: pts(1, 1, 4, 1, 1, 4), Algorithm: scan.Bresenham},
		Width:  8,
		Height: 8,
		Want: pts(
			1, 4, 1, 3, 1, 2, 1, 1, // closing edge
			1, 1, 2, 1, 3, 1, 4, 1,
			4, 1, 3, 2, 2, 3, 1, 4,
		),
	},
	{
		Name:   "single_vertex",
		Prim:   scan.Polygon{Points: pts(3, 3), Algorithm: scan.DDA},
		Width:  8,
		Height: 8,
		Want:   pts(3, 3),
	},
	{
		Name:   "square_dda",
		Prim:   scan.Polygon{Points: pts(10, 10, 50, 10, 50, 50, 10, 50), Algorithm: scan.DDA},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star_bresenham",
		Prim:   scan.Polygon{Points: pts(32, 4, 40, 24, 60, 24, 44, 38, 50, 58, 32, 46, 14, 58, 20, 38, 4, 24, 24, 24), Algorithm: scan.Bresenham},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zigzag_naive",
		Prim:   scan.Polygon{Points: pts(4, 30, 16, 10, 28, 30, 40, 10, 52, 30), Algorithm: scan.Naive},
		Width:  64,
		Height: 64,
	},
}
