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

var transformCases = []TestCase{
	{
		Name:   "translate_line",
		Prim:   scan.Line{Points: pts(1, 1, 3, 3), Algorithm: scan.Bresenham},
		Width:  8,
		Height: 8,
		Op:     Translate{DX: 2, DY: -1},
		Want:   pts(3, 0, 4, 1, 5, 2),
	},
	{
		Name:   "rotate_line_quarter",
		Prim:   scan.Line{Points: pts(10, 5, 13, 5), Algorithm: scan.Bresenham},
		Width:  16,
		Height: 16,
		Op:     Rotate{CX: 10, CY: 5, Degrees: 90},
		Want:   pts(10, 5, 10, 6, 10, 7, 10, 8),
	},
	{
		Name:   "scale_line",
		Prim:   scan.Line{Points: pts(10, 10, 14, 10), Algorithm: scan.DDA},
		Width:  32,
		Height: 32,
		Op:     Scale{CX: 10, CY: 10, Factor: 1.5},
		Want:   pts(10, 10, 11, 10, 12, 10, 13, 10, 14, 10, 15, 10, 16, 10),
	},
	{
		Name:   "rotate_polygon",
		Prim:   scan.Polygon{Points: pts(20, 20, 44, 20, 44, 44, 20, 44), Algorithm: scan.Bresenham},
		Width:  64,
		Height: 64,
		Op:     Rotate{CX: 32, CY: 32, Degrees: 30},
	},
	{
		Name:   "scale_circle",
		Prim:   scan.Circle{Points: pts(24, 24, 40, 40)},
		Width:  64,
		Height: 64,
		Op:     Scale{CX: 32, CY: 32, Factor: 3},
	},
	{
		Name:   "shrink_ellipse",
		Prim:   scan.Ellipse{Points: pts(0, 10, 64, 54)},
		Width:  64,
		Height: 64,
		Op:     Scale{CX: 32, CY: 32, Factor: 0.5},
	},
	{
		Name:   "translate_curve",
		Prim:   scan.Curve{Points: pts(-20, 40, -10, 0, 14, 0, 24, 40), Algorithm: scan.BSpline},
		Width:  64,
		Height: 64,
		Op:     Translate{DX: 30, DY: 10},
	},
}
