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

// precisionCases check rounding and degenerate inputs.
var precisionCases = []TestCase{
	{
		Name:   "dda_steep",
		Prim:   scan.Line{Points: pts(0, 0, 2, 5), Algorithm: scan.DDA},
		Width:  8,
		Height: 8,
		Want:   pts(0, 0, 0, 1, 1, 2, 1, 3, 2, 4, 2, 5),
	},
	{
		Name:   "dda_half_steps",
		Prim:   scan.Line{Points: pts(0, 0, 4, 2), Algorithm: scan.DDA},
		Width:  8,
		Height: 8,
		Want:   pts(0, 0, 1, 1, 2, 1, 3, 2, 4, 2),
	},
	{
		Name:   "naive_truncates",
		Prim:   scan.Line{Points: pts(0, 0, 4, 3), Algorithm: scan.Naive},
		Width:  8,
		Height: 8,
		Want:   pts(0, 0, 1, 0, 2, 1, 3, 2, 4, 3),
	},
	{
		Name:   "ellipse_point",
		Prim:   scan.Ellipse{Points: pts(5, 5, 5, 5)},
		Width:  8,
		Height: 8,
		Want:   pts(5, 5, 5, 5, 5, 5, 5, 5),
	},
	{
		Name:   "ellipse_odd_box",
		Prim:   scan.Ellipse{Points: pts(1, 1, 6, 4)},
		Width:  8,
		Height: 8,
	},
	{
		Name:   "scale_truncates",
		Prim:   scan.Line{Points: pts(3, 3, 6, 6), Algorithm: scan.Bresenham},
		Width:  8,
		Height: 8,
		Op:     Scale{CX: 0, CY: 0, Factor: 0.5},
		Want:   pts(1, 1, 2, 2, 3, 3),
	},
}
