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

// conicCases holds circles and ellipses.
var conicCases = []TestCase{
	{
		Name:   "circle_small",
		Prim:   scan.Circle{Points: pts(0, 0, 4, 4)},
		Width:  8,
		Height: 8,
		Want: pts(
			2, 4, 2, 4, 2, 0, 2, 0,
			3, 4, 1, 4, 1, 0, 3, 0,
			4, 3, 0, 3, 0, 1, 4, 1,
			4, 2, 0, 2, 0, 2, 4, 2,
		),
	},
	{
		Name:   "circle_zero_radius",
		Prim:   scan.Circle{Points: pts(3, 3, 3, 3)},
		Width:  8,
		Height: 8,
		Want:   pts(3, 3, 3, 3, 3, 3, 3, 3),
	},
	{
		Name:   "circle_reversed_corners",
		Prim:   scan.Circle{Points: pts(60, 60, 4, 4)},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_odd_side",
		Prim:   scan.Circle{Points: pts(5, 5, 40, 40)},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ellipse_small",
		Prim:   scan.Ellipse{Points: pts(0, 0, 4, 2)},
		Width:  8,
		Height: 8,
		Want: pts(
			4, 1, 0, 1, 0, 1, 4, 1,
			3, 2, 1, 2, 1, 0, 3, 0,
			2, 2, 2, 2, 2, 0, 2, 0,
		),
	},
	{
		Name:   "ellipse_wide",
		Prim:   scan.Ellipse{Points: pts(4, 20, 60, 44)},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ellipse_tall",
		Prim:   scan.Ellipse{Points: pts(20, 4, 44, 60)},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ellipse_flat",
		Prim:   scan.Ellipse{Points: pts(10, 30, 50, 30)},
		Width:  64,
		Height: 64,
	},
}
