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

var largeCases = []TestCase{
	{
		Name:   "circle",
		Prim:   scan.Circle{Points: pts(8, 8, 248, 248)},
		Width:  256,
		Height: 256,
	},
	{
		Name:   "ellipse",
		Prim:   scan.Ellipse{Points: pts(8, 64, 248, 192)},
		Width:  256,
		Height: 256,
	},
	{
		Name:   "line",
		Prim:   scan.Line{Points: pts(250, 3, 5, 241), Algorithm: scan.Bresenham},
		Width:  256,
		Height: 256,
	},
	{
		Name:   "bspline",
		Prim:   scan.Curve{Points: pts(8, 128, 40, 8, 88, 248, 128, 8, 168, 248, 216, 8, 248, 128), Algorithm: scan.BSpline},
		Width:  256,
		Height: 256,
	},
}
