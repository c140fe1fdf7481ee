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

var curveCases = []TestCase{
	{
		Name:   "bezier_line",
		Prim:   scan.Curve{Points: pts(0, 0, 4, 0), Algorithm: scan.Bezier},
		Width:  8,
		Height: 8,
		Want:   pts(0, 0, 1, 0, 1, 0, 2, 0, 2, 0, 3, 0, 3, 0, 4, 0, 4, 0),
	},
	{
		Name:   "bezier_quadratic",
		Prim:   scan.Curve{Points: pts(10, 50, 32, 10, 54, 50), Algorithm: scan.Bezier},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bezier_cubic",
		Prim:   scan.Curve{Points: pts(10, 50, 20, 10, 44, 10, 54, 50), Algorithm: scan.Bezier},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bezier_s_shape",
		Prim:   scan.Curve{Points: pts(4, 32, 20, 4, 44, 60, 60, 32), Algorithm: scan.Bezier},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bezier_high_degree",
		Prim:   scan.Curve{Points: pts(4, 60, 10, 4, 20, 60, 32, 4, 44, 60, 54, 4, 60, 60), Algorithm: scan.Bezier},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bspline_cubic",
		Prim:   scan.Curve{Points: pts(10, 50, 20, 10, 44, 10, 54, 50), Algorithm: scan.BSpline},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bspline_wave",
		Prim:   scan.Curve{Points: pts(4, 32, 12, 8, 20, 56, 28, 8, 36, 56, 44, 8, 52, 56, 60, 32), Algorithm: scan.BSpline},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "bspline_too_short",
		Prim:   scan.Curve{Points: pts(10, 10, 20, 20, 30, 10), Algorithm: scan.BSpline},
		Width:  64,
		Height: 64,
		Want:   []scan.Point{},
	},
}
