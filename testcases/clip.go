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

var window10 = scan.Window{XMin: 0, YMin: 0, XMax: 10, YMax: 10}

var clipCases = []TestCase{
	{
		Name:   "cohen_sutherland_left",
		Prim:   scan.Line{Points: pts(-5, 5, 5, 5), Algorithm: scan.Bresenham},
		Width:  16,
		Height: 16,
		Op:     Clip{Window: window10, Algorithm: scan.CohenSutherland},
		Want:   pts(0, 5, 1, 5, 2, 5, 3, 5, 4, 5, 5, 5),
	},
	{
		Name:   "liang_barsky_outside",
		Prim:   scan.Line{Points: pts(20, 20, 30, 30), Algorithm: scan.Bresenham},
		Width:  32,
		Height: 32,
		Op:     Clip{Window: window10, Algorithm: scan.LiangBarsky},
		Want:   []scan.Point{},
	},
	{
		Name:   "cohen_sutherland_diagonal",
		Prim:   scan.Line{Points: pts(-5, -5, 15, 15), Algorithm: scan.DDA},
		Width:  16,
		Height: 16,
		Op:     Clip{Window: window10, Algorithm: scan.CohenSutherland},
		Want:   pts(0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10),
	},
	{
		Name:   "liang_barsky_diagonal",
		Prim:   scan.Line{Points: pts(-5, -5, 15, 15), Algorithm: scan.DDA},
		Width:  16,
		Height: 16,
		Op:     Clip{Window: window10, Algorithm: scan.LiangBarsky},
		Want:   pts(0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10),
	},
	{
		Name:   "cohen_sutherland_inside",
		Prim:   scan.Line{Points: pts(2, 3, 8, 6), Algorithm: scan.Bresenham},
		Width:  16,
		Height: 16,
		Op:     Clip{Window: window10, Algorithm: scan.CohenSutherland},
		Want:   pts(2, 3, 3, 3, 4, 4, 5, 4, 6, 5, 7, 5, 8, 6),
	},
	{
		Name:   "liang_barsky_vertical",
		Prim:   scan.Line{Points: pts(4, 40, 4, -8), Algorithm: scan.Bresenham},
		Width:  16,
		Height: 16,
		Op:     Clip{Window: window10, Algorithm: scan.LiangBarsky},
		Want:   pts(4, 10, 4, 9, 4, 8, 4, 7, 4, 6, 4, 5, 4, 4, 4, 3, 4, 2, 4, 1, 4, 0),
	},
	{
		Name:   "cohen_sutherland_steep",
		Prim:   scan.Line{Points: pts(-10, 70, 50, -30), Algorithm: scan.Bresenham},
		Width:  64,
		Height: 64,
		Op: Clip{
			Window:    scan.Window{XMin: 8, YMin: 8, XMax: 56, YMax: 56},
			Algorithm: scan.CohenSutherland,
		},
	},
	{
		Name:   "liang_barsky_steep",
		Prim:   scan.Line{Points: pts(-10, 70, 50, -30), Algorithm: scan.Bresenham},
		Width:  64,
		Height: 64,
		Op: Clip{
			Window:    scan.Window{XMin: 8, YMin: 8, XMax: 56, YMax: 56},
			Algorithm: scan.LiangBarsky,
		},
	},
}
