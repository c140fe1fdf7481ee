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

package script

import (
	"fmt"
	"strconv"

	"seehuhn.de/go/scan"
)

func (in *Interpreter) drawLine(args []string) error {
	if len(args) != 6 {
		return fmt.Errorf("expected 6 arguments, got %d: %w", len(args), ErrArgs)
	}
	pts, err := parsePoints(args[1:5])
	if err != nil {
		return err
	}
	alg, err := scan.ParseLineAlgorithm(args[5])
	if err != nil {
		return err
	}
	in.add(args[0], scan.Line{Points: pts, Algorithm: alg})
	return nil
}

func (in *Interpreter) drawPolygon(args []string) error {
	id, pts, name, err := parsePointList(args, 1)
	if err != nil {
		return err
	}
	alg, err := scan.ParseLineAlgorithm(name)
	if err != nil {
		return err
	}
	in.add(id, scan.Polygon{Points: pts, Algorithm: alg})
	return nil
}

func (in *Interpreter) drawCurve(args []string) error {
	id, pts, name, err := parsePointList(args, 2)
	if err != nil {
		return err
	}
	alg, err := scan.ParseCurveAlgorithm(name)
	if err != nil {
		return err
	}
	in.add(id, scan.Curve{Points: pts, Algorithm: alg})
	return nil
}

// drawBox handles the primitives given by two corners of a bounding box.
// The control points are validated here, so that a bad circle is
// reported at the line where it is drawn.
func (in *Interpreter) drawBox(args []string, mk func([]scan.Point) scan.Primitive) error {
	if len(args) != 5 {
		return fmt.Errorf("expected 5 arguments, got %d: %w", len(args), ErrArgs)
	}
	pts, err := parsePoints(args[1:])
	if err != nil {
		return err
	}
	prim := mk(pts)
	if _, err := scan.Pixels(prim); err != nil {
		return err
	}
	in.add(args[0], prim)
	return nil
}

func (in *Interpreter) translate(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("expected 3 arguments, got %d: %w", len(args), ErrArgs)
	}
	it, err := in.lookup(args[0])
	if err != nil {
		return err
	}
	v, err := parseInts(args[1:], 2)
	if err != nil {
		return err
	}
	it.shape.Translate(v[0], v[1])
	it.shape.Commit()
	return nil
}

func (in *Interpreter) rotate(args []string) error {
	it, cx, cy, deg, err := in.pivotArgs(args)
	if err != nil {
		return err
	}
	switch it.prim.(type) {
	case scan.Circle, scan.Ellipse:
		return fmt.Errorf("%q: %w", it.id, ErrNotRotatable)
	}
	it.shape.Rotate(cx, cy, deg)
	it.shape.Commit()
	return nil
}

func (in *Interpreter) scale(args []string) error {
	it, cx, cy, factor, err := in.pivotArgs(args)
	if err != nil {
		return err
	}
	it.shape.Scale(cx, cy, factor)
	if _, ok := it.prim.(scan.Circle); ok {
		it.shape = scan.NewShape(squareBox(it.shape.Points()))
	}
	it.shape.Commit()
	return nil
}

// squareBox shrinks the box with corners pts[0] and pts[1] to a square
// with the same first corner.  Truncation in Scale can make the sides
// of a scaled circle's box differ by one.
func squareBox(pts []scan.Point) []scan.Point {
	if len(pts) != 2 {
		return pts
	}
	dx := pts[1].X - pts[0].X
	dy := pts[1].Y - pts[0].Y
	side := min(abs(dx), abs(dy))
	pts[1] = scan.Pt(pts[0].X+sign(dx)*side, pts[0].Y+sign(dy)*side)
	return pts
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// pivotArgs parses "ID x y VALUE" as used by rotate and scale.
func (in *Interpreter) pivotArgs(args []string) (*item, int, int, float64, error) {
	if len(args) != 4 {
		return nil, 0, 0, 0, fmt.Errorf("expected 4 arguments, got %d: %w", len(args), ErrArgs)
	}
	it, err := in.lookup(args[0])
	if err != nil {
		return nil, 0, 0, 0, err
	}
	v, err := parseInts(args[1:3], 2)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	x, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("%q: %w", args[3], ErrArgs)
	}
	return it, v[0], v[1], x, nil
}

// clip clips a line to the window spanned by two corners.  A line which
// is clipped away entirely is removed from the canvas.
func (in *Interpreter) clip(args []string) error {
	if len(args) != 6 {
		return fmt.Errorf("expected 6 arguments, got %d: %w", len(args), ErrArgs)
	}
	it, err := in.lookup(args[0])
	if err != nil {
		return err
	}
	v, err := parseInts(args[1:5], 4)
	if err != nil {
		return err
	}
	alg, err := scan.ParseClipAlgorithm(args[5])
	if err != nil {
		return err
	}

	w := scan.NewWindow(v[0], v[1], v[2], v[3])
	p, err := scan.ClipPrimitive(it.primitive(), w, alg)
	if err != nil {
		return err
	}
	pts := p.ControlPoints()
	if len(pts) == 0 {
		scan.Logger().Debug("line clipped away", "item", it.id)
		in.remove(it.id)
		return nil
	}
	it.shape = scan.NewShape(pts)
	return nil
}

// parseInts parses exactly n integer arguments.
func parseInts(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d numbers, got %d: %w", n, len(args), ErrArgs)
	}
	res := make([]int, n)
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, ErrArgs)
		}
		res[i] = v
	}
	return res, nil
}

// parsePoints parses x, y pairs.
func parsePoints(args []string) ([]scan.Point, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("odd number of coordinates: %w", ErrArgs)
	}
	v, err := parseInts(args, len(args))
	if err != nil {
		return nil, err
	}
	pts := make([]scan.Point, 0, len(v)/2)
	for i := 0; i < len(v); i += 2 {
		pts = append(pts, scan.Pt(v[i], v[i+1]))
	}
	return pts, nil
}

// parsePointList parses "ID x0 y0 x1 y1 ... ALG" with at least minPoints
// points.
func parsePointList(args []string, minPoints int) (string, []scan.Point, string, error) {
	if len(args) < 2+2*minPoints {
		return "", nil, "", fmt.Errorf("expected at least %d points: %w", minPoints, ErrArgs)
	}
	pts, err := parsePoints(args[1 : len(args)-1])
	if err != nil {
		return "", nil, "", err
	}
	return args[0], pts, args[len(args)-1], nil
}
