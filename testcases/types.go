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

import (
	"fmt"

	"seehuhn.de/go/scan"
)

// TestCase defines a single scan conversion test.
type TestCase struct {
	Name   string         // lowercase a-z, 0-9 and _ only
	Prim   scan.Primitive // the primitive before Op is applied
	Width  int            // canvas width in pixels
	Height int            // canvas height in pixels
	Op     Operation      // applied to the control points (nil means none)

	// Want lists the expected pixels in order.  Nil means that only
	// general properties are checked; use an empty, non-nil slice
	// to require empty output.
	Want []scan.Point
}

// Operation rewrites the control points of a primitive before
// rasterization.
type Operation interface {
	apply(p scan.Primitive) (scan.Primitive, error)
}

// Translate shifts the control points.
type Translate struct {
	DX, DY int
}

func (op Translate) apply(p scan.Primitive) (scan.Primitive, error) {
	return scan.WithPoints(p, scan.Translate(p.ControlPoints(), op.DX, op.DY)), nil
}

// Rotate rotates the control points around a center.
type Rotate struct {
	CX, CY  int
	Degrees float64
}

func (op Rotate) apply(p scan.Primitive) (scan.Primitive, error) {
	return scan.WithPoints(p, scan.Rotate(p.ControlPoints(), op.CX, op.CY, op.Degrees)), nil
}

// Scale scales the control points relative to a center.
type Scale struct {
	CX, CY int
	Factor float64
}

func (op Scale) apply(p scan.Primitive) (scan.Primitive, error) {
	return scan.WithPoints(p, scan.Scale(p.ControlPoints(), op.CX, op.CY, op.Factor)), nil
}

// Clip clips a line to a window.
type Clip struct {
	Window    scan.Window
	Algorithm scan.ClipAlgorithm
}

func (op Clip) apply(p scan.Primitive) (scan.Primitive, error) {
	return scan.ClipPrimitive(p, op.Window, op.Algorithm)
}

// Primitive returns the primitive of tc with the operation applied.
func (tc TestCase) Primitive() (scan.Primitive, error) {
	if tc.Op == nil {
		return tc.Prim, nil
	}
	p, err := tc.Op.apply(tc.Prim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tc.Name, err)
	}
	return p, nil
}

// Pixels returns the rasterized output of tc.
func (tc TestCase) Pixels() ([]scan.Point, error) {
	p, err := tc.Primitive()
	if err != nil {
		return nil, err
	}
	return scan.Rasterize(p)
}

// pts is a helper to build a point list from x, y pairs.
func pts(xy ...int) []scan.Point {
	if len(xy)%2 != 0 {
		panic("odd number of coordinates")
	}
	res := make([]scan.Point, 0, len(xy)/2)
	for i := 0; i < len(xy); i += 2 {
		res = append(res, scan.Pt(xy[i], xy[i+1]))
	}
	return res
}
