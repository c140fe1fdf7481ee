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

package scan

import (
	"errors"
	"fmt"
)

// ErrUnknownAlgorithm is returned when an algorithm name cannot be parsed.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// LineAlgorithm selects how line segments are scan converted.
type LineAlgorithm int

const (
	// Naive steps along x and truncates the interpolated y.
	Naive LineAlgorithm = iota
	// DDA steps both coordinates by floating point increments.
	DDA
	// Bresenham uses an integer decision variable.
	Bresenham
)

func (a LineAlgorithm) String() string {
	switch a {
	case Naive:
		return "Naive"
	case DDA:
		return "DDA"
	case Bresenham:
		return "Bresenham"
	default:
		return fmt.Sprintf("LineAlgorithm(%d)", int(a))
	}
}

// ParseLineAlgorithm converts a name as returned by LineAlgorithm.String.
func ParseLineAlgorithm(name string) (LineAlgorithm, error) {
	for _, a := range []LineAlgorithm{Naive, DDA, Bresenham} {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("line algorithm %q: %w", name, ErrUnknownAlgorithm)
}

// CurveAlgorithm selects the curve form.
type CurveAlgorithm int

const (
	// Bezier evaluates a single Bezier curve of degree len(points)-1.
	Bezier CurveAlgorithm = iota
	// BSpline evaluates a uniform cubic B-spline.
	BSpline
)

func (a CurveAlgorithm) String() string {
	switch a {
	case Bezier:
		return "Bezier"
	case BSpline:
		return "B-spline"
	default:
		return fmt.Sprintf("CurveAlgorithm(%d)", int(a))
	}
}

// ParseCurveAlgorithm converts a name as returned by CurveAlgorithm.String.
func ParseCurveAlgorithm(name string) (CurveAlgorithm, error) {
	for _, a := range []CurveAlgorithm{Bezier, BSpline} {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("curve algorithm %q: %w", name, ErrUnknownAlgorithm)
}

// ClipAlgorithm selects the line clipping method.
type ClipAlgorithm int

const (
	CohenSutherland ClipAlgorithm = iota
	LiangBarsky
)

func (a ClipAlgorithm) String() string {
	switch a {
	case CohenSutherland:
		return "Cohen-Sutherland"
	case LiangBarsky:
		return "Liang-Barsky"
	default:
		return fmt.Sprintf("ClipAlgorithm(%d)", int(a))
	}
}

// ParseClipAlgorithm converts a name as returned by ClipAlgorithm.String.
func ParseClipAlgorithm(name string) (ClipAlgorithm, error) {
	for _, a := range []ClipAlgorithm{CohenSutherland, LiangBarsky} {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("clip algorithm %q: %w", name, ErrUnknownAlgorithm)
}
