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

// Package script runs line-oriented drawing scripts.
//
// A script is a sequence of commands, one per line, with arguments
// separated by white space.  Empty lines and lines starting with '#' are
// ignored.  The commands are
//
//	resetCanvas W H
//	saveCanvas NAME
//	setColor R G B
//	drawLine ID x0 y0 x1 y1 ALG
//	drawPolygon ID x0 y0 x1 y1 ... ALG
//	drawCircle ID x0 y0 x1 y1
//	drawEllipse ID x0 y0 x1 y1
//	drawCurve ID x0 y0 x1 y1 ... ALG
//	translate ID dx dy
//	rotate ID x y DEG
//	scale ID x y FACTOR
//	clip ID x0 y0 x1 y1 ALG
//
// Line algorithms are Naive, DDA and Bresenham, curve algorithms are
// Bezier and B-spline, clip algorithms are Cohen-Sutherland and
// Liang-Barsky.  Transformations take effect immediately.  saveCanvas
// paints all items, in the order they were first drawn, onto a white
// canvas and passes the image to the Save hook.
package script

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCommand is returned for a line with an unknown command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrArgs is returned when a command has the wrong number or form of
	// arguments.
	ErrArgs = errors.New("invalid arguments")

	// ErrNoItem is returned when a transformation refers to an item
	// which has not been drawn.
	ErrNoItem = errors.New("no such item")

	// ErrNoCanvas is returned by saveCanvas before the first resetCanvas.
	ErrNoCanvas = errors.New("canvas size not set")

	// ErrNotRotatable is returned when rotating a circle or an ellipse.
	// Their control points are the corners of an axis-aligned box.
	ErrNotRotatable = errors.New("item cannot be rotated")
)

// Error describes a failed script command.
type Error struct {
	Line int    // 1-based line number
	Cmd  string // the command name
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Cmd, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
