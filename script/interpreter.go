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
	"bufio"
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"seehuhn.de/go/scan"
)

// maxCanvasSize bounds both canvas dimensions.
const maxCanvasSize = 4096

// SaveFunc stores a finished canvas under the given name.
type SaveFunc func(name string, img image.Image) error

// Interpreter executes drawing scripts.  The zero value writes images
// into the current directory.
//
// An Interpreter keeps its canvas and items between calls to Run.
// It must not be used concurrently.
type Interpreter struct {
	// Dir is the output directory used when Save is nil.
	Dir string

	// Save, if set, is called by saveCanvas instead of writing a BMP
	// file into Dir.
	Save SaveFunc

	// Workers limits the number of goroutines used for rasterizing the
	// items of a canvas.  Zero means GOMAXPROCS.
	Workers int

	width, height int
	pen           color.RGBA
	items         []*item
	byID          map[string]*item
}

// item is a primitive on the canvas, together with its pen color.
type item struct {
	id    string
	prim  scan.Primitive
	shape *scan.Shape
	color color.RGBA
}

// primitive returns the item's primitive with its current control points.
func (it *item) primitive() scan.Primitive {
	return scan.WithPoints(it.prim, it.shape.Points())
}

// Run executes the script read from r.  Execution stops at the first
// failing command; the returned error is then an *Error.
func (in *Interpreter) Run(ctx context.Context, r io.Reader) error {
	if in.byID == nil {
		in.byID = make(map[string]*item)
		in.pen = color.RGBA{A: 0xff}
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return err
		}

		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		cmd, args := fields[0], fields[1:]
		scan.Logger().Debug("script command", "line", lineNo, "cmd", cmd)
		if err := in.exec(ctx, cmd, args); err != nil {
			return &Error{Line: lineNo, Cmd: cmd, Err: err}
		}
	}
	return sc.Err()
}

func (in *Interpreter) exec(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "resetCanvas":
		return in.resetCanvas(args)
	case "saveCanvas":
		return in.saveCanvas(ctx, args)
	case "setColor":
		return in.setColor(args)
	case "drawLine":
		return in.drawLine(args)
	case "drawPolygon":
		return in.drawPolygon(args)
	case "drawCircle":
		return in.drawBox(args, func(pts []scan.Point) scan.Primitive {
			return scan.Circle{Points: pts}
		})
	case "drawEllipse":
		return in.drawBox(args, func(pts []scan.Point) scan.Primitive {
			return scan.Ellipse{Points: pts}
		})
	case "drawCurve":
		return in.drawCurve(args)
	case "translate":
		return in.translate(args)
	case "rotate":
		return in.rotate(args)
	case "scale":
		return in.scale(args)
	case "clip":
		return in.clip(args)
	default:
		return ErrUnknownCommand
	}
}

func (in *Interpreter) resetCanvas(args []string) error {
	v, err := parseInts(args, 2)
	if err != nil {
		return err
	}
	w, h := v[0], v[1]
	if w < 1 || w > maxCanvasSize || h < 1 || h > maxCanvasSize {
		return fmt.Errorf("canvas size %dx%d: %w", w, h, ErrArgs)
	}
	in.width, in.height = w, h
	in.items = nil
	clear(in.byID)
	return nil
}

func (in *Interpreter) setColor(args []string) error {
	v, err := parseInts(args, 3)
	if err != nil {
		return err
	}
	for _, c := range v {
		if c < 0 || c > 255 {
			return fmt.Errorf("color component %d: %w", c, ErrArgs)
		}
	}
	in.pen = color.RGBA{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: 0xff}
	return nil
}

func (in *Interpreter) saveCanvas(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected 1 argument, got %d: %w", len(args), ErrArgs)
	}
	if in.width == 0 {
		return ErrNoCanvas
	}
	name := args[0]

	img, err := in.render(ctx)
	if err != nil {
		return err
	}

	save := in.Save
	if save == nil {
		save = in.writeBMP
	}
	if err := save(name, img); err != nil {
		return err
	}
	scan.Logger().Info("canvas saved", "name", name,
		"width", in.width, "height", in.height, "items", len(in.items))
	return nil
}

// render paints all items onto a white canvas.
func (in *Interpreter) render(ctx context.Context) (*image.RGBA, error) {
	prims := make([]scan.Primitive, len(in.items))
	for i, it := range in.items {
		prims[i] = it.primitive()
	}
	pixels, err := scan.RasterizeAll(ctx, prims, in.Workers)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, in.width, in.height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	for i, it := range in.items {
		dropped := 0
		for _, p := range pixels[i] {
			if p.X < 0 || p.X >= in.width || p.Y < 0 || p.Y >= in.height {
				dropped++
				continue
			}
			img.SetRGBA(p.X, p.Y, it.color)
		}
		if dropped > 0 {
			scan.Logger().Debug("pixels outside the canvas",
				"item", it.id, "dropped", dropped)
		}
	}
	return img, nil
}

func (in *Interpreter) writeBMP(name string, img image.Image) error {
	f, err := os.Create(filepath.Join(in.Dir, name+".bmp"))
	if err != nil {
		return err
	}
	if err := bmp.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// add stores a new item.  An existing item with the same ID is replaced
// in place, so that it keeps its position in the painting order.
func (in *Interpreter) add(id string, prim scan.Primitive) {
	it := &item{
		id:    id,
		prim:  prim,
		shape: scan.NewShape(prim.ControlPoints()),
		color: in.pen,
	}
	if old, ok := in.byID[id]; ok {
		*old = *it
		return
	}
	in.byID[id] = it
	in.items = append(in.items, it)
}

// remove deletes the item with the given ID.
func (in *Interpreter) remove(id string) {
	delete(in.byID, id)
	for i, it := range in.items {
		if it.id == id {
			in.items = append(in.items[:i], in.items[i+1:]...)
			return
		}
	}
}

func (in *Interpreter) lookup(id string) (*item, error) {
	it, ok := in.byID[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrNoItem)
	}
	return it, nil
}
