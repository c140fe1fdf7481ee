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
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"seehuhn.de/go/scan"
)

var white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// run executes src and returns the images saved, by name.
func run(t *testing.T, src string) map[string]*image.RGBA {
	t.Helper()
	saved := make(map[string]*image.RGBA)
	in := &Interpreter{
		Save: func(name string, img image.Image) error {
			saved[name] = img.(*image.RGBA)
			return nil
		},
	}
	if err := in.Run(context.Background(), strings.NewReader(src)); err != nil {
		t.Fatal(err)
	}
	return saved
}

// painted returns the non-white pixels of img.
func painted(img *image.RGBA) map[scan.Point]color.RGBA {
	res := make(map[scan.Point]color.RGBA)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c := img.RGBAAt(x, y); c != white {
				res[scan.Pt(x, y)] = c
			}
		}
	}
	return res
}

func TestDrawLine(t *testing.T) {
	saved := run(t, `
# a single red line
resetCanvas 10 8
setColor 255 0 0
drawLine l1 0 0 5 2 Bresenham
saveCanvas out
`)
	img := saved["out"]
	if img == nil {
		t.Fatal("no image saved")
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 8 {
		t.Fatalf("unexpected size %v", b)
	}

	red := color.RGBA{R: 0xff, A: 0xff}
	want := scan.DrawLine(scan.Pt(0, 0), scan.Pt(5, 2), scan.Bresenham)
	got := painted(img)
	if len(got) != len(want) {
		t.Errorf("expected %d pixels, got %d", len(want), len(got))
	}
	for _, p := range want {
		if got[p] != red {
			t.Errorf("pixel %s: expected red, got %v", p, got[p])
		}
	}
}

func TestTransforms(t *testing.T) {
	saved := run(t, `
resetCanvas 40 40
drawLine a 0 0 3 0 DDA
translate a 10 10
saveCanvas t
rotate a 10 10 90
saveCanvas r
scale a 10 10 2
saveCanvas s
`)
	cases := []struct {
		name string
		want []scan.Point
	}{
		{"t", scan.DrawLine(scan.Pt(10, 10), scan.Pt(13, 10), scan.DDA)},
		{"r", scan.DrawLine(scan.Pt(10, 10), scan.Pt(10, 13), scan.DDA)},
		{"s", scan.DrawLine(scan.Pt(10, 10), scan.Pt(10, 16), scan.DDA)},
	}
	for _, tc := range cases {
		got := painted(saved[tc.name])
		if len(got) != len(tc.want) {
			t.Errorf("%s: expected %d pixels, got %d", tc.name, len(tc.want), len(got))
		}
		for _, p := range tc.want {
			if _, ok := got[p]; !ok {
				t.Errorf("%s: pixel %s not set", tc.name, p)
			}
		}
	}
}

func TestClip(t *testing.T) {
	saved := run(t, `
resetCanvas 20 20
drawLine a 0 5 19 5 Bresenham
drawLine b 15 15 19 19 Bresenham
clip a 10 0 5 10 Liang-Barsky
clip b 0 0 10 10 Cohen-Sutherland
saveCanvas out
`)
	got := painted(saved["out"])
	if len(got) != 6 {
		t.Errorf("expected 6 pixels, got %d", len(got))
	}
	for x := 5; x <= 10; x++ {
		if _, ok := got[scan.Pt(x, 5)]; !ok {
			t.Errorf("pixel (%d,5) not set", x)
		}
	}
}

func TestPaintOrder(t *testing.T) {
	// Redrawing an item keeps its place in the painting order.
	saved := run(t, `
resetCanvas 10 10
setColor 255 0 0
drawLine a 0 0 9 0 Bresenham
setColor 0 0 255
drawLine b 0 0 9 0 Bresenham
setColor 0 255 0
drawLine a 0 0 9 0 Bresenham
saveCanvas out
`)
	if c := saved["out"].RGBAAt(4, 0); c != (color.RGBA{B: 0xff, A: 0xff}) {
		t.Errorf("expected blue, got %v", c)
	}
}

func TestOutsideCanvas(t *testing.T) {
	saved := run(t, `
resetCanvas 10 10
drawCircle c -10 -10 10 10
drawPolygon p -5 -5 20 3 4 30 Naive
drawCurve k -20 5 5 -20 30 30 Bezier
saveCanvas out
`)
	if len(painted(saved["out"])) == 0 {
		t.Error("expected some visible pixels")
	}
}

func TestScaleCircle(t *testing.T) {
	saved := run(t, `
resetCanvas 64 64
drawCircle c 1 3 4 6
scale c 0 1 1.5
drawEllipse e 10 10 30 20
scale e 20 15 2
saveCanvas out
`)
	if len(painted(saved["out"])) == 0 {
		t.Error("expected some visible pixels")
	}
}

func TestErrors(t *testing.T) {
	cases := []struct {
		src  string
		line int
		want error
	}{
		{"resetCanvas 10 10\nfrobnicate 1 2", 2, ErrUnknownCommand},
		{"resetCanvas 10", 1, ErrArgs},
		{"resetCanvas 0 10", 1, ErrArgs},
		{"setColor 1 2 300", 1, ErrArgs},
		{"drawLine a 0 0 x 1 DDA", 1, ErrArgs},
		{"drawLine a 0 0 1 1 Wu", 1, scan.ErrUnknownAlgorithm},
		{"drawCurve a 0 0 1 1 Hermite", 1, scan.ErrUnknownAlgorithm},
		{"drawPolygon a 0 0 1 DDA", 1, ErrArgs},
		{"drawCurve a 0 0 Bezier", 1, ErrArgs},
		{"\n\ndrawCircle c 0 0 4 6", 3, scan.ErrNotSquare},
		{"translate a 1 1", 1, ErrNoItem},
		{"drawCircle c 0 0 4 4\nrotate c 2 2 45", 2, ErrNotRotatable},
		{"drawEllipse e 0 0 4 2\nrotate e 2 2 90", 2, ErrNotRotatable},
		{"drawPolygon p 0 0 4 4 0 4 DDA\nclip p 0 0 2 2 Liang-Barsky", 2, scan.ErrNotClippable},
		{"drawLine a 0 0 1 1 DDA\nclip a 0 0 2 2 Sutherland-Hodgman", 2, scan.ErrUnknownAlgorithm},
		{"drawLine a 0 0 1 1 DDA\nscale a 0 0 big", 2, ErrArgs},
		{"saveCanvas out", 1, ErrNoCanvas},
	}
	for _, tc := range cases {
		in := &Interpreter{Save: func(string, image.Image) error { return nil }}
		err := in.Run(context.Background(), strings.NewReader(tc.src))
		if !errors.Is(err, tc.want) {
			t.Errorf("%q: expected %v, got %v", tc.src, tc.want, err)
			continue
		}
		var e *Error
		if !errors.As(err, &e) {
			t.Errorf("%q: expected *Error, got %T", tc.src, err)
		} else if e.Line != tc.line {
			t.Errorf("%q: expected line %d, got %d", tc.src, tc.line, e.Line)
		}
	}
}

func TestCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	in := &Interpreter{}
	err := in.Run(ctx, strings.NewReader("resetCanvas 10 10\n"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestWriteBMP(t *testing.T) {
	dir := t.TempDir()
	in := &Interpreter{Dir: dir}
	src := "resetCanvas 12 7\nsetColor 0 0 0\ndrawLine a 0 0 11 6 Bresenham\nsaveCanvas pic\n"
	if err := in.Run(context.Background(), strings.NewReader(src)); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filepath.Join(dir, "pic.bmp"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 7 {
		t.Errorf("unexpected size %v", b)
	}
	if r, g, b, _ := img.At(11, 6).RGBA(); r != 0 || g != 0 || b != 0 {
		t.Errorf("expected black endpoint, got %v", img.At(11, 6))
	}
	if r, _, _, _ := img.At(11, 0).RGBA(); r != 0xffff {
		t.Errorf("expected white background, got %v", img.At(11, 0))
	}
}
