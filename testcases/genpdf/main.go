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

// Command genpdf generates a PDF proof sheet for every test case.
// Each pixel produced by the scan converter is painted as a unit square,
// and the control points and clip windows are overlaid, so that the
// output can be inspected in any PDF viewer.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/scan"
	"seehuhn.de/go/scan/testcases"
)

const proofDir = "testdata/proof"

// scale is the size of one pixel in PDF points.
const scale = 8

func main() {
	if err := os.MkdirAll(proofDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(proofDir, name+".pdf")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	pixels, err := tc.Pixels()
	if err != nil {
		return err
	}
	prim, err := tc.Primitive()
	if err != nil {
		return err
	}

	paper := &pdf.Rectangle{
		URx: float64(tc.Width * scale),
		URy: float64(tc.Height * scale),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background, so that set pixels show as white
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	// PDF origin is bottom-left, pixel rows count from the top.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, paper.URy})

	page.SetFillColor(color.DeviceGray(1))
	for _, p := range pixels {
		page.Rectangle(float64(p.X), float64(p.Y), 1, 1)
	}
	if len(pixels) > 0 {
		page.Fill()
	}

	if op, ok := tc.Op.(testcases.Clip); ok {
		r := op.Window.Rect()
		page.SetStrokeColor(color.DeviceGray(0.5))
		page.SetLineWidth(0.25)
		page.Rectangle(r.LLx, r.LLy, r.URx-r.LLx, r.URy-r.LLy)
		page.Stroke()
	}

	// control polygon through the pixel centres
	ctrl := prim.ControlPoints()
	if len(ctrl) > 1 {
		page.SetStrokeColor(color.DeviceGray(0.7))
		page.SetLineWidth(0.1)
		for i, p := range ctrl {
			x, y := float64(p.X)+0.5, float64(p.Y)+0.5
			if i == 0 {
				page.MoveTo(x, y)
			} else {
				page.LineTo(x, y)
			}
		}
		if _, closed := prim.(scan.Polygon); closed {
			page.ClosePath()
		}
		page.Stroke()
	}

	return page.Close()
}
