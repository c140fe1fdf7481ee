// Command export writes the test case definitions, together with the
// pixels produced by this package, to testdata/testcases.json.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/scan"
	"seehuhn.de/go/scan/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string  `json:"name"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Kind      string  `json:"kind"`
	Algorithm string  `json:"algorithm,omitempty"`
	Points    [][]int `json:"points"`
	Op        *jsonOp `json:"op,omitempty"`
	Pixels    [][]int `json:"pixels"`
}

type jsonOp struct {
	Cmd       string  `json:"cmd"`
	DX        int     `json:"dx,omitempty"`
	DY        int     `json:"dy,omitempty"`
	CX        int     `json:"cx,omitempty"`
	CY        int     `json:"cy,omitempty"`
	Degrees   float64 `json:"degrees,omitempty"`
	Factor    float64 `json:"factor,omitempty"`
	Window    []int   `json:"window,omitempty"`
	Algorithm string  `json:"algorithm,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Points: pointsToJSON(tc.Prim.ControlPoints()),
	}

	switch p := tc.Prim.(type) {
	case scan.Line:
		jtc.Kind = "line"
		jtc.Algorithm = p.Algorithm.String()
	case scan.Polygon:
		jtc.Kind = "polygon"
		jtc.Algorithm = p.Algorithm.String()
	case scan.Circle:
		jtc.Kind = "circle"
	case scan.Ellipse:
		jtc.Kind = "ellipse"
	case scan.Curve:
		jtc.Kind = "curve"
		jtc.Algorithm = p.Algorithm.String()
	}

	switch op := tc.Op.(type) {
	case testcases.Translate:
		jtc.Op = &jsonOp{Cmd: "translate", DX: op.DX, DY: op.DY}
	case testcases.Rotate:
		jtc.Op = &jsonOp{Cmd: "rotate", CX: op.CX, CY: op.CY, Degrees: op.Degrees}
	case testcases.Scale:
		jtc.Op = &jsonOp{Cmd: "scale", CX: op.CX, CY: op.CY, Factor: op.Factor}
	case testcases.Clip:
		w := op.Window
		jtc.Op = &jsonOp{
			Cmd:       "clip",
			Window:    []int{w.XMin, w.YMin, w.XMax, w.YMax},
			Algorithm: op.Algorithm.String(),
		}
	}

	pix, err := tc.Pixels()
	if err != nil {
		return jtc, fmt.Errorf("%s: %w", jtc.Name, err)
	}
	jtc.Pixels = pointsToJSON(pix)
	return jtc, nil
}

func pointsToJSON(pts []scan.Point) [][]int {
	res := make([][]int, len(pts))
	for i, p := range pts {
		res[i] = []int{p.X, p.Y}
	}
	return res
}
