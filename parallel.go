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
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RasterizeAll rasterizes the primitives prims concurrently, using at
// most workers goroutines.  If workers <= 0, GOMAXPROCS is used.
// The result for prims[i] is stored at index i.
//
// If a primitive fails validation, the remaining work is cancelled and
// the first error is returned.  If ctx is cancelled, ctx.Err() is
// returned.
func RasterizeAll(ctx context.Context, prims []Primitive, workers int) ([][]Point, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	Logger().Debug("rasterize batch", "primitives", len(prims), "workers", workers)

	res := make([][]Point, len(prims))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range prims {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pix, err := Rasterize(p)
			if err != nil {
				return err
			}
			res[i] = pix
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
