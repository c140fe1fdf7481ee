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

// Command drawscript runs a drawing script and writes the saved canvases
// as BMP files into an output directory.
//
// Usage:
//
//	drawscript [-v] [-workers N] script outdir
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"seehuhn.de/go/scan"
	"seehuhn.de/go/scan/script"
)

func main() {
	verbose := flag.Bool("v", false, "log every command")
	workers := flag.Int("workers", 0, "number of rasterization goroutines (0 means GOMAXPROCS)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-v] [-workers N] script outdir\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	scan.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, flag.Arg(0), flag.Arg(1), *workers); err != nil {
		logger.Error("script failed", "script", flag.Arg(0), "err", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, scriptPath, outDir string, workers int) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	f, err := os.Open(scriptPath)
	if err != nil {
		return err
	}
	defer f.Close()

	in := &script.Interpreter{Dir: outDir, Workers: workers}
	return in.Run(ctx, f)
}
