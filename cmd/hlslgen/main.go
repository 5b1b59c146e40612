// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command hlslgen generates the vector and matrix types of package hlsl.
//
// Usage:
//
//	hlslgen [options]
//
// Or via go:generate in package hlsl:
//
//	//go:generate go run ../cmd/hlslgen -output .
//
// One file per scalar kind and concern is written: zz_<kind>_vector.go,
// zz_<kind>_swizzle.go and zz_<kind>_matrix.go.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/shadermath/internal/gen"
	"github.com/gogpu/shadermath/ir"
)

var (
	outputDir = flag.String("output", ".", "output directory")
	pkgName   = flag.String("pkg", "hlsl", "package name of the generated files")
	check     = flag.Bool("check", false, "validate the model and exit without writing")
	verbose   = flag.Bool("v", false, "log every generated file")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	model := gen.NewModel()
	intrinsics := model.Intrinsics()
	if errs := ir.Validate(intrinsics); len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	logger.Info("model validated", "types", len(model.Vectors)+len(model.Matrices), "intrinsics", len(intrinsics))
	if *check {
		return
	}

	cfg := gen.DefaultConfig()
	cfg.Package = *pkgName
	cfg.Logger = logger
	files, err := gen.Generate(model, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generation error: %v\n", err)
		os.Exit(1)
	}

	for _, f := range files {
		path := filepath.Join(*outputDir, f.Name)
		if err := os.WriteFile(path, f.Source, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	}
	logger.Info("generated", "files", len(files), "dir", *outputDir)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: hlslgen [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
