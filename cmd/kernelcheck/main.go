// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command kernelcheck reports kernel-only hlsl members called from host code.
//
// Usage:
//
//	kernelcheck ./...
//	go vet -vettool=$(which kernelcheck) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/gogpu/shadermath/kernelcheck"
)

func main() {
	singlechecker.Main(kernelcheck.Analyzer)
}
