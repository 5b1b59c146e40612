// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package kernelcheck_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/gogpu/shadermath/kernelcheck"
)

func TestAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), kernelcheck.Analyzer, "kernels")
}
