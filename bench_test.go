// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shadermath

import (
	"runtime"
	"testing"

	"github.com/gogpu/shadermath/hlsl"
	"github.com/gogpu/shadermath/lang"
	"github.com/gogpu/shadermath/layout"
)

// benchValues covers every shape class: scalar, vector, square and
// non-square matrices.
var benchValues = []struct {
	name  string
	value any
}{
	{"float32", float32(0)},
	{"Float4", hlsl.Float4{}},
	{"Float3x3", hlsl.Float3x3{}},
	{"Float4x4", hlsl.Float4x4{}},
	{"Float2x3", hlsl.Float2x3{}},
}

// BenchmarkDescribe measures catalog filtering plus spelling and layout.
func BenchmarkDescribe(b *testing.B) {
	opts := Options{Language: lang.WGSL, Rule: layout.Storage}
	for _, bv := range benchValues {
		b.Run(bv.name, func(b *testing.B) {
			b.ReportAllocs()

			var d Description
			for i := 0; i < b.N; i++ {
				var err error
				d, err = Describe(bv.value, opts)
				if err != nil {
					b.Fatalf("describe failed: %v", err)
				}
			}
			runtime.KeepAlive(d)
		})
	}
}

// BenchmarkSpellAllLanguages spells the same product in every language.
func BenchmarkSpellAllLanguages(b *testing.B) {
	for _, l := range lang.Languages() {
		b.Run(l.String(), func(b *testing.B) {
			b.ReportAllocs()
			opts := Options{Language: l}

			var expr string
			for i := 0; i < b.N; i++ {
				var err error
				expr, err = Spell(hlsl.Float4x4{}, "MulFloat4", opts, "m", "v")
				if err != nil {
					b.Fatalf("spell failed: %v", err)
				}
			}
			runtime.KeepAlive(expr)
		})
	}
}

// BenchmarkValidate measures a full catalog validation pass.
func BenchmarkValidate(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Validate(); err != nil {
			b.Fatalf("validate failed: %v", err)
		}
	}
}
