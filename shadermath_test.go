// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shadermath_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/shadermath"
	"github.com/gogpu/shadermath/hlsl"
	"github.com/gogpu/shadermath/lang"
	"github.com/gogpu/shadermath/layout"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		lang     lang.Language
		rule     layout.Rule
		spelling string
		layout   layout.TypeLayout
	}{
		{"packed float4", hlsl.Float4{}, lang.HLSL, layout.Packed, "float4", layout.TypeLayout{Size: 16, Align: 4}},
		{"pointer", &hlsl.Int2{}, lang.HLSL, layout.Packed, "int2", layout.TypeLayout{Size: 8, Align: 4}},
		{"storage float3", hlsl.Float3{}, lang.WGSL, layout.Storage, "vec3<f32>", layout.TypeLayout{Size: 12, Align: 16}},
		{"uniform float3x3", hlsl.Float3x3{}, lang.WGSL, layout.Uniform, "mat3x3<f32>", layout.TypeLayout{Size: 48, Align: 16, Stride: 16}},
		{"uniform float4x4", hlsl.Float4x4{}, lang.GLSL, layout.Uniform, "mat4", layout.TypeLayout{Size: 64, Align: 16, Stride: 16}},
		{"msl int4", hlsl.Int4{}, lang.MSL, layout.Storage, "metal::int4", layout.TypeLayout{Size: 16, Align: 16}},
		{"scalar", float32(1), lang.WGSL, layout.Storage, "f32", layout.TypeLayout{Size: 4, Align: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := shadermath.Describe(tt.value, shadermath.Options{Language: tt.lang, Rule: tt.rule})
			if err != nil {
				t.Fatalf("Describe: %v", err)
			}
			if d.Spelling != tt.spelling {
				t.Errorf("Spelling = %q, want %q", d.Spelling, tt.spelling)
			}
			if diff := cmp.Diff(tt.layout, d.Layout); diff != "" {
				t.Errorf("Layout mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDescribeMembers(t *testing.T) {
	d, err := shadermath.DescribeType("Float4", shadermath.DefaultOptions())
	if err != nil {
		t.Fatalf("DescribeType: %v", err)
	}
	if d.Type.Name != "Float4" {
		t.Errorf("Type.Name = %q, want Float4", d.Type.Name)
	}

	members := make(map[string]bool)
	for _, in := range d.Members {
		if in.Owner.Name != "Float4" {
			t.Errorf("member %s has owner %s", in, in.Owner.Name)
		}
		members[in.Member] = in.KernelOnly
	}
	for member, kernelOnly := range map[string]bool{"ZW": false, "SetZW": false, "Add": true, "Index": true} {
		got, ok := members[member]
		if !ok {
			t.Errorf("missing member %s", member)
			continue
		}
		if got != kernelOnly {
			t.Errorf("%s KernelOnly = %v, want %v", member, got, kernelOnly)
		}
	}

	for _, in := range d.KernelOnly() {
		if !in.KernelOnly {
			t.Errorf("KernelOnly returned host member %s", in)
		}
	}
	if len(d.KernelOnly()) == 0 || len(d.KernelOnly()) == len(d.Members) {
		t.Errorf("KernelOnly = %d of %d members", len(d.KernelOnly()), len(d.Members))
	}

	scalar, err := shadermath.Describe(float32(0), shadermath.DefaultOptions())
	if err != nil {
		t.Fatalf("Describe(float32): %v", err)
	}
	if len(scalar.Members) != 0 {
		t.Errorf("float32 has %d members, want 0", len(scalar.Members))
	}
}

func TestDescribeErrors(t *testing.T) {
	if _, err := shadermath.Describe("float4", shadermath.DefaultOptions()); !errors.Is(err, shadermath.ErrUnknownType) {
		t.Errorf("Describe(string) error = %v, want ErrUnknownType", err)
	}
	if _, err := shadermath.DescribeType("Float5", shadermath.DefaultOptions()); !errors.Is(err, shadermath.ErrUnknownType) {
		t.Errorf("DescribeType(Float5) error = %v, want ErrUnknownType", err)
	}

	_, err := shadermath.Describe(hlsl.Double2{}, shadermath.Options{Language: lang.MSL, Rule: layout.Packed})
	if !lang.IsKind(err, lang.ErrUnsupportedType) {
		t.Errorf("Describe(Double2, MSL) error = %v, want ErrUnsupportedType", err)
	}

	_, err = shadermath.Describe(hlsl.Bool4{}, shadermath.Options{Language: lang.HLSL, Rule: layout.Storage})
	var layoutErr *layout.Error
	if !errors.As(err, &layoutErr) {
		t.Fatalf("Describe(Bool4, Storage) error = %v, want *layout.Error", err)
	}
	if layoutErr.Rule != layout.Storage {
		t.Errorf("layout error rule = %v, want %v", layoutErr.Rule, layout.Storage)
	}
}

func TestSpell(t *testing.T) {
	tests := []struct {
		lang     lang.Language
		value    any
		member   string
		operands []string
		want     string
	}{
		{lang.HLSL, hlsl.Float4{}, "ZW", []string{"v"}, "v.zw"},
		{lang.WGSL, hlsl.Float4{}, "ZW", []string{"v"}, "v.zw"},
		{lang.HLSL, hlsl.Float4x4{}, "MulFloat4", []string{"m", "v"}, "mul(m, v)"},
		{lang.MSL, &hlsl.Float4x4{}, "M41", []string{"m"}, "m[3][0]"},
	}
	for _, tt := range tests {
		t.Run(tt.lang.String()+"/"+tt.member, func(t *testing.T) {
			opts := shadermath.DefaultOptions()
			opts.Language = tt.lang
			got, err := shadermath.Spell(tt.value, tt.member, opts, tt.operands...)
			if err != nil {
				t.Fatalf("Spell: %v", err)
			}
			if got != tt.want {
				t.Errorf("Spell = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpellErrors(t *testing.T) {
	opts := shadermath.DefaultOptions()
	if _, err := shadermath.Spell(hlsl.Float4{}, "Frobnicate", opts, "v"); !errors.Is(err, shadermath.ErrUnknownMember) {
		t.Errorf("unknown member error = %v, want ErrUnknownMember", err)
	}
	if _, err := shadermath.Spell(struct{}{}, "X", opts, "v"); !errors.Is(err, shadermath.ErrUnknownType) {
		t.Errorf("unknown type error = %v, want ErrUnknownType", err)
	}
	if _, err := shadermath.Spell(hlsl.Float4{}, "ZW", opts); !lang.IsKind(err, lang.ErrOperandCount) {
		t.Errorf("missing operand error = %v, want ErrOperandCount", err)
	}
}

func TestValidate(t *testing.T) {
	errs, err := shadermath.Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(errs) != 0 {
		t.Errorf("Validate returned %d errors", len(errs))
	}

	opts := shadermath.DefaultOptions()
	opts.Validate = true
	if _, err := shadermath.Describe(hlsl.Uint3{}, opts); err != nil {
		t.Errorf("Describe with validation: %v", err)
	}
}

func TestLogger(t *testing.T) {
	t.Cleanup(func() { shadermath.SetLogger(nil) })

	if shadermath.Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}

	var buf bytes.Buffer
	shadermath.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	if _, err := shadermath.Describe(hlsl.Float2x2{}, shadermath.DefaultOptions()); err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if out := buf.String(); !strings.Contains(out, "described type") || !strings.Contains(out, "type=Float2x2") {
		t.Errorf("log output = %q", out)
	}

	shadermath.SetLogger(nil)
	if shadermath.Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) left logging enabled")
	}
}
