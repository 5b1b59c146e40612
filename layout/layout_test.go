// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package layout_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/shadermath/hlsl"
	"github.com/gogpu/shadermath/ir"
	"github.com/gogpu/shadermath/layout"
)

var (
	float2   = ir.VectorType{Size: ir.Vec2, Scalar: ir.Float}
	float3   = ir.VectorType{Size: ir.Vec3, Scalar: ir.Float}
	float4   = ir.VectorType{Size: ir.Vec4, Scalar: ir.Float}
	float2x2 = ir.MatrixType{Rows: ir.Vec2, Columns: ir.Vec2, Scalar: ir.Float}
	float4x4 = ir.MatrixType{Rows: ir.Vec4, Columns: ir.Vec4, Scalar: ir.Float}
)

func TestPackedMatchesHostTypes(t *testing.T) {
	values := []any{
		float32(0), float64(0), int32(0), uint32(0), hlsl.Bool(0),
		hlsl.Float2{}, hlsl.Float3{}, hlsl.Float4{},
		hlsl.Double2{}, hlsl.Double3{}, hlsl.Double4{},
		hlsl.Int3{}, hlsl.Uint4{}, hlsl.Bool2{},
		hlsl.Float1x4{}, hlsl.Float4x1{}, hlsl.Float2x3{}, hlsl.Float4x4{},
		hlsl.Double3x3{}, hlsl.Double1x1{}, hlsl.Int2x4{}, hlsl.Uint3x2{}, hlsl.Bool3x3{},
	}
	for _, v := range values {
		typ, ok := hlsl.TypeOf(v)
		if !ok {
			t.Fatalf("TypeOf(%T) failed", v)
		}
		t.Run(typ.Name, func(t *testing.T) {
			got, err := layout.Of(typ.Inner, layout.Packed)
			if err != nil {
				t.Fatalf("Of: %v", err)
			}
			rt := reflect.TypeOf(v)
			if got.Size != int(rt.Size()) {
				t.Errorf("Size = %d, unsafe.Sizeof = %d", got.Size, rt.Size())
			}
			if got.Align != rt.Align() {
				t.Errorf("Align = %d, unsafe.Alignof = %d", got.Align, rt.Align())
			}
		})
	}
}

func TestBufferRules(t *testing.T) {
	tests := []struct {
		name string
		typ  ir.TypeInner
		rule layout.Rule
		want layout.TypeLayout
	}{
		{"float", ir.Float, layout.Storage, layout.TypeLayout{Size: 4, Align: 4}},
		{"double", ir.Double, layout.Uniform, layout.TypeLayout{Size: 8, Align: 8}},
		{"float2", float2, layout.Storage, layout.TypeLayout{Size: 8, Align: 8}},
		{"float3", float3, layout.Storage, layout.TypeLayout{Size: 12, Align: 16}},
		{"float4", float4, layout.Uniform, layout.TypeLayout{Size: 16, Align: 16}},
		{"double3", ir.VectorType{Size: ir.Vec3, Scalar: ir.Double}, layout.Storage, layout.TypeLayout{Size: 24, Align: 32}},
		{"float2x2 std430", float2x2, layout.Storage, layout.TypeLayout{Size: 16, Align: 8, Stride: 8}},
		{"float2x2 std140", float2x2, layout.Uniform, layout.TypeLayout{Size: 32, Align: 16, Stride: 16}},
		{"float3x3", ir.MatrixType{Rows: ir.Vec3, Columns: ir.Vec3, Scalar: ir.Float}, layout.Storage, layout.TypeLayout{Size: 48, Align: 16, Stride: 16}},
		{"float4x4", float4x4, layout.Uniform, layout.TypeLayout{Size: 64, Align: 16, Stride: 16}},
		{"float2x3", ir.MatrixType{Rows: ir.Vec2, Columns: ir.Vec3, Scalar: ir.Float}, layout.Storage, layout.TypeLayout{Size: 32, Align: 16, Stride: 16}},
		{"float3x2 std430", ir.MatrixType{Rows: ir.Vec3, Columns: ir.Vec2, Scalar: ir.Float}, layout.Storage, layout.TypeLayout{Size: 24, Align: 8, Stride: 8}},
		{"float3x2 std140", ir.MatrixType{Rows: ir.Vec3, Columns: ir.Vec2, Scalar: ir.Float}, layout.Uniform, layout.TypeLayout{Size: 48, Align: 16, Stride: 16}},
		{"double2x2", ir.MatrixType{Rows: ir.Vec2, Columns: ir.Vec2, Scalar: ir.Double}, layout.Storage, layout.TypeLayout{Size: 32, Align: 16, Stride: 16}},
		{"packed float2x3", ir.MatrixType{Rows: ir.Vec2, Columns: ir.Vec3, Scalar: ir.Float}, layout.Packed, layout.TypeLayout{Size: 24, Align: 4, Stride: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := layout.Of(tt.typ, tt.rule)
			if err != nil {
				t.Fatalf("Of: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Of(%s, %s) mismatch (-want +got):\n%s", ir.TypeString(tt.typ), tt.rule, diff)
			}
		})
	}
}

func TestBufferRuleErrors(t *testing.T) {
	tests := []struct {
		name string
		typ  ir.TypeInner
		rule layout.Rule
	}{
		{"bool vector", ir.VectorType{Size: ir.Vec2, Scalar: ir.Bool}, layout.Storage},
		{"single row", ir.MatrixType{Rows: ir.Vec1, Columns: ir.Vec4, Scalar: ir.Float}, layout.Storage},
		{"single column", ir.MatrixType{Rows: ir.Vec3, Columns: ir.Vec1, Scalar: ir.Float}, layout.Uniform},
		{"invalid vector", ir.VectorType{Size: ir.Vec1, Scalar: ir.Float}, layout.Packed},
		{"unknown rule", ir.Float, layout.Rule(7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := layout.Of(tt.typ, tt.rule)
			var lerr *layout.Error
			if !errors.As(err, &lerr) {
				t.Fatalf("err = %v, want *layout.Error", err)
			}
			if lerr.Rule != tt.rule {
				t.Errorf("Rule = %s, want %s", lerr.Rule, tt.rule)
			}
		})
	}
}

func offsets(s layout.StructLayout) []int {
	out := make([]int, len(s.Members))
	for i, m := range s.Members {
		out[i] = m.Offset
	}
	return out
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		rule    layout.Rule
		fields  []layout.Field
		offsets []int
		size    int
		align   int
	}{
		{
			name:    "packed vertex",
			rule:    layout.Packed,
			fields:  []layout.Field{{Name: "position", Type: float3}, {Name: "color", Type: float4}},
			offsets: []int{0, 12}, size: 28, align: 4,
		},
		{
			name:    "std430 vertex",
			rule:    layout.Storage,
			fields:  []layout.Field{{Name: "position", Type: float3}, {Name: "color", Type: float4}},
			offsets: []int{0, 16}, size: 32, align: 16,
		},
		{
			name:    "scalar after vec3",
			rule:    layout.Storage,
			fields:  []layout.Field{{Name: "a", Type: ir.Float}, {Name: "b", Type: float3}, {Name: "c", Type: ir.Float}},
			offsets: []int{0, 16, 28}, size: 32, align: 16,
		},
		{
			name:    "std140 matrix",
			rule:    layout.Uniform,
			fields:  []layout.Field{{Name: "a", Type: ir.Float}, {Name: "m", Type: float2x2}},
			offsets: []int{0, 16}, size: 48, align: 16,
		},
		{
			name:    "std140 scalars",
			rule:    layout.Uniform,
			fields:  []layout.Field{{Name: "a", Type: ir.Float}, {Name: "b", Type: ir.Uint}},
			offsets: []int{0, 4}, size: 16, align: 16,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := layout.Struct(tt.rule, tt.fields...)
			if err != nil {
				t.Fatalf("Struct: %v", err)
			}
			if diff := cmp.Diff(tt.offsets, offsets(s)); diff != "" {
				t.Errorf("offsets mismatch (-want +got):\n%s", diff)
			}
			if s.Size != tt.size || s.Align != tt.align {
				t.Errorf("size/align = %d/%d, want %d/%d", s.Size, s.Align, tt.size, tt.align)
			}
		})
	}

	_, err := layout.Struct(layout.Storage, layout.Field{Name: "flag", Type: ir.Bool})
	var lerr *layout.Error
	if !errors.As(err, &lerr) || !strings.Contains(err.Error(), "field flag") {
		t.Errorf("bool member: err = %v", err)
	}
}

type meshVertex struct {
	Position  hlsl.Float3
	Normal    hlsl.Float3
	UV        hlsl.Float2
	Weight    float32
	Transform hlsl.Float4x4
	Scale     float64
}

func TestStructOfMatchesGoLayout(t *testing.T) {
	s, err := layout.StructOf(meshVertex{}, layout.Packed)
	if err != nil {
		t.Fatalf("StructOf: %v", err)
	}
	rt := reflect.TypeOf(meshVertex{})
	if len(s.Members) != rt.NumField() {
		t.Fatalf("%d members, want %d", len(s.Members), rt.NumField())
	}
	for i, m := range s.Members {
		f := rt.Field(i)
		if m.Name != f.Name || m.Offset != int(f.Offset) {
			t.Errorf("member %d = %s@%d, Go field %s@%d", i, m.Name, m.Offset, f.Name, f.Offset)
		}
	}
	if s.Size != int(rt.Size()) {
		t.Errorf("Size = %d, unsafe.Sizeof = %d", s.Size, rt.Size())
	}

	type bad struct{ Count int }
	if _, err := layout.StructOf(bad{}, layout.Packed); err == nil {
		t.Error("StructOf accepted an int field")
	}
	if _, err := layout.StructOf(42, layout.Packed); err == nil {
		t.Error("StructOf accepted a non-struct")
	}
}

func TestVertexFormat(t *testing.T) {
	tests := []struct {
		typ  ir.TypeInner
		want gputypes.VertexFormat
	}{
		{ir.Float, gputypes.VertexFormatFloat32},
		{float3, gputypes.VertexFormatFloat32x3},
		{ir.VectorType{Size: ir.Vec2, Scalar: ir.Int}, gputypes.VertexFormatSint32x2},
		{ir.VectorType{Size: ir.Vec4, Scalar: ir.Uint}, gputypes.VertexFormatUint32x4},
	}
	for _, tt := range tests {
		got, err := layout.VertexFormat(tt.typ)
		if err != nil || got != tt.want {
			t.Errorf("VertexFormat(%s) = %s, %v; want %s", ir.TypeString(tt.typ), got, err, tt.want)
		}
		l, _ := layout.Of(tt.typ, layout.Packed)
		if got.Size() != uint64(l.Size) {
			t.Errorf("%s: format size %d, packed size %d", got, got.Size(), l.Size)
		}
	}

	for _, typ := range []ir.TypeInner{
		ir.VectorType{Size: ir.Vec2, Scalar: ir.Double},
		ir.VectorType{Size: ir.Vec3, Scalar: ir.Bool},
		float2x2,
	} {
		if _, err := layout.VertexFormat(typ); err == nil {
			t.Errorf("VertexFormat(%s) succeeded", ir.TypeString(typ))
		}
	}
}

func TestVertexAttributes(t *testing.T) {
	got, err := layout.VertexAttributes(gputypes.VertexStepModeVertex,
		layout.Field{Name: "position", Type: float3},
		layout.Field{Name: "color", Type: float4},
	)
	if err != nil {
		t.Fatalf("VertexAttributes: %v", err)
	}
	want := gputypes.VertexBufferLayout{
		ArrayStride: 28,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 1},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("vertex layout mismatch (-want +got):\n%s", diff)
	}
}

type instance struct {
	Transform hlsl.Float4x4
	Tint      hlsl.Float4
	Offset    hlsl.Float2x3
}

func TestVertexAttributesMatrixRows(t *testing.T) {
	got, err := layout.VertexAttributesOf(instance{}, gputypes.VertexStepModeInstance)
	if err != nil {
		t.Fatalf("VertexAttributesOf: %v", err)
	}
	want := gputypes.VertexBufferLayout{
		ArrayStride: 104,
		StepMode:    gputypes.VertexStepModeInstance,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 1},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 2},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 48, ShaderLocation: 3},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 64, ShaderLocation: 4},
			{Format: gputypes.VertexFormatFloat32x3, Offset: 80, ShaderLocation: 5},
			{Format: gputypes.VertexFormatFloat32x3, Offset: 92, ShaderLocation: 6},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("instance layout mismatch (-want +got):\n%s", diff)
	}
	if int(got.ArrayStride) != int(reflect.TypeOf(instance{}).Size()) {
		t.Errorf("ArrayStride = %d, unsafe.Sizeof = %d", got.ArrayStride, reflect.TypeOf(instance{}).Size())
	}

	_, err = layout.VertexAttributes(gputypes.VertexStepModeVertex, layout.Field{Name: "weight", Type: ir.Double})
	if err == nil || !strings.Contains(err.Error(), "field weight") {
		t.Errorf("double attribute: err = %v", err)
	}
}
