// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import (
	"errors"
	"testing"
)

var (
	float4   = VectorType{Size: Vec4, Scalar: Float}
	float3   = VectorType{Size: Vec3, Scalar: Float}
	float2   = VectorType{Size: Vec2, Scalar: Float}
	int4     = VectorType{Size: Vec4, Scalar: Int}
	bool4    = VectorType{Size: Vec4, Scalar: Bool}
	float4x4 = MatrixType{Rows: Vec4, Columns: Vec4, Scalar: Float}
	float2x3 = MatrixType{Rows: Vec2, Columns: Vec3, Scalar: Float}
	float3x2 = MatrixType{Rows: Vec3, Columns: Vec2, Scalar: Float}
)

func TestResolveBinary(t *testing.T) {
	tests := []struct {
		name        string
		op          BinaryOperator
		left, right TypeInner
		want        TypeInner
		err         error
	}{
		{"add vectors", BinaryAdd, float4, float4, float4, nil},
		{"scale right", BinaryMultiply, float4, Float, float4, nil},
		{"scale left", BinaryMultiply, Float, float4, float4, nil},
		{"compare vectors", BinaryLess, float4, float4, bool4, nil},
		{"compare matrices", BinaryEqual, float2x3, float2x3, MatrixType{Rows: Vec2, Columns: Vec3, Scalar: Bool}, nil},
		{"bool equality", BinaryEqual, bool4, bool4, bool4, nil},
		{"logical and", BinaryLogicalAnd, bool4, bool4, bool4, nil},
		{"shift ints", BinaryShiftLeft, int4, int4, int4, nil},
		{"float modulo", BinaryModulo, float4, float4, float4, nil},

		{"size mismatch", BinaryAdd, float4, float3, nil, ErrShapeMismatch},
		{"vector and matrix", BinaryAdd, float4, float4x4, nil, ErrShapeMismatch},
		{"kind mismatch", BinaryAdd, float4, int4, nil, ErrKindMismatch},
		{"bool ordering", BinaryLess, bool4, bool4, nil, ErrKindMismatch},
		{"bitwise float", BinaryAnd, float4, float4, nil, ErrKindMismatch},
		{"logical int", BinaryLogicalOr, int4, int4, nil, ErrKindMismatch},
		{"arithmetic bool", BinaryAdd, bool4, bool4, nil, ErrKindMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveBinary(tt.op, tt.left, tt.right)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("err = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveBinary = %s, want %s", TypeString(got), TypeString(tt.want))
			}
		})
	}
}

func TestResolveUnary(t *testing.T) {
	if got, err := ResolveUnary(UnaryNegate, float4); err != nil || got != float4 {
		t.Errorf("negate float4 = %v, %v", got, err)
	}
	if _, err := ResolveUnary(UnaryNegate, VectorType{Size: Vec2, Scalar: Uint}); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("negate uint2: err = %v", err)
	}
	if _, err := ResolveUnary(UnaryLogicalNot, int4); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("not int4: err = %v", err)
	}
	if got, err := ResolveUnary(UnaryBitwiseNot, int4); err != nil || got != int4 {
		t.Errorf("complement int4 = %v, %v", got, err)
	}
}

func TestResolveMultiply(t *testing.T) {
	tests := []struct {
		name        string
		left, right TypeInner
		want        TypeInner
		err         error
	}{
		{"matrix times vector", float4x4, float4, float4, nil},
		{"vector times matrix", float4, float4x4, float4, nil},
		{"rectangular times vector", float2x3, float3, float2, nil},
		{"vector times rectangular", float2, float2x3, float3, nil},
		{"matrix product", float2x3, float3x2, MatrixType{Rows: Vec2, Columns: Vec2, Scalar: Float}, nil},
		{"row times column", MatrixType{Rows: Vec1, Columns: Vec3, Scalar: Float}, float3, Float, nil},
		{"vector times column", float3, MatrixType{Rows: Vec3, Columns: Vec1, Scalar: Float}, Float, nil},
		{"scalar", Float, float2x3, float2x3, nil},

		{"matrix vector mismatch", float2x3, float2, nil, ErrShapeMismatch},
		{"vector matrix mismatch", float3, float2x3, nil, ErrShapeMismatch},
		{"matrix mismatch", float2x3, float2x3, nil, ErrShapeMismatch},
		{"vector vector", float4, float4, nil, ErrShapeMismatch},
		{"kind mismatch", float4x4, int4, nil, ErrKindMismatch},
		{"bool", bool4, bool4, nil, ErrKindMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveMultiply(tt.left, tt.right)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("err = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveMultiply = %s, want %s", TypeString(got), TypeString(tt.want))
			}
		})
	}
}

func TestTypeHelpers(t *testing.T) {
	if got := float2x3.RowType(); got != float3 {
		t.Errorf("RowType = %v", got)
	}
	if got := (MatrixType{Rows: Vec3, Columns: Vec1, Scalar: Int}).RowType(); got != Int {
		t.Errorf("single-column RowType = %v", got)
	}
	if Components(float2x3) != 6 || Components(float4) != 4 || Components(Float) != 1 {
		t.Error("Components mismatch")
	}
	if got := WithScalar(float2x3, Double); got != (MatrixType{Rows: Vec2, Columns: Vec3, Scalar: Double}) {
		t.Errorf("WithScalar = %v", got)
	}
	if float2x3.String() != "float2x3" || Double.String() != "double" || (VectorType{Size: Vec3, Scalar: Uint}).String() != "uint3" {
		t.Error("HLSL spelling mismatch")
	}
	if !SameShape(float4, int4) || SameShape(float2x3, float3x2) {
		t.Error("SameShape mismatch")
	}
}
