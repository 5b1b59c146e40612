// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import (
	"strings"
	"testing"
)

func TestValidateType(t *testing.T) {
	tests := []struct {
		name  string
		typ   TypeInner
		valid bool
	}{
		{"float", Float, true},
		{"double4", VectorType{Size: Vec4, Scalar: Double}, true},
		{"float1x4", MatrixType{Rows: Vec1, Columns: Vec4, Scalar: Float}, true},
		{"vector of one", VectorType{Size: Vec1, Scalar: Float}, false},
		{"five columns", MatrixType{Rows: Vec2, Columns: 5, Scalar: Float}, false},
		{"half", ScalarType{Kind: ScalarFloat, Width: 2}, false},
		{"wide int", ScalarType{Kind: ScalarSint, Width: 8}, false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateType(tt.typ)
			if (err == nil) != tt.valid {
				t.Errorf("ValidateType(%v) = %v, want valid=%v", tt.typ, err, tt.valid)
			}
		})
	}
}

func TestValidateIntrinsics(t *testing.T) {
	owner := Type{Name: "Float4", Inner: float4}
	matrix := Type{Name: "Float2x3", Inner: float2x3}

	tests := []struct {
		name    string
		in      Intrinsic
		wantErr string
	}{
		{
			name: "constructor",
			in:   Intrinsic{Owner: owner, Member: "Float4From211", Function: true, Kind: IntrinsicCompose, Args: []TypeInner{float2, Float, Float}, Result: float4},
		},
		{
			name:    "constructor short",
			in:      Intrinsic{Owner: owner, Member: "Float4From21", Function: true, Kind: IntrinsicCompose, Args: []TypeInner{float2, Float}, Result: float4},
			wantErr: "provide 3 components",
		},
		{
			name: "swizzle",
			in:   Intrinsic{Owner: owner, Member: "ZW", Kind: IntrinsicSwizzle, Pattern: []SwizzleComponent{SwizzleZ, SwizzleW}, Result: float2},
		},
		{
			name:    "aliased store",
			in:      Intrinsic{Owner: owner, Member: "SetXX", Kind: IntrinsicStoreSwizzle, Pattern: []SwizzleComponent{SwizzleX, SwizzleX}, Args: []TypeInner{float2}},
			wantErr: "repeated components",
		},
		{
			name:    "swizzle out of range",
			in:      Intrinsic{Owner: Type{Name: "Float2", Inner: float2}, Member: "ZX", Kind: IntrinsicSwizzle, Pattern: []SwizzleComponent{SwizzleZ, SwizzleX}, Result: float2},
			wantErr: "out of range",
		},
		{
			name:    "host operator",
			in:      Intrinsic{Owner: owner, Member: "Add", Kind: IntrinsicBinary, Binary: BinaryAdd, Args: []TypeInner{float4}, Result: float4},
			wantErr: "kernel-only",
		},
		{
			name: "reversed scale",
			in:   Intrinsic{Owner: owner, Member: "ScalarMul", Kind: IntrinsicBinary, Binary: BinaryMultiply, Args: []TypeInner{Float}, Result: float4, Reversed: true, KernelOnly: true},
		},
		{
			name:    "wrong comparison result",
			in:      Intrinsic{Owner: owner, Member: "Less", Kind: IntrinsicBinary, Binary: BinaryLess, Args: []TypeInner{float4}, Result: float4, KernelOnly: true},
			wantErr: "result float4, want bool4",
		},
		{
			name:    "explicit cast on host",
			in:      Intrinsic{Owner: owner, Member: "ToInt4", Kind: IntrinsicAs, Result: int4},
			wantErr: "explicit conversion must be kernel-only",
		},
		{
			name:    "implicit cast in kernel only",
			in:      Intrinsic{Owner: owner, Member: "ToDouble4", Kind: IntrinsicAs, Result: VectorType{Size: Vec4, Scalar: Double}, KernelOnly: true},
			wantErr: "implicit conversion must be host-defined",
		},
		{
			name: "float narrowing on host",
			in:   Intrinsic{Owner: Type{Name: "Double4", Inner: VectorType{Size: Vec4, Scalar: Double}}, Member: "ToFloat4", Kind: IntrinsicAs, Result: float4},
		},
		{
			name:    "float narrowing in kernel only",
			in:      Intrinsic{Owner: Type{Name: "Double4", Inner: VectorType{Size: Vec4, Scalar: Double}}, Member: "ToFloat4", Kind: IntrinsicAs, Result: float4, KernelOnly: true},
			wantErr: "float narrowing must be host-defined",
		},
		{
			name:    "cast across shapes",
			in:      Intrinsic{Owner: owner, Member: "ToInt3", Kind: IntrinsicAs, Result: VectorType{Size: Vec3, Scalar: Int}, KernelOnly: true},
			wantErr: "no conversion",
		},
		{
			name: "bitcast",
			in:   Intrinsic{Owner: owner, Member: "Vec", Kind: IntrinsicBitcast, Host: "f32.Vec4"},
		},
		{
			name:    "bitcast without host",
			in:      Intrinsic{Owner: owner, Member: "Vec", Kind: IntrinsicBitcast},
			wantErr: "without host type",
		},
		{
			name: "cell",
			in:   Intrinsic{Owner: matrix, Member: "M23", Kind: IntrinsicAccessIndex, Row: 2, Column: 3, Result: Float},
		},
		{
			name:    "cell outside",
			in:      Intrinsic{Owner: matrix, Member: "M32", Kind: IntrinsicAccessIndex, Row: 3, Column: 2, Result: Float},
			wantErr: "outside float2x3",
		},
		{
			name: "product",
			in:   Intrinsic{Owner: matrix, Member: "MulFloat3", Kind: IntrinsicMultiply, Args: []TypeInner{float3}, Result: float2},
		},
		{
			name:    "product mismatch",
			in:      Intrinsic{Owner: matrix, Member: "MulFloat2", Kind: IntrinsicMultiply, Args: []TypeInner{float2}, Result: float2},
			wantErr: "shape mismatch",
		},
		{
			name:    "row on host",
			in:      Intrinsic{Owner: matrix, Member: "Row", Kind: IntrinsicAccess, Args: []TypeInner{Int}, Result: float3},
			wantErr: "dynamic indexing must be kernel-only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate([]Intrinsic{tt.in})
			if tt.wantErr == "" {
				if len(errs) > 0 {
					t.Fatalf("unexpected errors: %v", errs)
				}
				return
			}
			if len(errs) == 0 {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			found := false
			for _, err := range errs {
				if strings.Contains(err.Error(), tt.wantErr) {
					found = true
				}
				if !strings.Contains(err.Error(), tt.in.String()) {
					t.Errorf("error %q does not name the intrinsic", err.Error())
				}
			}
			if !found {
				t.Errorf("errors %v do not mention %q", errs, tt.wantErr)
			}
		})
	}
}
