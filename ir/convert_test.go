// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import "testing"

func TestConversion(t *testing.T) {
	tests := []struct {
		from, to ScalarType
		want     Cast
	}{
		{Float, Float, CastImplicit},
		{Float, Double, CastImplicit},
		{Int, Double, CastImplicit},
		{Uint, Double, CastImplicit},
		{Bool, Float, CastImplicit},
		{Bool, Double, CastImplicit},
		{Bool, Int, CastImplicit},
		{Bool, Uint, CastImplicit},

		{Double, Float, CastExplicit},
		{Float, Int, CastExplicit},
		{Float, Uint, CastExplicit},
		{Double, Int, CastExplicit},
		{Int, Float, CastExplicit},
		{Uint, Float, CastExplicit},
		{Int, Uint, CastExplicit},
		{Uint, Int, CastExplicit},
		{Float, Bool, CastExplicit},
		{Int, Bool, CastExplicit},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"_to_"+tt.to.String(), func(t *testing.T) {
			if got := Conversion(tt.from, tt.to); got != tt.want {
				t.Errorf("Conversion(%s, %s) = %s, want %s", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

// Every ordered pair of kinds has exactly one relation, and implicit edges
// never lower the promotion rank.
func TestConversionLattice(t *testing.T) {
	for _, from := range Scalars() {
		for _, to := range Scalars() {
			c := Conversion(from, to)
			if c != CastImplicit && c != CastExplicit {
				t.Errorf("%s -> %s: relation %s", from, to, c)
			}
			if c == CastImplicit && to.Rank() < from.Rank() {
				t.Errorf("%s -> %s: implicit edge lowers rank %d -> %d", from, to, from.Rank(), to.Rank())
			}
			if c == CastImplicit && from != to && Conversion(to, from) == CastImplicit {
				t.Errorf("%s <-> %s: implicit in both directions", from, to)
			}
		}
	}
}

func TestConversionBetween(t *testing.T) {
	float4 := VectorType{Size: Vec4, Scalar: Float}
	double4 := VectorType{Size: Vec4, Scalar: Double}
	int3 := VectorType{Size: Vec3, Scalar: Int}
	float2x2 := MatrixType{Rows: Vec2, Columns: Vec2, Scalar: Float}
	int2x2 := MatrixType{Rows: Vec2, Columns: Vec2, Scalar: Int}
	float4x1 := MatrixType{Rows: Vec4, Columns: Vec1, Scalar: Float}

	tests := []struct {
		name     string
		from, to TypeInner
		want     Cast
	}{
		{"widen vector", float4, double4, CastImplicit},
		{"narrow vector", double4, float4, CastExplicit},
		{"shape mismatch", float4, int3, CastNone},
		{"matrix to int", float2x2, int2x2, CastExplicit},
		{"vector to column", float4, float4x1, CastNone},
		{"nil", nil, float4, CastNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConversionBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("ConversionBetween = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHostConversion(t *testing.T) {
	tests := []struct {
		from, to ScalarType
		want     bool
	}{
		{Float, Double, true},
		{Double, Float, true},
		{Bool, Float, true},
		{Int, Double, true},
		{Float, Int, false},
		{Double, Uint, false},
		{Int, Uint, false},
		{Int, Float, false},
		{Float, Bool, false},
	}
	for _, tt := range tests {
		if got := HostConversion(tt.from, tt.to); got != tt.want {
			t.Errorf("HostConversion(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
