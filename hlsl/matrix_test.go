// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"testing"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// Scenario: a 2x2 matrix built from rows exposes its cells row-major.
func TestMatrixFromRows(t *testing.T) {
	m := Float2x2FromRows(NewFloat2(1, 2), NewFloat2(3, 4))
	if m.M11 != 1 || m.M12 != 2 || m.M21 != 3 || m.M22 != 4 {
		t.Errorf("Float2x2FromRows = %+v, want M11=1 M12=2 M21=3 M22=4", m)
	}
	if m != NewFloat2x2(1, 2, 3, 4) {
		t.Errorf("FromRows and New disagree: %+v", m)
	}

	n := Int2x3FromRows(NewInt3(1, 2, 3), NewInt3(4, 5, 6))
	if n.M13 != 3 || n.M21 != 4 || n.M23 != 6 {
		t.Errorf("Int2x3FromRows = %+v", n)
	}
}

func TestMatrixSplat(t *testing.T) {
	m := SplatDouble3x2(2)
	want := NewDouble3x2(2, 2, 2, 2, 2, 2)
	if m != want {
		t.Errorf("SplatDouble3x2 = %+v, want %+v", m, want)
	}
	if got := SplatBool1x1(True); got.M11 != True {
		t.Errorf("SplatBool1x1 = %+v", got)
	}
}

func identity4() Float4x4 {
	return NewFloat4x4(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Scenario: the identity leaves a vector unchanged.
func TestIdentityTimesVector(t *testing.T) {
	v := NewFloat4(5, 6, 7, 8)
	if got := identity4().MulFloat4(v); got != v {
		t.Errorf("identity * %v = %v", v, got)
	}
	if got := v.MulFloat4x4(identity4()); got != v {
		t.Errorf("%v * identity = %v", v, got)
	}
}

func TestMatrixVectorProduct(t *testing.T) {
	m := NewFloat2x3(
		1, 2, 3,
		4, 5, 6,
	)
	if got, want := m.MulFloat3(NewFloat3(1, 0, -1)), NewFloat2(-2, -2); got != want {
		t.Errorf("m * v = %v, want %v", got, want)
	}

	row := NewInt1x3(1, 2, 3)
	if got := row.MulInt3(NewInt3(4, 5, 6)); got != 32 {
		t.Errorf("Int1x3 * Int3 = %v, want 32", got)
	}
}

func TestMatrixProduct(t *testing.T) {
	a := NewFloat2x3(
		1, 2, 3,
		4, 5, 6,
	)
	b := NewFloat3x2(
		7, 8,
		9, 10,
		11, 12,
	)
	want := NewFloat2x2(
		58, 64,
		139, 154,
	)
	if got := a.MulFloat3x2(b); got != want {
		t.Errorf("a * b = %+v, want %+v", got, want)
	}

	if got := identity4().MulFloat4x4(identity4()); got != identity4() {
		t.Errorf("identity * identity = %+v", got)
	}

	outer := NewUint2x1(2, 3).MulUint1x2(NewUint1x2(4, 5))
	if outer != NewUint2x2(8, 10, 12, 15) {
		t.Errorf("outer product = %+v", outer)
	}
}

func TestMatrixNative(t *testing.T) {
	m := NewFloat3x3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	native := m.Mat()
	if native != (f32.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}) {
		t.Errorf("Float3x3.Mat = %v", native)
	}
	if back := Float3x3FromMat(native); back != m {
		t.Errorf("Float3x3FromMat(m.Mat()) = %+v, want %+v", back, m)
	}

	d := Double4x4FromMat(f64.Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 10, 20, 30, 1})
	if d.M41 != 10 || d.M42 != 20 || d.M43 != 30 || d.M44 != 1 {
		t.Errorf("Double4x4FromMat = %+v", d)
	}

	small := NewFloat2x2(1, 2, 3, 4)
	if small.Array() != [4]float32{1, 2, 3, 4} {
		t.Errorf("Float2x2.Array = %v", small.Array())
	}
	if Float2x2FromArray(small.Array()) != small {
		t.Error("Float2x2 array round trip mismatch")
	}
}

func TestMatrixConversions(t *testing.T) {
	m := NewInt2x2(1, -2, 3, -4)
	if got, want := m.ToDouble2x2(), NewDouble2x2(1, -2, 3, -4); got != want {
		t.Errorf("Int2x2.ToDouble2x2 = %+v, want %+v", got, want)
	}
	f := NewFloat2x3(0.5, -1, 3, 1e-3, 8, -0.25)
	if got := f.ToDouble2x3().ToFloat2x3(); got != f {
		t.Errorf("Float2x3 -> Double2x3 -> Float2x3 = %+v, want %+v", got, f)
	}
	b := NewBool2x1(True, False)
	if got, want := b.ToFloat2x1(), NewFloat2x1(1, 0); got != want {
		t.Errorf("Bool2x1.ToFloat2x1 = %+v, want %+v", got, want)
	}
}

func TestCell(t *testing.T) {
	tests := []struct {
		cell     Cell
		row, col int
		name     string
	}{
		{M11, 1, 1, "M11"},
		{M23, 2, 3, "M23"},
		{M44, 4, 4, "M44"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cell.Row() != tt.row || tt.cell.Column() != tt.col {
				t.Errorf("%v: row %d col %d, want %d %d", tt.cell, tt.cell.Row(), tt.cell.Column(), tt.row, tt.col)
			}
			if tt.cell.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.cell.String(), tt.name)
			}
		})
	}

	if !M23.In(2, 3) || M23.In(3, 2) || Cell(0).In(4, 4) {
		t.Error("Cell.In mismatch")
	}
}
