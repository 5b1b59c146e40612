// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

func TestVectorRoundTrip(t *testing.T) {
	f2 := NewFloat2(1, 2)
	f3 := NewFloat3(1, 2, 3)
	f4 := NewFloat4(1, 2, 3, 4)
	d4 := NewDouble4(1.5, 2.5, 3.5, 4.5)
	i3 := NewInt3(-1, 0, 1)
	u2 := NewUint2(7, math.MaxUint32)
	b4 := NewBool4(True, False, False, True)

	tests := []struct {
		name string
		got  []any
		want []any
	}{
		{"Float2", []any{f2.X, f2.Y}, []any{float32(1), float32(2)}},
		{"Float3", []any{f3.X, f3.Y, f3.Z}, []any{float32(1), float32(2), float32(3)}},
		{"Float4", []any{f4.X, f4.Y, f4.Z, f4.W}, []any{float32(1), float32(2), float32(3), float32(4)}},
		{"Double4", []any{d4.X, d4.Y, d4.Z, d4.W}, []any{1.5, 2.5, 3.5, 4.5}},
		{"Int3", []any{i3.X, i3.Y, i3.Z}, []any{int32(-1), int32(0), int32(1)}},
		{"Uint2", []any{u2.X, u2.Y}, []any{uint32(7), uint32(math.MaxUint32)}},
		{"Bool4", []any{b4.X, b4.Y, b4.Z, b4.W}, []any{True, False, False, True}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("components mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVectorPartitions(t *testing.T) {
	want4 := NewFloat4(1, 2, 3, 4)
	tests := []struct {
		name string
		got  Float4
	}{
		{"112", Float4From112(1, 2, NewFloat2(3, 4))},
		{"121", Float4From121(1, NewFloat2(2, 3), 4)},
		{"13", Float4From13(1, NewFloat3(2, 3, 4))},
		{"211", Float4From211(NewFloat2(1, 2), 3, 4)},
		{"22", Float4From22(NewFloat2(1, 2), NewFloat2(3, 4))},
		{"31", Float4From31(NewFloat3(1, 2, 3), 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != want4 {
				t.Errorf("Float4From%s = %v, want %v", tt.name, tt.got, want4)
			}
		})
	}

	if got, want := Int3From21(NewInt2(1, 2), 3), NewInt3(1, 2, 3); got != want {
		t.Errorf("Int3From21 = %v, want %v", got, want)
	}
	if got, want := Uint3From12(1, NewUint2(2, 3)), NewUint3(1, 2, 3); got != want {
		t.Errorf("Uint3From12 = %v, want %v", got, want)
	}

	// A matrix row is an ordinary vector piece.
	m := NewFloat2x2(1, 2, 3, 4)
	row := NewFloat2(m.M21, m.M22)
	if got, want := Float4From22(row, NewFloat2(5, 6)), NewFloat4(3, 4, 5, 6); got != want {
		t.Errorf("Float4From22(row) = %v, want %v", got, want)
	}
}

func TestSplat(t *testing.T) {
	if got, want := SplatFloat2(3), NewFloat2(3, 3); got != want {
		t.Errorf("SplatFloat2 = %v, want %v", got, want)
	}
	if got, want := SplatFloat3(-1), NewFloat3(-1, -1, -1); got != want {
		t.Errorf("SplatFloat3 = %v, want %v", got, want)
	}
	if got, want := SplatDouble4(0.25), NewDouble4(0.25, 0.25, 0.25, 0.25); got != want {
		t.Errorf("SplatDouble4 = %v, want %v", got, want)
	}
	if got, want := SplatInt4(-7), NewInt4(-7, -7, -7, -7); got != want {
		t.Errorf("SplatInt4 = %v, want %v", got, want)
	}
	if got, want := SplatUint3(9), NewUint3(9, 9, 9); got != want {
		t.Errorf("SplatUint3 = %v, want %v", got, want)
	}
	if got, want := SplatUint2(1), NewUint2(1, 1); got != want {
		t.Errorf("SplatUint2 = %v, want %v", got, want)
	}
}

// Scenario: read a component and a swizzle, then assign through a swizzle.
func TestFloat4Swizzle(t *testing.T) {
	a := NewFloat4(1, 2, 3, 4)
	if a.X != 1 {
		t.Errorf("a.X = %v, want 1", a.X)
	}
	if got, want := a.ZW(), NewFloat2(3, 4); got != want {
		t.Errorf("a.ZW() = %v, want %v", got, want)
	}
	a.SetZW(NewFloat2(9, 10))
	if a.Z != 9 || a.W != 10 {
		t.Errorf("after SetZW: a = %v, want Z=9 W=10", a)
	}
	if a.X != 1 || a.Y != 2 {
		t.Errorf("SetZW touched X or Y: %v", a)
	}
}

func TestSwizzleRepeats(t *testing.T) {
	v := NewInt4(1, 2, 3, 4)
	if got, want := v.XXYY(), NewInt4(1, 1, 2, 2); got != want {
		t.Errorf("XXYY = %v, want %v", got, want)
	}
	if got, want := v.WZYX(), NewInt4(4, 3, 2, 1); got != want {
		t.Errorf("WZYX = %v, want %v", got, want)
	}
	if got, want := v.ZZZ(), NewInt3(3, 3, 3); got != want {
		t.Errorf("ZZZ = %v, want %v", got, want)
	}
	if got, want := NewUint2(5, 6).YX(), NewUint2(6, 5); got != want {
		t.Errorf("YX = %v, want %v", got, want)
	}
}

func TestColorSwizzle(t *testing.T) {
	c := NewFloat4(0.1, 0.2, 0.3, 1)
	if c.R() != c.X || c.G() != c.Y || c.B() != c.Z || c.A() != c.W {
		t.Errorf("rgba does not alias xyzw: %v", c)
	}
	if got, want := c.BGR(), NewFloat3(0.3, 0.2, 0.1); got != want {
		t.Errorf("BGR = %v, want %v", got, want)
	}
	c.SetRGB(NewFloat3(1, 1, 1))
	if got, want := c, NewFloat4(1, 1, 1, 1); got != want {
		t.Errorf("after SetRGB: %v, want %v", got, want)
	}
	c.SetA(0.5)
	if c.W != 0.5 {
		t.Errorf("SetA did not write W: %v", c)
	}

	d := NewDouble3(1, 2, 3)
	d.SetBR(NewDouble2(30, 10))
	if got, want := d, NewDouble3(10, 2, 30); got != want {
		t.Errorf("after SetBR: %v, want %v", got, want)
	}
}

func TestSwizzleStoreOnCopy(t *testing.T) {
	a := NewFloat3(1, 2, 3)
	b := a
	b.SetXY(NewFloat2(7, 8))
	if a != NewFloat3(1, 2, 3) {
		t.Errorf("store through a copy changed the original: %v", a)
	}
	if b != NewFloat3(7, 8, 3) {
		t.Errorf("b = %v, want (7, 8, 3)", b)
	}
}

func TestSwizzleStoreFromSelf(t *testing.T) {
	v := NewFloat4(1, 2, 3, 4)
	v.SetXYZW(v.WZYX())
	if got, want := v, NewFloat4(4, 3, 2, 1); got != want {
		t.Errorf("v.SetXYZW(v.WZYX()) = %v, want %v", got, want)
	}
}

func TestImplicitConversions(t *testing.T) {
	if got, want := NewFloat4(1, 2.5, -3, 4).ToDouble4(), NewDouble4(1, 2.5, -3, 4); got != want {
		t.Errorf("Float4.ToDouble4 = %v, want %v", got, want)
	}
	if got, want := NewInt3(-2, 0, 2).ToDouble3(), NewDouble3(-2, 0, 2); got != want {
		t.Errorf("Int3.ToDouble3 = %v, want %v", got, want)
	}
	if got, want := NewUint2(math.MaxUint32, 1).ToDouble2(), NewDouble2(math.MaxUint32, 1); got != want {
		t.Errorf("Uint2.ToDouble2 = %v, want %v", got, want)
	}
	b := NewBool4(True, False, True, False)
	if got, want := b.ToFloat4(), NewFloat4(1, 0, 1, 0); got != want {
		t.Errorf("Bool4.ToFloat4 = %v, want %v", got, want)
	}
	if got, want := b.ToInt4(), NewInt4(1, 0, 1, 0); got != want {
		t.Errorf("Bool4.ToInt4 = %v, want %v", got, want)
	}
	if got, want := b.ToUint4(), NewUint4(1, 0, 1, 0); got != want {
		t.Errorf("Bool4.ToUint4 = %v, want %v", got, want)
	}
}

func TestFloatDoubleFloatLossless(t *testing.T) {
	values := []float32{0, 1, -1, 0.1, math.MaxFloat32, math.SmallestNonzeroFloat32, float32(math.Inf(-1)), float32(math.Copysign(0, -1))}
	for _, x := range values {
		v := SplatFloat4(x)
		d := v.ToDouble4()
		back := d.ToFloat4()
		if math.Float32bits(back.X) != math.Float32bits(x) || back != v {
			t.Errorf("Float4 %v -> Double4 -> Float4 = %v", v, back)
		}
	}
}

func TestDoubleToFloatRounds(t *testing.T) {
	d := NewDouble3(0.1, 1<<40+1, -2.5)
	want := NewFloat3(float32(0.1), float32(1<<40), -2.5)
	if got := d.ToFloat3(); got != want {
		t.Errorf("Double3.ToFloat3 = %v, want %v", got, want)
	}
}

func TestNativeReinterpretation(t *testing.T) {
	nan := math.Float32frombits(0x7fc00123)
	v := NewFloat4(1, nan, float32(math.Copysign(0, -1)), 4)

	back := Float4FromVec(v.Vec())
	for i, want := range v.Array() {
		if got := back.Array()[i]; math.Float32bits(got) != math.Float32bits(want) {
			t.Errorf("component %d: bits %#x, want %#x", i, math.Float32bits(got), math.Float32bits(want))
		}
	}

	if got := v.Vec(); got[0] != 1 || got[3] != 4 {
		t.Errorf("Vec() = %v", got)
	}
	if got, want := Double3FromVec(f64.Vec3{1, 2, 3}), NewDouble3(1, 2, 3); got != want {
		t.Errorf("Double3FromVec = %v, want %v", got, want)
	}
	if got, want := Float2FromArray([2]float32{5, 6}), NewFloat2(5, 6); got != want {
		t.Errorf("Float2FromArray = %v, want %v", got, want)
	}
	if got, want := NewInt4(1, -2, 3, -4).Array(), [4]int32{1, -2, 3, -4}; got != want {
		t.Errorf("Int4.Array = %v, want %v", got, want)
	}
	if got, want := NewBool3(True, False, True).Array(), [3]Bool{True, False, True}; got != want {
		t.Errorf("Bool3.Array = %v, want %v", got, want)
	}
	if got, want := Uint4FromArray([4]uint32{1, 2, 3, 4}), NewUint4(1, 2, 3, 4); got != want {
		t.Errorf("Uint4FromArray = %v, want %v", got, want)
	}

	var native f32.Vec3 = NewFloat3(1, 2, 3).Vec()
	if native != (f32.Vec3{1, 2, 3}) {
		t.Errorf("Float3.Vec = %v", native)
	}
}

func TestVectorMatrixProduct(t *testing.T) {
	m := NewFloat3x2(
		1, 2,
		3, 4,
		5, 6,
	)
	v := NewFloat3(1, 1, 1)
	if got, want := v.MulFloat3x2(m), NewFloat2(9, 12); got != want {
		t.Errorf("v * m = %v, want %v", got, want)
	}
	column := NewInt2x1(3, 4)
	if got := NewInt2(2, 5).MulInt2x1(column); got != 26 {
		t.Errorf("Int2 * Int2x1 = %v, want 26", got)
	}
}

func TestBool(t *testing.T) {
	if BoolOf(true) != True || BoolOf(false) != False {
		t.Error("BoolOf mismatch")
	}
	if !True.Value() || False.Value() {
		t.Error("Value mismatch")
	}
	if True.String() != "true" || False.String() != "false" {
		t.Errorf("String() = %q, %q", True.String(), False.String())
	}
}

// Bools built from raw storage may hold values other than 0 and 1; casts
// still produce 0 or 1.
func TestBoolCastCanonical(t *testing.T) {
	b := Bool4FromArray([4]Bool{2, 0, 1, 7})
	if !b.X.Value() || b.Y.Value() || !b.W.Value() {
		t.Errorf("Value() on %v", b)
	}
	if got, want := b.ToFloat4(), NewFloat4(1, 0, 1, 1); got != want {
		t.Errorf("Bool4.ToFloat4 = %v, want %v", got, want)
	}
	if got, want := b.ToInt4(), NewInt4(1, 0, 1, 1); got != want {
		t.Errorf("Bool4.ToInt4 = %v, want %v", got, want)
	}
	if got, want := b.ToUint4(), NewUint4(1, 0, 1, 1); got != want {
		t.Errorf("Bool4.ToUint4 = %v, want %v", got, want)
	}
	if got, want := b.ToDouble4(), NewDouble4(1, 0, 1, 1); got != want {
		t.Errorf("Bool4.ToDouble4 = %v, want %v", got, want)
	}

	m := NewBool2x2(Bool(9), False, True, Bool(0xffffffff))
	if got, want := m.ToInt2x2(), NewInt2x2(1, 0, 1, 1); got != want {
		t.Errorf("Bool2x2.ToInt2x2 = %+v, want %+v", got, want)
	}
}
