// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/shadermath/internal/gen"
	"github.com/gogpu/shadermath/ir"
)

// goName spells a reflected type the way the generator does.
func goName(t reflect.Type) string {
	return strings.ReplaceAll(t.String(), "hlsl.", "")
}

func TestCatalogValidates(t *testing.T) {
	if errs := ir.Validate(Intrinsics()); len(errs) > 0 {
		for _, err := range errs[:min(len(errs), 10)] {
			t.Error(err)
		}
		t.Fatalf("%d validation errors", len(errs))
	}
}

func TestCatalogMatchesMethods(t *testing.T) {
	types := valueTypes()
	if len(types) != 95 {
		t.Fatalf("got %d value types, want 95", len(types))
	}

	for _, in := range Intrinsics() {
		if in.Function {
			continue
		}
		typ, ok := types[in.Owner.Name]
		if !ok {
			t.Fatalf("%s: no Go type", in)
		}

		if in.Kind == ir.IntrinsicAccessIndex {
			f, ok := typ.FieldByName(in.Member)
			if !ok {
				t.Errorf("%s: no field", in)
				continue
			}
			if got, want := goName(f.Type), gen.TypeName(in.Result); got != want {
				t.Errorf("%s: field type %s, want %s", in, got, want)
			}
			continue
		}

		recv := typ
		if in.Result == nil && in.Kind != ir.IntrinsicBitcast {
			recv = reflect.PointerTo(typ)
		}
		method, ok := recv.MethodByName(in.Member)
		if !ok {
			t.Errorf("%s: no method on %s", in, recv)
			continue
		}

		var want []string
		for range gen.CellArity(in) {
			want = append(want, "Cell")
		}
		for _, arg := range in.Args {
			want = append(want, gen.TypeName(arg))
		}
		mt := method.Type
		var got []string
		for i := 1; i < mt.NumIn(); i++ {
			got = append(got, goName(mt.In(i)))
		}
		if strings.Join(got, ",") != strings.Join(want, ",") {
			t.Errorf("%s: params (%s), want (%s)", in, strings.Join(got, ","), strings.Join(want, ","))
		}

		switch {
		case in.Kind == ir.IntrinsicBitcast:
			if mt.NumOut() != 1 || goName(mt.Out(0)) != in.Host {
				t.Errorf("%s: result %v, want %s", in, mt, in.Host)
			}
		case in.Result == nil:
			if mt.NumOut() != 0 {
				t.Errorf("%s: store has results", in)
			}
		default:
			if mt.NumOut() != 1 || goName(mt.Out(0)) != gen.TypeName(in.Result) {
				t.Errorf("%s: result %v, want %s", in, mt, gen.TypeName(in.Result))
			}
		}
	}
}

func TestRepeatedSwizzleHasNoSetter(t *testing.T) {
	types := valueTypes()
	checked := 0
	for _, in := range Intrinsics() {
		if in.Kind != ir.IntrinsicSwizzle {
			continue
		}
		ptr := reflect.PointerTo(types[in.Owner.Name])
		_, hasSetter := ptr.MethodByName("Set" + in.Member)
		if distinct := ir.IsDistinct(in.Pattern); hasSetter != distinct {
			t.Errorf("%s: setter present %v, pattern distinct %v", in, hasSetter, distinct)
		}
		checked++
	}
	if checked == 0 {
		t.Fatal("no swizzles in catalog")
	}
}

// Writing through a distinct swizzle p and reading axis p[i] yields the
// i-th written value; other axes are untouched.
func TestSwizzlePermutationLaw(t *testing.T) {
	types := valueTypes()
	for _, in := range Intrinsics() {
		if in.Kind != ir.IntrinsicStoreSwizzle {
			continue
		}
		typ := types[in.Owner.Name]
		v := reflect.New(typ)
		for i := 0; i < typ.NumField(); i++ {
			setNumber(v.Elem().Field(i), i+1)
		}

		arg := reflect.New(method(v, in.Member).Type().In(0)).Elem()
		if arg.Kind() == reflect.Struct {
			for i := 0; i < arg.NumField(); i++ {
				setNumber(arg.Field(i), 10+i)
			}
		} else {
			setNumber(arg, 10)
		}
		method(v, in.Member).Call([]reflect.Value{arg})

		written := make(map[int]int)
		for i, c := range in.Pattern {
			written[int(c)] = 10 + i
		}
		for i := 0; i < typ.NumField(); i++ {
			want, ok := written[i]
			if !ok {
				want = i + 1
			}
			if got := number(v.Elem().Field(i)); got != want {
				t.Errorf("%s: axis %d = %d, want %d", in, i, got, want)
			}
		}
	}
}

func method(v reflect.Value, name string) reflect.Value {
	return v.MethodByName(name)
}

func setNumber(f reflect.Value, n int) {
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		f.SetFloat(float64(n))
	case reflect.Int32:
		f.SetInt(int64(n))
	case reflect.Uint32:
		f.SetUint(uint64(n))
	}
}

func number(f reflect.Value) int {
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		return int(f.Float())
	case reflect.Int32:
		return int(f.Int())
	default:
		return int(f.Uint())
	}
}

func TestKernelOnlyMembersPanic(t *testing.T) {
	types := valueTypes()
	for _, in := range Intrinsics() {
		if !in.KernelOnly {
			continue
		}
		v := reflect.New(types[in.Owner.Name])
		m := v.MethodByName(in.Member)
		args := make([]reflect.Value, m.Type().NumIn())
		for i := range args {
			args[i] = reflect.Zero(m.Type().In(i))
		}

		r := callRecover(m, args)
		err, ok := r.(error)
		if !ok {
			t.Errorf("%s: recovered %v, want error", in, r)
			continue
		}
		if !errors.Is(err, ErrKernelOnly) {
			t.Errorf("%s: %v does not wrap ErrKernelOnly", in, err)
		}
		var koe *KernelOnlyError
		if !errors.As(err, &koe) || koe.Type != in.Owner.Name || koe.Member != in.Member {
			t.Errorf("%s: panic value %#v", in, err)
		}
	}
}

func callRecover(m reflect.Value, args []reflect.Value) (r any) {
	defer func() { r = recover() }()
	m.Call(args)
	return nil
}

func TestKernelOnlyError(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrKernelOnly) {
			t.Fatalf("recovered %v", r)
		}
		if !strings.Contains(err.Error(), "Float4.Add") {
			t.Errorf("Error() = %q", err.Error())
		}
	}()
	NewFloat4(1, 2, 3, 4).Add(SplatFloat4(1))
	t.Fatal("Add returned on the host")
}

func TestLookupIntrinsic(t *testing.T) {
	tests := []struct {
		typ, member string
		kind        ir.IntrinsicKind
		kernelOnly  bool
	}{
		{"Float4", "X", ir.IntrinsicAccessIndex, false},
		{"Float4", "ZW", ir.IntrinsicSwizzle, false},
		{"Float4", "SetZW", ir.IntrinsicStoreSwizzle, false},
		{"Float4", "NewFloat4", ir.IntrinsicCompose, false},
		{"Float4", "Float4From211", ir.IntrinsicCompose, false},
		{"Float4", "SplatFloat4", ir.IntrinsicSplat, false},
		{"Float4", "Add", ir.IntrinsicBinary, true},
		{"Float4", "Index", ir.IntrinsicAccess, true},
		{"Float4", "ToDouble4", ir.IntrinsicAs, false},
		{"Float4", "ToInt4", ir.IntrinsicAs, true},
		{"Double4", "ToFloat4", ir.IntrinsicAs, false},
		{"Double2x2", "ToFloat2x2", ir.IntrinsicAs, false},
		{"Double4", "ToInt4", ir.IntrinsicAs, true},
		{"Float4", "Vec", ir.IntrinsicBitcast, false},
		{"Float4x4", "MulFloat4", ir.IntrinsicMultiply, false},
		{"Float4x4", "Row", ir.IntrinsicAccess, true},
		{"Float4x4", "SetCells2", ir.IntrinsicStoreCellSwizzle, true},
		{"Float4x4", "M23", ir.IntrinsicAccessIndex, false},
		{"Bool3", "Not", ir.IntrinsicUnary, true},
	}
	for _, tt := range tests {
		t.Run(tt.typ+"."+tt.member, func(t *testing.T) {
			in, ok := LookupIntrinsic(tt.typ, tt.member)
			if !ok {
				t.Fatal("not found")
			}
			if in.Kind != tt.kind || in.KernelOnly != tt.kernelOnly {
				t.Errorf("kind %s kernelOnly %v, want %s %v", in.Kind, in.KernelOnly, tt.kind, tt.kernelOnly)
			}
		})
	}

	for _, missing := range [][2]string{
		{"Float4", "SetXX"},
		{"Float4x4", "MulFloat3"},
		{"Float3", "MulFloat4x4"},
		{"Uint4", "Neg"},
		{"Bool4", "Less"},
		{"Float2", "RG"},
		{"Float4", "ToFloat4"},
	} {
		if _, ok := LookupIntrinsic(missing[0], missing[1]); ok {
			t.Errorf("%s.%s should not exist", missing[0], missing[1])
		}
	}
}

func TestLookupType(t *testing.T) {
	ty, ok := LookupType("Float2x3")
	if !ok {
		t.Fatal("Float2x3 not registered")
	}
	if mt, ok := ty.Inner.(ir.MatrixType); !ok || mt.Rows != 2 || mt.Columns != 3 || mt.Scalar != ir.Float {
		t.Errorf("Float2x3 = %#v", ty.Inner)
	}

	if ty, ok := TypeOf(NewUint3(1, 2, 3)); !ok || ty.Inner != (ir.VectorType{Size: ir.Vec3, Scalar: ir.Uint}) {
		t.Errorf("TypeOf(Uint3) = %#v, %v", ty, ok)
	}
	if ty, ok := TypeOf(float64(1)); !ok || ty.Inner != ir.Double {
		t.Errorf("TypeOf(float64) = %#v, %v", ty, ok)
	}
	if ty, ok := TypeOf(&Bool2{}); !ok || ty.Name != "Bool2" {
		t.Errorf("TypeOf(*Bool2) = %#v, %v", ty, ok)
	}
	if _, ok := TypeOf("float"); ok {
		t.Error("TypeOf(string) should fail")
	}
	if _, ok := TypeOf(struct{ X float32 }{}); ok {
		t.Error("TypeOf(anonymous struct) should fail")
	}
}
