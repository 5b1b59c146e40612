// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/shadermath/ir"
)

func TestKinds(t *testing.T) {
	var names []string
	for _, k := range Kinds() {
		names = append(names, k.Name)
	}
	want := []string{"Float", "Double", "Int", "Uint", "Bool"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("kind names (-want +got):\n%s", diff)
	}

	k, ok := KindOf(ir.Double)
	if !ok || k.GoType != "float64" || k.NativePackage() != "f64" {
		t.Errorf("KindOf(double) = %+v, %v", k, ok)
	}
	if k, _ := KindOf(ir.Int); k.NativePackage() != "" {
		t.Errorf("int has native package %q", k.NativePackage())
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		typ  ir.TypeInner
		want string
	}{
		{ir.Float, "float32"},
		{ir.Bool, "Bool"},
		{ir.VectorType{Size: ir.Vec3, Scalar: ir.Uint}, "Uint3"},
		{ir.MatrixType{Rows: ir.Vec2, Columns: ir.Vec4, Scalar: ir.Double}, "Double2x4"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := TypeName(tt.typ); got != tt.want {
				t.Errorf("TypeName(%v) = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestPatterns(t *testing.T) {
	for n := 2; n <= 4; n++ {
		for k := 1; k <= 4; k++ {
			got := Patterns(n, k)
			want := 1
			for range k {
				want *= n
			}
			if len(got) != want {
				t.Errorf("Patterns(%d, %d): %d patterns, want %d", n, k, len(got), want)
			}
		}
	}

	p := Patterns(3, 2)
	if ir.SwizzleString(p[0], false) != "xx" || ir.SwizzleString(p[1], false) != "xy" || ir.SwizzleString(p[8], false) != "zz" {
		t.Errorf("Patterns(3, 2) not lexicographic: %v", p)
	}
}

func TestPartitions(t *testing.T) {
	got := Partitions(4)
	want := [][]int{{1, 1, 2}, {1, 2, 1}, {1, 3}, {2, 1, 1}, {2, 2}, {3, 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Partitions(4) (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]int{{1, 2}, {2, 1}}, Partitions(3)); diff != "" {
		t.Errorf("Partitions(3) (-want +got):\n%s", diff)
	}
	if got := Partitions(2); len(got) != 0 {
		t.Errorf("Partitions(2) = %v, want none", got)
	}
	if got := PartitionName([]int{2, 1, 1}); got != "211" {
		t.Errorf("PartitionName = %q", got)
	}
}

func TestModelValidates(t *testing.T) {
	m := NewModel()
	if len(m.Vectors) != 15 || len(m.Matrices) != 80 {
		t.Fatalf("model has %d vectors and %d matrices", len(m.Vectors), len(m.Matrices))
	}
	if errs := ir.Validate(m.Intrinsics()); len(errs) > 0 {
		for _, err := range errs[:min(len(errs), 10)] {
			t.Error(err)
		}
	}
}

func TestMembersUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, in := range NewModel().Intrinsics() {
		key := in.String()
		if seen[key] {
			t.Errorf("duplicate member %s", key)
		}
		seen[key] = true
	}
}

func TestSwizzleCounts(t *testing.T) {
	m := NewModel()
	tests := []struct {
		vec              Vector
		getters, setters int
	}{
		{Vector{Kind: Kinds()[0], Size: 4}, 16 + 64 + 256 + 4 + 16 + 64 + 256, 12 + 24 + 24 + 4 + 12 + 24 + 24},
		{Vector{Kind: Kinds()[0], Size: 2}, 4 + 8 + 16, 2},
		{Vector{Kind: Kinds()[2], Size: 3}, 9 + 27 + 81, 6 + 6},
	}
	for _, tt := range tests {
		t.Run(tt.vec.Name(), func(t *testing.T) {
			var getters, setters int
			for _, in := range m.SwizzleIntrinsics(tt.vec) {
				switch in.Kind {
				case ir.IntrinsicSwizzle:
					getters++
				case ir.IntrinsicStoreSwizzle:
					setters++
					if !ir.IsDistinct(in.Pattern) {
						t.Errorf("setter %s for repeated pattern", in)
					}
				}
			}
			if getters != tt.getters || setters != tt.setters {
				t.Errorf("%d getters, %d setters; want %d, %d", getters, setters, tt.getters, tt.setters)
			}
		})
	}
}

func TestMultiplyFamily(t *testing.T) {
	m := NewModel()
	float := Kinds()[0]
	members := make(map[string]ir.Intrinsic)
	for _, in := range m.MatrixIntrinsics(Matrix{Kind: float, Rows: 2, Columns: 3}) {
		if in.Kind == ir.IntrinsicMultiply {
			members[in.Member] = in
		}
	}
	want := map[string]ir.TypeInner{
		"MulFloat3":   ir.VectorType{Size: ir.Vec2, Scalar: ir.Float},
		"MulFloat3x1": ir.MatrixType{Rows: ir.Vec2, Columns: ir.Vec1, Scalar: ir.Float},
		"MulFloat3x2": ir.MatrixType{Rows: ir.Vec2, Columns: ir.Vec2, Scalar: ir.Float},
		"MulFloat3x3": ir.MatrixType{Rows: ir.Vec2, Columns: ir.Vec3, Scalar: ir.Float},
		"MulFloat3x4": ir.MatrixType{Rows: ir.Vec2, Columns: ir.Vec4, Scalar: ir.Float},
	}
	if len(members) != len(want) {
		t.Errorf("got %d products, want %d", len(members), len(want))
	}
	for name, result := range want {
		if in, ok := members[name]; !ok || in.Result != result {
			t.Errorf("%s: %+v", name, in)
		}
	}

	for _, in := range m.MatrixIntrinsics(Matrix{Kind: Kinds()[4], Rows: 2, Columns: 2}) {
		if in.Kind == ir.IntrinsicMultiply {
			t.Errorf("bool matrix has product %s", in)
		}
	}
}

func TestParams(t *testing.T) {
	tests := []struct {
		names, types []string
		want         string
	}{
		{[]string{"x", "y"}, []string{"float32", "float32"}, "x, y float32"},
		{[]string{"xy", "z", "w"}, []string{"Float2", "float32", "float32"}, "xy Float2, z, w float32"},
		{[]string{"x", "yz", "w"}, []string{"float32", "Float2", "float32"}, "x float32, yz Float2, w float32"},
	}
	for _, tt := range tests {
		if got := params(tt.names, tt.types); got != tt.want {
			t.Errorf("params(%v, %v) = %q, want %q", tt.names, tt.types, got, tt.want)
		}
	}
}

func TestGenerate(t *testing.T) {
	files, err := Generate(NewModel(), DefaultConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(files) != 15 {
		t.Fatalf("got %d files, want 15", len(files))
	}

	byName := make(map[string][]byte)
	for _, f := range files {
		if !bytes.Contains(f.Source, []byte("// Code generated by hlslgen. DO NOT EDIT.")) {
			t.Errorf("%s: missing generated header", f.Name)
		}
		byName[f.Name] = f.Source
	}

	float := string(byName["zz_float_vector.go"])
	for _, want := range []string{
		"func NewFloat4(x, y, z, w float32) Float4 {",
		"func Float4From211(xy Float2, z, w float32) Float4 {",
		"//hlsl:kernel\nfunc (v Float4) Add(o Float4) Float4 { panic(kernelOnly(\"Float4\", \"Add\")) }",
		"func (v Float4) Vec() f32.Vec4 {",
		"\"golang.org/x/image/math/f32\"",
		"_ [unsafe.Sizeof(Float4{}) - 16]struct{}",
	} {
		if !strings.Contains(float, want) {
			t.Errorf("zz_float_vector.go missing %q", want)
		}
	}

	swizzle := string(byName["zz_float_swizzle.go"])
	if !strings.Contains(swizzle, "func (v *Float4) SetZW(s Float2) { v.Z, v.W = s.X, s.Y }") {
		t.Error("missing SetZW")
	}
	if strings.Contains(swizzle, "SetXX(") {
		t.Error("setter generated for repeated pattern")
	}

	matrix := string(byName["zz_double_matrix.go"])
	if !strings.Contains(matrix, "func (m Double4x4) Mat() f64.Mat4 {") {
		t.Error("missing Double4x4.Mat")
	}
	if strings.Contains(matrix, "func (m Double2x2) Mat()") {
		t.Error("Double2x2 should reinterpret as an array only")
	}
	if strings.Contains(string(byName["zz_bool_vector.go"]), "math/f32") {
		t.Error("bool vectors import f32")
	}
	if !strings.Contains(matrix, "func (m *Double4x4) SetCells4(a, b, c, d Cell, s Double4) {\n\tpanic(kernelOnly(\"Double4x4\", \"SetCells4\"))\n}") {
		t.Error("long kernel stub not wrapped")
	}
	if !strings.Contains(matrix, "func (m Double2x2) ToFloat2x2() Float2x2 {\n\treturn Float2x2{float32(m.M11),") {
		t.Error("Double2x2.ToFloat2x2 not host-defined")
	}
	if !strings.Contains(string(byName["zz_bool_vector.go"]), "return Float2{float32(v.X.bit()), float32(v.Y.bit())}") {
		t.Error("Bool2.ToFloat2 does not canonicalize")
	}
}

// The committed files in package hlsl must be exactly what the generator
// writes; run go generate ./hlsl after changing the model or emitter.
func TestGeneratedFilesUpToDate(t *testing.T) {
	files, err := Generate(NewModel(), DefaultConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, f := range files {
		committed, err := os.ReadFile(filepath.Join("..", "..", "hlsl", f.Name))
		if err != nil {
			t.Errorf("read committed %s: %v", f.Name, err)
			continue
		}
		if !bytes.Equal(committed, f.Source) {
			t.Errorf("hlsl/%s is stale; run go generate ./hlsl", f.Name)
		}
	}
}
