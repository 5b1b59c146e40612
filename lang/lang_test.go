// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package lang_test

import (
	"fmt"
	"testing"

	"github.com/gogpu/shadermath/hlsl"
	"github.com/gogpu/shadermath/ir"
	"github.com/gogpu/shadermath/lang"
)

func lookup(t *testing.T, typeName, member string) ir.Intrinsic {
	t.Helper()
	in, ok := hlsl.LookupIntrinsic(typeName, member)
	if !ok {
		t.Fatalf("no intrinsic %s.%s", typeName, member)
	}
	return in
}

func TestTypeName(t *testing.T) {
	float2x3 := ir.MatrixType{Rows: ir.Vec2, Columns: ir.Vec3, Scalar: ir.Float}
	double3x3 := ir.MatrixType{Rows: ir.Vec3, Columns: ir.Vec3, Scalar: ir.Double}
	int4 := ir.VectorType{Size: ir.Vec4, Scalar: ir.Int}
	bool2 := ir.VectorType{Size: ir.Vec2, Scalar: ir.Bool}

	tests := []struct {
		lang lang.Language
		typ  ir.TypeInner
		want string
	}{
		{lang.HLSL, float2x3, "float2x3"},
		{lang.HLSL, ir.MatrixType{Rows: ir.Vec1, Columns: ir.Vec4, Scalar: ir.Int}, "int1x4"},
		{lang.HLSL, bool2, "bool2"},
		{lang.WGSL, float2x3, "mat2x3<f32>"},
		{lang.WGSL, int4, "vec4<i32>"},
		{lang.WGSL, ir.Uint, "u32"},
		{lang.WGSL, ir.VectorType{Size: ir.Vec3, Scalar: ir.Double}, "vec3<f64>"},
		{lang.GLSL, float2x3, "mat2x3"},
		{lang.GLSL, double3x3, "dmat3"},
		{lang.GLSL, bool2, "bvec2"},
		{lang.GLSL, ir.VectorType{Size: ir.Vec3, Scalar: ir.Uint}, "uvec3"},
		{lang.MSL, float2x3, "metal::float2x3"},
		{lang.MSL, int4, "metal::int4"},
		{lang.MSL, ir.Bool, "bool"},
	}
	for _, tt := range tests {
		t.Run(tt.lang.String()+"/"+tt.want, func(t *testing.T) {
			got, err := lang.TypeName(tt.lang, tt.typ)
			if err != nil {
				t.Fatalf("TypeName: %v", err)
			}
			if got != tt.want {
				t.Errorf("TypeName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeNameUnsupported(t *testing.T) {
	tests := []struct {
		name string
		lang lang.Language
		typ  ir.TypeInner
	}{
		{"wgsl int matrix", lang.WGSL, ir.MatrixType{Rows: ir.Vec2, Columns: ir.Vec2, Scalar: ir.Int}},
		{"wgsl double matrix", lang.WGSL, ir.MatrixType{Rows: ir.Vec2, Columns: ir.Vec2, Scalar: ir.Double}},
		{"wgsl single row", lang.WGSL, ir.MatrixType{Rows: ir.Vec1, Columns: ir.Vec4, Scalar: ir.Float}},
		{"glsl bool matrix", lang.GLSL, ir.MatrixType{Rows: ir.Vec3, Columns: ir.Vec3, Scalar: ir.Bool}},
		{"glsl single column", lang.GLSL, ir.MatrixType{Rows: ir.Vec4, Columns: ir.Vec1, Scalar: ir.Float}},
		{"msl double", lang.MSL, ir.Double},
		{"msl double vector", lang.MSL, ir.VectorType{Size: ir.Vec2, Scalar: ir.Double}},
		{"invalid vector", lang.HLSL, ir.VectorType{Size: ir.Vec1, Scalar: ir.Float}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lang.TypeName(tt.lang, tt.typ)
			if !lang.IsKind(err, lang.ErrUnsupportedType) {
				t.Errorf("err = %v, want UnsupportedType", err)
			}
		})
	}
}

func TestExpression(t *testing.T) {
	tests := []struct {
		lang     lang.Language
		typ      string
		member   string
		operands []string
		want     string
	}{
		// HLSL spells the model directly.
		{lang.HLSL, "Float4", "ZW", []string{"v"}, "v.zw"},
		{lang.HLSL, "Float4", "XXYY", []string{"v"}, "v.xxyy"},
		{lang.HLSL, "Float4", "BGR", []string{"c"}, "c.bgr"},
		{lang.HLSL, "Float4", "X", []string{"v"}, "v.x"},
		{lang.HLSL, "Float4", "NewFloat4", []string{"1.0", "2.0", "3.0", "4.0"}, "float4(1.0, 2.0, 3.0, 4.0)"},
		{lang.HLSL, "Float4", "Float4From211", []string{"v.xy", "z", "w"}, "float4(v.xy, z, w)"},
		{lang.HLSL, "Float4", "SplatFloat4", []string{"s"}, "(float4)s"},
		{lang.HLSL, "Float2x3", "M23", []string{"m"}, "m._m12"},
		{lang.HLSL, "Float4", "SetZW", []string{"v", "a"}, "v.zw = a"},
		{lang.HLSL, "Float4", "Index", []string{"v", "i"}, "v[i]"},
		{lang.HLSL, "Float4", "SetIndex", []string{"v", "i", "s"}, "v[i] = s"},
		{lang.HLSL, "Float2x3", "Row", []string{"m", "2"}, "m[1]"},
		{lang.HLSL, "Float2x3", "SetRow", []string{"m", "i", "r"}, "m[i - 1] = r"},
		{lang.HLSL, "Float4x4", "Cells2", []string{"m", "hlsl.M12", "M21"}, "m._m01_m10"},
		{lang.HLSL, "Float4x4", "SetCells2", []string{"m", "M11", "0x44", "a"}, "m._m00_m33 = a"},
		{lang.HLSL, "Float4", "Add", []string{"a", "b"}, "(a + b)"},
		{lang.HLSL, "Float4", "Add", []string{"a + b", "c"}, "((a + b) + c)"},
		{lang.HLSL, "Float4", "ScalarMul", []string{"v", "s"}, "(s * v)"},
		{lang.HLSL, "Float4", "MulScalar", []string{"v", "s"}, "(v * s)"},
		{lang.HLSL, "Float4", "Less", []string{"a", "b"}, "(a < b)"},
		{lang.HLSL, "Bool4", "And", []string{"a", "b"}, "and(a, b)"},
		{lang.HLSL, "Bool4", "Not", []string{"b"}, "!b"},
		{lang.HLSL, "Int4", "Neg", []string{"v"}, "-v"},
		{lang.HLSL, "Uint4", "Complement", []string{"v"}, "~v"},
		{lang.HLSL, "Int4", "Shl", []string{"a", "b"}, "(a << b)"},
		{lang.HLSL, "Float4", "ToInt4", []string{"v"}, "(int4)v"},
		{lang.HLSL, "Float4", "ToDouble4", []string{"v"}, "(double4)v"},
		{lang.HLSL, "Float4x4", "MulFloat4", []string{"m", "v"}, "mul(m, v)"},
		{lang.HLSL, "Float4", "MulFloat4x4", []string{"v", "m"}, "mul(v, m)"},
		{lang.HLSL, "Float2x3", "MulFloat3x2", []string{"a", "b"}, "mul(a, b)"},
		{lang.HLSL, "Int2x2", "Mul", []string{"a", "b"}, "(a * b)"},

		// WGSL stores matrices column-major and has no swizzle stores.
		{lang.WGSL, "Float4", "ZW", []string{"v"}, "v.zw"},
		{lang.WGSL, "Float4", "NewFloat4", []string{"1.0", "2.0", "3.0", "4.0"}, "vec4<f32>(1.0, 2.0, 3.0, 4.0)"},
		{lang.WGSL, "Float2x2", "Float2x2FromRows", []string{"r1", "r2"}, "mat2x2<f32>(r1, r2)"},
		{lang.WGSL, "Float4", "SetYZ", []string{"v", "a"}, "v = vec4<f32>(v.x, a.x, a.y, v.w)"},
		{lang.WGSL, "Float4", "SetWX", []string{"v", "a"}, "v = vec4<f32>(a.y, v.y, v.z, a.x)"},
		{lang.WGSL, "Float3", "SetR", []string{"c", "s"}, "c.r = s"},
		{lang.WGSL, "Float2x3", "M23", []string{"m"}, "m[1][2]"},
		{lang.WGSL, "Float2x3", "Row", []string{"m", "i"}, "m[i - 1]"},
		{lang.WGSL, "Float2x3", "MulFloat3", []string{"m", "v"}, "(v * m)"},
		{lang.WGSL, "Float3", "MulFloat3x2", []string{"v", "m"}, "(m * v)"},
		{lang.WGSL, "Float2x2", "SplatFloat2x2", []string{"s"}, "mat2x2<f32>(vec2<f32>(s), vec2<f32>(s))"},
		{lang.WGSL, "Float2x2", "Mul", []string{"a", "b"}, "mat2x2<f32>((a[0] * b[0]), (a[1] * b[1]))"},
		{lang.WGSL, "Float2x2", "Add", []string{"a", "b"}, "(a + b)"},
		{lang.WGSL, "Float2x2", "MulScalar", []string{"m", "s"}, "(m * s)"},
		{lang.WGSL, "Float2x2", "Neg", []string{"m"}, "(m * -1.0)"},
		{lang.WGSL, "Int4", "Shl", []string{"a", "b"}, "(a << vec4<u32>(b))"},
		{lang.WGSL, "Uint4", "Shr", []string{"a", "b"}, "(a >> b)"},
		{lang.WGSL, "Bool4", "Or", []string{"a", "b"}, "(a | b)"},
		{lang.WGSL, "Float3x3", "Cells3", []string{"m", "M11", "M22", "M33"}, "vec3<f32>(m[0][0], m[1][1], m[2][2])"},
		{lang.WGSL, "Float3x3", "SetCells2", []string{"m", "M12", "M21", "a"}, "m[0][1] = a.x; m[1][0] = a.y"},
		{lang.WGSL, "Int4", "ToFloat4", []string{"v"}, "vec4<f32>(v)"},

		// GLSL uses relational functions on vectors.
		{lang.GLSL, "Float4", "Less", []string{"a", "b"}, "lessThan(a, b)"},
		{lang.GLSL, "Int3", "NotEqual", []string{"a", "b"}, "notEqual(a, b)"},
		{lang.GLSL, "Float4", "Mod", []string{"a", "b"}, "(a - b * trunc(a / b))"},
		{lang.GLSL, "Int4", "Mod", []string{"a", "b"}, "(a % b)"},
		{lang.GLSL, "Bool2", "And", []string{"a", "b"}, "bvec2(a.x && b.x, a.y && b.y)"},
		{lang.GLSL, "Bool3", "Not", []string{"b"}, "not(b)"},
		{lang.GLSL, "Float2x2", "Mul", []string{"a", "b"}, "matrixCompMult(a, b)"},
		{lang.GLSL, "Float2x2", "Div", []string{"a", "b"}, "(a / b)"},
		{lang.GLSL, "Float3x2", "SplatFloat3x2", []string{"s"}, "mat3x2(vec2(s), vec2(s), vec2(s))"},
		{lang.GLSL, "Double3x3", "MulDouble3", []string{"m", "v"}, "(v * m)"},
		{lang.GLSL, "Int4", "ToFloat4", []string{"v"}, "vec4(v)"},
		{lang.GLSL, "Float4", "SetXW", []string{"v", "a"}, "v.xw = a"},

		// MSL spells names from the metal namespace.
		{lang.MSL, "Float4", "NewFloat4", []string{"x", "y", "z", "w"}, "metal::float4(x, y, z, w)"},
		{lang.MSL, "Float4", "Mod", []string{"a", "b"}, "metal::fmod(a, b)"},
		{lang.MSL, "Uint2", "Mod", []string{"a", "b"}, "(a % b)"},
		{lang.MSL, "Float2x2", "Mod", []string{"a", "b"}, "metal::float2x2(metal::fmod(a[0], b[0]), metal::fmod(a[1], b[1]))"},
		{lang.MSL, "Float2x3", "MulFloat3x2", []string{"a", "b"}, "(b * a)"},
		{lang.MSL, "Int4", "ToUint4", []string{"v"}, "metal::uint4(v)"},
		{lang.MSL, "Float4x4", "M41", []string{"m"}, "m[3][0]"},
		{lang.MSL, "Bool2", "Or", []string{"a", "b"}, "(a || b)"},
	}

	for _, tt := range tests {
		t.Run(tt.lang.String()+"/"+tt.typ+"."+tt.member, func(t *testing.T) {
			in := lookup(t, tt.typ, tt.member)
			got, err := lang.Expression(tt.lang, in, tt.operands...)
			if err != nil {
				t.Fatalf("Expression: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expression = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpressionErrors(t *testing.T) {
	tests := []struct {
		name     string
		lang     lang.Language
		typ      string
		member   string
		operands []string
		kind     lang.ErrorKind
	}{
		{"operand count", lang.HLSL, "Float4", "Add", []string{"a"}, lang.ErrOperandCount},
		{"constructor count", lang.HLSL, "Float3", "NewFloat3", []string{"x", "y"}, lang.ErrOperandCount},
		{"bitcast", lang.HLSL, "Float4", "Vec", []string{"v"}, lang.ErrUnsupportedIntrinsic},
		{"bitcast constructor", lang.WGSL, "Float4x4", "Float4x4FromMat", []string{"m"}, lang.ErrUnsupportedIntrinsic},
		{"int matrix", lang.WGSL, "Int2x2", "Add", []string{"a", "b"}, lang.ErrUnsupportedType},
		{"bool matrix comparison", lang.GLSL, "Float2x2", "Less", []string{"a", "b"}, lang.ErrUnsupportedType},
		{"double", lang.MSL, "Double4", "Add", []string{"a", "b"}, lang.ErrUnsupportedType},
		{"vector times single column", lang.WGSL, "Float3", "MulFloat3x1", []string{"v", "m"}, lang.ErrUnsupportedType},
		{"aliased cells", lang.HLSL, "Float3x3", "SetCells2", []string{"m", "M11", "M11", "a"}, lang.ErrAliasedStore},
		{"cell outside", lang.WGSL, "Float2x2", "Cells2", []string{"m", "M33", "M11"}, lang.ErrCellOutOfRange},
		{"variable cell", lang.HLSL, "Float2x2", "Cells2", []string{"m", "c", "M11"}, lang.ErrNonConstantCell},
		{"unknown language", lang.Language(9), "Float4", "ZW", []string{"v"}, lang.ErrUnknownLanguage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := lookup(t, tt.typ, tt.member)
			_, err := lang.Expression(tt.lang, in, tt.operands...)
			if !lang.IsKind(err, tt.kind) {
				t.Errorf("err = %v, want kind %s", err, tt.kind)
			}
		})
	}
}

// TestExpressionCoversCatalog spells every member of the catalog in HLSL,
// which represents every type of the model.
func TestExpressionCoversCatalog(t *testing.T) {
	for _, in := range hlsl.Intrinsics() {
		if in.Kind == ir.IntrinsicBitcast {
			continue
		}
		operands := make([]string, operandCount(in))
		for i := range operands {
			operands[i] = "a"
		}
		if m, ok := in.Owner.Inner.(ir.MatrixType); ok && cells(in) > 0 {
			for i := 0; i < cells(in); i++ {
				operands[1+i] = fmt.Sprintf("M%d%d", i/int(m.Columns)+1, i%int(m.Columns)+1)
			}
		}
		if _, err := lang.Expression(lang.HLSL, in, operands...); err != nil {
			t.Errorf("%s: %v", in, err)
		}
	}
}

func cells(in ir.Intrinsic) int {
	switch in.Kind {
	case ir.IntrinsicCellSwizzle:
		return ir.Components(in.Result)
	case ir.IntrinsicStoreCellSwizzle:
		return ir.Components(in.Args[0])
	default:
		return 0
	}
}

func operandCount(in ir.Intrinsic) int {
	switch {
	case in.Function:
		return len(in.Args)
	case in.Kind == ir.IntrinsicCellSwizzle:
		return 1 + cells(in)
	case in.Kind == ir.IntrinsicStoreCellSwizzle:
		return 2 + cells(in)
	default:
		return 1 + len(in.Args)
	}
}

func TestParseLanguage(t *testing.T) {
	for _, l := range lang.Languages() {
		got, err := lang.ParseLanguage(l.String())
		if err != nil || got != l {
			t.Errorf("ParseLanguage(%q) = %v, %v", l, got, err)
		}
	}
	if got, err := lang.ParseLanguage("WGSL"); err != nil || got != lang.WGSL {
		t.Errorf("ParseLanguage(WGSL) = %v, %v", got, err)
	}
	if _, err := lang.ParseLanguage("spirv"); !lang.IsKind(err, lang.ErrUnknownLanguage) {
		t.Errorf("ParseLanguage(spirv) err = %v", err)
	}
}
