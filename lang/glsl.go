// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package lang

import (
	"fmt"

	"github.com/gogpu/shadermath/ir"
)

// glslDialect spells types with prefixed vector names (vec, ivec, uvec,
// bvec, dvec). GLSL matrices are float or double with at least two
// columns and rows.
type glslDialect struct{}

func (glslDialect) scalarName(s ir.ScalarType) string {
	switch s.Kind {
	case ir.ScalarBool:
		return "bool"
	case ir.ScalarSint:
		return "int"
	case ir.ScalarUint:
		return "uint"
	default:
		if s.Width == 8 {
			return "double"
		}
		return "float"
	}
}

func glslPrefix(s ir.ScalarType) string {
	switch s.Kind {
	case ir.ScalarBool:
		return "b"
	case ir.ScalarSint:
		return "i"
	case ir.ScalarUint:
		return "u"
	default:
		if s.Width == 8 {
			return "d"
		}
		return ""
	}
}

func (d glslDialect) typeName(t ir.TypeInner) (string, error) {
	switch inner := t.(type) {
	case ir.ScalarType:
		return d.scalarName(inner), nil
	case ir.VectorType:
		return fmt.Sprintf("%svec%d", glslPrefix(inner.Scalar), inner.Size), nil
	case ir.MatrixType:
		if inner.Scalar.Kind != ir.ScalarFloat {
			return "", newError(GLSL, ErrUnsupportedType, "%s: matrices must be float or double", inner)
		}
		if inner.Rows < ir.Vec2 || inner.Columns < ir.Vec2 {
			return "", newError(GLSL, ErrUnsupportedType, "%s: matrices need two rows and two columns", inner)
		}
		if inner.Rows == inner.Columns {
			return fmt.Sprintf("%smat%d", glslPrefix(inner.Scalar), inner.Rows), nil
		}
		return fmt.Sprintf("%smat%dx%d", glslPrefix(inner.Scalar), inner.Rows, inner.Columns), nil
	default:
		return "", newError(GLSL, ErrUnsupportedType, "unsupported type %T", t)
	}
}

func (d glslDialect) name(t ir.TypeInner) string {
	s, _ := d.typeName(t)
	return s
}

func (d glslDialect) splat(t ir.TypeInner, value string) string {
	if m, ok := t.(ir.MatrixType); ok {
		return columnSplat(d.name(m), d.name(m.RowType()), m, value)
	}
	return call(d.name(t), value)
}

func (glslDialect) cell(base string, c cell) string {
	return columnCell(base, c)
}

func (glslDialect) storeSwizzle(in *ir.Intrinsic, base, value string) string {
	return group(base) + "." + ir.SwizzleString(in.Pattern, in.Color) + " = " + value
}

func (d glslDialect) cellSwizzle(t ir.TypeInner, base string, cells []cell) string {
	return columnCellSwizzle(d.name(t), base, cells)
}

func (glslDialect) storeCells(base string, cells []cell, value string) string {
	return columnStoreCells(base, cells, value)
}

func (glslDialect) unary(in *ir.Intrinsic, operand string) string {
	if in.Unary == ir.UnaryLogicalNot {
		if _, ok := in.Owner.Inner.(ir.VectorType); ok {
			return call("not", operand)
		}
	}
	return in.Unary.Symbol() + group(operand)
}

// glslRelational maps comparisons to the vector relational functions;
// the operators only apply to scalars in GLSL.
var glslRelational = map[ir.BinaryOperator]string{
	ir.BinaryEqual:        "equal",
	ir.BinaryNotEqual:     "notEqual",
	ir.BinaryLess:         "lessThan",
	ir.BinaryLessEqual:    "lessThanEqual",
	ir.BinaryGreater:      "greaterThan",
	ir.BinaryGreaterEqual: "greaterThanEqual",
}

func (d glslDialect) binary(in *ir.Intrinsic, left, right string) string {
	owner := in.Owner.Inner
	scalar, _ := ir.ScalarOf(owner)
	floatMod := in.Binary == ir.BinaryModulo && scalar.Kind == ir.ScalarFloat

	if m, ok := owner.(ir.MatrixType); ok && isComponentwiseProduct(in) {
		switch {
		case in.Binary == ir.BinaryMultiply:
			return call("matrixCompMult", left, right)
		case floatMod:
			return columnwise(d.name(m), m, left, right, glslMod)
		default:
			return infix(left, in.Binary.Symbol(), right)
		}
	}

	v, isVector := owner.(ir.VectorType)
	switch {
	case floatMod:
		return glslMod(left, right)
	case isVector && in.Binary.IsComparison():
		return call(glslRelational[in.Binary], left, right)
	case isVector && in.Binary.IsLogical():
		op := in.Binary.Symbol()
		return componentwise(d.name(v), v, left, right, func(l, r string) string { return l + " " + op + " " + r })
	default:
		return infix(left, in.Binary.Symbol(), right)
	}
}

// glslMod spells the truncating float remainder; GLSL's mod() floors.
func glslMod(left, right string) string {
	a, b := group(left), group(right)
	return "(" + a + " - " + b + " * trunc(" + a + " / " + b + "))"
}

func (d glslDialect) cast(t ir.TypeInner, operand string) string {
	return call(d.name(t), operand)
}

func (glslDialect) multiply(left, right string) string {
	return infix(right, "*", left)
}
