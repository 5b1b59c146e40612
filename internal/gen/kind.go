// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gen

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/shadermath/ir"
)

// Kind is one scalar kind of the generated value types.
type Kind struct {
	// Name is the exported prefix of every type of this kind (Float, Uint).
	Name string

	// GoType is the Go scalar type of a component.
	GoType string

	// Scalar is the model scalar type.
	Scalar ir.ScalarType

	// Native is the import path of the host-native fixed vector package
	// (golang.org/x/image/math/f32 or f64), empty when the kind has none.
	Native string
}

var title = cases.Title(language.English)

func newKind(scalar ir.ScalarType, goType, native string) Kind {
	return Kind{
		Name:   title.String(scalar.String()),
		GoType: goType,
		Scalar: scalar,
		Native: native,
	}
}

// Kinds returns the five scalar kinds in declaration order.
func Kinds() []Kind {
	return []Kind{
		newKind(ir.Float, "float32", "golang.org/x/image/math/f32"),
		newKind(ir.Double, "float64", "golang.org/x/image/math/f64"),
		newKind(ir.Int, "int32", ""),
		newKind(ir.Uint, "uint32", ""),
		newKind(ir.Bool, "Bool", ""),
	}
}

// KindOf returns the kind whose model scalar is s.
func KindOf(s ir.ScalarType) (Kind, bool) {
	for _, k := range Kinds() {
		if k.Scalar == s {
			return k, true
		}
	}
	return Kind{}, false
}

// NativePackage returns the package name of Native ("f32", "f64").
func (k Kind) NativePackage() string {
	if k.Native == "" {
		return ""
	}
	return k.Native[len(k.Native)-3:]
}

// IsFloat reports whether the kind is Float or Double.
func (k Kind) IsFloat() bool {
	return k.Scalar.Kind == ir.ScalarFloat
}

// TypeName returns the Go spelling of a model type: the Go scalar type for
// scalars, Float4 for vectors and Float2x3 for matrices.
func TypeName(t ir.TypeInner) string {
	s, ok := ir.ScalarOf(t)
	if !ok {
		return fmt.Sprintf("%T", t)
	}
	k, ok := KindOf(s)
	if !ok {
		return s.String()
	}
	switch inner := t.(type) {
	case ir.VectorType:
		return fmt.Sprintf("%s%d", k.Name, inner.Size)
	case ir.MatrixType:
		return fmt.Sprintf("%s%dx%d", k.Name, inner.Rows, inner.Columns)
	default:
		return k.GoType
	}
}
