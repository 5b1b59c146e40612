// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import (
	"fmt"
	"reflect"
)

// ValidationError represents a validation error.
type ValidationError struct {
	Message string
	// Optional context
	Intrinsic string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Intrinsic != "" {
		return fmt.Sprintf("in intrinsic %s: %s", e.Intrinsic, e.Message)
	}
	return e.Message
}

// Validator checks a set of intrinsic descriptors against the type model.
type Validator struct {
	errors []ValidationError
	name   string
}

// Validate checks every intrinsic for consistency with the resolution and
// conversion rules of this package.
// Returns validation errors if any, or nil if all intrinsics are valid.
func Validate(intrinsics []Intrinsic) []ValidationError {
	v := &Validator{}
	for i := range intrinsics {
		v.ValidateIntrinsic(&intrinsics[i])
	}
	if len(v.errors) > 0 {
		return v.errors
	}
	return nil
}

// ValidateType checks that t is a well-formed model type.
func ValidateType(t TypeInner) error {
	switch inner := t.(type) {
	case ScalarType:
		return validateScalar(inner)
	case VectorType:
		if inner.Size < Vec2 || inner.Size > Vec4 {
			return fmt.Errorf("vector size must be 2, 3, or 4, got %d", inner.Size)
		}
		return validateScalar(inner.Scalar)
	case MatrixType:
		if inner.Rows < Vec1 || inner.Rows > Vec4 {
			return fmt.Errorf("matrix rows must be 1 to 4, got %d", inner.Rows)
		}
		if inner.Columns < Vec1 || inner.Columns > Vec4 {
			return fmt.Errorf("matrix columns must be 1 to 4, got %d", inner.Columns)
		}
		return validateScalar(inner.Scalar)
	case nil:
		return fmt.Errorf("nil type")
	default:
		return fmt.Errorf("unsupported type %T", t)
	}
}

func validateScalar(s ScalarType) error {
	switch s.Kind {
	case ScalarFloat:
		if s.Width != 4 && s.Width != 8 {
			return fmt.Errorf("float width must be 4 or 8 bytes, got %d", s.Width)
		}
	case ScalarSint, ScalarUint, ScalarBool:
		if s.Width != 4 {
			return fmt.Errorf("%s width must be 4 bytes, got %d", s.Kind, s.Width)
		}
	default:
		return fmt.Errorf("unknown scalar kind %d", s.Kind)
	}
	return nil
}

// ValidateIntrinsic validates a single intrinsic and records any errors.
//
//nolint:gocyclo,cyclop // one case per intrinsic kind
func (v *Validator) ValidateIntrinsic(in *Intrinsic) {
	v.name = in.String()
	owner := in.Owner.Inner
	if err := ValidateType(owner); err != nil {
		v.addError(fmt.Sprintf("owner: %v", err))
		return
	}
	ownerScalar, _ := ScalarOf(owner)

	switch in.Kind {
	case IntrinsicCompose:
		total := 0
		for _, arg := range in.Args {
			s, ok := ScalarOf(arg)
			if !ok || s != ownerScalar {
				v.addError(fmt.Sprintf("compose operand %s does not match %s", TypeString(arg), ownerScalar))
			}
			total += Components(arg)
		}
		if total != Components(owner) {
			v.addError(fmt.Sprintf("compose operands provide %d components, need %d", total, Components(owner)))
		}
		v.expectResult(in, owner)

	case IntrinsicSplat:
		if len(in.Args) != 1 || !sameType(in.Args[0], ownerScalar) {
			v.addError("splat takes exactly one scalar of the owner kind")
		}
		v.expectResult(in, owner)

	case IntrinsicAccessIndex:
		switch inner := owner.(type) {
		case VectorType:
			if len(in.Pattern) != 1 || uint8(in.Pattern[0]) >= uint8(inner.Size) {
				v.addError("component access selects exactly one component")
			}
		case MatrixType:
			if in.Row < 1 || in.Row > uint8(inner.Rows) || in.Column < 1 || in.Column > uint8(inner.Columns) {
				v.addError(fmt.Sprintf("cell M%d%d outside %s", in.Row, in.Column, inner))
			}
		}
		v.expectResult(in, ownerScalar)

	case IntrinsicSwizzle, IntrinsicStoreSwizzle:
		vec, ok := owner.(VectorType)
		if !ok {
			v.addError("swizzle owner must be a vector")
			return
		}
		if len(in.Pattern) == 0 || len(in.Pattern) > 4 {
			v.addError(fmt.Sprintf("swizzle pattern length %d out of range", len(in.Pattern)))
			return
		}
		for _, c := range in.Pattern {
			if uint8(c) >= uint8(vec.Size) {
				v.addError(fmt.Sprintf("swizzle component %c out of range for %s", c.Letter(in.Color), vec))
			}
		}
		selected := VectorOrScalar(VectorSize(len(in.Pattern)), vec.Scalar)
		if in.Kind == IntrinsicStoreSwizzle {
			if !IsDistinct(in.Pattern) {
				v.addError("cannot assign through swizzle with repeated components")
			}
			if len(in.Args) != 1 || !sameType(in.Args[0], selected) {
				v.addError("store swizzle operand does not match pattern")
			}
			return
		}
		v.expectResult(in, selected)

	case IntrinsicAccess, IntrinsicStoreAccess:
		var element TypeInner = ownerScalar
		if m, ok := owner.(MatrixType); ok {
			element = m.RowType()
		}
		if in.Kind == IntrinsicStoreAccess {
			if len(in.Args) != 2 || !sameType(in.Args[1], element) {
				v.addError("indexed store operand does not match element type")
			}
		} else {
			v.expectResult(in, element)
		}
		if !in.KernelOnly {
			v.addError("dynamic indexing must be kernel-only")
		}

	case IntrinsicCellSwizzle, IntrinsicStoreCellSwizzle:
		if _, ok := owner.(MatrixType); !ok {
			v.addError("cell swizzle owner must be a matrix")
		}
		if !in.KernelOnly {
			v.addError("cell swizzle must be kernel-only")
		}

	case IntrinsicUnary:
		want, err := ResolveUnary(in.Unary, owner)
		if err != nil {
			v.addError(err.Error())
			return
		}
		v.expectResult(in, want)
		v.expectKernelOnly(in)

	case IntrinsicBinary:
		if len(in.Args) != 1 {
			v.addError("binary intrinsic takes one operand")
			return
		}
		left, right := owner, in.Args[0]
		if in.Reversed {
			left, right = right, left
		}
		want, err := ResolveBinary(in.Binary, left, right)
		if err != nil {
			v.addError(err.Error())
			return
		}
		v.expectResult(in, want)
		v.expectKernelOnly(in)

	case IntrinsicAs:
		cast := ConversionBetween(owner, in.Result)
		if cast == CastNone {
			v.addError(fmt.Sprintf("no conversion from %s to %s", TypeString(owner), TypeString(in.Result)))
			return
		}
		to, _ := ScalarOf(in.Result)
		host := HostConversion(ownerScalar, to)
		switch {
		case host && in.KernelOnly && cast == CastImplicit:
			v.addError("implicit conversion must be host-defined")
		case host && in.KernelOnly:
			v.addError("float narrowing must be host-defined")
		case !host && !in.KernelOnly:
			v.addError("explicit conversion must be kernel-only")
		}

	case IntrinsicBitcast:
		if in.Host == "" {
			v.addError("bitcast without host type")
		}
		if in.Function {
			v.expectResult(in, owner)
		} else if in.Result != nil {
			v.addError("bitcast to host type has no model result")
		}
		if in.KernelOnly {
			v.addError("bitcast must be host-defined")
		}

	case IntrinsicMultiply:
		if len(in.Args) != 1 {
			v.addError("multiply takes one operand")
			return
		}
		want, err := ResolveMultiply(owner, in.Args[0])
		if err != nil {
			v.addError(err.Error())
			return
		}
		v.expectResult(in, want)

	default:
		v.addError(fmt.Sprintf("unknown intrinsic kind %d", in.Kind))
	}
}

func (v *Validator) expectResult(in *Intrinsic, want TypeInner) {
	if !sameType(in.Result, want) {
		v.addError(fmt.Sprintf("result %s, want %s", TypeString(in.Result), TypeString(want)))
	}
}

func (v *Validator) expectKernelOnly(in *Intrinsic) {
	if !in.KernelOnly {
		v.addError("operator must be kernel-only")
	}
}

func sameType(a, b TypeInner) bool {
	return reflect.DeepEqual(a, b)
}

// addError adds a validation error.
func (v *Validator) addError(msg string) {
	v.errors = append(v.errors, ValidationError{
		Message:   msg,
		Intrinsic: v.name,
	})
}
