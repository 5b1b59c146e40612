// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch reports operands whose shapes cannot be combined.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrKindMismatch reports operands whose scalar kinds differ or do not
	// support the operator.
	ErrKindMismatch = errors.New("kind mismatch")
)

// ResolveUnary returns the result type of applying op to operand.
func ResolveUnary(op UnaryOperator, operand TypeInner) (TypeInner, error) {
	scalar, ok := ScalarOf(operand)
	if !ok {
		return nil, fmt.Errorf("unary %s on %T: %w", op.Symbol(), operand, ErrKindMismatch)
	}
	switch op {
	case UnaryNegate:
		if scalar.Kind != ScalarFloat && scalar.Kind != ScalarSint {
			return nil, fmt.Errorf("negate %s: %w", TypeString(operand), ErrKindMismatch)
		}
	case UnaryLogicalNot:
		if scalar.Kind != ScalarBool {
			return nil, fmt.Errorf("logical not %s: %w", TypeString(operand), ErrKindMismatch)
		}
	case UnaryBitwiseNot:
		if !scalar.IsInteger() {
			return nil, fmt.Errorf("bitwise not %s: %w", TypeString(operand), ErrKindMismatch)
		}
	default:
		return nil, fmt.Errorf("unknown unary operator %d", op)
	}
	return operand, nil
}

// ResolveBinary returns the result type of the componentwise binary
// operator op. Operands must have the same type, or one of them must be a
// scalar of the other's kind, which is broadcast.
//
// Comparisons yield bool values of the operand shape. Matrix products are
// not componentwise; see ResolveMultiply.
func ResolveBinary(op BinaryOperator, left, right TypeInner) (TypeInner, error) {
	ls, lok := ScalarOf(left)
	rs, rok := ScalarOf(right)
	if !lok || !rok {
		return nil, fmt.Errorf("binary %s on %T and %T: %w", op.Symbol(), left, right, ErrKindMismatch)
	}
	if ls != rs {
		return nil, fmt.Errorf("binary %s on %s and %s: %w", op.Symbol(), TypeString(left), TypeString(right), ErrKindMismatch)
	}

	var shape TypeInner
	switch {
	case SameShape(left, right):
		shape = left
	case isScalar(left):
		shape = right
	case isScalar(right):
		shape = left
	default:
		return nil, fmt.Errorf("binary %s on %s and %s: %w", op.Symbol(), TypeString(left), TypeString(right), ErrShapeMismatch)
	}

	switch {
	case op.IsComparison():
		if ls.Kind == ScalarBool && op != BinaryEqual && op != BinaryNotEqual {
			return nil, fmt.Errorf("ordering %s on bool: %w", op.Symbol(), ErrKindMismatch)
		}
		return WithScalar(shape, Bool), nil
	case op.IsLogical():
		if ls.Kind != ScalarBool {
			return nil, fmt.Errorf("logical %s on %s: %w", op.Symbol(), ls, ErrKindMismatch)
		}
	case op.IsBitwise():
		if !ls.IsInteger() {
			return nil, fmt.Errorf("bitwise %s on %s: %w", op.Symbol(), ls, ErrKindMismatch)
		}
	default:
		if !ls.IsNumeric() {
			return nil, fmt.Errorf("arithmetic %s on %s: %w", op.Symbol(), ls, ErrKindMismatch)
		}
	}
	return shape, nil
}

// ResolveMultiply returns the result type of the shape-checked product
// left × right (the HLSL mul intrinsic). Matrices are row-major:
//
//	scalar × T          → T
//	Vector(k) × Matrix(k,m)   → Vector(m)
//	Matrix(R,C) × Vector(C)   → Vector(R)
//	Matrix(R,k) × Matrix(k,m) → Matrix(R,m)
//
// Vector results of size 1 collapse to the scalar.
func ResolveMultiply(left, right TypeInner) (TypeInner, error) {
	ls, lok := ScalarOf(left)
	rs, rok := ScalarOf(right)
	if !lok || !rok || ls != rs || !ls.IsNumeric() {
		return nil, fmt.Errorf("multiply %s by %s: %w", TypeString(left), TypeString(right), ErrKindMismatch)
	}

	leftMat, leftIsMat := left.(MatrixType)
	rightMat, rightIsMat := right.(MatrixType)
	leftVec, leftIsVec := left.(VectorType)
	rightVec, rightIsVec := right.(VectorType)

	switch {
	case isScalar(left):
		return right, nil
	case isScalar(right):
		return left, nil
	case leftIsVec && rightIsMat:
		if leftVec.Size != rightMat.Rows {
			return nil, fmt.Errorf("multiply %s by %s: %w", leftVec, rightMat, ErrShapeMismatch)
		}
		return VectorOrScalar(rightMat.Columns, ls), nil
	case leftIsMat && rightIsVec:
		if leftMat.Columns != rightVec.Size {
			return nil, fmt.Errorf("multiply %s by %s: %w", leftMat, rightVec, ErrShapeMismatch)
		}
		return VectorOrScalar(leftMat.Rows, ls), nil
	case leftIsMat && rightIsMat:
		if leftMat.Columns != rightMat.Rows {
			return nil, fmt.Errorf("multiply %s by %s: %w", leftMat, rightMat, ErrShapeMismatch)
		}
		return MatrixType{Rows: leftMat.Rows, Columns: rightMat.Columns, Scalar: ls}, nil
	default:
		return nil, fmt.Errorf("multiply %s by %s: %w", TypeString(left), TypeString(right), ErrShapeMismatch)
	}
}

func isScalar(t TypeInner) bool {
	_, ok := t.(ScalarType)
	return ok
}
