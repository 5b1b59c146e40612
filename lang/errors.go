// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package lang

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes spelling errors.
type ErrorKind uint8

const (
	// ErrUnsupportedType indicates a type that cannot be represented in the
	// target language.
	ErrUnsupportedType ErrorKind = iota

	// ErrUnsupportedIntrinsic indicates a member with no spelling in the
	// target language, such as a reinterpretation to a host-native type.
	ErrUnsupportedIntrinsic

	// ErrOperandCount indicates a wrong number of operand expressions.
	ErrOperandCount

	// ErrNonConstantCell indicates a cell swizzle operand that is not a
	// constant cell name.
	ErrNonConstantCell

	// ErrAliasedStore indicates a store through repeated components.
	ErrAliasedStore

	// ErrCellOutOfRange indicates a cell outside the matrix shape.
	ErrCellOutOfRange

	// ErrUnknownLanguage indicates a Language value outside the known set.
	ErrUnknownLanguage
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnsupportedType:
		return "UnsupportedType"
	case ErrUnsupportedIntrinsic:
		return "UnsupportedIntrinsic"
	case ErrOperandCount:
		return "OperandCount"
	case ErrNonConstantCell:
		return "NonConstantCell"
	case ErrAliasedStore:
		return "AliasedStore"
	case ErrCellOutOfRange:
		return "CellOutOfRange"
	case ErrUnknownLanguage:
		return "UnknownLanguage"
	default:
		return "Unknown"
	}
}

// Error represents a spelling error.
type Error struct {
	// Language is the target that rejected the request.
	Language Language

	// Kind categorizes the error.
	Kind ErrorKind

	// Message provides details about the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Language, e.Kind, e.Message)
}

// newError creates a new Error with the given kind and message.
func newError(l Language, kind ErrorKind, format string, args ...any) *Error {
	return &Error{
		Language: l,
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
	}
}

// IsKind reports whether err wraps an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
