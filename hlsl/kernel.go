// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"errors"
	"fmt"
)

// ErrKernelOnly is wrapped by every panic raised from a kernel-only member.
var ErrKernelOnly = errors.New("hlsl: kernel-only member called on the host")

// KernelOnlyError is the panic value of a kernel-only member executed on
// the host.
type KernelOnlyError struct {
	Type   string
	Member string
}

// Error implements the error interface.
func (e *KernelOnlyError) Error() string {
	return fmt.Sprintf("hlsl: %s.%s only has a meaning in a translated kernel", e.Type, e.Member)
}

// Unwrap returns ErrKernelOnly.
func (e *KernelOnlyError) Unwrap() error {
	return ErrKernelOnly
}

func kernelOnly(typ, member string) error {
	return &KernelOnlyError{Type: typ, Member: member}
}

// ComputeShader is implemented by kernel types. Execute is the body that a
// translator turns into the shader entry point; its calls to kernel-only
// members are never run on the host.
type ComputeShader interface {
	Execute()
}

// Cell names one matrix cell in a cell swizzle such as m.Cells2(M11, M22).
// The high nibble is the row and the low nibble the column, both 1-based.
type Cell uint8

// Matrix cells.
const (
	M11 Cell = 0x11
	M12 Cell = 0x12
	M13 Cell = 0x13
	M14 Cell = 0x14
	M21 Cell = 0x21
	M22 Cell = 0x22
	M23 Cell = 0x23
	M24 Cell = 0x24
	M31 Cell = 0x31
	M32 Cell = 0x32
	M33 Cell = 0x33
	M34 Cell = 0x34
	M41 Cell = 0x41
	M42 Cell = 0x42
	M43 Cell = 0x43
	M44 Cell = 0x44
)

// Row returns the 1-based row of the cell.
func (c Cell) Row() int { return int(c >> 4) }

// Column returns the 1-based column of the cell.
func (c Cell) Column() int { return int(c & 0x0f) }

// In reports whether the cell lies inside a matrix of the given shape.
func (c Cell) In(rows, columns int) bool {
	return c.Row() >= 1 && c.Row() <= rows && c.Column() >= 1 && c.Column() <= columns
}

// String returns the cell name, e.g. "M23".
func (c Cell) String() string {
	return fmt.Sprintf("M%d%d", c.Row(), c.Column())
}
