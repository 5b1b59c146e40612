// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/shadermath/ir"
)

var vertexFormats = map[ir.ScalarType][5]gputypes.VertexFormat{
	ir.Float: {1: gputypes.VertexFormatFloat32, 2: gputypes.VertexFormatFloat32x2, 3: gputypes.VertexFormatFloat32x3, 4: gputypes.VertexFormatFloat32x4},
	ir.Int:   {1: gputypes.VertexFormatSint32, 2: gputypes.VertexFormatSint32x2, 3: gputypes.VertexFormatSint32x3, 4: gputypes.VertexFormatSint32x4},
	ir.Uint:  {1: gputypes.VertexFormatUint32, 2: gputypes.VertexFormatUint32x2, 3: gputypes.VertexFormatUint32x3, 4: gputypes.VertexFormatUint32x4},
}

// VertexFormat returns the vertex attribute format of a scalar or vector
// type. Double and bool values have no vertex format, and matrices occupy
// one attribute per row.
func VertexFormat(t ir.TypeInner) (gputypes.VertexFormat, error) {
	var n int
	switch inner := t.(type) {
	case ir.ScalarType:
		n = 1
	case ir.VectorType:
		n = int(inner.Size)
	default:
		return gputypes.VertexFormatUndefined, &Error{Rule: Packed, Type: t, Message: "no vertex format"}
	}
	scalar, _ := ir.ScalarOf(t)
	formats, ok := vertexFormats[scalar]
	if !ok || n < 1 || n > 4 {
		return gputypes.VertexFormatUndefined, &Error{Rule: Packed, Type: t, Message: "no vertex format"}
	}
	return formats[n], nil
}

// VertexAttributes describes an interleaved vertex buffer holding the
// fields in packed layout. Shader locations are assigned in field order;
// a matrix field takes one location per row.
func VertexAttributes(step gputypes.VertexStepMode, fields ...Field) (gputypes.VertexBufferLayout, error) {
	s, err := Struct(Packed, fields...)
	if err != nil {
		return gputypes.VertexBufferLayout{}, err
	}
	buf := gputypes.VertexBufferLayout{
		ArrayStride: uint64(s.Size),
		StepMode:    step,
		Attributes:  make([]gputypes.VertexAttribute, 0, len(fields)),
	}
	location := uint32(0)
	for _, m := range s.Members {
		rows, row := 1, m.Type
		if mat, ok := m.Type.(ir.MatrixType); ok {
			rows, row = int(mat.Rows), mat.RowType()
		}
		format, err := VertexFormat(row)
		if err != nil {
			return gputypes.VertexBufferLayout{}, fmt.Errorf("field %s: %w", m.Name, err)
		}
		for r := range rows {
			buf.Attributes = append(buf.Attributes, gputypes.VertexAttribute{
				Format:         format,
				Offset:         uint64(m.Offset + r*m.Stride),
				ShaderLocation: location,
			})
			location++
		}
	}
	return buf, nil
}

// VertexAttributesOf is VertexAttributes applied to the fields of a Go
// struct value.
func VertexAttributesOf(v any, step gputypes.VertexStepMode) (gputypes.VertexBufferLayout, error) {
	fields, err := Fields(v)
	if err != nil {
		return gputypes.VertexBufferLayout{}, err
	}
	return VertexAttributes(step, fields...)
}
