// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package layout computes the byte layout of the host value types under
// the buffer rules a kernel sees them through.
//
// Packed is the layout of the Go types themselves and of HLSL structured
// buffers: components are contiguous and aligned to their width. Storage
// and Uniform follow the std430 and std140 rules used by WGSL and GLSL
// buffers, where a host matrix of R rows is declared as R columns and
// three-component vectors align like four-component ones.
//
// Vertex buffers are described with github.com/gogpu/gputypes:
//
//	buf, err := layout.VertexAttributes(gputypes.VertexStepModeVertex,
//		layout.Field{Name: "position", Type: float3},
//		layout.Field{Name: "color", Type: float4},
//	)
//	// buf.ArrayStride == 28
package layout
