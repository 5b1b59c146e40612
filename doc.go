// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package shadermath provides HLSL-style vector and matrix value types for
// authoring GPU kernels in Go, together with the metadata a kernel
// translator needs.
//
// The value types live in package hlsl. Kernel bodies written against them
// (Execute methods of hlsl.ComputeShader implementers) are translated to a
// shading language by an external compiler; on the host the same types are
// ordinary math values whose layout matches the GPU byte for byte.
//
// The sub-packages split the work:
//   - ir — the shading-language type model, operator lattice and intrinsic
//     descriptors
//   - hlsl — the value types and the intrinsic catalog
//   - lang — spellings of types and intrinsics in HLSL, WGSL, GLSL and MSL
//   - layout — packed, std430 and std140 byte layouts and vertex formats
//   - kernelcheck — a vet analyzer rejecting host calls of kernel-only
//     members
//
// This package ties them together for the common questions about a host
// value:
//
//	d, err := shadermath.Describe(hlsl.Float3x3{}, shadermath.Options{
//	    Language: lang.WGSL,
//	    Rule:     layout.Uniform,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(d.Spelling, d.Layout.Size) // mat3x3<f32> 48
package shadermath
