package kernels

import "github.com/gogpu/shadermath/hlsl"

type Blend struct {
	A, B, Out hlsl.Float4
	M         hlsl.Float2x2
}

var _ hlsl.ComputeShader = (*Blend)(nil)

func (k *Blend) Execute() {
	k.Out = k.A.Add(k.B)
	sum := func() hlsl.Float4 { return lerp(k.A, k.B) }
	k.Out = sum()
	add := k.A.Add
	k.Out = add(k.B)

	k.Out.X = k.A.Index(4) // want `constant index 4 out of range for Float4`
	k.Out.SetIndex(3, 0)

	_ = k.M.Row(0)                                // want `constant row 0 out of range for Float2x2`
	_ = k.M.Cells2(hlsl.M12, hlsl.M33)            // want `cell M33 outside Float2x2`
	k.M.SetCells2(hlsl.M21, hlsl.M21, k.Out.ZW()) // want `Float2x2.SetCells2 stores through repeated cell M21`
	k.M.SetCells2(hlsl.M11, hlsl.M22, k.Out.ZW())

	c := hlsl.M21
	k.M.SetCells2(c, c, k.Out.ZW()) // want `cell arguments must be constants` `cell arguments must be constants`
}

//hlsl:kernel
func lerp(a, b hlsl.Float4) hlsl.Float4 { // want lerp:"kernelOnly"
	return a.Add(b)
}

func host(i int32) hlsl.Float2 {
	a := hlsl.Float4{X: 1, Y: 2}
	_ = a.Add(a)   // want `Float4.Add is kernel-only`
	_ = lerp(a, a) // want `kernels.lerp is kernel-only`
	_ = a.Index(i) // want `Float4.Index is kernel-only`

	add := a.Add // want `Float4.Add is kernel-only`
	_ = add(a)
	sub := hlsl.Float4.Add // want `Float4.Add is kernel-only`
	_ = sub(a, a)
	return a.ZW()
}
