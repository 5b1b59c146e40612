// Package hlsl mirrors the parts of the real package the analyzer sees.
package hlsl

type ComputeShader interface {
	Execute()
}

type Cell uint8

const (
	M11 Cell = 0x11
	M12 Cell = 0x12
	M21 Cell = 0x21
	M22 Cell = 0x22
	M33 Cell = 0x33
)

type Float2 struct {
	X, Y float32
}

type Float4 struct {
	X, Y, Z, W float32
}

func (v Float4) ZW() Float2 { return Float2{v.Z, v.W} }

//hlsl:kernel
func (v Float4) Add(o Float4) Float4 { panic("kernel") }

//hlsl:kernel
func (v Float4) Index(i int32) float32 { panic("kernel") }

//hlsl:kernel
func (v *Float4) SetIndex(i int32, s float32) { panic("kernel") }

type Float2x2 struct {
	M11, M12 float32
	M21, M22 float32
}

//hlsl:kernel
func (m Float2x2) Row(i int32) Float2 { panic("kernel") }

//hlsl:kernel
func (m Float2x2) Cells2(a, b Cell) Float2 { panic("kernel") }

//hlsl:kernel
func (m *Float2x2) SetCells2(a, b Cell, s Float2) { panic("kernel") }
