// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/gogpu/shadermath/ir"
)

// Vector is one generated vector type.
type Vector struct {
	Kind Kind
	Size int
}

// Name returns the Go type name, e.g. Float4.
func (v Vector) Name() string { return fmt.Sprintf("%s%d", v.Kind.Name, v.Size) }

// Inner returns the model type.
func (v Vector) Inner() ir.VectorType {
	return ir.VectorType{Size: ir.VectorSize(v.Size), Scalar: v.Kind.Scalar}
}

// Type returns the named model type.
func (v Vector) Type() ir.Type { return ir.Type{Name: v.Name(), Inner: v.Inner()} }

// Fields returns the component field names X, Y, Z, W truncated to Size.
func (v Vector) Fields() []string {
	return lo.Times(v.Size, func(i int) string {
		return strings.ToUpper(string(ir.SwizzleComponent(i).Letter(false)))
	})
}

// HasColor reports whether the type exposes the rgba alphabet.
func (v Vector) HasColor() bool { return v.Kind.IsFloat() && v.Size >= 3 }

// Matrix is one generated matrix type.
type Matrix struct {
	Kind          Kind
	Rows, Columns int
}

// Name returns the Go type name, e.g. Float2x3.
func (m Matrix) Name() string { return fmt.Sprintf("%s%dx%d", m.Kind.Name, m.Rows, m.Columns) }

// Inner returns the model type.
func (m Matrix) Inner() ir.MatrixType {
	return ir.MatrixType{Rows: ir.VectorSize(m.Rows), Columns: ir.VectorSize(m.Columns), Scalar: m.Kind.Scalar}
}

// Type returns the named model type.
func (m Matrix) Type() ir.Type { return ir.Type{Name: m.Name(), Inner: m.Inner()} }

// Fields returns the cell field names M11..MRC in row-major order.
func (m Matrix) Fields() []string {
	return lo.Times(m.Rows*m.Columns, func(i int) string {
		return CellName(i/m.Columns+1, i%m.Columns+1)
	})
}

// Square reports whether the matrix has as many rows as columns.
func (m Matrix) Square() bool { return m.Rows == m.Columns }

// HasNativeMatrix reports whether the matrix reinterprets as an f32/f64
// MatN type.
func (m Matrix) HasNativeMatrix() bool {
	return m.Kind.Native != "" && m.Square() && m.Rows >= 3
}

// CellName returns the field name of cell (row, col), 1-based.
func CellName(row, col int) string { return fmt.Sprintf("M%d%d", row, col) }

// Model is the complete description of the generated value types. Both
// the Go emitter and the runtime intrinsic catalog are derived from it, so
// the two cannot disagree.
type Model struct {
	Kinds    []Kind
	Vectors  []Vector
	Matrices []Matrix
}

// NewModel returns the model for all five kinds, vector arities 2..4 and
// matrix dimensions 1..4.
func NewModel() *Model {
	m := &Model{Kinds: Kinds()}
	for _, k := range m.Kinds {
		for n := 2; n <= 4; n++ {
			m.Vectors = append(m.Vectors, Vector{Kind: k, Size: n})
		}
	}
	for _, k := range m.Kinds {
		for r := 1; r <= 4; r++ {
			for c := 1; c <= 4; c++ {
				m.Matrices = append(m.Matrices, Matrix{Kind: k, Rows: r, Columns: c})
			}
		}
	}
	return m
}

// VectorsOf returns the vectors of kind k.
func (m *Model) VectorsOf(k Kind) []Vector {
	return lo.Filter(m.Vectors, func(v Vector, _ int) bool { return v.Kind == k })
}

// MatricesOf returns the matrices of kind k.
func (m *Model) MatricesOf(k Kind) []Matrix {
	return lo.Filter(m.Matrices, func(x Matrix, _ int) bool { return x.Kind == k })
}

// Intrinsics returns every member of every generated type, vectors first.
func (m *Model) Intrinsics() []ir.Intrinsic {
	var out []ir.Intrinsic
	for _, v := range m.Vectors {
		out = append(out, m.VectorIntrinsics(v)...)
		out = append(out, m.SwizzleIntrinsics(v)...)
	}
	for _, x := range m.Matrices {
		out = append(out, m.MatrixIntrinsics(x)...)
	}
	return out
}

// Patterns returns every swizzle pattern of length k over an alphabet of n
// components, repeats included, in lexicographic order.
func Patterns(n, k int) [][]ir.SwizzleComponent {
	if k == 0 {
		return [][]ir.SwizzleComponent{nil}
	}
	return lo.FlatMap(Patterns(n, k-1), func(prefix []ir.SwizzleComponent, _ int) [][]ir.SwizzleComponent {
		return lo.Times(n, func(c int) []ir.SwizzleComponent {
			return append(slices.Clone(prefix), ir.SwizzleComponent(c))
		})
	})
}

// Compositions returns every ordered composition of n into pieces of arity
// 1..3.
func Compositions(n int) [][]int {
	if n == 0 {
		return [][]int{nil}
	}
	var out [][]int
	for first := 1; first <= min(3, n); first++ {
		for _, rest := range Compositions(n - first) {
			out = append(out, append([]int{first}, rest...))
		}
	}
	return out
}

// Partitions returns the compositions of n that get a dedicated
// constructor: at least two pieces, at least one of them a vector.
func Partitions(n int) [][]int {
	return lo.Filter(Compositions(n), func(parts []int, _ int) bool {
		return len(parts) >= 2 && lo.Max(parts) > 1
	})
}

// PartitionName returns the constructor suffix for parts, e.g. "211".
func PartitionName(parts []int) string {
	return strings.Join(lo.Map(parts, func(p int, _ int) string { return fmt.Sprint(p) }), "")
}

type binaryOp struct {
	member string
	op     ir.BinaryOperator
}

var (
	arithmeticOps = []binaryOp{
		{"Add", ir.BinaryAdd},
		{"Sub", ir.BinarySubtract},
		{"Mul", ir.BinaryMultiply},
		{"Div", ir.BinaryDivide},
		{"Mod", ir.BinaryModulo},
	}
	comparisonOps = []binaryOp{
		{"Equal", ir.BinaryEqual},
		{"NotEqual", ir.BinaryNotEqual},
		{"Less", ir.BinaryLess},
		{"LessEqual", ir.BinaryLessEqual},
		{"Greater", ir.BinaryGreater},
		{"GreaterEqual", ir.BinaryGreaterEqual},
	}
	bitwiseOps = []binaryOp{
		{"And", ir.BinaryAnd},
		{"Or", ir.BinaryInclusiveOr},
		{"Xor", ir.BinaryExclusiveOr},
		{"Shl", ir.BinaryShiftLeft},
		{"Shr", ir.BinaryShiftRight},
	}
	logicalOps = []binaryOp{
		{"And", ir.BinaryLogicalAnd},
		{"Or", ir.BinaryLogicalOr},
	}
)

func must(t ir.TypeInner, err error) ir.TypeInner {
	if err != nil {
		panic(fmt.Sprintf("gen: %v", err))
	}
	return t
}

// VectorIntrinsics returns the fields, constructors, conversions,
// operators and multiply family of v. Swizzles are listed separately.
func (m *Model) VectorIntrinsics(v Vector) []ir.Intrinsic {
	owner := v.Type()
	inner := v.Inner()
	scalar := v.Kind.Scalar
	var out []ir.Intrinsic

	for i, f := range v.Fields() {
		out = append(out, ir.Intrinsic{
			Owner: owner, Member: f, Kind: ir.IntrinsicAccessIndex,
			Pattern: []ir.SwizzleComponent{ir.SwizzleComponent(i)},
			Result:  scalar,
		})
	}

	out = append(out, ir.Intrinsic{
		Owner: owner, Member: "New" + v.Name(), Function: true, Kind: ir.IntrinsicCompose,
		Args:   lo.Times(v.Size, func(int) ir.TypeInner { return scalar }),
		Result: inner,
	})
	for _, parts := range Partitions(v.Size) {
		out = append(out, ir.Intrinsic{
			Owner: owner, Member: v.Name() + "From" + PartitionName(parts), Function: true, Kind: ir.IntrinsicCompose,
			Args: lo.Map(parts, func(p int, _ int) ir.TypeInner {
				return ir.VectorOrScalar(ir.VectorSize(p), scalar)
			}),
			Result: inner,
		})
	}
	out = append(out, ir.Intrinsic{
		Owner: owner, Member: "Splat" + v.Name(), Function: true, Kind: ir.IntrinsicSplat,
		Args: []ir.TypeInner{scalar}, Result: inner,
	})
	out = append(out, bitcasts(owner, fmt.Sprintf("[%d]%s", v.Size, v.Kind.GoType), "Array")...)
	if v.Kind.Native != "" {
		out = append(out, bitcasts(owner, fmt.Sprintf("%s.Vec%d", v.Kind.NativePackage(), v.Size), "Vec")...)
	}

	out = append(out,
		ir.Intrinsic{
			Owner: owner, Member: "Index", Kind: ir.IntrinsicAccess,
			Args: []ir.TypeInner{ir.Int}, Result: scalar, KernelOnly: true,
		},
		ir.Intrinsic{
			Owner: owner, Member: "SetIndex", Kind: ir.IntrinsicStoreAccess,
			Args: []ir.TypeInner{ir.Int, scalar}, KernelOnly: true,
		},
	)
	out = append(out, operators(owner, true)...)
	out = append(out, m.casts(owner)...)

	if scalar.IsNumeric() {
		for cols := 1; cols <= 4; cols++ {
			rhs := Matrix{Kind: v.Kind, Rows: v.Size, Columns: cols}
			out = append(out, multiply(owner, rhs.Inner()))
		}
	}
	return out
}

// SwizzleIntrinsics returns the swizzle getters and setters of v: every
// xyzw pattern of arity 2..4 and, for float vectors of arity 3 and 4, every
// rgba pattern of arity 1..4. Only distinct patterns have setters.
func (m *Model) SwizzleIntrinsics(v Vector) []ir.Intrinsic {
	owner := v.Type()
	var out []ir.Intrinsic
	add := func(pattern []ir.SwizzleComponent, color bool) {
		name := strings.ToUpper(ir.SwizzleString(pattern, color))
		selected := ir.VectorOrScalar(ir.VectorSize(len(pattern)), v.Kind.Scalar)
		out = append(out, ir.Intrinsic{
			Owner: owner, Member: name, Kind: ir.IntrinsicSwizzle,
			Pattern: pattern, Color: color, Result: selected,
		})
		if ir.IsDistinct(pattern) {
			out = append(out, ir.Intrinsic{
				Owner: owner, Member: "Set" + name, Kind: ir.IntrinsicStoreSwizzle,
				Pattern: pattern, Color: color, Args: []ir.TypeInner{selected},
			})
		}
	}
	for k := 2; k <= 4; k++ {
		for _, p := range Patterns(v.Size, k) {
			add(p, false)
		}
	}
	if v.HasColor() {
		for k := 1; k <= 4; k++ {
			for _, p := range Patterns(v.Size, k) {
				add(p, true)
			}
		}
	}
	return out
}

// MatrixIntrinsics returns the members of x.
func (m *Model) MatrixIntrinsics(x Matrix) []ir.Intrinsic {
	owner := x.Type()
	inner := x.Inner()
	scalar := x.Kind.Scalar
	row := inner.RowType()
	var out []ir.Intrinsic

	for r := 1; r <= x.Rows; r++ {
		for c := 1; c <= x.Columns; c++ {
			out = append(out, ir.Intrinsic{
				Owner: owner, Member: CellName(r, c), Kind: ir.IntrinsicAccessIndex,
				Row: uint8(r), Column: uint8(c), Result: scalar,
			})
		}
	}

	out = append(out, ir.Intrinsic{
		Owner: owner, Member: "New" + x.Name(), Function: true, Kind: ir.IntrinsicCompose,
		Args:   lo.Times(x.Rows*x.Columns, func(int) ir.TypeInner { return scalar }),
		Result: inner,
	})
	if x.Columns >= 2 {
		out = append(out, ir.Intrinsic{
			Owner: owner, Member: x.Name() + "FromRows", Function: true, Kind: ir.IntrinsicCompose,
			Args:   lo.Times(x.Rows, func(int) ir.TypeInner { return row }),
			Result: inner,
		})
	}
	out = append(out, ir.Intrinsic{
		Owner: owner, Member: "Splat" + x.Name(), Function: true, Kind: ir.IntrinsicSplat,
		Args: []ir.TypeInner{scalar}, Result: inner,
	})
	out = append(out, bitcasts(owner, fmt.Sprintf("[%d]%s", x.Rows*x.Columns, x.Kind.GoType), "Array")...)
	if x.HasNativeMatrix() {
		out = append(out, bitcasts(owner, fmt.Sprintf("%s.Mat%d", x.Kind.NativePackage(), x.Rows), "Mat")...)
	}

	out = append(out,
		ir.Intrinsic{
			Owner: owner, Member: "Row", Kind: ir.IntrinsicAccess,
			Args: []ir.TypeInner{ir.Int}, Result: row, KernelOnly: true,
		},
		ir.Intrinsic{
			Owner: owner, Member: "SetRow", Kind: ir.IntrinsicStoreAccess,
			Args: []ir.TypeInner{ir.Int, row}, KernelOnly: true,
		},
	)
	for k := 2; k <= 4 && k <= x.Rows*x.Columns; k++ {
		selected := ir.VectorType{Size: ir.VectorSize(k), Scalar: scalar}
		out = append(out,
			ir.Intrinsic{
				Owner: owner, Member: fmt.Sprintf("Cells%d", k), Kind: ir.IntrinsicCellSwizzle,
				Result: selected, KernelOnly: true,
			},
			ir.Intrinsic{
				Owner: owner, Member: fmt.Sprintf("SetCells%d", k), Kind: ir.IntrinsicStoreCellSwizzle,
				Args: []ir.TypeInner{selected}, KernelOnly: true,
			},
		)
	}
	out = append(out, operators(owner, false)...)
	out = append(out, m.casts(owner)...)

	if scalar.IsNumeric() {
		if x.Columns >= 2 {
			out = append(out, multiply(owner, ir.VectorType{Size: inner.Columns, Scalar: scalar}))
		}
		for cols := 1; cols <= 4; cols++ {
			rhs := Matrix{Kind: x.Kind, Rows: x.Columns, Columns: cols}
			out = append(out, multiply(owner, rhs.Inner()))
		}
	}
	return out
}

// CellArity returns the number of Cell parameters of a cell swizzle
// member.
func CellArity(in ir.Intrinsic) int {
	switch in.Kind {
	case ir.IntrinsicCellSwizzle:
		return ir.Components(in.Result)
	case ir.IntrinsicStoreCellSwizzle:
		return ir.Components(in.Args[0])
	default:
		return 0
	}
}

func bitcasts(owner ir.Type, host, suffix string) []ir.Intrinsic {
	return []ir.Intrinsic{
		{
			Owner: owner, Member: owner.Name + "From" + suffix, Function: true,
			Kind: ir.IntrinsicBitcast, Host: host, Result: owner.Inner,
		},
		{
			Owner: owner, Member: suffix, Kind: ir.IntrinsicBitcast, Host: host,
		},
	}
}

// operators returns the kernel-only unary and binary members of owner.
// Bitwise operators exist on integer vectors only.
func operators(owner ir.Type, vector bool) []ir.Intrinsic {
	scalar, _ := ir.ScalarOf(owner.Inner)
	var out []ir.Intrinsic
	binary := func(b binaryOp) {
		out = append(out, ir.Intrinsic{
			Owner: owner, Member: b.member, Kind: ir.IntrinsicBinary, Binary: b.op,
			Args:       []ir.TypeInner{owner.Inner},
			Result:     must(ir.ResolveBinary(b.op, owner.Inner, owner.Inner)),
			KernelOnly: true,
		})
	}
	unary := func(member string, op ir.UnaryOperator) {
		out = append(out, ir.Intrinsic{
			Owner: owner, Member: member, Kind: ir.IntrinsicUnary, Unary: op,
			Result:     must(ir.ResolveUnary(op, owner.Inner)),
			KernelOnly: true,
		})
	}

	if scalar.Kind == ir.ScalarBool {
		binary(comparisonOps[0])
		binary(comparisonOps[1])
		for _, b := range logicalOps {
			binary(b)
		}
		unary("Not", ir.UnaryLogicalNot)
		return out
	}

	for _, b := range arithmeticOps {
		binary(b)
	}
	if scalar.Kind != ir.ScalarUint {
		unary("Neg", ir.UnaryNegate)
	}
	out = append(out,
		ir.Intrinsic{
			Owner: owner, Member: "MulScalar", Kind: ir.IntrinsicBinary, Binary: ir.BinaryMultiply,
			Args: []ir.TypeInner{scalar}, Result: owner.Inner, KernelOnly: true,
		},
		ir.Intrinsic{
			Owner: owner, Member: "ScalarMul", Kind: ir.IntrinsicBinary, Binary: ir.BinaryMultiply,
			Args: []ir.TypeInner{scalar}, Result: owner.Inner, Reversed: true, KernelOnly: true,
		},
	)
	for _, b := range comparisonOps {
		binary(b)
	}
	if vector && scalar.IsInteger() {
		for _, b := range bitwiseOps {
			binary(b)
		}
		unary("Complement", ir.UnaryBitwiseNot)
	}
	return out
}

// casts returns one To<Type> member per other kind. Implicit edges and
// float narrowing are computed on the host; other explicit edges are
// kernel-only.
func (m *Model) casts(owner ir.Type) []ir.Intrinsic {
	from, _ := ir.ScalarOf(owner.Inner)
	var out []ir.Intrinsic
	for _, k := range m.Kinds {
		if k.Scalar == from {
			continue
		}
		target := ir.WithScalar(owner.Inner, k.Scalar)
		cast := ir.ConversionBetween(owner.Inner, target)
		if cast == ir.CastNone {
			continue
		}
		out = append(out, ir.Intrinsic{
			Owner: owner, Member: "To" + TypeName(target), Kind: ir.IntrinsicAs,
			Result: target, KernelOnly: !ir.HostConversion(from, k.Scalar),
		})
	}
	return out
}

func multiply(owner ir.Type, rhs ir.TypeInner) ir.Intrinsic {
	return ir.Intrinsic{
		Owner: owner, Member: "Mul" + TypeName(rhs), Kind: ir.IntrinsicMultiply,
		Args:   []ir.TypeInner{rhs},
		Result: must(ir.ResolveMultiply(owner.Inner, rhs)),
	}
}
