// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"log/slog"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/gogpu/shadermath/ir"
)

// Config controls the emitted Go source.
type Config struct {
	// Package is the package clause of the generated files.
	Package string

	// Generator is named in the "Code generated" header.
	Generator string

	// Header is copied verbatim above the "Code generated" line.
	Header string

	// Logger receives per-file diagnostics. Nil disables logging.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration used by go:generate in the hlsl
// package.
func DefaultConfig() Config {
	return Config{
		Package:   "hlsl",
		Generator: "hlslgen",
		Header:    "// Copyright 2025 The GoGPU Authors\n// SPDX-License-Identifier: MIT\n",
	}
}

// File is one generated source file.
type File struct {
	Name   string
	Source []byte
}

// Generate emits three files per kind: vectors, swizzles and matrices.
func Generate(model *Model, cfg Config) ([]File, error) {
	var files []File
	for _, k := range model.Kinds {
		lower := strings.ToLower(k.Name)
		parts := []struct {
			name string
			emit func(*emitter)
		}{
			{"zz_" + lower + "_vector.go", func(e *emitter) {
				for _, v := range model.VectorsOf(k) {
					e.vector(v, model.VectorIntrinsics(v))
				}
			}},
			{"zz_" + lower + "_swizzle.go", func(e *emitter) {
				for _, v := range model.VectorsOf(k) {
					e.swizzles(v, model.SwizzleIntrinsics(v))
				}
			}},
			{"zz_" + lower + "_matrix.go", func(e *emitter) {
				for _, x := range model.MatricesOf(k) {
					e.matrix(x, model.MatrixIntrinsics(x))
				}
			}},
		}
		for _, part := range parts {
			e := &emitter{}
			part.emit(e)
			src, err := e.file(cfg)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", part.name, err)
			}
			if cfg.Logger != nil {
				cfg.Logger.Debug("gen: emitted file", "name", part.name, "bytes", len(src))
			}
			files = append(files, File{Name: part.name, Source: src})
		}
	}
	return files, nil
}

type emitter struct {
	body    bytes.Buffer
	imports map[string]bool
}

func (e *emitter) p(format string, args ...any) {
	fmt.Fprintf(&e.body, format, args...)
	e.body.WriteByte('\n')
}

func (e *emitter) use(path string) {
	if e.imports == nil {
		e.imports = make(map[string]bool)
	}
	e.imports[path] = true
}

func (e *emitter) file(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(cfg.Header)
	if cfg.Header != "" {
		buf.WriteByte('\n')
	}
	fmt.Fprintf(&buf, "// Code generated by %s. DO NOT EDIT.\n\n", cfg.Generator)
	fmt.Fprintf(&buf, "package %s\n\n", cfg.Package)

	var std, ext []string
	for path := range e.imports {
		if strings.Contains(path, ".") {
			ext = append(ext, path)
		} else {
			std = append(std, path)
		}
	}
	if len(std)+len(ext) > 0 {
		buf.WriteString("import (\n")
		for _, path := range sorted(std) {
			fmt.Fprintf(&buf, "\t%q\n", path)
		}
		if len(std) > 0 && len(ext) > 0 {
			buf.WriteByte('\n')
		}
		for _, path := range sorted(ext) {
			fmt.Fprintf(&buf, "\t%q\n", path)
		}
		buf.WriteString(")\n\n")
	}
	buf.Write(bytes.TrimRight(e.body.Bytes(), "\n"))
	buf.WriteByte('\n')
	return format.Source(buf.Bytes())
}

func sorted(paths []string) []string {
	slices.Sort(paths)
	return paths
}

// components returns the Go expressions of every scalar component of a
// value named expr of type t.
func components(expr string, t ir.TypeInner) []string {
	switch inner := t.(type) {
	case ir.VectorType:
		return lo.Map(Vector{Size: int(inner.Size)}.Fields(), func(f string, _ int) string { return expr + "." + f })
	case ir.MatrixType:
		return lo.Map(Matrix{Rows: int(inner.Rows), Columns: int(inner.Columns)}.Fields(), func(f string, _ int) string { return expr + "." + f })
	default:
		return []string{expr}
	}
}

// params joins parameter names and types, merging runs of the same type.
func params(names, types []string) string {
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		if i+1 == len(names) || types[i+1] != types[i] {
			b.WriteString(" " + types[i])
		}
	}
	return b.String()
}

func literal(typ string, elems []string) string {
	return typ + "{" + strings.Join(elems, ", ") + "}"
}

func joinAnd(names []string) string {
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

var cellParams = []string{"a", "b", "c", "d"}

func (e *emitter) vector(v Vector, members []ir.Intrinsic) {
	name := v.Name()
	e.p("// %s is a vector of %d %s components.", name, v.Size, v.Kind.GoType)
	e.p("type %s struct {", name)
	e.p("\t%s %s", strings.Join(v.Fields(), ", "), v.Kind.GoType)
	e.p("}")
	e.p("")
	e.layoutAsserts(name, v.Fields(), v.Size, int(v.Kind.Scalar.Width))
	for _, in := range members {
		e.member("v", in)
	}
}

func (e *emitter) matrix(x Matrix, members []ir.Intrinsic) {
	name := x.Name()
	e.p("// %s is a %dx%d row-major matrix of %s.", name, x.Rows, x.Columns, x.Kind.GoType)
	e.p("type %s struct {", name)
	fields := x.Fields()
	for r := 0; r < x.Rows; r++ {
		e.p("\t%s %s", strings.Join(fields[r*x.Columns:(r+1)*x.Columns], ", "), x.Kind.GoType)
	}
	e.p("}")
	e.p("")
	e.layoutAsserts(name, fields, x.Rows*x.Columns, int(x.Kind.Scalar.Width))
	for _, in := range members {
		e.member("m", in)
	}
}

// layoutAsserts fails compilation unless the type is exactly n packed
// components of the given width.
func (e *emitter) layoutAsserts(name string, fields []string, n, width int) {
	e.use("unsafe")
	last := fields[len(fields)-1]
	e.p("var (")
	e.p("\t_ [unsafe.Sizeof(%s{}) - %d]struct{}", name, n*width)
	e.p("\t_ [%d - unsafe.Sizeof(%s{})]struct{}", n*width, name)
	e.p("\t_ [unsafe.Offsetof(%s{}.%s) - %d]struct{}", name, last, (n-1)*width)
	e.p("\t_ [%d - unsafe.Offsetof(%s{}.%s)]struct{}", (n-1)*width, name, last)
	e.p(")")
	e.p("")
}

func (e *emitter) swizzles(v Vector, members []ir.Intrinsic) {
	for _, in := range members {
		selected := components("s", ir.VectorOrScalar(ir.VectorSize(len(in.Pattern)), v.Kind.Scalar))
		targets := lo.Map(in.Pattern, func(c ir.SwizzleComponent, _ int) string {
			return "v." + v.Fields()[c]
		})
		switch in.Kind {
		case ir.IntrinsicSwizzle:
			if len(targets) == 1 {
				e.p("func (v %s) %s() %s { return %s }", v.Name(), in.Member, v.Kind.GoType, targets[0])
			} else {
				result := TypeName(in.Result)
				e.p("func (v %s) %s() %s { return %s }", v.Name(), in.Member, result, literal(result, targets))
			}
		case ir.IntrinsicStoreSwizzle:
			e.p("func (v *%s) %s(s %s) { %s = %s }", v.Name(), in.Member, TypeName(in.Args[0]),
				strings.Join(targets, ", "), strings.Join(selected, ", "))
		}
	}
	e.p("")
}

// member emits one non-field member. recv is the receiver name.
func (e *emitter) member(recv string, in ir.Intrinsic) {
	owner := in.Owner.Name
	switch in.Kind {
	case ir.IntrinsicAccessIndex:
		// Struct fields.
	case ir.IntrinsicCompose:
		e.compose(in)
	case ir.IntrinsicSplat:
		e.p("// %s returns a value with every component set to s.", in.Member)
		e.p("func %s(s %s) %s {", in.Member, TypeName(in.Args[0]), owner)
		e.p("\treturn %s", literal(owner, lo.Times(ir.Components(in.Owner.Inner), func(int) string { return "s" })))
		e.p("}")
		e.p("")
	case ir.IntrinsicBitcast:
		e.bitcast(recv, in)
	case ir.IntrinsicMultiply:
		e.multiply(recv, in)
	case ir.IntrinsicAs:
		if in.KernelOnly {
			e.kernel(recv, in, fmt.Sprintf("%s converts %s to %s.", in.Member, recv, TypeName(in.Result)), nil)
			return
		}
		target := TypeName(in.Result)
		scalar, _ := ir.ScalarOf(in.Result)
		goType := TypeName(scalar)
		from, _ := ir.ScalarOf(in.Owner.Inner)
		elems := lo.Map(components(recv, in.Owner.Inner), func(c string, _ int) string {
			if from.Kind == ir.ScalarBool {
				c += ".bit()"
			}
			return goType + "(" + c + ")"
		})
		e.p("// %s converts %s to %s.", in.Member, recv, target)
		e.p("func (%s %s) %s() %s {", recv, owner, in.Member, target)
		e.p("\treturn %s", literal(target, elems))
		e.p("}")
		e.p("")
	case ir.IntrinsicAccess:
		doc := "Index returns component i."
		if in.Member == "Row" {
			doc = "Row returns row i, counting from 1."
		}
		e.kernel(recv, in, doc, []string{"i"})
	case ir.IntrinsicStoreAccess:
		doc := "SetIndex sets component i to s."
		if in.Member == "SetRow" {
			doc = "SetRow sets row i, counting from 1, to s."
		}
		e.kernel(recv, in, doc, []string{"i", "s"})
	case ir.IntrinsicCellSwizzle:
		cells := cellParams[:CellArity(in)]
		e.kernel(recv, in, fmt.Sprintf("%s returns the cells %s as a vector.", in.Member, joinAnd(cells)), nil)
	case ir.IntrinsicStoreCellSwizzle:
		cells := cellParams[:CellArity(in)]
		e.kernel(recv, in, fmt.Sprintf("%s stores s into the cells %s, which must be distinct.", in.Member, joinAnd(cells)), []string{"s"})
	case ir.IntrinsicUnary:
		e.kernel(recv, in, fmt.Sprintf("%s returns %s%s.", in.Member, in.Unary.Symbol(), recv), nil)
	case ir.IntrinsicBinary:
		e.kernel(recv, in, binaryDoc(recv, in), []string{binaryOperand(in)})
	}
}

func binaryOperand(in ir.Intrinsic) string {
	if _, ok := in.Args[0].(ir.ScalarType); ok {
		return "s"
	}
	return "o"
}

func binaryDoc(recv string, in ir.Intrinsic) string {
	left, right := recv, binaryOperand(in)
	if in.Reversed {
		left, right = right, left
	}
	switch {
	case in.Member == "Mul":
		return fmt.Sprintf("Mul returns the componentwise product %s * %s.", left, right)
	case in.Binary.IsComparison() || in.Binary.IsLogical():
		return fmt.Sprintf("%s returns the componentwise result of %s %s %s.", in.Member, left, in.Binary.Symbol(), right)
	default:
		return fmt.Sprintf("%s returns %s %s %s.", in.Member, left, in.Binary.Symbol(), right)
	}
}

// maxStubLine is the longest one-line kernel stub; longer stubs get a
// block body.
const maxStubLine = 104

// kernel emits a kernel-only method whose host body panics.
func (e *emitter) kernel(recv string, in ir.Intrinsic, doc string, names []string) {
	owner := in.Owner.Name
	recvType := owner
	if in.Result == nil {
		recvType = "*" + owner
	}
	var pnames, ptypes []string
	if n := CellArity(in); n > 0 {
		pnames = append(pnames, cellParams[:n]...)
		ptypes = append(ptypes, lo.Times(n, func(int) string { return "Cell" })...)
	}
	pnames = append(pnames, names...)
	ptypes = append(ptypes, lo.Map(in.Args, func(t ir.TypeInner, _ int) string { return TypeName(t) })...)
	result := ""
	if in.Result != nil {
		result = " " + TypeName(in.Result)
	}
	e.p("// %s", doc)
	e.p("//")
	e.p("//hlsl:kernel")
	sig := fmt.Sprintf("func (%s %s) %s(%s)%s {", recv, recvType, in.Member, params(pnames, ptypes), result)
	body := fmt.Sprintf("panic(kernelOnly(%q, %q))", owner, in.Member)
	if len(sig)+len(body)+3 > maxStubLine {
		e.p("%s\n\t%s\n}", sig, body)
	} else {
		e.p("%s %s }", sig, body)
	}
	e.p("")
}

func (e *emitter) compose(in ir.Intrinsic) {
	owner := in.Owner.Name
	var names []string
	switch {
	case strings.HasPrefix(in.Member, "New"):
		names = lo.Map(components("", in.Owner.Inner), func(c string, _ int) string {
			return strings.ToLower(strings.TrimPrefix(c, "."))
		})
	case strings.HasSuffix(in.Member, "FromRows"):
		names = lo.Times(len(in.Args), func(i int) string { return fmt.Sprintf("r%d", i+1) })
	default:
		fields := components("", in.Owner.Inner)
		at := 0
		for _, arg := range in.Args {
			n := ir.Components(arg)
			names = append(names, strings.ToLower(strings.ReplaceAll(strings.Join(fields[at:at+n], ""), ".", "")))
			at += n
		}
	}
	types := lo.Map(in.Args, func(t ir.TypeInner, _ int) string { return TypeName(t) })
	elems := lo.FlatMap(in.Args, func(t ir.TypeInner, i int) []string { return components(names[i], t) })

	switch {
	case strings.HasPrefix(in.Member, "New") && isMatrix(in.Owner.Inner):
		e.p("// %s returns the matrix with the given cells in row-major order.", in.Member)
	case strings.HasPrefix(in.Member, "New"):
		e.p("// %s returns the vector (%s).", in.Member, strings.Join(names, ", "))
	case strings.HasSuffix(in.Member, "FromRows"):
		e.p("// %s returns the matrix with rows %s.", in.Member, joinAnd(names))
	default:
		e.p("// %s concatenates %s.", in.Member, joinAnd(names))
	}
	e.p("func %s(%s) %s {", in.Member, params(names, types), owner)
	e.p("\treturn %s", literal(owner, elems))
	e.p("}")
	e.p("")
}

func (e *emitter) bitcast(recv string, in ir.Intrinsic) {
	owner := in.Owner.Name
	native := !strings.HasPrefix(in.Host, "[")
	if native {
		s, _ := ir.ScalarOf(in.Owner.Inner)
		k, _ := KindOf(s)
		e.use(k.Native)
	}
	switch {
	case in.Function && native:
		e.p("// %s reinterprets a as a %s.", in.Member, owner)
		e.p("func %s(a %s) %s {", in.Member, in.Host, owner)
		e.p("\treturn %sFromArray(a)", owner)
	case in.Function:
		e.p("// %s reinterprets a as a %s.", in.Member, owner)
		e.p("func %s(a %s) %s {", in.Member, in.Host, owner)
		e.p("\treturn *(*%s)(unsafe.Pointer(&a))", owner)
	case native:
		e.p("// %s reinterprets %s as a %s.", in.Member, recv, in.Host)
		e.p("func (%s %s) %s() %s {", recv, owner, in.Member, in.Host)
		e.p("\treturn %s.Array()", recv)
	default:
		e.p("// %s reinterprets %s as a %s.", in.Member, recv, in.Host)
		e.p("func (%s %s) %s() %s {", recv, owner, in.Member, in.Host)
		e.p("\treturn *(*%s)(unsafe.Pointer(&%s))", in.Host, recv)
	}
	e.p("}")
	e.p("")
}

// multiply emits the host product of the receiver and the single operand.
func (e *emitter) multiply(recv string, in ir.Intrinsic) {
	owner := in.Owner.Name
	rhs := in.Args[0]
	arg := "o"
	switch {
	case isMatrix(in.Owner.Inner) && !isMatrix(rhs):
		arg = "v"
	case !isMatrix(in.Owner.Inner):
		arg = "m"
	}
	left := rowsOf(recv, in.Owner.Inner)
	right := columnsOf(arg, rhs)

	dot := func(row, col []string) string {
		if len(row) == 1 {
			return row[0] + " * " + col[0]
		}
		terms := make([]string, len(row))
		for i := range row {
			terms[i] = row[i] + "*" + col[i]
		}
		return strings.Join(terms, " + ")
	}

	result := TypeName(in.Result)
	e.p("// %s returns the product %s * %s.", in.Member, recv, arg)
	e.p("func (%s %s) %s(%s %s) %s {", recv, owner, in.Member, arg, TypeName(rhs), result)
	switch in.Result.(type) {
	case ir.ScalarType:
		e.p("\treturn %s", dot(left[0], right[0]))
	default:
		e.p("\treturn %s{", result)
		_, vector := in.Result.(ir.VectorType)
		for _, row := range left {
			cells := lo.Map(right, func(col []string, _ int) string { return dot(row, col) })
			if vector {
				for _, cell := range cells {
					e.p("\t\t%s,", cell)
				}
				continue
			}
			e.p("\t\t%s,", strings.Join(cells, ", "))
		}
		e.p("\t}")
	}
	e.p("}")
	e.p("")
}

func isMatrix(t ir.TypeInner) bool {
	_, ok := t.(ir.MatrixType)
	return ok
}

// rowsOf returns the rows of a left operand: the matrix rows, or a vector
// as a single row.
func rowsOf(expr string, t ir.TypeInner) [][]string {
	comps := components(expr, t)
	m, ok := t.(ir.MatrixType)
	if !ok {
		return [][]string{comps}
	}
	return lo.Chunk(comps, int(m.Columns))
}

// columnsOf returns the columns of a right operand: the matrix columns, or
// a vector as a single column.
func columnsOf(expr string, t ir.TypeInner) [][]string {
	comps := components(expr, t)
	m, ok := t.(ir.MatrixType)
	if !ok {
		return [][]string{comps}
	}
	return lo.Times(int(m.Columns), func(c int) []string {
		return lo.Times(int(m.Rows), func(r int) string { return comps[r*int(m.Columns)+c] })
	})
}
