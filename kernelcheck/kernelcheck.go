// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package kernelcheck defines an analyzer that reports host code calling
// kernel-only members of the hlsl value types.
//
// Kernel-only members (operators, dynamic indexing, matrix cell swizzles,
// explicit casts) only have a meaning once a kernel body is translated to
// a shading language; on the host they panic. A kernel body is a method
// Execute() (the hlsl.ComputeShader entry point) or a function whose doc
// comment carries the //hlsl:kernel directive. Function literals inside a
// kernel body belong to it.
//
// Method values and method expressions of kernel-only members are
// reported like calls.
//
// The analyzer also requires cell arguments of matrix cell swizzles to be
// constants, and rejects cells outside the matrix shape, cell stores
// through repeated cells, and constant component or row indices out of
// range.
//
// Usage:
//
//	go vet -vettool=$(which kernelcheck) ./...
package kernelcheck

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/gogpu/shadermath/hlsl"
	"github.com/gogpu/shadermath/ir"
)

// Directive marks a function as kernel code.
const Directive = "//hlsl:kernel"

const hlslPath = "github.com/gogpu/shadermath/hlsl"

// Analyzer reports host calls of kernel-only members.
var Analyzer = &analysis.Analyzer{
	Name:      "kernelcheck",
	Doc:       "report kernel-only hlsl members called outside kernel bodies",
	URL:       "https://pkg.go.dev/github.com/gogpu/shadermath/kernelcheck",
	Requires:  []*analysis.Analyzer{inspect.Analyzer},
	Run:       run,
	FactTypes: []analysis.Fact{new(kernelOnly)},
}

// kernelOnly is exported for every function carrying the directive.
type kernelOnly struct{}

func (*kernelOnly) AFact() {}

func (*kernelOnly) String() string { return "kernelOnly" }

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		decl := n.(*ast.FuncDecl)
		if !hasDirective(decl.Doc) {
			return
		}
		if fn, ok := pass.TypesInfo.Defs[decl.Name].(*types.Func); ok {
			pass.ExportObjectFact(fn, new(kernelOnly))
		}
	})

	nodes := []ast.Node{(*ast.Ident)(nil), (*ast.CallExpr)(nil)}
	insp.WithStack(nodes, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}
		switch n := n.(type) {
		case *ast.Ident:
			// Calls, method values and method expressions all name the
			// function through an identifier.
			fn, ok := pass.TypesInfo.Uses[n].(*types.Func)
			if ok && isKernelOnly(pass, fn) && !inKernel(stack) {
				pass.Reportf(n.Pos(), "%s is kernel-only and panics on the host; use it from an Execute method or a %s function",
					describe(fn), Directive)
			}
		case *ast.CallExpr:
			if fn, ok := typeutil.Callee(pass.TypesInfo, n).(*types.Func); ok {
				checkConstants(pass, n, fn)
			}
		}
		return true
	})
	return nil, nil
}

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == Directive {
			return true
		}
	}
	return false
}

// isKernelDecl reports whether decl is a kernel body.
func isKernelDecl(decl *ast.FuncDecl) bool {
	if hasDirective(decl.Doc) {
		return true
	}
	return decl.Recv != nil && decl.Name.Name == "Execute" &&
		decl.Type.Params.NumFields() == 0 && decl.Type.Results.NumFields() == 0
}

func inKernel(stack []ast.Node) bool {
	for _, n := range stack {
		if decl, ok := n.(*ast.FuncDecl); ok {
			return isKernelDecl(decl)
		}
	}
	return false
}

func isKernelOnly(pass *analysis.Pass, fn *types.Func) bool {
	if pass.ImportObjectFact(fn, new(kernelOnly)) {
		return true
	}
	owner, ok := hlslOwner(fn)
	if !ok {
		return false
	}
	in, ok := hlsl.LookupIntrinsic(owner, fn.Name())
	return ok && in.KernelOnly
}

// hlslOwner returns the name of the hlsl type fn is a method of.
func hlslOwner(fn *types.Func) (string, bool) {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return "", false
	}
	t := sig.Recv().Type()
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() == nil || named.Obj().Pkg().Path() != hlslPath {
		return "", false
	}
	return named.Obj().Name(), true
}

func describe(fn *types.Func) string {
	if owner, ok := hlslOwner(fn); ok {
		return owner + "." + fn.Name()
	}
	sig := fn.Type().(*types.Signature)
	if recv := sig.Recv(); recv != nil {
		t := recv.Type()
		if p, ok := t.(*types.Pointer); ok {
			t = p.Elem()
		}
		if named, ok := t.(*types.Named); ok {
			return named.Obj().Name() + "." + fn.Name()
		}
	}
	if fn.Pkg() != nil {
		return fn.Pkg().Name() + "." + fn.Name()
	}
	return fn.Name()
}

// checkConstants validates constant cell and index arguments against the
// receiver's shape.
func checkConstants(pass *analysis.Pass, call *ast.CallExpr, fn *types.Func) {
	owner, ok := hlslOwner(fn)
	if !ok {
		return
	}
	typ, ok := hlsl.LookupType(owner)
	if !ok {
		return
	}

	name := fn.Name()
	switch inner := typ.Inner.(type) {
	case ir.VectorType:
		if name == "Index" || name == "SetIndex" {
			if i, ok := intArg(pass, call, 0); ok && (i < 0 || i >= int64(inner.Size)) {
				pass.Reportf(call.Args[0].Pos(), "constant index %d out of range for %s", i, owner)
			}
		}
	case ir.MatrixType:
		switch {
		case name == "Row" || name == "SetRow":
			if i, ok := intArg(pass, call, 0); ok && (i < 1 || i > int64(inner.Rows)) {
				pass.Reportf(call.Args[0].Pos(), "constant row %d out of range for %s; rows count from 1", i, owner)
			}
		case strings.HasPrefix(name, "Cells") || strings.HasPrefix(name, "SetCells"):
			checkCells(pass, call, owner, inner, strings.HasPrefix(name, "Set"))
		}
	}
}

func checkCells(pass *analysis.Pass, call *ast.CallExpr, owner string, m ir.MatrixType, store bool) {
	k := len(call.Args)
	if store {
		k--
	}
	seen := make(map[hlsl.Cell]bool, k)
	for i := 0; i < k; i++ {
		v, ok := intArg(pass, call, i)
		if !ok {
			pass.Reportf(call.Args[i].Pos(), "%s cell arguments must be constants", owner)
			continue
		}
		c := hlsl.Cell(v)
		if !c.In(int(m.Rows), int(m.Columns)) {
			pass.Reportf(call.Args[i].Pos(), "cell %s outside %s", cellName(v), owner)
			continue
		}
		if store && seen[c] {
			pass.Reportf(call.Args[i].Pos(), "%s.SetCells%d stores through repeated cell %s", owner, k, c)
		}
		seen[c] = true
	}
}

func cellName(v int64) string {
	if v < 0 || v > 0xff {
		return fmt.Sprintf("%#x", v)
	}
	return hlsl.Cell(v).String()
}

// intArg returns the value of argument i when it is an integer constant.
func intArg(pass *analysis.Pass, call *ast.CallExpr, i int) (int64, bool) {
	if i >= len(call.Args) {
		return 0, false
	}
	tv, ok := pass.TypesInfo.Types[call.Args[i]]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.Int {
		return 0, false
	}
	return constant.Int64Val(tv.Value)
}
