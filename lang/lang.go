// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package lang

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/gogpu/shadermath/ir"
)

// Language is a shading-language target.
type Language uint8

const (
	// HLSL is the High-Level Shading Language (Shader Model 6, HLSL 2021).
	HLSL Language = iota

	// WGSL is the WebGPU Shading Language.
	WGSL

	// GLSL is the OpenGL Shading Language (4.50 core).
	GLSL

	// MSL is the Metal Shading Language.
	MSL
)

// String returns the lower-case language name.
func (l Language) String() string {
	switch l {
	case HLSL:
		return "hlsl"
	case WGSL:
		return "wgsl"
	case GLSL:
		return "glsl"
	case MSL:
		return "msl"
	default:
		return fmt.Sprintf("Language(%d)", uint8(l))
	}
}

// Languages lists every supported target.
func Languages() []Language {
	return []Language{HLSL, WGSL, GLSL, MSL}
}

// ParseLanguage returns the language named s, ignoring case.
func ParseLanguage(s string) (Language, error) {
	for _, l := range Languages() {
		if strings.EqualFold(s, l.String()) {
			return l, nil
		}
	}
	return 0, &Error{Language: Language(0xff), Kind: ErrUnknownLanguage, Message: fmt.Sprintf("unknown language %q", s)}
}

// dialect holds the target-specific parts of the spelling. The shared
// flow in Expression validates operand counts and types before calling
// into it, so its methods cannot fail.
type dialect interface {
	typeName(t ir.TypeInner) (string, error)
	splat(t ir.TypeInner, value string) string
	cell(base string, c cell) string
	storeSwizzle(in *ir.Intrinsic, base, value string) string
	cellSwizzle(t ir.TypeInner, base string, cells []cell) string
	storeCells(base string, cells []cell, value string) string
	unary(in *ir.Intrinsic, operand string) string
	binary(in *ir.Intrinsic, left, right string) string
	cast(t ir.TypeInner, operand string) string
	multiply(left, right string) string
}

func dialectOf(l Language) (dialect, error) {
	switch l {
	case HLSL:
		return hlslDialect{}, nil
	case WGSL:
		return wgslDialect{}, nil
	case GLSL:
		return glslDialect{}, nil
	case MSL:
		return mslDialect{}, nil
	default:
		return nil, newError(l, ErrUnknownLanguage, "no dialect for %s", l)
	}
}

// TypeName returns the spelling of t in language l.
func TypeName(l Language, t ir.TypeInner) (string, error) {
	d, err := dialectOf(l)
	if err != nil {
		return "", err
	}
	if err := ir.ValidateType(t); err != nil {
		return "", newError(l, ErrUnsupportedType, "%v", err)
	}
	return d.typeName(t)
}

// Expression spells the member described by in, applied to the given
// operand expressions, in language l.
//
// For package-level functions the operands are the arguments. For methods
// operands[0] is the receiver followed by the Go parameters in order; cell
// swizzles take their Cell parameters as constant names ("M12",
// "hlsl.M12" or "0x12"). Stores are returned as assignment statements
// without a terminating semicolon.
func Expression(l Language, in ir.Intrinsic, operands ...string) (string, error) {
	d, err := dialectOf(l)
	if err != nil {
		return "", err
	}
	if in.Kind == ir.IntrinsicBitcast {
		return "", newError(l, ErrUnsupportedIntrinsic, "%s reinterprets as host type %s", in, in.Host)
	}
	if want := operandCount(&in); len(operands) != want {
		return "", newError(l, ErrOperandCount, "%s takes %d operands, got %d", in, want, len(operands))
	}
	for _, t := range involved(&in) {
		if _, err := TypeName(l, t); err != nil {
			return "", fmt.Errorf("%s: %w", in, err)
		}
	}

	owner := in.Owner.Inner
	switch in.Kind {
	case ir.IntrinsicCompose:
		name, _ := d.typeName(owner)
		return name + "(" + strings.Join(operands, ", ") + ")", nil

	case ir.IntrinsicSplat:
		return d.splat(owner, operands[0]), nil

	case ir.IntrinsicAccessIndex:
		if _, ok := owner.(ir.MatrixType); ok {
			return d.cell(operands[0], cell{row: int(in.Row), col: int(in.Column)}), nil
		}
		return group(operands[0]) + "." + ir.SwizzleString(in.Pattern, in.Color), nil

	case ir.IntrinsicSwizzle:
		return group(operands[0]) + "." + ir.SwizzleString(in.Pattern, in.Color), nil

	case ir.IntrinsicStoreSwizzle:
		if !ir.IsDistinct(in.Pattern) {
			return "", newError(l, ErrAliasedStore, "%s stores through repeated components", in)
		}
		return d.storeSwizzle(&in, operands[0], operands[1]), nil

	case ir.IntrinsicAccess:
		return index(owner, operands[0], operands[1]), nil

	case ir.IntrinsicStoreAccess:
		return index(owner, operands[0], operands[1]) + " = " + operands[2], nil

	case ir.IntrinsicCellSwizzle, ir.IntrinsicStoreCellSwizzle:
		k := cellArity(&in)
		cells, err := parseCells(l, &in, operands[1:1+k])
		if err != nil {
			return "", err
		}
		if in.Kind == ir.IntrinsicCellSwizzle {
			return d.cellSwizzle(in.Result, operands[0], cells), nil
		}
		if !distinctCells(cells) {
			return "", newError(l, ErrAliasedStore, "%s stores through repeated cells", in)
		}
		return d.storeCells(operands[0], cells, operands[1+k]), nil

	case ir.IntrinsicUnary:
		return d.unary(&in, operands[0]), nil

	case ir.IntrinsicBinary:
		left, right := operands[0], operands[1]
		if in.Reversed {
			left, right = right, left
		}
		return d.binary(&in, left, right), nil

	case ir.IntrinsicAs:
		return d.cast(in.Result, operands[0]), nil

	case ir.IntrinsicMultiply:
		return d.multiply(operands[0], operands[1]), nil

	default:
		return "", newError(l, ErrUnsupportedIntrinsic, "%s has unknown kind %s", in, in.Kind)
	}
}

func operandCount(in *ir.Intrinsic) int {
	switch {
	case in.Function:
		return len(in.Args)
	case in.Kind == ir.IntrinsicCellSwizzle:
		return 1 + cellArity(in)
	case in.Kind == ir.IntrinsicStoreCellSwizzle:
		return 2 + cellArity(in)
	default:
		return 1 + len(in.Args)
	}
}

func cellArity(in *ir.Intrinsic) int {
	if in.Kind == ir.IntrinsicCellSwizzle {
		return ir.Components(in.Result)
	}
	if len(in.Args) == 0 {
		return 0
	}
	return ir.Components(in.Args[0])
}

// involved returns the model types an intrinsic touches.
func involved(in *ir.Intrinsic) []ir.TypeInner {
	types := []ir.TypeInner{in.Owner.Inner}
	types = append(types, in.Args...)
	if in.Result != nil {
		types = append(types, in.Result)
	}
	return types
}

// index spells a dynamic component or row access. Rows are counted from 1
// on the host and from 0 in every target.
func index(owner ir.TypeInner, base, i string) string {
	if _, ok := owner.(ir.MatrixType); ok {
		return group(base) + "[" + zeroBased(i) + "]"
	}
	return group(base) + "[" + i + "]"
}

func zeroBased(i string) string {
	if n, err := strconv.Atoi(i); err == nil {
		return strconv.Itoa(n - 1)
	}
	return group(i) + " - 1"
}

// cell is a 1-based matrix cell position.
type cell struct {
	row, col int
}

func parseCells(l Language, in *ir.Intrinsic, operands []string) ([]cell, error) {
	m, ok := in.Owner.Inner.(ir.MatrixType)
	if !ok {
		return nil, newError(l, ErrUnsupportedIntrinsic, "%s: cell swizzle on %s", in, ir.TypeString(in.Owner.Inner))
	}
	cells := make([]cell, len(operands))
	for i, op := range operands {
		c, ok := parseCell(op)
		if !ok {
			return nil, newError(l, ErrNonConstantCell, "%s: operand %q is not a constant cell", in, op)
		}
		if c.row < 1 || c.row > int(m.Rows) || c.col < 1 || c.col > int(m.Columns) {
			return nil, newError(l, ErrCellOutOfRange, "%s: cell M%d%d outside %s", in, c.row, c.col, m)
		}
		cells[i] = c
	}
	return cells, nil
}

func parseCell(s string) (cell, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "hlsl.")
	var digits string
	switch {
	case len(s) == 3 && s[0] == 'M':
		digits = s[1:]
	case len(s) == 4 && (strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")):
		digits = s[2:]
	default:
		return cell{}, false
	}
	row, col := int(digits[0]-'0'), int(digits[1]-'0')
	if row < 1 || row > 4 || col < 1 || col > 4 {
		return cell{}, false
	}
	return cell{row: row, col: col}, true
}

func distinctCells(cells []cell) bool {
	seen := make(map[cell]bool, len(cells))
	for _, c := range cells {
		if seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

// group parenthesizes an operand unless it is a plain name, a literal, a
// member or index chain, or already fully parenthesized.
func group(s string) string {
	if isParenthesized(s) || isCall(s) {
		return s
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '.' && r != '[' && r != ']' {
			return "(" + s + ")"
		}
	}
	return s
}

// isCall reports whether s is a single call such as vec4<u32>(b) or
// metal::fmod(a, b).
func isCall(s string) bool {
	open := strings.IndexByte(s, '(')
	if open <= 0 {
		return false
	}
	for _, r := range s[:open] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune("_:<>", r) {
			return false
		}
	}
	return isParenthesized(s[open:])
}

func isParenthesized(s string) bool {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(s)-1 {
				return false
			}
		}
	}
	return depth == 0
}

func infix(left, op, right string) string {
	return "(" + group(left) + " " + op + " " + group(right) + ")"
}

func call(name string, args ...string) string {
	return name + "(" + strings.Join(args, ", ") + ")"
}

// columnwise applies f to every column of column-major matrix operands
// and rebuilds the matrix. A host matrix of R rows has R columns in the
// column-major targets.
func columnwise(typeName string, m ir.MatrixType, left, right string, f func(l, r string) string) string {
	columns := make([]string, m.Rows)
	for i := range columns {
		suffix := "[" + strconv.Itoa(i) + "]"
		columns[i] = f(group(left)+suffix, group(right)+suffix)
	}
	return call(typeName, columns...)
}

// componentwise applies f to every component of vector operands and
// rebuilds the vector.
func componentwise(typeName string, v ir.VectorType, left, right string, f func(l, r string) string) string {
	components := make([]string, v.Size)
	for i := range components {
		letter := "." + string(ir.SwizzleComponent(i).Letter(false))
		components[i] = f(group(left)+letter, group(right)+letter)
	}
	return call(typeName, components...)
}

// columnCell spells cell c of a column-major matrix.
func columnCell(base string, c cell) string {
	return fmt.Sprintf("%s[%d][%d]", group(base), c.row-1, c.col-1)
}

func columnCellSwizzle(typeName, base string, cells []cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = columnCell(base, c)
	}
	return call(typeName, parts...)
}

func columnStoreCells(base string, cells []cell, value string) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = columnCell(base, c) + " = " + group(value) + "." + string(ir.SwizzleComponent(i).Letter(false))
	}
	return strings.Join(parts, "; ")
}

// columnSplat broadcasts a scalar into every column. Column-major matrix
// constructors treat a single scalar as a diagonal.
func columnSplat(matrixName, columnName string, m ir.MatrixType, value string) string {
	columns := make([]string, m.Rows)
	for i := range columns {
		columns[i] = call(columnName, value)
	}
	return call(matrixName, columns...)
}

// isComponentwiseProduct reports whether a binary member multiplies,
// divides or takes the remainder of two matrices, which the column-major
// targets do not spell with a single operator.
func isComponentwiseProduct(in *ir.Intrinsic) bool {
	if _, ok := in.Owner.Inner.(ir.MatrixType); !ok {
		return false
	}
	if _, ok := in.Args[0].(ir.MatrixType); !ok {
		return false
	}
	switch in.Binary {
	case ir.BinaryMultiply, ir.BinaryDivide, ir.BinaryModulo:
		return true
	}
	return false
}
