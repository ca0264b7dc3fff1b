package ast

// Expression is implemented by every expression node.
type Expression interface {
	Node
	exprNode()
}

// BinOp enumerates binary operators, ordered low-to-high by the
// precedence-climbing grammar in spec.md §4.4.
type BinOp int

const (
	BinOr BinOp = iota
	BinAnd
	BinEq
	BinNeq
	BinLt
	BinGt
	BinLtEq
	BinGtEq
	BinAdd
	BinSub
	BinMul
	BinDiv
)

// IntLit is a decimal or hex integer literal, already decoded by the
// parser from the lexer's literal text.
type IntLit struct {
	Base

	Value int64
}

func (*IntLit) exprNode() {}

// StringLit is a string literal; Value holds the already-unescaped
// bytes the string will occupy in `.rodata` (spec.md §4.6).
type StringLit struct {
	Base

	Value string
}

func (*StringLit) exprNode() {}

// Ident is a bare variable read.
type Ident struct {
	Base

	Name string
}

func (*Ident) exprNode() {}

// Index is an indexed read `base[index]`. Arrays are treated as flat
// byte arrays (spec.md §4.6): the result is a single byte, zero-extended.
type Index struct {
	Base

	Array Expression
	Idx   Expression
}

func (*Index) exprNode() {}

// Call is `name(args)`. The callee is always a bare identifier: Zed has
// no first-class function values.
type Call struct {
	Base

	Name string
	Args []Expression
}

func (*Call) exprNode() {}

// Unary is unary minus, the only prefix operator (spec.md §4.4).
type Unary struct {
	Base

	Operand Expression
}

func (*Unary) exprNode() {}

// Binary is a left-associative binary operator application.
type Binary struct {
	Base

	Op          BinOp
	Left, Right Expression
}

func (*Binary) exprNode() {}
