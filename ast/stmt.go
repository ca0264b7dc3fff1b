package ast

// Statement is implemented by every statement node.
type Statement interface {
	Node
	stmtNode()
}

// Assign is `name = expr` or, when Index is non-nil, the indexed form
// `name[index] = expr` (spec.md §3, §4.6).
type Assign struct {
	Base

	Name  string
	Index Expression // nil for a plain assignment
	Value Expression
}

func (*Assign) stmtNode() {}

// ExprStmt is an expression evaluated for its side effect and discarded,
// almost always a call (`f(args);`).
type ExprStmt struct {
	Base

	Expr Expression
}

func (*ExprStmt) stmtNode() {}

// Block is a brace-delimited statement sequence; it introduces one scope
// (spec.md §4.5).
type Block struct {
	Base

	Stmts []Statement
}

func (*Block) stmtNode() {}

// If is `if (cond) then (else else_)?`. Else is nil when absent.
type If struct {
	Base

	Cond Expression
	Then Statement
	Else Statement
}

func (*If) stmtNode() {}

// While is `while (cond) body`.
type While struct {
	Base

	Cond Expression
	Body Statement
}

func (*While) stmtNode() {}

// Return is `return expr?;`. Value is nil for a bare `return;`, which
// the code generator lowers as if it were `return 0;`.
type Return struct {
	Base

	Value Expression // nil
}

func (*Return) stmtNode() {}

// AsmOperand is one entry of an inline-asm clause list: a constraint
// string paired with either a bound identifier (outputs) or an
// expression (inputs). Constraint text is never interpreted by the
// compiler; it is kept on the node but the code generator does not emit
// it (spec.md §4.4).
type AsmOperand struct {
	Constraint string
	Ident      string     // set for output operands
	Expr       Expression // set for input operands
}

// Asm is an inline-assembly statement: `asm "template" : outputs :
// inputs : clobbers;`. Any of the three clause lists may be empty.
type Asm struct {
	Base

	Template string
	Outputs  []AsmOperand
	Inputs   []AsmOperand
	Clobbers []string
}

func (*Asm) stmtNode() {}
