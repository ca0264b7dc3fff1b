package ast

// Item is a top-level construct: a function predeclaration, a function
// definition, or a bare statement appearing outside any function
// (spec.md §3).
type Item interface {
	Node
	itemNode()
}

// FuncDecl is a predeclaration `fn name(params);` with no body. Parameter
// names are recorded but their count is never checked against a later
// definition or call site (spec.md §4.4 — no type checking).
type FuncDecl struct {
	Base

	Name   string
	Params []string
}

func (*FuncDecl) itemNode() {}

// FuncDef is a function definition `fn name(params) { body }`.
type FuncDef struct {
	Base

	Name   string
	Params []string
	Body   *Block
}

func (*FuncDef) itemNode() {}

// TopLevelStmt wraps a Statement that appears outside any function. In
// the main unit these are collected into the synthesized `_start`;
// anywhere else they are a hard error (spec.md §4.6).
type TopLevelStmt struct {
	Base

	Stmt Statement
}

func (*TopLevelStmt) itemNode() {}
