// Package ast defines the Zed abstract syntax tree: a sum over items,
// statements, expressions, and the inline-assembly clause lists
// (spec.md §3).
package ast

import "zedc/source"

// Node is implemented by every AST node.
type Node interface {
	Span() source.Span
}

// Base is embedded by every concrete node to carry its span.
type Base struct {
	span source.Span
}

// NewBase creates a Base over the given span.
func NewBase(span source.Span) Base {
	return Base{span: span}
}

func (b Base) Span() source.Span {
	return b.span
}

// Program is the flattened top-level item sequence of one translation
// unit, after include splicing (spec.md §4.3).
type Program struct {
	Items []Item
}
