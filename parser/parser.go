// Package parser implements the recursive-descent parser that turns a
// Zed token stream into an AST, splicing included units in as it goes
// and tracking the declared/defined function registry (spec.md §4.4).
package parser

import (
	"fmt"
	"path/filepath"

	"zedc/ast"
	"zedc/include"
	"zedc/lexer"
	"zedc/report"
	"zedc/source"
)

// Parser parses one translation unit. All parsing methods assume they
// begin centered on the first token of their production and leave the
// parser positioned on the token immediately after it — the same
// contract the teacher's recursive-descent parser uses. Errors are never
// returned: a parse function that detects a defect calls p.raise, which
// panics up to the caller's recover point, per the "first error, one
// message, stop" contract.
type Parser struct {
	mgr *source.Manager
	inc *include.Resolver

	unit *source.Unit
	lex  *lexer.Lexer
	tok  *lexer.Token

	// declared and defined implement the function registry (spec.md
	// §3): declared holds every name predeclared or defined so far;
	// defined holds only names whose body has been seen.
	declared map[string]source.Span
	defined  map[string]bool
}

// New creates a parser for unit, sharing mgr and inc across every unit
// reached by way of `@include` from it.
func New(mgr *source.Manager, inc *include.Resolver, unit *source.Unit) *Parser {
	p := &Parser{
		mgr:      mgr,
		inc:      inc,
		unit:     unit,
		lex:      lexer.NewLexer(unit),
		declared: make(map[string]source.Span),
		defined:  make(map[string]bool),
	}
	p.next()
	return p
}

// ParseProgram parses the whole translation unit, including every unit
// transitively reached through `@include`, and validates the function
// registry at the end (spec.md §4.4's post-parse validation).
//
// It marks its own unit as loading in the include resolver before
// parsing anything, exactly as parseInclude does for a unit it reaches
// by directive — otherwise a cycle that loops back through this, the
// root unit, would go undetected at the directive that actually closes
// it, since only `@include`-reached units would ever be registered.
func (p *Parser) ParseProgram() *ast.Program {
	p.inc.Enter(p.unit.AbsPath, p.unit.ReprPath)
	defer p.inc.Leave(p.unit.AbsPath)

	prog := &ast.Program{Items: p.parseItems()}

	for name, span := range p.declared {
		if !p.defined[name] {
			p.raiseAt(span, "function `%s` declared but not defined", name)
		}
	}

	return prog
}

// parseItems parses this unit's top-level item sequence, with included
// units' items spliced in at the point of their directive (spec.md
// §4.3). The function registry accumulates across every unit reached
// from this parser; validation of it happens once, at the root call to
// ParseProgram.
func (p *Parser) parseItems() []ast.Item {
	var items []ast.Item
	for p.tok.Kind != lexer.TOK_EOF {
		items = append(items, p.parseTopLevel()...)
	}
	return items
}

// -----------------------------------------------------------------------------

func (p *Parser) next() {
	p.tok = p.lex.NextToken()
}

func (p *Parser) got(kind lexer.Kind) bool {
	return p.tok.Kind == kind
}

func (p *Parser) assert(kind lexer.Kind) {
	if !p.got(kind) {
		p.reject()
	}
}

// want moves forward and asserts the new token's kind, leaving the
// parser positioned on it.
func (p *Parser) want(kind lexer.Kind) {
	p.next()
	p.assert(kind)
}

func (p *Parser) reject() {
	if p.tok.Kind == lexer.TOK_EOF {
		p.raise("unexpected end of file")
	}
	p.raise("unexpected token `%s`", p.tok.Value)
}

func (p *Parser) raise(msg string, args ...interface{}) {
	p.raiseAt(p.tok.Span, msg, args...)
}

func (p *Parser) raiseAt(span source.Span, msg string, args ...interface{}) {
	report.Raise(p.unit.ToTextSpan(span), fmt.Sprintf(msg, args...))
}

// -----------------------------------------------------------------------------

// parseTopLevel parses one top-level construct and returns the items it
// contributes: zero or more for an include directive (spliced in from
// the included unit), exactly one otherwise.
func (p *Parser) parseTopLevel() []ast.Item {
	switch p.tok.Kind {
	case lexer.TOK_INCLUDE:
		return p.parseInclude()
	case lexer.TOK_FN:
		return []ast.Item{p.parseFunc()}
	default:
		start := p.tok.Span
		stmt := p.parseStmt()
		item := &ast.TopLevelStmt{Base: ast.NewBase(source.SpanOver(start, stmt.Span())), Stmt: stmt}
		return []ast.Item{item}
	}
}

// parseInclude parses `@include "path";`, resolves it against the
// stdlib root or the including unit's directory, and if the target
// hasn't already been loaded, recursively lexes and parses it. Its
// items are returned for splicing into the including unit's item
// sequence at the point of the directive, preserving source order
// (spec.md §4.3).
func (p *Parser) parseInclude() []ast.Item {
	p.next() // consume '@include'
	p.assert(lexer.TOK_STRINGLIT)
	pathText := p.tok.Value
	includeSpan := p.tok.Span
	p.next()
	p.assert(lexer.TOK_SEMI)
	p.next()

	id := p.inc.Resolve(pathText, filepath.Dir(p.unit.AbsPath))

	switch p.inc.Enter(id, pathText) {
	case include.StatusSkip:
		return nil
	case include.StatusCycle:
		p.raiseAt(includeSpan, "circular include: %s and %s include each other", p.inc.ReprPath(id), p.unit.ReprPath)
		return nil
	}

	incUnit, err := p.mgr.Load(id, pathText)
	if err != nil {
		p.raiseAt(includeSpan, "couldn't read %s", pathText)
		return nil
	}

	sub := New(p.mgr, p.inc, incUnit)
	items := sub.parseItems()

	for name, span := range sub.declared {
		if _, ok := p.declared[name]; !ok {
			p.declared[name] = span
		}
	}
	for name := range sub.defined {
		p.defined[name] = true
	}

	p.inc.Leave(id)
	return items
}
