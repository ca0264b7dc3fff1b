package parser

import (
	"zedc/ast"
	"zedc/lexer"
	"zedc/source"
)

// parseFunc parses `fn name(params);` (a predeclaration) or
// `fn name(params) { body }` (a definition), updating the function
// registry as it goes (spec.md §4.4).
func (p *Parser) parseFunc() ast.Item {
	start := p.tok.Span
	p.want(lexer.TOK_IDENT)
	name := p.tok.Value
	namespan := p.tok.Span
	p.next()

	params := p.parseParamList()

	if _, alreadyDeclared := p.declared[name]; !alreadyDeclared {
		p.declared[name] = namespan
	}

	if p.got(lexer.TOK_SEMI) {
		p.next()
		return &ast.FuncDecl{Base: ast.NewBase(source.SpanOver(start, namespan)), Name: name, Params: params}
	}

	if p.defined[name] {
		p.raiseAt(namespan, "function `%s` already defined", name)
	}

	body := p.parseBlock()
	p.defined[name] = true

	return &ast.FuncDef{
		Base:   ast.NewBase(source.SpanOver(start, body.Span())),
		Name:   name,
		Params: params,
		Body:   body,
	}
}

// parseParamList parses the parenthesized, comma-separated parameter
// name list. Parameter count is recorded but never checked against call
// sites or the definition's arity (spec.md §4.4 — no type checking).
func (p *Parser) parseParamList() []string {
	p.assert(lexer.TOK_LPAREN)
	p.next()

	var params []string
	for !p.got(lexer.TOK_RPAREN) {
		if len(params) > 0 {
			p.assert(lexer.TOK_COMMA)
			p.next()
		}
		p.assert(lexer.TOK_IDENT)
		params = append(params, p.tok.Value)
		p.next()
	}

	p.next() // consume ')'
	return params
}
