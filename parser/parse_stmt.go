package parser

import (
	"zedc/ast"
	"zedc/lexer"
	"zedc/source"
)

// parseStmt parses one statement per spec.md §4.4's grammar.
func (p *Parser) parseStmt() ast.Statement {
	switch p.tok.Kind {
	case lexer.TOK_LBRACE:
		return p.parseBlock()
	case lexer.TOK_IF:
		return p.parseIf()
	case lexer.TOK_WHILE:
		return p.parseWhile()
	case lexer.TOK_RETURN:
		return p.parseReturn()
	case lexer.TOK_ASM:
		return p.parseAsm()
	case lexer.TOK_IDENT:
		return p.parseAssignOrExprStmt()
	default:
		start := p.tok.Span
		expr := p.parseExpr()
		p.assert(lexer.TOK_SEMI)
		end := p.tok.Span
		p.next()
		return &ast.ExprStmt{Base: ast.NewBase(source.SpanOver(start, end)), Expr: expr}
	}
}

// parseBlock parses a brace-delimited statement sequence.
func (p *Parser) parseBlock() *ast.Block {
	start := p.tok.Span
	p.assert(lexer.TOK_LBRACE)
	p.next()

	var stmts []ast.Statement
	for !p.got(lexer.TOK_RBRACE) {
		stmts = append(stmts, p.parseStmt())
	}

	end := p.tok.Span
	p.next() // consume '}'

	return &ast.Block{Base: ast.NewBase(source.SpanOver(start, end)), Stmts: stmts}
}

func (p *Parser) parseIf() ast.Statement {
	start := p.tok.Span
	p.next() // consume 'if'
	p.assert(lexer.TOK_LPAREN)
	p.next()

	cond := p.parseExpr()

	p.assert(lexer.TOK_RPAREN)
	p.next()

	then := p.parseStmt()
	end := then.Span()

	var elseStmt ast.Statement
	if p.got(lexer.TOK_ELSE) {
		p.next()
		elseStmt = p.parseStmt()
		end = elseStmt.Span()
	}

	return &ast.If{Base: ast.NewBase(source.SpanOver(start, end)), Cond: cond, Then: then, Else: elseStmt}
}

func (p *Parser) parseWhile() ast.Statement {
	start := p.tok.Span
	p.next() // consume 'while'
	p.assert(lexer.TOK_LPAREN)
	p.next()

	cond := p.parseExpr()

	p.assert(lexer.TOK_RPAREN)
	p.next()

	body := p.parseStmt()

	return &ast.While{Base: ast.NewBase(source.SpanOver(start, body.Span())), Cond: cond, Body: body}
}

func (p *Parser) parseReturn() ast.Statement {
	start := p.tok.Span
	p.next() // consume 'return'

	var value ast.Expression
	if !p.got(lexer.TOK_SEMI) {
		value = p.parseExpr()
	}

	p.assert(lexer.TOK_SEMI)
	end := p.tok.Span
	p.next()

	return &ast.Return{Base: ast.NewBase(source.SpanOver(start, end)), Value: value}
}

// parseAssignOrExprStmt implements spec.md §4.4's assignment
// disambiguation: after an identifier, peek one token — `[` or `=` mean
// assignment, `(` means a call expression-statement, otherwise the
// parser backs off to a general expression statement.
func (p *Parser) parseAssignOrExprStmt() ast.Statement {
	start := p.tok.Span
	name := p.tok.Value
	p.next()

	switch p.tok.Kind {
	case lexer.TOK_LBRACKET:
		p.next()
		idx := p.parseExpr()
		p.assert(lexer.TOK_RBRACKET)
		p.next()

		p.assert(lexer.TOK_ASSIGN)
		p.next()

		value := p.parseExpr()
		p.assert(lexer.TOK_SEMI)
		end := p.tok.Span
		p.next()

		return &ast.Assign{Base: ast.NewBase(source.SpanOver(start, end)), Name: name, Index: idx, Value: value}
	case lexer.TOK_ASSIGN:
		p.next()
		value := p.parseExpr()
		p.assert(lexer.TOK_SEMI)
		end := p.tok.Span
		p.next()

		return &ast.Assign{Base: ast.NewBase(source.SpanOver(start, end)), Name: name, Value: value}
	default:
		// `(` (a call) and anything else both fall through here: the
		// identifier's tail is parsed once, then treated as the start
		// of a general expression so `foo() + 1;` and `foo();` both
		// parse as plain expression statements.
		expr := p.parseBinRHS(p.parseIdentTail(start, name), 1)
		p.assert(lexer.TOK_SEMI)
		end := p.tok.Span
		p.next()

		return &ast.ExprStmt{Base: ast.NewBase(source.SpanOver(start, end)), Expr: expr}
	}
}
