package parser

import (
	"zedc/ast"
	"zedc/lexer"
	"zedc/source"
)

// parseAsm parses `asm "template" (: outputs (: inputs (: clobbers)?)?)?;`
// (spec.md §4.4). Any of the three clause lists may be entirely absent
// along with its leading colon, or present but empty.
func (p *Parser) parseAsm() ast.Statement {
	start := p.tok.Span
	p.next() // consume 'asm'

	p.assert(lexer.TOK_STRINGLIT)
	template := p.tok.Value
	p.next()

	stmt := &ast.Asm{Template: template}

	if p.got(lexer.TOK_COLON) {
		p.next()
		stmt.Outputs = p.parseAsmOperandList(true)
	}
	if p.got(lexer.TOK_COLON) {
		p.next()
		stmt.Inputs = p.parseAsmOperandList(false)
	}
	if p.got(lexer.TOK_COLON) {
		p.next()
		stmt.Clobbers = p.parseClobberList()
	}

	p.assert(lexer.TOK_SEMI)
	end := p.tok.Span
	p.next()

	stmt.Base = ast.NewBase(source.SpanOver(start, end))
	return stmt
}

// parseAsmOperandList parses a comma-separated list of `"constraint"[operand]`
// entries. Outputs bind an identifier; inputs bind an expression. The
// list may be empty (an immediate `:` or end of clauses).
func (p *Parser) parseAsmOperandList(isOutput bool) []ast.AsmOperand {
	var ops []ast.AsmOperand
	for p.got(lexer.TOK_STRINGLIT) {
		constraint := p.tok.Value
		p.next()

		p.assert(lexer.TOK_LBRACKET)
		p.next()

		var op ast.AsmOperand
		op.Constraint = constraint
		if isOutput {
			p.assert(lexer.TOK_IDENT)
			op.Ident = p.tok.Value
			p.next()
		} else {
			op.Expr = p.parseExpr()
		}

		p.assert(lexer.TOK_RBRACKET)
		p.next()

		ops = append(ops, op)

		if p.got(lexer.TOK_COMMA) {
			p.next()
			continue
		}
		break
	}
	return ops
}

// parseClobberList parses a comma-separated list of quoted register
// names. May be empty.
func (p *Parser) parseClobberList() []string {
	var clobbers []string
	for p.got(lexer.TOK_STRINGLIT) {
		clobbers = append(clobbers, p.tok.Value)
		p.next()

		if p.got(lexer.TOK_COMMA) {
			p.next()
			continue
		}
		break
	}
	return clobbers
}
