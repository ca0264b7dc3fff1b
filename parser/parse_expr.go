package parser

import (
	"strconv"

	"zedc/ast"
	"zedc/lexer"
	"zedc/source"
)

// binPrec gives each binary operator's climbing precedence, low to high,
// per spec.md §4.4: `||`; `&&`; `== !=`; `< > <= >=`; `+ -`; `* /`.
var binPrec = map[lexer.Kind]int{
	lexer.TOK_LOR:   1,
	lexer.TOK_LAND:  2,
	lexer.TOK_EQ:    3,
	lexer.TOK_NEQ:   3,
	lexer.TOK_LT:    4,
	lexer.TOK_GT:    4,
	lexer.TOK_LTEQ:  4,
	lexer.TOK_GTEQ:  4,
	lexer.TOK_PLUS:  5,
	lexer.TOK_MINUS: 5,
	lexer.TOK_STAR:  6,
	lexer.TOK_SLASH: 6,
}

var binOpFor = map[lexer.Kind]ast.BinOp{
	lexer.TOK_LOR:   ast.BinOr,
	lexer.TOK_LAND:  ast.BinAnd,
	lexer.TOK_EQ:    ast.BinEq,
	lexer.TOK_NEQ:   ast.BinNeq,
	lexer.TOK_LT:    ast.BinLt,
	lexer.TOK_GT:    ast.BinGt,
	lexer.TOK_LTEQ:  ast.BinLtEq,
	lexer.TOK_GTEQ:  ast.BinGtEq,
	lexer.TOK_PLUS:  ast.BinAdd,
	lexer.TOK_MINUS: ast.BinSub,
	lexer.TOK_STAR:  ast.BinMul,
	lexer.TOK_SLASH: ast.BinDiv,
}

// parseExpr parses a full expression by precedence climbing from a unary
// operand (spec.md §4.4). All binary operators are left-associative.
func (p *Parser) parseExpr() ast.Expression {
	return p.parseBinRHS(p.parseUnary(), 1)
}

// parseBinRHS extends left with any binary operators at precedence
// minPrec or higher, left-associatively.
func (p *Parser) parseBinRHS(left ast.Expression, minPrec int) ast.Expression {
	for {
		prec, ok := binPrec[p.tok.Kind]
		if !ok || prec < minPrec {
			return left
		}

		op := binOpFor[p.tok.Kind]
		p.next()
		right := p.parseUnary()

		for {
			nextPrec, ok := binPrec[p.tok.Kind]
			if !ok || nextPrec <= prec {
				break
			}
			right = p.parseBinRHS(right, prec+1)
		}

		left = &ast.Binary{
			Base:  ast.NewBase(source.SpanOver(left.Span(), right.Span())),
			Op:    op,
			Left:  left,
			Right: right,
		}
	}
}

// parseUnary parses unary minus, the only prefix operator, or falls
// through to a primary.
func (p *Parser) parseUnary() ast.Expression {
	if p.got(lexer.TOK_MINUS) {
		start := p.tok.Span
		p.next()
		operand := p.parseUnary()
		return &ast.Unary{Base: ast.NewBase(source.SpanOver(start, operand.Span())), Operand: operand}
	}

	return p.parsePrimary()
}

// parsePrimary parses an integer, string, identifier (possibly extended
// into a call or indexed read), or a parenthesized sub-expression.
func (p *Parser) parsePrimary() ast.Expression {
	switch p.tok.Kind {
	case lexer.TOK_INTLIT:
		span := p.tok.Span
		v, err := parseIntLiteral(p.tok.Value)
		if err != nil {
			p.raise("malformed integer literal `%s`", p.tok.Value)
		}
		p.next()
		return &ast.IntLit{Base: ast.NewBase(span), Value: v}
	case lexer.TOK_STRINGLIT:
		span := p.tok.Span
		v := p.tok.Value
		p.next()
		return &ast.StringLit{Base: ast.NewBase(span), Value: v}
	case lexer.TOK_IDENT:
		start := p.tok.Span
		name := p.tok.Value
		p.next()
		return p.parseIdentTail(start, name)
	case lexer.TOK_LPAREN:
		p.next()
		e := p.parseExpr()
		p.assert(lexer.TOK_RPAREN)
		p.next()
		return e
	default:
		p.reject()
		return nil
	}
}

// parseIdentTail builds the expression rooted at an already-consumed
// identifier: a call if the current token is `(`, an indexed read if it
// is `[`, or a bare variable read otherwise.
func (p *Parser) parseIdentTail(start source.Span, name string) ast.Expression {
	switch p.tok.Kind {
	case lexer.TOK_LPAREN:
		p.next()
		var args []ast.Expression
		for !p.got(lexer.TOK_RPAREN) {
			if len(args) > 0 {
				p.assert(lexer.TOK_COMMA)
				p.next()
			}
			args = append(args, p.parseExpr())
		}
		end := p.tok.Span
		p.next() // consume ')'
		return &ast.Call{Base: ast.NewBase(source.SpanOver(start, end)), Name: name, Args: args}
	case lexer.TOK_LBRACKET:
		p.next()
		idx := p.parseExpr()
		p.assert(lexer.TOK_RBRACKET)
		end := p.tok.Span
		p.next() // consume ']'
		return &ast.Index{Base: ast.NewBase(source.SpanOver(start, end)), Array: &ast.Ident{Base: ast.NewBase(start), Name: name}, Idx: idx}
	default:
		return &ast.Ident{Base: ast.NewBase(start), Name: name}
	}
}

func parseIntLiteral(text string) (int64, error) {
	if len(text) > 1 && (text[1] == 'x' || text[1] == 'X') {
		return strconv.ParseInt(text[2:], 16, 64)
	}
	return strconv.ParseInt(text, 10, 64)
}
