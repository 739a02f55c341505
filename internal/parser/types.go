package parser

import (
	"scooter/internal/ast"
	"scooter/internal/diag"
	"scooter/internal/token"
)

// parseType разбирает IDENT или `()`.
func (p *Parser) parseType() (*ast.TypeRef, bool) {
	switch p.lx.Peek().Kind {
	case token.Ident:
		tok := p.advance()
		return &ast.TypeRef{Name: tok.Text, Span: tok.Span}, true
	case token.LParen:
		open := p.advance()
		closeTok, ok := p.expect(token.RParen, diag.SynExpectType, "expected ')' in unit type '()'")
		if !ok {
			return nil, false
		}
		return &ast.TypeRef{Name: ast.UnitTypeName, Span: open.Span.Cover(closeTok.Span)}, true
	}
	p.err(diag.SynExpectType, "expected type, got "+p.lx.Peek().Kind.String())
	return nil, false
}
