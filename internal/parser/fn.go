package parser

import (
	"scooter/internal/ast"
	"scooter/internal/diag"
	"scooter/internal/token"
)

// parseFn разбирает `fn name(params) -> type { ... }`.
// owner != "" означает метод внутри impl: тогда допускается `self` первым параметром.
func (p *Parser) parseFn(owner string) (*ast.FnDecl, bool) {
	fnTok := p.advance() // 'fn'
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	fn := &ast.FnDecl{Name: name, Owner: owner}

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after function name"); !ok {
		return nil, false
	}
	if fn.Params, ok = p.parseParams(owner); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Arrow, diag.SynExpectArrow, "expected '->' and a return type"); !ok {
		return nil, false
	}
	if fn.ReturnType, ok = p.parseType(); !ok {
		return nil, false
	}
	if fn.Body, ok = p.parseBlock(); !ok {
		return nil, false
	}
	fn.Span = fnTok.Span.Cover(fn.Body.Span)
	return fn, true
}

// parseParams разбирает список параметров после '(' включая ')'.
func (p *Parser) parseParams(owner string) ([]*ast.Param, bool) {
	var params []*ast.Param
	for !p.at(token.RParen) {
		if p.at(token.KwSelf) {
			selfTok := p.advance()
			if owner == "" || len(params) > 0 {
				p.report(diag.SynUnexpectedToken, diag.SevError, selfTok.Span,
					"'self' is only allowed as the first parameter of an impl method")
				return nil, false
			}
			params = append(params, &ast.Param{
				Name:   &ast.Ident{Name: "self", Span: selfTok.Span},
				Type:   &ast.TypeRef{Name: owner, Span: selfTok.Span},
				IsSelf: true,
				Span:   selfTok.Span,
			})
		} else {
			name, ok := p.parseIdent()
			if !ok {
				return nil, false
			}
			if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after parameter name"); !ok {
				return nil, false
			}
			typ, ok := p.parseType()
			if !ok {
				return nil, false
			}
			params = append(params, &ast.Param{Name: name, Type: typ, Span: name.Span.Cover(typ.Span)})
		}
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close the parameter list"); !ok {
		return nil, false
	}
	return params, true
}
