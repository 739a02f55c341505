package parser

import (
	"scooter/internal/ast"
	"scooter/internal/diag"
	"scooter/internal/token"
)

// parseStruct разбирает `struct Name { field: type, ... }`.
func (p *Parser) parseStruct() (*ast.StructDecl, bool) {
	kw := p.advance() // 'struct'
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after struct name"); !ok {
		return nil, false
	}
	decl := &ast.StructDecl{Name: name}
	for !p.atOr(token.RBrace, token.EOF) {
		fname, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after field name"); !ok {
			return nil, false
		}
		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}
		decl.Fields = append(decl.Fields, &ast.Field{Name: fname, Type: typ, Span: fname.Span.Cover(typ.Span)})
		if p.at(token.Comma) {
			p.advance()
		}
	}
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close struct body")
	if !ok {
		return nil, false
	}
	decl.Span = kw.Span.Cover(closeTok.Span)
	return decl, true
}

// parseImpl разбирает `impl Type { fn ... }`. Методы получают Owner = Type.
func (p *Parser) parseImpl() (*ast.ImplDecl, bool) {
	kw := p.advance() // 'impl'
	typ, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after impl type"); !ok {
		return nil, false
	}
	decl := &ast.ImplDecl{Type: typ}
	for !p.atOr(token.RBrace, token.EOF) {
		if !p.at(token.KwFn) {
			p.err(diag.SynUnexpectedToken, "expected 'fn' inside impl block, got "+p.lx.Peek().Kind.String())
			p.advance()
			p.resyncUntil(token.KwFn, token.RBrace)
			continue
		}
		m, ok := p.parseFn(typ.Name)
		if !ok {
			p.resyncUntil(token.KwFn, token.RBrace)
			continue
		}
		decl.Methods = append(decl.Methods, m)
	}
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close impl block")
	if !ok {
		return nil, false
	}
	decl.Span = kw.Span.Cover(closeTok.Span)
	return decl, true
}
