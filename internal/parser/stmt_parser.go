package parser

import (
	"scooter/internal/ast"
	"scooter/internal/diag"
	"scooter/internal/token"
)

// parseBlock разбирает `{ (stmt ;)* }`. Ошибочный оператор пропускается до ';' или '}'.
func (p *Parser) parseBlock() (*ast.Block, bool) {
	open, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open a block")
	if !ok {
		return nil, false
	}
	block := &ast.Block{}
	for !p.atOr(token.RBrace, token.EOF) {
		stmt, ok := p.parseStmt()
		if !ok {
			p.resyncUntil(token.Semicolon, token.RBrace)
			if p.at(token.Semicolon) {
				p.advance()
			}
			continue
		}
		if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after statement"); !ok {
			p.resyncUntil(token.Semicolon, token.RBrace)
			if p.at(token.Semicolon) {
				p.advance()
			}
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close the block")
	if !ok {
		return nil, false
	}
	block.Span = open.Span.Cover(closeTok.Span)
	return block, true
}

func (p *Parser) parseStmt() (ast.Stmt, bool) {
	switch p.lx.Peek().Kind {
	case token.KwLet:
		return p.parseLetStmt()
	case token.KwReturn:
		kw := p.advance()
		val, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		return &ast.ReturnStmt{Value: val, Span: kw.Span.Cover(val.Pos())}, true
	default:
		x, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		return &ast.ExprStmt{X: x, Span: x.Pos()}, true
	}
}

// parseLetStmt разбирает `let name: type = expr`.
func (p *Parser) parseLetStmt() (ast.Stmt, bool) {
	kw := p.advance() // 'let'
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' and a type after the variable name"); !ok {
		return nil, false
	}
	typ, ok := p.parseType()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' in let statement"); !ok {
		return nil, false
	}
	val, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return &ast.LetStmt{Name: name, Type: typ, Value: val, Span: kw.Span.Cover(val.Pos())}, true
}
