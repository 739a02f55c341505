package parser

import (
	"scooter/internal/ast"
	"scooter/internal/diag"
	"scooter/internal/lexer"
	"scooter/internal/token"
)

// parseExpr - главная точка входа для парсинга выражений
func (p *Parser) parseExpr() (ast.Expr, bool) {
	return p.parseBinaryExpr(precAdditive)
}

// parseBinaryExpr: precedence climbing для левоассоциативных операторов.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.Expr, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return nil, false
	}
	for {
		prec := p.getBinaryOperatorPrec(p.lx.Peek().Kind)
		if prec < minPrec {
			return left, true
		}
		opTok := p.advance()
		right, ok := p.parseBinaryExpr(prec + 1)
		if !ok {
			return nil, false
		}
		left = &ast.BinaryExpr{
			Op:   p.tokenKindToBinaryOp(opTok.Kind),
			X:    left,
			Y:    right,
			Span: left.Pos().Cover(right.Pos()),
		}
	}
}

func (p *Parser) parseUnaryExpr() (ast.Expr, bool) {
	if p.at(token.Minus) {
		opTok := p.advance()
		x, ok := p.parseUnaryExpr()
		if !ok {
			return nil, false
		}
		return &ast.UnaryExpr{Op: ast.OpNeg, X: x, Span: opTok.Span.Cover(x.Pos())}, true
	}
	return p.parsePrimaryExpr()
}

func (p *Parser) parsePrimaryExpr() (ast.Expr, bool) {
	switch p.lx.Peek().Kind {
	case token.IntLit:
		tok := p.advance()
		// переполнение уже зарепорчено лексером
		v, _ := lexer.ParseInt(tok.Text) //nolint:errcheck
		return &ast.IntLit{Value: v, Span: tok.Span}, true
	case token.KwTrue, token.KwFalse:
		tok := p.advance()
		return &ast.BoolLit{Value: tok.Kind == token.KwTrue, Span: tok.Span}, true
	case token.Ident:
		return p.parseIdentOrCall()
	case token.KwSelf:
		// receiver читается как обычное имя
		tok := p.advance()
		return &ast.Ident{Name: "self", Span: tok.Span}, true
	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close the parenthesized expression"); !ok {
			return nil, false
		}
		return inner, true
	}
	p.err(diag.SynExpectExpression, "expected expression, got "+p.lx.Peek().Kind.String())
	return nil, false
}

// parseIdentOrCall разбирает `name`, `name(args)` или `Type::name(args)`.
func (p *Parser) parseIdentOrCall() (ast.Expr, bool) {
	first := p.advance()
	callee := first.Text
	calleeSpan := first.Span
	if p.at(token.ColonColon) {
		p.advance()
		second, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		callee += "::" + second.Name
		calleeSpan = calleeSpan.Cover(second.Span)
		if !p.at(token.LParen) {
			p.err(diag.SynUnexpectedToken, "expected '(' after path '"+callee+"'")
			return nil, false
		}
	}
	if !p.at(token.LParen) {
		return &ast.Ident{Name: first.Text, Span: first.Span}, true
	}
	p.advance() // '('
	call := &ast.CallExpr{Callee: callee, CalleeSpan: calleeSpan}
	for !p.at(token.RParen) {
		arg, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		call.Args = append(call.Args, arg)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close the argument list")
	if !ok {
		return nil, false
	}
	call.Span = calleeSpan.Cover(closeTok.Span)
	return call, true
}
