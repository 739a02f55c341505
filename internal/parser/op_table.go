package parser

import (
	"scooter/internal/ast"
	"scooter/internal/token"
)

// Приоритеты бинарных операторов (чем больше, тем сильнее связывание).
const (
	precNone           = -1
	precAdditive       = 1 // + -
	precMultiplicative = 2 // * /
)

// getBinaryOperatorPrec возвращает приоритет; все операторы левоассоциативны.
func (p *Parser) getBinaryOperatorPrec(kind token.Kind) int {
	switch kind {
	case token.Plus, token.Minus:
		return precAdditive
	case token.Star, token.Slash:
		return precMultiplicative
	}
	return precNone
}

func (p *Parser) tokenKindToBinaryOp(kind token.Kind) ast.BinaryOp {
	switch kind {
	case token.Minus:
		return ast.OpSub
	case token.Star:
		return ast.OpMul
	case token.Slash:
		return ast.OpDiv
	}
	return ast.OpAdd
}
