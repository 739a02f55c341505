package lexer

import (
	"fmt"
	"unicode/utf8"

	"scooter/internal/diag"
	"scooter/internal/token"
)

// punct перечисляет операторы в порядке проверки: двухсимвольные раньше,
// чтобы `::` не распался на два `:`.
var punct = []struct {
	text string
	kind token.Kind
}{
	{"::", token.ColonColon},
	{"->", token.Arrow},
	{"+", token.Plus},
	{"-", token.Minus},
	{"*", token.Star},
	{"/", token.Slash},
	{"=", token.Assign},
	{":", token.Colon},
	{";", token.Semicolon},
	{",", token.Comma},
	{"(", token.LParen},
	{")", token.RParen},
	{"{", token.LBrace},
	{"}", token.RBrace},
}

// scanOperatorOrPunct consumes one operator, or one unknown character
// (a whole rune for non-ASCII input) reported as LexUnknownChar.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.mark()
	kind := token.Invalid
	for _, p := range punct {
		if lx.cursor.match(p.text) {
			kind = p.kind
			break
		}
	}
	var bad rune
	if kind == token.Invalid {
		if lx.cursor.peek() >= utf8.RuneSelf {
			bad = lx.cursor.bumpRune()
		} else {
			bad = rune(lx.cursor.bump())
		}
	}

	tok := token.Token{Kind: kind, Span: lx.cursor.spanFrom(start), Text: lx.cursor.text(start)}
	if kind == token.Invalid {
		lx.errLex(diag.LexUnknownChar, tok.Span, fmt.Sprintf("unknown character %q", bad))
	}
	return tok
}
