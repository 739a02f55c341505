package lexer

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"scooter/internal/token"
)

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinueRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

// scanIdentOrKeyword сканирует Ident и проверяет через LookupKeyword.
// Не-ASCII идентификаторы приводятся к NFC, чтобы визуально одинаковые имена совпадали.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.mark()

	if r, _ := lx.cursor.peekRune(); r >= utf8.RuneSelf && !isIdentStartRune(r) {
		return lx.scanOperatorOrPunct()
	}
	ascii := true
	for {
		lx.cursor.skipWhile(isIdentContinueByte)
		r, size := lx.cursor.peekRune()
		if size == 0 || r < utf8.RuneSelf || !isIdentContinueRune(r) {
			break
		}
		ascii = false
		lx.cursor.bumpRune()
	}

	sp := lx.cursor.spanFrom(start)
	text := lx.cursor.text(start)
	if !ascii {
		text = norm.NFC.String(text)
	}
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
