package lexer

import (
	"math"
	"strconv"

	"scooter/internal/diag"
	"scooter/internal/token"
)

// scanNumber сканирует десятичный литерал [0-9][0-9_]*.
// Значение должно помещаться в i32, иначе LexBadNumber; токен всё равно IntLit,
// чтобы парсер не сыпал каскадом ошибок.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.mark()
	lx.cursor.skipWhile(func(b byte) bool { return isDec(b) || b == '_' })
	sp := lx.cursor.spanFrom(start)
	text := lx.cursor.text(start)

	if isIdentStartByte(lx.cursor.peek()) {
		lx.cursor.skipWhile(isIdentContinueByte)
		sp = lx.cursor.spanFrom(start)
		text = lx.cursor.text(start)
		lx.errLex(diag.LexBadNumber, sp, "invalid suffix in number literal '"+text+"'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}

	if _, err := ParseInt(text); err != nil {
		lx.errLex(diag.LexBadNumber, sp, "integer literal '"+text+"' does not fit in i32")
	}
	return token.Token{Kind: token.IntLit, Span: sp, Text: text}
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// ParseInt разбирает текст IntLit (с '_' разделителями) в значение i32.
func ParseInt(text string) (int32, error) {
	clean := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		if text[i] != '_' {
			clean = append(clean, text[i])
		}
	}
	v, err := strconv.ParseInt(string(clean), 10, 64)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt32 {
		return 0, strconv.ErrRange
	}
	return int32(v), nil
}
