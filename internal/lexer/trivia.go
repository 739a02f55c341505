package lexer

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }

// skipTrivia пропускает пробелы, переводы строк и `//` комментарии до конца строки.
func (lx *Lexer) skipTrivia() {
	for {
		lx.cursor.skipWhile(isSpace)
		if !lx.cursor.match("//") {
			return
		}
		lx.cursor.skipWhile(func(b byte) bool { return b != '\n' })
	}
}
