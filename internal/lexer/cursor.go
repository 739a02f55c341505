package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"scooter/internal/source"
)

// cursor ходит по нормализованным байтам одного файла. Смещения байтовые,
// те же, что в source.Span.
type cursor struct {
	file *source.File
	off  uint32
	end  uint32
}

func newCursor(f *source.File) cursor {
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("source %s too large for uint32 offsets: %w", f.Path, err))
	}
	return cursor{file: f, end: end}
}

func (c *cursor) atEnd() bool { return c.off >= c.end }

// peekAt returns the byte n positions ahead, or 0 past the end.
func (c *cursor) peekAt(n uint32) byte {
	if c.off+n >= c.end {
		return 0
	}
	return c.file.Content[c.off+n]
}

func (c *cursor) peek() byte { return c.peekAt(0) }

func (c *cursor) bump() byte {
	if c.atEnd() {
		return 0
	}
	b := c.file.Content[c.off]
	c.off++
	return b
}

// skipWhile consumes bytes while pred holds.
func (c *cursor) skipWhile(pred func(byte) bool) {
	for !c.atEnd() && pred(c.file.Content[c.off]) {
		c.off++
	}
}

// match consumes s when the input continues with it. Used for `::`, `->`, `//`.
func (c *cursor) match(s string) bool {
	n := uint32(len(s)) //nolint:gosec // operator literals
	if c.off+n > c.end || string(c.file.Content[c.off:c.off+n]) != s {
		return false
	}
	c.off += n
	return true
}

// peekRune decodes the rune at the cursor; size is 0 at the end.
func (c *cursor) peekRune() (r rune, size int) {
	if c.atEnd() {
		return utf8.RuneError, 0
	}
	if b := c.file.Content[c.off]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(c.file.Content[c.off:c.end])
}

func (c *cursor) bumpRune() rune {
	r, size := c.peekRune()
	c.off += uint32(size) //nolint:gosec // size <= utf8.UTFMax
	return r
}

// mark запоминает начало лексемы.
type mark uint32

func (c *cursor) mark() mark { return mark(c.off) }

func (c *cursor) spanFrom(m mark) source.Span {
	return source.Span{File: c.file.ID, Start: uint32(m), End: c.off}
}

// text returns the raw bytes consumed since m.
func (c *cursor) text(m mark) string {
	return string(c.file.Content[m:c.off])
}
