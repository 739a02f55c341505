package lexer

import (
	"testing"

	"github.com/nalgeon/be"

	"scooter/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sc", []byte(content))
	return fs.Get(id)
}

func TestCursorBumpPeek(t *testing.T) {
	c := newCursor(createFile("a\nb"))
	for _, want := range []byte{'a', '\n', 'b'} {
		if c.atEnd() {
			t.Fatalf("unexpected end before %q", want)
		}
		if got := c.bump(); got != want {
			t.Fatalf("bump() = %q, want %q", got, want)
		}
	}
	if !c.atEnd() || c.peek() != 0 || c.bump() != 0 {
		t.Fatal("cursor must stay at the end and return 0")
	}
}

func TestCursorMatchOperators(t *testing.T) {
	c := newCursor(createFile("::->-"))
	be.True(t, !c.match("->"))
	be.True(t, c.match("::"))
	be.True(t, c.match("->"))
	// одного байта мало для двухбайтового оператора
	be.True(t, !c.match("->"))
	be.Equal(t, c.peekAt(1), byte(0))
	be.Equal(t, c.bump(), byte('-'))
}

// spanFrom считает байты, а не руны.
func TestCursorRunesAndSpans(t *testing.T) {
	c := newCursor(createFile("αβ x"))
	m := c.mark()
	be.Equal(t, c.bumpRune(), 'α')
	r, size := c.peekRune()
	be.Equal(t, r, 'β')
	be.Equal(t, size, 2)
	c.bumpRune()
	sp := c.spanFrom(m)
	be.Equal(t, sp.Start, uint32(0))
	be.Equal(t, sp.End, uint32(4))
	be.Equal(t, c.text(m), "αβ")

	c.skipWhile(func(b byte) bool { return b == ' ' })
	be.Equal(t, c.bumpRune(), 'x')
	_, size = c.peekRune()
	be.Equal(t, size, 0)
}
