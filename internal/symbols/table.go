package symbols

import (
	"errors"
)

// ErrPopRoot is returned when Pop is called with only the root scope left.
var ErrPopRoot = errors.New("symbols: cannot pop the root scope")

// Table is a chain of lexical scopes mapping names to payloads of type T.
// Frames form a stack: Push enters a block, Pop leaves it. Inner bindings
// hide outer ones without removing them.
//
// A Table is owned by one traversal at a time; it is not safe for
// concurrent use.
type Table[T any] struct {
	frames []map[string]T
}

// NewTable creates a table holding only the root scope.
func NewTable[T any]() *Table[T] {
	return &Table[T]{frames: []map[string]T{make(map[string]T)}}
}

// Insert binds name in the current scope, overwriting a binding of the same
// name in that scope.
func (t *Table[T]) Insert(name string, sym T) {
	t.frames[len(t.frames)-1][name] = sym
}

// Find looks name up from the innermost scope outwards.
func (t *Table[T]) Find(name string) (T, bool) {
	for i := len(t.frames) - 1; i >= 0; i-- {
		if sym, ok := t.frames[i][name]; ok {
			return sym, true
		}
	}
	var zero T
	return zero, false
}

// FindLocal looks name up in the current scope only.
func (t *Table[T]) FindLocal(name string) (T, bool) {
	sym, ok := t.frames[len(t.frames)-1][name]
	return sym, ok
}

func (t *Table[T]) Push() {
	t.frames = append(t.frames, make(map[string]T))
}

// Pop discards the current scope. The root scope cannot be popped.
func (t *Table[T]) Pop() error {
	if len(t.frames) == 1 {
		return ErrPopRoot
	}
	t.frames[len(t.frames)-1] = nil
	t.frames = t.frames[:len(t.frames)-1]
	return nil
}

// Depth reports the number of live scopes, root included.
func (t *Table[T]) Depth() int {
	return len(t.frames)
}
