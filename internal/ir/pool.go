package ir

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"
)

// Pool interns values: equal values share one index, distinct values get
// distinct indices in insertion order.
type Pool[T comparable] struct {
	values []T
	index  map[T]uint32
}

func NewPool[T comparable]() *Pool[T] {
	return &Pool[T]{index: make(map[T]uint32)}
}

// Insert returns the index of v, appending it if unseen.
func (p *Pool[T]) Insert(v T) uint32 {
	if i, ok := p.index[v]; ok {
		return i
	}
	i, err := safecast.Conv[uint32](len(p.values))
	if err != nil {
		panic(fmt.Errorf("pool overflow: %w", err))
	}
	p.values = append(p.values, v)
	p.index[v] = i
	return i
}

func (p *Pool[T]) IndexOf(v T) (uint32, bool) {
	i, ok := p.index[v]
	return i, ok
}

func (p *Pool[T]) ValueOf(i uint32) (T, bool) {
	if int(i) >= len(p.values) {
		var zero T
		return zero, false
	}
	return p.values[i], true
}

func (p *Pool[T]) Len() int { return len(p.values) }

// Values returns the pool contents in index order. Do not modify.
func (p *Pool[T]) Values() []T { return p.values }

// LiteralKind tags the value held by a Literal.
type LiteralKind uint8

const (
	LitInt LiteralKind = iota
	LitBool
)

// Literal is a constant value. It is comparable, so 1 and true intern to
// different pool entries.
type Literal struct {
	Kind LiteralKind `msgpack:"k"`
	Int  int32       `msgpack:"i,omitempty"`
	Bool bool        `msgpack:"b,omitempty"`
}

func IntLiteral(v int32) Literal { return Literal{Kind: LitInt, Int: v} }
func BoolLiteral(v bool) Literal { return Literal{Kind: LitBool, Bool: v} }

func (l Literal) String() string {
	if l.Kind == LitBool {
		return strconv.FormatBool(l.Bool)
	}
	return strconv.FormatInt(int64(l.Int), 10)
}
