package symbols

import (
	"fmt"
	"math"

	"scooter/internal/diag"
)

// Mapper hands out stable indices for bindings. Every Insert allocates a
// fresh index, even when the name is already bound in an outer scope, and
// indices are never reused after Pop.
type Mapper struct {
	table *Table[uint32]
	next  uint32
}

func NewMapper() *Mapper {
	return &Mapper{table: NewTable[uint32]()}
}

// Insert allocates the next index and binds name to it in the current scope.
func (m *Mapper) Insert(name string) uint32 {
	if m.next == math.MaxUint32 {
		panic(fmt.Errorf("mapper: index space exhausted at %q", name))
	}
	idx := m.next
	m.next++
	m.table.Insert(name, idx)
	return idx
}

// Find returns the innermost index bound to name.
func (m *Mapper) Find(name string) (uint32, error) {
	if idx, ok := m.table.Find(name); ok {
		return idx, nil
	}
	return 0, diag.Errorf(diag.SemaUnresolvedName, "Cannot resolve '%s'", name)
}

func (m *Mapper) Push() { m.table.Push() }

func (m *Mapper) Pop() error { return m.table.Pop() }

// Next reports how many indices have been allocated.
func (m *Mapper) Next() uint32 { return m.next }

func (m *Mapper) Depth() int { return m.table.Depth() }
