// Package ir defines the three-address intermediate representation handed
// from lowering to a backend.
package ir

import "fmt"

// AddrKind distinguishes where an operand lives.
type AddrKind uint8

const (
	// AddrName is a user binding resolved by the name mapper.
	AddrName AddrKind = iota
	// AddrConst is an index into the literal pool.
	AddrConst
	// AddrTemp is a compiler-generated temporary.
	AddrTemp
)

func (k AddrKind) String() string {
	switch k {
	case AddrName:
		return "name"
	case AddrConst:
		return "const"
	case AddrTemp:
		return "temp"
	}
	return fmt.Sprintf("AddrKind(%d)", k)
}

// Addr references a storage location.
type Addr struct {
	Kind  AddrKind `msgpack:"k"`
	Index uint32   `msgpack:"i"`
}

func Name(i uint32) Addr  { return Addr{Kind: AddrName, Index: i} }
func Const(i uint32) Addr { return Addr{Kind: AddrConst, Index: i} }
func Temp(i uint32) Addr  { return Addr{Kind: AddrTemp, Index: i} }

// IsDestination reports whether the address may be written to.
func (a Addr) IsDestination() bool {
	return a.Kind == AddrName || a.Kind == AddrTemp
}

// String renders names and temps; constants render as their pool index
// because the value needs the pool, see Dump.
func (a Addr) String() string {
	switch a.Kind {
	case AddrName:
		return fmt.Sprintf("x%d", a.Index)
	case AddrTemp:
		return fmt.Sprintf("t%d", a.Index)
	case AddrConst:
		return fmt.Sprintf("c%d", a.Index)
	}
	return "?"
}

// Label marks the entry instruction of a function body.
type Label struct {
	Index uint32 `msgpack:"i"`
}

func (l Label) String() string {
	return fmt.Sprintf("L%d", l.Index)
}
