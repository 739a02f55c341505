package ir

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// wireVersion is bumped whenever the encoded layout changes.
const wireVersion uint16 = 1

type wireRoot struct {
	Version    uint16     `msgpack:"v"`
	LabelCount uint32     `msgpack:"labels"`
	Literals   []Literal  `msgpack:"pool"`
	Instrs     []Instr    `msgpack:"instrs"`
	Funcs      []FuncInfo `msgpack:"funcs"`
}

// Encode writes root in the msgpack wire form consumed by backends.
func Encode(w io.Writer, r *Root) error {
	wr := wireRoot{
		Version:    wireVersion,
		LabelCount: r.LabelCount,
		Instrs:     r.Instrs,
		Funcs:      r.Funcs,
	}
	if r.Pool != nil {
		wr.Literals = r.Pool.Values()
	}
	if err := msgpack.NewEncoder(w).Encode(&wr); err != nil {
		return fmt.Errorf("encode ir: %w", err)
	}
	return nil
}

// Decode reads a root written by Encode. The pool is rebuilt so that
// IndexOf works on the result.
func Decode(rd io.Reader) (*Root, error) {
	var wr wireRoot
	if err := msgpack.NewDecoder(rd).Decode(&wr); err != nil {
		return nil, fmt.Errorf("decode ir: %w", err)
	}
	if wr.Version != wireVersion {
		return nil, fmt.Errorf("decode ir: unsupported version %d (want %d)", wr.Version, wireVersion)
	}
	root := NewRoot()
	root.LabelCount = wr.LabelCount
	root.Instrs = wr.Instrs
	root.Funcs = wr.Funcs
	for _, lit := range wr.Literals {
		root.Pool.Insert(lit)
	}
	return root, nil
}
