package ast

import "scooter/internal/source"

// File is the root of one compilation unit.
type File struct {
	ID    source.FileID
	Items []Item
	Span  source.Span
}

func (f *File) Pos() source.Span { return f.Span }

// Fns returns free functions in declaration order.
func (f *File) Fns() []*FnDecl {
	var out []*FnDecl
	for _, it := range f.Items {
		if fn, ok := it.(*FnDecl); ok {
			out = append(out, fn)
		}
	}
	return out
}

// Structs returns struct declarations in declaration order.
func (f *File) Structs() []*StructDecl {
	var out []*StructDecl
	for _, it := range f.Items {
		if st, ok := it.(*StructDecl); ok {
			out = append(out, st)
		}
	}
	return out
}

// Functions returns every function body in the file: free functions and impl
// methods, in source order.
func (f *File) Functions() []*FnDecl {
	var out []*FnDecl
	for _, it := range f.Items {
		switch it := it.(type) {
		case *FnDecl:
			out = append(out, it)
		case *ImplDecl:
			out = append(out, it.Methods...)
		}
	}
	return out
}
