package ast

import "scooter/internal/source"

// UnitTypeName is the spelling of the unit type.
const UnitTypeName = "()"

// TypeRef is a reference to a named type; `()` is spelled UnitTypeName.
type TypeRef struct {
	Name string
	Span source.Span
}

type StructDecl struct {
	Name   *Ident
	Fields []*Field
	Span   source.Span
}

type Field struct {
	Name *Ident
	Type *TypeRef
	Span source.Span
}

// ImplDecl groups methods for a named type.
type ImplDecl struct {
	Type    *Ident
	Methods []*FnDecl
	Span    source.Span
}

func (t *TypeRef) Pos() source.Span    { return t.Span }
func (d *StructDecl) Pos() source.Span { return d.Span }
func (f *Field) Pos() source.Span      { return f.Span }
func (d *ImplDecl) Pos() source.Span   { return d.Span }

func (*StructDecl) itemNode() {}
func (*ImplDecl) itemNode()   {}
