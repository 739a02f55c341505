package ast

import "scooter/internal/source"

// FnDecl is a function or, when Owner is set, an impl method.
type FnDecl struct {
	Name       *Ident
	Owner      string // имя типа для методов impl, "" для свободных функций
	Params     []*Param
	ReturnType *TypeRef
	Body       *Block
	Span       source.Span
}

// QualifiedName is the name the function is registered and called under:
// "name" or "Type::name".
func (d *FnDecl) QualifiedName() string {
	if d.Owner == "" {
		return d.Name.Name
	}
	return d.Owner + "::" + d.Name.Name
}

// Param is a function parameter. The `self` receiver has IsSelf set and its
// Type names the impl owner.
type Param struct {
	Name   *Ident
	Type   *TypeRef
	IsSelf bool
	Span   source.Span
}

func (d *FnDecl) Pos() source.Span { return d.Span }
func (p *Param) Pos() source.Span  { return p.Span }

func (*FnDecl) itemNode() {}
