package symbols

import (
	"scooter/internal/ast"
	"scooter/internal/source"
	"scooter/internal/types"
)

// Resolver collects top-level declarations into one flat scope: struct types
// first, then function signatures. Collection never fails: a return type that
// does not name a known type is recorded as (), and a name declared twice
// keeps its first binding while the repeat lands in Duplicates.
//
// The same table is later borrowed by the type checker, which pushes function
// scopes and inserts locals. The two must not run concurrently.
type Resolver struct {
	table  *Table[Symbol]
	labels *Mapper
	dups   []Duplicate
}

// Duplicate is a top-level declaration whose name was already taken.
type Duplicate struct {
	Name    string
	Span    source.Span // повторное объявление
	Prev    Symbol      // первое объявление
	Builtin bool        // имя занято примитивным типом
}

// NewResolver creates a resolver with the primitive types pre-registered.
func NewResolver() *Resolver {
	r := &Resolver{
		table:  NewTable[Symbol](),
		labels: NewMapper(),
	}
	for _, t := range types.Builtins() {
		r.table.Insert(t.Name, NewTypeSymbol(t, source.Span{}))
	}
	return r
}

// Resolve runs the type pass and then the function pass.
func (r *Resolver) Resolve(file *ast.File) {
	r.CollectTypes(file)
	r.CollectFunctions(file)
}

// CollectTypes registers every struct declaration in AST order.
func (r *Resolver) CollectTypes(file *ast.File) {
	ast.Inspect(file, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.File:
			return true
		case *ast.StructDecl:
			fields := make([]types.Field, 0, len(n.Fields))
			for _, f := range n.Fields {
				fields = append(fields, types.Field{Name: f.Name.Name, Type: f.Type.Name})
			}
			r.declare(n.Name.Name, n.Name.Span, func() Symbol {
				return NewTypeSymbol(types.Struct(n.Name.Name, fields), n.Name.Span)
			})
		}
		return false
	})
}

// CollectFunctions registers free functions and impl methods ("Type::name")
// and assigns each a label in AST order.
func (r *Resolver) CollectFunctions(file *ast.File) {
	ast.Inspect(file, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.File, *ast.ImplDecl:
			return true
		case *ast.FnDecl:
			ret, ok := r.ResolveType(n.ReturnType.Name)
			if !ok {
				ret = types.Unit()
			}
			r.declare(n.QualifiedName(), n.Name.Span, func() Symbol {
				label := r.labels.Insert(n.QualifiedName())
				return NewFunction(ret, label, len(n.Params), n.Name.Span)
			})
		}
		return false
	})
}

// declare binds name at the root unless it is taken. mk runs only for new
// names, so a repeated function never receives a second label.
func (r *Resolver) declare(name string, sp source.Span, mk func() Symbol) {
	if prev, ok := r.table.FindLocal(name); ok {
		r.dups = append(r.dups, Duplicate{
			Name:    name,
			Span:    sp,
			Prev:    prev,
			Builtin: prev.Kind == SymbolType && prev.Type.Kind != types.KindStruct,
		})
		return
	}
	r.table.Insert(name, mk())
}

// Duplicates lists repeated declarations in the order they were met.
func (r *Resolver) Duplicates() []Duplicate { return r.dups }

// ResolveType finds a type symbol by name.
func (r *Resolver) ResolveType(name string) (types.Type, bool) {
	sym, ok := r.table.Find(name)
	if !ok || sym.Kind != SymbolType {
		return types.Type{}, false
	}
	return sym.Type, true
}

// ResolveLocal finds a local binding and returns its type.
func (r *Resolver) ResolveLocal(name string) (types.Type, bool) {
	sym, ok := r.table.Find(name)
	if !ok || sym.Kind != SymbolLocal {
		return types.Type{}, false
	}
	return sym.Type, true
}

// ResolveFunction finds a function symbol by its qualified name.
func (r *Resolver) ResolveFunction(name string) (Symbol, bool) {
	sym, ok := r.table.Find(name)
	if !ok || sym.Kind != SymbolFunction {
		return Symbol{}, false
	}
	return sym, true
}

// Table exposes the symbol table for the type checker.
func (r *Resolver) Table() *Table[Symbol] { return r.table }

// Labels exposes the function label mapper for lowering.
func (r *Resolver) Labels() *Mapper { return r.labels }
