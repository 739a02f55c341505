package symbols

import (
	"scooter/internal/source"
	"scooter/internal/types"
)

// SymbolKind classifies the semantic meaning of a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolFunction
	SymbolLocal
	SymbolType
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolFunction:
		return "function"
	case SymbolLocal:
		return "local"
	case SymbolType:
		return "type"
	default:
		return "invalid"
	}
}

// Symbol is a resolved declaration. Type is the return type for functions,
// the declared type for locals and the type itself for type symbols.
type Symbol struct {
	Kind  SymbolKind
	Type  types.Type
	Span  source.Span
	Label uint32 // только для функций
	Arity int    // только для функций
}

func NewFunction(ret types.Type, label uint32, arity int, sp source.Span) Symbol {
	return Symbol{Kind: SymbolFunction, Type: ret, Label: label, Arity: arity, Span: sp}
}

func NewLocal(t types.Type, sp source.Span) Symbol {
	return Symbol{Kind: SymbolLocal, Type: t, Span: sp}
}

func NewTypeSymbol(t types.Type, sp source.Span) Symbol {
	return Symbol{Kind: SymbolType, Type: t, Span: sp}
}
