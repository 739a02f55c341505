// Package types describes the types known to the checker. Types are
// compared by name: two types are equal when their names are equal.
package types

import "fmt"

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindUnit
	KindInt
	KindBool
	KindStruct
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindUnit:
		return "unit"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindStruct:
		return "struct"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Names of the primitive types.
const (
	UnitName = "()"
	I32Name  = "i32"
	BoolName = "bool"
)

// Field is a struct field; Type holds the declared type name as written.
type Field struct {
	Name string
	Type string
}

// Type is a compact descriptor for any supported type.
type Type struct {
	Kind   Kind
	Name   string
	Fields []Field // в порядке объявления, только для KindStruct
}

func Unit() Type { return Type{Kind: KindUnit, Name: UnitName} }
func I32() Type  { return Type{Kind: KindInt, Name: I32Name} }
func Bool() Type { return Type{Kind: KindBool, Name: BoolName} }

// Struct builds a struct type with fields in declaration order.
func Struct(name string, fields []Field) Type {
	return Type{Kind: KindStruct, Name: name, Fields: fields}
}

// Builtins returns the primitive types in registration order.
func Builtins() []Type {
	return []Type{Unit(), I32(), Bool()}
}

// Equal compares types by name.
func (t Type) Equal(other Type) bool {
	return t.Name == other.Name
}

// Field looks up a struct field by name.
func (t Type) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (t Type) String() string {
	return t.Name
}
