package types

import "testing"

func TestEqualByName(t *testing.T) {
	a := Struct("Point", []Field{{Name: "x", Type: I32Name}})
	b := Struct("Point", nil)
	if !a.Equal(b) {
		t.Fatal("types with the same name must be equal")
	}
	if I32().Equal(Bool()) || Unit().Equal(I32()) {
		t.Fatal("distinct primitives compared equal")
	}
}

func TestStructFields(t *testing.T) {
	p := Struct("Point", []Field{{Name: "x", Type: I32Name}, {Name: "y", Type: BoolName}})
	if f, ok := p.Field("y"); !ok || f.Type != BoolName {
		t.Fatalf("Field(y) = %v, %v", f, ok)
	}
	if _, ok := p.Field("z"); ok {
		t.Fatal("found a missing field")
	}
	if p.Fields[0].Name != "x" {
		t.Fatal("field order lost")
	}
}

func TestBuiltins(t *testing.T) {
	names := []string{}
	for _, b := range Builtins() {
		names = append(names, b.String())
	}
	if len(names) != 3 || names[0] != "()" || names[1] != "i32" || names[2] != "bool" {
		t.Fatalf("Builtins() = %v", names)
	}
	if Unit().Kind != KindUnit || KindStruct.String() != "struct" {
		t.Fatal("kind mismatch")
	}
}
