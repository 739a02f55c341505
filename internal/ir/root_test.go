package ir

import (
	"bytes"
	"strings"
	"testing"
)

// sampleRoot: fn main() -> i32 { let x: i32 = 1 + 2; return x; } и пустая fn f.
func sampleRoot(t *testing.T) *Root {
	t.Helper()
	r := NewRoot()
	one := r.Pool.Insert(IntLiteral(1))
	two := r.Pool.Insert(IntLiteral(2))
	must := func(in Instr, err error) Instr {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return in
	}
	r.Instrs = []Instr{
		must(NewCopy(Temp(0), Const(one))),
		must(NewCopy(Temp(1), Const(two))),
		must(NewBinary(Temp(2), Temp(0), OpAdd, Temp(1))),
		must(NewCopy(Name(0), Temp(2))),
		NewReturn(Name(0)),
		NewNop(),
	}
	r.Instrs[0].SetLabel(Label{Index: 0})
	r.Instrs[5].SetLabel(Label{Index: 1})
	r.LabelCount = 2
	r.Funcs = []FuncInfo{
		{Name: "main", Label: Label{Index: 0}, Entry: 0},
		{Name: "f", Label: Label{Index: 1}, Entry: 5},
	}
	return r
}

func TestDump(t *testing.T) {
	want := strings.Join([]string{
		"L0: t0 = 1",
		"    t1 = 2",
		"    t2 = t0 + t1",
		"    x0 = t2",
		"    ret x0",
		"L1: nop",
		"",
	}, "\n")
	if got := sampleRoot(t).String(); got != want {
		t.Fatalf("dump mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatInstrErrorMarkers(t *testing.T) {
	r := NewRoot()
	bad := Instr{Kind: InstrCopy, Dst: Const(0), Src: Const(7)}
	got := FormatInstr(r.Pool, &bad)
	if got != "<error: const destination> = <missing const 7>" {
		t.Fatalf("got %q", got)
	}
	call := Instr{Kind: InstrCall, Dst: Temp(4), Callee: Label{Index: 2}, Argc: 3}
	if got := FormatInstr(r.Pool, &call); got != "t4 = call L2, 3" {
		t.Fatalf("got %q", got)
	}
}

func TestValidate(t *testing.T) {
	r := sampleRoot(t)
	if err := Validate(r); err != nil {
		t.Fatalf("valid root rejected: %v", err)
	}

	r.Instrs[1].Dst = Temp(0)
	r.Instrs[3].Src = Const(9)
	r.Funcs[1].Entry = 4
	err := Validate(r)
	if err == nil {
		t.Fatal("broken root accepted")
	}
	msg := err.Error()
	for _, frag := range []string{"already defined", "not in pool", "not on entry"} {
		if !strings.Contains(msg, frag) {
			t.Errorf("missing %q in %q", frag, msg)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	r := sampleRoot(t)
	var buf bytes.Buffer
	if err := Encode(&buf, r); err != nil {
		t.Fatal(err)
	}
	back, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if back.String() != r.String() {
		t.Fatalf("decoded dump differs:\n%s\nvs\n%s", back, r)
	}
	if i, ok := back.Pool.IndexOf(IntLiteral(2)); !ok || i != 1 {
		t.Fatalf("pool not rebuilt: %d %v", i, ok)
	}
	if f, ok := back.Func("f"); !ok || f.Entry != 5 {
		t.Fatalf("funcs lost: %+v", back.Funcs)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte{0xc1})); err == nil {
		t.Fatal("expected error")
	}
}
