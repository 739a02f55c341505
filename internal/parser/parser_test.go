package parser

import (
	"testing"

	"github.com/nalgeon/be"

	"scooter/internal/ast"
	"scooter/internal/diag"
)

func TestParseFunction(t *testing.T) {
	file, bag := parseSource(t, "fn add(a: i32, b: i32) -> i32 { return a + b; }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	fns := file.Fns()
	be.Equal(t, len(fns), 1)
	fn := fns[0]
	be.Equal(t, fn.Name.Name, "add")
	be.Equal(t, len(fn.Params), 2)
	be.Equal(t, fn.Params[1].Type.Name, "i32")
	be.Equal(t, fn.ReturnType.Name, "i32")
	ret, ok := fn.Body.Stmts[0].(*ast.ReturnStmt)
	be.True(t, ok)
	be.Equal(t, exprString(ret.Value), "(a + b)")
}

func TestParsePrecedence(t *testing.T) {
	cases := []struct{ src, want string }{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "((1 * 2) + 3)"},
		{"1 - 2 - 3", "((1 - 2) - 3)"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"-a * 2", "((-a) * 2)"},
		{"--1", "(-(-1))"},
		{"f(1, g(x) + 2)", "f(1, (g(x) + 2))"},
		{"Point::new(1, true)", "Point::new(1, true)"},
		{"8 / 2 / 2", "((8 / 2) / 2)"},
	}
	for _, tc := range cases {
		file, bag := parseSource(t, "fn main() -> () { "+tc.src+"; }")
		if bag.Len() != 0 {
			t.Fatalf("%q: %s", tc.src, diagnosticsSummary(bag))
		}
		stmt := file.Fns()[0].Body.Stmts[0].(*ast.ExprStmt)
		if got := exprString(stmt.X); got != tc.want {
			t.Errorf("%q parsed as %s, want %s", tc.src, got, tc.want)
		}
	}
}

func TestParseUnitType(t *testing.T) {
	file, bag := parseSource(t, "fn f() -> () { }")
	be.Equal(t, bag.Len(), 0)
	fn := file.Fns()[0]
	be.Equal(t, fn.ReturnType.Name, ast.UnitTypeName)
	be.Equal(t, len(fn.Body.Stmts), 0)
}

func TestParseLet(t *testing.T) {
	file, bag := parseSource(t, "fn main() -> () { let x: i32 = 1 + 2; let y: bool = false; }")
	be.Equal(t, bag.Len(), 0)
	stmts := file.Fns()[0].Body.Stmts
	let := stmts[0].(*ast.LetStmt)
	be.Equal(t, let.Name.Name, "x")
	be.Equal(t, let.Type.Name, "i32")
	be.Equal(t, exprString(let.Value), "(1 + 2)")
	be.Equal(t, exprString(stmts[1].(*ast.LetStmt).Value), "false")
}

func TestParseStructAndImpl(t *testing.T) {
	src := `
struct Point { x: i32, y: i32 }
impl Point {
    fn sum(self, k: i32) -> i32 { return k; }
    fn origin() -> Point { return Point::origin(); }
}`
	file, bag := parseSource(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	st := file.Structs()[0]
	be.Equal(t, st.Name.Name, "Point")
	be.Equal(t, len(st.Fields), 2)
	be.Equal(t, st.Fields[1].Name.Name, "y")

	impl := file.Items[1].(*ast.ImplDecl)
	be.Equal(t, len(impl.Methods), 2)
	sum := impl.Methods[0]
	be.Equal(t, sum.QualifiedName(), "Point::sum")
	be.True(t, sum.Params[0].IsSelf)
	be.Equal(t, sum.Params[0].Type.Name, "Point")
	be.Equal(t, impl.Methods[1].Owner, "Point")
}

func TestSelfInMethodBody(t *testing.T) {
	file, bag := parseSource(t, "impl P { fn twice(self) -> P { let q: P = self; return P::twice(self) + q; } }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	body := file.Functions()[0].Body.Stmts
	let := body[0].(*ast.LetStmt)
	self, ok := let.Value.(*ast.Ident)
	be.True(t, ok)
	be.Equal(t, self.Name, "self")
	be.Equal(t, self.Span.Len(), uint32(4))
	be.Equal(t, exprString(body[1].(*ast.ReturnStmt).Value), "(P::twice(self) + q)")
}

func TestSelfOutsideImpl(t *testing.T) {
	_, bag := parseSource(t, "fn f(self) -> () { }")
	be.Equal(t, bag.Len(), 1)
	be.Equal(t, bag.Items()[0].Code, diag.SynUnexpectedToken)
}

func TestMissingSemicolonRecovers(t *testing.T) {
	file, bag := parseSource(t, "fn main() -> i32 { let x: i32 = 1 return x; }\nfn other() -> () { }")
	be.Equal(t, bag.Items()[0].Code, diag.SynExpectSemicolon)
	be.Equal(t, len(file.Fns()), 2)
}

func TestBadStatementSkipped(t *testing.T) {
	file, bag := parseSource(t, "fn main() -> () { let : i32 = 1; f(); }")
	be.Equal(t, bag.Len(), 1)
	be.Equal(t, bag.Items()[0].Code, diag.SynExpectIdentifier)
	stmts := file.Fns()[0].Body.Stmts
	be.Equal(t, len(stmts), 1)
	be.Equal(t, exprString(stmts[0].(*ast.ExprStmt).X), "f()")
}

func TestUnexpectedTopLevel(t *testing.T) {
	file, bag := parseSource(t, "let x: i32 = 1;\nfn main() -> () { }")
	be.Equal(t, bag.Items()[0].Code, diag.SynUnexpectedTopLevel)
	be.Equal(t, len(file.Fns()), 1)
	be.Equal(t, file.Fns()[0].Name.Name, "main")
}

func TestMissingArrow(t *testing.T) {
	_, bag := parseSource(t, "fn main() { }")
	be.Equal(t, bag.Items()[0].Code, diag.SynExpectArrow)
}

func TestMissingExpression(t *testing.T) {
	_, bag := parseSource(t, "fn main() -> i32 { return ; }")
	be.Equal(t, bag.Items()[0].Code, diag.SynExpectExpression)
}

func TestUnclosedBlockAtEOF(t *testing.T) {
	_, bag := parseSource(t, "fn main() -> () { f();")
	be.Equal(t, bag.Len(), 1)
	d := bag.Items()[0]
	be.Equal(t, d.Code, diag.SynUnclosedBrace)
	be.Equal(t, d.Primary.Start, uint32(22))
}

func TestSpans(t *testing.T) {
	src := "fn f() -> i32 { return 1 + 2; }"
	file, _ := parseSource(t, src)
	fn := file.Fns()[0]
	be.Equal(t, fn.Span.Start, uint32(0))
	be.Equal(t, fn.Span.End, uint32(len(src)))
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	bin := ret.Value.(*ast.BinaryExpr)
	be.Equal(t, src[bin.Span.Start:bin.Span.End], "1 + 2")
}
