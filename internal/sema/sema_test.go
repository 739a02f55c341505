package sema

import (
	"errors"
	"testing"

	"github.com/nalgeon/be"

	"scooter/internal/ast"
	"scooter/internal/diag"
	"scooter/internal/lexer"
	"scooter/internal/parser"
	"scooter/internal/source"
	"scooter/internal/symbols"
)

func parseSnippet(t *testing.T, src string) *ast.File {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sc", []byte(src))
	res := parser.ParseFile(lexer.New(fs.Get(id), lexer.Options{}), parser.Options{})
	if res.Errors != 0 {
		t.Fatalf("unexpected parse errors: %d", res.Errors)
	}
	return res.File
}

func typecheck(t *testing.T, src string) (*TypeChecker, *ast.File, error) {
	t.Helper()
	file := parseSnippet(t, src)
	r := symbols.NewResolver()
	r.Resolve(file)
	tc := NewTypeChecker(r)
	return tc, file, tc.Check(file)
}

func codes(err error) []diag.Code {
	var out []diag.Code
	for _, e := range diag.Errors(err) {
		out = append(out, e.Code)
	}
	return out
}

func TestTypeCheckSuccess(t *testing.T) {
	tc, file, err := typecheck(t, "fn f() -> i32 { return 1 + 2; }")
	be.Err(t, err, nil)
	body, ok := tc.BodyType(file.Fns()[0])
	be.True(t, ok)
	be.Equal(t, body.Name, "i32")
}

func TestReturnTypeMismatch(t *testing.T) {
	_, _, err := typecheck(t, "fn f() -> i32 { return true; }")
	be.Equal(t, codes(err), []diag.Code{diag.SemaReturnTypeMismatch})
	be.Equal(t, diag.Errors(err)[0].Reason,
		"Function must return type 'i32' but type 'bool' is returned instead")
}

func TestEmptyBodyIsUnit(t *testing.T) {
	_, _, err := typecheck(t, "fn ok() -> () { } fn bad() -> i32 { }")
	be.Equal(t, codes(err), []diag.Code{diag.SemaReturnTypeMismatch})
}

func TestUndefinedFunctionRegardlessOfArgs(t *testing.T) {
	for _, src := range []string{
		"fn main() -> i32 { return g(); }",
		"fn main() -> i32 { return g(1, true, 2 + 3); }",
	} {
		_, _, err := typecheck(t, src)
		be.Equal(t, codes(err), []diag.Code{diag.SemaUndefinedFunction})
	}
}

func TestCallArgumentsStillChecked(t *testing.T) {
	_, _, err := typecheck(t, "fn g() -> i32 { return 0; } fn main() -> i32 { return g(1 + true); }")
	be.Equal(t, codes(err), []diag.Code{diag.SemaBinaryTypeMismatch})
}

func TestLetRules(t *testing.T) {
	_, _, err := typecheck(t, `
fn main() -> i32 {
    let a: i32 = 1;
    let b: bool = a;
    let c: Nope = 2;
    return a;
}`)
	be.Equal(t, codes(err), []diag.Code{diag.SemaLocalTypeMismatch, diag.SemaUnknownType})
	errs := diag.Errors(err)
	be.Equal(t, errs[0].Reason,
		"The expression assigned to variable 'b' must have type 'bool' but it actually has type 'i32'")
	be.Equal(t, errs[1].Reason, "The type 'Nope' doesn't exist")
}

func TestFailedLetIsNotRegistered(t *testing.T) {
	_, _, err := typecheck(t, "fn main() -> i32 { let x: bool = 1; return x; }")
	be.Equal(t, codes(err), []diag.Code{diag.SemaLocalTypeMismatch, diag.SemaUndefinedName})
}

func TestAccumulatesAcrossStatementsAndFunctions(t *testing.T) {
	_, _, err := typecheck(t, `
fn a() -> i32 { y; return 1 + true; }
fn b() -> Missing { return -true; }
fn c() -> i32 { return 3; }
`)
	be.Equal(t, codes(err), []diag.Code{
		diag.SemaUndefinedName,
		diag.SemaBinaryTypeMismatch,
		diag.SemaUnknownType,
		diag.SemaUnaryTypeMismatch,
	})
}

func TestParamsAreLocalsAndScopesAreIsolated(t *testing.T) {
	_, _, err := typecheck(t, `
fn add(a: i32, b: i32) -> i32 { return a + b; }
fn other() -> i32 { return a; }
`)
	be.Equal(t, codes(err), []diag.Code{diag.SemaUndefinedName})
}

func TestStructsAndMethods(t *testing.T) {
	tc, file, err := typecheck(t, `
struct Point { x: i32 }
impl Point {
    fn origin() -> Point { return Point::origin(); }
    fn id(self) -> Point { return self; }
}
fn main() -> Point { let p: Point = Point::origin(); return Point::id(p); }
`)
	be.Err(t, err, nil)
	body, _ := tc.BodyType(file.Fns()[0])
	be.Equal(t, body.Name, "Point")
}

func TestUnknownReturnTypeReported(t *testing.T) {
	// резолвер молча подставляет (), а проверка типов сообщает об ошибке
	_, _, err := typecheck(t, "fn f() -> Later { } struct Other { }")
	be.Equal(t, codes(err), []diag.Code{diag.SemaUnknownType})
}

func TestExprTypesRecorded(t *testing.T) {
	tc, file, err := typecheck(t, "fn f() -> bool { return true; }")
	be.Err(t, err, nil)
	ret := file.Fns()[0].Body.Stmts[0].(*ast.ReturnStmt)
	ty, ok := tc.ExprType(ret.Value)
	be.True(t, ok)
	be.Equal(t, ty.Name, "bool")
}

func TestCheckMain(t *testing.T) {
	cases := []struct {
		src    string
		code   diag.Code
		reason string
	}{
		{"fn helper() -> () { }", diag.SemaMissingMain, "Could not find the main function"},
		{"fn main(a: i32) -> () { }", diag.SemaMainParams, "Main function takes no arguments, but 1 was provided"},
		{"fn main(a: i32, b: i32) -> () { }", diag.SemaMainParams, "Main function takes no arguments, but 2 were provided"},
		{"impl T { fn main() -> () { } }", diag.SemaMissingMain, "Could not find the main function"},
	}
	for _, tc := range cases {
		err := CheckMain{}.Run(parseSnippet(t, tc.src))
		errs := diag.Errors(err)
		be.Equal(t, len(errs), 1)
		be.Equal(t, errs[0].Code, tc.code)
		be.Equal(t, errs[0].Reason, tc.reason)
	}
	be.Err(t, CheckMain{}.Run(parseSnippet(t, "fn main() -> () { }")), nil)
}

func TestEngineRunsAllAnalyses(t *testing.T) {
	file := parseSnippet(t, "fn f() -> i32 { return true; }")
	r := symbols.NewResolver()
	r.Resolve(file)

	bag := diag.NewBag(10)
	err := NewEngine(diag.BagReporter{Bag: bag}).
		Register(NewTypeChecker(r)).
		Register(CheckMain{}).
		Run(file)

	be.True(t, errors.Is(err, diag.Kind(diag.SemaReturnTypeMismatch)))
	be.True(t, errors.Is(err, diag.Kind(diag.SemaMissingMain)))
	be.Equal(t, bag.Len(), 2)
	be.Equal(t, r.Table().Depth(), 1)
}

func TestCheckDuplicates(t *testing.T) {
	file := parseSnippet(t, `
fn f() -> i32 { return 1; }
fn f() -> i32 { return 2; }
struct bool { }
fn main() -> i32 { return f(); }
`)
	r := symbols.NewResolver()
	r.Resolve(file)

	err := CheckDuplicates{Resolver: r}.Run(file)
	errs := diag.Errors(err)
	be.Equal(t, len(errs), 2)
	be.Equal(t, codes(err), []diag.Code{diag.SemaDuplicateDefinition, diag.SemaDuplicateDefinition})
	be.Equal(t, errs[0].Reason, "'bool' is a builtin type and cannot be redefined")
	be.Equal(t, len(errs[0].Notes), 0)

	fnDup := errs[1]
	be.Equal(t, fnDup.Reason, "the function 'f' is defined multiple times")
	be.Equal(t, len(fnDup.Notes), 1)
	first := file.Fns()[0].Name.Span
	be.Equal(t, fnDup.Notes[0].Span, first)
	be.Equal(t, fnDup.Span, file.Fns()[1].Name.Span)

	be.Err(t, CheckDuplicates{Resolver: r}.Run(file), diag.Kind(diag.SemaDuplicateDefinition))
}

func TestEngineForwardsDuplicateNotes(t *testing.T) {
	file := parseSnippet(t, "struct S { } struct S { } fn main() -> () { }")
	r := symbols.NewResolver()
	r.Resolve(file)

	bag := diag.NewBag(10)
	err := NewEngine(diag.BagReporter{Bag: bag}).Register(CheckDuplicates{Resolver: r}).Run(file)
	be.Err(t, err, "check-duplicates")
	be.Equal(t, bag.Len(), 1)
	d := bag.Items()[0]
	be.Equal(t, d.Message, "the type 'S' is defined multiple times")
	be.Equal(t, d.Notes[0].Span, file.Structs()[0].Name.Span)
}
