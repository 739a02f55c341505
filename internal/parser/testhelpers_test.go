package parser

import (
	"fmt"
	"strings"
	"testing"

	"scooter/internal/ast"
	"scooter/internal/diag"
	"scooter/internal/lexer"
	"scooter/internal/source"
)

func parseSource(t *testing.T, input string) (*ast.File, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sc", []byte(input))
	bag := diag.NewBag(100)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	res := ParseFile(lx, Options{Reporter: rep})
	return res.File, bag
}

func diagnosticsSummary(bag *diag.Bag) string {
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

// exprString печатает выражение в скобочной форме, чтобы проверять приоритеты.
func exprString(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.IntLit:
		return fmt.Sprint(e.Value)
	case *ast.BoolLit:
		return fmt.Sprint(e.Value)
	case *ast.Ident:
		return e.Name
	case *ast.UnaryExpr:
		return "(" + e.Op.String() + exprString(e.X) + ")"
	case *ast.BinaryExpr:
		return "(" + exprString(e.X) + " " + e.Op.String() + " " + exprString(e.Y) + ")"
	case *ast.CallExpr:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = exprString(a)
		}
		return e.Callee + "(" + strings.Join(args, ", ") + ")"
	}
	return "?"
}
