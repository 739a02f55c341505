package sema

import (
	"errors"

	"scooter/internal/ast"
	"scooter/internal/diag"
	"scooter/internal/source"
	"scooter/internal/symbols"
	"scooter/internal/types"
)

// TypeChecker computes and validates the type of every statement and
// expression. It borrows the resolver's table: each function gets its own
// scope holding parameters and successfully checked locals.
//
// Errors accumulate. A failing statement contributes no type and checking
// continues with its siblings.
type TypeChecker struct {
	resolver  *symbols.Resolver
	errs      []error
	exprTypes map[ast.Expr]types.Type
	bodyTypes map[*ast.FnDecl]types.Type
}

// NewTypeChecker needs a resolver that has already run both passes.
func NewTypeChecker(r *symbols.Resolver) *TypeChecker {
	return &TypeChecker{
		resolver:  r,
		exprTypes: make(map[ast.Expr]types.Type),
		bodyTypes: make(map[*ast.FnDecl]types.Type),
	}
}

func (tc *TypeChecker) Name() string { return "typeck" }

func (tc *TypeChecker) Run(file *ast.File) error { return tc.Check(file) }

// Check type-checks every function and impl method of file.
func (tc *TypeChecker) Check(file *ast.File) error {
	tc.errs = tc.errs[:0]
	for _, fn := range file.Functions() {
		tc.checkFn(fn)
	}
	return errors.Join(tc.errs...)
}

// ExprType returns the type computed for x, if it checked successfully.
func (tc *TypeChecker) ExprType(x ast.Expr) (types.Type, bool) {
	t, ok := tc.exprTypes[x]
	return t, ok
}

// BodyType returns the type of fn's body: the type of its last statement,
// or () for an empty body.
func (tc *TypeChecker) BodyType(fn *ast.FnDecl) (types.Type, bool) {
	t, ok := tc.bodyTypes[fn]
	return t, ok
}

func (tc *TypeChecker) errorf(code diag.Code, sp source.Span, format string, args ...any) {
	tc.errs = append(tc.errs, diag.ErrorAt(code, sp, format, args...))
}

func (tc *TypeChecker) checkFn(fn *ast.FnDecl) {
	declared, declaredOK := tc.resolver.ResolveType(fn.ReturnType.Name)
	if !declaredOK {
		tc.errorf(diag.SemaUnknownType, fn.ReturnType.Span, "Unknown type '%s'", fn.ReturnType.Name)
	}

	table := tc.resolver.Table()
	table.Push()
	defer func() {
		if err := table.Pop(); err != nil {
			tc.errs = append(tc.errs, err)
		}
	}()

	for _, p := range fn.Params {
		t, ok := tc.resolver.ResolveType(p.Type.Name)
		if !ok {
			tc.errorf(diag.SemaUnknownType, p.Type.Span, "The type '%s' doesn't exist", p.Type.Name)
			continue
		}
		table.Insert(p.Name.Name, symbols.NewLocal(t, p.Span))
	}

	body, bodyOK := types.Unit(), true
	for _, stmt := range fn.Body.Stmts {
		body, bodyOK = tc.checkStmt(stmt)
	}
	if !bodyOK {
		return
	}
	tc.bodyTypes[fn] = body
	if declaredOK && !body.Equal(declared) {
		tc.errorf(diag.SemaReturnTypeMismatch, fn.ReturnType.Span,
			"Function must return type '%s' but type '%s' is returned instead", declared, body)
	}
}

func (tc *TypeChecker) checkStmt(stmt ast.Stmt) (types.Type, bool) {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		actual, ok := tc.checkExpr(s.Value)
		expected, expectedOK := tc.resolver.ResolveType(s.Type.Name)
		if !expectedOK {
			tc.errorf(diag.SemaUnknownType, s.Type.Span, "The type '%s' doesn't exist", s.Type.Name)
			return types.Type{}, false
		}
		if !ok {
			return types.Type{}, false
		}
		if !actual.Equal(expected) {
			tc.errorf(diag.SemaLocalTypeMismatch, s.Value.Pos(),
				"The expression assigned to variable '%s' must have type '%s' but it actually has type '%s'",
				s.Name.Name, expected, actual)
			return types.Type{}, false
		}
		tc.resolver.Table().Insert(s.Name.Name, symbols.NewLocal(actual, s.Name.Span))
		return actual, true
	case *ast.ReturnStmt:
		return tc.checkExpr(s.Value)
	case *ast.ExprStmt:
		return tc.checkExpr(s.X)
	}
	return types.Type{}, false
}

func (tc *TypeChecker) checkExpr(x ast.Expr) (types.Type, bool) {
	t, ok := tc.exprType(x)
	if ok {
		tc.exprTypes[x] = t
	}
	return t, ok
}

func (tc *TypeChecker) exprType(x ast.Expr) (types.Type, bool) {
	switch x := x.(type) {
	case *ast.IntLit:
		return types.I32(), true
	case *ast.BoolLit:
		return types.Bool(), true

	case *ast.Ident:
		t, ok := tc.resolver.ResolveLocal(x.Name)
		if !ok {
			tc.errorf(diag.SemaUndefinedName, x.Span, "Cannot find '%s' in this scope", x.Name)
		}
		return t, ok

	case *ast.CallExpr:
		// аргументы проверяются на собственные ошибки, сигнатура не сверяется
		for _, arg := range x.Args {
			tc.checkExpr(arg)
		}
		fn, ok := tc.resolver.ResolveFunction(x.Callee)
		if !ok {
			tc.errorf(diag.SemaUndefinedFunction, x.CalleeSpan, "Undefined function '%s'", x.Callee)
			return types.Type{}, false
		}
		return fn.Type, true

	case *ast.BinaryExpr:
		lhs, lok := tc.checkExpr(x.X)
		rhs, rok := tc.checkExpr(x.Y)
		if !lok || !rok {
			return types.Type{}, false
		}
		if !lhs.Equal(rhs) {
			tc.errorf(diag.SemaBinaryTypeMismatch, x.Y.Pos(),
				"Left hand side of binary expression has type '%s' but the right hand side has type '%s'", lhs, rhs)
			return types.Type{}, false
		}
		return lhs, true

	case *ast.UnaryExpr:
		t, ok := tc.checkExpr(x.X)
		if !ok {
			return types.Type{}, false
		}
		if !t.Equal(types.I32()) {
			tc.errorf(diag.SemaUnaryTypeMismatch, x.X.Pos(),
				"Unary '%s' requires type '%s' but the operand has type '%s'", x.Op, types.I32Name, t)
			return types.Type{}, false
		}
		return t, true
	}
	return types.Type{}, false
}
