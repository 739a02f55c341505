package lower

import (
	"fmt"

	"scooter/internal/ast"
	"scooter/internal/diag"
	"scooter/internal/ir"
)

// lowerExpr emits the instructions computing x and returns the position of
// the instruction whose destination holds the value.
func (e *Engine) lowerExpr(x ast.Expr) (int, error) {
	switch x := x.(type) {
	case *ast.IntLit:
		return e.lowerLiteral(ir.IntLiteral(x.Value))
	case *ast.BoolLit:
		return e.lowerLiteral(ir.BoolLiteral(x.Value))

	case *ast.Ident:
		idx, err := e.names.Find(x.Name)
		if err != nil {
			return 0, diag.ErrorAt(diag.SemaUnresolvedName, x.Span, "Cannot find '%s' in this scope", x.Name)
		}
		return e.emitChecked(ir.NewCopy(e.freshTemp(), ir.Name(idx)))

	case *ast.BinaryExpr:
		lpos, err := e.lowerExpr(x.X)
		if err != nil {
			return 0, err
		}
		rpos, err := e.lowerExpr(x.Y)
		if err != nil {
			return 0, err
		}
		lhs, err := e.dest(lpos)
		if err != nil {
			return 0, err
		}
		rhs, err := e.dest(rpos)
		if err != nil {
			return 0, err
		}
		return e.emitChecked(ir.NewBinary(e.freshTemp(), lhs, binaryOp(x.Op), rhs))

	case *ast.UnaryExpr:
		pos, err := e.lowerExpr(x.X)
		if err != nil {
			return 0, err
		}
		src, err := e.dest(pos)
		if err != nil {
			return 0, err
		}
		return e.emitChecked(ir.NewUnary(e.freshTemp(), ir.OpNeg, src))

	case *ast.CallExpr:
		return e.lowerCall(x)
	}
	return 0, fmt.Errorf("unsupported expression %T", x)
}

func (e *Engine) lowerLiteral(lit ir.Literal) (int, error) {
	c := ir.Const(e.pool.Insert(lit))
	return e.emitChecked(ir.NewCopy(e.freshTemp(), c))
}

// lowerCall: все аргументы вычисляются слева направо, затем подряд идут
// их param, затем call. Так param вложенного вызова не попадают между
// param внешнего.
func (e *Engine) lowerCall(call *ast.CallExpr) (int, error) {
	idx, err := e.labels.Find(call.Callee)
	if err != nil {
		return 0, diag.ErrorAt(diag.SemaUndefinedFunction, call.CalleeSpan, "Undefined function '%s'", call.Callee)
	}
	args := make([]ir.Addr, 0, len(call.Args))
	for _, arg := range call.Args {
		pos, err := e.lowerExpr(arg)
		if err != nil {
			return 0, err
		}
		src, err := e.dest(pos)
		if err != nil {
			return 0, err
		}
		args = append(args, src)
	}
	for _, a := range args {
		e.emit(ir.NewParam(a))
	}
	return e.emitChecked(ir.NewCall(e.freshTemp(), ir.Label{Index: idx}, argc(len(call.Args))))
}

func binaryOp(op ast.BinaryOp) ir.Op {
	switch op {
	case ast.OpSub:
		return ir.OpSub
	case ast.OpMul:
		return ir.OpMul
	case ast.OpDiv:
		return ir.OpDiv
	}
	return ir.OpAdd
}
