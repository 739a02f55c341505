package lower

import (
	"fmt"

	"scooter/internal/ast"
	"scooter/internal/ir"
)

func (e *Engine) lowerStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		pos, err := e.lowerExpr(s.Value)
		if err != nil {
			return err
		}
		src, err := e.dest(pos)
		if err != nil {
			return err
		}
		// имя связывается после правой части: `let x = x` видит внешний x
		name := ir.Name(e.names.Insert(s.Name.Name))
		_, err = e.emitChecked(ir.NewCopy(name, src))
		return err

	case *ast.ExprStmt:
		pos, err := e.lowerExpr(s.X)
		if err != nil {
			return err
		}
		src, err := e.dest(pos)
		if err != nil {
			return err
		}
		_, err = e.emitChecked(ir.NewCopy(e.freshTemp(), src))
		return err

	case *ast.ReturnStmt:
		pos, err := e.lowerExpr(s.Value)
		if err != nil {
			return err
		}
		src, err := e.dest(pos)
		if err != nil {
			return err
		}
		e.emit(ir.NewReturn(src))
		return nil
	}
	return fmt.Errorf("unsupported statement %T", stmt)
}
