package ast

import "scooter/internal/source"

type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

type UnaryOp uint8

const (
	OpNeg UnaryOp = iota
)

func (op UnaryOp) String() string {
	if op == OpNeg {
		return "-"
	}
	return "?"
}

type Ident struct {
	Name string
	Span source.Span
}

type IntLit struct {
	Value int32
	Span  source.Span
}

type BoolLit struct {
	Value bool
	Span  source.Span
}

type BinaryExpr struct {
	Op   BinaryOp
	X, Y Expr
	Span source.Span
}

type UnaryExpr struct {
	Op   UnaryOp
	X    Expr
	Span source.Span
}

// CallExpr calls Callee, which is "name" or "Type::name".
type CallExpr struct {
	Callee     string
	CalleeSpan source.Span
	Args       []Expr
	Span       source.Span
}

func (e *Ident) Pos() source.Span      { return e.Span }
func (e *IntLit) Pos() source.Span     { return e.Span }
func (e *BoolLit) Pos() source.Span    { return e.Span }
func (e *BinaryExpr) Pos() source.Span { return e.Span }
func (e *UnaryExpr) Pos() source.Span  { return e.Span }
func (e *CallExpr) Pos() source.Span   { return e.Span }

func (*Ident) exprNode()      {}
func (*IntLit) exprNode()     {}
func (*BoolLit) exprNode()    {}
func (*BinaryExpr) exprNode() {}
func (*UnaryExpr) exprNode()  {}
func (*CallExpr) exprNode()   {}
