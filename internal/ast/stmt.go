package ast

import "scooter/internal/source"

type Block struct {
	Stmts []Stmt
	Span  source.Span
}

// LetStmt: let Name: Type = Value
type LetStmt struct {
	Name  *Ident
	Type  *TypeRef
	Value Expr
	Span  source.Span
}

type ReturnStmt struct {
	Value Expr
	Span  source.Span
}

type ExprStmt struct {
	X    Expr
	Span source.Span
}

func (b *Block) Pos() source.Span      { return b.Span }
func (s *LetStmt) Pos() source.Span    { return s.Span }
func (s *ReturnStmt) Pos() source.Span { return s.Span }
func (s *ExprStmt) Pos() source.Span   { return s.Span }

func (*LetStmt) stmtNode()    {}
func (*ReturnStmt) stmtNode() {}
func (*ExprStmt) stmtNode()   {}
