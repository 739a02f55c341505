// Package ast holds the syntax tree produced by the parser.
//
// Nodes are plain pointers; passes traverse them with Walk or Inspect and
// override only the node kinds they care about.
package ast

import "scooter/internal/source"

// Node is implemented by every syntax tree node.
type Node interface {
	Pos() source.Span
}

// Item is a top-level declaration.
type Item interface {
	Node
	itemNode()
}

// Stmt is a statement inside a block.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression.
type Expr interface {
	Node
	exprNode()
}
