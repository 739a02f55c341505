package ast

import "fmt"

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of node with w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses the tree in depth-first order. Children are visited in
// source order, so the left operand of a binary expression comes before
// the right one and call arguments go left to right.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *File:
		for _, it := range n.Items {
			Walk(v, it)
		}
	case *FnDecl:
		Walk(v, n.Name)
		for _, p := range n.Params {
			Walk(v, p)
		}
		if n.ReturnType != nil {
			Walk(v, n.ReturnType)
		}
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *Param:
		Walk(v, n.Name)
		if n.Type != nil {
			Walk(v, n.Type)
		}
	case *StructDecl:
		Walk(v, n.Name)
		for _, f := range n.Fields {
			Walk(v, f)
		}
	case *Field:
		Walk(v, n.Name)
		Walk(v, n.Type)
	case *ImplDecl:
		Walk(v, n.Type)
		for _, m := range n.Methods {
			Walk(v, m)
		}
	case *Block:
		for _, s := range n.Stmts {
			Walk(v, s)
		}
	case *LetStmt:
		Walk(v, n.Name)
		Walk(v, n.Type)
		Walk(v, n.Value)
	case *ReturnStmt:
		Walk(v, n.Value)
	case *ExprStmt:
		Walk(v, n.X)
	case *BinaryExpr:
		Walk(v, n.X)
		Walk(v, n.Y)
	case *UnaryExpr:
		Walk(v, n.X)
	case *CallExpr:
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *Ident, *IntLit, *BoolLit, *TypeRef:
		// листья
	default:
		panic(fmt.Sprintf("ast.Walk: unexpected node type %T", n))
	}

	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses the tree calling f for each node; if f returns true,
// Inspect descends into the node's children. After the children, f(nil)
// is called.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
