package ast

import "fmt"

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of node with the visitor w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Children returns the direct children of node, in source order.
func Children(node Node) []Node {
	var children []Node
	switch n := node.(type) {
	case *Program:
		for _, s := range n.Body {
			children = append(children, s)
		}
	case *ExpressionStatement:
		children = append(children, n.Expression)
	case *BlockStatement:
		for _, s := range n.Body {
			children = append(children, s)
		}
	case *FunctionDeclaration:
		if n.ID != nil {
			children = append(children, n.ID)
		}
		for _, p := range n.Params {
			children = append(children, p)
		}
		if n.Body != nil {
			children = append(children, n.Body)
		}
	case *BinaryExpression:
		children = append(children, n.Left, n.Right)
	case *CallExpression:
		children = append(children, n.Callee)
		children = appendExprs(children, n.Arguments)
	case *SequenceExpression:
		children = appendExprs(children, n.Expressions)
	case *ObjectExpression:
		children = appendExprs(children, n.Properties)
	case *ArrayExpression:
		children = appendExprs(children, n.Elements)
	case *Identifier, *Literal:
	default:
		panic(fmt.Sprintf("unexpected node type %T", node))
	}
	return children
}

func appendExprs(nodes []Node, exprs []Expr) []Node {
	for _, e := range exprs {
		nodes = append(nodes, e)
	}
	return nodes
}

// Walk traverses an AST in depth-first order: It starts by calling
// v.Visit(node); node must not be nil. If the visitor w returned by
// v.Visit(node) is not nil, Walk is invoked recursively with visitor
// w for each of the children of node, followed by a call of
// w.Visit(nil).
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range Children(node) {
		Walk(v, child)
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

// Inspect traverses an AST in depth-first order: It starts by calling
// f(node); node must not be nil. If f returns true, Inspect invokes f
// recursively for each of the children of node, followed by a
// call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
