package ast

import "fmt"

// A Visitor's Before method is invoked for each node encountered by Walk.
// If the returned Visitor w is non-nil, Walk visits each child of node
// with w, followed by a call to w.After.
type Visitor interface {
	Before(node Node) (w Visitor)
	After(node Node)
}

// Walk traverses an AST in depth-first order, calling before(node) for
// each node (node is never nil). If before returns true, Walk recurses
// into node's non-nil children, then calls after(node). Either callback
// may be nil (before is then assumed to always return true). As a side
// effect, Walk sets each visited child's parent back-reference to node,
// which scope.Resolver and rewrite.Rewrite rely on to walk upward from a
// reference to its enclosing function or block.
func Walk(node Node, before func(Node) bool, after func(Node)) {
	walk(node, nil, before, after)
}

// WalkVisitor traverses an AST in depth-first order with a [Visitor].
func WalkVisitor(node Node, visitor Visitor) {
	v := &stackVisitor{stack: []Visitor{visitor}}
	walk(node, nil, v.Before, v.After)
}

type stackVisitor struct {
	stack []Visitor
}

func (v *stackVisitor) Before(node Node) bool {
	current := v.stack[len(v.stack)-1]
	next := current.Before(node)
	if next == nil {
		return false
	}
	v.stack = append(v.stack, next)
	return true
}

func (v *stackVisitor) After(node Node) {
	v.stack[len(v.stack)-1] = nil
	v.stack = v.stack[:len(v.stack)-1]
}

func walkStmtList(list []Stmt, parent Node, before func(Node) bool, after func(Node)) {
	for _, n := range list {
		walk(n, parent, before, after)
	}
}

func walkExprList(list []Expr, parent Node, before func(Node) bool, after func(Node)) {
	for _, n := range list {
		if n == nil {
			continue
		}
		walk(n, parent, before, after)
	}
}

func walk(node Node, parent Node, before func(Node) bool, after func(Node)) {
	if parent != nil {
		node.SetParent(parent)
	}
	if before != nil && !before(node) {
		return
	}

	switch n := node.(type) {
	case *Ident, *NumberLiteral, *StringLiteral, *BooleanLiteral, *NullLiteral,
		*RegExpLiteral, *EmptyStatement:
		// leaves: nothing to recurse into

	case *ArrayLiteral:
		walkExprList(n.Elements, n, before, after)

	case *ObjectLiteral:
		for _, p := range n.Properties {
			walk(p, n, before, after)
		}

	case *ObjectProperty:
		if n.Computed {
			walk(n.Key, n, before, after)
		}
		walk(n.Value, n, before, after)

	case *GroupingOperator:
		walk(n.X, n, before, after)

	case *UnaryOperator:
		walk(n.X, n, before, after)

	case *PostfixOperator:
		walk(n.X, n, before, after)

	case *BinaryOperator:
		walk(n.X, n, before, after)
		walk(n.Y, n, before, after)

	case *AssignmentOperator:
		walk(n.Target, n, before, after)
		walk(n.Value, n, before, after)

	case *Conditional:
		walk(n.Test, n, before, after)
		walk(n.Consequent, n, before, after)
		walk(n.Alternate, n, before, after)

	case *CallNode:
		walk(n.Fun, n, before, after)
		walkExprList(n.Args, n, before, after)

	case *NewExpr:
		walk(n.Callee, n, before, after)
		walkExprList(n.Args, n, before, after)

	case *Member:
		walk(n.X, n, before, after)
		walk(n.Property, n, before, after)

	case *FunctionObject:
		if n.Name != nil {
			walk(n.Name, n, before, after)
		}
		for _, p := range n.Params {
			walk(p, n, before, after)
		}
		walk(n.Body, n, before, after)

	case *Param:
		walk(n.Name, n, before, after)

	case *Block:
		walkStmtList(n.List, n, before, after)

	case *Declarator:
		walk(n.Name, n, before, after)
		if n.Init != nil {
			walk(n.Init, n, before, after)
		}

	case *VarStatement:
		for _, d := range n.Declarators {
			walk(d, n, before, after)
		}

	case *ExpressionStatement:
		walk(n.X, n, before, after)

	case *If:
		walk(n.Test, n, before, after)
		walk(n.Consequent, n, before, after)
		if n.Alternate != nil {
			walk(n.Alternate, n, before, after)
		}

	case *For:
		if n.Init != nil {
			walk(n.Init, n, before, after)
		}
		if n.Test != nil {
			walk(n.Test, n, before, after)
		}
		if n.Update != nil {
			walk(n.Update, n, before, after)
		}
		walk(n.Body, n, before, after)

	case *ForIn:
		walk(n.Lhs, n, before, after)
		walk(n.Source, n, before, after)
		walk(n.Body, n, before, after)

	case *While:
		walk(n.Test, n, before, after)
		walk(n.Body, n, before, after)

	case *DoWhile:
		walk(n.Body, n, before, after)
		walk(n.Test, n, before, after)

	case *Switch:
		walk(n.Discriminant, n, before, after)
		for _, c := range n.Cases {
			walk(c, n, before, after)
		}

	case *SwitchCase:
		if n.Test != nil {
			walk(n.Test, n, before, after)
		}
		walkStmtList(n.Body, n, before, after)

	case *Catch:
		if n.Param != nil {
			walk(n.Param, n, before, after)
		}
		walk(n.Body, n, before, after)

	case *Try:
		walk(n.Block, n, before, after)
		if n.Handler != nil {
			walk(n.Handler, n, before, after)
		}
		if n.Finally != nil {
			walk(n.Finally, n, before, after)
		}

	case *With:
		walk(n.Object, n, before, after)
		walk(n.Body, n, before, after)

	case *Throw:
		walk(n.X, n, before, after)

	case *Return:
		if n.X != nil {
			walk(n.X, n, before, after)
		}

	case *Break:
		if n.Label != nil {
			walk(n.Label, n, before, after)
		}

	case *Continue:
		if n.Label != nil {
			walk(n.Label, n, before, after)
		}

	case *Labeled:
		walk(n.Label, n, before, after)
		walk(n.Stmt, n, before, after)

	case *Program:
		walk(n.Body, n, before, after)

	default:
		panic(fmt.Sprintf("ast.Walk: unexpected node type %T", n))
	}

	if after != nil {
		after(node)
	}
}
