// Package rewrite implements the Final-Pass Rewriter (spec §4.3): a single
// walk over an already-resolved tree that performs the two rewrites which
// need binding information but must run before renaming.
package rewrite

import (
	"github.com/dungjk/jsmin/ast"
	"github.com/dungjk/jsmin/scope"
	"github.com/dungjk/jsmin/token"
)

// Options controls which of the two rewriter duties run. Both default to
// off, matching "optional transformation flag" in spec §4.3 duty 1; duty 2
// (dead generated-binding removal) is likewise gated so a host that never
// introduces generated bindings pays nothing for the extra walk.
type Options struct {
	// RewriteBooleanLiterals replaces every `true`/`false` literal with the
	// equivalent `!0`/`!1` unary-not expression (two bytes shorter for
	// `true`, three for `false`).
	RewriteBooleanLiterals bool

	// PruneDeadGeneratedBindings deletes `var` declarators whose binding
	// was generated rather than written by the source and has zero
	// references, per spec §4.3 duty 2.
	PruneDeadGeneratedBindings bool
}

// Rewrite runs both final-pass duties over every program in programs,
// in place. It must run after scope.Resolve and before rename.Rename.
func Rewrite(programs []*ast.Program, global *scope.Environment, opts Options) {
	for _, p := range programs {
		if opts.RewriteBooleanLiterals {
			p.Body = rewriteBlock(p.Body).(*ast.Block)
		}
		if opts.PruneDeadGeneratedBindings {
			pruneBlock(p.Body)
		}
	}
}

// -----------------------------------------------------------------------------
// Duty 1: true/false -> !0/!1

func zeroOrOne(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

func notLiteral(b *ast.BooleanLiteral) ast.Expr {
	n := &ast.NumberLiteral{ValuePos: token.NoPos, Raw: "", Value: zeroOrOne(!b.Value)}
	u := &ast.UnaryOperator{OpPos: b.ValuePos, X: n}
	u.Op = token.NOT
	return u
}

// rewriteExpr returns x with every BooleanLiteral replaced by its !0/!1
// form, recursing into every expression position that can hold one.
func rewriteExpr(x ast.Expr) ast.Expr {
	if x == nil {
		return nil
	}
	switch n := x.(type) {
	case *ast.BooleanLiteral:
		return notLiteral(n)
	case *ast.Ident, *ast.NumberLiteral, *ast.StringLiteral, *ast.NullLiteral, *ast.RegExpLiteral:
		return n
	case *ast.ArrayLiteral:
		for i, el := range n.Elements {
			n.Elements[i] = rewriteExpr(el)
		}
		return n
	case *ast.ObjectLiteral:
		for _, prop := range n.Properties {
			prop.Value = rewriteExpr(prop.Value)
			if prop.Computed {
				prop.Key = rewriteExpr(prop.Key)
			}
		}
		return n
	case *ast.GroupingOperator:
		n.X = rewriteExpr(n.X)
		return n
	case *ast.UnaryOperator:
		n.X = rewriteExpr(n.X)
		return n
	case *ast.PostfixOperator:
		n.X = rewriteExpr(n.X)
		return n
	case *ast.BinaryOperator:
		n.X = rewriteExpr(n.X)
		n.Y = rewriteExpr(n.Y)
		return n
	case *ast.AssignmentOperator:
		n.Target = rewriteExpr(n.Target)
		n.Value = rewriteExpr(n.Value)
		return n
	case *ast.Conditional:
		n.Test = rewriteExpr(n.Test)
		n.Consequent = rewriteExpr(n.Consequent)
		n.Alternate = rewriteExpr(n.Alternate)
		return n
	case *ast.CallNode:
		n.Fun = rewriteExpr(n.Fun)
		for i, a := range n.Args {
			n.Args[i] = rewriteExpr(a)
		}
		return n
	case *ast.NewExpr:
		n.Callee = rewriteExpr(n.Callee)
		for i, a := range n.Args {
			n.Args[i] = rewriteExpr(a)
		}
		return n
	case *ast.Member:
		n.X = rewriteExpr(n.X)
		if n.Computed {
			n.Property = rewriteExpr(n.Property)
		}
		return n
	case *ast.FunctionObject:
		n.Body = rewriteBlock(n.Body).(*ast.Block)
		return n
	}
	return x
}

// rewriteBlock and rewriteStmt mirror rewriteExpr over statement positions.
func rewriteBlock(b *ast.Block) ast.Stmt {
	for i, s := range b.List {
		b.List[i] = rewriteStmt(s)
	}
	return b
}

func rewriteStmt(s ast.Stmt) ast.Stmt {
	switch n := s.(type) {
	case *ast.Block:
		return rewriteBlock(n)
	case *ast.VarStatement:
		for _, d := range n.Declarators {
			d.Init = rewriteExpr(d.Init)
		}
		return n
	case *ast.ExpressionStatement:
		n.X = rewriteExpr(n.X)
		return n
	case *ast.EmptyStatement:
		return n
	case *ast.If:
		n.Test = rewriteExpr(n.Test)
		n.Consequent = rewriteStmt(n.Consequent)
		if n.Alternate != nil {
			n.Alternate = rewriteStmt(n.Alternate)
		}
		return n
	case *ast.For:
		n.Init = rewriteForClause(n.Init)
		n.Test = rewriteExpr(n.Test)
		n.Update = rewriteExpr(n.Update)
		n.Body = rewriteStmt(n.Body)
		return n
	case *ast.ForIn:
		n.Lhs = rewriteForClause(n.Lhs)
		n.Source = rewriteExpr(n.Source)
		n.Body = rewriteStmt(n.Body)
		return n
	case *ast.While:
		n.Test = rewriteExpr(n.Test)
		n.Body = rewriteStmt(n.Body)
		return n
	case *ast.DoWhile:
		n.Body = rewriteStmt(n.Body)
		n.Test = rewriteExpr(n.Test)
		return n
	case *ast.Switch:
		n.Discriminant = rewriteExpr(n.Discriminant)
		for _, c := range n.Cases {
			c.Test = rewriteExpr(c.Test)
			for i, cs := range c.Body {
				c.Body[i] = rewriteStmt(cs)
			}
		}
		return n
	case *ast.Try:
		n.Block = rewriteBlock(n.Block).(*ast.Block)
		if n.Handler != nil {
			n.Handler.Body = rewriteBlock(n.Handler.Body).(*ast.Block)
		}
		if n.Finally != nil {
			n.Finally = rewriteBlock(n.Finally).(*ast.Block)
		}
		return n
	case *ast.With:
		n.Object = rewriteExpr(n.Object)
		n.Body = rewriteStmt(n.Body)
		return n
	case *ast.Throw:
		n.X = rewriteExpr(n.X)
		return n
	case *ast.Return:
		n.X = rewriteExpr(n.X)
		return n
	case *ast.Break, *ast.Continue:
		return n
	case *ast.Labeled:
		n.Stmt = rewriteStmt(n.Stmt)
		return n
	case *ast.FunctionObject:
		n.Body = rewriteBlock(n.Body).(*ast.Block)
		return n
	}
	return s
}

// rewriteForClause rewrites the Init/Lhs slot of a For/ForIn, which holds
// either a *VarStatement or a bare Expr (a plain assignment target).
func rewriteForClause(n ast.Node) ast.Node {
	switch v := n.(type) {
	case nil:
		return nil
	case ast.Stmt:
		return rewriteStmt(v)
	case ast.Expr:
		return rewriteExpr(v)
	}
	return n
}

// -----------------------------------------------------------------------------
// Duty 2: dead generated-binding removal

// pruneBlock walks b looking for VarStatements whose Declarators bind a
// generated, zero-reference binding, removing both the declarator and its
// Environment entry. It does not descend into nested FunctionObject bodies,
// and Rewrite calls it only on each program's body, so declarators inside
// a function body are never pruned.
func pruneBlock(b *ast.Block) {
	kept := b.List[:0]
	for _, s := range b.List {
		if vs, ok := s.(*ast.VarStatement); ok {
			vs.Declarators = pruneDeclarators(vs.Declarators)
			if len(vs.Declarators) == 0 {
				continue // drop the now-empty statement entirely
			}
			kept = append(kept, vs)
			continue
		}
		pruneNested(s)
		kept = append(kept, s)
	}
	b.List = kept
}

// pruneDeclarators removes every declarator whose name is bound to a
// generated, never-referenced binding. Iterated and rebuilt in one forward
// pass over a fresh slice, so no index is invalidated mid-removal (spec
// §4.3 duty 2's iteration-safety requirement).
func pruneDeclarators(in []*ast.Declarator) []*ast.Declarator {
	out := make([]*ast.Declarator, 0, len(in))
	for _, d := range in {
		if isDeadGenerated(d.Name) {
			if b, ok := d.Name.Ref.(*scope.Binding); ok {
				b.Env.Delete(b.Name)
			}
			continue
		}
		out = append(out, d)
	}
	return out
}

func isDeadGenerated(id *ast.Ident) bool {
	b, ok := id.Ref.(*scope.Binding)
	if !ok || b == nil {
		return false
	}
	return b.Category == scope.Placeholder && b.RefCount == 0
}

// pruneNested descends into every statement shape that can contain a
// VarStatement belonging to the *same* function scope (the hoisting set,
// mirroring scope.collectHoistable's traversal), stopping at nested
// function bodies.
func pruneNested(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Block:
		pruneBlock(n)
	case *ast.If:
		pruneNested(n.Consequent)
		if n.Alternate != nil {
			pruneNested(n.Alternate)
		}
	case *ast.For:
		if vs, ok := n.Init.(*ast.VarStatement); ok {
			vs.Declarators = pruneDeclarators(vs.Declarators)
		}
		pruneNested(n.Body)
	case *ast.ForIn:
		pruneNested(n.Body)
	case *ast.While:
		pruneNested(n.Body)
	case *ast.DoWhile:
		pruneNested(n.Body)
	case *ast.Switch:
		for _, c := range n.Cases {
			for _, cs := range c.Body {
				pruneNested(cs)
			}
		}
	case *ast.Try:
		pruneBlock(n.Block)
		if n.Handler != nil {
			pruneBlock(n.Handler.Body)
		}
		if n.Finally != nil {
			pruneBlock(n.Finally)
		}
	case *ast.With:
		pruneNested(n.Body)
	case *ast.Labeled:
		pruneNested(n.Stmt)
	}
}
