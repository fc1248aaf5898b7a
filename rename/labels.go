package rename

import "github.com/dungjk/jsmin/ast"

// renameLabels assigns every control-flow label an alternate name derived
// solely from its lexical nesting depth (spec §4.4 step 5): the outermost
// label in any function gets "a", a label nested one level deeper gets
// "b", and so on. Depth resets at each function boundary, and a Break/
// Continue's LabelAlt is copied from the Labeled statement it targets by
// source name, found via a small stack of currently-enclosing labels.
func renameLabels(programs []*ast.Program) {
	for _, p := range programs {
		walkLabelStmts(p.Body.List, nil)
	}
}

type labelFrame struct {
	name string
	alt  string
}

// depthName returns the depth'th name (0-indexed) the short-name generator
// would produce, skipping reserved words the grammar also excludes from
// label position. Collisions with variable/function identifiers are
// impossible regardless, since labels are read back through LabelAlt, never
// through Binding.AlternateName (spec §4.4 step 5's disjoint-namespace note).
func depthName(depth int) string {
	g := newGenerator(nil, false)
	var name string
	for i := 0; i <= depth; i++ {
		name = g.Next()
	}
	return name
}

func walkLabelStmts(list []ast.Stmt, stack []labelFrame) {
	for _, s := range list {
		walkLabelStmt(s, stack)
	}
}

func walkLabelStmt(s ast.Stmt, stack []labelFrame) {
	switch n := s.(type) {
	case *ast.Labeled:
		alt := depthName(len(stack))
		n.Label.LabelAlt = alt
		walkLabelStmt(n.Stmt, append(stack, labelFrame{name: n.Label.Name, alt: alt}))

	case *ast.Block:
		walkLabelStmts(n.List, stack)
	case *ast.If:
		walkLabelStmt(n.Consequent, stack)
		if n.Alternate != nil {
			walkLabelStmt(n.Alternate, stack)
		}
	case *ast.For:
		walkLabelStmt(n.Body, stack)
	case *ast.ForIn:
		walkLabelStmt(n.Body, stack)
	case *ast.While:
		walkLabelStmt(n.Body, stack)
	case *ast.DoWhile:
		walkLabelStmt(n.Body, stack)
	case *ast.Switch:
		for _, c := range n.Cases {
			walkLabelStmts(c.Body, stack)
		}
	case *ast.Try:
		walkLabelStmts(n.Block.List, stack)
		if n.Handler != nil {
			walkLabelStmts(n.Handler.Body.List, stack)
		}
		if n.Finally != nil {
			walkLabelStmts(n.Finally.List, stack)
		}
	case *ast.With:
		walkLabelStmt(n.Body, stack)
	case *ast.Break:
		resolveLabelRef(n.Label, stack)
	case *ast.Continue:
		resolveLabelRef(n.Label, stack)
	case *ast.FunctionObject:
		walkLabelStmts(n.Body.List, nil) // depth resets per function
	}
}

func resolveLabelRef(label *ast.Ident, stack []labelFrame) {
	if label == nil {
		return
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].name == label.Name {
			label.LabelAlt = stack[i].alt
			return
		}
	}
}
