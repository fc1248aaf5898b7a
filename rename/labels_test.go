package rename

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/dungjk/jsmin/ast"
)

func TestRenameLabelsBreakContinueCopyTargetAlt(t *testing.T) {
	label := &ast.Ident{Name: "outer"}
	brk := &ast.Break{Label: &ast.Ident{Name: "outer"}}
	loop := &ast.While{Test: &ast.NullLiteral{}, Body: &ast.Block{List: []ast.Stmt{brk}}}
	labeled := &ast.Labeled{Label: label, Stmt: loop}

	p := &ast.Program{Body: &ast.Block{List: []ast.Stmt{labeled}}}
	Rename([]*ast.Program{p}, nil, Options{LocalRenaming: None})

	qt.Assert(t, qt.Equals(label.LabelAlt, "a"))
	qt.Assert(t, qt.Equals(brk.Label.LabelAlt, "a"))
}

func TestRenameLabelsResetDepthAtFunctionBoundary(t *testing.T) {
	outerLabel := &ast.Ident{Name: "outer"}
	outerLabeled := &ast.Labeled{Label: outerLabel, Stmt: &ast.Block{}}

	innerLabel := &ast.Ident{Name: "inner"}
	innerLabeled := &ast.Labeled{Label: innerLabel, Stmt: &ast.Block{}}
	fn := &ast.FunctionObject{Body: &ast.Block{List: []ast.Stmt{innerLabeled}}}

	p := &ast.Program{Body: &ast.Block{List: []ast.Stmt{outerLabeled, fn}}}
	Rename([]*ast.Program{p}, nil, Options{LocalRenaming: None})

	qt.Assert(t, qt.Equals(outerLabel.LabelAlt, "a"))
	qt.Assert(t, qt.Equals(innerLabel.LabelAlt, "a"))
}
