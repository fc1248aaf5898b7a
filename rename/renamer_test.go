package rename

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/dungjk/jsmin/ast"
	"github.com/dungjk/jsmin/scope"
)

func TestRenameAssignsMostReferencedCandidateFirst(t *testing.T) {
	env := scope.NewDeclarativeEnvironment(nil, nil)
	rare := env.CreateMutableBinding("rarelyUsed", scope.Normal)
	rare.RefCount = 1
	hot := env.CreateMutableBinding("hot", scope.Normal)
	hot.RefCount = 10

	Rename(nil, []*scope.Environment{env}, Options{LocalRenaming: Hypercrunch})

	qt.Assert(t, qt.Equals(hot.AlternateName, "a"))
	qt.Assert(t, qt.Equals(rare.AlternateName, "b"))
}

func TestRenameNoneLeavesBindingsUntouched(t *testing.T) {
	env := scope.NewDeclarativeEnvironment(nil, nil)
	b := env.CreateMutableBinding("x", scope.Normal)

	Rename(nil, []*scope.Environment{env}, Options{LocalRenaming: None})

	qt.Assert(t, qt.Equals(b.AlternateName, ""))
}

func TestRenameSkipsPredefinedBindings(t *testing.T) {
	env := scope.NewDeclarativeEnvironment(nil, nil)
	predef := env.DeclarePredefined("window")
	candidate := env.CreateMutableBinding("local", scope.Normal)

	Rename(nil, []*scope.Environment{env}, Options{LocalRenaming: Hypercrunch})

	qt.Assert(t, qt.Equals(predef.AlternateName, ""))
	qt.Assert(t, qt.Not(qt.Equals(candidate.AlternateName, "")))
}

func TestRenameAvoidsPassThroughNames(t *testing.T) {
	outer := scope.NewDeclarativeEnvironment(nil, nil)
	outer.CreateMutableBinding("a", scope.Normal)

	middle := scope.NewDeclarativeEnvironment(outer, nil)
	innerOfMiddle := scope.NewDeclarativeEnvironment(middle, nil)
	scope.ResolveLookup(innerOfMiddle, "a") // resolves through middle, marking "a" as pass-through there
	candidate := middle.CreateMutableBinding("shouldNotBeA", scope.Normal)

	Rename(nil, []*scope.Environment{outer, middle}, Options{LocalRenaming: Hypercrunch})

	qt.Assert(t, qt.Not(qt.Equals(candidate.AlternateName, "a")))
}

func TestRenameLinkedBindingSharesTargetName(t *testing.T) {
	outer := scope.NewDeclarativeEnvironment(nil, nil)
	target := outer.CreateMutableBinding("fn", scope.Normal)
	target.RefCount = 1

	inner := scope.NewDeclarativeEnvironment(outer, nil)
	linked := inner.CreateMutableBinding("fn", scope.NamedFunctionExpression)
	linked.Linked = target

	Rename(nil, []*scope.Environment{outer, inner}, Options{LocalRenaming: Hypercrunch})

	qt.Assert(t, qt.Equals(linked.AlternateName, target.AlternateName))
}

func TestRenameKeepLocalizationVarsSkipsValidIdentifiers(t *testing.T) {
	env := scope.NewDeclarativeEnvironment(nil, nil)
	named := env.CreateMutableBinding("validName", scope.Normal)

	Rename(nil, []*scope.Environment{env}, Options{LocalRenaming: KeepLocalizationVars})

	qt.Assert(t, qt.Equals(named.AlternateName, ""))
}

func TestRenameLabelsByNestingDepth(t *testing.T) {
	innerLabel := &ast.Ident{Name: "inner"}
	outerLabel := &ast.Ident{Name: "outer"}

	innerLoop := &ast.While{Test: &ast.NullLiteral{}, Body: &ast.Block{}}
	innerLabeled := &ast.Labeled{Label: innerLabel, Stmt: innerLoop}
	outerLabeled := &ast.Labeled{Label: outerLabel, Stmt: innerLabeled}

	p := &ast.Program{Body: &ast.Block{List: []ast.Stmt{outerLabeled}}}

	Rename([]*ast.Program{p}, nil, Options{LocalRenaming: None})

	qt.Assert(t, qt.Equals(outerLabel.LabelAlt, "a"))
	qt.Assert(t, qt.Equals(innerLabel.LabelAlt, "b"))
}
