// Package minify wires the scope resolver, final-pass rewriter, name
// minifier, and output serializer into the single entry point spec §6
// describes.
package minify

import (
	"io"

	"github.com/dungjk/jsmin/ast"
	"github.com/dungjk/jsmin/config"
	"github.com/dungjk/jsmin/errors"
	"github.com/dungjk/jsmin/format"
	"github.com/dungjk/jsmin/rename"
	"github.com/dungjk/jsmin/rewrite"
	"github.com/dungjk/jsmin/scope"
	"github.com/dungjk/jsmin/sourcemap"
	"github.com/dungjk/jsmin/token"
)

// Status is the entry point's coarse outcome (spec §6's `ok | fatal`).
type Status int

const (
	OK Status = iota
	FatalStatus
)

// Minify resolves, rewrites, renames, and serializes programs in place,
// writing minified source to output. It never panics across this boundary:
// a malformed tree is reported as a Fatal diagnostic and Minify returns
// FatalStatus without writing to output (spec §7's "output sink must not be
// written to after a fatal").
//
// programs share one global environment, satisfying the multi-file
// concatenation mode spec §6 and SPEC_FULL.md describe. sink may be nil
// (sourcemap.NoopSink is used internally); knownGlobals is consulted both
// by the resolver (undeclared-name suppression) and by the serializer's
// NaN/Infinity fallback chain.
func Minify(programs []*ast.Program, settings *config.Settings, knownGlobals map[string]bool, output io.Writer, sink sourcemap.Sink) (*errors.List, Status) {
	if sink == nil {
		sink = sourcemap.NoopSink{}
	}
	diags := &errors.List{}

	if settings.Format() == config.FormatJSON {
		checkJSONShape(programs, diags)
		if diags.HasFatal() {
			return filterSeverity(diags, settings.WarningLevel), FatalStatus
		}
	}

	renamePairs := map[string]string{}
	for _, p := range settings.RenamePairs {
		renamePairs[p.From] = p.To
	}
	noAutoRename := map[string]bool{}
	for _, n := range settings.NoAutoRename {
		noAutoRename[n] = true
	}
	if settings.PreserveFunctionNames {
		markFunctionNamesNoRename(programs, noAutoRename)
	}

	resolverOpts := scope.Options{
		KnownGlobals: knownGlobals,
		RenamePairs:  renamePairs,
		NoAutoRename: noAutoRename,
		Strict:       settings.Strict() == config.StrictOn,
	}
	global, envs := scope.Resolve(programs, resolverOpts, diags)

	if diags.HasFatal() {
		return filterSeverity(diags, settings.WarningLevel), FatalStatus
	}

	rewrite.Rewrite(programs, global, rewrite.Options{
		RewriteBooleanLiterals:     settings.RewriteBooleans,
		PruneDeadGeneratedBindings: settings.PruneDeadGeneratedBindings,
	})

	rename.Rename(programs, envs, rename.Options{
		LocalRenaming:      settings.LocalRenaming,
		MustRenameBindings: false,
		Strict:             settings.Strict() == config.StrictOn,
	})

	globals := func(name string) bool { return knownGlobals[name] }
	fmtOpts := settings.FormatOptions(globals)

	sink.StartPackage("")
	if err := format.Fprint(output, programs, fmtOpts, sink); err != nil {
		diags.Addf(token.NoPos, errors.JSONInvalidNode, "write error: %v", err)
		return filterSeverity(diags, settings.WarningLevel), FatalStatus
	}
	sink.EndPackage()

	return filterSeverity(diags, settings.WarningLevel), OK
}

// filterSeverity drops diagnostics the caller's warning_level suppresses
// (spec §6's `warning_level`), keeping every diagnostic whose numeric
// severity is at or below that threshold. Level is 0-4 per spec §6's table; this core
// maps 0 to "warnings only" and 4 to "everything", matching the common
// convention that a higher number means more verbose, not more severe.
func filterSeverity(diags *errors.List, level int) *errors.List {
	if level >= 4 {
		return diags
	}
	out := &errors.List{}
	for _, e := range diags.All() {
		if int(e.Sev) <= level {
			out.Add(e)
		}
	}
	return out
}

// markFunctionNamesNoRename implements `preserve_function_names` (spec
// §6): the Name of every FunctionObject found in statement position,
// including those nested in blocks, control-flow bodies and function
// bodies, is added to noAutoRename before the resolver runs, so CanRename
// is false from the moment the binding is created (spec §4.1's table ties
// CanRename to Category at declaration time, not after the fact).
// Expressions are not walked: a function expression used as an
// initializer, argument or operand does not have its name added.
func markFunctionNamesNoRename(programs []*ast.Program, noAutoRename map[string]bool) {
	for _, p := range programs {
		markFunctionNamesInBlock(p.Body, noAutoRename)
	}
}

func markFunctionNamesInBlock(b *ast.Block, noAutoRename map[string]bool) {
	for _, s := range b.List {
		markFunctionNamesInStmt(s, noAutoRename)
	}
}

func markFunctionNamesInStmt(s ast.Stmt, noAutoRename map[string]bool) {
	switch n := s.(type) {
	case *ast.FunctionObject:
		if n.Name != nil {
			noAutoRename[n.Name.Name] = true
		}
		markFunctionNamesInBlock(n.Body, noAutoRename)
	case *ast.Block:
		markFunctionNamesInBlock(n, noAutoRename)
	case *ast.If:
		markFunctionNamesInStmt(n.Consequent, noAutoRename)
		if n.Alternate != nil {
			markFunctionNamesInStmt(n.Alternate, noAutoRename)
		}
	case *ast.For:
		markFunctionNamesInStmt(n.Body, noAutoRename)
	case *ast.ForIn:
		markFunctionNamesInStmt(n.Body, noAutoRename)
	case *ast.While:
		markFunctionNamesInStmt(n.Body, noAutoRename)
	case *ast.DoWhile:
		markFunctionNamesInStmt(n.Body, noAutoRename)
	case *ast.Switch:
		for _, c := range n.Cases {
			for _, st := range c.Body {
				markFunctionNamesInStmt(st, noAutoRename)
			}
		}
	case *ast.Try:
		markFunctionNamesInBlock(n.Block, noAutoRename)
		if n.Handler != nil {
			markFunctionNamesInBlock(n.Handler.Body, noAutoRename)
		}
		if n.Finally != nil {
			markFunctionNamesInBlock(n.Finally, noAutoRename)
		}
	case *ast.With:
		markFunctionNamesInStmt(n.Body, noAutoRename)
	case *ast.Labeled:
		markFunctionNamesInStmt(n.Stmt, noAutoRename)
	}
}

// checkJSONShape implements SPEC_FULL.md's JSON-mode supplement (spec §6
// `format=JSON`): every top-level statement must be a bare expression
// whose value is an object/array/constant literal; anything else is
// JSONInvalidNode at Fatal severity, since the tree no longer has the shape
// JSON output can represent.
func checkJSONShape(programs []*ast.Program, diags *errors.List) {
	for _, p := range programs {
		for _, s := range p.Body.List {
			es, ok := s.(*ast.ExpressionStatement)
			if !ok {
				diags.Addf(s.Pos(), errors.JSONInvalidNode, "statement is not valid in JSON mode")
				continue
			}
			if !isJSONLiteral(es.X) {
				diags.Addf(es.X.Pos(), errors.JSONInvalidNode, "expression is not a JSON-compatible literal")
			}
		}
	}
}

func isJSONLiteral(x ast.Expr) bool {
	switch n := x.(type) {
	case *ast.ObjectLiteral:
		for _, prop := range n.Properties {
			if !isJSONLiteral(prop.Value) {
				return false
			}
		}
		return true
	case *ast.ArrayLiteral:
		for _, el := range n.Elements {
			if el != nil && !isJSONLiteral(el) {
				return false
			}
		}
		return true
	case *ast.StringLiteral, *ast.NumberLiteral, *ast.BooleanLiteral, *ast.NullLiteral:
		return true
	case *ast.UnaryOperator:
		// `-1` parses as a unary minus over a number literal; JSON permits
		// a leading `-` on numbers, so this is the one operator JSON mode
		// allows through.
		_, isNum := n.X.(*ast.NumberLiteral)
		return n.Op == token.NEG && isNum
	default:
		return false
	}
}
