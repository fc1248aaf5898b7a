package scope

import (
	"github.com/dungjk/jsmin/ast"
	"github.com/dungjk/jsmin/errors"
	"github.com/dungjk/jsmin/token"
)

// Options carries the settings the declaration pass (phase A) consults
// while creating bindings, so that the resolution pass (phase B) and the
// renamer stay free of settings lookups themselves (SPEC_FULL.md's
// rename_pairs/no_auto_rename supplement).
type Options struct {
	// KnownGlobals are host-declared predefined names (spec §6).
	KnownGlobals map[string]bool
	// RenamePairs pre-seeds a Binding's alternate name before the
	// renamer runs (spec §6 rename_pairs).
	RenamePairs map[string]string
	// NoAutoRename marks names that must keep their source spelling
	// (spec §6 no_auto_rename).
	NoAutoRename map[string]bool
	// Strict enables strict-mode-only diagnostics (StrictModeDuplicateArgument,
	// StrictModeReservedWord).
	Strict bool
}

// Resolver runs the two-phase algorithm of spec §4.2 over one or more
// programs sharing a single global Environment (SPEC_FULL.md's multi-file
// concatenation supplement).
type Resolver struct {
	opts  Options
	diags *errors.List
	global *Environment

	// created records every Environment in creation order: the global
	// environment first, then each nested declarative/object/NFE
	// environment the moment it is built. Because a function's own
	// environment is only created when the resolver reaches that
	// FunctionObject during Phase B, this order always places an outer
	// scope before everything nested inside it — exactly the order
	// rename.Rename needs to process linked bindings after their targets
	// (spec §4.2 step 2).
	created []*Environment
}

// newEnvironment records env in r.created and returns it, so every
// Environment constructor call site threads through the same bookkeeping.
func (r *Resolver) newEnvironment(env *Environment) *Environment {
	r.created = append(r.created, env)
	return env
}

// Resolve declares then resolves every program in order against a shared
// global environment, and returns that environment together with every
// Environment created while resolving, outer-before-inner.
func Resolve(programs []*ast.Program, opts Options, diags *errors.List) (*Environment, []*Environment) {
	r := &Resolver{opts: opts, diags: diags}
	r.global = r.newEnvironment(NewObjectEnvironment(nil, nil, true))
	for name := range opts.KnownGlobals {
		r.global.DeclarePredefined(name)
	}
	for _, p := range programs {
		r.declareFunctionLikeScope(r.global, p.Body.List, nil, false)
	}
	for _, p := range programs {
		r.resolveStmtList(p.Body.List, r.global)
	}
	r.checkUnreferenced(r.global, nil, true)
	return r.global, r.created
}

// ---------------------------------------------------------------------
// Phase A: declaration collection

// declareFunctionLikeScope declares params, the implicit `arguments`
// binding (when withArguments), and every var/function hoisted out of
// body (without descending into nested function bodies) into env.
func (r *Resolver) declareFunctionLikeScope(env *Environment, body []ast.Stmt, params []*ast.Param, withArguments bool) {
	seenParam := map[string]bool{}
	for _, p := range params {
		name := p.Name.Name
		if seenParam[name] && r.opts.Strict {
			r.diags.Addf(p.Pos(), errors.StrictModeDuplicateArgument,
				"duplicate argument name %q is not allowed in strict mode", name)
		}
		r.checkStrictReservedWord(p.Pos(), name)
		seenParam[name] = true
		b := env.CreateMutableBinding(name, Argument)
		b.Declarations = append(b.Declarations, p)
		r.applySupplements(b)
	}

	if withArguments {
		if existing, ok := env.TryGetBinding("arguments"); ok {
			r.diags.Addf(existing.Declarations[0].Pos(), errors.HiddenArgument,
				"parameter or variable %q hides the implicit arguments object", "arguments")
		} else {
			env.CreateMutableBinding("arguments", Arguments)
		}
	}

	var vars []*ast.Declarator
	var funcs []*ast.FunctionObject
	collectHoistable(body, &vars, &funcs)

	for _, d := range vars {
		name := d.Name.Name
		r.checkStrictReservedWord(d.Pos(), name)
		existing, had := env.TryGetBinding(name)
		if had {
			r.diags.Addf(d.Pos(), errors.SuperfluousVarDeclaration,
				"redundant redeclaration of %q", name)
			existing.Declarations = append(existing.Declarations, d)
			continue
		}
		category := Normal
		if d.Init == nil {
			category = Undefined
		}
		b := env.CreateMutableBinding(name, category)
		b.Declarations = append(b.Declarations, d)
		r.applySupplements(b)
	}

	for _, f := range funcs {
		name := f.Name.Name
		b := env.CreateMutableBinding(name, Normal)
		b.Declarations = append(b.Declarations, f)
		r.applySupplements(b)
		if len(b.Declarations) > 1 {
			r.diags.Addf(f.Pos(), errors.DuplicateName,
				"function %q is declared more than once in this scope", name)
		}
	}
}

// checkStrictReservedWord emits StrictModeReservedWord when strict mode
// is active and name is only reserved in strict code (spec §4.2).
func (r *Resolver) checkStrictReservedWord(pos token.Pos, name string) {
	if r.opts.Strict && token.StrictReservedWords[name] {
		r.diags.Addf(pos, errors.StrictModeReservedWord,
			"%q is a reserved word in strict mode", name)
	}
}

// applySupplements wires SPEC_FULL.md's rename_pairs/no_auto_rename
// options into a freshly created binding.
func (r *Resolver) applySupplements(b *Binding) {
	if r.opts.NoAutoRename[b.Name] {
		b.CanRename = false
	}
	if alt, ok := r.opts.RenamePairs[b.Name]; ok {
		b.AlternateName = alt
	}
}

// collectHoistable walks a statement list gathering every var declarator
// and function declaration that belongs to the enclosing function scope,
// without descending into nested FunctionObject bodies (those declare
// their own scope independently).
func collectHoistable(list []ast.Stmt, vars *[]*ast.Declarator, funcs *[]*ast.FunctionObject) {
	for _, s := range list {
		collectHoistableStmt(s, vars, funcs)
	}
}

func collectHoistableStmt(s ast.Stmt, vars *[]*ast.Declarator, funcs *[]*ast.FunctionObject) {
	switch n := s.(type) {
	case *ast.VarStatement:
		*vars = append(*vars, n.Declarators...)

	case *ast.FunctionObject:
		if !n.IsExpression && n.Name != nil {
			*funcs = append(*funcs, n)
		}

	case *ast.Block:
		collectHoistable(n.List, vars, funcs)

	case *ast.If:
		collectHoistableStmt(n.Consequent, vars, funcs)
		if n.Alternate != nil {
			collectHoistableStmt(n.Alternate, vars, funcs)
		}

	case *ast.For:
		if vs, ok := n.Init.(*ast.VarStatement); ok {
			*vars = append(*vars, vs.Declarators...)
		}
		collectHoistableStmt(n.Body, vars, funcs)

	case *ast.ForIn:
		if vs, ok := n.Lhs.(*ast.VarStatement); ok {
			*vars = append(*vars, vs.Declarators...)
		}
		collectHoistableStmt(n.Body, vars, funcs)

	case *ast.While:
		collectHoistableStmt(n.Body, vars, funcs)

	case *ast.DoWhile:
		collectHoistableStmt(n.Body, vars, funcs)

	case *ast.Switch:
		for _, c := range n.Cases {
			collectHoistable(c.Body, vars, funcs)
		}

	case *ast.Try:
		collectHoistable(n.Block.List, vars, funcs)
		if n.Handler != nil {
			collectHoistable(n.Handler.Body.List, vars, funcs)
		}
		if n.Finally != nil {
			collectHoistable(n.Finally.List, vars, funcs)
		}

	case *ast.With:
		collectHoistableStmt(n.Body, vars, funcs)

	case *ast.Labeled:
		collectHoistableStmt(n.Stmt, vars, funcs)

	default:
		// Expression statements, return/throw/break/continue/empty carry
		// no declarations of their own.
	}
}

// ---------------------------------------------------------------------
// Phase B: reference resolution

func (r *Resolver) resolveStmtList(list []ast.Stmt, env *Environment) {
	for _, s := range list {
		r.resolveStmt(s, env)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt, env *Environment) {
	switch n := s.(type) {
	case *ast.Block:
		r.resolveStmtList(n.List, env)

	case *ast.VarStatement:
		for _, d := range n.Declarators {
			if d.Init != nil {
				r.resolveExpr(d.Init, env)
			}
		}

	case *ast.ExpressionStatement:
		r.resolveExpr(n.X, env)

	case *ast.If:
		r.resolveExpr(n.Test, env)
		r.resolveStmt(n.Consequent, env)
		if n.Alternate != nil {
			r.resolveStmt(n.Alternate, env)
		}

	case *ast.For:
		switch init := n.Init.(type) {
		case *ast.VarStatement:
			r.resolveStmt(init, env)
		case ast.Expr:
			r.resolveExpr(init, env)
		}
		if n.Test != nil {
			r.resolveExpr(n.Test, env)
		}
		if n.Update != nil {
			r.resolveExpr(n.Update, env)
		}
		r.resolveStmt(n.Body, env)

	case *ast.ForIn:
		switch lhs := n.Lhs.(type) {
		case *ast.VarStatement:
			r.resolveStmt(lhs, env)
		case ast.Expr:
			r.resolveExpr(lhs, env)
		}
		r.resolveExpr(n.Source, env)
		r.resolveStmt(n.Body, env)

	case *ast.While:
		r.resolveExpr(n.Test, env)
		r.resolveStmt(n.Body, env)

	case *ast.DoWhile:
		r.resolveStmt(n.Body, env)
		r.resolveExpr(n.Test, env)

	case *ast.Switch:
		r.resolveExpr(n.Discriminant, env)
		for _, c := range n.Cases {
			if c.Test != nil {
				r.resolveExpr(c.Test, env)
			}
			r.resolveStmtList(c.Body, env)
		}

	case *ast.Try:
		r.resolveStmtList(n.Block.List, env)
		if n.Handler != nil {
			catchEnv := r.newEnvironment(NewDeclarativeEnvironment(env, n.Handler))
			if n.Handler.Param != nil {
				name := n.Handler.Param.Name
				b := catchEnv.CreateMutableBinding(name, CatchArgument)
				b.Declarations = append(b.Declarations, n.Handler.Param)
				r.applySupplements(b)

				// The catch parameter shadows whatever env already has for
				// this name; link to it if it exists, otherwise reserve a
				// phantom placeholder in the outer scope so the renamer
				// still has something to keep this binding's name distinct
				// from (spec §4.2's catch-parameter linking rule, mirroring
				// the NFE self-reference link in resolveFunction).
				if outer := GetIdentifierReference(env, name).Binding; outer != nil {
					b.Linked = outer
				} else {
					b.Linked = env.CreatePlaceholder(name)
				}
			}
			r.resolveStmtList(n.Handler.Body.List, catchEnv)
			r.checkUnreferenced(catchEnv, nil, false)
		}
		if n.Finally != nil {
			r.resolveStmtList(n.Finally.List, env)
		}

	case *ast.With:
		r.resolveExpr(n.Object, env)
		withEnv := r.newEnvironment(NewObjectEnvironment(env, n, false))
		r.resolveStmt(n.Body, withEnv)

	case *ast.Throw:
		r.resolveExpr(n.X, env)

	case *ast.Return:
		if n.X != nil {
			r.resolveExpr(n.X, env)
		}

	case *ast.Labeled:
		r.resolveStmt(n.Stmt, env)

	case *ast.FunctionObject:
		// A function declaration was already bound in env by phase A;
		// resolve its own body in a fresh function scope.
		r.resolveFunction(n, env)

	case *ast.Break, *ast.Continue, *ast.EmptyStatement:
		// no references

	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionObject, outer *Environment) {
	scopeOuter := outer

	var nfeBinding, outerBinding *Binding
	if fn.IsExpression && fn.Name != nil {
		// The outward reference this NFE's self-binding links to, if the
		// enclosing variable environment already declared the same name
		// in Phase A (spec §4.1's linked field, §4.2's NFE rule).
		outerBinding = GetIdentifierReference(outer, fn.Name.Name).Binding

		nfeEnv := r.newEnvironment(NewNFEEnvironment(outer, fn, fn.Name.Name))
		nfeBinding, _ = nfeEnv.TryGetBinding(fn.Name.Name)
		nfeBinding.Linked = outerBinding
		scopeOuter = nfeEnv
	}
	funcEnv := r.newEnvironment(NewDeclarativeEnvironment(scopeOuter, fn))

	r.declareFunctionLikeScope(funcEnv, fn.Body.List, fn.Params, true)
	r.resolveStmtList(fn.Body.List, funcEnv)
	r.checkUnreferenced(funcEnv, fn.Params, false)

	// Only flagged once both ends' reference counts are final (spec §4.2:
	// "iff both the NFE binding and its linked outer binding have
	// non-zero reference counts").
	if nfeBinding != nil && outerBinding != nil && nfeBinding.RefCount > 0 && outerBinding.RefCount > 0 {
		r.diags.Addf(fn.Name.Pos(), errors.AmbiguousNamedFunctionExpression,
			"named function expression %q shadows a binding visible outside it; "+
				"older engines leak its name into the enclosing scope", fn.Name.Name)
	}
}

func (r *Resolver) resolveExpr(e ast.Expr, env *Environment) {
	switch n := e.(type) {
	case *ast.Ident:
		r.resolveIdentRef(n, env, false)

	case *ast.NumberLiteral, *ast.StringLiteral, *ast.BooleanLiteral,
		*ast.NullLiteral, *ast.RegExpLiteral:
		// atoms, nothing to resolve

	case *ast.ArrayLiteral:
		for _, el := range n.Elements {
			if el != nil {
				r.resolveExpr(el, env)
			}
		}

	case *ast.ObjectLiteral:
		for _, p := range n.Properties {
			if p.Computed {
				r.resolveExpr(p.Key, env)
			}
			r.resolveExpr(p.Value, env)
		}

	case *ast.GroupingOperator:
		r.resolveExpr(n.X, env)

	case *ast.UnaryOperator:
		if n.Op == token.TYPEOF {
			if id, ok := n.X.(*ast.Ident); ok {
				r.resolveIdentRef(id, env, true)
				break
			}
		}
		r.resolveExpr(n.X, env)

	case *ast.PostfixOperator:
		r.resolveExpr(n.X, env)

	case *ast.BinaryOperator:
		r.resolveExpr(n.X, env)
		r.resolveExpr(n.Y, env)

	case *ast.AssignmentOperator:
		if n.Op == token.ASSIGN {
			if id, ok := n.Target.(*ast.Ident); ok {
				r.resolveIdentRef(id, env, true)
				r.resolveExpr(n.Value, env)
				break
			}
		}
		r.resolveExpr(n.Target, env)
		r.resolveExpr(n.Value, env)

	case *ast.Conditional:
		r.resolveExpr(n.Test, env)
		r.resolveExpr(n.Consequent, env)
		r.resolveExpr(n.Alternate, env)

	case *ast.CallNode:
		if callee, ok := n.Fun.(*ast.Ident); ok {
			r.resolveCallee(callee, env)
		} else {
			r.resolveExpr(n.Fun, env)
		}
		for _, a := range n.Args {
			r.resolveExpr(a, env)
		}

	case *ast.NewExpr:
		r.resolveExpr(n.Callee, env)
		for _, a := range n.Args {
			r.resolveExpr(a, env)
		}

	case *ast.Member:
		r.resolveExpr(n.X, env)
		if n.Computed {
			r.resolveExpr(n.Property, env)
		}
		// non-computed property names are not identifier references

	case *ast.FunctionObject:
		r.resolveFunction(n, env)
	}
}

// resolveIdentRef resolves an Ident used in reference position. When
// lookup fails anywhere in the chain (and isn't swallowed by a with body's
// Ambiguous case), spec §4.2 still requires a binding: it is created on
// the global environment here, Normal when asNormal is set (n is the
// operand of typeof or the LHS of a direct `=` assignment), Undefined plus
// an UndeclaredVariable diagnostic otherwise. known_globals needs no
// special case: those names are already Predefined bindings on the global
// environment before phase B runs, so they resolve normally and never
// reach this fallback.
func (r *Resolver) resolveIdentRef(n *ast.Ident, env *Environment, asNormal bool) {
	ref := ResolveLookup(env, n.Name)
	if ref.Binding == nil && !ref.Ambiguous {
		ref.Binding = r.declareGlobalFallback(n, n.Name, asNormal, errors.UndeclaredVariable)
	}
	n.Ref = ref.Binding
}

// resolveCallee resolves an identifier used directly as a call target,
// reporting UndeclaredFunction instead of UndeclaredVariable when it
// cannot be found (spec §4.2 distinguishes the two by call position). A
// callee position is never the operand of typeof nor an assignment's LHS,
// so the fallback binding is always Undefined.
func (r *Resolver) resolveCallee(callee *ast.Ident, env *Environment) {
	ref := ResolveLookup(env, callee.Name)
	if ref.Binding == nil && !ref.Ambiguous {
		ref.Binding = r.declareGlobalFallback(callee, callee.Name, false, errors.UndeclaredFunction)
	}
	callee.Ref = ref.Binding
}

// declareGlobalFallback creates (or, if a prior unresolved reference to the
// same name already created it, reuses) the binding an unresolved
// reference must fall back to on the global environment, and emits code as
// a diagnostic unless asNormal suppresses it.
func (r *Resolver) declareGlobalFallback(n ast.Node, name string, asNormal bool, code errors.Code) *Binding {
	category := Undefined
	if asNormal {
		category = Normal
	}
	b := r.global.CreateMutableBinding(name, category)
	b.Declarations = append(b.Declarations, n)
	r.applySupplements(b)
	b.RefCount++
	if !asNormal {
		r.diags.Addf(n.Pos(), code, "%q is not declared", name)
	}
	return b
}

