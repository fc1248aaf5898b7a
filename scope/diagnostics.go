package scope

import (
	"github.com/dungjk/jsmin/ast"
	"github.com/dungjk/jsmin/errors"
)

// checkUnreferenced emits spec §4.2's end-of-scope diagnostics for env.
// isGlobal suppresses ArgumentNotReferenced/VariableDefinedNotReferenced/
// FunctionNotReferenced at the top level, where "unused" has no meaning
// (globals may be consumed by code outside this compilation unit). params
// is the function's own parameter list (nil outside a function scope, e.g.
// a catch clause's environment): ArgumentNotReferenced only fires for the
// trailing run of unreferenced parameters, walking last-to-first and
// stopping at the first referenced one (spec §4.2), since a parameter kept
// only to let a later one take its position isn't "unused" in the sense
// the diagnostic means.
func (r *Resolver) checkUnreferenced(env *Environment, params []*ast.Param, isGlobal bool) {
	if isGlobal {
		return
	}
	trailing := trailingUnreferenced(env, params)
	for _, b := range env.Bindings() {
		if b.RefCount > 0 || len(b.Declarations) == 0 {
			continue
		}
		pos := b.Declarations[0].Pos()
		switch b.Category {
		case Argument:
			if trailing[b.Name] {
				r.diags.Addf(pos, errors.ArgumentNotReferenced,
					"parameter %q is never referenced", b.Name)
			}
		case Normal, Undefined:
			if _, isFunc := b.Declarations[0].(*ast.FunctionObject); isFunc {
				r.diags.Addf(pos, errors.FunctionNotReferenced,
					"function %q is never referenced", b.Name)
			} else {
				r.diags.Addf(pos, errors.VariableDefinedNotReferenced,
					"variable %q is never referenced", b.Name)
			}
		}
	}
}

// trailingUnreferenced returns the set of parameter names in params' own
// trailing run of never-referenced parameters: walking from the last
// parameter backward through env's own bindings (a parameter's Ident never
// has its own Ref set — it's a declaration, not a reference — so the
// binding's RefCount is looked up by name instead), it collects names
// until it reaches one whose binding was referenced.
func trailingUnreferenced(env *Environment, params []*ast.Param) map[string]bool {
	trailing := map[string]bool{}
	for i := len(params) - 1; i >= 0; i-- {
		name := params[i].Name.Name
		b, ok := env.TryGetBinding(name)
		if ok && b.RefCount > 0 {
			break
		}
		trailing[name] = true
	}
	return trailing
}
