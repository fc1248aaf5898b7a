// Package scope implements the lexical scope model of spec §3-§4.2: typed
// Environment records linked into an outer chain, Binding entries with a
// rename-eligibility category, and a two-phase Resolver that turns every
// ast.Ident reference into a resolved Binding or an UndeclaredVariable
// diagnostic.
package scope

import (
	"github.com/dolthub/swiss"

	"github.com/dungjk/jsmin/ast"
)

// Category classifies how a Binding came to exist, which in turn controls
// its default rename eligibility and which diagnostics apply to it
// (spec §4.1's binding category table).
type Category int

const (
	// Normal is a var- or function-declared binding.
	Normal Category = iota
	// Argument is a named formal parameter.
	Argument
	// Arguments is the implicit per-function `arguments` object.
	Arguments
	// CatchArgument is a catch clause's exception parameter.
	CatchArgument
	// NamedFunctionExpression is the self-reference a named function
	// expression exposes to its own body only.
	NamedFunctionExpression
	// Undefined marks a var declared without an initializer, and the
	// global binding created for an unresolved reference that is neither
	// a typeof operand nor the target of a plain `=` (spec §4.2).
	Undefined
	// Predefined is a host-supplied global (spec §6's known_globals).
	Predefined
	// Placeholder is a slot reserved by the final-pass rewriter for a
	// binding it introduces (e.g. a hoisted alias), not yet backed by a
	// source declaration.
	Placeholder
)

// Binding is one named slot inside an Environment.
type Binding struct {
	Name      string
	Category  Category
	Env       *Environment

	// CanRename is false for Predefined bindings and wherever config.Settings or the
	// rename_pairs/no_auto_rename supplement (SPEC_FULL.md) forced it off
	// during phase A.
	CanRename bool

	// AlternateName, if non-empty, pre-seeds the renamer's choice for
	// this binding (spec §6 rename_pairs), bypassing generation.
	AlternateName string

	// RefCount counts resolved Lookup references to this binding,
	// consulted by spec §4.2's *NotReferenced diagnostics and by the
	// renamer's frequency sort (spec §4.4 step 3).
	RefCount int

	// Declarations lists every ast.Node that declared this binding
	// (multiple VarStatements may redeclare the same name, spec §4.2's
	// SuperfluousVarDeclaration).
	Declarations []ast.Node

	// Linked, when non-nil, is the binding this one must share an
	// AlternateName with once renaming assigns one (spec §4.1's linked
	// field): an NFE binding links to the same-named binding already
	// declared in the enclosing variable environment, and a catch
	// parameter links to the same-named outer binding it shadows, or to a
	// phantom placeholder created in the outer scope when there is none.
	// Linked always points outward, toward a binding the renamer visits
	// before this one.
	Linked *Binding
}

// Kind distinguishes the three Environment record types spec §3 names.
type Kind int

const (
	// DeclarativeKind backs function bodies and catch clauses: bindings
	// are always statically known.
	DeclarativeKind Kind = iota
	// ObjectKind backs the global environment and a with statement's
	// body: bindings may be shadowed at runtime by properties of a
	// backing object the resolver cannot see, so IsKnownAtCompileTime is
	// false for with (spec §9's Open Question on with + forced rename).
	ObjectKind
	// NFEKind backs the single synthetic binding a named function
	// expression exposes to its own body.
	NFEKind
)

// Environment is one link in the lexical scope chain (spec §3/§4.1).
type Environment struct {
	Kind  Kind
	Outer *Environment
	Node  ast.Node // the FunctionObject/Block/Catch/With/Program that owns this record

	// IsKnownAtCompileTime is true unless this is a with-statement's
	// object environment, where any name could be shadowed by a runtime
	// property of the with object.
	IsKnownAtCompileTime bool

	names *swiss.Map[string, *Binding]

	// passThrough collects every name that a Lookup resolved through this
	// environment to reach a binding further out (spec §4.4 step 2's
	// avoid set: "all pass-through references through this environment").
	// The renamer must not assign a candidate binding in this environment
	// a name already in passThrough, or it would shadow the outer
	// variable the pass-through reference depends on.
	passThrough map[string]bool
}

// NewDeclarativeEnvironment creates a new declarative Environment, used
// for function bodies and catch clauses.
func NewDeclarativeEnvironment(outer *Environment, node ast.Node) *Environment {
	return &Environment{
		Kind:                 DeclarativeKind,
		Outer:                outer,
		Node:                 node,
		IsKnownAtCompileTime: true,
		names:                swiss.NewMap[string, *Binding](8),
	}
}

// NewObjectEnvironment creates a new object Environment, used for the
// global environment and for a with statement's body.
func NewObjectEnvironment(outer *Environment, node ast.Node, knownAtCompileTime bool) *Environment {
	return &Environment{
		Kind:                 ObjectKind,
		Outer:                outer,
		Node:                 node,
		IsKnownAtCompileTime: knownAtCompileTime,
		names:                swiss.NewMap[string, *Binding](8),
	}
}

// NewNFEEnvironment creates the single-binding environment wrapping a
// named function expression's own scope, exposing only its own name.
func NewNFEEnvironment(outer *Environment, node ast.Node, name string) *Environment {
	e := &Environment{
		Kind:                 NFEKind,
		Outer:                outer,
		Node:                 node,
		IsKnownAtCompileTime: true,
		names:                swiss.NewMap[string, *Binding](1),
	}
	e.names.Put(name, &Binding{Name: name, Category: NamedFunctionExpression, Env: e, CanRename: true})
	return e
}

// HasBinding reports whether name is bound directly in e (not its outer
// chain).
func (e *Environment) HasBinding(name string) bool {
	_, ok := e.names.Get(name)
	return ok
}

// TryGetBinding returns the Binding bound to name directly in e, if any.
func (e *Environment) TryGetBinding(name string) (*Binding, bool) {
	return e.names.Get(name)
}

// CreateMutableBinding creates (or returns the existing) Binding for name
// in e with the given category, defaulting CanRename to true.
func (e *Environment) CreateMutableBinding(name string, category Category) *Binding {
	if b, ok := e.names.Get(name); ok {
		return b
	}
	b := &Binding{Name: name, Category: category, Env: e, CanRename: true}
	e.names.Put(name, b)
	return b
}

// CreateImmutableBinding is identical to CreateMutableBinding in this
// core: the distinction in spec §4.1 (mutable var vs. immutable
// let/const-like forms) only matters to a runtime, not to renaming or
// serialization, so both funnel into the same Binding representation.
func (e *Environment) CreateImmutableBinding(name string, category Category) *Binding {
	return e.CreateMutableBinding(name, category)
}

// InitializeImmutableBinding is a no-op placeholder kept for symmetry with
// spec §4.1's operation list; this core tracks no separate
// initialized/uninitialized state for a Binding beyond its Declarations
// list.
func (e *Environment) InitializeImmutableBinding(b *Binding) {}

// DeclarePredefined registers name as a host-supplied global (spec §6's
// known_globals) that is never a rename candidate.
func (e *Environment) DeclarePredefined(name string) *Binding {
	if b, ok := e.names.Get(name); ok {
		return b
	}
	b := &Binding{Name: name, Category: Predefined, Env: e, CanRename: false}
	e.names.Put(name, b)
	return b
}

// CreatePlaceholder reserves name in e for the rewriter (spec §4.3) before
// any source declaration creates it, so that subsequent resolution sees
// the name as already bound.
func (e *Environment) CreatePlaceholder(name string) *Binding {
	if b, ok := e.names.Get(name); ok {
		return b
	}
	b := &Binding{Name: name, Category: Placeholder, Env: e, CanRename: true}
	e.names.Put(name, b)
	return b
}

// Delete removes name's binding from e directly (not its outer chain).
// Used by rewrite.Rewrite to prune zero-reference bindings it introduced
// and later decided not to keep (spec §4.3 duty 2).
func (e *Environment) Delete(name string) {
	e.names.Delete(name)
}

// Reference is the result of resolving a name against an Environment
// chain (spec §4.1's get_identifier_reference / resolve_lookup).
type Reference struct {
	Base    *Environment // the environment the binding was found in, nil if unresolved
	Name    string
	Binding *Binding // nil if the name is globally undeclared

	// Ambiguous is true when resolution stopped at a with body's object
	// environment rather than exhausting the chain: the name might still
	// resolve to a runtime property the resolver cannot see, so a caller
	// must not report this as a genuinely undeclared reference (spec §9's
	// with Open Question).
	Ambiguous bool
}

// GetIdentifierReference walks e's outer chain looking for name, stopping
// at the first Environment that binds it. If no Environment in the chain
// binds name, the Reference carries a nil Binding and the caller (the
// resolver) is responsible for emitting UndeclaredVariable/
// UndeclaredFunction (spec §4.2).
func GetIdentifierReference(e *Environment, name string) Reference {
	for env := e; env != nil; env = env.Outer {
		if b, ok := env.names.Get(name); ok {
			return Reference{Base: env, Name: name, Binding: b}
		}
		if env.Kind == ObjectKind && !env.IsKnownAtCompileTime {
			// A with body may shadow any name with a runtime property;
			// the reference is unresolvable statically (spec §9).
			return Reference{Base: nil, Name: name, Binding: nil, Ambiguous: true}
		}
	}
	return Reference{Base: nil, Name: name, Binding: nil}
}

// ResolveLookup is GetIdentifierReference plus RefCount bookkeeping,
// called once per ast.Ident the resolver visits in reference position
// (spec §4.2 phase B). Every environment from e itself outward, up to but
// not including the environment that actually owns the binding (the whole
// chain when none does), is marked as a pass-through point for name, so
// the renamer's avoid-set construction (spec §4.4
// step 2) can see which names must not be shadowed along the way.
func ResolveLookup(e *Environment, name string) Reference {
	for env := e; env != nil; env = env.Outer {
		if b, ok := env.names.Get(name); ok {
			b.RefCount++
			return Reference{Base: env, Name: name, Binding: b}
		}
		if env.Kind == ObjectKind && !env.IsKnownAtCompileTime {
			return Reference{Base: nil, Name: name, Binding: nil, Ambiguous: true}
		}
		if env.passThrough == nil {
			env.passThrough = make(map[string]bool)
		}
		env.passThrough[name] = true
	}
	return Reference{Base: nil, Name: name, Binding: nil}
}

// PassThroughNames returns every name a Lookup resolved through e to reach
// a binding declared further out.
func (e *Environment) PassThroughNames() []string {
	names := make([]string, 0, len(e.passThrough))
	for n := range e.passThrough {
		names = append(names, n)
	}
	return names
}

// Names returns every name bound directly in e. Order is unspecified;
// callers that need a stable order (the renamer, spec §4.4 step 3) sort
// the result themselves.
func (e *Environment) Names() []string {
	names := make([]string, 0, e.names.Count())
	e.names.Iter(func(k string, _ *Binding) bool {
		names = append(names, k)
		return true
	})
	return names
}

// Bindings returns every Binding bound directly in e, in the same
// unspecified order as Names.
func (e *Environment) Bindings() []*Binding {
	bindings := make([]*Binding, 0, e.names.Count())
	e.names.Iter(func(_ string, b *Binding) bool {
		bindings = append(bindings, b)
		return true
	})
	return bindings
}
