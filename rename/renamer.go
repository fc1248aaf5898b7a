// Package rename implements the Name Minifier (spec §4.4): scope-by-scope
// short-name assignment over an already-resolved, already-rewritten tree.
package rename

import (
	"golang.org/x/exp/slices"

	"github.com/dungjk/jsmin/ast"
	"github.com/dungjk/jsmin/scope"
	"github.com/dungjk/jsmin/token"
	"github.com/mpvl/unique"
)

// LocalRenaming mirrors spec §6's `local_renaming` option, controlling
// which candidates step 2 selects.
type LocalRenaming int

const (
	// None disables renaming entirely; Rename does nothing.
	None LocalRenaming = iota
	// Hypercrunch renames every eligible candidate, regardless of whether
	// its current name already happens to be a valid identifier.
	Hypercrunch
	// KeepLocalizationVars renames only candidates whose current name is
	// not itself a valid identifier (spec §4.4 step 2's default "rename
	// all off" behavior) — source-written names are left untouched, which
	// in practice preserves conventionally-named localization variables.
	KeepLocalizationVars
)

// Options controls Rename's behavior.
type Options struct {
	LocalRenaming LocalRenaming

	// MustRenameBindings forces renaming of environments that are not
	// known at compile time. It never applies to a `with` body: see
	// DESIGN.md's Open Question decision — that object environment's
	// runtime ambiguity is never overridden by a host setting.
	MustRenameBindings bool

	// Strict selects the strict-mode reserved-word set the generator
	// must avoid (spec §4.4 step 4).
	Strict bool
}

// Rename assigns an AlternateName to every eligible Binding across envs, in
// the order given (must be outer-before-inner, the order scope.Resolve
// returns), then assigns label alternates over programs (spec §4.4 step 5).
func Rename(programs []*ast.Program, envs []*scope.Environment, opts Options) {
	if opts.LocalRenaming != None {
		for _, env := range envs {
			renameEnvironment(env, opts)
		}
	}
	renameLabels(programs)
}

func renameEnvironment(env *scope.Environment, opts Options) {
	if env.Kind == scope.ObjectKind && !env.IsKnownAtCompileTime {
		// A with body: never a rename candidate, not even when a host
		// forces MustRenameBindings (spec §9 Open Question decision).
		return
	}
	if !env.IsKnownAtCompileTime && !opts.MustRenameBindings {
		return
	}

	bindings := env.Bindings()

	var candidates []*scope.Binding
	var linked []*scope.Binding
	var avoid []string

	for _, b := range bindings {
		switch {
		case b.AlternateName != "":
			// Already decided (spec §6 rename_pairs pre-seed, or assigned
			// by an earlier pass over a shared Binding). Occupies its
			// slot in this environment's namespace either way.
			avoid = append(avoid, effectiveName(b))
		case b.Linked != nil:
			linked = append(linked, b)
		case !b.CanRename:
			avoid = append(avoid, b.Name)
		case opts.LocalRenaming == KeepLocalizationVars && ast.IsValidIdentifier(b.Name):
			avoid = append(avoid, b.Name)
		default:
			candidates = append(candidates, b)
		}
	}
	avoid = append(avoid, env.PassThroughNames()...)

	slices.SortFunc(candidates, func(a, b *scope.Binding) int {
		if a.RefCount != b.RefCount {
			return b.RefCount - a.RefCount // descending reference_count
		}
		return defPos(a).Compare(defPos(b)) // earliest definition_context first
	})

	gen := newGenerator(avoidSet(avoid), opts.Strict)
	for _, b := range candidates {
		b.AlternateName = gen.Next()
	}

	for _, b := range linked {
		target := b.Linked
		for target.Linked != nil {
			target = target.Linked
		}
		b.AlternateName = effectiveName(target)
	}
}

// effectiveName is defined here rather than on scope.Binding itself: the
// renamer is the only package that needs the "use AlternateName unless
// empty" fallback, since every downstream consumer reads AlternateName
// directly once Rename has run.
func effectiveName(b *scope.Binding) string {
	if b.AlternateName != "" {
		return b.AlternateName
	}
	return b.Name
}

func defPos(b *scope.Binding) token.Pos {
	if len(b.Declarations) == 0 {
		return token.NoPos
	}
	return b.Declarations[0].Pos()
}

// avoidSet sorts and deduplicates names via mpvl/unique (the same
// sort-then-compact idiom errors.List.RemoveMultiples uses), then builds
// the membership map the generator consults.
func avoidSet(names []string) map[string]bool {
	u := make(uniqueNameSlice, len(names))
	copy(u, names)
	n := unique.Sort(u)
	set := make(map[string]bool, n)
	for _, s := range u[:n] {
		set[s] = true
	}
	return set
}

type uniqueNameSlice []string

func (s uniqueNameSlice) Len() int           { return len(s) }
func (s uniqueNameSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s uniqueNameSlice) Less(i, j int) bool { return s[i] < s[j] }
func (s uniqueNameSlice) Merge(i, j int) bool {
	return s[i] == s[j]
}
