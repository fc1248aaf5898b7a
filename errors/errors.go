// Package errors defines the diagnostic types shared by the scope
// resolver, rewriter, renamer, and serializer (spec §6, §7).
package errors

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mpvl/unique"

	"github.com/dungjk/jsmin/token"
)

// Severity classifies how a diagnostic affects the minify pipeline's
// outcome, per spec §7: a Fatal diagnostic aborts the run with no output,
// an Error diagnostic is reported but minification of the rest of the
// input continues, and a Warning is purely informational.
type Severity int

const (
	Warning Severity = iota
	Error
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Code identifies the kind of diagnostic, independent of its message text,
// so that a host embedding the core can filter or tabulate diagnostics
// programmatically (spec §7's diagnostic code table).
type Code string

const (
	DuplicateName                    Code = "DuplicateName"
	SuperfluousVarDeclaration        Code = "SuperfluousVarDeclaration"
	UndeclaredVariable                Code = "UndeclaredVariable"
	UndeclaredFunction                Code = "UndeclaredFunction"
	ArgumentNotReferenced              Code = "ArgumentNotReferenced"
	VariableDefinedNotReferenced        Code = "VariableDefinedNotReferenced"
	FunctionNotReferenced              Code = "FunctionNotReferenced"
	HiddenArgument                    Code = "HiddenArgument"
	AmbiguousNamedFunctionExpression   Code = "AmbiguousNamedFunctionExpression"
	StrictModeDuplicateArgument        Code = "StrictModeDuplicateArgument"
	StrictModeReservedWord             Code = "StrictModeReservedWord"

	// JSONInvalidNode is a supplemented code (SPEC_FULL.md's JSON mode):
	// fired by minify's JSON-mode shape check, before resolution, for a
	// top-level statement that is not an expression over an object, array
	// or constant literal. minify.Minify also reports a failure writing the
	// serialized output under this code.
	JSONInvalidNode Code = "JSONInvalidNode"
)

// defaultSeverity gives each Code its spec-mandated severity (§7) so
// callers constructing diagnostics via Newf need not repeat it at every
// call site.
var defaultSeverity = map[Code]Severity{
	DuplicateName:                    Warning,
	SuperfluousVarDeclaration:        Warning,
	UndeclaredVariable:                Warning,
	UndeclaredFunction:                Warning,
	ArgumentNotReferenced:              Warning,
	VariableDefinedNotReferenced:        Warning,
	FunctionNotReferenced:              Warning,
	HiddenArgument:                    Warning,
	AmbiguousNamedFunctionExpression:   Warning,
	StrictModeDuplicateArgument:        Error,
	StrictModeReservedWord:             Error,
	JSONInvalidNode:                    Fatal,
}

// Error is the diagnostic type produced throughout this module. Unlike a
// bare error returned across a package boundary, it always carries a
// position, a stable code, and a severity a caller can switch on.
type Error struct {
	Pos      token.Pos
	Sev      Severity
	ErrCode  Code
	format   string
	args     []any
}

// Newf creates an Error at p with code and severity taken from
// defaultSeverity, formatting msg/args for human consumption.
func Newf(p token.Pos, code Code, format string, args ...any) *Error {
	sev, ok := defaultSeverity[code]
	if !ok {
		sev = Error
	}
	return &Error{Pos: p, Sev: sev, ErrCode: code, format: format, args: args}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf(e.format, e.args...)
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Sev, msg)
	}
	return fmt.Sprintf("%s: %s", e.Sev, msg)
}

// Msg returns the unformatted message and its arguments, for callers that
// want to localize or re-render the text (mirrors the teacher's
// errors.Message contract).
func (e *Error) Msg() (string, []any) { return e.format, e.args }

// List accumulates diagnostics in emission order, the way every phase of
// the pipeline (resolver, rewriter, renamer, serializer) reports problems
// without aborting early unless a Fatal diagnostic is added.
type List struct {
	errs []*Error
}

// Add appends err to the list.
func (l *List) Add(err *Error) { l.errs = append(l.errs, err) }

// Addf is a convenience wrapper around Newf+Add.
func (l *List) Addf(p token.Pos, code Code, format string, args ...any) {
	l.Add(Newf(p, code, format, args...))
}

// HasFatal reports whether any accumulated diagnostic is Fatal, the signal
// the minify package uses to abort before emitting output (spec §7).
func (l *List) HasFatal() bool {
	for _, e := range l.errs {
		if e.Sev == Fatal {
			return true
		}
	}
	return false
}

// All returns the accumulated diagnostics in emission order.
func (l *List) All() []*Error { return l.errs }

// sortSlice adapts List for sort.Interface, used by Sort below.
type sortSlice []*Error

func (s sortSlice) Len() int      { return len(s) }
func (s sortSlice) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s sortSlice) Less(i, j int) bool {
	if c := s[i].Pos.Compare(s[j].Pos); c != 0 {
		return c < 0
	}
	if s[i].ErrCode != s[j].ErrCode {
		return s[i].ErrCode < s[j].ErrCode
	}
	return s[i].Error() < s[j].Error()
}

// uniqueSlice additionally implements mpvl/unique's merge contract, so
// that RemoveMultiples can fold duplicate diagnostics at the same
// position with the same code into one, the way the teacher's own
// errors.list.RemoveMultiples collapses duplicates per line.
type uniqueSlice struct{ sortSlice }

func (s uniqueSlice) Merge(i, j int) bool {
	a, b := s.sortSlice[i], s.sortSlice[j]
	return a.Pos == b.Pos && a.ErrCode == b.ErrCode
}

// Sort orders diagnostics by position, then code, then message text.
func (l *List) Sort() { sort.Stable(sortSlice(l.errs)) }

// RemoveMultiples sorts the list and removes duplicate diagnostics sharing
// a position and code, using unique.Sort's merge-then-compact behavior.
func (l *List) RemoveMultiples() {
	u := uniqueSlice{sortSlice(l.errs)}
	n := unique.Sort(u)
	l.errs = l.errs[:n]
}

// Config controls how Print renders a List.
type Config struct {
	// Color enables ANSI severity coloring via github.com/fatih/color.
	// Left false for non-terminal output (log files, CI capture).
	Color bool
}

// Print renders every diagnostic in l to w, one per line, in the form
// "severity: message (code) at position".
func Print(w io.Writer, l *List, cfg Config) {
	for _, e := range l.errs {
		printOne(w, e, cfg)
	}
}

// Details is a convenience wrapper around Print returning the text as a
// string (mirrors the teacher's errors.Details).
func Details(l *List, cfg Config) string {
	var b strings.Builder
	Print(&b, l, cfg)
	return b.String()
}

func printOne(w io.Writer, e *Error, cfg Config) {
	label := e.Sev.String()
	if cfg.Color {
		label = colorize(e.Sev, label)
	}
	msg := fmt.Sprintf(e.format, e.args...)
	if e.Pos.IsValid() {
		fmt.Fprintf(w, "%s: %s (%s) at %s\n", label, msg, e.ErrCode, e.Pos)
		return
	}
	fmt.Fprintf(w, "%s: %s (%s)\n", label, msg, e.ErrCode)
}
