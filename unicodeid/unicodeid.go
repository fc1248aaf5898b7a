// Package unicodeid classifies non-ASCII runes for ECMAScript's
// IdentifierStart/IdentifierPart productions. It is kept as a standalone
// leaf package (rather than living inside format, per the original plan)
// so that both ast (identifier validity) and format (separator-insertion
// and renamer safety checks) can depend on it without a cycle.
package unicodeid

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// idStart merges the Unicode categories ECMAScript's IdentifierStart
// allows beyond ASCII: letters (all L* categories) and letter numbers
// (Nl), per the "Other_ID_Start" carve-out folded in here for simplicity.
var idStart = rangetable.Merge(
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl,
)

// idContinue additionally allows the categories ECMAScript's
// IdentifierPart adds on top of IdentifierStart: nonspacing marks (Mn),
// spacing combining marks (Mc), decimal digits (Nd), and connector
// punctuation (Pc, e.g. the underscore's non-ASCII cousins).
var idContinue = rangetable.Merge(
	idStart, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc,
)

// IsIDStart reports whether r is a valid non-ASCII IdentifierStart
// character. Callers are expected to have already special-cased ASCII
// letters, '_', and '$' themselves.
func IsIDStart(r rune) bool {
	return unicode.Is(idStart, r)
}

// IsIDContinue reports whether r is a valid non-ASCII IdentifierPart
// character.
func IsIDContinue(r rune) bool {
	return unicode.Is(idContinue, r)
}
