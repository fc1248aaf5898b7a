package ast

import "github.com/dungjk/jsmin/unicodeid"

// isIdentStart reports whether r may begin a JS identifier: ASCII letter,
// `_`, `$`, or a Unicode ID_Start character (spec §4.4's "54 characters"
// set, generalized to non-ASCII per ECMAScript's IdentifierStart
// production).
func isIdentStart(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		return true
	case r == '_' || r == '$':
		return true
	case r >= 0x80:
		return unicodeid.IsIDStart(r)
	default:
		return false
	}
}

// isIdentPart reports whether r may continue a JS identifier after its
// first character: everything isIdentStart allows, plus ASCII digits and
// Unicode ID_Continue characters (the "64 characters" set of spec §4.4,
// generalized to non-ASCII).
func isIdentPart(r rune) bool {
	if isIdentStart(r) {
		return true
	}
	if '0' <= r && r <= '9' {
		return true
	}
	if r >= 0x80 {
		return unicodeid.IsIDContinue(r)
	}
	return false
}

// IsValidIdentifier reports whether name is syntactically usable as a JS
// identifier: a non-empty run of isIdentStart followed by isIdentPart,
// independent of whether it happens to collide with a reserved word (the
// renamer and resolver check reserved-word-ness separately via
// token.IsReserved).
func IsValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 {
			if !isIdentStart(r) {
				return false
			}
			continue
		}
		if !isIdentPart(r) {
			return false
		}
	}
	return true
}
