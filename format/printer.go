// Package format implements the Output Serializer (spec §4.5): a visitor
// that walks a resolved, rewritten, renamed tree and writes minified
// JavaScript source text (and, optionally, feeds a sourcemap.Sink).
package format

import (
	"io"
	"unicode/utf8"

	"github.com/dungjk/jsmin/unicodeid"
)

// BlockMode controls whether Block emission wraps its statements in braces
// (spec §4.5's `block_mode` state).
type BlockMode int

const (
	// Normal emits `{ ... }` around a Block's statements.
	Normal BlockMode = iota
	// NoBraces suppresses the wrapping braces. No emitter in this package
	// passes it: switch case bodies are written without a Block, and
	// function bodies always keep their braces.
	NoBraces
)

// printer is the low-level character sink every node emitter writes
// through. It owns exactly the state spec §4.5 lists: the separator-
// insertion rule's last-character memory, the odd-run tracker that guards
// against accidental `++`/`--`, line/indent bookkeeping for multi-line
// mode, and the expression-statement-start flag that forces a leading
// FunctionObject/ObjectLiteral into parentheses.
type printer struct {
	w   io.Writer
	err error

	multiline    bool
	indentSpaces int
	indentLevel  int

	lastChar   rune
	haveLast   bool
	lastRunOdd bool

	onNewLine                  bool
	startOfExpressionStatement bool

	line, col int // 0-based; fed to the sourcemap sink
}

func newPrinter(w io.Writer, multiline bool, indentSpaces int) *printer {
	return &printer{w: w, multiline: multiline, indentSpaces: indentSpaces, onNewLine: true}
}

// token writes s, inserting a single separating space first if spec
// §4.5.1's rule requires one, then updates last_char/last_run_odd.
func (p *printer) token(s string) {
	p.tokenAt(s)
}

// tokenAt is token, additionally returning the (line, col) position at
// which s's own first character landed (after any separator the rule
// inserted), so a caller can anchor a sourcemap Segment to it (spec §4.6).
func (p *printer) tokenAt(s string) (line, col int) {
	if s == "" {
		return p.line, p.col
	}
	first, _ := utf8.DecodeRuneInString(s)
	if p.haveLast && needsSeparator(p.lastChar, first, p.lastRunOdd) {
		p.raw(" ")
	}
	line, col = p.line, p.col
	p.raw(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	p.updateRun(s, last)
	return line, col
}

// needsSeparator implements §4.5.1 exactly: a space between two
// identifier-part characters (so `a` and `b` don't fuse into `ab`), or
// between a `+`/`-` and another of the same sign when the trailing run so
// far is odd length (so `a+ +b` isn't written as `a++b`).
func needsSeparator(last, next rune, lastRunOdd bool) bool {
	if isIdentPartRune(last) && isIdentPartRune(next) {
		return true
	}
	if last == '+' && next == '+' && lastRunOdd {
		return true
	}
	if last == '-' && next == '-' && lastRunOdd {
		return true
	}
	return false
}

func isIdentPartRune(r rune) bool {
	return r == '_' || r == '$' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		unicodeid.IsIDContinue(r)
}

// updateRun recomputes last_char/last_run_odd after writing s: a run of
// identical `+`/`-` characters continues across token boundaries, so its
// length (and therefore parity) is tracked across writes, not reset per
// token.
func (p *printer) updateRun(s string, last rune) {
	runLen := 0
	prev := rune(0)
	if p.haveLast {
		prev = p.lastChar
		if (prev == '+' || prev == '-') && p.lastRunOdd {
			runLen = 1
		}
	}
	for _, r := range s {
		if (r == '+' || r == '-') && r == prev {
			runLen++
		} else if r == '+' || r == '-' {
			runLen = 1
		} else {
			runLen = 0
		}
		prev = r
	}
	p.lastChar, p.haveLast, p.lastRunOdd = last, true, runLen%2 == 1
}

// raw writes s with no separator-insertion logic, for contexts (strings,
// regexes, comments) that already carry their own delimiters.
func (p *printer) raw(s string) {
	if p.err != nil || s == "" {
		return
	}
	_, p.err = io.WriteString(p.w, s)
	for _, r := range s {
		if r == '\n' {
			p.line++
			p.col = 0
		} else {
			p.col++
		}
	}
	p.onNewLine = false
}

// newline emits a line break and the current indent, only in multi-line
// mode; in single-line mode it is a no-op (spec §4.5's `output_mode`).
func (p *printer) newline() {
	if !p.multiline {
		return
	}
	p.raw("\n")
	p.onNewLine = true
	p.raw(spaces(p.indentLevel * p.indentSpaces))
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func (p *printer) indent()   { p.indentLevel++ }
func (p *printer) unindent() { p.indentLevel-- }

// semi emits `;` unless the stream already ends in one.
func (p *printer) semi() {
	if p.haveLast && p.lastChar == ';' {
		return
	}
	p.raw(";")
	p.lastChar, p.haveLast, p.lastRunOdd = ';', true, false
}
