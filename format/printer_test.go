package format

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestPrinterTokenInsertsSeparatorBetweenIdentParts(t *testing.T) {
	var sb strings.Builder
	p := newPrinter(&sb, false, 0)
	p.token("var")
	p.token("x")
	qt.Assert(t, qt.Equals(sb.String(), "var x"))
}

func TestPrinterTokenOmitsSeparatorWhenNotIdentAdjacent(t *testing.T) {
	var sb strings.Builder
	p := newPrinter(&sb, false, 0)
	p.token("a")
	p.token("+")
	p.token("b")
	qt.Assert(t, qt.Equals(sb.String(), "a+b"))
}

func TestPrinterTokenGuardsOddPlusRunFromBecomingIncrement(t *testing.T) {
	var sb strings.Builder
	p := newPrinter(&sb, false, 0)
	p.token("+")
	p.token("+")
	qt.Assert(t, qt.Equals(sb.String(), "+ +"))
}

func TestPrinterTokenAllowsEvenPlusRunAdjacent(t *testing.T) {
	var sb strings.Builder
	p := newPrinter(&sb, false, 0)
	p.token("++")
	p.token("+")
	// after "++" the run is even (length 2), so the third "+" may butt
	// directly against it without being misread as another "++".
	qt.Assert(t, qt.Equals(sb.String(), "+++"))
}

func TestPrinterTokenGuardsMinusRunSeparately(t *testing.T) {
	var sb strings.Builder
	p := newPrinter(&sb, false, 0)
	p.token("-")
	p.token("-")
	qt.Assert(t, qt.Equals(sb.String(), "- -"))
}

func TestPrinterRawBypassesSeparatorLogic(t *testing.T) {
	var sb strings.Builder
	p := newPrinter(&sb, false, 0)
	p.token("a")
	p.raw("b")
	qt.Assert(t, qt.Equals(sb.String(), "ab"))
}

func TestPrinterNewlineNoopInSingleLineMode(t *testing.T) {
	var sb strings.Builder
	p := newPrinter(&sb, false, 2)
	p.token("a")
	p.newline()
	p.token("+")
	qt.Assert(t, qt.Equals(sb.String(), "a+"))
}

func TestPrinterNewlineEmitsIndentInMultilineMode(t *testing.T) {
	var sb strings.Builder
	p := newPrinter(&sb, true, 2)
	p.indent()
	p.token(";")
	p.newline()
	p.token("b")
	qt.Assert(t, qt.Equals(sb.String(), ";\n  b"))
}

func TestPrinterIndentUnindentTracksLevel(t *testing.T) {
	// Tokens bracket each newline with a non-identifier character (";") so
	// the separator rule between identifier-part runes doesn't also fire
	// and add whitespace on top of the indent itself.
	var sb strings.Builder
	p := newPrinter(&sb, true, 4)
	p.indent()
	p.indent()
	p.newline()
	p.token("x")
	p.token(";")
	p.unindent()
	p.newline()
	p.token("y")
	qt.Assert(t, qt.Equals(sb.String(), "\n        x;\n    y"))
}

func TestPrinterSemiSkipsWhenAlreadyTerminated(t *testing.T) {
	var sb strings.Builder
	p := newPrinter(&sb, false, 0)
	p.token(";")
	p.semi()
	qt.Assert(t, qt.Equals(sb.String(), ";"))
}

func TestPrinterSemiAppendsWhenNotTerminated(t *testing.T) {
	var sb strings.Builder
	p := newPrinter(&sb, false, 0)
	p.token("x")
	p.semi()
	qt.Assert(t, qt.Equals(sb.String(), "x;"))
}

func TestIsIdentPartRuneAcceptsUnderscoreDollarDigitLetter(t *testing.T) {
	for _, r := range []rune{'_', '$', '5', 'a', 'Z'} {
		qt.Assert(t, qt.IsTrue(isIdentPartRune(r)))
	}
}

func TestIsIdentPartRuneRejectsPunctuation(t *testing.T) {
	for _, r := range []rune{'+', '.', '(', ' '} {
		qt.Assert(t, qt.IsFalse(isIdentPartRune(r)))
	}
}

func TestNeedsSeparatorBetweenIdentParts(t *testing.T) {
	qt.Assert(t, qt.IsTrue(needsSeparator('a', 'b', false)))
	qt.Assert(t, qt.IsFalse(needsSeparator('a', '+', false)))
}
