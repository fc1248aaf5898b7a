package unicodeid

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestIsIDStartAcceptsLetters(t *testing.T) {
	qt.Assert(t, qt.IsTrue(IsIDStart('é')))
	qt.Assert(t, qt.IsTrue(IsIDStart('λ')))
	qt.Assert(t, qt.IsTrue(IsIDStart('字')))
}

func TestIsIDStartRejectsDigitsAndPunctuation(t *testing.T) {
	qt.Assert(t, qt.IsFalse(IsIDStart('1')))
	qt.Assert(t, qt.IsFalse(IsIDStart('9')))
	qt.Assert(t, qt.IsFalse(IsIDStart('-')))
}

func TestIsIDContinueAcceptsDigitsAndLetters(t *testing.T) {
	qt.Assert(t, qt.IsTrue(IsIDContinue('9')))
	qt.Assert(t, qt.IsTrue(IsIDContinue('é')))
}

func TestIsIDContinueRejectsPunctuation(t *testing.T) {
	qt.Assert(t, qt.IsFalse(IsIDContinue('-')))
	qt.Assert(t, qt.IsFalse(IsIDContinue('.')))
}
