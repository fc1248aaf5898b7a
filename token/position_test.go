package token

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestNoPosIsInvalid(t *testing.T) {
	qt.Assert(t, qt.IsFalse(NoPos.IsValid()))
	qt.Assert(t, qt.Equals(NoPos.String(), "-"))
}

func TestFilePosRoundTripsPosition(t *testing.T) {
	f := NewFile("a.js", 20)
	f.AddLine(0)
	f.AddLine(10)

	p := f.Pos(12)
	qt.Assert(t, qt.IsTrue(p.IsValid()))
	pos := p.Position()
	qt.Assert(t, qt.Equals(pos.Filename, "a.js"))
	qt.Assert(t, qt.Equals(pos.Line, 2))
	qt.Assert(t, qt.Equals(pos.Column, 3))
}

func TestPosCompareOrdersByOffsetWithinFile(t *testing.T) {
	f := NewFile("a.js", 20)
	p1 := f.Pos(1)
	p2 := f.Pos(5)

	qt.Assert(t, qt.Equals(p1.Compare(p2), -1))
	qt.Assert(t, qt.Equals(p2.Compare(p1), 1))
	qt.Assert(t, qt.Equals(p1.Compare(p1), 0))
}

func TestPosCompareNoPosAlwaysLast(t *testing.T) {
	f := NewFile("a.js", 20)
	p := f.Pos(1)

	qt.Assert(t, qt.Equals(p.Compare(NoPos), -1))
	qt.Assert(t, qt.Equals(NoPos.Compare(p), 1))
}
