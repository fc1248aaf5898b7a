package rename

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/dungjk/jsmin/token"
)

func TestGeneratorProducesSingleLetterSequence(t *testing.T) {
	g := newGenerator(nil, false)
	qt.Assert(t, qt.Equals(g.Next(), "a"))
	qt.Assert(t, qt.Equals(g.Next(), "b"))
}

func TestGeneratorWrapsToTwoCharacterNames(t *testing.T) {
	g := newGenerator(nil, false)
	var last string
	for i := 0; i < len(startChars); i++ {
		last = g.Next()
	}
	qt.Assert(t, qt.Equals(last, "$"))
	qt.Assert(t, qt.Equals(g.Next(), "aa"))
}

func TestGeneratorSkipsAvoidedNames(t *testing.T) {
	g := newGenerator(map[string]bool{"a": true, "b": true}, false)
	qt.Assert(t, qt.Equals(g.Next(), "c"))
}

func TestGeneratorSkipsReservedWords(t *testing.T) {
	g := newGenerator(nil, false)
	for i := 0; i < 200; i++ {
		name := g.Next()
		qt.Assert(t, qt.IsFalse(token.IsReserved(name, false)))
	}
}
