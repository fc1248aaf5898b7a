package sourcemap

import (
	"encoding/json"
	"encoding/xml"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestAppendVLQEncodesKnownValues(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "A"},
		{1, "C"},
		{-1, "D"},
		{15, "e"},
		{16, "gB"},
	}
	for _, c := range cases {
		got := string(appendVLQ(nil, c.n))
		qt.Assert(t, qt.Equals(got, c.want))
	}
}

func TestV3EncodeSingleZeroSegment(t *testing.T) {
	v := NewV3()
	v.StartPackage("bundle")
	v.StartFile("a.js")
	v.Segment(0, 0, 0, 0, "")
	v.EndFile()
	v.EndPackage()

	data, err := v.Encode()
	qt.Assert(t, qt.IsNil(err))

	var p payload
	qt.Assert(t, qt.IsNil(json.Unmarshal(data, &p)))
	qt.Assert(t, qt.Equals(p.Version, 3))
	qt.Assert(t, qt.Equals(p.File, "bundle"))
	qt.Assert(t, qt.DeepEquals(p.Sources, []string{"a.js"}))
	qt.Assert(t, qt.DeepEquals(p.Names, []string{}))
	qt.Assert(t, qt.Equals(p.Mappings, "AAAA"))
}

func TestV3EncodeRecordsNamesAndMultipleFiles(t *testing.T) {
	v := NewV3()
	v.StartFile("a.js")
	v.Segment(0, 0, 0, 0, "longName")
	v.StartFile("b.js")
	v.Segment(0, 5, 1, 2, "")

	data, err := v.Encode()
	qt.Assert(t, qt.IsNil(err))

	var p payload
	qt.Assert(t, qt.IsNil(json.Unmarshal(data, &p)))
	qt.Assert(t, qt.DeepEquals(p.Sources, []string{"a.js", "b.js"}))
	qt.Assert(t, qt.DeepEquals(p.Names, []string{"longName"}))
}

func TestV3StartFileReusesIndexForRepeatedName(t *testing.T) {
	v := NewV3()
	v.StartFile("a.js")
	v.Segment(0, 0, 0, 0, "")
	v.StartFile("b.js")
	v.Segment(0, 1, 0, 0, "")
	v.StartFile("a.js")
	v.Segment(1, 0, 0, 0, "")

	data, err := v.Encode()
	qt.Assert(t, qt.IsNil(err))
	var p payload
	qt.Assert(t, qt.IsNil(json.Unmarshal(data, &p)))
	qt.Assert(t, qt.DeepEquals(p.Sources, []string{"a.js", "b.js"}))
}

func TestNoopSinkDiscardsEverything(t *testing.T) {
	var s Sink = NoopSink{}
	s.StartPackage("p")
	s.StartFile("f")
	s.Segment(0, 0, 0, 0, "x")
	s.EndFile()
	s.EndPackage()
}

func TestLegacyEncodeProducesOneSymbolPerSegment(t *testing.T) {
	l := NewLegacy()
	l.StartPackage("bundle")
	l.StartFile("a.js")
	l.Segment(0, 4, 0, 0, "foo")
	l.Segment(1, 0, 1, 2, "")
	l.EndFile()

	data, err := l.Encode()
	qt.Assert(t, qt.IsNil(err))

	var doc legacyMap
	qt.Assert(t, qt.IsNil(xml.Unmarshal(data, &doc)))
	qt.Assert(t, qt.Equals(doc.Package, "bundle"))
	qt.Assert(t, qt.HasLen(doc.Files, 1))
	qt.Assert(t, qt.Equals(doc.Files[0].Path, "a.js"))
	qt.Assert(t, qt.HasLen(doc.Files[0].Symbols, 2))
	qt.Assert(t, qt.Equals(doc.Files[0].Symbols[0].Name, "foo"))
	qt.Assert(t, qt.Equals(doc.Files[0].Symbols[1].GenLine, 1))
}

func TestLegacyStartFileReusesExistingEntry(t *testing.T) {
	l := NewLegacy()
	l.StartFile("a.js")
	l.Segment(0, 0, 0, 0, "")
	l.StartFile("b.js")
	l.Segment(0, 0, 0, 0, "")
	l.StartFile("a.js")
	l.Segment(1, 0, 0, 0, "")

	data, err := l.Encode()
	qt.Assert(t, qt.IsNil(err))
	var doc legacyMap
	qt.Assert(t, qt.IsNil(xml.Unmarshal(data, &doc)))
	qt.Assert(t, qt.HasLen(doc.Files, 2))
	qt.Assert(t, qt.HasLen(doc.Files[0].Symbols, 2))
}
