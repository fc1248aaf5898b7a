package sourcemap

import "encoding/xml"

// Legacy renders accumulated segments as the older XML-wrapped symbol map
// some consumers still expect (spec §4.6's alternative sink), one
// `<symbol>` entry per recorded segment instead of V3's packed VLQ stream.
type Legacy struct {
	doc legacyMap
	cur int // index into doc.Files of the file currently open
}

type legacyMap struct {
	XMLName xml.Name     `xml:"map"`
	Package string       `xml:"package,attr,omitempty"`
	Files   []legacyFile `xml:"file"`
}

type legacyFile struct {
	Path    string         `xml:"path,attr"`
	Symbols []legacySymbol `xml:"symbol"`
}

type legacySymbol struct {
	GenLine int    `xml:"outline,attr"`
	GenCol  int    `xml:"outcolumn,attr"`
	SrcLine int    `xml:"inline,attr"`
	SrcCol  int    `xml:"incolumn,attr"`
	Name    string `xml:"name,attr,omitempty"`
}

func NewLegacy() *Legacy { return &Legacy{} }

func (l *Legacy) StartPackage(name string) { l.doc.Package = name }
func (l *Legacy) EndPackage()              {}

func (l *Legacy) StartFile(name string) {
	for i, f := range l.doc.Files {
		if f.Path == name {
			l.cur = i
			return
		}
	}
	l.cur = len(l.doc.Files)
	l.doc.Files = append(l.doc.Files, legacyFile{Path: name})
}

func (l *Legacy) EndFile() {}

func (l *Legacy) Segment(genLine, genCol, srcLine, srcCol int, name string) {
	f := &l.doc.Files[l.cur]
	f.Symbols = append(f.Symbols, legacySymbol{
		GenLine: genLine, GenCol: genCol,
		SrcLine: srcLine, SrcCol: srcCol,
		Name: name,
	})
}

// Encode renders the accumulated map as an indented XML document.
func (l *Legacy) Encode() ([]byte, error) {
	return xml.MarshalIndent(l.doc, "", "  ")
}
