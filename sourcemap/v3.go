package sourcemap

import (
	"encoding/json"
	"sort"
)

// base64VLQChars is the standard source-map base64 alphabet (distinct from
// RFC 4648 only in never needing padding, since VLQ digits are emitted one
// at a time).
const base64VLQChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// V3 accumulates segments across one or more files and renders the
// standard "sources"/"names"/"mappings" JSON payload (source map format
// version 3) on Encode. It is the default Sink a command-line front end
// wires in; this core only needs to satisfy the Sink interface correctly.
type V3 struct {
	file string

	sources   []string
	sourceIdx map[string]int
	names     []string
	nameIdx   map[string]int

	curFile int

	segs []v3Segment
}

type v3Segment struct {
	genLine, genCol int
	srcFile         int
	srcLine, srcCol int
	nameIdx         int // -1 if unnamed
}

func NewV3() *V3 {
	return &V3{sourceIdx: map[string]int{}, nameIdx: map[string]int{}}
}

func (v *V3) StartPackage(name string) { v.file = name }
func (v *V3) EndPackage()              {}

func (v *V3) StartFile(name string) {
	if i, ok := v.sourceIdx[name]; ok {
		v.curFile = i
		return
	}
	v.curFile = len(v.sources)
	v.sourceIdx[name] = v.curFile
	v.sources = append(v.sources, name)
}

func (v *V3) EndFile() {}

func (v *V3) Segment(genLine, genCol, srcLine, srcCol int, name string) {
	ni := -1
	if name != "" {
		var ok bool
		if ni, ok = v.nameIdx[name]; !ok {
			ni = len(v.names)
			v.nameIdx[name] = ni
			v.names = append(v.names, name)
		}
	}
	v.segs = append(v.segs, v3Segment{
		genLine: genLine, genCol: genCol,
		srcFile: v.curFile, srcLine: srcLine, srcCol: srcCol,
		nameIdx: ni,
	})
}

// payload is the JSON-serializable shape of a version-3 source map.
type payload struct {
	Version  int      `json:"version"`
	File     string   `json:"file,omitempty"`
	Sources  []string `json:"sources"`
	Names    []string `json:"names"`
	Mappings string   `json:"mappings"`
}

// Encode renders the accumulated segments into a version-3 source map
// document. Segments are sorted by generated position first (stable, so
// same-position segments keep their recording order) since the "mappings"
// field's field-by-field VLQ deltas are only valid in generated-position
// order.
func (v *V3) Encode() ([]byte, error) {
	sort.SliceStable(v.segs, func(i, j int) bool {
		if v.segs[i].genLine != v.segs[j].genLine {
			return v.segs[i].genLine < v.segs[j].genLine
		}
		return v.segs[i].genCol < v.segs[j].genCol
	})

	var mappings []byte
	prevGenLine, prevGenCol := 0, 0
	prevSrcFile, prevSrcLine, prevSrcCol, prevName := 0, 0, 0, 0

	for i, s := range v.segs {
		if s.genLine != prevGenLine {
			for n := s.genLine - prevGenLine; n > 0; n-- {
				mappings = append(mappings, ';')
			}
			prevGenCol = 0
			prevGenLine = s.genLine
		} else if i > 0 {
			mappings = append(mappings, ',')
		}

		mappings = appendVLQ(mappings, s.genCol-prevGenCol)
		prevGenCol = s.genCol

		mappings = appendVLQ(mappings, s.srcFile-prevSrcFile)
		prevSrcFile = s.srcFile

		mappings = appendVLQ(mappings, s.srcLine-prevSrcLine)
		prevSrcLine = s.srcLine

		mappings = appendVLQ(mappings, s.srcCol-prevSrcCol)
		prevSrcCol = s.srcCol

		if s.nameIdx >= 0 {
			mappings = appendVLQ(mappings, s.nameIdx-prevName)
			prevName = s.nameIdx
		}
	}

	p := payload{
		Version:  3,
		File:     v.file,
		Sources:  v.sources,
		Names:    v.names,
		Mappings: string(mappings),
	}
	if p.Sources == nil {
		p.Sources = []string{}
	}
	if p.Names == nil {
		p.Names = []string{}
	}
	return json.Marshal(p)
}

// appendVLQ appends n's base64 VLQ encoding to b, per the source-map v3
// spec: the sign is folded into the low bit, each subsequent base64 digit
// carries 5 data bits plus a continuation bit in its own 6th bit.
func appendVLQ(b []byte, n int) []byte {
	v := n << 1
	if n < 0 {
		v = (-n << 1) | 1
	}
	for {
		digit := v & 0x1f
		v >>= 5
		if v > 0 {
			digit |= 0x20
		}
		b = append(b, base64VLQChars[digit])
		if v == 0 {
			break
		}
	}
	return b
}
