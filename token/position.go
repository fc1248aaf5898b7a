// Package token defines source positions and the lexical vocabulary shared
// by the scope resolver, renamer, and serializer.
package token

import (
	"cmp"
	"fmt"
	"sort"
	"sync"
)

// Position describes an arbitrary and printable source position within a
// file, including offset, line, and column location, which can be rendered
// in a human-friendly text form.
//
// A Position is valid if the line number is > 0.
type Position struct {
	Filename string // filename, if any
	Offset   int    // offset, starting at 0
	Line     int    // line number, starting at 1
	Column   int    // column number, starting at 1 (byte count)
}

// IsValid reports whether the position is valid.
func (pos *Position) IsValid() bool { return pos.Line > 0 }

// String returns a human-readable form of a position in one of several
// forms:
//
//	file:line:column    valid position with file name
//	line:column         valid position without file name
//	file                invalid position with file name
//	-                   invalid position without file name
func (pos Position) String() string {
	s := pos.Filename
	if pos.IsValid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d:%d", pos.Line, pos.Column)
	}
	if s == "" {
		s = "-"
	}
	return s
}

// Pos is a compact encoding of a source position within a [File]. The zero
// value, [NoPos], denotes a synthesized node with no source position, such
// as a binding the rewriter or renamer introduces.
type Pos struct {
	file   *File
	offset int
}

// NoPos is the zero value for [Pos]; it carries no file or line
// information and [Pos.IsValid] reports false. NoPos is always ordered
// after any valid [Pos], since it tends to identify nodes synthesized
// after parsing (rewriter-introduced aliases, generated bindings).
var NoPos = Pos{}

// File returns the file that contains p, or nil for [NoPos].
func (p Pos) File() *File {
	if p.file == nil {
		return nil
	}
	return p.file
}

// Position unpacks the position information into a flat struct.
func (p Pos) Position() Position {
	if p.file == nil {
		return Position{}
	}
	return p.file.Position(p)
}

// String returns a human-readable form of a printable position.
func (p Pos) String() string {
	return p.Position().String()
}

// IsValid reports whether p carries file and offset information.
func (p Pos) IsValid() bool {
	return p != NoPos
}

// Compare orders two positions: 0 if equal, -1 if p < p2, +1 if p > p2.
// NoPos always compares larger than any valid position.
func (p Pos) Compare(p2 Pos) int {
	if p == p2 {
		return 0
	} else if p == NoPos {
		return +1
	} else if p2 == NoPos {
		return -1
	}
	if c := cmp.Compare(p.Filename(), p2.Filename()); c != 0 {
		return c
	}
	return cmp.Compare(p.Offset(), p2.Offset())
}

// Filename returns the name of the file this position belongs to.
func (p Pos) Filename() string {
	if p.file == nil {
		return ""
	}
	return p.file.name
}

// Offset reports the byte offset of p relative to its file.
func (p Pos) Offset() int {
	if p.file == nil {
		return 0
	}
	return p.offset
}

// -----------------------------------------------------------------------------
// File

// File tracks the line-offset table for a single source file, so that a
// [Pos] recorded during parsing can be turned back into a human-readable
// [Position] for diagnostics. It is safe for concurrent read access once
// line information has been populated.
type File struct {
	mutex sync.RWMutex
	name  string
	size  int
	lines []int // offset of the first character of each line; lines[0] == 0
}

// NewFile returns a new file with the given name and content size.
func NewFile(filename string, size int) *File {
	return &File{
		name:  filename,
		size:  size,
		lines: []int{0},
	}
}

// Name returns the file name as passed to [NewFile].
func (f *File) Name() string { return f.name }

// Size returns the content size as passed to [NewFile].
func (f *File) Size() int { return f.size }

// LineCount returns the number of lines recorded so far.
func (f *File) LineCount() int {
	f.mutex.RLock()
	n := len(f.lines)
	f.mutex.RUnlock()
	return n
}

// AddLine records the offset of a new line's first character. The offset
// must be larger than that of the previous line and smaller than the file
// size, otherwise it is ignored.
func (f *File) AddLine(offset int) {
	f.mutex.Lock()
	if i := len(f.lines); (i == 0 || f.lines[i-1] < offset) && offset < f.size {
		f.lines = append(f.lines, offset)
	}
	f.mutex.Unlock()
}

// Pos returns the Pos value for the given file offset.
func (f *File) Pos(offset int) Pos {
	if offset < 0 {
		offset = 0
	} else if offset > f.size {
		offset = f.size
	}
	return Pos{f, offset}
}

// Offset returns the byte offset for the given file position p.
func (f *File) Offset(p Pos) int {
	return p.offset
}

// Position returns the Position value for the given file position p.
func (f *File) Position(p Pos) Position {
	offset := p.offset
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	line, column := f.unpack(offset)
	return Position{Filename: f.name, Offset: offset, Line: line, Column: column}
}

func (f *File) unpack(offset int) (line, column int) {
	if i := searchInts(f.lines, offset); i >= 0 {
		line, column = i+1, offset-f.lines[i]+1
	}
	return
}

func searchInts(a []int, x int) int {
	i := sort.Search(len(a), func(i int) bool { return a[i] > x }) - 1
	return i
}
