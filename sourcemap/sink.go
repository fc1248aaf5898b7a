// Package sourcemap implements the narrow position-tracking sink the
// Output Serializer feeds as it writes (spec §4.6): a package-then-file
// bracketing pair of calls, plus one segment call per token whose source
// position is worth recording.
package sourcemap

// Sink receives position-tracking calls from format.Fprint as it walks a
// concatenated set of programs. A nil Sink is always safe to pass; callers
// that don't want a map simply never construct one.
type Sink interface {
	// StartPackage brackets the whole multi-file concatenation (spec §6's
	// multi-file mode): name is a caller-chosen identifier for the
	// combined output, not a source file name.
	StartPackage(name string)
	EndPackage()

	// StartFile/EndFile bracket the span of output produced while emitting
	// one input program, identified by its original file name.
	StartFile(name string)
	EndFile()

	// Segment records that the next character written to the output
	// stream at (genLine, genCol) corresponds to (srcLine, srcCol) in the
	// file most recently opened by StartFile. Both positions are 0-based.
	// name, if non-empty, is the original identifier name a renamed
	// binding or label replaced, recorded so a consumer can map a minified
	// name back to its source spelling.
	Segment(genLine, genCol, srcLine, srcCol int, name string)
}

// NoopSink discards every call; format.Fprint and minify.Minify substitute
// it whenever the caller passes a nil Sink.
type NoopSink struct{}

func (NoopSink) StartPackage(string)            {}
func (NoopSink) EndPackage()                    {}
func (NoopSink) StartFile(string)               {}
func (NoopSink) EndFile()                       {}
func (NoopSink) Segment(int, int, int, int, string) {}
