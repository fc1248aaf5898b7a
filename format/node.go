package format

import (
	"io"

	"github.com/dungjk/jsmin/ast"
	"github.com/dungjk/jsmin/scope"
	"github.com/dungjk/jsmin/sourcemap"
	"github.com/dungjk/jsmin/token"
)

// Options controls the Output Serializer (spec §4.5)'s textual choices.
type Options struct {
	Multiline    bool
	IndentSpaces int

	// ASCIIOnly forces every non-ASCII character in a string literal to an
	// escape sequence (spec §4.5.4).
	ASCIIOnly bool

	// InlineSafeStrings guards `</script` and `]]>` inside string literals
	// (spec §6's `inline_safe_strings`).
	InlineSafeStrings bool

	// TermSemicolons forces a trailing `;` at the end of each concatenated
	// file and at the very end of the program (spec §6's `term_semicolons`):
	// without it, ASI is trusted to close the final statement of each file,
	// which is unsafe once another file's text is appended directly after.
	TermSemicolons bool

	// OperatorSpaces surrounds binary/conditional operators with a literal
	// space on each side (spec §6's `operator_spaces`), for output that
	// favors readability over the last few bytes.
	OperatorSpaces bool

	// Globals feeds FormatNumber's NaN/Infinity fallback chain (§4.5.5).
	Globals GlobalLookup

	// MacSafariQuirks enables the NFE-in-if-consequent brace-wrapping
	// hazard guard (§4.5.4's Safari note).
	MacSafariQuirks bool

	// IgnoreConditionalCompilation carries the ignore_conditional_compilation
	// setting. The serializer does not read it, and no ast node holds
	// `/*@...@*/` comments, so it has no effect on output: no conditional-
	// compilation comment is emitted whether it is true or false.
	IgnoreConditionalCompilation bool
}

// Fprint walks every program in order and writes minified source text to w,
// sharing one printer (and therefore one separator/run state) across the
// whole concatenation, per spec §6's multi-file mode. Without
// TermSemicolons, the last statement of each program has its own trailing
// bare `;` omitted and ASI is trusted to close it instead (spec §6's
// term_semicolons: "force a trailing ; at program end and between
// concatenated files").
//
// sink, if non-nil, is fed StartFile/EndFile around each program's output
// and a Segment for every identifier the renamer gave an alternate spelling
// (spec §4.6's Source Map Sink). A nil sink is replaced with
// sourcemap.NoopSink so callers that don't want a map can pass nil.
func Fprint(w io.Writer, programs []*ast.Program, opts Options, sink sourcemap.Sink) error {
	if sink == nil {
		sink = sourcemap.NoopSink{}
	}
	p := newPrinter(w, opts.Multiline, opts.IndentSpaces)
	e := &emitter{p: p, opts: opts, sink: sink}
	for _, prog := range programs {
		sink.StartFile(prog.Filename)
		e.statementsTail(prog.Body.List, !opts.TermSemicolons)
		if opts.TermSemicolons {
			e.p.semi()
		}
		sink.EndFile()
	}
	return p.err
}

type emitter struct {
	p    *printer
	opts Options
	sink sourcemap.Sink

	// suppressNextSemi, when true, makes the next semi() call a no-op
	// instead of writing `;`. Set only immediately around the single leaf
	// statement identified as the tail of a suppressed program (see
	// statementsTail/stmtTail), held off while a function literal inside
	// that statement emits its body (see funcLiteral), and always cleared
	// afterward so it never dangles into the next program in a
	// concatenation.
	suppressNextSemi bool
}

// semi is stmt()'s entry point for a statement's own trailing bare `;`;
// Throw bypasses it entirely since it always needs its semicolon regardless
// of tail position (spec §4.5.4).
func (e *emitter) semi() {
	if e.suppressNextSemi {
		e.suppressNextSemi = false
		return
	}
	e.p.semi()
}

// identText resolves the text an Ident should print as: its pre-seeded or
// renamer-assigned alternate name if it was resolved to a Binding, else its
// original source name (spec §4.4's renaming is opt-in; an unresolved or
// never-renamed Ident simply keeps its name).
func identText(id *ast.Ident) string {
	if b, ok := id.Ref.(*scope.Binding); ok && b != nil {
		if b.AlternateName != "" {
			return b.AlternateName
		}
	}
	return id.Name
}

// identToken emits id's rendered text and, when the renamer gave it a
// spelling different from its source name, feeds the substitution to the
// sourcemap sink as a Segment (spec §4.6): a consumer of the map can
// resolve a renamed identifier in the minified output back to the name
// that appeared in source.
func (e *emitter) identToken(id *ast.Ident) {
	text := identText(id)
	line, col := e.p.tokenAt(text)
	if text == id.Name {
		return
	}
	srcPos := id.Pos().Position()
	if !srcPos.IsValid() {
		return
	}
	e.sink.Segment(line, col, srcPos.Line-1, srcPos.Column-1, id.Name)
}

func labelText(id *ast.Ident) string {
	if id.LabelAlt != "" {
		return id.LabelAlt
	}
	return id.Name
}

// ----------------------------------------------------------------------------
// Statements

func (e *emitter) statements(list []ast.Stmt) {
	for i, s := range list {
		if i > 0 {
			e.p.newline()
		}
		e.stmt(s)
	}
}

// block emits a Block, wrapping it in braces unless mode is NoBraces (spec
// §4.5.3's block_mode state). Every caller in this file passes Normal:
// switch case bodies are statement lists rather than Blocks, and function
// bodies always keep their braces.
func (e *emitter) block(b *ast.Block, mode BlockMode) {
	if mode == NoBraces {
		e.statements(b.List)
		return
	}
	e.p.token("{")
	e.p.indent()
	if len(b.List) > 0 {
		e.p.newline()
		e.statements(b.List)
	}
	e.p.unindent()
	e.p.newline()
	e.p.token("}")
}

// bodyAsStmt emits s as the single-statement body of an if/for/while/etc,
// using full block braces for a Block body and emitting any other statement
// form (including a single ExpressionStatement) directly, exactly as the
// source structured it: the serializer never invents a block the tree
// didn't already have.
func (e *emitter) bodyAsStmt(s ast.Stmt) {
	if blk, ok := s.(*ast.Block); ok {
		e.block(blk, Normal)
		return
	}
	e.stmt(s)
}

// statementsTail behaves like statements but, when suppressLast is true,
// renders the final statement in list through stmtTail so its own trailing
// bare `;` is omitted (Fprint's per-program term_semicolons handling).
func (e *emitter) statementsTail(list []ast.Stmt, suppressLast bool) {
	for i, s := range list {
		if i > 0 {
			e.p.newline()
		}
		if suppressLast && i == len(list)-1 {
			e.stmtTail(s, true)
		} else {
			e.stmt(s)
		}
	}
}

// bodyAsStmtTail is bodyAsStmt with tail propagated into a non-Block body,
// so the statement that ends up actually emitting the last token still has
// its semicolon suppressed even when reached through an if/for/while/with
// wrapper.
func (e *emitter) bodyAsStmtTail(s ast.Stmt, tail bool) {
	if blk, ok := s.(*ast.Block); ok {
		e.block(blk, Normal)
		return
	}
	e.stmtTail(s, tail)
}

// stmtTail renders s, and when tail is true, follows the same single path
// the grammar takes to reach s's own final token (an if's taken branch, a
// loop's body, a label's target) so that whichever leaf statement actually
// ends the output has its bare `;` suppressed instead of whichever
// statement merely happens to be encountered first. Non-tail siblings
// reached along the way (an if's consequent when an alternate follows) are
// rendered through the ordinary, non-suppressing stmt/bodyAsStmt.
func (e *emitter) stmtTail(s ast.Stmt, tail bool) {
	if !tail {
		e.stmt(s)
		return
	}
	switch n := s.(type) {
	case *ast.If:
		e.p.token("if")
		e.p.token("(")
		e.expr(n.Test, 0)
		e.p.token(")")
		if n.Alternate == nil && e.opts.MacSafariQuirks && consequentEndsInNFE(n.Consequent) {
			e.p.token("{")
			e.p.indent()
			e.p.newline()
			e.stmt(n.Consequent)
			e.p.unindent()
			e.p.newline()
			e.p.token("}")
			return
		}
		if n.Alternate == nil {
			e.bodyAsStmtTail(n.Consequent, true)
			return
		}
		e.bodyAsStmt(n.Consequent)
		e.p.newline()
		e.p.token("else")
		e.bodyAsStmtTail(n.Alternate, true)

	case *ast.For:
		e.p.token("for")
		e.p.token("(")
		e.forInit(n.Init)
		e.p.token(";")
		if n.Test != nil {
			e.expr(n.Test, 0)
		}
		e.p.token(";")
		if n.Update != nil {
			e.expr(n.Update, 0)
		}
		e.p.token(")")
		e.bodyAsStmtTail(n.Body, true)

	case *ast.ForIn:
		e.p.token("for")
		e.p.token("(")
		e.forInit(n.Lhs)
		if n.Of {
			e.p.token("of")
		} else {
			e.p.token("in")
		}
		e.expr(n.Source, 0)
		e.p.token(")")
		e.bodyAsStmtTail(n.Body, true)

	case *ast.While:
		e.p.token("while")
		e.p.token("(")
		e.expr(n.Test, 0)
		e.p.token(")")
		e.bodyAsStmtTail(n.Body, true)

	case *ast.With:
		e.p.token("with")
		e.p.token("(")
		e.expr(n.Object, 0)
		e.p.token(")")
		e.bodyAsStmtTail(n.Body, true)

	case *ast.Labeled:
		e.p.token(labelText(n.Label))
		e.p.token(":")
		e.stmtTail(n.Stmt, true)

	case *ast.Block, *ast.Switch, *ast.Try, *ast.FunctionObject, *ast.Throw:
		// These end in `}` (or, for Throw, its own forced `;`), so there is
		// no tail semicolon to drop; the semi() calls of their nested
		// statements are left alone.
		e.stmt(s)

	case *ast.DoWhile:
		// The body keeps its own semicolons; only the `;` after while(...)
		// is dropped.
		e.p.token("do")
		e.bodyAsStmt(n.Body)
		e.p.token("while")
		e.p.token("(")
		e.expr(n.Test, 0)
		e.p.token(")")

	default:
		// A leaf statement (Var/ExpressionStatement/Empty/Return/Break/
		// Continue) whose own final semi() call is the one dropped — the
		// flag is cleared unconditionally afterward so it never leaks into
		// whatever follows this program in a concatenation.
		e.suppressNextSemi = true
		e.stmt(s)
		e.suppressNextSemi = false
	}
}

func (e *emitter) stmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Block:
		e.block(n, Normal)

	case *ast.VarStatement:
		e.p.token("var")
		for i, d := range n.Declarators {
			if i > 0 {
				e.p.token(",")
			}
			e.identToken(d.Name)
			if d.Init != nil {
				e.p.token("=")
				e.expr(d.Init, token.Precedence(token.COMMA)+1)
			}
		}
		e.semi()

	case *ast.ExpressionStatement:
		// A statement beginning with `function` or `{` is ambiguous with a
		// declaration/block; the expression-at-statement-start hazard (spec
		// §4.5.4) forces it into parentheses.
		e.p.startOfExpressionStatement = startsWithHazard(n.X)
		e.expr(n.X, 0)
		e.p.startOfExpressionStatement = false
		e.semi()

	case *ast.EmptyStatement:
		e.semi()

	case *ast.If:
		e.p.token("if")
		e.p.token("(")
		e.expr(n.Test, 0)
		e.p.token(")")
		if n.Alternate == nil && e.opts.MacSafariQuirks && consequentEndsInNFE(n.Consequent) {
			// Safari parses a named function expression as the last token
			// of an un-braced if-consequent as a function declaration;
			// force braces to keep the NFE an expression (§4.5.4).
			e.p.token("{")
			e.p.indent()
			e.p.newline()
			e.stmt(n.Consequent)
			e.p.unindent()
			e.p.newline()
			e.p.token("}")
			return
		}
		e.bodyAsStmt(n.Consequent)
		if n.Alternate != nil {
			e.p.newline()
			e.p.token("else")
			e.bodyAsStmt(n.Alternate)
		}

	case *ast.For:
		e.p.token("for")
		e.p.token("(")
		e.forInit(n.Init)
		e.p.token(";")
		if n.Test != nil {
			e.expr(n.Test, 0)
		}
		e.p.token(";")
		if n.Update != nil {
			e.expr(n.Update, 0)
		}
		e.p.token(")")
		e.bodyAsStmt(n.Body)

	case *ast.ForIn:
		e.p.token("for")
		e.p.token("(")
		e.forInit(n.Lhs)
		if n.Of {
			e.p.token("of")
		} else {
			e.p.token("in")
		}
		e.expr(n.Source, 0)
		e.p.token(")")
		e.bodyAsStmt(n.Body)

	case *ast.While:
		e.p.token("while")
		e.p.token("(")
		e.expr(n.Test, 0)
		e.p.token(")")
		e.bodyAsStmt(n.Body)

	case *ast.DoWhile:
		e.p.token("do")
		e.bodyAsStmt(n.Body)
		e.p.token("while")
		e.p.token("(")
		e.expr(n.Test, 0)
		e.p.token(")")
		e.semi()

	case *ast.Switch:
		e.p.token("switch")
		e.p.token("(")
		e.expr(n.Discriminant, 0)
		e.p.token(")")
		e.p.token("{")
		e.p.indent()
		for _, c := range n.Cases {
			e.p.newline()
			if c.Test != nil {
				e.p.token("case")
				e.expr(c.Test, 0)
			} else {
				e.p.token("default")
			}
			e.p.token(":")
			e.p.indent()
			for _, st := range c.Body {
				e.p.newline()
				e.stmt(st)
			}
			e.p.unindent()
		}
		e.p.unindent()
		e.p.newline()
		e.p.token("}")

	case *ast.Try:
		e.p.token("try")
		e.block(n.Block, Normal)
		if n.Handler != nil {
			e.p.token("catch")
			if n.Handler.Param != nil {
				e.p.token("(")
				e.identToken(n.Handler.Param)
				e.p.token(")")
			}
			e.block(n.Handler.Body, Normal)
		}
		if n.Finally != nil {
			e.p.token("finally")
			e.block(n.Finally, Normal)
		}

	case *ast.With:
		e.p.token("with")
		e.p.token("(")
		e.expr(n.Object, 0)
		e.p.token(")")
		e.bodyAsStmt(n.Body)

	case *ast.Throw:
		e.p.token("throw")
		e.expr(n.X, 0)
		// throw always needs its semicolon: ASI cannot be trusted to end a
		// throw statement before whatever the next line starts with
		// (spec §4.5.4).
		e.p.raw(";")
		e.p.lastChar, e.p.haveLast, e.p.lastRunOdd = ';', true, false

	case *ast.Return:
		e.p.token("return")
		if n.X != nil {
			e.expr(n.X, 0)
		}
		e.semi()

	case *ast.Break:
		e.p.token("break")
		if n.Label != nil {
			e.p.token(labelText(n.Label))
		}
		e.semi()

	case *ast.Continue:
		e.p.token("continue")
		if n.Label != nil {
			e.p.token(labelText(n.Label))
		}
		e.semi()

	case *ast.Labeled:
		e.p.token(labelText(n.Label))
		e.p.token(":")
		e.stmt(n.Stmt)

	case *ast.FunctionObject:
		e.funcLiteral(n)

	default:
		panic("format: unhandled statement type")
	}
}

// startsWithHazard reports whether x's leftmost token is `function` or `{`,
// which at statement-start is grammatically ambiguous with a function
// declaration or a block (spec §4.5.4).
func startsWithHazard(x ast.Expr) bool {
	switch n := x.(type) {
	case *ast.FunctionObject:
		return true
	case *ast.ObjectLiteral:
		return true
	case *ast.BinaryOperator:
		return startsWithHazard(n.X)
	case *ast.AssignmentOperator:
		return startsWithHazard(n.Target)
	case *ast.Conditional:
		return startsWithHazard(n.Test)
	case *ast.CallNode:
		return startsWithHazard(n.Fun)
	case *ast.Member:
		return startsWithHazard(n.X)
	case *ast.PostfixOperator:
		return startsWithHazard(n.X)
	default:
		return false
	}
}

func consequentEndsInNFE(s ast.Stmt) bool {
	switch n := s.(type) {
	case *ast.ExpressionStatement:
		return endsInNFE(n.X)
	default:
		return false
	}
}

func endsInNFE(x ast.Expr) bool {
	switch n := x.(type) {
	case *ast.FunctionObject:
		return n.IsExpression && n.Name != nil
	case *ast.AssignmentOperator:
		return endsInNFE(n.Value)
	case *ast.BinaryOperator:
		return endsInNFE(n.Y)
	case *ast.Conditional:
		return endsInNFE(n.Alternate)
	default:
		return false
	}
}

func (e *emitter) forInit(init ast.Node) {
	switch n := init.(type) {
	case nil:
	case *ast.VarStatement:
		e.p.token("var")
		for i, d := range n.Declarators {
			if i > 0 {
				e.p.token(",")
			}
			e.identToken(d.Name)
			if d.Init != nil {
				e.p.token("=")
				e.expr(d.Init, token.Precedence(token.COMMA)+1)
			}
		}
	case ast.Expr:
		e.expr(n, token.Precedence(token.COMMA)+1)
	}
}

func (e *emitter) funcLiteral(fn *ast.FunctionObject) {
	e.p.token("function")
	if fn.Name != nil {
		e.identToken(fn.Name)
	}
	e.p.token("(")
	for i, param := range fn.Params {
		if i > 0 {
			e.p.token(",")
		}
		e.identToken(param.Name)
	}
	e.p.token(")")
	// A tail suppression pending for the enclosing statement must not be
	// consumed by the first statement of this body.
	suppress := e.suppressNextSemi
	e.suppressNextSemi = false
	e.block(fn.Body, Normal)
	e.suppressNextSemi = suppress
}

// ----------------------------------------------------------------------------
// Expressions

// expr emits x, wrapping it in parentheses when its own precedence is lower
// than minPrec requires (spec §4.5.2). minPrec is the minimum precedence x
// may have without parenthesization in its current position; callers pass
// the precedence of the enclosing operator (possibly +1 for a
// non-associative or right-hand slot).
func (e *emitter) expr(x ast.Expr, minPrec int) {
	needParen := x.Precedence() < minPrec
	if g, ok := x.(*ast.GroupingOperator); ok {
		e.expr(g.X, minPrec)
		return
	}
	if needParen {
		e.p.token("(")
	}
	if e.p.startOfExpressionStatement && !needParen && startsWithHazard(x) {
		e.p.token("(")
		e.exprRaw(x)
		e.p.token(")")
		e.p.startOfExpressionStatement = false
		return
	}
	e.exprRaw(x)
	if needParen {
		e.p.token(")")
	}
}

func (e *emitter) exprRaw(x ast.Expr) {
	switch n := x.(type) {
	case *ast.Ident:
		e.identToken(n)

	case *ast.NumberLiteral:
		e.p.token(FormatNumber(n.Value, n.Raw, isNegativeZero(n), e.opts.Globals))

	case *ast.StringLiteral:
		e.p.raw(FormatString(n.Value, e.opts.ASCIIOnly, e.opts.InlineSafeStrings))
		e.p.lastChar, e.p.haveLast, e.p.lastRunOdd = 0, false, false

	case *ast.BooleanLiteral:
		if n.Value {
			e.p.token("true")
		} else {
			e.p.token("false")
		}

	case *ast.NullLiteral:
		e.p.token("null")

	case *ast.RegExpLiteral:
		e.p.raw("/" + n.Pattern + "/" + n.Flags)
		e.p.lastChar, e.p.haveLast, e.p.lastRunOdd = 'x', true, false

	case *ast.ArrayLiteral:
		e.p.token("[")
		for i, el := range n.Elements {
			if i > 0 {
				e.p.token(",")
			}
			if el != nil {
				e.expr(el, token.Precedence(token.COMMA)+1)
			}
		}
		e.p.token("]")

	case *ast.ObjectLiteral:
		e.p.token("{")
		for i, prop := range n.Properties {
			if i > 0 {
				e.p.token(",")
			}
			e.objectKey(prop)
			if !prop.Shorthand {
				e.p.token(":")
				e.expr(prop.Value, token.Precedence(token.COMMA)+1)
			}
		}
		e.p.token("}")

	case *ast.UnaryOperator:
		e.p.token(unaryText(n.Op))
		// `typeof`/`void`/`delete` are word operators and already get a
		// separator from the identifier-adjacency rule; symbolic prefix
		// operators rely on the same rule to avoid `- -x` collapsing into
		// `--x` (spec §4.5.1).
		e.expr(n.X, n.Precedence())

	case *ast.PostfixOperator:
		e.expr(n.X, n.Precedence()+1)
		e.p.token(postfixText(n.Op))

	case *ast.BinaryOperator:
		e.binaryExpr(n)

	case *ast.AssignmentOperator:
		// Assignment is right-associative; the left side must bind
		// strictly tighter than assignment itself (spec §4.5.2).
		e.expr(n.Target, n.Precedence()+1)
		e.opToken(assignText(n.Op))
		e.expr(n.Value, n.Precedence())

	case *ast.Conditional:
		e.expr(n.Test, n.Precedence()+1)
		e.opToken("?")
		// Both branches are assignment expressions in the grammar, so each
		// only needs to reach Assignment's slot, not Conditional's own
		// (spec §4.5.2).
		e.expr(n.Consequent, token.Precedence(token.ASSIGN))
		e.opToken(":")
		e.expr(n.Alternate, token.Precedence(token.ASSIGN))

	case *ast.CallNode:
		e.calleeExpr(n.Fun)
		e.p.token("(")
		for i, a := range n.Args {
			if i > 0 {
				e.p.token(",")
			}
			e.expr(a, token.Precedence(token.COMMA)+1)
		}
		e.p.token(")")

	case *ast.NewExpr:
		e.p.token("new")
		e.newCallee(n.Callee)
		if n.Rparen.IsValid() || len(n.Args) > 0 {
			e.p.token("(")
			for i, a := range n.Args {
				if i > 0 {
					e.p.token(",")
				}
				e.expr(a, token.Precedence(token.COMMA)+1)
			}
			e.p.token(")")
		}

	case *ast.Member:
		e.calleeExpr(n.X)
		if n.Computed {
			e.p.token("[")
			e.expr(n.Property, 0)
			e.p.token("]")
		} else {
			e.p.token(".")
			e.identToken(n.Property.(*ast.Ident))
		}

	case *ast.FunctionObject:
		e.funcLiteral(n)

	default:
		panic("format: unhandled expression type")
	}
}

func (e *emitter) objectKey(prop *ast.ObjectProperty) {
	if prop.Computed {
		e.p.token("[")
		e.expr(prop.Key, 0)
		e.p.token("]")
		return
	}
	switch k := prop.Key.(type) {
	case *ast.Ident:
		e.identToken(k)
	case *ast.StringLiteral:
		e.p.raw(FormatString(k.Value, e.opts.ASCIIOnly, e.opts.InlineSafeStrings))
		e.p.lastChar, e.p.haveLast, e.p.lastRunOdd = 0, false, false
	case *ast.NumberLiteral:
		e.p.token(FormatNumber(k.Value, k.Raw, isNegativeZero(k), e.opts.Globals))
	}
}

// calleeExpr emits the left operand of a Member/CallNode, parenthesizing
// exactly when the left side is itself lower precedence than a member/call
// chain requires: a raw NumberLiteral immediately before `.` would instead
// be read as the start of a decimal fraction (spec §4.5.2's member-access
// hazards), and any operator expression needs grouping since `.`/`(` bind
// tighter than everything but another member/call.
func (e *emitter) calleeExpr(x ast.Expr) {
	switch n := x.(type) {
	case *ast.NumberLiteral:
		e.p.token("(")
		e.exprRaw(n)
		e.p.token(")")
	case *ast.FunctionObject:
		e.p.token("(")
		e.funcLiteral(n)
		e.p.token(")")
	default:
		e.expr(x, ast.PrecedenceAtom)
	}
}

// newCallee emits the callee of a NewExpr. Per spec §4.5.2's new+call
// hazard, a call expression nested in callee position must be parenthesized
// (`new (f())()` vs `new f()()`), since `new` otherwise greedily absorbs the
// nearest parenthesized argument list as its own.
func (e *emitter) newCallee(x ast.Expr) {
	switch x.(type) {
	case *ast.CallNode:
		e.p.token("(")
		e.exprRaw(x)
		e.p.token(")")
	default:
		e.expr(x, ast.PrecedenceAtom)
	}
}

// binaryExpr applies the precedence-cutoff rule (spec §4.5.2). The left
// operand only needs to bind at least as tight as n's operator, so
// `(a-b)-c` prints as `a-b-c`, except under `**`, which groups right to
// left and so needs a strictly tighter left child (`(a**b)**c` keeps its
// parens). The right operand needs to bind strictly tighter, since
// `a-(b-c)` is not `a-b-c`, unless it is the same associative operator
// (see isAssociative).
func (e *emitter) binaryExpr(n *ast.BinaryOperator) {
	prec := n.Precedence()
	leftMin, rightMin := prec, prec+1
	if n.Op == token.POW {
		leftMin = prec + 1
	}
	// Dropping the right operand's parens at the same precedence tier is
	// only safe when it's the exact same operator token: MUL/DIV/MOD all
	// share a precedence tier, but a*(b/c) and a*(b%c) are not equivalent
	// to (a*b)/c or (a*b)%c.
	if rb, ok := n.Y.(*ast.BinaryOperator); ok && isAssociative(n.Op) && rb.Op == n.Op {
		rightMin = prec
	}
	e.expr(n.X, leftMin)
	e.opToken(binaryText(n.Op))
	e.expr(n.Y, rightMin)
}

// opToken emits a binary/assignment/conditional operator, surrounding it
// with literal spaces when OperatorSpaces is set (spec §6) instead of
// relying solely on the separator-insertion rule.
func (e *emitter) opToken(s string) {
	if !e.opts.OperatorSpaces {
		e.p.token(s)
		return
	}
	e.p.raw(" ")
	e.p.token(s)
	e.p.raw(" ")
}

// isAssociative reports the operators spec §4.5.2 allows the serializer to
// flatten without parentheses on the right operand: `*`, `&`, `^`, `|`,
// `&&`, `||` are associative in IEEE-754/bitwise/boolean terms, so
// `a*(b*c)` prints as `a*b*c` safely. `+` is deliberately excluded even
// though numeric addition is associative, since string concatenation is not
// and the serializer cannot tell the two apart once types are erased.
func isAssociative(op token.Token) bool {
	switch op {
	case token.MUL, token.BIT_AND, token.BIT_XOR, token.BIT_OR,
		token.LOGICAL_AND, token.LOGICAL_OR:
		return true
	default:
		return false
	}
}

func isNegativeZero(x ast.Expr) bool {
	n, ok := x.(*ast.NumberLiteral)
	if !ok {
		return false
	}
	return n.Value == 0 && len(n.Raw) > 0 && n.Raw[0] == '-'
}

func unaryText(op token.Token) string {
	switch op {
	case token.NOT:
		return "!"
	case token.BIT_NOT:
		return "~"
	case token.TYPEOF:
		return "typeof"
	case token.VOID:
		return "void"
	case token.DELETE:
		return "delete"
	case token.INCR:
		return "++"
	case token.DECR:
		return "--"
	case token.POS:
		return "+"
	case token.NEG:
		return "-"
	default:
		panic("format: unknown unary operator")
	}
}

func postfixText(op token.Token) string {
	switch op {
	case token.INCR:
		return "++"
	case token.DECR:
		return "--"
	default:
		panic("format: unknown postfix operator")
	}
}

func assignText(op token.Token) string {
	switch op {
	case token.ASSIGN:
		return "="
	case token.ADD_ASSIGN:
		return "+="
	case token.SUB_ASSIGN:
		return "-="
	case token.MUL_ASSIGN:
		return "*="
	case token.DIV_ASSIGN:
		return "/="
	case token.MOD_ASSIGN:
		return "%="
	case token.SHL_ASSIGN:
		return "<<="
	case token.SHR_ASSIGN:
		return ">>="
	case token.SHU_ASSIGN:
		return ">>>="
	case token.AND_ASSIGN:
		return "&="
	case token.OR_ASSIGN:
		return "|="
	case token.XOR_ASSIGN:
		return "^="
	default:
		panic("format: unknown assignment operator")
	}
}

func binaryText(op token.Token) string {
	switch op {
	case token.LOGICAL_OR:
		return "||"
	case token.LOGICAL_AND:
		return "&&"
	case token.NULLISH:
		return "??"
	case token.BIT_OR:
		return "|"
	case token.BIT_XOR:
		return "^"
	case token.BIT_AND:
		return "&"
	case token.EQ:
		return "=="
	case token.NEQ:
		return "!="
	case token.SEQ:
		return "==="
	case token.SNE:
		return "!=="
	case token.LT:
		return "<"
	case token.GT:
		return ">"
	case token.LE:
		return "<="
	case token.GE:
		return ">="
	case token.IN:
		return "in"
	case token.INSTOF:
		return "instanceof"
	case token.SHL:
		return "<<"
	case token.SHR:
		return ">>"
	case token.SHU:
		return ">>>"
	case token.ADD:
		return "+"
	case token.SUB:
		return "-"
	case token.MUL:
		return "*"
	case token.DIV:
		return "/"
	case token.MOD:
		return "%"
	case token.POW:
		return "**"
	default:
		panic("format: unknown binary operator")
	}
}
