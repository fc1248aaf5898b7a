// Package ast declares the types used to represent JavaScript syntax
// trees accepted by the scope resolver, rewriter, renamer, and serializer.
//
// The parser that produces these trees is out of scope; callers construct
// or receive a Node graph and hand it to scope.Resolve, rewrite.Rewrite,
// rename.Rename, and format.Fprint in sequence.
package ast

import "github.com/dungjk/jsmin/token"

// ----------------------------------------------------------------------------
// Interfaces

// A Node represents any node in the abstract syntax tree. All nodes carry
// position information marking the start of their source text segment, and
// a weak back-reference to their syntactic parent, set by Walk as the tree
// is first traversed (the scope resolver's initial pass).
type Node interface {
	Pos() token.Pos
	End() token.Pos

	Parent() Node
	SetParent(Node)
}

// An Expr is implemented by all expression nodes. Precedence reports the
// binding power the serializer uses when deciding whether a child
// expression needs parenthesization (spec §4.5.2); atoms and postfix/call/
// member forms report a value higher than any operator's so they are never
// parenthesized by the generic rule.
type Expr interface {
	Node
	exprNode()
	Precedence() int
}

// PrecedenceAtom is the precedence reported by expression nodes that bind
// tighter than any operator: identifiers, literals, member/call chains.
const PrecedenceAtom = 1 << 10

// A Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// base is embedded by every node and supplies the parent back-reference
// every Node must carry.
type base struct {
	parent Node
}

func (b *base) Parent() Node     { return b.parent }
func (b *base) SetParent(p Node) { b.parent = p }

// exprBase additionally tracks the node's own precedence slot.
type exprBase struct {
	base
	Op token.Token // zero for atoms/member/call forms
}

func (x *exprBase) Precedence() int {
	if x.Op == token.ILLEGAL {
		return PrecedenceAtom
	}
	return token.Precedence(x.Op)
}

func (*Ident) exprNode()             {}
func (*NumberLiteral) exprNode()     {}
func (*StringLiteral) exprNode()     {}
func (*BooleanLiteral) exprNode()    {}
func (*NullLiteral) exprNode()       {}
func (*RegExpLiteral) exprNode()     {}
func (*ArrayLiteral) exprNode()      {}
func (*ObjectLiteral) exprNode()     {}
func (*GroupingOperator) exprNode()  {}
func (*UnaryOperator) exprNode()     {}
func (*PostfixOperator) exprNode()   {}
func (*BinaryOperator) exprNode()    {}
func (*AssignmentOperator) exprNode() {}
func (*Conditional) exprNode()       {}
func (*CallNode) exprNode()          {}
func (*NewExpr) exprNode()           {}
func (*Member) exprNode()            {}
func (*FunctionObject) exprNode()    {}

func (*Block) stmtNode()            {}
func (*VarStatement) stmtNode()     {}
func (*ExpressionStatement) stmtNode() {}
func (*EmptyStatement) stmtNode()   {}
func (*If) stmtNode()               {}
func (*For) stmtNode()              {}
func (*ForIn) stmtNode()            {}
func (*While) stmtNode()            {}
func (*DoWhile) stmtNode()          {}
func (*Switch) stmtNode()           {}
func (*Try) stmtNode()              {}
func (*With) stmtNode()             {}
func (*Throw) stmtNode()            {}
func (*Return) stmtNode()           {}
func (*Break) stmtNode()            {}
func (*Continue) stmtNode()         {}
func (*Labeled) stmtNode()          {}
func (*FunctionObject) stmtNode()   {} // function declarations are statements too

// ----------------------------------------------------------------------------
// Identifiers and literals

// Ident is both a binding-introducing name (in a declaration position) and
// a reference (in a lookup position); the scope resolver distinguishes the
// two roles by where the Ident sits in the tree, not by its type. After
// resolution, Ref points at the Binding this identifier was resolved to
// (nil until the resolver runs, and nil permanently for identifiers the
// resolver could not bind, which it then reports via UndeclaredVariable).
type Ident struct {
	exprBase
	NamePos token.Pos
	Name    string

	Ref any // filled by scope.Resolver; holds *scope.Binding

	// LabelAlt is the short name rename.Rename assigns a control-flow
	// label (spec §4.4 step 5). Labels inhabit a namespace disjoint from
	// variables/functions, so they bypass Ref/Binding entirely; it is set
	// only on the Ident held by a Labeled statement and by the Break/
	// Continue nodes that target it.
	LabelAlt string
}

func (x *Ident) Pos() token.Pos { return x.NamePos }
func (x *Ident) End() token.Pos { return x.NamePos.Add(len(x.Name)) }

// NumberLiteral holds a numeric constant in its original textual form; the
// serializer re-derives the minimized representation from Value (§4.5.5)
// rather than re-emitting Raw.
type NumberLiteral struct {
	exprBase
	ValuePos token.Pos
	Raw      string
	Value    float64
}

func (x *NumberLiteral) Pos() token.Pos { return x.ValuePos }
func (x *NumberLiteral) End() token.Pos { return x.ValuePos.Add(len(x.Raw)) }

// StringLiteral holds a string constant already unescaped to its runtime
// value; the serializer chooses quote style and re-escapes (§4.5.4).
type StringLiteral struct {
	exprBase
	ValuePos token.Pos
	Raw      string
	Value    string
}

func (x *StringLiteral) Pos() token.Pos { return x.ValuePos }
func (x *StringLiteral) End() token.Pos { return x.ValuePos.Add(len(x.Raw)) }

// BooleanLiteral holds `true` or `false`. The final-pass rewriter may
// replace this node with a ConstantWrapper-equivalent `!0`/`!1`
// UnaryOperator chain (§4.3 duty 1) depending on settings.
type BooleanLiteral struct {
	exprBase
	ValuePos token.Pos
	Value    bool
}

func (x *BooleanLiteral) Pos() token.Pos { return x.ValuePos }
func (x *BooleanLiteral) End() token.Pos {
	if x.Value {
		return x.ValuePos.Add(4)
	}
	return x.ValuePos.Add(5)
}

// NullLiteral holds `null`.
type NullLiteral struct {
	exprBase
	ValuePos token.Pos
}

func (x *NullLiteral) Pos() token.Pos { return x.ValuePos }
func (x *NullLiteral) End() token.Pos { return x.ValuePos.Add(4) }

// RegExpLiteral is emitted verbatim (§4.5.4: regex literals are never
// re-derived, only guarded against ambiguity with a preceding `/`).
type RegExpLiteral struct {
	exprBase
	ValuePos token.Pos
	Pattern  string
	Flags    string
}

func (x *RegExpLiteral) Pos() token.Pos { return x.ValuePos }
func (x *RegExpLiteral) End() token.Pos {
	return x.ValuePos.Add(len(x.Pattern) + len(x.Flags) + 2)
}

// ArrayLiteral represents `[a, b, c]`. A nil element represents an elision
// (`[a,,b]`).
type ArrayLiteral struct {
	exprBase
	Lbrack   token.Pos
	Elements []Expr
	Rbrack   token.Pos
}

func (x *ArrayLiteral) Pos() token.Pos { return x.Lbrack }
func (x *ArrayLiteral) End() token.Pos { return x.Rbrack.Add(1) }

// ObjectProperty is one `key: value` (or shorthand/method) entry of an
// ObjectLiteral.
type ObjectProperty struct {
	base
	Key      Expr // Ident, StringLiteral, NumberLiteral, or computed Expr
	Computed bool
	Value    Expr
	Shorthand bool
}

func (p *ObjectProperty) Pos() token.Pos { return p.Key.Pos() }
func (p *ObjectProperty) End() token.Pos { return p.Value.End() }

// ObjectLiteral represents `{ a: 1, b: 2 }`.
type ObjectLiteral struct {
	exprBase
	Lbrace     token.Pos
	Properties []*ObjectProperty
	Rbrace     token.Pos
}

func (x *ObjectLiteral) Pos() token.Pos { return x.Lbrace }
func (x *ObjectLiteral) End() token.Pos { return x.Rbrace.Add(1) }

// ----------------------------------------------------------------------------
// Expressions

// GroupingOperator is a parenthesized expression as it appeared in the
// source. The serializer decides at emission time whether the parentheses
// are still required (§4.5.2); GroupingOperator itself only preserves the
// fact that the author wrote them.
type GroupingOperator struct {
	exprBase
	Lparen token.Pos
	X      Expr
	Rparen token.Pos
}

func (x *GroupingOperator) Pos() token.Pos { return x.Lparen }
func (x *GroupingOperator) End() token.Pos { return x.Rparen.Add(1) }

// UnaryOperator is a prefix operator: `!x`, `-x`, `typeof x`, `void x`,
// `delete x`, `++x`, `--x`.
type UnaryOperator struct {
	exprBase
	OpPos token.Pos
	X     Expr
}

func (x *UnaryOperator) Pos() token.Pos { return x.OpPos }
func (x *UnaryOperator) End() token.Pos { return x.X.End() }

// PostfixOperator is `x++` or `x--`.
type PostfixOperator struct {
	exprBase
	X     Expr
	OpEnd token.Pos
}

func (x *PostfixOperator) Pos() token.Pos { return x.X.Pos() }
func (x *PostfixOperator) End() token.Pos { return x.OpEnd }

// BinaryOperator covers arithmetic, relational, equality, bitwise,
// logical, and nullish-coalescing binary expressions.
type BinaryOperator struct {
	exprBase
	X, Y  Expr
	OpPos token.Pos
}

func (x *BinaryOperator) Pos() token.Pos { return x.X.Pos() }
func (x *BinaryOperator) End() token.Pos { return x.Y.End() }

// AssignmentOperator is `target op= value`, including plain `=`.
type AssignmentOperator struct {
	exprBase
	Target Expr
	Value  Expr
	OpPos  token.Pos
}

func (x *AssignmentOperator) Pos() token.Pos { return x.Target.Pos() }
func (x *AssignmentOperator) End() token.Pos { return x.Value.End() }

// Conditional is `test ? consequent : alternate`.
type Conditional struct {
	exprBase
	Test, Consequent, Alternate Expr
}

func (x *Conditional) Pos() token.Pos { return x.Test.Pos() }
func (x *Conditional) End() token.Pos { return x.Alternate.End() }

// CallNode is `fun(args...)`.
type CallNode struct {
	exprBase
	Fun    Expr
	Lparen token.Pos
	Args   []Expr
	Rparen token.Pos
}

func (x *CallNode) Pos() token.Pos { return x.Fun.Pos() }
func (x *CallNode) End() token.Pos { return x.Rparen.Add(1) }

// NewExpr is `new Ctor(args...)`.
type NewExpr struct {
	exprBase
	NewPos token.Pos
	Callee Expr
	Lparen token.Pos // NoPos if the argument list (and parens) were elided
	Args   []Expr
	Rparen token.Pos
}

func (x *NewExpr) Pos() token.Pos { return x.NewPos }
func (x *NewExpr) End() token.Pos {
	if x.Rparen.IsValid() {
		return x.Rparen.Add(1)
	}
	return x.Callee.End()
}

// Member is property access, either `x.name` (Computed == false) or
// `x[expr]` (Computed == true). Spec §4.5.2/§4.5.4 treat both as a single
// left-to-right-associative, maximal-binding-power form.
type Member struct {
	exprBase
	X        Expr
	Computed bool
	Property Expr // *Ident when !Computed, any Expr when Computed
	End_     token.Pos
}

func (x *Member) Pos() token.Pos { return x.X.Pos() }
func (x *Member) End() token.Pos { return x.End_ }

// ----------------------------------------------------------------------------
// Functions

// Param is one formal parameter of a FunctionObject.
type Param struct {
	base
	Name *Ident
}

func (p *Param) Pos() token.Pos { return p.Name.Pos() }
func (p *Param) End() token.Pos { return p.Name.End() }

// FunctionObject is a function declaration or expression, named or
// anonymous. It is both an Expr (function expressions) and a Stmt
// (function declarations); the scope resolver tells the two apart by
// context, exactly as §3's node list describes.
type FunctionObject struct {
	exprBase
	FunctionPos token.Pos
	Name        *Ident // nil for anonymous function expressions
	Params      []*Param
	Body        *Block

	// IsExpression records whether this node was parsed in expression
	// position; an NFE's own name is visible only inside Body in that case
	// (spec §3's named-function-expression environment).
	IsExpression bool
}

func (x *FunctionObject) Pos() token.Pos { return x.FunctionPos }
func (x *FunctionObject) End() token.Pos { return x.Body.End() }

// ----------------------------------------------------------------------------
// Statements

// Block is `{ stmts... }`, and also stands in for a Program's top-level
// statement list (with Lbrace/Rbrace both token.NoPos).
type Block struct {
	base
	Lbrace token.Pos
	List   []Stmt
	Rbrace token.Pos
}

func (x *Block) Pos() token.Pos {
	if x.Lbrace.IsValid() {
		return x.Lbrace
	}
	if len(x.List) > 0 {
		return x.List[0].Pos()
	}
	return token.NoPos
}

func (x *Block) End() token.Pos {
	if x.Rbrace.IsValid() {
		return x.Rbrace.Add(1)
	}
	if n := len(x.List); n > 0 {
		return x.List[n-1].End()
	}
	return token.NoPos
}

// Declarator is one `name = init` (or `name` alone) entry of a
// VarStatement.
type Declarator struct {
	base
	Name *Ident
	Init Expr // nil if uninitialized
}

func (d *Declarator) Pos() token.Pos { return d.Name.Pos() }
func (d *Declarator) End() token.Pos {
	if d.Init != nil {
		return d.Init.End()
	}
	return d.Name.End()
}

// VarStatement is `var a = 1, b, c = 2;`. Spec §4.2's
// SuperfluousVarDeclaration diagnostic fires per Declarator whose name was
// already bound earlier in the same function.
type VarStatement struct {
	base
	VarPos      token.Pos
	Declarators []*Declarator
	Semi        token.Pos
}

func (x *VarStatement) Pos() token.Pos { return x.VarPos }
func (x *VarStatement) End() token.Pos { return x.Semi }

// ExpressionStatement is a bare expression used as a statement.
type ExpressionStatement struct {
	base
	X    Expr
	Semi token.Pos
}

func (x *ExpressionStatement) Pos() token.Pos { return x.X.Pos() }
func (x *ExpressionStatement) End() token.Pos { return x.Semi }

// EmptyStatement is a bare `;`.
type EmptyStatement struct {
	base
	Semi token.Pos
}

func (x *EmptyStatement) Pos() token.Pos { return x.Semi }
func (x *EmptyStatement) End() token.Pos { return x.Semi.Add(1) }

// If is `if (test) consequent else alternate`; Alternate is nil when there
// is no else clause.
type If struct {
	base
	IfPos      token.Pos
	Test       Expr
	Consequent Stmt
	Alternate  Stmt
}

func (x *If) Pos() token.Pos { return x.IfPos }
func (x *If) End() token.Pos {
	if x.Alternate != nil {
		return x.Alternate.End()
	}
	return x.Consequent.End()
}

// For is a classic three-clause for-loop; any of Init/Test/Update may be
// nil. Init may be a *VarStatement or an Expr wrapped as a statement.
type For struct {
	base
	ForPos token.Pos
	Init   Node
	Test   Expr
	Update Expr
	Body   Stmt
}

func (x *For) Pos() token.Pos { return x.ForPos }
func (x *For) End() token.Pos { return x.Body.End() }

// ForIn is `for (lhs in/of source) body`; Of distinguishes for-of (ES6)
// from for-in.
type ForIn struct {
	base
	ForPos token.Pos
	Lhs    Node // *Declarator-carrying *VarStatement or an Expr
	Source Expr
	Of     bool
	Body   Stmt
}

func (x *ForIn) Pos() token.Pos { return x.ForPos }
func (x *ForIn) End() token.Pos { return x.Body.End() }

// While is `while (test) body`.
type While struct {
	base
	WhilePos token.Pos
	Test     Expr
	Body     Stmt
}

func (x *While) Pos() token.Pos { return x.WhilePos }
func (x *While) End() token.Pos { return x.Body.End() }

// DoWhile is `do body while (test);`.
type DoWhile struct {
	base
	DoPos token.Pos
	Body  Stmt
	Test  Expr
	Semi  token.Pos
}

func (x *DoWhile) Pos() token.Pos { return x.DoPos }
func (x *DoWhile) End() token.Pos { return x.Semi }

// SwitchCase is one `case expr:`/`default:` arm; Test is nil for default.
type SwitchCase struct {
	base
	CasePos token.Pos
	Test    Expr
	Body    []Stmt
}

func (c *SwitchCase) Pos() token.Pos { return c.CasePos }
func (c *SwitchCase) End() token.Pos {
	if n := len(c.Body); n > 0 {
		return c.Body[n-1].End()
	}
	return c.CasePos
}

// Switch is `switch (disc) { cases... }`.
type Switch struct {
	base
	SwitchPos  token.Pos
	Discriminant Expr
	Cases      []*SwitchCase
	Rbrace     token.Pos
}

func (x *Switch) Pos() token.Pos { return x.SwitchPos }
func (x *Switch) End() token.Pos { return x.Rbrace.Add(1) }

// Catch is the `catch (param) body` clause of a Try; Param is nil for a
// parameterless catch.
type Catch struct {
	base
	CatchPos token.Pos
	Param    *Ident
	Body     *Block
}

func (c *Catch) Pos() token.Pos { return c.CatchPos }
func (c *Catch) End() token.Pos { return c.Body.End() }

// Try is `try block catch(e) {} finally {}`; Handler and Finally may each
// be nil (but not both, per grammar).
type Try struct {
	base
	TryPos  token.Pos
	Block   *Block
	Handler *Catch
	Finally *Block
}

func (x *Try) Pos() token.Pos { return x.TryPos }
func (x *Try) End() token.Pos {
	if x.Finally != nil {
		return x.Finally.End()
	}
	if x.Handler != nil {
		return x.Handler.End()
	}
	return x.Block.End()
}

// With is `with (obj) body`; see spec §3's note that a With's body gets an
// object environment whose bindings are never statically known.
type With struct {
	base
	WithPos token.Pos
	Object  Expr
	Body    Stmt
}

func (x *With) Pos() token.Pos { return x.WithPos }
func (x *With) End() token.Pos { return x.Body.End() }

// Throw is `throw expr;`.
type Throw struct {
	base
	ThrowPos token.Pos
	X        Expr
	Semi     token.Pos
}

func (x *Throw) Pos() token.Pos { return x.ThrowPos }
func (x *Throw) End() token.Pos { return x.Semi }

// Return is `return expr;`; X is nil for a bare `return;`.
type Return struct {
	base
	ReturnPos token.Pos
	X         Expr
	Semi      token.Pos
}

func (x *Return) Pos() token.Pos { return x.ReturnPos }
func (x *Return) End() token.Pos { return x.Semi }

// Break is `break;` or `break label;`.
type Break struct {
	base
	BreakPos token.Pos
	Label    *Ident
	Semi     token.Pos
}

func (x *Break) Pos() token.Pos { return x.BreakPos }
func (x *Break) End() token.Pos { return x.Semi }

// Continue is `continue;` or `continue label;`.
type Continue struct {
	base
	ContinuePos token.Pos
	Label       *Ident
	Semi        token.Pos
}

func (x *Continue) Pos() token.Pos { return x.ContinuePos }
func (x *Continue) End() token.Pos { return x.Semi }

// Labeled is `label: stmt`. Spec §4.4 step 5 notes label names nest and
// are renamed independently of the variable/function namespace.
type Labeled struct {
	base
	Label *Ident
	Colon token.Pos
	Stmt  Stmt
}

func (x *Labeled) Pos() token.Pos { return x.Label.Pos() }
func (x *Labeled) End() token.Pos { return x.Stmt.End() }

// ----------------------------------------------------------------------------
// Program

// Program is the root of a single file's AST. minify.Minify (§6) accepts a
// slice of Programs sharing one global environment for multi-file
// concatenation.
type Program struct {
	base
	Filename string
	Body     *Block
}

func (p *Program) Pos() token.Pos { return p.Body.Pos() }
func (p *Program) End() token.Pos { return p.Body.End() }
