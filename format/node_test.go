package format

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/dungjk/jsmin/ast"
	"github.com/dungjk/jsmin/scope"
	"github.com/dungjk/jsmin/sourcemap"
	"github.com/dungjk/jsmin/token"
)

func id(name string) *ast.Ident { return &ast.Ident{Name: name} }

func num(v float64, raw string) *ast.NumberLiteral { return &ast.NumberLiteral{Value: v, Raw: raw} }

func exprStmt(x ast.Expr) *ast.ExpressionStatement { return &ast.ExpressionStatement{X: x} }

func prog(stmts ...ast.Stmt) []*ast.Program {
	return []*ast.Program{{Body: &ast.Block{List: stmts}}}
}

// binOp/assignOp/unaryOp set the promoted Op field after construction, since
// exprBase (which declares it) is unexported and cannot appear as a
// composite-literal field key outside package ast.
func binOp(op token.Token, x, y ast.Expr) *ast.BinaryOperator {
	b := &ast.BinaryOperator{X: x, Y: y}
	b.Op = op
	return b
}

func assignOp(op token.Token, target, value ast.Expr) *ast.AssignmentOperator {
	a := &ast.AssignmentOperator{Target: target, Value: value}
	a.Op = op
	return a
}

func unaryOp(op token.Token, x ast.Expr) *ast.UnaryOperator {
	u := &ast.UnaryOperator{X: x}
	u.Op = op
	return u
}

func render(t *testing.T, stmts ...ast.Stmt) string {
	t.Helper()
	var sb strings.Builder
	err := Fprint(&sb, prog(stmts...), Options{}, nil)
	qt.Assert(t, qt.IsNil(err))
	return sb.String()
}

func TestFprintVarStatementWithMultipleDeclarators(t *testing.T) {
	v := &ast.VarStatement{Declarators: []*ast.Declarator{
		{Name: id("a"), Init: num(1, "1")},
		{Name: id("b"), Init: nil},
	}}
	got := render(t, v)
	qt.Assert(t, qt.Equals(got, "var a=1,b"))
}

func TestFprintIfElseOmitsBracesForSingleStatements(t *testing.T) {
	ifStmt := &ast.If{
		Test:       id("a"),
		Consequent: exprStmt(id("b")),
		Alternate:  exprStmt(id("c")),
	}
	got := render(t, ifStmt)
	qt.Assert(t, qt.Equals(got, "if(a)b;else c"))
}

func TestFprintBlockBodyKeepsBraces(t *testing.T) {
	ifStmt := &ast.If{
		Test:       id("a"),
		Consequent: &ast.Block{List: []ast.Stmt{exprStmt(id("b"))}},
	}
	got := render(t, ifStmt)
	qt.Assert(t, qt.Equals(got, "if(a){b;}"))
}

func TestFprintFunctionLiteralDeclaration(t *testing.T) {
	fn := &ast.FunctionObject{
		Name:   id("f"),
		Params: []*ast.Param{{Name: id("a")}, {Name: id("b")}},
		Body:   &ast.Block{List: []ast.Stmt{&ast.Return{X: id("a")}}},
	}
	got := render(t, fn)
	qt.Assert(t, qt.Equals(got, "function f(a,b){return a;}"))
}

func TestFprintExpressionStatementStartHazardParenthesizesFunction(t *testing.T) {
	// The statement-start hazard check walks through a CallNode to its
	// callee and wraps the whole call in parens; calleeExpr separately
	// parenthesizes a FunctionObject sitting in callee position. Both
	// guards fire here, so the function literal ends up doubly wrapped.
	fn := &ast.FunctionObject{IsExpression: true, Body: &ast.Block{}}
	call := &ast.CallNode{Fun: fn}
	got := render(t, exprStmt(call))
	qt.Assert(t, qt.Equals(got, "((function(){})())"))
}

func TestFprintExpressionStatementStartHazardParenthesizesObjectLiteral(t *testing.T) {
	obj := &ast.ObjectLiteral{Properties: []*ast.ObjectProperty{
		{Key: id("a"), Value: num(1, "1")},
	}}
	got := render(t, exprStmt(obj))
	qt.Assert(t, qt.Equals(got, "({a:1})"))
}

func TestFprintThrowAlwaysEmitsSemicolon(t *testing.T) {
	got := render(t, &ast.Throw{X: id("e")})
	qt.Assert(t, qt.Equals(got, "throw e;"))
}

func TestFprintBinaryOperatorParenthesizesNonAssociativeLeft(t *testing.T) {
	// (a-b)-c needs no parens; a-(a-b) must keep them.
	inner := binOp(token.SUB, id("a"), id("b"))
	left := binOp(token.SUB, inner, id("c"))
	got := render(t, exprStmt(left))
	qt.Assert(t, qt.Equals(got, "a-b-c"))

	right := binOp(token.SUB, id("a"), inner)
	got = render(t, exprStmt(right))
	qt.Assert(t, qt.Equals(got, "a-(a-b)"))
}

func TestFprintBinaryOperatorAssociativeOmitsRightParens(t *testing.T) {
	inner := binOp(token.MUL, id("b"), id("c"))
	outer := binOp(token.MUL, id("a"), inner)
	got := render(t, exprStmt(outer))
	qt.Assert(t, qt.Equals(got, "a*b*c"))
}

func TestFprintBinaryOperatorSamePrecedenceDifferentTokenKeepsRightParens(t *testing.T) {
	// MUL, DIV, and MOD all share one precedence tier, but a*(b/c) and
	// a*(b%c) are not equivalent to a*b/c or a*b%c, so the right operand
	// must keep its parens even though MUL alone is associative.
	inner := binOp(token.DIV, id("b"), id("c"))
	outer := binOp(token.MUL, id("a"), inner)
	got := render(t, exprStmt(outer))
	qt.Assert(t, qt.Equals(got, "a*(b/c)"))

	inner = binOp(token.MOD, id("b"), id("c"))
	outer = binOp(token.MUL, id("a"), inner)
	got = render(t, exprStmt(outer))
	qt.Assert(t, qt.Equals(got, "a*(b%c)"))
}

func TestFprintMemberAccessOnNumberLiteralNeedsParens(t *testing.T) {
	m := &ast.Member{X: num(1, "1"), Property: id("toString")}
	got := render(t, exprStmt(m))
	qt.Assert(t, qt.Equals(got, "(1).toString"))
}

func TestFprintNewWithCalleeCallNeedsParens(t *testing.T) {
	inner := &ast.CallNode{Fun: id("f")}
	n := &ast.NewExpr{Callee: inner, Args: []ast.Expr{num(1, "1")}}
	got := render(t, exprStmt(n))
	qt.Assert(t, qt.Equals(got, "new(f())(1)"))
}

func TestFprintNewWithoutArgsOmitsParensWhenElided(t *testing.T) {
	n := &ast.NewExpr{Callee: id("Foo")}
	got := render(t, exprStmt(n))
	qt.Assert(t, qt.Equals(got, "new Foo"))
}

func TestFprintIdentifierAdjacencySeparatesUnaryWord(t *testing.T) {
	u := unaryOp(token.TYPEOF, id("x"))
	got := render(t, exprStmt(u))
	qt.Assert(t, qt.Equals(got, "typeof x"))
}

func TestFprintUnaryMinusNeedsSeparatorBeforeNegative(t *testing.T) {
	inner := unaryOp(token.NEG, id("x"))
	outer := unaryOp(token.NEG, inner)
	got := render(t, exprStmt(outer))
	qt.Assert(t, qt.Equals(got, "- -x"))
}

func TestFprintAssignmentIsRightAssociative(t *testing.T) {
	inner := assignOp(token.ASSIGN, id("b"), id("c"))
	outer := assignOp(token.ASSIGN, id("a"), inner)
	got := render(t, exprStmt(outer))
	qt.Assert(t, qt.Equals(got, "a=b=c"))
}

func TestFprintMultilineIndentsBlocks(t *testing.T) {
	fn := &ast.FunctionObject{
		Name: id("f"),
		Body: &ast.Block{List: []ast.Stmt{&ast.Return{X: id("x")}}},
	}
	var sb strings.Builder
	err := Fprint(&sb, prog(fn), Options{Multiline: true, IndentSpaces: 2}, nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(sb.String(), "function f(){\n  return x;\n}"))
}

func TestFprintOperatorSpacesSurroundsBinaryOperator(t *testing.T) {
	b := binOp(token.ADD, id("a"), id("b"))
	var sb strings.Builder
	err := Fprint(&sb, prog(exprStmt(b)), Options{OperatorSpaces: true}, nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(sb.String(), "a + b"))
}

func TestFprintFeedsSourcemapSinkForRenamedIdentifier(t *testing.T) {
	f := token.NewFile("in.js", 10)
	longName := &ast.Ident{Name: "longName", NamePos: f.Pos(0)}
	longName.Ref = &scope.Binding{Name: "longName", AlternateName: "a"}

	progs := []*ast.Program{
		{Filename: "in.js", Body: &ast.Block{List: []ast.Stmt{exprStmt(longName)}}},
	}
	v := sourcemap.NewV3()
	v.StartPackage("bundle")
	var sb strings.Builder
	err := Fprint(&sb, progs, Options{}, v)
	v.EndPackage()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(sb.String(), "a"))

	data, encErr := v.Encode()
	qt.Assert(t, qt.IsNil(encErr))
	qt.Assert(t, qt.IsTrue(strings.Contains(string(data), "longName")))
}

func TestFprintTermSemicolonsAddsTrailingSemicolonPerFile(t *testing.T) {
	progs := []*ast.Program{
		{Body: &ast.Block{List: []ast.Stmt{exprStmt(id("a"))}}},
		{Body: &ast.Block{List: []ast.Stmt{exprStmt(id("b"))}}},
	}
	var sb strings.Builder
	err := Fprint(&sb, progs, Options{TermSemicolons: true}, nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(sb.String(), "a;b;"))
}
