package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/stretchr/testify/require"

	"github.com/shibukawa/tmplindent/ast"
	"github.com/shibukawa/tmplindent/tokenizer"
)

func parseExpr(t *testing.T, src string) ast.Node {
	t.Helper()
	tokens, err := tokenizer.NewScriptTokenizer(src).AllTokens()
	require.NoError(t, err)
	expr, err := newScriptParser(tokens).parseExpressionAll()
	require.NoError(t, err)
	ast.LinkParents(expr)
	return expr
}

func parseStatements(t *testing.T, src string) []ast.Node {
	t.Helper()
	tokens, err := tokenizer.NewScriptTokenizer(src).AllTokens()
	require.NoError(t, err)
	body, err := newScriptParser(tokens).parseStatementsAll()
	require.NoError(t, err)
	return body
}

func source(src string, n ast.Node) string {
	r := n.Range()
	return src[r.Start:r.End]
}

func TestExpressionKinds(t *testing.T) {
	tests := []struct {
		src  string
		kind ast.Kind
	}{
		{src: "a", kind: ast.KindIdentifier},
		{src: "'s'", kind: ast.KindLiteral},
		{src: "this", kind: ast.KindThisExpression},
		{src: "[1, , 2]", kind: ast.KindArrayExpression},
		{src: "{ a: 1, b, ...c }", kind: ast.KindObjectExpression},
		{src: "a + b * c", kind: ast.KindBinaryExpression},
		{src: "a && b", kind: ast.KindLogicalExpression},
		{src: "a ?? b", kind: ast.KindLogicalExpression},
		{src: "a = b", kind: ast.KindAssignmentExpression},
		{src: "!a", kind: ast.KindUnaryExpression},
		{src: "typeof a", kind: ast.KindUnaryExpression},
		{src: "a++", kind: ast.KindUpdateExpression},
		{src: "await a", kind: ast.KindAwaitExpression},
		{src: "a ? b : c", kind: ast.KindConditionalExpression},
		{src: "f(a, ...b)", kind: ast.KindCallExpression},
		{src: "new Foo(a)", kind: ast.KindNewExpression},
		{src: "new Foo", kind: ast.KindNewExpression},
		{src: "a.b", kind: ast.KindMemberExpression},
		{src: "a[0]", kind: ast.KindMemberExpression},
		{src: "a?.b", kind: ast.KindChainExpression},
		{src: "a, b", kind: ast.KindSequenceExpression},
		{src: "`x${a}y`", kind: ast.KindTemplateLiteral},
		{src: "tag`x`", kind: ast.KindTaggedTemplateExpression},
		{src: "x => x", kind: ast.KindArrowFunctionExpression},
		{src: "async (a, b) => { return a }", kind: ast.KindArrowFunctionExpression},
		{src: "function (a) { return a }", kind: ast.KindFunctionExpression},
		{src: "class extends Base { m() {} }", kind: ast.KindClassExpression},
		{src: "import('x')", kind: ast.KindImportExpression},
		{src: "import.meta", kind: ast.KindMetaProperty},
		{src: "/re/g.test(s)", kind: ast.KindCallExpression},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			expr := parseExpr(t, tt.src)
			assert.Equal(t, tt.kind, expr.Kind())
		})
	}
}

func TestParenthesizedRange(t *testing.T) {
	src := "(a + b) * c"
	expr := parseExpr(t, src).(*ast.BinaryExpression)
	assert.Equal(t, "*", expr.Operator)
	assert.Equal(t, "a + b", source(src, expr.Left))
	assert.Equal(t, src, source(src, expr))
}

func TestPrecedence(t *testing.T) {
	src := "a || b && c == d + e * f ** g ** h"
	expr := parseExpr(t, src).(*ast.BinaryExpression)
	assert.Equal(t, "||", expr.Operator)

	pow := parseExpr(t, "a ** b ** c").(*ast.BinaryExpression)
	assert.Equal(t, "a", source("a ** b ** c", pow.Left))
}

func TestObjectMembers(t *testing.T) {
	src := "{ a, b: 1, [c]: 2, d() {}, get e() { return 1 }, async *f() {}, ...g }"
	object := parseExpr(t, src).(*ast.ObjectExpression)
	assert.Equal(t, 7, len(object.Properties))

	a := object.Properties[0].(*ast.Property)
	assert.True(t, a.Shorthand)
	assert.Equal(t, "a", source(src, a.Value))

	c := object.Properties[2].(*ast.Property)
	assert.True(t, c.Computed)

	d := object.Properties[3].(*ast.Property)
	assert.True(t, d.Method)
	// method values start at the parameter list
	assert.Equal(t, "() {}", source(src, d.Value))

	e := object.Properties[4].(*ast.Property)
	assert.Equal(t, "get", e.PropKind)

	f := object.Properties[5].(*ast.Property).Value.(*ast.Function)
	assert.True(t, f.Async)
	assert.True(t, f.Generator)

	assert.Equal(t, ast.KindSpreadElement, object.Properties[6].Kind())
}

func TestDestructuringAssignment(t *testing.T) {
	expr := parseExpr(t, "[a, { b = 1 }] = list").(*ast.AssignmentExpression)
	pattern := expr.Left.(*ast.ArrayPattern)
	assert.Equal(t, ast.KindObjectPattern, pattern.Elements[1].Kind())
}

func TestStatements(t *testing.T) {
	src := `
const a = 1, b = [a]
let { x, y: [z] } = obj;
if (a) b(); else { c() }
for (let i = 0; i < n; i++) {}
for (const k in obj) continue
for await (const v of gen()) break
while (x) x--
do { x++ } while (x < 10);
switch (a) {
  case 1:
    f()
  default:
}
try { f() } catch { g() } finally { h() }
try { f() } catch (e) {}
label: for (;;) break label
function named(a, b = 2, ...rest) { return a }
class C extends B { static x = 1; constructor() { super() } get y() { return 1 } }
throw new Error('x')
debugger
with (obj) {}
`
	body := parseStatements(t, src)
	var kinds []ast.Kind
	for _, statement := range body {
		kinds = append(kinds, statement.Kind())
	}
	assert.Equal(t, []ast.Kind{
		ast.KindVariableDeclaration,
		ast.KindVariableDeclaration,
		ast.KindIfStatement,
		ast.KindForStatement,
		ast.KindForInStatement,
		ast.KindForOfStatement,
		ast.KindWhileStatement,
		ast.KindDoWhileStatement,
		ast.KindSwitchStatement,
		ast.KindTryStatement,
		ast.KindTryStatement,
		ast.KindLabeledStatement,
		ast.KindFunctionDeclaration,
		ast.KindClassDeclaration,
		ast.KindThrowStatement,
		ast.KindDebuggerStatement,
		ast.KindWithStatement,
	}, kinds)

	declaration := body[0].(*ast.VariableDeclaration)
	assert.Equal(t, "const", declaration.DeclKind)
	assert.Equal(t, 2, len(declaration.Declarations))

	class := body[13].(*ast.Class)
	assert.Equal(t, 3, len(class.Body.Body))
	assert.Equal(t, "constructor", class.Body.Body[1].(*ast.MethodDefinition).MethodKind)
}

func TestReturnLineBreak(t *testing.T) {
	body := parseStatements(t, "function f() {\n  return\n  a\n}")
	fn := body[0].(*ast.Function)
	block := fn.Body.(*ast.BlockStatement)
	assert.Equal(t, 2, len(block.Body))
	assert.Zero(t, block.Body[0].(*ast.ReturnStatement).Argument)
}

func TestSyntaxErrors(t *testing.T) {
	tests := []string{"a +", "f(a", "{ a: }", "a b", "(a, b) =>"}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			tokens, err := tokenizer.NewScriptTokenizer(src).AllTokens()
			require.NoError(t, err)
			_, err = newScriptParser(tokens).parseExpressionAll()
			assert.Error(t, err)
		})
	}
}
