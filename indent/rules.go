package indent

import (
	"fmt"

	"github.com/shibukawa/tmplindent/ast"
	"github.com/shibukawa/tmplindent/tokenstore"
)

// visit dispatches a handled node to its layout rule
func (b *builder) visit(n ast.Node) {
	switch n := n.(type) {
	// Markup
	case *ast.VAttribute:
		b.vAttribute(n)
	case *ast.VElement:
		b.vElement(n)
	case *ast.VEndTag:
		b.vEndTag(n)
	case *ast.VExpressionContainer:
		b.vExpressionContainer(n)
	case *ast.VForExpression:
		b.vForExpression(n)
	case *ast.VStartTag:
		b.vStartTag(n)
	case *ast.VText:
		b.vText(n)

	// Expressions
	case *ast.ArrayExpression:
		b.list(n, n.Elements)
	case *ast.ArrayPattern:
		b.list(n, n.Elements)
	case *ast.ObjectExpression:
		b.list(n, n.Properties)
	case *ast.ObjectPattern:
		b.list(n, n.Properties)
	case *ast.ClassBody:
		b.list(n, n.Body)
	case *ast.BlockStatement:
		b.list(n, n.Body)
	case *ast.Function:
		if n.Kind() == ast.KindArrowFunctionExpression {
			b.arrowFunction(n)
		} else {
			b.function(n)
		}
	case *ast.BinaryExpression:
		b.binary(n, n.Left, n.Right, n.Operator)
	case *ast.AssignmentExpression:
		b.binary(n, n.Left, n.Right, n.Operator)
	case *ast.AssignmentPattern:
		b.binary(n, n.Left, n.Right, "=")
	case *ast.AwaitExpression, *ast.RestElement, *ast.SpreadElement,
		*ast.UnaryExpression, *ast.UpdateExpression, *ast.YieldExpression:
		b.prefixed(n)
	case *ast.CallExpression:
		b.call(n)
	case *ast.Class:
		b.class(n)
	case *ast.ConditionalExpression:
		b.conditional(n)
	case *ast.Identifier, *ast.Literal, *ast.Super, *ast.ThisExpression:
		b.processParentheses(n)
	case *ast.MemberExpression:
		b.member(n, n.Property, n.Computed)
	case *ast.MetaProperty:
		b.member(n, n.Property, false)
	case *ast.MethodDefinition:
		b.property(n, n.Key, n.Computed, false, true)
	case *ast.Property:
		b.property(n, n.Key, n.Computed, n.Shorthand, n.Method || n.PropKind == "get" || n.PropKind == "set")
	case *ast.NewExpression:
		b.newExpression(n)
	case *ast.SequenceExpression:
		b.sequence(n)
	case *ast.TaggedTemplateExpression:
		b.taggedTemplate(n)
	case *ast.TemplateLiteral:
		b.templateLiteral(n)

	// Statements
	case *ast.BreakStatement, *ast.ContinueStatement, *ast.ReturnStatement, *ast.ThrowStatement:
		b.jump(n)
	case *ast.CatchClause:
		b.catchClause(n)
	case *ast.DoWhileStatement:
		b.doWhile(n)
	case *ast.ExpressionStatement:
		b.processSemicolon(n)
	case *ast.ForInStatement:
		b.forIn(n, n.Left, n.Body)
	case *ast.ForOfStatement:
		b.forIn(n, n.Left, n.Body)
	case *ast.ForStatement:
		b.forStatement(n)
	case *ast.IfStatement:
		b.ifStatement(n)
	case *ast.LabeledStatement:
		b.labeled(n)
	case *ast.SwitchCase:
		b.switchCase(n)
	case *ast.SwitchStatement:
		b.switchStatement(n)
	case *ast.TryStatement:
		b.try(n)
	case *ast.VariableDeclaration:
		b.processSemicolon(n)
		b.processNodeList(asNodes(n.Declarations), b.first(n), tokenstore.NoToken, 1)
	case *ast.VariableDeclarator:
		b.variableDeclarator(n)
	case *ast.WhileStatement:
		b.loop(n, n.Body)
	case *ast.WithStatement:
		b.loop(n, n.Body)

	default:
		panic(fmt.Errorf("%w: %s", ErrUnclassifiedKind, n.Kind()))
	}
}
