package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/tmplindent/ast"
)

func TestElementTree(t *testing.T) {
	doc := Parse("<template>\n  <div id=\"a\">\n    <br>\n    <p>one\n    <p>two\n  </div>\n</template>")
	assert.Equal(t, 0, len(doc.Errors))

	roots := doc.Roots()
	assert.Equal(t, 1, len(roots))
	template := roots[0]
	assert.Equal(t, "template", template.Name)
	assert.NotZero(t, template.EndTag)

	var div *ast.VElement
	for _, child := range template.Children {
		if element, ok := child.(*ast.VElement); ok {
			div = element
		}
	}
	assert.NotZero(t, div)
	assert.Equal(t, "div", div.Name)
	assert.Equal(t, 1, len(div.StartTag.Attributes))

	var names []string
	for _, child := range div.Children {
		if element, ok := child.(*ast.VElement); ok {
			names = append(names, element.Name)
			if element.Name != "div" {
				assert.Zero(t, element.EndTag)
			}
		}
	}
	assert.Equal(t, []string{"br", "p", "p"}, names)
	assert.True(t, div.Parent() == ast.Node(template))
}

func TestUnmatchedEndTag(t *testing.T) {
	doc := Parse("<div></span></div>")
	roots := doc.Roots()
	assert.Equal(t, 1, len(roots))
	assert.NotZero(t, roots[0].EndTag)
	assert.Equal(t, ast.Range{Start: 0, End: 18}, roots[0].Range())
}

func TestUnclosedElement(t *testing.T) {
	doc := Parse("<div>\n  <span>text")
	div := doc.Roots()[0]
	assert.Zero(t, div.EndTag)
	assert.Equal(t, len(doc.Source), div.Range().End)
}

func TestSelfClosing(t *testing.T) {
	doc := Parse("<div><comp /><span></span></div>")
	div := doc.Roots()[0]
	assert.Equal(t, 2, len(div.Children))
	comp := div.Children[0].(*ast.VElement)
	assert.True(t, comp.StartTag.SelfClosing)
	assert.Zero(t, comp.EndTag)
}

func TestAttributes(t *testing.T) {
	doc := Parse(`<div class="a" hidden :foo="bar + 1" @click.stop="onClick" v-else data-x=1></div>`)
	attrs := doc.Roots()[0].StartTag.Attributes
	assert.Equal(t, 6, len(attrs))

	class := attrs[0]
	assert.False(t, class.Directive)
	assert.Equal(t, "class", class.Key.(*ast.VIdentifier).Name)
	assert.Equal(t, "a", class.Value.(*ast.VLiteral).Value)

	assert.Zero(t, attrs[1].Value)

	bind := attrs[2]
	assert.True(t, bind.Directive)
	key := bind.Key.(*ast.VDirectiveKey)
	assert.Equal(t, "bind", key.Name)
	assert.Equal(t, "foo", key.Argument)
	container := bind.Value.(*ast.VExpressionContainer)
	assert.Equal(t, ast.KindBinaryExpression, container.Expression.Kind())
	// the container includes the quotes
	assert.Equal(t, `"bar + 1"`, doc.Source[container.Range().Start:container.Range().End])

	on := attrs[3].Key.(*ast.VDirectiveKey)
	assert.Equal(t, "on", on.Name)
	assert.Equal(t, "click", on.Argument)
	assert.Equal(t, []string{"stop"}, on.Modifiers)
	assert.Equal(t, ast.KindIdentifier, attrs[3].Value.(*ast.VExpressionContainer).Expression.Kind())

	assert.Equal(t, "else", attrs[4].Key.(*ast.VDirectiveKey).Name)
	assert.Equal(t, "1", attrs[5].Value.(*ast.VLiteral).Value)
}

func TestDirectiveKey(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		key       string
		argument  string
		modifiers []string
	}{
		{name: "long form", raw: "v-on:click.stop.prevent", key: "on", argument: "click", modifiers: []string{"stop", "prevent"}},
		{name: "bind shorthand", raw: ":value", key: "bind", argument: "value"},
		{name: "slot shorthand", raw: "#header", key: "slot", argument: "header"},
		{name: "no argument", raw: "v-model.trim", key: "model", modifiers: []string{"trim"}},
		{name: "dynamic argument", raw: "v-bind:[key.name].camel", key: "bind", argument: "[key.name]", modifiers: []string{"camel"}},
		{name: "bare", raw: "v-if", key: "if"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse("<div " + tt.raw + "></div>")
			key := doc.Roots()[0].StartTag.Attributes[0].Key.(*ast.VDirectiveKey)
			assert.Equal(t, tt.key, key.Name)
			assert.Equal(t, tt.argument, key.Argument)
			assert.Equal(t, tt.modifiers, key.Modifiers)
		})
	}
}

func TestMustache(t *testing.T) {
	doc := Parse("<p>{{ a ? b : c }} and {{ }}</p>")
	p := doc.Roots()[0]
	assert.Equal(t, 3, len(p.Children))

	first := p.Children[0].(*ast.VExpressionContainer)
	assert.Equal(t, ast.KindConditionalExpression, first.Expression.Kind())
	assert.Equal(t, "{{ a ? b : c }}", doc.Source[first.Range().Start:first.Range().End])

	assert.Equal(t, ast.KindVText, p.Children[1].Kind())

	empty := p.Children[2].(*ast.VExpressionContainer)
	assert.Zero(t, empty.Expression)
	assert.NoError(t, empty.Err)
}

func TestBrokenExpression(t *testing.T) {
	doc := Parse(`<div :a="foo(" :b="'x"></div>`)
	attrs := doc.Roots()[0].StartTag.Attributes
	assert.Equal(t, 2, len(attrs))

	for _, attr := range attrs {
		container := attr.Value.(*ast.VExpressionContainer)
		assert.Zero(t, container.Expression)
		assert.Error(t, container.Err)
	}
	assert.Equal(t, 2, len(doc.Errors))
}

func TestVFor(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		aliases int
		right   ast.Kind
	}{
		{name: "simple", value: "item in items", aliases: 1, right: ast.KindIdentifier},
		{name: "of", value: "item of list.items", aliases: 1, right: ast.KindMemberExpression},
		{name: "parenthesized", value: "(item, index) in items", aliases: 2, right: ast.KindIdentifier},
		{name: "destructuring", value: "({ a, b }, i) of load()", aliases: 2, right: ast.KindCallExpression},
		{name: "range", value: "n in 10", aliases: 1, right: ast.KindLiteral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(`<li v-for="` + tt.value + `"></li>`)
			assert.Equal(t, 0, len(doc.Errors))
			container := doc.Roots()[0].StartTag.Attributes[0].Value.(*ast.VExpressionContainer)
			expr := container.Expression.(*ast.VForExpression)
			assert.Equal(t, tt.aliases, len(expr.Left))
			assert.Equal(t, tt.right, expr.Right.Kind())
			assert.Equal(t, tt.value, doc.Source[expr.Range().Start:expr.Range().End])
		})
	}
}

func TestInvalidVFor(t *testing.T) {
	doc := Parse(`<li v-for="items"></li>`)
	container := doc.Roots()[0].StartTag.Attributes[0].Value.(*ast.VExpressionContainer)
	assert.IsError(t, container.Err, ErrInvalidVFor)
}

func TestVOn(t *testing.T) {
	tests := []struct {
		name  string
		value string
		kind  ast.Kind
	}{
		{name: "method name", value: "onClick", kind: ast.KindIdentifier},
		{name: "member", value: "handlers.click", kind: ast.KindMemberExpression},
		{name: "arrow", value: "() => go(1)", kind: ast.KindArrowFunctionExpression},
		{name: "call", value: "go(1)", kind: ast.KindVOnExpression},
		{name: "statements", value: "a++; b = 2", kind: ast.KindVOnExpression},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(`<a @click="` + tt.value + `"></a>`)
			assert.Equal(t, 0, len(doc.Errors))
			container := doc.Roots()[0].StartTag.Attributes[0].Value.(*ast.VExpressionContainer)
			assert.Equal(t, tt.kind, container.Expression.Kind())
		})
	}
}

func TestSlotScope(t *testing.T) {
	doc := Parse(`<template #item="{ item, index }"></template>`)
	container := doc.Roots()[0].StartTag.Attributes[0].Value.(*ast.VExpressionContainer)
	scope := container.Expression.(*ast.VSlotScopeExpression)
	assert.Equal(t, 1, len(scope.Params))
	assert.Equal(t, ast.KindObjectPattern, scope.Params[0].Kind())
}

func TestRawText(t *testing.T) {
	doc := Parse("<script>\nif (a < b) {}\n</script>")
	script := doc.Roots()[0]
	assert.Equal(t, 1, len(script.Children))
	assert.Equal(t, ast.KindVRawText, script.Children[0].Kind())
	assert.NotZero(t, script.EndTag)
}

func TestParentLinks(t *testing.T) {
	doc := Parse(`<div :a="x.y"></div>`)
	attr := doc.Roots()[0].StartTag.Attributes[0]
	member := attr.Value.(*ast.VExpressionContainer).Expression.(*ast.MemberExpression)
	assert.True(t, member.Parent() == attr.Value)
	assert.True(t, member.Object.Parent() == ast.Node(member))
}
