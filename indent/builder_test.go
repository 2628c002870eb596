package indent

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/tmplindent/ast"
	"github.com/shibukawa/tmplindent/parser"
	"github.com/shibukawa/tmplindent/tokenstore"
)

type tokenRelation struct {
	value    string
	base     string
	offset   int
	relation bool
}

// relations builds the graph of a directive value and lists the tokens
// between its quotes in source order
func relations(t *testing.T, value string) []tokenRelation {
	t.Helper()
	doc := parser.Parse(`<div :a="` + value + `"></div>`)
	assert.Equal(t, 0, len(doc.Errors))
	b := newBuilder(tokenstore.New(doc.Tokens), DefaultOptions())
	b.build(doc.Roots()[0])

	container := doc.Roots()[0].StartTag.Attributes[0].Value.Range()
	var results []tokenRelation
	for _, id := range b.store.Between(container.Start+1, container.End-1) {
		entry := tokenRelation{value: b.token(id).Value}
		if relation, ok := b.graph.Get(id); ok {
			entry.base = b.token(relation.Base).Value
			entry.offset = relation.Offset
			entry.relation = true
		}
		results = append(results, entry)
	}
	return results
}

func TestParenthesesAreUnwrapped(t *testing.T) {
	assert.Equal(t, []tokenRelation{
		{value: "(", base: `"`, offset: 1, relation: true},
		{value: "(", base: "(", offset: 1, relation: true},
		{value: "a", base: "(", offset: 1, relation: true},
		{value: ")", base: "(", offset: 0, relation: true},
		{value: ")", base: "(", offset: 0, relation: true},
	}, relations(t, "((a))"))
}

func TestListHoles(t *testing.T) {
	assert.Equal(t, []tokenRelation{
		{value: "[", base: `"`, offset: 1, relation: true},
		{value: ",", base: "[", offset: 1, relation: true},
		{value: "a", base: "[", offset: 1, relation: true},
		{value: ",", base: "a", offset: Exact, relation: true},
		{value: ",", base: "a", offset: Exact, relation: true},
		{value: "b", base: "a", offset: Exact, relation: true},
		{value: "]", base: "[", offset: 0, relation: true},
	}, relations(t, "[, a, , b]"))
}

func TestSuppressedTokensLoseRelations(t *testing.T) {
	for _, value := range []string{"a?.b(c)", "import('x')"} {
		for _, entry := range relations(t, value) {
			assert.False(t, entry.relation, entry.value)
		}
	}
}

func TestPrefixTokens(t *testing.T) {
	doc := parser.Parse(`<div :a="{ async *[key]() {} }"></div>`)
	b := newBuilder(tokenstore.New(doc.Tokens), DefaultOptions())
	object := doc.Roots()[0].StartTag.Attributes[0].Value.(*ast.VExpressionContainer).Expression.(*ast.ObjectExpression)
	property := object.Properties[0].(*ast.Property)

	var values []string
	for _, id := range b.prefixTokens(property, property.Key, property.Computed) {
		values = append(values, b.token(id).Value)
	}
	assert.Equal(t, []string{"async", "*"}, values)
}
