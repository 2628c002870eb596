package tokenstore

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/tmplindent/ast"
	"github.com/shibukawa/tmplindent/tokenizer"
)

func newStore(t *testing.T, src string) *Store {
	t.Helper()
	tokens, err := tokenizer.NewScriptTokenizer(src).AllTokens()
	assert.NoError(t, err)
	return New(tokens)
}

func ident(start, end int) ast.Node {
	return &ast.Identifier{Base: ast.NewBase(ast.KindIdentifier, start, end)}
}

func TestNavigation(t *testing.T) {
	// tokens: foo ( a , /* c */ b )
	s := newStore(t, "foo ( a , /* c */ b )")
	call := &ast.CallExpression{Base: ast.NewBase(ast.KindCallExpression, 0, 21)}
	a := ident(6, 7)
	b := ident(18, 19)

	assert.Equal(t, 7, s.Len())
	assert.Equal(t, TokenID(0), s.First(call))
	assert.Equal(t, TokenID(1), s.FirstSkip(call, 1))
	assert.Equal(t, TokenID(6), s.Last(call))
	assert.Equal(t, []TokenID{0, 1, 2, 3, 5, 6}, s.Tokens(call))

	assert.Equal(t, TokenID(3), s.BeforeNode(b, nil))
	assert.Equal(t, TokenID(3), s.AfterNode(a, nil))
	assert.Equal(t, TokenID(1), s.BeforeNode(a, Punct("(")))
	assert.Equal(t, TokenID(1), s.FirstBetween(3, 18, Punct("(")))
	assert.Equal(t, NoToken, s.FirstBetween(5, 18, Punct("(")))

	assert.Equal(t, TokenID(1), s.Before(6, Punct("(")))
	assert.Equal(t, TokenID(6), s.After(0, Punct(")")))
	assert.Equal(t, NoToken, s.Before(0, nil))
	assert.Equal(t, NoToken, s.After(6, nil))
	assert.Equal(t, TokenID(5), s.Before(6, Not(Punct(","))))
}

func TestLines(t *testing.T) {
	s := New(mustTemplateTokens(t, "<div>\n  <!-- c -->\n  <p>a</p>\n</div>"))

	lines := s.Lines()
	assert.Equal(t, 4, len(lines))

	var first []string
	for _, line := range lines {
		first = append(first, s.Token(line[0]).Value)
	}
	assert.Equal(t, []string{"<div", "<!-- c -->", "<p", "</div"}, first)
}

func TestInvalidToken(t *testing.T) {
	s := newStore(t, "a")
	assert.False(t, s.Valid(NoToken))
	assert.Equal(t, tokenizer.Token{}, s.Token(NoToken))
	assert.Equal(t, ast.Range{Start: 0, End: 1}, s.Range(0))
}

func mustTemplateTokens(t *testing.T, src string) []tokenizer.Token {
	t.Helper()
	tokens, err := tokenizer.NewTemplateTokenizer(src).AllTokens()
	assert.NoError(t, err)
	return tokens
}
