package indent

import (
	"github.com/shibukawa/tmplindent/ast"
	"github.com/shibukawa/tmplindent/tokenizer"
	"github.com/shibukawa/tmplindent/tokenstore"
)

// `key = value`: each part 1 level from the previous one
func (b *builder) vAttribute(n *ast.VAttribute) {
	key := b.first(n)
	eq := b.store.FirstSkip(n, 1)
	if eq == tokenstore.NoToken {
		return
	}
	b.set(eq, 1, key)
	b.set(b.store.FirstSkip(n, 2), 1, eq)
}

// children are 1 level from the start tag and the end tag aligns with it
func (b *builder) vElement(n *ast.VElement) {
	startTag := b.first(n)
	for _, child := range n.Children {
		b.set(b.first(child), 1, startTag)
	}
	if n.EndTag != nil {
		b.set(b.first(n.EndTag), 0, startTag)
	}
}

func (b *builder) vEndTag(n *ast.VEndTag) {
	open := b.first(n)
	closing := b.last(n)
	if closing != open && b.token(closing).Type.IsTagClose() {
		b.set(closing, b.opts.CloseBracket, open)
	}
}

// vExpressionContainer indents the content of a delimited container 1
// level from its opening delimiter and aligns the closing one with it.
// An unquoted directive value starts with its expression and is left
// to the expression rules.
func (b *builder) vExpressionContainer(n *ast.VExpressionContainer) {
	if n.Expression == nil || n.Range().Start == n.Expression.Range().Start {
		return
	}
	open := b.first(n)
	closing := b.last(n)
	end := n.Range().End
	delimited := closing != open && b.isClosingDelimiter(open, closing)
	if delimited {
		end = b.store.Range(closing).Start
	}

	b.graph.SetAll(b.store.Between(b.store.Range(open).End, end), 1, open)
	if delimited {
		b.set(closing, 0, open)
	}
}

func (b *builder) isClosingDelimiter(open, closing tokenstore.TokenID) bool {
	o, c := b.token(open), b.token(closing)
	if o.Type == tokenizer.MUSTACHE_START {
		return c.Type == tokenizer.MUSTACHE_END
	}
	return o.Type == tokenizer.PUNCTUATOR && c.Type == tokenizer.PUNCTUATOR && o.Value == c.Value
}

// `(alias, index) in items`
func (b *builder) vForExpression(n *ast.VForExpression) {
	first := b.first(n)
	lastOfLeft := b.lastOf(n.Left, first)

	leftEnd := n.Range().Start
	if len(n.Left) > 0 {
		leftEnd = b.store.Range(lastOfLeft).End
	}
	in := b.must(b.store.FirstBetween(leftEnd, n.Right.Range().Start, isInOrOf), "in/of", n)

	if b.is(first, isLeftParen) {
		rightParen := b.after(lastOfLeft, isRightParen)
		b.processNodeList(n.Left, first, rightParen, 1)
	}
	b.set(in, 1, first)
	b.set(b.first(n.Right), 1, in)
}

func isInOrOf(t tokenizer.Token) bool {
	return t.Is("in") || (t.Type == tokenizer.IDENTIFIER && t.Value == "of")
}

// attributes are laid out as a list below the tag name
func (b *builder) vStartTag(n *ast.VStartTag) {
	open := b.first(n)
	closing := b.last(n)
	b.processNodeList(asNodes(n.Attributes), open, tokenstore.NoToken, b.opts.Attribute)
	if closing != open && b.token(closing).Type.IsTagClose() {
		b.set(closing, b.opts.CloseBracket, open)
	}
}

// every token of a text follows its first token
func (b *builder) vText(n *ast.VText) {
	first := b.first(n)
	relation, ok := b.graph.Get(first)
	for _, token := range b.store.Tokens(n) {
		if b.token(token).Type == tokenizer.HTML_WHITESPACE {
			continue
		}
		if ok {
			b.set(token, relation.Offset, relation.Base)
		} else {
			b.graph.Delete(token)
		}
	}
}
