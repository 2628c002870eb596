package indent

import (
	"github.com/shibukawa/tmplindent/ast"
	"github.com/shibukawa/tmplindent/tokenstore"
)

// list lays out a bracketed list such as an array, an object or a block
func (b *builder) list(n ast.Node, elements []ast.Node) {
	b.processParentheses(n)
	b.processNodeList(elements, b.first(n), b.last(n), 1)
}

func (b *builder) arrowFunction(n *ast.Function) {
	b.processParentheses(n)
	first := b.first(n)
	left := first
	if n.Async {
		left = b.after(first, nil)
		b.set(left, 1, first)
	}
	arrow := b.must(b.store.BeforeNode(n.Body, tokenstore.Punct("=>")), "=>", n)

	if b.is(left, isLeftParen) {
		right := b.after(b.lastOf(n.Params, left), isRightParen)
		b.processNodeList(n.Params, left, right, 1)
	}
	b.set(arrow, 1, first)
	b.processMaybeBlock(n.Body, arrow)
}

// function lays out `async function* name(params) {}`. A method value starts
// at its parameter list.
func (b *builder) function(n *ast.Function) {
	b.processParentheses(n)
	first := b.first(n)

	if b.is(first, isLeftParen) {
		right := b.after(b.lastOf(n.Params, first), isRightParen)
		b.processNodeList(n.Params, first, right, 1)
		b.set(b.first(n.Body), 0, first)
		return
	}

	fn := first
	if n.Async {
		fn = b.after(first, nil)
		b.set(fn, 1, first)
	}
	anchor := fn
	if n.Generator {
		star := b.after(fn, nil)
		b.set(star, 1, fn)
		anchor = star
	}
	if n.ID != nil {
		id := b.first(n.ID)
		b.set(id, 1, anchor)
		anchor = id
	}
	left := b.must(b.after(anchor, nil), "(", n)
	right := b.after(b.lastOf(n.Params, left), isRightParen)
	b.set(left, 1, anchor)
	b.processNodeList(n.Params, left, right, 1)
	b.set(b.first(n.Body), 0, first)
}

// binary places the operator 1 level from the left operand and the right
// operand 1 level from the operator
func (b *builder) binary(n, left, right ast.Node, operator string) {
	b.processParentheses(n)
	first := b.first(n)
	op := b.must(b.operatorToken(left, right, operator), operator, n)
	b.set(op, 1, first)
	b.set(b.after(op, nil), 1, op)
}

// prefixed handles `await x`, `...x`, `!x`, `x++` and `yield x`
func (b *builder) prefixed(n ast.Node) {
	b.processParentheses(n)
	first := b.first(n)
	b.set(b.inside(b.after(first, nil), n), 1, first)
}

func (b *builder) call(n *ast.CallExpression) {
	b.processParentheses(n)
	first := b.first(n)
	right := b.last(n)
	if !b.is(right, isRightParen) {
		return
	}
	left := b.store.FirstBetween(n.Callee.Range().End, b.store.Range(right).Start, isLeftParen)
	if left == tokenstore.NoToken {
		return
	}
	b.set(left, 1, first)
	b.processNodeList(n.Arguments, left, right, 1)
}

func (b *builder) class(n *ast.Class) {
	b.processParentheses(n)
	first := b.first(n)
	if n.ID != nil {
		b.set(b.first(n.ID), 1, first)
	}
	if n.SuperClass != nil {
		extends := b.after(first, nil)
		if n.ID != nil {
			extends = b.store.AfterNode(n.ID, nil)
		}
		b.set(extends, 1, first)
		b.set(b.after(extends, nil), 1, extends)
	}
	b.set(b.first(n.Body), 0, first)
}

// conditional indents `?` and `:` below the head of the chain. When the test
// and the consequent share a line the whole chain aligns with its head.
func (b *builder) conditional(n *ast.ConditionalExpression) {
	b.processParentheses(n)
	head := b.chainHead(n)
	question := b.must(b.store.AfterNode(n.Test, isNotRightParen), "?", n)
	consequent := b.after(question, nil)
	colon := b.must(b.store.AfterNode(n.Consequent, isNotRightParen), ":", n)
	alternate := b.after(colon, nil)

	testEnd := b.token(b.last(n.Test)).End.Line
	consequentStart := b.token(b.first(n.Consequent)).Position.Line
	if testEnd == consequentStart {
		b.graph.SetAll([]tokenstore.TokenID{question, consequent, colon, alternate}, 0, head)
		return
	}
	b.set(question, 1, head)
	b.set(consequent, 1, question)
	b.set(colon, 1, head)
	b.set(alternate, 1, colon)
}

func (b *builder) member(n, property ast.Node, computed bool) {
	b.processParentheses(n)
	object := b.first(n)
	if computed {
		left := b.must(b.store.BeforeNode(property, isLeftBracket), "[", n)
		right := b.store.AfterNode(property, tokenstore.Punct("]"))
		b.set(left, 1, object)
		b.set(b.after(left, nil), 1, left)
		b.set(right, 0, left)
		return
	}
	dot := b.must(b.store.BeforeNode(property, nil), ".", n)
	b.set(dot, 1, object)
	b.set(b.after(dot, nil), 1, dot)
}

// property lays out an object member or a class method: modifiers chain
// from left to right, the key follows the last modifier, and the value or
// parameter list follows the key
func (b *builder) property(n, key ast.Node, computed, shorthand, method bool) {
	prefixes := b.prefixTokens(n, key, computed)
	for i := 1; i < len(prefixes); i++ {
		b.set(prefixes[i], 1, prefixes[i-1])
	}
	lastPrefix := tokenstore.NoToken
	if len(prefixes) > 0 {
		lastPrefix = prefixes[len(prefixes)-1]
	}

	var lastKey tokenstore.TokenID
	if computed {
		left := b.must(b.store.BeforeNode(key, isLeftBracket), "[", n)
		right := b.must(b.store.AfterNode(key, tokenstore.Punct("]")), "]", n)
		b.set(left, 1, lastPrefix)
		b.set(b.after(left, nil), 1, left)
		b.set(right, 0, left)
		lastKey = right
	} else {
		lastKey = b.first(key)
		b.set(lastKey, 1, lastPrefix)
	}

	switch {
	case method:
		b.set(b.after(lastKey, nil), 1, lastKey)
	case !shorthand:
		colon := b.after(lastKey, nil)
		b.set(colon, 1, lastKey)
		b.set(b.after(colon, nil), 1, colon)
	}
}

func (b *builder) newExpression(n *ast.NewExpression) {
	b.processParentheses(n)
	first := b.first(n)
	callee := b.after(first, nil)
	b.set(callee, 1, first)

	right := b.last(n)
	if !b.is(right, isRightParen) {
		return
	}
	left := b.store.FirstBetween(n.Callee.Range().End, b.store.Range(right).Start, isLeftParen)
	if left == tokenstore.NoToken {
		return
	}
	b.set(left, 1, callee)
	b.processNodeList(n.Arguments, left, right, 1)
}

// sequence indents each comma and the expression after it below the head
// of the chain
func (b *builder) sequence(n *ast.SequenceExpression) {
	b.processParentheses(n)
	head := b.chainHead(n)
	for _, expr := range n.Expressions[1:] {
		comma := b.store.BeforeNode(expr, isNotLeftParen)
		b.set(comma, 1, head)
		b.set(b.after(comma, nil), 1, head)
	}
}

func (b *builder) taggedTemplate(n *ast.TaggedTemplateExpression) {
	b.processParentheses(n)
	tag := b.first(n)
	b.set(b.store.AfterNode(n.Tag, isNotRightParen), 1, tag)
}

// templateLiteral aligns the pieces of a template with its start and
// indents each substitution 1 level
func (b *builder) templateLiteral(n *ast.TemplateLiteral) {
	b.processParentheses(n)
	first := b.first(n)
	for i, quasi := range n.Quasis {
		if i > 0 {
			b.set(b.first(quasi), 0, first)
		}
		if i < len(n.Quasis)-1 {
			b.set(b.store.AfterNode(quasi, nil), 1, first)
		}
	}
}
