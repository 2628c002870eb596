package indent

import (
	"github.com/shibukawa/tmplindent/ast"
	"github.com/shibukawa/tmplindent/tokenstore"
)

// jump handles break, continue, return and throw
func (b *builder) jump(n ast.Node) {
	first := b.first(n)
	b.set(b.inside(b.after(first, nil), n), 1, first)
	b.processSemicolon(n)
}

func (b *builder) catchClause(n *ast.CatchClause) {
	first := b.first(n)
	if n.Param != nil {
		left := b.after(first, nil)
		right := b.store.AfterNode(n.Param, nil)
		b.set(left, 1, first)
		b.processNodeList([]ast.Node{n.Param}, left, right, 1)
	}
	b.set(b.first(n.Body), 0, first)
}

func (b *builder) doWhile(n *ast.DoWhileStatement) {
	do := b.first(n)
	while := b.must(b.store.AfterNode(n.Body, isNotRightParen), "while", n)
	left := b.after(while, nil)
	test := b.after(left, nil)
	right := b.last(n)
	if b.is(right, tokenstore.Punct(";")) {
		right = b.before(right, nil)
	}

	b.processMaybeBlock(n.Body, do)
	b.set(while, 0, do)
	b.set(left, 1, while)
	b.set(test, 1, left)
	b.set(right, 0, left)
	b.processSemicolon(n)
}

// forIn handles both `for (left in right)` and `for await (left of right)`
func (b *builder) forIn(n, left, body ast.Node) {
	forToken := b.first(n)
	leftParen := b.must(b.after(forToken, isLeftParen), "(", n)
	in := b.must(b.store.AfterNode(left, isNotRightParen), "in/of", n)
	rightParen := b.store.BeforeNode(body, isNotLeftParen)

	b.set(leftParen, 1, forToken)
	b.set(b.after(leftParen, nil), 1, leftParen)
	b.set(in, 1, leftParen)
	b.set(b.after(in, nil), 1, in)
	b.set(rightParen, 0, leftParen)
	b.processMaybeBlock(body, forToken)
}

func (b *builder) forStatement(n *ast.ForStatement) {
	forToken := b.first(n)
	leftParen := b.after(forToken, nil)
	rightParen := b.store.BeforeNode(n.Body, isNotLeftParen)

	b.set(leftParen, 1, forToken)
	b.processNodeList([]ast.Node{n.Init, n.Test, n.Update}, leftParen, rightParen, 1)
	b.set(rightParen, 0, leftParen)
	b.processMaybeBlock(n.Body, forToken)
}

func (b *builder) ifStatement(n *ast.IfStatement) {
	ifToken := b.first(n)
	leftParen := b.after(ifToken, nil)
	rightParen := b.store.BeforeNode(n.Consequent, isRightParen)

	b.set(leftParen, 1, ifToken)
	b.set(rightParen, 0, leftParen)
	b.processMaybeBlock(n.Consequent, ifToken)

	if n.Alternate != nil {
		elseToken := b.must(b.store.AfterNode(n.Consequent, isNotRightParen), "else", n)
		b.set(elseToken, 0, ifToken)
		b.processMaybeBlock(n.Alternate, elseToken)
	}
}

func (b *builder) labeled(n *ast.LabeledStatement) {
	label := b.first(n)
	colon := b.after(label, nil)
	b.set(colon, 1, label)
	b.set(b.after(colon, nil), 1, colon)
}

// loop handles `while (test) body` and `with (object) body`
func (b *builder) loop(n, body ast.Node) {
	first := b.first(n)
	leftParen := b.after(first, nil)
	rightParen := b.store.BeforeNode(body, isRightParen)

	b.set(leftParen, 1, first)
	b.set(rightParen, 0, leftParen)
	b.processMaybeBlock(body, first)
}

func (b *builder) switchCase(n *ast.SwitchCase) {
	caseToken := b.first(n)
	if n.Test != nil {
		test := b.after(caseToken, nil)
		colon := b.store.AfterNode(n.Test, isNotRightParen)
		b.set(test, 1, caseToken)
		b.set(colon, 1, test)
	} else {
		b.set(b.after(caseToken, nil), 1, caseToken)
	}
	// statements of the case body
	for _, statement := range n.Consequent {
		b.set(b.first(statement), 1, caseToken)
	}
}

func (b *builder) switchStatement(n *ast.SwitchStatement) {
	switchToken := b.first(n)
	leftParen := b.after(switchToken, nil)
	leftBrace := b.must(b.store.AfterNode(n.Discriminant, tokenstore.Punct("{")), "{", n)
	rightParen := b.before(leftBrace, nil)
	rightBrace := b.last(n)

	b.set(leftParen, 1, switchToken)
	b.set(b.after(leftParen, nil), 1, leftParen)
	b.set(rightParen, 0, leftParen)
	b.set(leftBrace, 0, switchToken)
	for _, c := range n.Cases {
		b.set(b.first(c), 1, leftBrace)
	}
	b.set(rightBrace, 0, leftBrace)
}

func (b *builder) try(n *ast.TryStatement) {
	tryToken := b.first(n)
	b.set(b.first(n.Block), 0, tryToken)
	if n.Handler != nil {
		b.set(b.first(n.Handler), 0, tryToken)
	}
	if n.Finalizer != nil {
		b.set(b.store.BeforeNode(n.Finalizer, nil), 0, tryToken)
		b.set(b.first(n.Finalizer), 0, tryToken)
	}
}

func (b *builder) variableDeclarator(n *ast.VariableDeclarator) {
	if n.Init == nil {
		return
	}
	id := b.first(n)
	eq := b.store.AfterNode(n.ID, nil)
	b.set(eq, 1, id)
	b.set(b.after(eq, nil), 1, eq)
}
