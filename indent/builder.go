package indent

import (
	"fmt"

	"github.com/shibukawa/tmplindent/ast"
	"github.com/shibukawa/tmplindent/tokenizer"
	"github.com/shibukawa/tmplindent/tokenstore"
)

var (
	isLeftParen     = tokenstore.Punct("(")
	isRightParen    = tokenstore.Punct(")")
	isLeftBracket   = tokenstore.Punct("[")
	isNotLeftParen  = tokenstore.Not(isLeftParen)
	isNotRightParen = tokenstore.Not(isRightParen)
)

// builder walks a syntax tree and records the offset relations of its
// tokens
type builder struct {
	store      *tokenstore.Store
	graph      *Graph
	opts       Options
	suppressed []ast.Node
}

func newBuilder(store *tokenstore.Store, opts Options) *builder {
	return &builder{store: store, graph: NewGraph(), opts: opts}
}

// build records the relations of every token below root and then clears
// the subtrees of unknown node kinds. The clearing happens once after the
// walk rather than on leaving each unknown node. Only vText reads the
// graph, and text never lies inside an unknown node.
func (b *builder) build(root ast.Node) {
	ast.Walk(b, root)
	for _, n := range b.suppressed {
		for _, token := range b.store.Tokens(n) {
			b.graph.Delete(token)
		}
	}
	b.suppressed = nil
}

// Enter implements ast.Visitor. Handlers run before the children, so a
// deeper node overrides the relations set by its ancestors.
func (b *builder) Enter(n ast.Node) {
	switch classOf(n.Kind()) {
	case handled:
		b.visit(n)
	case passThrough:
	case suppressed:
		b.suppressed = append(b.suppressed, n)
	default:
		panic(fmt.Errorf("%w: %s", ErrUnclassifiedKind, n.Kind()))
	}
}

// Leave implements ast.Visitor
func (b *builder) Leave(ast.Node) {}

func (b *builder) set(token tokenstore.TokenID, offset int, base tokenstore.TokenID) {
	b.graph.Set(token, offset, base)
}

func (b *builder) token(id tokenstore.TokenID) tokenizer.Token {
	return b.store.Token(id)
}

func (b *builder) first(n ast.Node) tokenstore.TokenID {
	if n == nil {
		return tokenstore.NoToken
	}
	return b.store.First(n)
}

func (b *builder) last(n ast.Node) tokenstore.TokenID {
	if n == nil {
		return tokenstore.NoToken
	}
	return b.store.Last(n)
}

// after returns the token following id, or NoToken when id is missing
func (b *builder) after(id tokenstore.TokenID, f tokenstore.Filter) tokenstore.TokenID {
	if id == tokenstore.NoToken {
		return tokenstore.NoToken
	}
	return b.store.After(id, f)
}

func (b *builder) before(id tokenstore.TokenID, f tokenstore.Filter) tokenstore.TokenID {
	if id == tokenstore.NoToken {
		return tokenstore.NoToken
	}
	return b.store.Before(id, f)
}

// inside returns id when the token lies within the node
func (b *builder) inside(id tokenstore.TokenID, n ast.Node) tokenstore.TokenID {
	if id == tokenstore.NoToken || !n.Range().Contains(b.store.Range(id)) {
		return tokenstore.NoToken
	}
	return id
}

// must panics when a token the node's shape guarantees is missing
func (b *builder) must(id tokenstore.TokenID, what string, n ast.Node) tokenstore.TokenID {
	if id == tokenstore.NoToken {
		panic(fmt.Errorf("%w: %s of %s at offset %d", ErrMissingToken, what, n.Kind(), n.Range().Start))
	}
	return id
}

func (b *builder) is(id tokenstore.TokenID, f tokenstore.Filter) bool {
	return id != tokenstore.NoToken && f(b.token(id))
}

// lastOf returns the last token of the last node, or fallback when the
// list is empty
func (b *builder) lastOf(nodes []ast.Node, fallback tokenstore.TokenID) tokenstore.TokenID {
	if len(nodes) == 0 {
		return fallback
	}
	return b.last(nodes[len(nodes)-1])
}

// processParentheses anchors the parentheses that wrap n: the inner first
// token is 1 level from `(` and `)` aligns with `(`
func (b *builder) processParentheses(n ast.Node) {
	first := b.first(n)
	left := b.before(first, nil)
	right := b.after(b.last(n), nil)
	for b.is(left, isLeftParen) && b.is(right, isRightParen) {
		b.set(first, 1, left)
		b.set(right, 0, left)
		first = left
		left = b.before(left, nil)
		right = b.after(right, nil)
	}
}

// processNodeList lays out a delimited list. The first element is offset
// levels from left and the following elements align with the first one.
// Nil entries are holes; the tokens they leave are aligned like elements.
// right may be NoToken for lists without a closing delimiter.
func (b *builder) processNodeList(nodes []ast.Node, left, right tokenstore.TokenID, offset int) {
	nextStart := func(from int) int {
		for _, n := range nodes[from:] {
			if n != nil {
				return n.Range().Start
			}
		}
		if right != tokenstore.NoToken {
			return b.store.Range(right).Start
		}
		return -1
	}

	if len(nodes) > 0 {
		// tokens of leading holes
		if end := nextStart(0); end >= 0 {
			for t := b.after(left, nil); t != tokenstore.NoToken && b.store.Range(t).End <= end; t = b.after(t, nil) {
				b.set(t, offset, left)
			}
		}

		base := left
		for i, n := range nodes {
			if n == nil {
				continue
			}
			token := b.first(n)
			b.set(token, offset, base)
			base = token
			offset = Exact

			end := nextStart(i + 1)
			if end < 0 {
				continue
			}
			for t := b.store.AfterNode(n, nil); t != tokenstore.NoToken && b.store.Range(t).End <= end; t = b.after(t, nil) {
				b.set(t, offset, base)
			}
		}
	}

	if right != tokenstore.NoToken {
		b.set(right, 0, left)
	}
}

// processMaybeBlock places the body of a control statement: a block aligns
// with base, any other statement is 1 level deeper
func (b *builder) processMaybeBlock(body ast.Node, base tokenstore.TokenID) {
	first := b.first(body)
	for t := b.before(first, nil); b.is(t, isLeftParen); t = b.before(t, nil) {
		first = t
	}
	offset := 1
	if b.is(first, tokenstore.Punct("{")) {
		offset = 0
	}
	b.set(first, offset, base)
}

// processSemicolon aligns a trailing semicolon with the statement start
func (b *builder) processSemicolon(n ast.Node) {
	first := b.first(n)
	last := b.last(n)
	if last != first && b.is(last, tokenstore.Punct(";")) {
		b.set(last, 0, first)
	}
}

// prefixTokens returns the modifier tokens of a member such as `static`,
// `async`, `get` or `*` that precede its key
func (b *builder) prefixTokens(n, key ast.Node, computed bool) []tokenstore.TokenID {
	end := key.Range().Start
	if computed {
		if bracket := b.store.BeforeNode(key, isLeftBracket); bracket != tokenstore.NoToken {
			end = b.store.Range(bracket).Start
		}
	}
	return b.store.Between(n.Range().Start, end)
}

// chainHead returns the first token of the outermost node of the same kind
// in a chain such as `a ? b : c ? d : e`
func (b *builder) chainHead(n ast.Node) tokenstore.TokenID {
	head := n
	for parent := head.Parent(); parent != nil && parent.Kind() == n.Kind(); parent = head.Parent() {
		head = parent
	}
	return b.first(head)
}

// operatorToken finds the operator between two operands
func (b *builder) operatorToken(left, right ast.Node, operator string) tokenstore.TokenID {
	return b.store.FirstBetween(left.Range().End, right.Range().Start, func(t tokenizer.Token) bool {
		return t.Value == operator && (t.Type == tokenizer.PUNCTUATOR || t.Type == tokenizer.KEYWORD)
	})
}

func asNodes[T ast.Node](list []T) []ast.Node {
	result := make([]ast.Node, len(list))
	for i, n := range list {
		result[i] = n
	}
	return result
}
