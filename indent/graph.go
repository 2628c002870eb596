package indent

import (
	"github.com/shibukawa/tmplindent/tokenstore"
)

// Exact marks a relation that aligns a token with the literal column of its
// base token instead of indenting relative to the base line
const Exact = -1

// Relation places a token Offset levels deeper than the line of Base
type Relation struct {
	Base   tokenstore.TokenID
	Offset int
}

// Graph maps tokens to their relations. A later Set for the same token
// replaces the earlier one.
type Graph struct {
	relations map[tokenstore.TokenID]Relation
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{relations: make(map[tokenstore.TokenID]Relation)}
}

// Set records that token is offset levels from base. Missing tokens are
// ignored.
func (g *Graph) Set(token tokenstore.TokenID, offset int, base tokenstore.TokenID) {
	if token == tokenstore.NoToken || base == tokenstore.NoToken {
		return
	}
	g.relations[token] = Relation{Base: base, Offset: offset}
}

// SetAll records the same relation for every token
func (g *Graph) SetAll(tokens []tokenstore.TokenID, offset int, base tokenstore.TokenID) {
	for _, token := range tokens {
		g.Set(token, offset, base)
	}
}

// Get returns the relation of the token
func (g *Graph) Get(token tokenstore.TokenID) (Relation, bool) {
	r, ok := g.relations[token]
	return r, ok
}

// Has reports whether the token has a relation
func (g *Graph) Has(token tokenstore.TokenID) bool {
	_, ok := g.relations[token]
	return ok
}

// Delete removes the relation of the token
func (g *Graph) Delete(token tokenstore.TokenID) {
	delete(g.relations, token)
}

// Len returns the number of related tokens
func (g *Graph) Len() int {
	return len(g.relations)
}
