// Package tokenstore indexes the tokens of a document and answers the
// navigation queries used by the layout rules: first and last token of a
// node, tokens before and after a position, tokens between two positions.
// Comment tokens are stored but skipped by every query.
package tokenstore

import (
	"sort"

	"github.com/shibukawa/tmplindent/ast"
	"github.com/shibukawa/tmplindent/tokenizer"
)

// TokenID is the index of a token in the store
type TokenID int

// NoToken is returned when a query has no answer
const NoToken TokenID = -1

// Filter selects tokens in a query. A nil Filter accepts every token.
type Filter func(tokenizer.Token) bool

// Store is an immutable token arena sorted by offset
type Store struct {
	tokens []tokenizer.Token
}

// New creates a store. The tokens must be in source order.
func New(tokens []tokenizer.Token) *Store {
	return &Store{tokens: tokens}
}

// Len returns the number of tokens, comments included
func (s *Store) Len() int {
	return len(s.tokens)
}

// Token returns the token with the id. NoToken yields the zero token.
func (s *Store) Token(id TokenID) tokenizer.Token {
	if !s.Valid(id) {
		return tokenizer.Token{}
	}
	return s.tokens[id]
}

// Valid reports whether id refers to a stored token
func (s *Store) Valid(id TokenID) bool {
	return id >= 0 && int(id) < len(s.tokens)
}

// Range returns the byte range of the token
func (s *Store) Range(id TokenID) ast.Range {
	token := s.Token(id)
	return ast.Range{Start: token.Position.Offset, End: token.End.Offset}
}

// Lines groups the tokens by their start line, skipping whitespace tokens.
// Comments are included. Groups are returned in line order.
func (s *Store) Lines() [][]TokenID {
	return s.LinesBetween(0, int(^uint(0)>>1))
}

// LinesBetween groups the tokens inside [start, end) like Lines
func (s *Store) LinesBetween(start, end int) [][]TokenID {
	var lines [][]TokenID
	line := -1
	for i := s.indexAt(start); i < len(s.tokens); i++ {
		token := s.tokens[i]
		if token.End.Offset > end {
			break
		}
		if token.Type == tokenizer.HTML_WHITESPACE {
			continue
		}
		if token.Position.Line != line {
			lines = append(lines, nil)
			line = token.Position.Line
		}
		lines[len(lines)-1] = append(lines[len(lines)-1], TokenID(i))
	}
	return lines
}

// indexAt returns the index of the first token starting at or after offset
func (s *Store) indexAt(offset int) int {
	return sort.Search(len(s.tokens), func(i int) bool {
		return s.tokens[i].Position.Offset >= offset
	})
}

func (s *Store) accept(i int, f Filter) bool {
	token := s.tokens[i]
	return !token.IsComment() && (f == nil || f(token))
}

// scanForward returns the first accepted token in [from, len) starting before limit
func (s *Store) scanForward(from, limit int, f Filter) TokenID {
	for i := from; i < len(s.tokens); i++ {
		if s.tokens[i].Position.Offset >= limit {
			break
		}
		if s.accept(i, f) {
			return TokenID(i)
		}
	}
	return NoToken
}

// scanBackward returns the last accepted token in [0, from] starting at or after limit
func (s *Store) scanBackward(from, limit int, f Filter) TokenID {
	for i := from; i >= 0; i-- {
		if s.tokens[i].Position.Offset < limit {
			break
		}
		if s.accept(i, f) {
			return TokenID(i)
		}
	}
	return NoToken
}

// First returns the first token of the node
func (s *Store) First(n ast.Node) TokenID {
	return s.FirstMatch(n, nil)
}

// FirstSkip returns the first token of the node after skipping skip tokens
func (s *Store) FirstSkip(n ast.Node, skip int) TokenID {
	r := n.Range()
	id := NoToken
	from := s.indexAt(r.Start)
	for range skip + 1 {
		id = s.scanForward(from, r.End, nil)
		if id == NoToken {
			return NoToken
		}
		from = int(id) + 1
	}
	return id
}

// FirstMatch returns the first token of the node accepted by f
func (s *Store) FirstMatch(n ast.Node, f Filter) TokenID {
	r := n.Range()
	return s.scanForward(s.indexAt(r.Start), r.End, f)
}

// Last returns the last token of the node
func (s *Store) Last(n ast.Node) TokenID {
	r := n.Range()
	return s.lastBefore(r.End, r.Start, nil)
}

func (s *Store) lastBefore(end, limit int, f Filter) TokenID {
	i := s.indexAt(end) - 1
	for i >= 0 && s.tokens[i].End.Offset > end {
		i--
	}
	return s.scanBackward(i, limit, f)
}

// Before returns the nearest token before the token accepted by f
func (s *Store) Before(id TokenID, f Filter) TokenID {
	return s.scanBackward(int(id)-1, 0, f)
}

// After returns the nearest token after the token accepted by f
func (s *Store) After(id TokenID, f Filter) TokenID {
	return s.scanForward(int(id)+1, int(^uint(0)>>1), f)
}

// BeforeNode returns the nearest token before the node accepted by f
func (s *Store) BeforeNode(n ast.Node, f Filter) TokenID {
	return s.lastBefore(n.Range().Start, 0, f)
}

// AfterNode returns the nearest token after the node accepted by f
func (s *Store) AfterNode(n ast.Node, f Filter) TokenID {
	return s.scanForward(s.indexAt(n.Range().End), int(^uint(0)>>1), f)
}

// FirstBetween returns the first token inside [start, end) accepted by f
func (s *Store) FirstBetween(start, end int, f Filter) TokenID {
	i := s.scanForward(s.indexAt(start), end, f)
	if i != NoToken && s.tokens[i].End.Offset > end {
		return NoToken
	}
	return i
}

// Tokens returns every token of the node
func (s *Store) Tokens(n ast.Node) []TokenID {
	r := n.Range()
	return s.Between(r.Start, r.End)
}

// Between returns every token inside [start, end)
func (s *Store) Between(start, end int) []TokenID {
	var ids []TokenID
	for i := s.indexAt(start); i < len(s.tokens); i++ {
		if s.tokens[i].End.Offset > end {
			break
		}
		if s.accept(i, nil) {
			ids = append(ids, TokenID(i))
		}
	}
	return ids
}

// Punct accepts punctuators with the value
func Punct(value string) Filter {
	return func(t tokenizer.Token) bool {
		return t.Type == tokenizer.PUNCTUATOR && t.Value == value
	}
}

// Word accepts keywords and identifiers with the value
func Word(value string) Filter {
	return func(t tokenizer.Token) bool {
		return (t.Type == tokenizer.KEYWORD || t.Type == tokenizer.IDENTIFIER) && t.Value == value
	}
}

// Not inverts a filter
func Not(f Filter) Filter {
	return func(t tokenizer.Token) bool {
		return !f(t)
	}
}
