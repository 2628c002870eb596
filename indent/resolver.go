package indent

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/shibukawa/tmplindent/ast"
	"github.com/shibukawa/tmplindent/tokenstore"
)

// resolver computes the expected indentation of each line in one forward
// pass and compares it with the source
type resolver struct {
	store  *tokenstore.Store
	graph  *Graph
	opts   Options
	source string
	logger *log.Logger

	// expected indentation of the lines resolved so far
	indents  map[int]int
	findings []Finding
}

func newResolver(store *tokenstore.Store, graph *Graph, opts Options, source string, logger *log.Logger) *resolver {
	return &resolver{
		store:   store,
		graph:   graph,
		opts:    opts,
		source:  source,
		logger:  logger,
		indents: make(map[int]int),
	}
}

// anchor makes the root element the zero point of the indentation
func (r *resolver) anchor(root ast.Node) tokenstore.TokenID {
	first := r.store.First(root)
	if first == tokenstore.NoToken {
		return first
	}
	r.indents[r.line(first)] = 0
	r.graph.Set(first, 0, first)
	return first
}

// resolve validates every line of the root element. Comment-only lines are
// checked against the expected indentation of the next code line.
func (r *resolver) resolve(root ast.Node) {
	if r.anchor(root) == tokenstore.NoToken {
		return
	}

	var comments []tokenstore.TokenID
	span := root.Range()
	for _, tokens := range r.store.LinesBetween(span.Start, span.End) {
		r.trace(tokens)
		if r.allComments(tokens) {
			comments = append(comments, tokens[0])
			continue
		}
		r.validate(tokens, comments)
		comments = nil
	}
}

func (r *resolver) trace(tokens []tokenstore.TokenID) {
	for _, id := range tokens {
		text := strconv.Quote(r.store.Token(id).Value)
		relation, ok := r.graph.Get(id)
		switch {
		case !ok:
			r.logger.Debug("unknown", "token", text)
		case relation.Offset == 0:
			r.logger.Debug("same as", "token", text, "base", strconv.Quote(r.store.Token(relation.Base).Value))
		default:
			r.logger.Debug("offset from", "token", text, "offset", relation.Offset, "base", strconv.Quote(r.store.Token(relation.Base).Value))
		}
	}
}

func (r *resolver) line(id tokenstore.TokenID) int {
	return r.store.Token(id).Position.Line
}

func (r *resolver) allComments(tokens []tokenstore.TokenID) bool {
	for _, id := range tokens {
		if !r.store.Token(id).IsComment() {
			return false
		}
	}
	return true
}

func (r *resolver) validate(tokens, comments []tokenstore.TokenID) {
	if !r.hasRelation(tokens) {
		// the line lies wholly inside an unknown subtree
		return
	}

	expected, ok := r.expectedIndent(tokens)
	if !ok {
		return
	}
	r.indents[r.line(tokens[0])] = expected

	r.check(tokens[0], expected)
	for _, comment := range comments {
		r.check(comment, expected)
	}
}

// hasRelation reports whether a non-comment token of the line has a
// relation. A line that starts inside an unknown subtree and continues with
// known tokens is still validated.
func (r *resolver) hasRelation(tokens []tokenstore.TokenID) bool {
	for _, id := range tokens {
		if !r.store.Token(id).IsComment() && r.graph.Has(id) {
			return true
		}
	}
	return false
}

// expectedIndent returns the indentation of the line holding tokens. An
// exact relation of the first token wins; otherwise the smallest
// indentation implied by a token whose base line is resolved.
func (r *resolver) expectedIndent(tokens []tokenstore.TokenID) (int, bool) {
	if relation, ok := r.graph.Get(tokens[0]); ok && relation.Offset == Exact {
		return r.store.Token(relation.Base).Position.Column, true
	}

	line := r.line(tokens[0])
	expected := math.MaxInt
	for _, id := range tokens {
		relation, ok := r.graph.Get(id)
		if !ok || relation.Offset == Exact {
			continue
		}
		baseLine := r.line(relation.Base)
		if baseLine > line {
			panic(fmt.Errorf("%w: %q on line %d is based on %q on line %d",
				ErrUnresolvedBase, r.store.Token(id).Value, line, r.store.Token(relation.Base).Value, baseLine))
		}
		baseIndent, ok := r.indents[baseLine]
		if !ok {
			continue
		}
		expected = min(expected, r.opts.IndentSize*relation.Offset+baseIndent)
	}
	return expected, expected != math.MaxInt
}

// indentText returns the source between the start of the line and the token
func (r *resolver) indentText(id tokenstore.TokenID) string {
	offset := r.store.Token(id).Position.Offset
	start := strings.LastIndexAny(r.source[:offset], "\r\n") + 1
	return r.source[start:offset]
}

func (r *resolver) check(id tokenstore.TokenID, expected int) {
	token := r.store.Token(id)
	text := r.indentText(id)
	if strings.IndexFunc(text, func(c rune) bool { return !unicode.IsSpace(c) }) >= 0 {
		// the line starts inside a multi-line token
		return
	}

	line := token.Position.Line
	column := 0
	for _, c := range text {
		if c != r.opts.IndentChar {
			r.findings = append(r.findings, newFinding(MessageUnexpectedChar, line, column, column+1, map[string]string{
				"expected": quoteJSON(string(r.opts.IndentChar)),
				"actual":   quoteJSON(string(c)),
			}))
			return
		}
		column++
	}

	actual := token.Position.Column
	if actual == expected {
		return
	}
	r.findings = append(r.findings, newFinding(MessageUnexpectedIndentation, line, 0, actual, map[string]string{
		"expectedIndent":       strconv.Itoa(expected),
		"actualIndent":         strconv.Itoa(actual),
		"unit":                 r.opts.Unit(),
		"expectedIndentPlural": plural(expected),
		"actualIndentPlural":   plural(actual),
	}))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func quoteJSON(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(b)
}
