// Package indent infers the expected indentation of a template from its
// syntax tree and reports the lines that deviate from it.
//
// Every token is related to an earlier base token by a number of
// indentation levels. The relations are built by one layout rule per node
// kind and resolved line by line: the expected indentation of a line is the
// smallest indentation implied by its tokens whose base lines are already
// resolved.
package indent

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/shibukawa/tmplindent/ast"
	"github.com/shibukawa/tmplindent/tokenstore"
)

// Engine checks documents with fixed options
type Engine struct {
	opts   Options
	logger *log.Logger
}

// NewEngine creates an engine. A nil logger discards the relation traces.
func NewEngine(opts Options, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{opts: opts, logger: logger}
}

// Options returns the options of the engine
func (e *Engine) Options() Options {
	return e.opts
}

// Check validates every top-level element of the document
func (e *Engine) Check(doc *ast.Document) ([]Finding, error) {
	return e.CheckRoots(doc, doc.Roots())
}

// CheckRoots validates the given top-level elements of the document.
// Findings are ordered by line.
func (e *Engine) CheckRoots(doc *ast.Document, roots []*ast.VElement) (findings []Finding, err error) {
	defer recoverContract(&err)

	store := tokenstore.New(doc.Tokens)
	for _, root := range roots {
		b := newBuilder(store, e.opts)
		b.build(root)
		e.logger.Debug("relations built", "root", root.Name, "tokens", b.graph.Len())

		r := newResolver(store, b.graph, e.opts, doc.Source, e.logger)
		r.resolve(root)
		findings = append(findings, r.findings...)
	}
	return findings, nil
}

// Offset describes the relation of one token for inspection
type Offset struct {
	Line     int    `json:"line" yaml:"line"`
	Column   int    `json:"column" yaml:"column"`
	Token    string `json:"token" yaml:"token"`
	Known    bool   `json:"known" yaml:"known"`
	Base     string `json:"base,omitempty" yaml:"base,omitempty"`
	BaseLine int    `json:"baseLine,omitempty" yaml:"base_line,omitempty"`
	Offset   int    `json:"offset" yaml:"offset"`
	Exact    bool   `json:"exact,omitempty" yaml:"exact,omitempty"`
}

// Offsets lists the relation of every token of the top-level elements
func (e *Engine) Offsets(doc *ast.Document, roots []*ast.VElement) (offsets []Offset, err error) {
	defer recoverContract(&err)

	store := tokenstore.New(doc.Tokens)
	for _, root := range roots {
		b := newBuilder(store, e.opts)
		b.build(root)
		newResolver(store, b.graph, e.opts, doc.Source, e.logger).anchor(root)

		span := root.Range()
		for _, line := range store.LinesBetween(span.Start, span.End) {
			for _, id := range line {
				token := store.Token(id)
				entry := Offset{Line: token.Position.Line, Column: token.Position.Column, Token: token.Value}
				if relation, ok := b.graph.Get(id); ok {
					base := store.Token(relation.Base)
					entry.Known = true
					entry.Base = base.Value
					entry.BaseLine = base.Position.Line
					entry.Offset = relation.Offset
					entry.Exact = relation.Offset == Exact
				}
				offsets = append(offsets, entry)
			}
		}
	}
	return offsets, nil
}

// recoverContract turns a contract violation raised while building or
// resolving the relations into an error. Other panics propagate.
func recoverContract(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(error); ok && (errors.Is(e, ErrMissingToken) || errors.Is(e, ErrUnresolvedBase) || errors.Is(e, ErrUnclassifiedKind)) {
		*err = e
		return
	}
	panic(r)
}

// Check validates a document with the given options
func Check(doc *ast.Document, opts Options) ([]Finding, error) {
	return NewEngine(opts, nil).Check(doc)
}
