// Package lint applies the indentation engine to files: single-file
// components, plain templates and the template blocks of Markdown
// documents.
package lint

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/shibukawa/tmplindent/ast"
	"github.com/shibukawa/tmplindent/indent"
	"github.com/shibukawa/tmplindent/parser"
)

// Options controls how files are checked
type Options struct {
	Indent indent.Options
	// Markdown enables checking fenced vue and html blocks of .md files
	Markdown bool
	// Concurrency limits the files checked at once. Zero uses GOMAXPROCS.
	Concurrency int
	Logger      *log.Logger
}

// DefaultOptions returns the options of a plain run
func DefaultOptions() Options {
	return Options{Indent: indent.DefaultOptions(), Markdown: true}
}

// Result holds the findings of one file
type Result struct {
	Path     string           `json:"path" yaml:"path"`
	Findings []indent.Finding `json:"findings" yaml:"findings"`
	// Errors are syntax errors of embedded expressions. Lines of broken
	// expressions are not checked.
	Errors []error `json:"-" yaml:"-"`
}

// Kind is the way a file is read
type Kind int

const (
	KindUnsupported Kind = iota
	KindComponent        // .vue: only the top-level template is checked
	KindTemplate         // .html: every top-level element but script and style
	KindMarkdown         // .md: fenced vue and html blocks
)

// KindOf classifies a file by its extension
func KindOf(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vue":
		return KindComponent
	case ".html", ".htm":
		return KindTemplate
	case ".md", ".markdown":
		return KindMarkdown
	}
	return KindUnsupported
}

// Source checks the content of a file. The name selects the file kind.
func Source(name, src string, opts Options) (*Result, error) {
	engine := indent.NewEngine(opts.Indent, opts.Logger)
	result := &Result{Path: name}

	var err error
	switch kind := KindOf(name); {
	case kind == KindComponent:
		err = checkDocument(engine, result, parser.Parse(src), componentRoots, nil)
	case kind == KindTemplate:
		err = checkDocument(engine, result, parser.Parse(src), templateRoots, nil)
	case kind == KindMarkdown && opts.Markdown:
		err = checkMarkdown(result, src, opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, name)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// File reads and checks one file
func File(path string, opts Options) (*Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadFile, path, err)
	}
	return Source(path, string(content), opts)
}

// Files checks files concurrently. Results are sorted by path. The first
// failing file cancels the rest.
func Files(ctx context.Context, paths []string, opts Options) ([]*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	results := make([]*Result, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := File(path, opts)
			if err != nil {
				return err
			}
			logger.Debug("checked", "path", path, "findings", len(result.Findings))
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b *Result) int {
		return strings.Compare(a.Path, b.Path)
	})
	return results, nil
}

type rootSelector func(doc *ast.Document) []*ast.VElement

// Roots returns the top-level elements checked in a document of the kind.
// Markdown documents have no roots of their own.
func Roots(kind Kind, doc *ast.Document) []*ast.VElement {
	switch kind {
	case KindComponent:
		return componentRoots(doc)
	case KindTemplate:
		return templateRoots(doc)
	}
	return nil
}

func componentRoots(doc *ast.Document) []*ast.VElement {
	var roots []*ast.VElement
	for _, root := range doc.Roots() {
		if root.Name == "template" {
			roots = append(roots, root)
		}
	}
	return roots
}

func templateRoots(doc *ast.Document) []*ast.VElement {
	var roots []*ast.VElement
	for _, root := range doc.Roots() {
		if !isRawTextElement(root) {
			roots = append(roots, root)
		}
	}
	return roots
}

func isRawTextElement(element *ast.VElement) bool {
	if element.Name == "script" || element.Name == "style" {
		return true
	}
	for _, child := range element.Children {
		if child.Kind() == ast.KindVRawText {
			return true
		}
	}
	return false
}

// checkDocument appends the findings of the selected roots. The mapper, when
// given, moves positions from the document into the enclosing file.
func checkDocument(engine *indent.Engine, result *Result, doc *ast.Document, selectRoots rootSelector, mapper func(indent.Finding) indent.Finding) error {
	findings, err := engine.CheckRoots(doc, selectRoots(doc))
	if err != nil {
		return fmt.Errorf("%s: %w", result.Path, err)
	}
	for _, finding := range findings {
		if mapper != nil {
			finding = mapper(finding)
		}
		result.Findings = append(result.Findings, finding)
	}
	result.Errors = append(result.Errors, doc.Errors...)
	return nil
}
