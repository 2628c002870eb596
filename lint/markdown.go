package lint

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/shibukawa/tmplindent/ast"
	"github.com/shibukawa/tmplindent/indent"
	"github.com/shibukawa/tmplindent/parser"
)

// documentSettings are the per-document overrides read from the
// `tmplindent` key of the front matter
type documentSettings struct {
	Skip         bool `yaml:"skip"`
	Indent       any  `yaml:"indent"`
	Attribute    *int `yaml:"attribute"`
	CloseBracket *int `yaml:"close_bracket"`
}

type frontMatter struct {
	Tmplindent documentSettings `yaml:"tmplindent"`
}

// parseFrontMatter splits the YAML front matter from a Markdown document. It
// returns the body and the number of lines that precede it.
func parseFrontMatter(content string) (frontMatter, string, int, error) {
	var matter frontMatter
	var start int
	switch {
	case strings.HasPrefix(content, "---\n"):
		start = 4
	case strings.HasPrefix(content, "---\r\n"):
		start = 5
	default:
		return matter, content, 0, nil
	}

	endIndex := strings.Index(content[start:], "\n---")
	if endIndex == -1 {
		return matter, "", 0, ErrInvalidFrontMatter
	}
	endIndex += start

	if err := yaml.Unmarshal([]byte(content[start:endIndex]), &matter); err != nil {
		return matter, "", 0, fmt.Errorf("%w: %w", ErrInvalidFrontMatter, err)
	}
	head := content[:endIndex+4]
	return matter, content[endIndex+4:], strings.Count(head, "\n"), nil
}

// apply merges the overrides into the options
func (s documentSettings) apply(opts indent.Options) (indent.Options, error) {
	if s.Indent == nil && s.Attribute == nil && s.CloseBracket == nil {
		return opts, nil
	}
	kind := s.Indent
	if kind == nil {
		kind = opts.IndentSize
		if opts.IndentChar == '\t' {
			kind = "tab"
		}
	}
	attribute, closeBracket := opts.Attribute, opts.CloseBracket
	if s.Attribute != nil {
		attribute = *s.Attribute
	}
	if s.CloseBracket != nil {
		closeBracket = *s.CloseBracket
	}
	return indent.ParseOptions(kind, &attribute, &closeBracket)
}

// fencedBlock is a template embedded in a Markdown document. lines maps
// every line of the snippet to its position in the document.
type fencedBlock struct {
	language string
	source   string
	lines    []indent.Location
}

// fencedBlocks collects the fenced code blocks tagged vue or html
func fencedBlocks(body []byte, lineOffset int) []fencedBlock {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	root := md.Parser().Parse(text.NewReader(body))

	var blocks []fencedBlock
	_ = gast.Walk(root, func(n gast.Node, entering bool) (gast.WalkStatus, error) {
		if !entering {
			return gast.WalkContinue, nil
		}
		code, ok := n.(*gast.FencedCodeBlock)
		if !ok {
			return gast.WalkContinue, nil
		}
		language := strings.ToLower(string(code.Language(body)))
		if language != "vue" && language != "html" {
			return gast.WalkSkipChildren, nil
		}

		block := fencedBlock{language: language}
		var source strings.Builder
		lines := code.Lines()
		for i := 0; i < lines.Len(); i++ {
			segment := lines.At(i)
			source.Write(segment.Value(body))

			lineStart := bytes.LastIndexByte(body[:segment.Start], '\n') + 1
			column := max(utf8.RuneCount(body[lineStart:segment.Start])-segment.Padding, 0)
			block.lines = append(block.lines, indent.Location{
				Line:   bytes.Count(body[:segment.Start], []byte("\n")) + 1 + lineOffset,
				Column: column,
			})
		}
		block.source = source.String()
		blocks = append(blocks, block)
		return gast.WalkSkipChildren, nil
	})
	return blocks
}

// locate moves a finding from the snippet into the document
func (b fencedBlock) locate(finding indent.Finding) indent.Finding {
	move := func(location indent.Location) indent.Location {
		if location.Line < 1 || location.Line > len(b.lines) {
			return location
		}
		origin := b.lines[location.Line-1]
		return indent.Location{Line: origin.Line, Column: origin.Column + location.Column}
	}
	finding.Range.Start = move(finding.Range.Start)
	finding.Range.End = move(finding.Range.End)
	return finding
}

// roots selects the template of a vue snippet when it has one and every
// markup element otherwise
func (b fencedBlock) roots(doc *ast.Document) []*ast.VElement {
	if b.language == "vue" {
		if roots := componentRoots(doc); len(roots) > 0 {
			return roots
		}
	}
	return templateRoots(doc)
}

func checkMarkdown(result *Result, src string, opts Options) error {
	matter, body, lineOffset, err := parseFrontMatter(src)
	if err != nil {
		return fmt.Errorf("%s: %w", result.Path, err)
	}
	if matter.Tmplindent.Skip {
		return nil
	}
	indentOptions, err := matter.Tmplindent.apply(opts.Indent)
	if err != nil {
		return fmt.Errorf("%s: %w", result.Path, err)
	}

	engine := indent.NewEngine(indentOptions, opts.Logger)
	for _, block := range fencedBlocks([]byte(body), lineOffset) {
		if err := checkDocument(engine, result, parser.Parse(block.source), block.roots, block.locate); err != nil {
			return err
		}
	}
	return nil
}
