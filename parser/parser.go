// Package parser builds the template syntax tree: elements, attributes,
// directives, interpolations and the script expressions embedded in them.
package parser

import (
	"errors"
	"strings"

	"github.com/shibukawa/tmplindent/ast"
	"github.com/shibukawa/tmplindent/tokenizer"
)

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true, "hr": true, "img": true,
	"input": true, "link": true, "meta": true, "param": true, "source": true, "track": true, "wbr": true,
}

// implicitlyClosed maps an element to the group of elements whose start tag
// closes it
var implicitlyClosed = map[string]string{
	"li":     "li",
	"option": "option",
	"tr":     "tr",
	"td":     "cell",
	"th":     "cell",
	"dt":     "term",
	"dd":     "term",
	"p":      "p",
}

// Parse tokenizes and parses a template source. Parsing never fails:
// tokenizer and script errors are collected in Document.Errors and the
// affected expressions are left empty.
func Parse(src string) *ast.Document {
	doc := &ast.Document{Source: src}
	for token, err := range tokenizer.NewTemplateTokenizer(src).Tokens() {
		if err != nil {
			doc.Errors = append(doc.Errors, err)
			continue
		}
		if token.Type != tokenizer.EOF {
			doc.Tokens = append(doc.Tokens, token)
		}
	}

	b := &treeBuilder{doc: doc, tokens: doc.Tokens}
	doc.Fragment = b.build()
	ast.LinkParents(doc.Fragment)
	return doc
}

type treeBuilder struct {
	doc      *ast.Document
	tokens   []tokenizer.Token
	pos      int
	fragment *ast.VDocumentFragment
	stack    []*ast.VElement
}

func (b *treeBuilder) eof() bool {
	return b.pos >= len(b.tokens)
}

func (b *treeBuilder) peek() tokenizer.Token {
	if b.eof() {
		return tokenizer.Token{Type: tokenizer.EOF}
	}
	return b.tokens[b.pos]
}

func (b *treeBuilder) build() *ast.VDocumentFragment {
	b.fragment = &ast.VDocumentFragment{Base: ast.NewBase(ast.KindVDocumentFragment, 0, len(b.doc.Source))}

	for !b.eof() {
		token := b.peek()
		switch token.Type {
		case tokenizer.HTML_TAG_OPEN:
			b.startElement()
		case tokenizer.HTML_END_TAG_OPEN:
			b.endElement()
		case tokenizer.HTML_TEXT, tokenizer.HTML_WHITESPACE:
			b.text()
		case tokenizer.MUSTACHE_START:
			b.mustache()
		case tokenizer.HTML_RAW_TEXT:
			b.pos++
			b.appendChild(&ast.VRawText{
				Base:  ast.NewBase(ast.KindVRawText, token.Position.Offset, token.End.Offset),
				Value: token.Value,
			})
		default:
			// comments and tokens of broken tags
			b.pos++
		}
	}

	for len(b.stack) > 0 {
		b.closeTop()
	}
	return b.fragment
}

func (b *treeBuilder) appendChild(n ast.Node) {
	if len(b.stack) == 0 {
		b.fragment.Children = append(b.fragment.Children, n)
		return
	}
	top := b.stack[len(b.stack)-1]
	top.Children = append(top.Children, n)
}

// closeTop pops the innermost element without an end tag. It ends at its
// last child or its start tag.
func (b *treeBuilder) closeTop() {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	top.Span.End = top.StartTag.Span.End
	if len(top.Children) > 0 {
		top.Span.End = top.Children[len(top.Children)-1].Range().End
	}
}

func isTagClose(t tokenizer.TokenType) bool {
	return t == tokenizer.HTML_TAG_CLOSE || t == tokenizer.HTML_SELF_CLOSING_TAG_CLOSE
}

// inTag reports whether the token type can appear between a tag opening and
// its closing bracket
func inTag(t tokenizer.TokenType) bool {
	switch t {
	case tokenizer.EOF, tokenizer.HTML_TAG_OPEN, tokenizer.HTML_END_TAG_OPEN, tokenizer.HTML_WHITESPACE,
		tokenizer.HTML_COMMENT, tokenizer.HTML_RAW_TEXT, tokenizer.MUSTACHE_START, tokenizer.MUSTACHE_END:
		return false
	}
	return true
}

func (b *treeBuilder) startElement() {
	open := b.peek()
	b.pos++
	rawName := strings.TrimPrefix(open.Value, "<")
	name := tokenizer.FoldName(rawName)

	if len(b.stack) > 0 {
		top := b.stack[len(b.stack)-1]
		if group, ok := implicitlyClosed[top.Name]; ok && group == implicitlyClosed[name] {
			b.closeTop()
		}
	}

	startTag := &ast.VStartTag{}
	end := open.End.Offset
	for !b.eof() && !isTagClose(b.peek().Type) && inTag(b.peek().Type) {
		if attr := b.attribute(); attr != nil {
			startTag.Attributes = append(startTag.Attributes, attr)
			end = attr.Span.End
		}
	}
	if closing := b.peek(); isTagClose(closing.Type) {
		b.pos++
		end = closing.End.Offset
		startTag.SelfClosing = closing.Type == tokenizer.HTML_SELF_CLOSING_TAG_CLOSE
	}
	startTag.Base = ast.NewBase(ast.KindVStartTag, open.Position.Offset, end)

	element := &ast.VElement{
		Base:     ast.NewBase(ast.KindVElement, open.Position.Offset, end),
		Name:     name,
		RawName:  rawName,
		StartTag: startTag,
	}
	b.appendChild(element)
	if !startTag.SelfClosing && !voidElements[name] {
		b.stack = append(b.stack, element)
	}
}

func (b *treeBuilder) endElement() {
	open := b.peek()
	b.pos++
	name := tokenizer.FoldName(strings.TrimPrefix(open.Value, "</"))

	end := open.End.Offset
	for !b.eof() && inTag(b.peek().Type) {
		token := b.peek()
		b.pos++
		end = token.End.Offset
		if isTagClose(token.Type) {
			break
		}
	}

	match := -1
	for i := len(b.stack) - 1; i >= 0; i-- {
		if b.stack[i].Name == name {
			match = i
			break
		}
	}
	if match < 0 {
		return
	}

	for len(b.stack) > match+1 {
		b.closeTop()
	}
	element := b.stack[match]
	b.stack = b.stack[:match]
	element.EndTag = &ast.VEndTag{Base: ast.NewBase(ast.KindVEndTag, open.Position.Offset, end)}
	element.Span.End = end
}

// text joins consecutive text and whitespace tokens into one node
func (b *treeBuilder) text() {
	first := b.peek()
	last := first
	for !b.eof() && (b.peek().Type == tokenizer.HTML_TEXT || b.peek().Type == tokenizer.HTML_WHITESPACE) {
		last = b.peek()
		b.pos++
	}
	b.appendChild(&ast.VText{
		Base:  ast.NewBase(ast.KindVText, first.Position.Offset, last.End.Offset),
		Value: b.doc.Source[first.Position.Offset:last.End.Offset],
	})
}

func (b *treeBuilder) mustache() {
	open := b.peek()
	b.pos++

	start := b.pos
	for !b.eof() && b.peek().Type != tokenizer.MUSTACHE_END {
		b.pos++
	}
	script := b.tokens[start:b.pos]

	end := open.End.Offset
	if len(script) > 0 {
		end = script[len(script)-1].End.Offset
	}
	if closing := b.peek(); closing.Type == tokenizer.MUSTACHE_END {
		b.pos++
		end = closing.End.Offset
	}

	container := &ast.VExpressionContainer{Base: ast.NewBase(ast.KindVExpressionContainer, open.Position.Offset, end)}
	b.setExpression(container, "", script)
	b.appendChild(container)
}

func (b *treeBuilder) setExpression(container *ast.VExpressionContainer, directive string, script []tokenizer.Token) {
	expr, err := parseDirectiveValue(directive, script)
	if err != nil {
		container.Err = err
		// tokenizer errors are already recorded
		if !errors.Is(err, ErrScriptTokens) {
			b.doc.Errors = append(b.doc.Errors, err)
		}
		return
	}
	container.Expression = expr
}

// attribute parses one attribute of a start tag. Tokens that cannot start
// an attribute are skipped and yield nil.
func (b *treeBuilder) attribute() *ast.VAttribute {
	name := b.peek()
	b.pos++
	if name.Type != tokenizer.HTML_IDENTIFIER {
		return nil
	}

	attr := &ast.VAttribute{Directive: tokenizer.IsDirectiveName(name.Value)}
	var directive string
	if attr.Directive {
		key := parseDirectiveKey(name)
		directive = key.Name
		attr.Key = key
	} else {
		attr.Key = &ast.VIdentifier{
			Base: ast.NewBase(ast.KindVIdentifier, name.Position.Offset, name.End.Offset),
			Name: tokenizer.FoldName(name.Value),
		}
	}
	end := name.End.Offset

	if b.peek().Type == tokenizer.HTML_ASSOCIATION {
		end = b.peek().End.Offset
		b.pos++

		switch value := b.peek(); {
		case value.Type == tokenizer.HTML_LITERAL:
			b.pos++
			end = value.End.Offset
			attr.Value = &ast.VLiteral{
				Base:  ast.NewBase(ast.KindVLiteral, value.Position.Offset, value.End.Offset),
				Value: unquote(value.Value),
			}
		case attr.Directive && inTag(value.Type) && !isTagClose(value.Type) && value.Type != tokenizer.HTML_IDENTIFIER:
			container := b.directiveValue(directive)
			end = container.Span.End
			attr.Value = container
		}
	}

	attr.Base = ast.NewBase(ast.KindVAttribute, name.Position.Offset, end)
	return attr
}

func isQuote(token tokenizer.Token) bool {
	return token.Type == tokenizer.PUNCTUATOR && (token.Value == `"` || token.Value == "'")
}

// directiveValue reads a quoted or unquoted directive value
func (b *treeBuilder) directiveValue(directive string) *ast.VExpressionContainer {
	first := b.peek()
	quoted := isQuote(first)
	if quoted {
		b.pos++
	}

	start := b.pos
	for !b.eof() {
		token := b.peek()
		if quoted && token.Type == tokenizer.PUNCTUATOR && token.Value == first.Value {
			break
		}
		if !inTag(token.Type) || isTagClose(token.Type) || token.Type == tokenizer.HTML_IDENTIFIER {
			break
		}
		b.pos++
	}
	script := b.tokens[start:b.pos]

	end := first.End.Offset
	if len(script) > 0 {
		end = script[len(script)-1].End.Offset
	}
	if quoted && b.peek().Type == tokenizer.PUNCTUATOR && b.peek().Value == first.Value {
		end = b.peek().End.Offset
		b.pos++
	}

	container := &ast.VExpressionContainer{Base: ast.NewBase(ast.KindVExpressionContainer, first.Position.Offset, end)}
	b.setExpression(container, directive, script)
	return container
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return strings.TrimLeft(s, `"'`)
}
