package tokenizer

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
)

// TokenIterator uses Go 1.24 iterator pattern
type TokenIterator iter.Seq2[Token, error]

// rawTextElements hold text that is never tokenized as markup
var rawTextElements = map[string]bool{
	"script": true,
	"style":  true,
}

var fold = cases.Fold()

// FoldName case-folds a tag name for comparison.
func FoldName(name string) string {
	return fold.String(name)
}

// IsDirectiveName reports whether an attribute with the name carries a script
// expression as its value.
func IsDirectiveName(name string) bool {
	return strings.HasPrefix(name, "v-") ||
		strings.HasPrefix(name, ":") ||
		strings.HasPrefix(name, "@") ||
		strings.HasPrefix(name, "#")
}

// TemplateTokenizer is a tokenizer for template markup that returns an
// iterator. Directive values and mustache interpolations are split into
// script tokens in place, so the resulting stream is the flat token list of
// the whole document in source order.
type TemplateTokenizer struct {
	input string
}

// NewTemplateTokenizer creates a new TemplateTokenizer
func NewTemplateTokenizer(input string) *TemplateTokenizer {
	return &TemplateTokenizer{input: input}
}

// Tokens returns an iterator of tokens. Errors of embedded scripts are
// yielded and the tokenization continues; the EOF token is yielded last.
func (t *TemplateTokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		tokenizer := &templateTokenizer{
			scanner: newScanner(t.input, Position{Line: 1}, len(t.input)),
		}

		for {
			token, err := tokenizer.next()
			if err != nil {
				if !yield(Token{}, err) {
					return
				}
				continue
			}

			if token.Type == EOF {
				yield(token, nil)
				return
			}

			if !yield(token, nil) {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice. The EOF token is not included.
// Tokenization continues past embedded script errors; the last one is returned.
func (t *TemplateTokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, 64)
	var lastError error

	for token, err := range t.Tokens() {
		if err != nil {
			lastError = err
			continue
		}
		if token.Type == EOF {
			break
		}
		tokens = append(tokens, token)
	}

	return tokens, lastError
}

type queued struct {
	token Token
	err   error
}

// Internal tokenizer implementation
type templateTokenizer struct {
	*scanner
	queue   []queued
	inTag   bool
	endTag  bool
	tagName string
	// closing tag name while inside a raw text element
	rawEnd string
}

func (t *templateTokenizer) next() (Token, error) {
	for len(t.queue) == 0 {
		if t.eof() {
			return t.newToken(EOF, t.pos), nil
		}
		if t.inTag {
			t.readInTag()
		} else {
			t.readData()
		}
	}
	item := t.queue[0]
	t.queue = t.queue[1:]
	return item.token, item.err
}

func (t *templateTokenizer) push(token Token) {
	t.queue = append(t.queue, queued{token: token})
}

func (t *templateTokenizer) pushError(err error) {
	t.queue = append(t.queue, queued{err: err})
}

// readData reads text, comments and tag openings
func (t *templateTokenizer) readData() {
	if t.rawEnd != "" {
		t.readRawText()
		return
	}

	switch {
	case t.hasPrefix("<!--"):
		t.readComment()
	case t.current == '<' && (t.peekChar() == '!' || t.peekChar() == '?'):
		t.readBogusComment()
	case t.current == '<' && t.peekChar() == '/' && isTagNameStart(t.peekAt(2)):
		t.readTagOpen(HTML_END_TAG_OPEN, 2)
	case t.current == '<' && isTagNameStart(t.peekChar()):
		t.readTagOpen(HTML_TAG_OPEN, 1)
	case isWhitespace(t.current):
		start := t.pos
		for isWhitespace(t.current) {
			t.readChar()
		}
		t.push(t.newToken(HTML_WHITESPACE, start))
	case t.hasPrefix("{{") && t.indexFrom(t.pos.Offset+2, "}}") >= 0:
		t.readMustache()
	default:
		t.readText()
	}
}

// readText reads a run of text up to whitespace, a tag or an interpolation
func (t *templateTokenizer) readText() {
	start := t.pos
	t.readChar()
	for !t.eof() && !isWhitespace(t.current) && t.current != '<' && !t.hasPrefix("{{") {
		t.readChar()
	}
	t.push(t.newToken(HTML_TEXT, start))
}

// readComment reads <!-- comments -->. An unterminated comment runs to the end.
func (t *templateTokenizer) readComment() {
	start := t.pos
	end := t.indexFrom(t.pos.Offset+4, "-->")
	if end < 0 {
		t.advanceTo(t.end)
	} else {
		t.advanceTo(end + 3)
	}
	t.push(t.newToken(HTML_COMMENT, start))
}

// readBogusComment reads <!DOCTYPE> and <? ?> style declarations
func (t *templateTokenizer) readBogusComment() {
	start := t.pos
	end := t.indexFrom(t.pos.Offset, ">")
	if end < 0 {
		t.advanceTo(t.end)
	} else {
		t.advanceTo(end + 1)
	}
	t.push(t.newToken(HTML_COMMENT, start))
}

func (t *templateTokenizer) readTagOpen(tokenType TokenType, prefix int) {
	start := t.pos
	t.advance(prefix)
	nameStart := t.pos.Offset
	for !t.eof() && !isWhitespace(t.current) && t.current != '>' && t.current != '/' && t.current != '<' {
		t.readChar()
	}
	t.tagName = FoldName(t.input[nameStart:t.pos.Offset])
	t.inTag = true
	t.endTag = tokenType == HTML_END_TAG_OPEN
	t.push(t.newToken(tokenType, start))
}

// readInTag reads attributes and the closing bracket of a tag
func (t *templateTokenizer) readInTag() {
	for isWhitespace(t.current) {
		t.readChar()
	}

	switch {
	case t.eof():
		t.inTag = false
	case t.current == '>':
		start := t.pos
		t.readChar()
		t.push(t.newToken(HTML_TAG_CLOSE, start))
		t.closeTag()
	case t.current == '/' && t.peekChar() == '>':
		start := t.pos
		t.advance(2)
		t.push(t.newToken(HTML_SELF_CLOSING_TAG_CLOSE, start))
		t.inTag = false
	case t.current == '/':
		t.readChar()
	case t.current == '<':
		// the tag was never closed
		t.inTag = false
	case t.current == '"' || t.current == '\'':
		t.readAttributeValue(false)
	default:
		t.readAttribute()
	}
}

func (t *templateTokenizer) closeTag() {
	t.inTag = false
	if !t.endTag && rawTextElements[t.tagName] {
		t.rawEnd = "</" + t.tagName
	}
}

func (t *templateTokenizer) readAttribute() {
	if t.current == '=' {
		// stray "=" without a name
		t.readChar()
		return
	}
	start := t.pos
	for !t.eof() && !isWhitespace(t.current) && !strings.ContainsRune("=>/<\"'", t.current) {
		t.readChar()
	}
	name := t.newToken(HTML_IDENTIFIER, start)
	t.push(name)

	// look for "=" after optional whitespace
	save := *t.scanner
	for isWhitespace(t.current) {
		t.readChar()
	}
	if t.current != '=' {
		*t.scanner = save
		return
	}
	assoc := t.pos
	t.readChar()
	t.push(t.newToken(HTML_ASSOCIATION, assoc))
	for isWhitespace(t.current) {
		t.readChar()
	}
	if t.eof() || t.current == '>' {
		return
	}
	t.readAttributeValue(IsDirectiveName(name.Value))
}

// readAttributeValue reads a quoted or unquoted attribute value. Directive
// values are split into script tokens surrounded by the quote punctuators.
func (t *templateTokenizer) readAttributeValue(directive bool) {
	start := t.pos
	quote := t.current

	var end, valueEnd int
	if quote == '"' || quote == '\'' {
		valueEnd = t.indexFrom(t.pos.Offset+1, string(quote))
		if valueEnd < 0 {
			valueEnd = t.end
			end = t.end
		} else {
			end = valueEnd + 1
		}
	} else {
		quote = 0
		valueEnd = t.end
		if i := strings.IndexAny(t.input[t.pos.Offset:t.end], " \t\n\r\f>"); i >= 0 {
			valueEnd = t.pos.Offset + i
		}
		end = valueEnd
	}

	if !directive {
		t.advanceTo(end)
		t.push(t.newToken(HTML_LITERAL, start))
		return
	}

	if quote != 0 {
		t.readChar()
		t.push(t.newToken(PUNCTUATOR, start))
	}
	t.readScript(valueEnd)
	if quote != 0 && end > valueEnd {
		closing := t.pos
		t.readChar()
		t.push(t.newToken(PUNCTUATOR, closing))
	}
}

// readMustache reads {{ expression }}
func (t *templateTokenizer) readMustache() {
	start := t.pos
	t.advance(2)
	t.push(t.newToken(MUSTACHE_START, start))

	end := t.indexFrom(t.pos.Offset, "}}")
	t.readScript(end)

	closing := t.pos
	t.advance(2)
	t.push(t.newToken(MUSTACHE_END, closing))
}

// readScript tokenizes the current position up to end as script. When the
// script cannot be tokenized, the error is queued and the trimmed range
// becomes a single HTML_TEXT token.
func (t *templateTokenizer) readScript(end int) {
	tokens, err := NewScriptTokenizerAt(t.input, t.pos, end).AllTokens()
	if err == nil {
		for _, token := range tokens {
			t.push(token)
		}
		t.advanceTo(end)
		return
	}

	t.pushError(err)
	for t.pos.Offset < end && isWhitespace(t.current) {
		t.readChar()
	}
	if t.pos.Offset < end {
		start := t.pos
		trimmed := strings.TrimRightFunc(t.input[start.Offset:end], isWhitespace)
		t.advanceTo(start.Offset + len(trimmed))
		t.push(t.newToken(HTML_TEXT, start))
	}
	t.advanceTo(end)
}

// readRawText reads the content of a raw text element as one token
func (t *templateTokenizer) readRawText() {
	start := t.pos
	end := t.end
	if i := indexFold(t.input[t.pos.Offset:t.end], t.rawEnd); i >= 0 {
		end = t.pos.Offset + i
	}
	t.rawEnd = ""
	if end == start.Offset {
		return
	}
	t.advanceTo(end)
	t.push(t.newToken(HTML_RAW_TEXT, start))
}

// indexFold finds substr in s ignoring case
func indexFold(s, substr string) int {
	for i := range s {
		if len(s)-i < len(substr) {
			break
		}
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}

func isTagNameStart(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
