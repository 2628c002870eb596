package tokenizer

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func tokenTypes(t *testing.T, it TokenIterator) []TokenType {
	t.Helper()
	var actualTypes []TokenType
	for token, err := range it {
		assert.NoError(t, err)
		actualTypes = append(actualTypes, token.Type)
		if token.Type == EOF {
			break
		}
	}
	return actualTypes
}

func TestTokenIterator(t *testing.T) {
	src := "<div a=\"b\">\n  {{ x }}\n</div>"
	tokenizer := NewTemplateTokenizer(src)

	expectedTypes := []TokenType{
		HTML_TAG_OPEN, HTML_IDENTIFIER, HTML_ASSOCIATION, HTML_LITERAL, HTML_TAG_CLOSE,
		HTML_WHITESPACE, MUSTACHE_START, IDENTIFIER, MUSTACHE_END, HTML_WHITESPACE,
		HTML_END_TAG_OPEN, HTML_TAG_CLOSE, EOF,
	}

	assert.Equal(t, expectedTypes, tokenTypes(t, tokenizer.Tokens()))
}

func TestIteratorEarlyTermination(t *testing.T) {
	tokenizer := NewTemplateTokenizer("<div a b c d e f></div>")

	count := 0
	for _, err := range tokenizer.Tokens() {
		assert.NoError(t, err)

		count++

		if count >= 5 {
			break
		}
	}

	assert.Equal(t, 5, count)
}

func TestMarkupTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []TokenType
	}{
		{
			name:     "self closing tag",
			input:    "<br/>",
			expected: []TokenType{HTML_TAG_OPEN, HTML_SELF_CLOSING_TAG_CLOSE, EOF},
		},
		{
			name:     "text words",
			input:    "<p>a b</p>",
			expected: []TokenType{HTML_TAG_OPEN, HTML_TAG_CLOSE, HTML_TEXT, HTML_WHITESPACE, HTML_TEXT, HTML_END_TAG_OPEN, HTML_TAG_CLOSE, EOF},
		},
		{
			name:     "attribute without value",
			input:    "<input disabled>",
			expected: []TokenType{HTML_TAG_OPEN, HTML_IDENTIFIER, HTML_TAG_CLOSE, EOF},
		},
		{
			name:     "unquoted attribute value",
			input:    "<a href=x>",
			expected: []TokenType{HTML_TAG_OPEN, HTML_IDENTIFIER, HTML_ASSOCIATION, HTML_LITERAL, HTML_TAG_CLOSE, EOF},
		},
		{
			name:     "spaces around association",
			input:    "<a href = 'x'>",
			expected: []TokenType{HTML_TAG_OPEN, HTML_IDENTIFIER, HTML_ASSOCIATION, HTML_LITERAL, HTML_TAG_CLOSE, EOF},
		},
		{
			name:  "directive value",
			input: `<a :b="c + 1"/>`,
			expected: []TokenType{
				HTML_TAG_OPEN, HTML_IDENTIFIER, HTML_ASSOCIATION,
				PUNCTUATOR, IDENTIFIER, PUNCTUATOR, NUMERIC, PUNCTUATOR,
				HTML_SELF_CLOSING_TAG_CLOSE, EOF,
			},
		},
		{
			name:     "unquoted directive value",
			input:    "<a @click=go>",
			expected: []TokenType{HTML_TAG_OPEN, HTML_IDENTIFIER, HTML_ASSOCIATION, IDENTIFIER, HTML_TAG_CLOSE, EOF},
		},
		{
			name:     "comment",
			input:    "<!-- a -->\n<p>",
			expected: []TokenType{HTML_COMMENT, HTML_WHITESPACE, HTML_TAG_OPEN, HTML_TAG_CLOSE, EOF},
		},
		{
			name:     "doctype",
			input:    "<!DOCTYPE html>",
			expected: []TokenType{HTML_COMMENT, EOF},
		},
		{
			name:     "raw text",
			input:    "<script>\nlet a = \"<b>\"\n</script>",
			expected: []TokenType{HTML_TAG_OPEN, HTML_TAG_CLOSE, HTML_RAW_TEXT, HTML_END_TAG_OPEN, HTML_TAG_CLOSE, EOF},
		},
		{
			name:     "raw text with mixed case end tag",
			input:    "<STYLE>a{}</Style>",
			expected: []TokenType{HTML_TAG_OPEN, HTML_TAG_CLOSE, HTML_RAW_TEXT, HTML_END_TAG_OPEN, HTML_TAG_CLOSE, EOF},
		},
		{
			name:     "unclosed end tag",
			input:    "<template>\n  </template",
			expected: []TokenType{HTML_TAG_OPEN, HTML_TAG_CLOSE, HTML_WHITESPACE, HTML_END_TAG_OPEN, EOF},
		},
		{
			name:     "lone braces are text",
			input:    "{{ a",
			expected: []TokenType{HTML_TEXT, HTML_WHITESPACE, HTML_TEXT, EOF},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, tokenTypes(t, NewTemplateTokenizer(test.input).Tokens()))
		})
	}
}

func TestTokenValues(t *testing.T) {
	tokens, err := NewTemplateTokenizer(`<div v-for="(x, i) in xs" class="a">{{ x }}</div>`).AllTokens()
	assert.NoError(t, err)

	var values []string
	for _, token := range tokens {
		values = append(values, token.Value)
	}
	assert.Equal(t, []string{
		"<div", "v-for", "=", `"`, "(", "x", ",", "i", ")", "in", "xs", `"`,
		"class", "=", `"a"`, ">", "{{", "x", "}}", "</div", ">",
	}, values)
	assert.Equal(t, KEYWORD, tokens[9].Type)
}

func TestTokenPosition(t *testing.T) {
	src := "<div>\n  <p>\n\t\tá b"
	tokenizer := NewTemplateTokenizer(src)

	expectedPositions := []Position{
		{Line: 1, Column: 0, Offset: 0},  // <div
		{Line: 1, Column: 4, Offset: 4},  // >
		{Line: 1, Column: 5, Offset: 5},  // \n and spaces
		{Line: 2, Column: 2, Offset: 8},  // <p
		{Line: 2, Column: 4, Offset: 10}, // >
		{Line: 2, Column: 5, Offset: 11}, // \n and tabs
		{Line: 3, Column: 2, Offset: 14}, // á
		{Line: 3, Column: 3, Offset: 16}, // space
		{Line: 3, Column: 4, Offset: 17}, // b
		{Line: 3, Column: 5, Offset: 18}, // EOF
	}

	var actualPositions []Position
	for token, err := range tokenizer.Tokens() {
		assert.NoError(t, err)
		actualPositions = append(actualPositions, token.Position)
		if token.Type == EOF {
			break
		}
	}

	assert.Equal(t, expectedPositions, actualPositions)
}

func TestEmbeddedScriptError(t *testing.T) {
	tokens, err := NewTemplateTokenizer("<p>{{ 'abc }}</p>").AllTokens()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnterminatedString))

	var types []TokenType
	for _, token := range tokens {
		types = append(types, token.Type)
	}
	assert.Equal(t, []TokenType{HTML_TAG_OPEN, HTML_TAG_CLOSE, MUSTACHE_START, HTML_TEXT, MUSTACHE_END, HTML_END_TAG_OPEN, HTML_TAG_CLOSE}, types)
	assert.Equal(t, "'abc", tokens[3].Value)
}

func TestIsDirectiveName(t *testing.T) {
	assert.True(t, IsDirectiveName("v-if"))
	assert.True(t, IsDirectiveName(":value"))
	assert.True(t, IsDirectiveName("@click.stop"))
	assert.True(t, IsDirectiveName("#default"))
	assert.False(t, IsDirectiveName("class"))
}
