package tokenizer

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/stretchr/testify/require"
)

func scriptTokens(t *testing.T, src string) []Token {
	t.Helper()
	tokens, err := NewScriptTokenizer(src).AllTokens()
	require.NoError(t, err)
	return tokens
}

func TestScriptTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []TokenType
	}{
		{
			name:     "keywords and literals",
			input:    "if (a === null) return true",
			expected: []TokenType{KEYWORD, PUNCTUATOR, IDENTIFIER, PUNCTUATOR, NULL, PUNCTUATOR, KEYWORD, BOOLEAN},
		},
		{
			name:     "contextual words are identifiers",
			input:    "async of get",
			expected: []TokenType{IDENTIFIER, IDENTIFIER, IDENTIFIER},
		},
		{
			name:     "division",
			input:    "a / b / c",
			expected: []TokenType{IDENTIFIER, PUNCTUATOR, IDENTIFIER, PUNCTUATOR, IDENTIFIER},
		},
		{
			name:     "regular expression",
			input:    "a = /x[/]y/g.test(s)",
			expected: []TokenType{IDENTIFIER, PUNCTUATOR, REGEXP, PUNCTUATOR, IDENTIFIER, PUNCTUATOR, IDENTIFIER, PUNCTUATOR},
		},
		{
			name:     "regular expression after keyword",
			input:    "return /a/",
			expected: []TokenType{KEYWORD, REGEXP},
		},
		{
			name:     "comments",
			input:    "a // x\n/* y */ b",
			expected: []TokenType{IDENTIFIER, LINE_COMMENT, BLOCK_COMMENT, IDENTIFIER},
		},
		{
			name:     "numbers",
			input:    "0x1F 1_000 .5 1e10 10n",
			expected: []TokenType{NUMERIC, NUMERIC, NUMERIC, NUMERIC, NUMERIC},
		},
		{
			name:     "optional chaining versus conditional",
			input:    "a?.b ? c?.5 : d",
			expected: []TokenType{IDENTIFIER, PUNCTUATOR, IDENTIFIER, PUNCTUATOR, IDENTIFIER, PUNCTUATOR, NUMERIC, PUNCTUATOR, IDENTIFIER},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var actualTypes []TokenType
			for _, token := range scriptTokens(t, test.input) {
				actualTypes = append(actualTypes, token.Type)
			}
			assert.Equal(t, test.expected, actualTypes)
		})
	}
}

func TestScriptPunctuators(t *testing.T) {
	var values []string
	for _, token := range scriptTokens(t, "a>>>=b...c?.d??=e=>f") {
		values = append(values, token.Value)
	}
	assert.Equal(t, []string{"a", ">>>=", "b", "...", "c", "?.", "d", "??=", "e", "=>", "f"}, values)
}

func TestTemplateLiteral(t *testing.T) {
	var values []string
	for _, token := range scriptTokens(t, "`a${b}c${ {k: 1} }e`") {
		values = append(values, token.Value)
	}
	assert.Equal(t, []string{"`a${", "b", "}c${", "{", "k", ":", "1", "}", "}e`"}, values)
}

func TestScriptTokenizerAt(t *testing.T) {
	src := "<p :a=\"x +\n  y\">"
	start := Position{Line: 1, Column: 7, Offset: 7}
	tokens, err := NewScriptTokenizerAt(src, start, len(src)-2).AllTokens()
	assert.NoError(t, err)
	assert.Equal(t, 3, len(tokens))
	assert.Equal(t, Position{Line: 1, Column: 7, Offset: 7}, tokens[0].Position)
	assert.Equal(t, Position{Line: 2, Column: 2, Offset: 13}, tokens[2].Position)
	assert.Equal(t, Position{Line: 2, Column: 3, Offset: 14}, tokens[2].End)
}

func TestScriptErrorHandling(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedErr error
	}{
		{
			name:        "unclosed string",
			input:       "a + 'unclosed",
			expectedErr: ErrUnterminatedString,
		},
		{
			name:        "unclosed block comment",
			input:       "a /* unclosed comment",
			expectedErr: ErrUnterminatedComment,
		},
		{
			name:        "unclosed template",
			input:       "`abc${x}",
			expectedErr: ErrUnterminatedTemplate,
		},
		{
			name:        "invalid numeric format",
			input:       "123e",
			expectedErr: ErrInvalidNumber,
		},
		{
			name:        "unexpected character",
			input:       "a \\ b",
			expectedErr: ErrUnexpectedCharacter,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewScriptTokenizer(test.input).AllTokens()
			assert.Error(t, err)
			assert.True(t, errors.Is(err, test.expectedErr))
		})
	}
}
