package tokenizer

import "errors"

// Sentinel errors
var (
	ErrUnexpectedCharacter  = errors.New("unexpected character")
	ErrUnterminatedString   = errors.New("unterminated string literal")
	ErrUnterminatedComment  = errors.New("unterminated comment")
	ErrUnterminatedTemplate = errors.New("unterminated template literal")
	ErrUnterminatedRegExp   = errors.New("unterminated regular expression")
	ErrInvalidNumber        = errors.New("invalid number format")
)

// TokenType represents the type of a token
type TokenType int

const (
	// Basic tokens
	EOF TokenType = iota

	// Markup tokens
	HTML_TAG_OPEN               // <div
	HTML_END_TAG_OPEN           // </div
	HTML_TAG_CLOSE              // >
	HTML_SELF_CLOSING_TAG_CLOSE // />
	HTML_IDENTIFIER             // attribute name
	HTML_ASSOCIATION            // = between attribute name and value
	HTML_LITERAL                // attribute value, quotes included
	HTML_TEXT                   // a run of non-whitespace text
	HTML_WHITESPACE             // a run of whitespace inside text
	HTML_COMMENT                // <!-- comment -->
	HTML_RAW_TEXT               // content of <script>, <style>
	MUSTACHE_START              // {{
	MUSTACHE_END                // }}

	// Script tokens
	PUNCTUATOR
	KEYWORD
	IDENTIFIER
	NUMERIC
	STRING
	TEMPLATE // `head${, }middle${, }tail`
	REGEXP
	BOOLEAN
	NULL

	// Script comments
	LINE_COMMENT  // // comment
	BLOCK_COMMENT // /* comment */
)

// String returns the string representation of TokenType.
// The names follow the token type names used by template linters.
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case HTML_TAG_OPEN:
		return "HTMLTagOpen"
	case HTML_END_TAG_OPEN:
		return "HTMLEndTagOpen"
	case HTML_TAG_CLOSE:
		return "HTMLTagClose"
	case HTML_SELF_CLOSING_TAG_CLOSE:
		return "HTMLSelfClosingTagClose"
	case HTML_IDENTIFIER:
		return "HTMLIdentifier"
	case HTML_ASSOCIATION:
		return "HTMLAssociation"
	case HTML_LITERAL:
		return "HTMLLiteral"
	case HTML_TEXT:
		return "HTMLText"
	case HTML_WHITESPACE:
		return "HTMLWhitespace"
	case HTML_COMMENT:
		return "HTMLComment"
	case HTML_RAW_TEXT:
		return "HTMLRawText"
	case MUSTACHE_START:
		return "VExpressionStart"
	case MUSTACHE_END:
		return "VExpressionEnd"
	case PUNCTUATOR:
		return "Punctuator"
	case KEYWORD:
		return "Keyword"
	case IDENTIFIER:
		return "Identifier"
	case NUMERIC:
		return "Numeric"
	case STRING:
		return "String"
	case TEMPLATE:
		return "Template"
	case REGEXP:
		return "RegularExpression"
	case BOOLEAN:
		return "Boolean"
	case NULL:
		return "Null"
	case LINE_COMMENT:
		return "LineComment"
	case BLOCK_COMMENT:
		return "BlockComment"
	default:
		return "UNKNOWN"
	}
}

// IsComment reports whether the token type is any kind of comment.
func (t TokenType) IsComment() bool {
	return t == HTML_COMMENT || t == LINE_COMMENT || t == BLOCK_COMMENT
}

// IsTagClose reports whether the token type closes a start or end tag.
func (t TokenType) IsTagClose() bool {
	return t == HTML_TAG_CLOSE || t == HTML_SELF_CLOSING_TAG_CLOSE
}

// Position represents a position in the source code.
// Line is 1-based. Column counts the runes before the position on its line,
// so the column of the first token on a line is the width of its indentation.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token represents a token
type Token struct {
	Type     TokenType
	Value    string
	Position Position
	End      Position
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Type.String() + ": " + t.Value
}

// Is reports whether the token is a punctuator or keyword with the given text.
func (t Token) Is(value string) bool {
	return (t.Type == PUNCTUATOR || t.Type == KEYWORD) && t.Value == value
}

// IsComment reports whether the token is a comment.
func (t Token) IsComment() bool {
	return t.Type.IsComment()
}
