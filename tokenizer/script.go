package tokenizer

import (
	"fmt"
	"unicode"
)

// punctuators sorted longest first so the first prefix match wins
var punctuators = []string{
	">>>=",
	"...", "===", "!==", "**=", "<<=", ">>=", ">>>", "&&=", "||=", "??=",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "?.", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>", "**",
	"{", "}", "(", ")", "[", "]", ";", ",", "<", ">", "+", "-", "*", "/",
	"%", "&", "|", "^", "!", "~", "?", ":", "=", ".", "@",
}

// ScriptTokenizer tokenizes embedded script expressions and statements.
// Whitespace is skipped. Comments are returned as LINE_COMMENT and
// BLOCK_COMMENT tokens.
type ScriptTokenizer struct {
	input string
	start Position
	end   int
}

// NewScriptTokenizer creates a tokenizer over the whole input
func NewScriptTokenizer(input string) *ScriptTokenizer {
	return &ScriptTokenizer{
		input: input,
		start: Position{Line: 1},
		end:   len(input),
	}
}

// NewScriptTokenizerAt creates a tokenizer over input[start.Offset:end].
// Token positions stay absolute to the whole input.
func NewScriptTokenizerAt(input string, start Position, end int) *ScriptTokenizer {
	return &ScriptTokenizer{
		input: input,
		start: start,
		end:   end,
	}
}

// Tokens returns an iterator of tokens. The iteration stops after the first
// error; the EOF token is not yielded.
func (t *ScriptTokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		tokenizer := &scriptTokenizer{
			scanner:    newScanner(t.input, t.start, t.end),
			regexAllow: true,
		}

		for {
			token, err := tokenizer.nextToken()
			if err != nil {
				yield(Token{}, err)
				return
			}
			if token.Type == EOF {
				return
			}
			if !yield(token, nil) {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice
func (t *ScriptTokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, 16)
	for token, err := range t.Tokens() {
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

type scriptTokenizer struct {
	*scanner
	// brace depth per open template substitution
	templates  []int
	regexAllow bool
}

func (t *scriptTokenizer) nextToken() (Token, error) {
	for isWhitespace(t.current) {
		t.readChar()
	}
	if t.eof() {
		return t.newToken(EOF, t.pos), nil
	}

	token, err := t.readToken()
	if err != nil {
		return token, err
	}
	if !token.IsComment() {
		t.regexAllow = t.allowsRegExpAfter(token)
	}
	return token, nil
}

func (t *scriptTokenizer) readToken() (Token, error) {
	switch {
	case t.current == '/' && t.peekChar() == '/':
		return t.readLineComment(), nil
	case t.current == '/' && t.peekChar() == '*':
		return t.readBlockComment()
	case t.current == '/' && t.regexAllow:
		return t.readRegExp()
	case t.current == '\'' || t.current == '"':
		return t.readString(t.current)
	case t.current == '`':
		return t.readTemplate()
	case t.current == '}' && len(t.templates) > 0 && t.templates[len(t.templates)-1] == 0:
		t.templates = t.templates[:len(t.templates)-1]
		return t.readTemplate()
	case isDigit(t.current) || (t.current == '.' && isDigit(t.peekChar())):
		return t.readNumber()
	case isIdentifierStart(t.current) || (t.current == '#' && isIdentifierStart(t.peekChar())):
		return t.readWord(), nil
	}
	return t.readPunctuator()
}

// readPunctuator reads the longest punctuator at the current position
func (t *scriptTokenizer) readPunctuator() (Token, error) {
	start := t.pos
	for _, p := range punctuators {
		if !t.hasPrefix(p) {
			continue
		}
		if p == "?." && isDigit(t.peekAt(2)) {
			continue
		}
		t.advance(len(p))
		switch p {
		case "{":
			if len(t.templates) > 0 {
				t.templates[len(t.templates)-1]++
			}
		case "}":
			if len(t.templates) > 0 {
				t.templates[len(t.templates)-1]--
			}
		}
		return t.newToken(PUNCTUATOR, start), nil
	}
	return Token{}, fmt.Errorf("%w: %q at line %d, column %d", ErrUnexpectedCharacter, t.current, start.Line, start.Column)
}

// readWord reads identifiers, keywords and literal words
func (t *scriptTokenizer) readWord() Token {
	start := t.pos
	t.readChar()
	for isIdentifierPart(t.current) {
		t.readChar()
	}

	token := t.newToken(IDENTIFIER, start)
	switch {
	case token.Value == "true" || token.Value == "false":
		token.Type = BOOLEAN
	case token.Value == "null":
		token.Type = NULL
	case IsKeyword(token.Value):
		token.Type = KEYWORD
	}
	return token
}

// readString reads string literals
func (t *scriptTokenizer) readString(delimiter rune) (Token, error) {
	start := t.pos
	t.readChar()

	for t.current != delimiter {
		switch t.current {
		case 0, '\n', '\r':
			return Token{}, fmt.Errorf("%w: %c at line %d, column %d", ErrUnterminatedString, delimiter, start.Line, start.Column)
		case '\\':
			t.readChar()
			if t.eof() {
				return Token{}, fmt.Errorf("%w: %c at line %d, column %d", ErrUnterminatedString, delimiter, start.Line, start.Column)
			}
		}
		t.readChar()
	}
	t.readChar() // closing quote

	return t.newToken(STRING, start), nil
}

// readTemplate reads one piece of a template literal: from a backtick or the
// closing brace of a substitution up to the next "${" or backtick.
func (t *scriptTokenizer) readTemplate() (Token, error) {
	start := t.pos
	t.readChar()

	for {
		switch {
		case t.eof():
			return Token{}, fmt.Errorf("%w at line %d, column %d", ErrUnterminatedTemplate, start.Line, start.Column)
		case t.current == '\\':
			t.readChar()
			t.readChar()
		case t.current == '`':
			t.readChar()
			return t.newToken(TEMPLATE, start), nil
		case t.current == '$' && t.peekChar() == '{':
			t.advance(2)
			t.templates = append(t.templates, 0)
			return t.newToken(TEMPLATE, start), nil
		default:
			t.readChar()
		}
	}
}

// readRegExp reads regular expression literals including flags
func (t *scriptTokenizer) readRegExp() (Token, error) {
	start := t.pos
	t.readChar()

	inClass := false
	for {
		switch t.current {
		case 0, '\n', '\r':
			return Token{}, fmt.Errorf("%w at line %d, column %d", ErrUnterminatedRegExp, start.Line, start.Column)
		case '\\':
			t.readChar()
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				t.readChar()
				for isIdentifierPart(t.current) {
					t.readChar()
				}
				return t.newToken(REGEXP, start), nil
			}
		}
		t.readChar()
	}
}

// readNumber reads numeric literals
func (t *scriptTokenizer) readNumber() (Token, error) {
	start := t.pos

	if t.current == '0' {
		switch t.peekChar() {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			t.advance(2)
			if !isHexDigit(t.current) {
				return Token{}, fmt.Errorf("%w: missing digits at line %d, column %d", ErrInvalidNumber, start.Line, start.Column)
			}
			for isHexDigit(t.current) || t.current == '_' {
				t.readChar()
			}
			return t.finishNumber(start)
		}
	}

	// Integer part
	for isDigit(t.current) || t.current == '_' {
		t.readChar()
	}

	// Decimal point
	if t.current == '.' {
		t.readChar()
		for isDigit(t.current) || t.current == '_' {
			t.readChar()
		}
	}

	// Exponential part
	if t.current == 'e' || t.current == 'E' {
		t.readChar()
		if t.current == '+' || t.current == '-' {
			t.readChar()
		}
		if !isDigit(t.current) {
			return Token{}, fmt.Errorf("%w: invalid exponent at line %d, column %d", ErrInvalidNumber, start.Line, start.Column)
		}
		for isDigit(t.current) || t.current == '_' {
			t.readChar()
		}
	}

	return t.finishNumber(start)
}

func (t *scriptTokenizer) finishNumber(start Position) (Token, error) {
	if t.current == 'n' {
		t.readChar()
	}
	if isIdentifierStart(t.current) || isDigit(t.current) {
		return Token{}, fmt.Errorf("%w: identifier directly after number at line %d, column %d", ErrInvalidNumber, start.Line, start.Column)
	}
	return t.newToken(NUMERIC, start), nil
}

// readLineComment reads line comments
func (t *scriptTokenizer) readLineComment() Token {
	start := t.pos
	for !t.eof() && t.current != '\n' && t.current != '\r' {
		t.readChar()
	}
	return t.newToken(LINE_COMMENT, start)
}

// readBlockComment reads block comments
func (t *scriptTokenizer) readBlockComment() (Token, error) {
	start := t.pos
	t.advance(2)
	for !t.eof() {
		if t.current == '*' && t.peekChar() == '/' {
			t.advance(2)
			return t.newToken(BLOCK_COMMENT, start), nil
		}
		t.readChar()
	}
	return Token{}, fmt.Errorf("%w at line %d, column %d", ErrUnterminatedComment, start.Line, start.Column)
}

// allowsRegExpAfter reports whether a slash after the token starts a regular
// expression rather than a division.
func (t *scriptTokenizer) allowsRegExpAfter(token Token) bool {
	switch token.Type {
	case PUNCTUATOR:
		switch token.Value {
		case ")", "]", "}", "++", "--":
			return false
		}
		return true
	case KEYWORD:
		return KeywordSet[token.Value].BeforeExpression
	case TEMPLATE:
		// a piece ending with "${" opens a substitution
		return token.Value[len(token.Value)-1] == '{'
	}
	return false
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

func isIdentifierStart(r rune) bool {
	return r == '$' || r == '_' || unicode.IsLetter(r)
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || unicode.IsDigit(r) || r == 0x200c || r == 0x200d
}
