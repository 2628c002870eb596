package tokenizer

// KeywordInfo holds information about a script keyword.
type KeywordInfo struct {
	// Keyword is always true (for quick lookup)
	Keyword bool
	// BeforeExpression is true if an expression, and therefore a regular
	// expression literal, may directly follow the keyword.
	BeforeExpression bool
}

// KeywordSet is a map of the reserved words that are tokenized as KEYWORD.
// Contextual words such as async, await, of, get, set and static stay
// IDENTIFIER tokens and are recognized by value in the parser.
var KeywordSet = map[string]KeywordInfo{
	// Statements
	"break": {true, false}, "case": {true, true}, "catch": {true, false}, "continue": {true, false},
	"debugger": {true, false}, "default": {true, true}, "do": {true, true}, "else": {true, true},
	"finally": {true, false}, "for": {true, false}, "if": {true, false}, "return": {true, true},
	"switch": {true, false}, "throw": {true, true}, "try": {true, false}, "while": {true, false},
	"with": {true, false},

	// Declarations
	"class": {true, false}, "const": {true, false}, "export": {true, true}, "extends": {true, true},
	"function": {true, false}, "import": {true, false}, "let": {true, false}, "var": {true, false},
	"enum": {true, false},

	// Operators
	"delete": {true, true}, "in": {true, true}, "instanceof": {true, true}, "new": {true, true},
	"typeof": {true, true}, "void": {true, true}, "yield": {true, true},

	// Primary expressions
	"super": {true, false}, "this": {true, false},
}

// IsKeyword reports whether the word is tokenized as KEYWORD.
func IsKeyword(word string) bool {
	return KeywordSet[word].Keyword
}
