package indent

import (
	"fmt"
	"math"
)

// Options controls the expected indentation
type Options struct {
	IndentChar   rune // ' ' or '\t'
	IndentSize   int  // characters per indentation level
	Attribute    int  // levels of the first attribute relative to its tag
	CloseBracket int  // levels of a closing `>` relative to its tag
}

// DefaultOptions returns four spaces per level, attributes one level deeper
// than their tag and closing brackets aligned with the tag.
func DefaultOptions() Options {
	return Options{
		IndentChar:   ' ',
		IndentSize:   4,
		Attribute:    1,
		CloseBracket: 0,
	}
}

// ParseOptions builds Options from loosely typed settings. kind is "tab", a
// positive integer number of spaces, or nil for the default. Nil attribute
// and closeBracket keep their defaults.
func ParseOptions(kind any, attribute, closeBracket *int) (Options, error) {
	opts := DefaultOptions()

	switch v := kind.(type) {
	case nil:
	case string:
		if v != "tab" {
			return opts, fmt.Errorf("%w: indent must be \"tab\" or an integer, got %q", ErrInvalidOption, v)
		}
		opts.IndentChar = '\t'
		opts.IndentSize = 1
	default:
		size, ok := toInt(v)
		if !ok || size < 1 {
			return opts, fmt.Errorf("%w: indent must be \"tab\" or a positive integer, got %v", ErrInvalidOption, v)
		}
		opts.IndentSize = size
	}

	if attribute != nil {
		if *attribute < 0 {
			return opts, fmt.Errorf("%w: attribute must not be negative, got %d", ErrInvalidOption, *attribute)
		}
		opts.Attribute = *attribute
	}
	if closeBracket != nil {
		if *closeBracket < 0 {
			return opts, fmt.Errorf("%w: closeBracket must not be negative, got %d", ErrInvalidOption, *closeBracket)
		}
		opts.CloseBracket = *closeBracket
	}
	return opts, nil
}

// toInt accepts the integer shapes produced by the YAML, TOML and JSON
// decoders
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		if n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

// Unit names the indentation character in messages
func (o Options) Unit() string {
	if o.IndentChar == '\t' {
		return "tab"
	}
	return "space"
}
