package tokenizer

import (
	"strings"
	"unicode/utf8"
)

// scanner walks a byte range of the source rune by rune and keeps track of
// the line and column of the current character.
type scanner struct {
	input   string
	end     int
	pos     Position // position of current
	current rune
	width   int
}

func newScanner(input string, start Position, end int) *scanner {
	if end > len(input) {
		end = len(input)
	}
	s := &scanner{input: input, end: end, pos: start}
	s.decode()
	return s
}

func (s *scanner) decode() {
	if s.pos.Offset >= s.end {
		s.current = 0
		s.width = 0
		return
	}
	s.current, s.width = utf8.DecodeRuneInString(s.input[s.pos.Offset:s.end])
}

// readChar reads the next character
func (s *scanner) readChar() {
	if s.width == 0 {
		return
	}
	if s.current == '\n' {
		s.pos.Line++
		s.pos.Column = 0
	} else {
		s.pos.Column++
	}
	s.pos.Offset += s.width
	s.decode()
}

// peekChar looks ahead at the character after current
func (s *scanner) peekChar() rune {
	return s.peekAt(1)
}

// peekAt looks ahead n characters
func (s *scanner) peekAt(n int) rune {
	offset := s.pos.Offset
	for i := 0; ; i++ {
		if offset >= s.end {
			return 0
		}
		r, w := utf8.DecodeRuneInString(s.input[offset:s.end])
		if i == n {
			return r
		}
		offset += w
	}
}

func (s *scanner) eof() bool {
	return s.width == 0
}

func (s *scanner) hasPrefix(prefix string) bool {
	return strings.HasPrefix(s.input[s.pos.Offset:s.end], prefix)
}

// advance reads n characters
func (s *scanner) advance(n int) {
	for range n {
		s.readChar()
	}
}

// advanceTo reads characters until the byte offset is reached
func (s *scanner) advanceTo(offset int) {
	for !s.eof() && s.pos.Offset < offset {
		s.readChar()
	}
}

// indexFrom returns the absolute offset of the first occurrence of substr at or
// after offset, or -1.
func (s *scanner) indexFrom(offset int, substr string) int {
	if offset > s.end {
		return -1
	}
	i := strings.Index(s.input[offset:s.end], substr)
	if i < 0 {
		return -1
	}
	return offset + i
}

// newToken creates a token from start up to the current position
func (s *scanner) newToken(tokenType TokenType, start Position) Token {
	return Token{
		Type:     tokenType,
		Value:    s.input[start.Offset:s.pos.Offset],
		Position: start,
		End:      s.pos,
	}
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0xa0, 0xfeff, 0x2028, 0x2029:
		return true
	}
	return false
}
