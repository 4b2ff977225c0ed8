package control

import (
	"strings"
	"unicode/utf8"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("control")

// Token is a single element of a picture format section.
type Token struct {
	Type Type

	// Text is the literal output of Literal, Quote and Escape tokens and
	// the raw source of every other token.
	Text string

	// Pos is the byte offset of the token within the section.
	Pos int

	// Exponent tokens only.
	Marker byte
	Sign   byte
	Zeros  int
}

// Scanner splits one section of a picture format into tokens. Scanning stops
// at the end of the string or at the section separator.
type Scanner struct {
	s   string
	pos int
	tok Token
}

// NewScanner returns a scanner positioned at the start of section.
func NewScanner(section string) *Scanner {
	return &Scanner{s: section}
}

// Next advances to the next token and reports whether there is one.
func (s *Scanner) Next() bool {
	if s.pos >= len(s.s) {
		return false
	}

	start := s.pos
	r, size := utf8.DecodeRuneInString(s.s[start:])
	s.pos += size

	tok := Token{Pos: start}

	switch {
	case Section.Match(r):
		s.pos = start
		return false
	case r == '\'' || r == '"':
		tok.Type = Quote

		end := strings.IndexRune(s.s[s.pos:], r)
		if end < 0 {
			tok.Text = s.s[s.pos:]
			s.pos = len(s.s)
		} else {
			tok.Text = s.s[s.pos : s.pos+end]
			s.pos += end + 1
		}
	case Escape.Match(r):
		tok.Type = Escape

		if s.pos < len(s.s) {
			_, n := utf8.DecodeRuneInString(s.s[s.pos:])
			tok.Text = s.s[s.pos : s.pos+n]
			s.pos += n
		}
	case r == 'E' || r == 'e':
		rest := s.s[s.pos:]

		var sign byte
		if len(rest) > 1 && (rest[0] == '+' || rest[0] == '-') && rest[1] == '0' {
			sign = rest[0]
			rest = rest[1:]
		}

		zeros := len(rest) - len(strings.TrimLeft(rest, "0"))
		if zeros == 0 {
			tok.Type = Literal
			tok.Text = s.s[start:s.pos]
			break
		}

		if sign != 0 {
			s.pos++
		}
		s.pos += zeros

		tok.Type = Exponent
		tok.Text = s.s[start:s.pos]
		tok.Marker = byte(r)
		tok.Sign = sign
		tok.Zeros = zeros
	default:
		t, ok := Types.Match(r)
		if !ok {
			t = Literal
		}

		tok.Type = t
		tok.Text = s.s[start:s.pos]
	}

	s.tok = tok

	return true
}

// Token returns the current token.
func (s *Scanner) Token() Token {
	return s.tok
}

// Rest returns the unscanned remainder of the input, starting at the section
// separator when scanning stopped on one.
func (s *Scanner) Rest() string {
	return s.s[s.pos:]
}

// FindSection returns the byte offset of the given section (0 positive,
// 1 negative, 2 zero) of format. A missing or empty section resolves to the
// first section at offset 0.
func FindSection(format string, section int) int {
	if section == 0 {
		return 0
	}

	for i := 0; i < len(format); i++ {
		switch c := format[i]; c {
		case '\'', '"':
			end := strings.IndexByte(format[i+1:], c)
			if end < 0 {
				return 0
			}

			i += end + 1
		case '\\':
			i++
		case ';':
			section--
			if section != 0 {
				continue
			}

			if i+1 < len(format) && format[i+1] != ';' {
				return i + 1
			}

			return 0
		}
	}

	return 0
}
