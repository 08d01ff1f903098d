package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Mode controls optional scanner behavior.
type Mode uint

const (
	// LenientWhitespace accepts tab, carriage return and newline as token
	// separators in addition to the space character.
	LenientWhitespace Mode = 1 << iota
)

// Scanner performs lexical analysis on arith source text.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token  // token type
	lit    string // token text
	tokPos Pos    // token start position

	mode Mode

	litBuf strings.Builder
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called for each lexical error; if nil, errors are silently ignored.
func NewScanner(filename string, src io.Reader, errh func(line, col uint32, msg string)) *Scanner {
	return &Scanner{
		source: *newSource(filename, src, errh),
	}
}

// SetMode sets the scanner mode. It takes effect from the next call to Next.
func (s *Scanner) SetMode(mode Mode) {
	s.mode = mode
}

// Next advances to the next token.
func (s *Scanner) Next() {
	s.skipWhitespace()

	s.tokPos = s.pos()

	switch {
	case s.ch < 0:
		s.tok = _EOF
		s.lit = ""

	case s.ch == '(':
		s.nextch()
		s.tok = _Lparen
		s.lit = "("

	case s.ch == ')':
		s.nextch()
		s.tok = _Rparen
		s.lit = ")"

	case isWordChar(s.ch):
		s.scanWord()

	default:
		s.error(fmt.Sprintf("unexpected character %q", s.ch))
		s.tok = _Illegal
		s.lit = string(s.ch)
		s.nextch()
	}
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's text.
func (s *Scanner) Literal() string {
	return s.lit
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// skipWhitespace skips token separators.
func (s *Scanner) skipWhitespace() {
	for isSpace(s.ch, s.mode) {
		s.nextch()
	}
}

// scanWord scans a maximal run of word characters and classifies it.
// Keywords only match whole words, so "succ0" and "iszero1" are names.
func (s *Scanner) scanWord() {
	s.litBuf.Reset()
	for isWordChar(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()
	s.tok = LookupKeyword(s.lit)
}
