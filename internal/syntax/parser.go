package syntax

import (
	"io"
	"strconv"
	"strings"
)

// DefaultMaxDepth is the default limit on nested Term productions.
const DefaultMaxDepth = 10000

// SyntaxError represents a syntax error.
type SyntaxError struct {
	Pos      Pos
	Found    string   // description of the offending token
	Expected []string // tokens acceptable at Pos; empty if unknown
	Msg      string
}

func (e *SyntaxError) Error() string {
	if !e.Pos.IsValid() {
		return e.Msg
	}
	return e.Pos.String() + ": " + e.Msg
}

// Parser performs syntax analysis on arith source text.
type Parser struct {
	scanner *Scanner

	// Current token info (cached from scanner)
	tok Token
	lit string
	pos Pos

	// Error handling
	errh  func(pos Pos, msg string)
	first *SyntaxError // first error encountered; parsing stops there

	// Nesting control
	depth    int
	maxDepth int

	primed bool
}

// NewParser creates a new Parser for the given source.
// The errh function, if not nil, is called once with the error that stops
// the parse.
func NewParser(filename string, src io.Reader, errh func(pos Pos, msg string)) *Parser {
	return &Parser{
		scanner:  NewScanner(filename, src, nil),
		errh:     errh,
		maxDepth: DefaultMaxDepth,
	}
}

// SetMode passes the scanner mode to the underlying scanner.
// It must be called before Parse.
func (p *Parser) SetMode(mode Mode) {
	p.scanner.SetMode(mode)
}

// SetMaxDepth limits how deeply terms may nest. A value <= 0 restores the
// default.
func (p *Parser) SetMaxDepth(n int) {
	if n <= 0 {
		n = DefaultMaxDepth
	}
	p.maxDepth = n
}

// ParseString parses src with the default settings.
func ParseString(src string) (Term, error) {
	return NewParser("", strings.NewReader(src), nil).Parse()
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *Parser) next() {
	p.scanner.Next()
	p.tok = p.scanner.Token()
	p.lit = p.scanner.Literal()
	p.pos = p.scanner.Pos()
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, reports an error and returns false.
func (p *Parser) want(tok Token) bool {
	if p.got(tok) {
		return true
	}
	p.unexpected("", "", tok)
	return false
}

// ----------------------------------------------------------------------------
// Error handling

// failed reports whether parsing has stopped.
func (p *Parser) failed() bool {
	return p.first != nil
}

// syntaxErrorAt records the error that stops parsing.
// Only the first error is kept; there is no recovery.
func (p *Parser) syntaxErrorAt(err *SyntaxError) {
	if p.failed() {
		return
	}
	p.first = err
	if p.errh != nil {
		p.errh(err.Pos, err.Msg)
	}
}

// unexpected reports the current token as unexpected where one of the
// expected tokens was required. what, if set, names the expected set in
// the message instead of listing it.
func (p *Parser) unexpected(context, what string, expected ...Token) {
	found := p.found()
	want := make([]string, len(expected))
	for i, tok := range expected {
		want[i] = quoteToken(tok)
	}

	var b strings.Builder
	b.WriteString("unexpected ")
	b.WriteString(found)
	if context != "" {
		b.WriteString(" " + context)
	}
	b.WriteString(", expected ")
	if what != "" {
		b.WriteString(what)
	} else {
		b.WriteString(strings.Join(want, " or "))
	}

	p.syntaxErrorAt(&SyntaxError{
		Pos:      p.pos,
		Found:    found,
		Expected: want,
		Msg:      b.String(),
	})
}

// found describes the current token for error messages.
func (p *Parser) found() string {
	switch p.tok {
	case _EOF:
		return "EOF"
	case _Illegal:
		return "character " + strconv.QuoteRune([]rune(p.lit)[0])
	case _Name:
		return "name " + strconv.Quote(p.lit)
	}
	return quoteToken(p.tok)
}

func quoteToken(tok Token) string {
	if tok == _EOF {
		return "EOF"
	}
	return strconv.Quote(tok.String())
}

// FirstError returns the error that stopped parsing, or nil if none.
func (p *Parser) FirstError() error {
	if p.first == nil {
		return nil
	}
	return p.first
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses the complete input and returns its term.
//
//	Input := Term EOF
//
// On failure the returned term is nil and the error is a *SyntaxError.
func (p *Parser) Parse() (Term, error) {
	if !p.primed {
		p.primed = true
		p.next()
	}

	t := p.term()
	if !p.failed() && p.tok != _EOF {
		p.unexpected("after term", "", _EOF)
	}
	if p.failed() {
		return nil, p.first
	}
	return t, nil
}

// ----------------------------------------------------------------------------
// Terms

// term parses:
//
//	Term := "(" Term ")"
//	      | "true" | "false" | "0"
//	      | "if" Term "then" Term "else" Term
//	      | "pred" Term | "succ" Term | "iszero" Term
func (p *Parser) term() Term {
	if p.failed() {
		return nil
	}

	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		p.syntaxErrorAt(&SyntaxError{
			Pos:   p.pos,
			Found: p.found(),
			Msg:   "nesting depth exceeds " + strconv.Itoa(p.maxDepth),
		})
		return nil
	}

	switch p.tok {
	case _Lparen:
		return p.parenTerm()
	case _True:
		p.next()
		return &True{}
	case _False:
		p.next()
		return &False{}
	case _Zero:
		p.next()
		return &Zero{}
	case _If:
		return p.ifTerm()
	case _Pred:
		p.next()
		if x := p.term(); x != nil {
			return &Pred{X: x}
		}
	case _Succ:
		p.next()
		if x := p.term(); x != nil {
			return &Succ{X: x}
		}
	case _IsZero:
		p.next()
		if x := p.term(); x != nil {
			return &IsZero{X: x}
		}
	default:
		p.unexpected("", "term", termStart...)
	}
	return nil
}

// parenTerm parses "(" Term ")". The parentheses are not kept.
func (p *Parser) parenTerm() Term {
	p.want(_Lparen)
	x := p.term()
	if x == nil || !p.want(_Rparen) {
		return nil
	}
	return x
}

// ifTerm parses "if" Term "then" Term "else" Term.
func (p *Parser) ifTerm() Term {
	p.want(_If)

	cond := p.term()
	if cond == nil || !p.want(_Then) {
		return nil
	}
	then := p.term()
	if then == nil || !p.want(_Else) {
		return nil
	}
	els := p.term()
	if els == nil {
		return nil
	}
	return &If{Cond: cond, Then: then, Else: els}
}
