// Package syntax implements lexical and syntactic analysis for the arith calculus.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF     Token = iota // end of input
	_Illegal              // character that cannot start a token
	_Name                 // word that is not a keyword: foo, succ0, 1

	// Delimiters
	_Lparen // (
	_Rparen // )

	// Keywords and the zero numeral
	_True
	_False
	_Zero
	_If
	_Then
	_Else
	_Succ
	_Pred
	_IsZero

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF:     "EOF",
	_Illegal: "ILLEGAL",
	_Name:    "NAME",

	_Lparen: "(",
	_Rparen: ")",

	_True:   "true",
	_False:  "false",
	_Zero:   "0",
	_If:     "if",
	_Then:   "then",
	_Else:   "else",
	_Succ:   "succ",
	_Pred:   "pred",
	_IsZero: "iszero",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// termStart lists the tokens that may begin a Term, in grammar order.
var termStart = []Token{_Lparen, _True, _False, _Zero, _If, _Pred, _Succ, _IsZero}

// keywords maps keyword strings to their token type.
// Matching is exact and case-sensitive: "iszero" is never "if" followed by
// something, and "True" is not a keyword.
var keywords = map[string]Token{
	"true":   _True,
	"false":  _False,
	"0":      _Zero,
	"if":     _If,
	"then":   _Then,
	"else":   _Else,
	"succ":   _Succ,
	"pred":   _Pred,
	"iszero": _IsZero,
}

// LookupKeyword returns the token for the given word.
// If the word is a keyword, returns the keyword token.
// Otherwise, returns _Name.
func LookupKeyword(word string) Token {
	if tok, ok := keywords[word]; ok {
		return tok
	}
	return _Name
}
