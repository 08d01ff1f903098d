package syntax

import "testing"

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{_EOF, "EOF"},
		{_Illegal, "ILLEGAL"},
		{_Name, "NAME"},
		{_Lparen, "("},
		{_Rparen, ")"},
		{_True, "true"},
		{_False, "false"},
		{_Zero, "0"},
		{_If, "if"},
		{_Then, "then"},
		{_Else, "else"},
		{_Succ, "succ"},
		{_Pred, "pred"},
		{_IsZero, "iszero"},
		{tokenCount + 3, "token(17)"},
	}

	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("Token(%d).String() = %q, want %q", tt.tok, got, tt.want)
		}
	}
}

func TestTokenNamesComplete(t *testing.T) {
	for tok := Token(0); tok < tokenCount; tok++ {
		if tokenNames[tok] == "" {
			t.Errorf("token %d has no name", tok)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		word string
		want Token
	}{
		{"true", _True},
		{"false", _False},
		{"0", _Zero},
		{"if", _If},
		{"then", _Then},
		{"else", _Else},
		{"succ", _Succ},
		{"pred", _Pred},
		{"iszero", _IsZero},

		// Exact, case-sensitive matching only.
		{"True", _Name},
		{"IF", _Name},
		{"is", _Name},
		{"iszer", _Name},
		{"iszeros", _Name},
		{"00", _Name},
		{"1", _Name},
		{"", _Name},
	}

	for _, tt := range tests {
		if got := LookupKeyword(tt.word); got != tt.want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestTokenPredicates(t *testing.T) {
	for tok := Token(0); tok < tokenCount; tok++ {
		if got := tok.IsEOF(); got != (tok == _EOF) {
			t.Errorf("%v.IsEOF() = %v", tok, got)
		}
	}
}
