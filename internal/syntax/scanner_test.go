package syntax

import (
	"strings"
	"testing"
)

type scanned struct {
	tok Token
	lit string
	off int
}

func scanAll(t *testing.T, src string, mode Mode) ([]scanned, []string) {
	t.Helper()
	var errs []string
	errh := func(line, col uint32, msg string) {
		errs = append(errs, msg)
	}
	s := NewScanner("test.arith", strings.NewReader(src), errh)
	s.SetMode(mode)

	var toks []scanned
	for i := 0; ; i++ {
		if i > len(src)+1 {
			t.Fatalf("scanner did not reach EOF on %q", src)
		}
		s.Next()
		toks = append(toks, scanned{s.Token(), s.Literal(), s.Pos().Offset()})
		if s.Token() == _EOF {
			return toks, errs
		}
	}
}

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		tokens []Token
		lits   []string
	}{
		{"empty", "", []Token{_EOF}, []string{""}},
		{"spaces_only", "   ", []Token{_EOF}, []string{""}},
		{"true", "true", []Token{_True, _EOF}, []string{"true", ""}},
		{"false", "false", []Token{_False, _EOF}, []string{"false", ""}},
		{"zero", "0", []Token{_Zero, _EOF}, []string{"0", ""}},
		{"keywords", "if then else succ pred iszero",
			[]Token{_If, _Then, _Else, _Succ, _Pred, _IsZero, _EOF},
			[]string{"if", "then", "else", "succ", "pred", "iszero", ""}},
		{"parens_tight", "(0)", []Token{_Lparen, _Zero, _Rparen, _EOF}, []string{"(", "0", ")", ""}},
		{"parens_nested", "((true))",
			[]Token{_Lparen, _Lparen, _True, _Rparen, _Rparen, _EOF},
			[]string{"(", "(", "true", ")", ")", ""}},
		{"multiple_spaces", "succ   0", []Token{_Succ, _Zero, _EOF}, []string{"succ", "0", ""}},

		// Keywords only match whole words.
		{"iszero_not_if", "iszero", []Token{_IsZero, _EOF}, []string{"iszero", ""}},
		{"glued_operand", "succ0", []Token{_Name, _EOF}, []string{"succ0", ""}},
		{"glued_keywords", "ifthen", []Token{_Name, _EOF}, []string{"ifthen", ""}},
		{"capitalized", "True", []Token{_Name, _EOF}, []string{"True", ""}},
		{"numeral_one", "1", []Token{_Name, _EOF}, []string{"1", ""}},
		{"numeral_00", "00", []Token{_Name, _EOF}, []string{"00", ""}},
		{"underscore", "x_1", []Token{_Name, _EOF}, []string{"x_1", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, errs := scanAll(t, tt.src, 0)
			if len(errs) > 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if len(toks) != len(tt.tokens) {
				t.Fatalf("got %d tokens %v, want %d", len(toks), toks, len(tt.tokens))
			}
			for i, got := range toks {
				if got.tok != tt.tokens[i] {
					t.Errorf("token[%d] = %v, want %v", i, got.tok, tt.tokens[i])
				}
				if got.lit != tt.lits[i] {
					t.Errorf("literal[%d] = %q, want %q", i, got.lit, tt.lits[i])
				}
			}
		})
	}
}

func TestScanOffsets(t *testing.T) {
	toks, _ := scanAll(t, " if (iszero 0)  then", 0)
	want := []int{1, 4, 5, 12, 13, 16, 20}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, tok := range toks {
		if tok.off != want[i] {
			t.Errorf("token[%d] %v offset = %d, want %d", i, tok.tok, tok.off, want[i])
		}
	}
}

func TestScanStrictWhitespace(t *testing.T) {
	tests := []struct {
		name string
		src  string
		lit  string
	}{
		{"tab", "succ\t0", "\t"},
		{"newline", "succ\n0", "\n"},
		{"carriage_return", "succ\r0", "\r"},
		{"punctuation", "succ + 0", "+"},
		{"unicode", "succ λ", "λ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, errs := scanAll(t, tt.src, 0)
			if len(errs) != 1 {
				t.Fatalf("got %d errors %v, want 1", len(errs), errs)
			}
			if toks[1].tok != _Illegal || toks[1].lit != tt.lit {
				t.Errorf("token[1] = %v %q, want ILLEGAL %q", toks[1].tok, toks[1].lit, tt.lit)
			}
		})
	}
}

func TestScanLenientWhitespace(t *testing.T) {
	toks, errs := scanAll(t, "if\ttrue\r\nthen 0\nelse\t\tsucc 0\n", LenientWhitespace)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []Token{_If, _True, _Then, _Zero, _Else, _Succ, _Zero, _EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, tok := range toks {
		if tok.tok != want[i] {
			t.Errorf("token[%d] = %v, want %v", i, tok.tok, want[i])
		}
	}
}

func TestScanLinePositions(t *testing.T) {
	s := NewScanner("f.arith", strings.NewReader("succ\n  0"), nil)
	s.SetMode(LenientWhitespace)

	s.Next()
	if got := s.Pos().String(); got != "f.arith:1:1" {
		t.Errorf("succ at %s, want f.arith:1:1", got)
	}
	s.Next()
	if got := s.Pos().String(); got != "f.arith:2:3" {
		t.Errorf("0 at %s, want f.arith:2:3", got)
	}
	if got := s.Pos().Offset(); got != 7 {
		t.Errorf("0 offset = %d, want 7", got)
	}
}
