// Package grammar is a declarative reference grammar for arith terms.
//
// It is built with participle and accepts exactly the language of the
// hand-written parser in package syntax. Tests use it as an oracle, and the
// CLI exposes it behind --parser=reference.
package grammar

import (
	"errors"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/you-not-fish/arith/internal/syntax"
)

type node struct {
	Group  *node   `  "(" @@ ")"`
	True   bool    `| @"true"`
	False  bool    `| @"false"`
	Zero   bool    `| @"0"`
	If     *ifNode `| @@`
	Succ   *node   `| "succ" @@`
	Pred   *node   `| "pred" @@`
	IsZero *node   `| "iszero" @@`
}

type ifNode struct {
	Cond *node `"if" @@`
	Then *node `"then" @@`
	Else *node `"else" @@`
}

func build(space string) *participle.Parser[node] {
	def := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Word", Pattern: `[A-Za-z0-9_]+`},
		{Name: "Punct", Pattern: `[()]`},
		{Name: "Space", Pattern: space},
	})
	return participle.MustBuild[node](
		participle.Lexer(def),
		participle.Elide("Space"),
	)
}

var (
	strict  = build(` +`)
	lenient = build(`[ \t\r\n]+`)
)

// Parse parses src as a single term. With syntax.LenientWhitespace set in
// mode, tabs and line breaks separate tokens as well as spaces. Errors are
// *syntax.SyntaxError; Expected is left empty.
func Parse(filename, src string, mode syntax.Mode) (syntax.Term, error) {
	p := strict
	if mode&syntax.LenientWhitespace != 0 {
		p = lenient
	}
	n, err := p.ParseString(filename, src)
	if err != nil {
		return nil, syntaxError(filename, err)
	}
	return n.term(), nil
}

func syntaxError(filename string, err error) *syntax.SyntaxError {
	var perr participle.Error
	if !errors.As(err, &perr) {
		return &syntax.SyntaxError{Msg: err.Error()}
	}
	p := perr.Position()
	return &syntax.SyntaxError{
		Pos: syntax.NewPos(filename, p.Offset, uint32(p.Line), uint32(p.Column)),
		Msg: perr.Message(),
	}
}

// EBNF returns the grammar in EBNF notation.
func EBNF() string {
	return strict.String()
}

func (n *node) term() syntax.Term {
	switch {
	case n.Group != nil:
		return n.Group.term()
	case n.True:
		return &syntax.True{}
	case n.False:
		return &syntax.False{}
	case n.Zero:
		return &syntax.Zero{}
	case n.If != nil:
		return &syntax.If{
			Cond: n.If.Cond.term(),
			Then: n.If.Then.term(),
			Else: n.If.Else.term(),
		}
	case n.Succ != nil:
		return &syntax.Succ{X: n.Succ.term()}
	case n.Pred != nil:
		return &syntax.Pred{X: n.Pred.term()}
	case n.IsZero != nil:
		return &syntax.IsZero{X: n.IsZero.term()}
	}
	panic("grammar: empty node")
}
