// Package syntaxtest generates random terms for property tests.
package syntaxtest

import (
	fuzz "github.com/google/gofuzz"

	"github.com/you-not-fish/arith/internal/syntax"
)

type box struct {
	term syntax.Term
}

// Terms returns n random terms no deeper than maxDepth. The same seed
// always yields the same terms.
func Terms(seed int64, n, maxDepth int) []syntax.Term {
	f := fuzz.NewWithSeed(seed).NilChance(0).Funcs(
		func(b *box, c fuzz.Continue) {
			b.term = random(c, maxDepth)
		},
	)

	terms := make([]syntax.Term, 0, n)
	for i := 0; i < n; i++ {
		var b box
		f.Fuzz(&b)
		terms = append(terms, b.term)
	}
	return terms
}

func random(c fuzz.Continue, depth int) syntax.Term {
	if depth <= 1 {
		return leaf(c)
	}
	switch c.Intn(8) {
	case 0, 1:
		return leaf(c)
	case 2, 3:
		return &syntax.Succ{X: random(c, depth-1)}
	case 4:
		return &syntax.Pred{X: random(c, depth-1)}
	case 5:
		return &syntax.IsZero{X: random(c, depth-1)}
	default:
		return &syntax.If{
			Cond: random(c, depth-1),
			Then: random(c, depth-1),
			Else: random(c, depth-1),
		}
	}
}

func leaf(c fuzz.Continue) syntax.Term {
	switch c.Intn(4) {
	case 0:
		return &syntax.True{}
	case 1:
		return &syntax.False{}
	}
	return &syntax.Zero{}
}
