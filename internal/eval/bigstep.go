package eval

import "github.com/you-not-fish/arith/internal/syntax"

// EvalBig evaluates t with the big-step (natural) semantics:
//
//	v ⇓ v
//	t1 ⇓ true,  t2 ⇓ v   ⟹  if t1 then t2 else t3 ⇓ v
//	t1 ⇓ false, t3 ⇓ v   ⟹  if t1 then t2 else t3 ⇓ v
//	t ⇓ nv               ⟹  succ t ⇓ succ nv
//	t ⇓ 0                ⟹  pred t ⇓ 0
//	t ⇓ succ nv          ⟹  pred t ⇓ nv
//	t ⇓ 0                ⟹  iszero t ⇓ true
//	t ⇓ succ nv          ⟹  iszero t ⇓ false
//
// It agrees with the small-step evaluator: both produce the same value, or
// both fail with a *StuckTerm naming the same Term and Redex. The reported
// Term is t with every subterm evaluated before the failure replaced by its
// value, which is the term the small-step evaluator is left holding.
func EvalBig(t syntax.Term) (syntax.Term, error) {
	v, _, stuck := big(t)
	if stuck != nil {
		return nil, stuck
	}
	return v, nil
}

// big returns the value of t and whether it is numeric. On failure it
// returns the partially evaluated term and the redex instead.
func big(t syntax.Term) (v syntax.Term, num bool, stuck *StuckTerm) {
	switch t := t.(type) {
	case *syntax.True, *syntax.False:
		return t, false, nil

	case *syntax.Zero:
		return t, true, nil

	case *syntax.If:
		cond, _, stuck := big(t.Cond)
		if stuck != nil {
			stuck.Term = &syntax.If{Cond: stuck.Term, Then: t.Then, Else: t.Else}
			return nil, false, stuck
		}
		switch cond.(type) {
		case *syntax.True:
			return big(t.Then)
		case *syntax.False:
			return big(t.Else)
		}
		redex := &syntax.If{Cond: cond, Then: t.Then, Else: t.Else}
		return nil, false, &StuckTerm{Term: redex, Redex: redex}

	case *syntax.Succ:
		x, num, stuck := big(t.X)
		if stuck != nil {
			stuck.Term = &syntax.Succ{X: stuck.Term}
			return nil, false, stuck
		}
		if !num {
			redex := &syntax.Succ{X: x}
			return nil, false, &StuckTerm{Term: redex, Redex: redex}
		}
		if x == t.X {
			return t, true, nil
		}
		return &syntax.Succ{X: x}, true, nil

	case *syntax.Pred:
		x, num, stuck := big(t.X)
		if stuck != nil {
			stuck.Term = &syntax.Pred{X: stuck.Term}
			return nil, false, stuck
		}
		if !num {
			redex := &syntax.Pred{X: x}
			return nil, false, &StuckTerm{Term: redex, Redex: redex}
		}
		if s, ok := x.(*syntax.Succ); ok {
			return s.X, true, nil
		}
		return x, true, nil

	case *syntax.IsZero:
		x, num, stuck := big(t.X)
		if stuck != nil {
			stuck.Term = &syntax.IsZero{X: stuck.Term}
			return nil, false, stuck
		}
		if !num {
			redex := &syntax.IsZero{X: x}
			return nil, false, &StuckTerm{Term: redex, Redex: redex}
		}
		if _, ok := x.(*syntax.Succ); ok {
			return &syntax.False{}, false, nil
		}
		return &syntax.True{}, false, nil
	}

	return nil, false, &StuckTerm{Term: t, Redex: t}
}
