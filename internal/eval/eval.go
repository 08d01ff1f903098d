// Package eval reduces arith terms to values.
//
// The evaluator implements the small-step relation t → t' of the untyped
// calculus of booleans and numbers:
//
//	If(True, t2, t3)   → t2
//	If(False, t2, t3)  → t3
//	If(t1, t2, t3)     → If(t1', t2, t3)      if t1 → t1'
//	Succ(t)            → Succ(t')             if t → t'
//	Pred(Zero)         → Zero
//	Pred(Succ(nv))     → nv
//	Pred(t)            → Pred(t')             if t → t'
//	IsZero(Zero)       → True
//	IsZero(Succ(nv))   → False
//	IsZero(t)          → IsZero(t')           if t → t'
//
// At most one rule applies to any term. A term that is not a value and
// matches no rule is stuck.
package eval

import "github.com/you-not-fish/arith/internal/syntax"

// IsNumericValue reports whether t is Zero or Succ of a numeric value.
func IsNumericValue(t syntax.Term) bool {
	_, ok := syntax.Numeral(t)
	return ok
}

// IsValue reports whether t is irreducible: True, False, or a numeric value.
func IsValue(t syntax.Term) bool {
	switch t.(type) {
	case *syntax.True, *syntax.False:
		return true
	}
	return IsNumericValue(t)
}

// Step performs one reduction step. It reports false if no rule applies,
// which is the case for values and for stuck terms.
func Step(t syntax.Term) (syntax.Term, bool) {
	next, _, _ := step(t)
	return next, next != nil
}

// step reduces t once. When no rule applies, next is nil and either t is a
// value (stuck is nil, num reports whether it is numeric) or stuck is the
// innermost subterm that blocked reduction.
//
// Operands are reduced before their parent is inspected, so each call visits
// every node on one path of t at most once.
func step(t syntax.Term) (next, stuck syntax.Term, num bool) {
	switch t := t.(type) {
	case *syntax.True, *syntax.False:
		return nil, nil, false

	case *syntax.Zero:
		return nil, nil, true

	case *syntax.If:
		switch t.Cond.(type) {
		case *syntax.True:
			return t.Then, nil, false
		case *syntax.False:
			return t.Else, nil, false
		}
		cond, stuck, _ := step(t.Cond)
		switch {
		case cond != nil:
			return &syntax.If{Cond: cond, Then: t.Then, Else: t.Else}, nil, false
		case stuck != nil:
			return nil, stuck, false
		}
		// The condition is a numeric value.
		return nil, t, false

	case *syntax.Succ:
		x, stuck, num := step(t.X)
		switch {
		case x != nil:
			return &syntax.Succ{X: x}, nil, false
		case stuck != nil:
			return nil, stuck, false
		case num:
			return nil, nil, true
		}
		return nil, t, false

	case *syntax.Pred:
		x, stuck, num := step(t.X)
		switch {
		case x != nil:
			return &syntax.Pred{X: x}, nil, false
		case stuck != nil:
			return nil, stuck, false
		case num:
			if s, ok := t.X.(*syntax.Succ); ok {
				return s.X, nil, false
			}
			return &syntax.Zero{}, nil, false
		}
		return nil, t, false

	case *syntax.IsZero:
		x, stuck, num := step(t.X)
		switch {
		case x != nil:
			return &syntax.IsZero{X: x}, nil, false
		case stuck != nil:
			return nil, stuck, false
		case num:
			if _, ok := t.X.(*syntax.Succ); ok {
				return &syntax.False{}, nil, false
			}
			return &syntax.True{}, nil, false
		}
		return nil, t, false
	}

	return nil, t, false
}

// Result is the outcome of a successful evaluation.
type Result struct {
	Value syntax.Term // the normal form; always satisfies IsValue
	Steps int         // number of reduction steps taken
}

// Evaluator reduces terms by repeated small steps.
// The zero value is ready to use.
type Evaluator struct {
	// MaxSteps bounds the number of reduction steps. Zero means no limit;
	// every term of the calculus normalizes, so the limit only guards
	// callers that want a hard budget.
	MaxSteps int

	// Trace, if set, is called after each step with the step number
	// (starting at 1) and the new term.
	Trace func(step int, t syntax.Term)
}

// Eval reduces t until it is a value. It returns a *StuckTerm error if
// reduction reaches a term that is not a value and has no applicable rule,
// and a *ResourceExceeded error if MaxSteps is exceeded.
func (e *Evaluator) Eval(t syntax.Term) (*Result, error) {
	steps := 0
	for {
		next, stuck, _ := step(t)
		if next == nil {
			if stuck != nil {
				return nil, &StuckTerm{Term: t, Redex: stuck}
			}
			return &Result{Value: t, Steps: steps}, nil
		}
		if e.MaxSteps > 0 && steps >= e.MaxSteps {
			return nil, &ResourceExceeded{Limit: e.MaxSteps, Term: t}
		}
		t = next
		steps++
		if e.Trace != nil {
			e.Trace(steps, t)
		}
	}
}

// Eval reduces t to a value with an unbounded Evaluator.
func Eval(t syntax.Term) (syntax.Term, error) {
	var e Evaluator
	r, err := e.Eval(t)
	if err != nil {
		return nil, err
	}
	return r.Value, nil
}
