package syntax

import "strings"

// ----------------------------------------------------------------------------
// Terms
//
// A Term is one of seven node types: the constants True, False and Zero, the
// prefix operators Succ, Pred and IsZero, and the conditional If. Grouping
// parentheses never appear in the tree, and terms carry no positions, so
// "(0)" and "0" produce equal terms.
//
// Terms are immutable once built. Evaluation builds new terms rather than
// modifying existing ones.

// Term is the interface implemented by all syntax tree nodes.
type Term interface {
	// String returns the term in concrete syntax. The result parses back
	// to an equal term.
	String() string
	aTerm() // marker method to restrict implementations to this package
}

// True is the boolean constant true.
type True struct{}

// False is the boolean constant false.
type False struct{}

// Zero is the numeral 0.
type Zero struct{}

// Succ represents: succ X
type Succ struct {
	X Term
}

// Pred represents: pred X
type Pred struct {
	X Term
}

// IsZero represents: iszero X
type IsZero struct {
	X Term
}

// If represents: if Cond then Then else Else
type If struct {
	Cond Term
	Then Term
	Else Term
}

func (*True) aTerm()   {}
func (*False) aTerm()  {}
func (*Zero) aTerm()   {}
func (*Succ) aTerm()   {}
func (*Pred) aTerm()   {}
func (*IsZero) aTerm() {}
func (*If) aTerm()     {}

func (t *True) String() string   { return termString(t) }
func (t *False) String() string  { return termString(t) }
func (t *Zero) String() string   { return termString(t) }
func (t *Succ) String() string   { return termString(t) }
func (t *Pred) String() string   { return termString(t) }
func (t *IsZero) String() string { return termString(t) }
func (t *If) String() string     { return termString(t) }

func termString(t Term) string {
	var b strings.Builder
	writeTerm(&b, t)
	return b.String()
}

// writeTerm writes t in concrete syntax. Prefix chains are written in a
// loop so long numerals do not recurse.
func writeTerm(b *strings.Builder, t Term) {
	for {
		switch x := t.(type) {
		case *True:
			b.WriteString("true")
		case *False:
			b.WriteString("false")
		case *Zero:
			b.WriteString("0")
		case *Succ:
			b.WriteString("succ ")
			t = x.X
			continue
		case *Pred:
			b.WriteString("pred ")
			t = x.X
			continue
		case *IsZero:
			b.WriteString("iszero ")
			t = x.X
			continue
		case *If:
			b.WriteString("if ")
			writeTerm(b, x.Cond)
			b.WriteString(" then ")
			writeTerm(b, x.Then)
			b.WriteString(" else ")
			t = x.Else
			continue
		}
		return
	}
}

// Equal reports whether a and b are structurally identical terms.
func Equal(a, b Term) bool {
	switch a := a.(type) {
	case *True:
		_, ok := b.(*True)
		return ok
	case *False:
		_, ok := b.(*False)
		return ok
	case *Zero:
		_, ok := b.(*Zero)
		return ok
	case *Succ:
		b, ok := b.(*Succ)
		return ok && Equal(a.X, b.X)
	case *Pred:
		b, ok := b.(*Pred)
		return ok && Equal(a.X, b.X)
	case *IsZero:
		b, ok := b.(*IsZero)
		return ok && Equal(a.X, b.X)
	case *If:
		b, ok := b.(*If)
		return ok && Equal(a.Cond, b.Cond) && Equal(a.Then, b.Then) && Equal(a.Else, b.Else)
	}
	return false
}

// Numeral returns the natural number denoted by t if t is built from Zero
// and Succ only.
func Numeral(t Term) (int, bool) {
	n := 0
	for {
		switch x := t.(type) {
		case *Zero:
			return n, true
		case *Succ:
			n++
			t = x.X
		default:
			return 0, false
		}
	}
}

// FromNumeral returns the term succ^n 0. Negative n is treated as 0.
func FromNumeral(n int) Term {
	var t Term = &Zero{}
	for i := 0; i < n; i++ {
		t = &Succ{X: t}
	}
	return t
}
