package syntax

// Visitor is called for each term during Walk.
// If it returns false, the children of the term are not visited.
type Visitor func(t Term) bool

// Walk traverses a term in depth-first order, visiting a node before its
// children and children left to right.
// If visitor returns false, children are not visited.
func Walk(t Term, v Visitor) {
	if t == nil || !v(t) {
		return
	}

	switch t := t.(type) {
	case *Succ:
		Walk(t.X, v)
	case *Pred:
		Walk(t.X, v)
	case *IsZero:
		Walk(t.X, v)
	case *If:
		Walk(t.Cond, v)
		Walk(t.Then, v)
		Walk(t.Else, v)
	}
}

// Size returns the number of nodes in t.
func Size(t Term) int {
	n := 0
	Walk(t, func(Term) bool {
		n++
		return true
	})
	return n
}

// Depth returns the height of t; a constant has depth 1.
func Depth(t Term) int {
	switch t := t.(type) {
	case nil:
		return 0
	case *Succ:
		return 1 + Depth(t.X)
	case *Pred:
		return 1 + Depth(t.X)
	case *IsZero:
		return 1 + Depth(t.X)
	case *If:
		return 1 + max(Depth(t.Cond), Depth(t.Then), Depth(t.Else))
	}
	return 1
}
