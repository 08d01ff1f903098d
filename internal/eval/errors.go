package eval

import (
	"fmt"

	"github.com/you-not-fish/arith/internal/syntax"
)

// StuckTerm reports a term that is not a value and to which no reduction
// rule applies, such as "succ true" or "if 0 then true else false".
type StuckTerm struct {
	Term  syntax.Term // the partially reduced term when evaluation stopped
	Redex syntax.Term // innermost subterm with no applicable rule
}

// Error implements the error interface.
func (e *StuckTerm) Error() string {
	if e.Redex == nil || syntax.Equal(e.Term, e.Redex) {
		return fmt.Sprintf("stuck term: no rule applies to %s", e.Term)
	}
	return fmt.Sprintf("stuck term: no rule applies to %s in %s", e.Redex, e.Term)
}

// ResourceExceeded reports that evaluation hit the configured step budget.
type ResourceExceeded struct {
	Limit int
	Term  syntax.Term // the term reached when the budget ran out
}

// Error implements the error interface.
func (e *ResourceExceeded) Error() string {
	return fmt.Sprintf("evaluation exceeded %d steps", e.Limit)
}
