package model

import (
	"fmt"
	"math"
)

// Activity returns Σ a·x of the row at x.
func (c Constraint) Activity(x []float64) float64 { return evalTerms(c.Terms, x) }

// Value returns the objective value at x.
func (o Objective) Value(x []float64) float64 { return evalTerms(o.Terms, x) + o.Const }

// Check verifies that x satisfies every bound and row within tol.
// The first violation is returned wrapped in ErrViolated.
func (m *Model) Check(x []float64, tol float64) error {
	if len(x) != len(m.vars) {
		return fmt.Errorf("%w: point has %d entries, model has %d variables", ErrViolated, len(x), len(m.vars))
	}
	for i, v := range m.vars {
		if x[i] < v.Lower-tol || x[i] > v.Upper+tol {
			return fmt.Errorf("%w: %s=%g outside [%g, %g]", ErrViolated, v.Name, x[i], v.Lower, v.Upper)
		}
	}
	for _, c := range m.cons {
		act := c.Activity(x)
		ok := true
		switch c.Sense {
		case LessEqual:
			ok = act <= c.RHS+tol
		case GreaterEqual:
			ok = act >= c.RHS-tol
		case Equal:
			ok = math.Abs(act-c.RHS) <= tol
		}
		if !ok {
			return fmt.Errorf("%w: %s: %g %s %g", ErrViolated, c.Name, act, c.Sense, c.RHS)
		}
	}

	return nil
}
