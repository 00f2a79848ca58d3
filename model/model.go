// SPDX-License-Identifier: MIT
//
// File: model.go
// Role: Model lifecycle: AddVar, AddConstr, SetObjective and read accessors.
// Determinism:
//   - Variables and constraints keep insertion order; merged terms keep the
//     order of first appearance.

package model

import (
	"fmt"
	"math"
)

// Model is a linear program under construction.
type Model struct {
	name      string
	vars      []VarInfo
	varNames  map[string]int
	cons      []Constraint
	conNames  map[string]int
	objective Objective
}

// New returns an empty model minimizing the zero objective.
func New(name string) *Model {
	return &Model{
		name:     name,
		varNames: make(map[string]int),
		conNames: make(map[string]int),
	}
}

// Name returns the model name.
func (m *Model) Name() string { return m.name }

// AddVar declares a continuous variable with lower ≤ x ≤ upper.
//
// Errors:
//   - ErrEmptyName, ErrDuplicateName.
//   - ErrBadBound: lower must be finite, upper may be Inf, lower ≤ upper.
func (m *Model) AddVar(name string, lower, upper float64) (Var, error) {
	if name == "" {
		return Var{}, ErrEmptyName
	}
	if _, dup := m.varNames[name]; dup {
		return Var{}, fmt.Errorf("%w: variable %q", ErrDuplicateName, name)
	}
	if math.IsNaN(lower) || math.IsInf(lower, 0) || math.IsNaN(upper) || math.IsInf(upper, -1) || lower > upper {
		return Var{}, fmt.Errorf("%w: %q in [%g, %g]", ErrBadBound, name, lower, upper)
	}

	idx := len(m.vars)
	m.vars = append(m.vars, VarInfo{Name: name, Lower: lower, Upper: upper})
	m.varNames[name] = idx

	return Var{m: m, idx: idx}, nil
}

// AddConstr adds the row  e  sense  rhs.  The constant of e moves to the
// right-hand side and repeated variables are merged. Zero-coefficient terms
// are kept so that an empty aggregate still names its variables.
//
// Returns the row index.
//
// Errors:
//   - ErrEmptyName, ErrDuplicateName, ErrBadSense, ErrBadCoef, ErrForeignVar.
func (m *Model) AddConstr(e Expr, sense Sense, rhs float64, name string) (int, error) {
	if name == "" {
		return -1, ErrEmptyName
	}
	if _, dup := m.conNames[name]; dup {
		return -1, fmt.Errorf("%w: constraint %q", ErrDuplicateName, name)
	}
	if sense != LessEqual && sense != GreaterEqual && sense != Equal {
		return -1, fmt.Errorf("%w: %d in %q", ErrBadSense, int(sense), name)
	}
	rhs -= e.Const
	if !finite(rhs) {
		return -1, fmt.Errorf("%w: rhs of %q", ErrBadCoef, name)
	}
	terms, err := m.merge(e.Terms)
	if err != nil {
		return -1, fmt.Errorf("constraint %q: %w", name, err)
	}

	idx := len(m.cons)
	m.cons = append(m.cons, Constraint{Name: name, Terms: terms, Sense: sense, RHS: rhs})
	m.conNames[name] = idx

	return idx, nil
}

// SetObjective replaces the objective.
func (m *Model) SetObjective(e Expr, sense ObjSense) error {
	if sense != Minimize && sense != Maximize {
		return fmt.Errorf("%w: objective %d", ErrBadSense, int(sense))
	}
	if !finite(e.Const) {
		return fmt.Errorf("%w: objective constant", ErrBadCoef)
	}
	terms, err := m.merge(e.Terms)
	if err != nil {
		return fmt.Errorf("objective: %w", err)
	}
	m.objective = Objective{Sense: sense, Terms: terms, Const: e.Const}

	return nil
}

// merge validates ownership and coefficients and sums repeated variables.
func (m *Model) merge(in []Term) ([]Term, error) {
	out := make([]Term, 0, len(in))
	pos := make(map[int]int, len(in))
	for _, t := range in {
		if t.Var.m != m {
			return nil, fmt.Errorf("%w: %q", ErrForeignVar, t.Var.Name())
		}
		if !finite(t.Coef) {
			return nil, fmt.Errorf("%w: %q coef=%g", ErrBadCoef, t.Var.Name(), t.Coef)
		}
		if p, ok := pos[t.Var.idx]; ok {
			out[p].Coef += t.Coef
			continue
		}
		pos[t.Var.idx] = len(out)
		out = append(out, t)
	}

	return out, nil
}

// NumVars returns the number of variables.
func (m *Model) NumVars() int { return len(m.vars) }

// NumConstrs returns the number of constraints.
func (m *Model) NumConstrs() int { return len(m.cons) }

// Var returns the handle of column idx.
func (m *Model) Var(idx int) (Var, bool) {
	if idx < 0 || idx >= len(m.vars) {
		return Var{}, false
	}

	return Var{m: m, idx: idx}, true
}

// VarByName looks a variable up by name.
func (m *Model) VarByName(name string) (Var, bool) {
	idx, ok := m.varNames[name]
	if !ok {
		return Var{}, false
	}

	return Var{m: m, idx: idx}, true
}

// Vars returns a copy of the variable declarations in column order.
func (m *Model) Vars() []VarInfo {
	out := make([]VarInfo, len(m.vars))
	copy(out, m.vars)

	return out
}

// Constraints returns the rows in insertion order. Returned rows share their
// Terms slices with the model and must not be modified.
func (m *Model) Constraints() []Constraint {
	out := make([]Constraint, len(m.cons))
	copy(out, m.cons)

	return out
}

// Constraint looks a row up by name.
func (m *Model) Constraint(name string) (Constraint, bool) {
	idx, ok := m.conNames[name]
	if !ok {
		return Constraint{}, false
	}

	return m.cons[idx], true
}

// Objective returns the current objective.
func (m *Model) Objective() Objective { return m.objective }

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
