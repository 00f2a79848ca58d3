// SPDX-License-Identifier: MIT
//
// File: standard.go
// Role: Conversion of a model.Model into the standard form
//
//	minimize cᵀy  s.t.  A y = b,  y ≥ 0
//
// expected by gonum's lp.Simplex, and recovery of model values from y.
// Steps:
//  1. Shift every variable by its lower bound: x = lb + y.
//  2. Presolve columns with no non-zero row coefficient: they sit at the
//     bound their cost prefers (or make the problem unbounded).
//  3. Presolve rows with no non-zero coefficient: feasible ⇒ dropped,
//     otherwise the model is infeasible.
//  4. One slack (+1) per ≤ row, one surplus (−1) per ≥ row, one slack per
//     finite upper bound.
//  5. Rows with negative right-hand side are negated so b ≥ 0.

package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/teflow/model"
)

// stdRow is one standard-form row before densification.
type stdRow struct {
	cols  []int
	coefs []float64
	slack float64 // 0 (equality), +1 or −1
	rhs   float64
}

// standardForm is the converted problem plus what is needed to map back.
type standardForm struct {
	c []float64
	A *mat.Dense
	b []float64

	// colVar[k] is the model variable behind standard column k < len(colVar).
	colVar []int
	// fixed holds presolved variable values; NaN for variables left in the LP.
	fixed []float64
	lower []float64

	// presolveInfeasible is set when an empty row cannot be satisfied.
	presolveInfeasible bool
	// unboundedRay is set when a free-improving column has no row and no upper bound.
	unboundedRay bool
}

// rows returns the number of standard-form rows.
func (sf *standardForm) rows() int { return len(sf.b) }

// toStandard converts m. tol is the feasibility tolerance for empty rows.
func toStandard(m *model.Model, tol float64) *standardForm {
	vars := m.Vars()
	cons := m.Constraints()
	obj := m.Objective()

	sign := 1.0
	if obj.Sense == model.Maximize {
		sign = -1
	}
	cost := make([]float64, len(vars))
	for _, t := range obj.Terms {
		cost[t.Var.Index()] += sign * t.Coef
	}

	sf := &standardForm{fixed: make([]float64, len(vars)), lower: make([]float64, len(vars))}

	// 1–2) Columns
	used := make([]bool, len(vars))
	for _, c := range cons {
		for _, t := range c.Terms {
			if t.Coef != 0 {
				used[t.Var.Index()] = true
			}
		}
	}
	colOf := make([]int, len(vars))
	for j, v := range vars {
		sf.lower[j] = v.Lower
		if used[j] {
			sf.fixed[j] = math.NaN()
			colOf[j] = len(sf.colVar)
			sf.colVar = append(sf.colVar, j)
			continue
		}
		colOf[j] = -1
		switch {
		case cost[j] < 0 && math.IsInf(v.Upper, 1):
			sf.unboundedRay = true
			sf.fixed[j] = v.Lower
		case cost[j] < 0:
			sf.fixed[j] = v.Upper
		default:
			sf.fixed[j] = v.Lower
		}
	}

	// 3–4) Rows
	var rows []stdRow
	for _, c := range cons {
		r := stdRow{rhs: c.RHS}
		for _, t := range c.Terms {
			r.rhs -= t.Coef * vars[t.Var.Index()].Lower
			if t.Coef == 0 {
				continue
			}
			r.cols = append(r.cols, colOf[t.Var.Index()])
			r.coefs = append(r.coefs, t.Coef)
		}
		if len(r.cols) == 0 {
			if !emptyRowHolds(c.Sense, r.rhs, tol) {
				sf.presolveInfeasible = true
			}
			continue
		}
		switch c.Sense {
		case model.LessEqual:
			r.slack = 1
		case model.GreaterEqual:
			r.slack = -1
		}
		rows = append(rows, r)
	}
	for k, j := range sf.colVar {
		if ub := vars[j].Upper; !math.IsInf(ub, 1) {
			rows = append(rows, stdRow{cols: []int{k}, coefs: []float64{1}, slack: 1, rhs: ub - vars[j].Lower})
		}
	}
	if sf.presolveInfeasible || len(rows) == 0 {
		return sf
	}

	// 5) Densify
	nSlack := 0
	for _, r := range rows {
		if r.slack != 0 {
			nSlack++
		}
	}
	nCols := len(sf.colVar) + nSlack
	sf.A = mat.NewDense(len(rows), nCols, nil)
	sf.b = make([]float64, len(rows))
	sf.c = make([]float64, nCols)
	for k, j := range sf.colVar {
		sf.c[k] = cost[j]
	}
	slackCol := len(sf.colVar)
	for i, r := range rows {
		flip := 1.0
		if r.rhs < 0 {
			flip = -1
		}
		for p, col := range r.cols {
			sf.A.Set(i, col, sf.A.At(i, col)+flip*r.coefs[p])
		}
		if r.slack != 0 {
			sf.A.Set(i, slackCol, flip*r.slack)
			slackCol++
		}
		sf.b[i] = flip * r.rhs
	}

	return sf
}

// values maps a standard-form solution y back to model variable values.
func (sf *standardForm) values(y []float64) []float64 {
	out := make([]float64, len(sf.fixed))
	copy(out, sf.fixed)
	for k, j := range sf.colVar {
		v := 0.0
		if y != nil {
			v = y[k]
		}
		out[j] = sf.lower[j] + v
	}

	return out
}

// emptyRowHolds checks 0 sense rhs.
func emptyRowHolds(s model.Sense, rhs, tol float64) bool {
	switch s {
	case model.LessEqual:
		return rhs >= -tol
	case model.GreaterEqual:
		return rhs <= tol
	default:
		return math.Abs(rhs) <= tol
	}
}
