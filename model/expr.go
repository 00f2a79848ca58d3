package model

// Expr is a linear expression Σ coef·var + Const under construction.
// The zero value is the empty expression.
type Expr struct {
	Terms []Term
	Const float64
}

// Sum returns the expression v1 + v2 + … with unit coefficients.
func Sum(vars ...Var) Expr {
	e := Expr{Terms: make([]Term, 0, len(vars))}
	for _, v := range vars {
		e.Terms = append(e.Terms, Term{Var: v, Coef: 1})
	}

	return e
}

// AddTerm appends coef·v and returns e for chaining.
func (e *Expr) AddTerm(v Var, coef float64) *Expr {
	e.Terms = append(e.Terms, Term{Var: v, Coef: coef})

	return e
}

// Add appends every term of o scaled by f and adds f·o.Const.
func (e *Expr) Add(o Expr, f float64) *Expr {
	for _, t := range o.Terms {
		e.Terms = append(e.Terms, Term{Var: t.Var, Coef: f * t.Coef})
	}
	e.Const += f * o.Const

	return e
}

// AddConst adds c to the constant part.
func (e *Expr) AddConst(c float64) *Expr {
	e.Const += c

	return e
}

// Eval returns the value of the expression at x (indexed by Var.Index).
func (e Expr) Eval(x []float64) float64 {
	return evalTerms(e.Terms, x) + e.Const
}

func evalTerms(terms []Term, x []float64) float64 {
	var s float64
	for _, t := range terms {
		s += t.Coef * x[t.Var.idx]
	}

	return s
}
