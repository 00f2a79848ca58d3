// Package model is a small, solver-agnostic container for linear programs:
// bounded continuous variables, linear constraints with a sense and a
// right-hand side, and a linear objective to minimize or maximize.
//
// Every Var handle is bound to the Model that created it. Passing a handle to
// a different Model is rejected with ErrForeignVar, so two models built from
// the same inputs can never share variables by accident.
//
// A Model is not safe for concurrent mutation. Once built it may be read by
// any number of goroutines.
package model

import (
	"errors"
	"math"
)

// Sentinel errors for model construction.
var (
	// ErrForeignVar indicates a Var created by another Model.
	ErrForeignVar = errors.New("model: variable belongs to another model")

	// ErrDuplicateName indicates a second variable or constraint with the same name.
	ErrDuplicateName = errors.New("model: duplicate name")

	// ErrEmptyName indicates an empty variable or constraint name.
	ErrEmptyName = errors.New("model: empty name")

	// ErrBadBound indicates a non-finite lower bound, a NaN or -Inf upper bound,
	// or lower > upper.
	ErrBadBound = errors.New("model: invalid variable bounds")

	// ErrBadCoef indicates a NaN or infinite coefficient, constant or right-hand side.
	ErrBadCoef = errors.New("model: coefficient must be finite")

	// ErrBadSense indicates an unknown constraint or objective sense.
	ErrBadSense = errors.New("model: unknown sense")

	// ErrViolated indicates a point that breaks a bound or a constraint.
	ErrViolated = errors.New("model: point violates the model")
)

// Inf is the upper bound of a variable unbounded above.
var Inf = math.Inf(1)

// Sense is the relation of a constraint: lhs ≤, ≥ or = rhs.
type Sense int

const (
	// LessEqual is Σ a·x ≤ b.
	LessEqual Sense = iota
	// GreaterEqual is Σ a·x ≥ b.
	GreaterEqual
	// Equal is Σ a·x = b.
	Equal
)

// String returns the LP-file operator of the sense.
func (s Sense) String() string {
	switch s {
	case LessEqual:
		return "<="
	case GreaterEqual:
		return ">="
	case Equal:
		return "="
	default:
		return "?"
	}
}

// ObjSense is the optimization direction.
type ObjSense int

const (
	// Minimize the objective.
	Minimize ObjSense = iota
	// Maximize the objective.
	Maximize
)

// String returns "minimize" or "maximize".
func (s ObjSense) String() string {
	if s == Maximize {
		return "maximize"
	}

	return "minimize"
}

// Var is a handle to a decision variable of one Model.
type Var struct {
	m   *Model
	idx int
}

// Index returns the column index of the variable inside its model.
func (v Var) Index() int { return v.idx }

// Model returns the owning model (nil for the zero Var).
func (v Var) Model() *Model { return v.m }

// Name returns the variable name.
func (v Var) Name() string {
	if v.m == nil || v.idx < 0 || v.idx >= len(v.m.vars) {
		return ""
	}

	return v.m.vars[v.idx].Name
}

// VarInfo describes a declared variable.
type VarInfo struct {
	Name  string
	Lower float64
	Upper float64 // Inf when unbounded above
}

// Term is one coefficient·variable product.
type Term struct {
	Var  Var
	Coef float64
}

// Constraint is a stored linear row: Σ Terms Sense RHS. Terms reference
// distinct variables in order of first appearance.
type Constraint struct {
	Name  string
	Terms []Term
	Sense Sense
	RHS   float64
}

// Objective is the stored objective: Sense (Σ Terms + Const).
type Objective struct {
	Sense ObjSense
	Terms []Term
	Const float64
}
