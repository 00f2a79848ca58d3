// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Solver contract, result/status types, options and sentinel errors.

package solver

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/teflow/model"
)

// Sentinel errors. Infeasibility and unboundedness are not errors: they are
// reported through Result.Status.
var (
	// ErrNilModel indicates Solve was called with a nil model.
	ErrNilModel = errors.New("solver: model is nil")

	// ErrNumerical indicates the underlying simplex failed (singular basis,
	// cycling guard, linear-solve failure) or returned a point that violates
	// the model beyond the feasibility tolerance.
	ErrNumerical = errors.New("solver: numerical failure")

	// ErrRankDeficient indicates more independent equality rows than columns.
	ErrRankDeficient = errors.New("solver: more rows than columns in standard form")
)

// Status is the outcome class of a solve.
type Status int

const (
	// StatusOptimal means Values holds an optimal point.
	StatusOptimal Status = iota
	// StatusInfeasible means no point satisfies every row and bound.
	StatusInfeasible
	// StatusUnbounded means the objective improves without limit.
	StatusUnbounded
)

// String returns "optimal", "infeasible" or "unbounded".
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// Result is the answer of one Solve call.
type Result struct {
	Status Status

	// Objective is the optimal objective in the model's own sense (NaN unless optimal).
	Objective float64

	// Values holds one entry per model variable in column order (nil unless optimal).
	Values []float64

	// Runtime is the wall-clock time spent inside Solve.
	Runtime time.Duration
}

// Value returns the optimal value of v, or NaN if the result is not optimal.
func (r *Result) Value(v model.Var) float64 {
	if r == nil || r.Status != StatusOptimal || v.Index() < 0 || v.Index() >= len(r.Values) {
		return math.NaN()
	}

	return r.Values[v.Index()]
}

// Solver turns a fully built model into a Result.
type Solver interface {
	Solve(ctx context.Context, m *model.Model) (*Result, error)
}

// Options configures the simplex adapter.
type Options struct {
	// Tolerance is the reduced-cost optimality tolerance passed to the simplex.
	Tolerance float64

	// FeasibilityTolerance bounds the row and bound violation accepted when
	// the returned point is verified against the model.
	FeasibilityTolerance float64

	Logger *slog.Logger
}

// Option configures Simplex.
type Option func(*Options)

// Defaults.
const (
	DefaultTolerance            = 1e-10
	DefaultFeasibilityTolerance = 1e-6
)

// WithTolerance sets the optimality tolerance. Panics on a non-positive or NaN value.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic("solver: tolerance must be positive and finite")
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithFeasibilityTolerance sets the post-solve verification tolerance.
// Panics on a non-positive or NaN value.
func WithFeasibilityTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic("solver: feasibility tolerance must be positive and finite")
	}

	return func(o *Options) { o.FeasibilityTolerance = tol }
}

// WithLogger routes debug output to l (nil keeps the discard logger).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the default simplex options.
func DefaultOptions() Options {
	return Options{
		Tolerance:            DefaultTolerance,
		FeasibilityTolerance: DefaultFeasibilityTolerance,
		Logger:               slog.New(slog.DiscardHandler),
	}
}
