// SPDX-License-Identifier: MIT
//
// File: simplex.go
// Role: Solver implementation backed by gonum's dense simplex.
// Determinism:
//   - Same model ⇒ same standard form ⇒ same pivots and values.
// Concurrency:
//   - A Simplex holds no per-solve state; one value may serve several
//     goroutines solving different models.

package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/teflow/model"
)

// Simplex solves model.Model instances with gonum's lp.Simplex.
type Simplex struct {
	opts Options
}

// NewSimplex returns a simplex solver configured by opts.
func NewSimplex(opts ...Option) *Simplex {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Simplex{opts: cfg}
}

// Solve converts m to standard form and runs the simplex.
//
// Infeasible and unbounded models yield a Result with the matching Status
// and a nil error. Errors are reserved for nil models, a cancelled context
// and numerical failure (ErrNumerical, ErrRankDeficient).
//
// The context is checked once before solving; the simplex itself is not
// interruptible.
func (s *Simplex) Solve(ctx context.Context, m *model.Model) (*Result, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	log := s.opts.Logger.With("model", m.Name())

	sf := toStandard(m, s.opts.FeasibilityTolerance)
	res := &Result{Objective: math.NaN()}
	finish := func() (*Result, error) {
		res.Runtime = time.Since(start)
		log.Debug("solve finished",
			"status", res.Status.String(),
			"objective", res.Objective,
			"rows", sf.rows(),
			"runtime", res.Runtime,
		)

		return res, nil
	}

	if sf.presolveInfeasible {
		res.Status = StatusInfeasible
		return finish()
	}

	var y []float64
	if sf.rows() > 0 {
		rows, cols := sf.A.Dims()
		if rows > cols {
			return nil, fmt.Errorf("%w: %d rows, %d columns", ErrRankDeficient, rows, cols)
		}
		log.Debug("simplex start", "rows", rows, "cols", cols)

		var err error
		_, y, err = lp.Simplex(sf.c, sf.A, sf.b, s.opts.Tolerance, nil)
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			res.Status = StatusInfeasible
			return finish()
		case errors.Is(err, lp.ErrUnbounded):
			res.Status = StatusUnbounded
			return finish()
		case err != nil:
			return nil, fmt.Errorf("%w: %v", ErrNumerical, err)
		}
	}
	if sf.unboundedRay {
		res.Status = StatusUnbounded
		return finish()
	}

	values := sf.values(y)
	if err := m.Check(values, s.opts.FeasibilityTolerance); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNumerical, err)
	}
	res.Status = StatusOptimal
	res.Values = values
	res.Objective = m.Objective().Value(values)

	return finish()
}
