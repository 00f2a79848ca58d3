// SPDX-License-Identifier: MIT
//
// File: runner.go
// Role: End-to-end driver: enumerate → incidence → build variants → solve.
// Concurrency:
//   - With WithParallel(true) the formulations are solved concurrently via
//     errgroup; each goroutine touches only its own model and result slot.

package te

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/teflow/core"
	"github.com/katalvlaran/teflow/demand"
	"github.com/katalvlaran/teflow/ksp"
	"github.com/katalvlaran/teflow/metrics"
	"github.com/katalvlaran/teflow/solver"
)

// Outcome is the built and solved result of one variant.
type Outcome struct {
	Variant     Variant
	Formulation *Formulation
	Result      *solver.Result
	BuildTime   time.Duration

	// Summary is nil unless Result.Status is optimal.
	Summary *Summary
}

// Report is the output of one Run.
type Report struct {
	RunID     uuid.UUID
	Catalog   *ksp.Catalog
	Incidence *Incidence
	Outcomes  []Outcome
}

// Outcome returns the outcome of variant v, if it was run.
func (r *Report) Outcome(v Variant) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.Variant == v {
			return o, true
		}
	}

	return Outcome{}, false
}

// Runner wires enumeration, building and solving together.
type Runner struct {
	solver   solver.Solver
	logger   *slog.Logger
	metrics  *metrics.Collector
	parallel bool
	k        int
	metric   core.Metric
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the run logger (nil keeps the discard logger).
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records build and solve observations on c.
func WithMetrics(c *metrics.Collector) RunnerOption {
	return func(r *Runner) { r.metrics = c }
}

// WithParallel solves the variants concurrently.
func WithParallel(on bool) RunnerOption {
	return func(r *Runner) { r.parallel = on }
}

// WithK sets the number of candidate paths per pair. Panics if k < 1.
func WithK(k int) RunnerOption {
	if k < 1 {
		panic("te: WithK requires k >= 1")
	}

	return func(r *Runner) { r.k = k }
}

// WithMetric selects the path ranking metric.
func WithMetric(m core.Metric) RunnerOption {
	return func(r *Runner) { r.metric = m }
}

// NewRunner returns a Runner solving with s (nil selects solver.NewSimplex()).
func NewRunner(s solver.Solver, opts ...RunnerOption) *Runner {
	r := &Runner{
		solver: s,
		logger: slog.New(slog.DiscardHandler),
		k:      ksp.DefaultK,
		metric: core.MetricWeight,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.solver == nil {
		r.solver = solver.NewSimplex(solver.WithLogger(r.logger))
	}

	return r
}

// Run enumerates candidate paths, builds the requested variants (all three
// when none is given) and solves them.
//
// Infeasible or unbounded variants are reported in their Outcome; only
// construction errors, solver errors and cancellation abort the run.
func (r *Runner) Run(ctx context.Context, g *core.Graph, dm *demand.Matrix, variants ...Variant) (*Report, error) {
	if g == nil || dm == nil {
		return nil, ErrNilInput
	}
	if len(variants) == 0 {
		variants = Variants
	}
	rep := &Report{RunID: uuid.New()}
	log := r.logger.With("run_id", rep.RunID.String())

	// 1) Enumerate
	start := time.Now()
	cat, err := ksp.Enumerate(ctx, g, r.k, ksp.WithMetric(r.metric))
	if err != nil {
		return nil, fmt.Errorf("te: enumerate: %w", err)
	}
	r.metrics.SetPaths(cat.Len())
	log.Info("paths enumerated",
		"nodes", g.NodeCount(),
		"links", g.LinkCount(),
		"k", r.k,
		"metric", r.metric.String(),
		"paths", cat.Len(),
		"elapsed", time.Since(start),
	)

	// 2) Incidence, built once
	inc, err := NewIncidence(cat)
	if err != nil {
		return nil, err
	}
	rep.Catalog, rep.Incidence = cat, inc

	// 3) Build
	for _, v := range variants {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		t0 := time.Now()
		f, berr := Build(v, g, inc, dm)
		if berr != nil {
			return nil, berr
		}
		o := Outcome{Variant: v, Formulation: f, BuildTime: time.Since(t0)}
		st := f.Stats()
		r.metrics.ObserveBuild(v.String(), o.BuildTime, st.Vars(), st.Constrs())
		log.Debug("model built", "variant", v.String(), "vars", st.Vars(), "constrs", st.Constrs(), "elapsed", o.BuildTime)
		rep.Outcomes = append(rep.Outcomes, o)
	}

	// 4) Solve
	if err = r.Solve(ctx, rep.Outcomes); err != nil {
		return nil, err
	}
	for _, o := range rep.Outcomes {
		log.Info("variant solved",
			"variant", o.Variant.String(),
			"status", o.Result.Status.String(),
			"objective", o.Result.Objective,
			"runtime", o.Result.Runtime,
		)
	}

	return rep, nil
}

// Solve fills Result and Summary of every outcome, sequentially or in
// parallel depending on the runner configuration.
func (r *Runner) Solve(ctx context.Context, outs []Outcome) error {
	solveOne := func(ctx context.Context, o *Outcome) error {
		res, err := r.solver.Solve(ctx, o.Formulation.Model)
		if err != nil {
			return fmt.Errorf("te: solve %s: %w", o.Variant, err)
		}
		o.Result = res
		optimal := res.Status == solver.StatusOptimal
		r.metrics.ObserveSolve(o.Variant.String(), res.Status.String(), res.Runtime, res.Objective, optimal)
		if optimal {
			if o.Summary, err = o.Formulation.Summarize(res.Values); err != nil {
				return err
			}
		}

		return nil
	}

	if !r.parallel {
		for i := range outs {
			if err := solveOne(ctx, &outs[i]); err != nil {
				return err
			}
		}

		return nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for i := range outs {
		eg.Go(func() error { return solveOne(egCtx, &outs[i]) })
	}

	return eg.Wait()
}
