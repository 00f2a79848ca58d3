package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/teflow/core"
	"github.com/katalvlaran/teflow/flow"
	"github.com/katalvlaran/teflow/lpformat"
	"github.com/katalvlaran/teflow/metrics"
	"github.com/katalvlaran/teflow/solver"
	"github.com/katalvlaran/teflow/te"
)

type solveFlags struct {
	scenario    string
	k           int
	metric      string
	variants    []string
	parallel    bool
	exportDir   string
	metricsFile string
	noBounds    bool
	maxflow     string
	fail        []string
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Build and solve the traffic-engineering models of a scenario",
		Example: `  teflow solve --scenario ring4.yaml
  teflow solve --scenario ring4.yaml --variant mlu-constrained --k 3 --parallel`,
		RunE: func(cmd *cobra.Command, _ []string) error { return a.runSolve(cmd, f) },
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.scenario, "scenario", "s", "", "scenario YAML file")
	fl.IntVar(&f.k, "k", 0, "candidate paths per pair")
	fl.StringVar(&f.metric, "metric", "", "path ranking metric (weight|hops)")
	fl.StringSliceVar(&f.variants, "variant", nil, "variants to solve (all|mt|mlu|mlu-constrained)")
	fl.BoolVar(&f.parallel, "parallel", false, "solve variants concurrently")
	fl.StringVar(&f.exportDir, "export-dir", "", "write each model as <variant>.lp into this directory")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file")
	fl.BoolVar(&f.noBounds, "no-bounds", false, "skip the per-pair max-flow check")
	fl.StringVar(&f.maxflow, "maxflow", "", "max-flow algorithm for the pair check (edmonds-karp|dinic)")
	fl.StringSliceVar(&f.fail, "fail", nil, "links to remove before solving, as u-v (repeatable)")
	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, f solveFlags) error {
	ctx := cmd.Context()
	s, inst, err := a.loadScenario(f.scenario)
	if err != nil {
		return err
	}
	k, metric, err := a.pathSettings(cmd, s, f.k, f.metric)
	if err != nil {
		return err
	}
	variants, err := a.selectVariants(f.variants)
	if err != nil {
		return err
	}
	if len(f.fail) > 0 {
		keys, perr := parseLinks(f.fail)
		if perr != nil {
			return perr
		}
		if inst.Graph, err = core.WithoutLinks(inst.Graph, keys...); err != nil {
			return err
		}
		a.logger.Info("links failed", "links", f.fail, "remaining", inst.Graph.LinkCount())
	}

	if !f.noBounds && containsVariant(variants, te.MinMLUConstrained) {
		fopts := a.cfg.FlowOptions(a.logger)
		if f.maxflow != "" {
			alg, perr := flow.ParseAlgorithm(f.maxflow)
			if perr != nil {
				return perr
			}
			fopts = append(fopts, flow.WithAlgorithm(alg))
		}
		bounds, berr := flow.PairBounds(ctx, inst.Graph, inst.Demand, fopts...)
		if berr != nil {
			return berr
		}
		for _, b := range bounds {
			if b.Exceeds(a.cfg.Solver.FeasibilityTolerance) {
				a.logger.Warn("demand exceeds pair max flow; full satisfaction is infeasible",
					"src", b.Src, "dst", b.Dst, "demand", b.Demand, "max_flow", b.MaxFlow)
			}
		}
	}

	reg := prometheus.NewRegistry()
	col, err := metrics.New(reg)
	if err != nil {
		return err
	}
	runner := te.NewRunner(
		solver.NewSimplex(a.cfg.SolverOptions(a.logger)...),
		te.WithLogger(a.logger),
		te.WithMetrics(col),
		te.WithK(k),
		te.WithMetric(metric),
		te.WithParallel(f.parallel || a.cfg.Solver.Parallel),
	)
	rep, err := runner.Run(ctx, inst.Graph, inst.Demand, variants...)
	if err != nil {
		return err
	}
	printReport(a.out, inst.Name, rep)

	if f.exportDir != "" {
		if err = exportReport(f.exportDir, rep); err != nil {
			return err
		}
	}
	path := f.metricsFile
	if path == "" {
		path = a.cfg.Metrics.Textfile
	}
	if path != "" {
		if err = prometheus.WriteToTextfile(path, reg); err != nil {
			return fmt.Errorf("teflow: metrics: %w", err)
		}
	}

	return nil
}

// selectVariants applies the --variant flag over the configured list.
func (a *app) selectVariants(names []string) ([]te.Variant, error) {
	if len(names) == 0 {
		return a.cfg.Variants()
	}
	var out []te.Variant
	for _, n := range names {
		if n == "all" {
			return te.Variants, nil
		}
		v, err := te.ParseVariant(n)
		if err != nil {
			return nil, err
		}
		if !containsVariant(out, v) {
			out = append(out, v)
		}
	}

	return out, nil
}

func containsVariant(vs []te.Variant, v te.Variant) bool {
	for _, x := range vs {
		if x == v {
			return true
		}
	}

	return false
}

func exportReport(dir string, rep *te.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("teflow: export: %w", err)
	}
	for _, o := range rep.Outcomes {
		if err := writeModel(filepath.Join(dir, o.Variant.String()+".lp"), o.Formulation); err != nil {
			return err
		}
	}

	return nil
}

func writeModel(path string, f *te.Formulation) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("teflow: export: %w", err)
	}
	if err = lpformat.Write(out, f.Model); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

// parseLinks maps "u-v" arguments to canonical link keys.
func parseLinks(args []string) ([]core.LinkKey, error) {
	keys := make([]core.LinkKey, 0, len(args))
	for _, arg := range args {
		a, b, ok := strings.Cut(arg, "-")
		if !ok {
			return nil, fmt.Errorf("teflow: --fail %q: want u-v", arg)
		}
		u, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, fmt.Errorf("teflow: --fail %q: %w", arg, err)
		}
		v, err := strconv.Atoi(strings.TrimSpace(b))
		if err != nil {
			return nil, fmt.Errorf("teflow: --fail %q: %w", arg, err)
		}
		keys = append(keys, core.Canonical(u, v))
	}

	return keys, nil
}
