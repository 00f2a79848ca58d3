package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/teflow/builder"
	"github.com/katalvlaran/teflow/core"
	"github.com/katalvlaran/teflow/scenario"
)

type generateFlags struct {
	name     string
	n        int
	rows     int
	cols     int
	p        float64
	seed     int64
	capacity float64
	tiers    []float64
	uniform  float64
	k        int
	out      string
}

func newGenerateCmd(a *app) *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:       "generate ring|path|star|wheel|complete|grid|random",
		Short:     "Write a synthetic scenario file",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"ring", "path", "star", "wheel", "complete", "grid", "random"},
		Example: `  teflow generate ring --n 4 --capacity 10 --uniform 1.25 -o ring4.yaml
  teflow generate random --n 20 --p 0.15 --seed 7 --tiers 10,40,100`,
		RunE: func(_ *cobra.Command, args []string) error {
			if !(f.capacity > 0) {
				return fmt.Errorf("teflow: capacity must be positive, got %g", f.capacity)
			}
			for _, t := range f.tiers {
				if !(t > 0) {
					return fmt.Errorf("teflow: tiers must be positive, got %g", t)
				}
			}
			opts := []builder.BuilderOption{builder.WithSeed(f.seed)}
			if len(f.tiers) > 0 {
				opts = append(opts, builder.WithTieredCapacity(f.tiers...))
			} else {
				opts = append(opts, builder.WithCapacity(f.capacity))
			}
			params := builder.Params{N: f.n, Rows: f.rows, Cols: f.cols, P: f.p}
			g, err := builder.Generate(args[0], params, nil, opts...)
			if err != nil {
				return err
			}
			name := f.name
			if name == "" {
				name = fmt.Sprintf("%s%d", args[0], g.NodeCount())
			}
			s := scenario.FromInstance(name, g, nil, f.k, core.MetricWeight)
			if f.uniform > 0 {
				u := f.uniform
				s.Uniform = &u
			}
			a.logger.Info("topology generated", "kind", args[0], "nodes", g.NodeCount(), "links", g.LinkCount())

			if f.out == "" || f.out == "-" {
				return s.Encode(a.out)
			}

			return s.Save(f.out)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.name, "name", "", "scenario name (default <kind><nodes>)")
	fl.IntVar(&f.n, "n", 4, "node count")
	fl.IntVar(&f.rows, "rows", 0, "grid rows")
	fl.IntVar(&f.cols, "cols", 0, "grid columns")
	fl.Float64Var(&f.p, "p", 0.2, "chord probability for random")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	fl.Float64Var(&f.capacity, "capacity", builder.DefaultCapacity, "capacity of every link")
	fl.Float64SliceVar(&f.tiers, "tiers", nil, "draw capacities from these tiers")
	fl.Float64Var(&f.uniform, "uniform", 0, "uniform demand per ordered pair")
	fl.IntVar(&f.k, "k", 0, "k written into the scenario (0 leaves it to the config)")
	fl.StringVarP(&f.out, "out", "o", "-", "output file, - for stdout")

	return cmd
}
