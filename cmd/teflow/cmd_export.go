package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/teflow/ksp"
	"github.com/katalvlaran/teflow/lpformat"
	"github.com/katalvlaran/teflow/te"
)

type exportFlags struct {
	scenario string
	variant  string
	out      string
	k        int
	metric   string
}

func newExportCmd(a *app) *cobra.Command {
	var f exportFlags
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write one model in CPLEX LP format without solving it",
		Long: `export builds a single variant and writes it in CPLEX LP format, for
use with an external solver (HiGHS, CBC, GLPK, CPLEX, Gurobi).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := te.ParseVariant(f.variant)
			if err != nil {
				return err
			}
			s, inst, err := a.loadScenario(f.scenario)
			if err != nil {
				return err
			}
			k, metric, err := a.pathSettings(cmd, s, f.k, f.metric)
			if err != nil {
				return err
			}
			cat, err := ksp.Enumerate(cmd.Context(), inst.Graph, k, ksp.WithMetric(metric))
			if err != nil {
				return err
			}
			inc, err := te.NewIncidence(cat)
			if err != nil {
				return err
			}
			form, err := te.Build(v, inst.Graph, inc, inst.Demand)
			if err != nil {
				return err
			}
			st := form.Stats()
			a.logger.Info("model built", "variant", v.String(), "vars", st.Vars(), "constrs", st.Constrs())

			if f.out == "" || f.out == "-" {
				return lpformat.Write(a.out, form.Model)
			}
			if err = writeModel(f.out, form); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "wrote %s (%d vars, %d constraints)\n", f.out, st.Vars(), st.Constrs())

			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.scenario, "scenario", "s", "", "scenario YAML file")
	fl.StringVar(&f.variant, "variant", "max-throughput", "variant to export (mt|mlu|mlu-constrained)")
	fl.StringVarP(&f.out, "out", "o", "-", "output file, - for stdout")
	fl.IntVar(&f.k, "k", 0, "candidate paths per pair")
	fl.StringVar(&f.metric, "metric", "", "path ranking metric (weight|hops)")
	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}
