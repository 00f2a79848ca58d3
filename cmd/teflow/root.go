package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/teflow/config"
	"github.com/katalvlaran/teflow/core"
	"github.com/katalvlaran/teflow/scenario"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

// newRootCmd assembles the command tree. Each call returns a fresh tree, so
// tests can execute commands without sharing flag state.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "teflow",
		Short: "Path-based traffic-engineering LP models",
		Long: `teflow enumerates k-shortest candidate paths on a capacitated topology
and builds three linear programs over them: maximum throughput, minimum
maximum link utilisation with a throughput bonus, and minimum maximum link
utilisation with every demand satisfied.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "TOML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "override log.level (debug|info|warn|error)")
	pf.StringVar(&a.logFormat, "log-format", "", "override log.format (text|json)")

	root.AddCommand(
		newSolveCmd(a),
		newPathsCmd(a),
		newExportCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// setup loads the configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := cfg.Logger(a.errOut)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger.With("cmd", cmd.Name())

	return nil
}

// pathSettings resolves k and metric: flag, then scenario, then config.
func (a *app) pathSettings(cmd *cobra.Command, s *scenario.Scenario, flagK int, flagMetric string) (int, core.Metric, error) {
	k := a.cfg.Paths.K
	if s != nil && s.K > 0 {
		k = s.K
	}
	if cmd.Flags().Changed("k") {
		k = flagK
	}
	if k < 1 {
		return 0, 0, fmt.Errorf("teflow: k must be at least 1, got %d", k)
	}

	name := a.cfg.Paths.Metric
	if s != nil && s.Metric != "" {
		name = s.Metric
	}
	if cmd.Flags().Changed("metric") {
		name = flagMetric
	}
	metric, err := core.ParseMetric(name)
	if err != nil {
		return 0, 0, err
	}

	return k, metric, nil
}

// loadScenario reads and materializes a scenario file.
func (a *app) loadScenario(path string) (*scenario.Scenario, *scenario.Instance, error) {
	s, err := scenario.Load(path)
	if err != nil {
		return nil, nil, err
	}
	inst, err := s.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	st := inst.Graph.Stats()
	a.logger.Debug("scenario loaded",
		"path", path,
		"name", inst.Name,
		"nodes", st.NodeCount,
		"links", st.LinkCount,
		"isolated", st.Isolated,
		"min_capacity", st.MinCapacity,
		"max_capacity", st.MaxCapacity,
		"demand", inst.Demand.Total(),
		"pairs", inst.Demand.Positive(),
	)

	return s, inst, nil
}
