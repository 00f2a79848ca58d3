package config_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/teflow/config"
	"github.com/katalvlaran/teflow/core"
	"github.com/katalvlaran/teflow/ksp"
	"github.com/katalvlaran/teflow/solver"
	"github.com/katalvlaran/teflow/te"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, ksp.DefaultK, cfg.Paths.K)
	require.Equal(t, core.MetricWeight, cfg.Metric())
	require.Equal(t, solver.DefaultTolerance, cfg.Solver.Tolerance)

	vs, err := cfg.Variants()
	require.NoError(t, err)
	require.Equal(t, te.Variants, vs)
}

func TestLoad_Full(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "full.toml"))
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Paths.K)
	require.Equal(t, core.MetricHops, cfg.Metric())
	require.Equal(t, 1e-9, cfg.Solver.Tolerance)
	require.Equal(t, solver.DefaultFeasibilityTolerance, cfg.Solver.FeasibilityTolerance)
	require.True(t, cfg.Solver.Parallel)
	require.Equal(t, "/tmp/teflow.prom", cfg.Metrics.Textfile)
	require.Equal(t, "dinic", cfg.Flow.Algorithm)
	require.Len(t, cfg.FlowOptions(nil), 2)

	vs, err := cfg.Variants()
	require.NoError(t, err)
	require.Equal(t, []te.Variant{te.MaxThroughput, te.MinMLUConstrained}, vs)

	var buf bytes.Buffer
	l, err := cfg.Logger(&buf)
	require.NoError(t, err)
	l.Debug("loaded", "k", 3)
	require.Contains(t, buf.String(), `"msg":"loaded"`)
	require.Len(t, cfg.SolverOptions(l), 3)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "partial.toml"))
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Paths.K)
	require.Equal(t, "weight", cfg.Paths.Metric)
	require.Equal(t, "text", cfg.Log.Format)
	require.False(t, cfg.Solver.Parallel)
	require.Equal(t, "edmonds-karp", cfg.Flow.Algorithm)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "unknown.toml"))
	require.ErrorIs(t, err, config.ErrUnknownKey)

	_, err = config.Load(filepath.Join("testdata", "missing.toml"))
	require.Error(t, err)

	bad := []func(*config.Config){
		func(c *config.Config) { c.Paths.K = 0 },
		func(c *config.Config) { c.Paths.Metric = "latency" },
		func(c *config.Config) { c.Solver.Tolerance = 0 },
		func(c *config.Config) { c.Solver.Variants = []string{"fastest"} },
		func(c *config.Config) { c.Log.Level = "loud" },
		func(c *config.Config) { c.Log.Format = "xml" },
		func(c *config.Config) { c.Flow.Algorithm = "push-relabel" },
	}
	for i, mutate := range bad {
		cfg := config.Default()
		mutate(&cfg)
		require.ErrorIs(t, cfg.Validate(), config.ErrInvalid, "case %d", i)
	}
}
