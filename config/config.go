// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: TOML run configuration for the teflow command.
// Policy:
//   - Load decodes on top of Default(), so missing keys keep their defaults.
//   - Unknown keys are an error (toml.MetaData.Undecoded).

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/teflow/core"
	"github.com/katalvlaran/teflow/flow"
	"github.com/katalvlaran/teflow/ksp"
	"github.com/katalvlaran/teflow/solver"
	"github.com/katalvlaran/teflow/te"
)

// Sentinel errors.
var (
	// ErrUnknownKey indicates a key the configuration does not define.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalid indicates a value outside its domain.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the full run configuration.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Solver  Solver  `toml:"solver"`
	Flow    Flow    `toml:"flow"`
	Log     Log     `toml:"log"`
	Metrics Metrics `toml:"metrics"`
}

// Paths configures candidate-path enumeration.
type Paths struct {
	K      int    `toml:"k"`
	Metric string `toml:"metric"`
}

// Solver configures the LP backend and variant selection.
type Solver struct {
	Tolerance            float64  `toml:"tolerance"`
	FeasibilityTolerance float64  `toml:"feasibility_tolerance"`
	Parallel             bool     `toml:"parallel"`
	Variants             []string `toml:"variants"`
}

// Flow configures the per-pair max-flow check run before solving.
type Flow struct {
	Algorithm string `toml:"algorithm"` // edmonds-karp | dinic
}

// Log configures the slog handler.
type Log struct {
	Level  string `toml:"level"`  // debug | info | warn | error
	Format string `toml:"format"` // text | json
}

// Metrics configures the Prometheus text-file dump.
type Metrics struct {
	Textfile string `toml:"textfile"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Paths: Paths{K: ksp.DefaultK, Metric: core.MetricWeight.String()},
		Solver: Solver{
			Tolerance:            solver.DefaultTolerance,
			FeasibilityTolerance: solver.DefaultFeasibilityTolerance,
			Variants:             []string{"all"},
		},
		Flow: Flow{Algorithm: flow.EdmondsKarpAlgorithm.String()},
		Log:  Log{Level: "info", Format: "text"},
	}
}

// Load reads the TOML file at path over Default() and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its domain.
func (c Config) Validate() error {
	if c.Paths.K < 1 {
		return fmt.Errorf("%w: paths.k=%d", ErrInvalid, c.Paths.K)
	}
	if _, err := core.ParseMetric(c.Paths.Metric); err != nil {
		return fmt.Errorf("%w: paths.metric: %v", ErrInvalid, err)
	}
	if !(c.Solver.Tolerance > 0) || !(c.Solver.FeasibilityTolerance > 0) {
		return fmt.Errorf("%w: solver tolerances must be positive", ErrInvalid)
	}
	if _, err := c.Variants(); err != nil {
		return err
	}
	if _, err := flow.ParseAlgorithm(c.Flow.Algorithm); err != nil {
		return fmt.Errorf("%w: flow.algorithm: %v", ErrInvalid, err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if f := c.Log.Format; f != "text" && f != "json" {
		return fmt.Errorf("%w: log.format=%q", ErrInvalid, f)
	}

	return nil
}

// Metric returns the parsed ranking metric.
func (c Config) Metric() core.Metric {
	m, _ := core.ParseMetric(c.Paths.Metric)

	return m
}

// Variants expands solver.variants; "all" (or an empty list) selects every variant.
func (c Config) Variants() ([]te.Variant, error) {
	var out []te.Variant
	seen := make(map[te.Variant]bool)
	for _, name := range c.Solver.Variants {
		if name == "all" {
			return append([]te.Variant(nil), te.Variants...), nil
		}
		v, err := te.ParseVariant(name)
		if err != nil {
			return nil, fmt.Errorf("%w: solver.variants: %v", ErrInvalid, err)
		}
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return append([]te.Variant(nil), te.Variants...), nil
	}

	return out, nil
}

// SolverOptions maps the [solver] section to solver options.
func (c Config) SolverOptions(l *slog.Logger) []solver.Option {
	return []solver.Option{
		solver.WithTolerance(c.Solver.Tolerance),
		solver.WithFeasibilityTolerance(c.Solver.FeasibilityTolerance),
		solver.WithLogger(l),
	}
}

// FlowOptions maps the [flow] section to max-flow options.
func (c Config) FlowOptions(l *slog.Logger) []flow.Option {
	alg, _ := flow.ParseAlgorithm(c.Flow.Algorithm)

	return []flow.Option{flow.WithAlgorithm(alg), flow.WithLogger(l)}
}

// Level parses log.level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log.level=%q", ErrInvalid, c.Log.Level)
	}

	return lvl, nil
}

// Logger builds the slog logger described by the [log] section, writing to w.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	lvl, err := c.Level()
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}

	return slog.New(slog.NewTextHandler(w, hopts)), nil
}
