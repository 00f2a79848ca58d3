// SPDX-License-Identifier: MIT
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical topologies.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/teflow/core"
)

// Constructor applies a deterministic topology mutation to g using the
// resolved builderConfig. Constructors MUST validate parameters early,
// emit links in a stable documented order and return sentinel errors.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a topology with n nodes and graph options gopts,
// resolves the builder configuration from bopts, and applies all
// constructors in order. Any constructor error is wrapped with
// "BuildGraph: %w" and returned immediately.
//
// Complexity: O(n + len(bopts)) plus the cost of each constructor.
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Topology names accepted by Generate.
const (
	TopologyRing     = "ring"
	TopologyPath     = "path"
	TopologyStar     = "star"
	TopologyWheel    = "wheel"
	TopologyComplete = "complete"
	TopologyGrid     = "grid"
	TopologyRandom   = "random"
)

// Params sizes a named topology for Generate.
//   - N: node count (all but grid).
//   - Rows, Cols: grid dimensions.
//   - P: chord probability for "random", which lays a ring first so the
//     result is always connected.
type Params struct {
	N    int
	Rows int
	Cols int
	P    float64
}

// Generate builds the named topology. It is the single entry point used by
// scenario files and the command line.
func Generate(name string, p Params, gopts []core.GraphOption, bopts ...BuilderOption) (*core.Graph, error) {
	switch name {
	case TopologyRing:
		return BuildGraph(p.N, gopts, bopts, Ring(p.N))
	case TopologyPath:
		return BuildGraph(p.N, gopts, bopts, Path(p.N))
	case TopologyStar:
		return BuildGraph(p.N, gopts, bopts, Star(p.N))
	case TopologyWheel:
		return BuildGraph(p.N, gopts, bopts, Wheel(p.N))
	case TopologyComplete:
		return BuildGraph(p.N, gopts, bopts, Complete(p.N))
	case TopologyGrid:
		if p.Rows < minGridDim || p.Cols < minGridDim {
			return nil, fmt.Errorf("Generate: grid %dx%d: %w", p.Rows, p.Cols, ErrTooFewVertices)
		}
		return BuildGraph(p.Rows*p.Cols, gopts, bopts, Grid(p.Rows, p.Cols))
	case TopologyRandom:
		return BuildGraph(p.N, gopts, bopts, Ring(p.N), RandomSparse(p.N, p.P))
	default:
		return nil, fmt.Errorf("Generate: %q: %w", name, ErrUnknownTopology)
	}
}
