package builder

import (
	"fmt"

	"github.com/katalvlaran/teflow/core"
)

// requireNodes checks that g holds at least need nodes.
func requireNodes(method string, g *core.Graph, need int) error {
	if g.NodeCount() < need {
		return fmt.Errorf("%s: need %d nodes, graph has %d: %w", method, need, g.NodeCount(), ErrGraphTooSmall)
	}

	return nil
}

// addLink draws a capacity (and optional weight) and adds the link u–v.
// An existing link is left untouched and consumes no draw, so constructors
// compose (e.g. Ring then RandomSparse chords).
func addLink(method string, g *core.Graph, cfg builderConfig, u, v int) error {
	if g.HasLink(u, v) {
		return nil
	}
	c := cfg.capacityFn(cfg.rng)
	if !(c > 0) {
		return fmt.Errorf("%s: capacity draw %g for %d–%d: %w", method, c, u, v, ErrConstructFailed)
	}
	var opts []core.LinkOption
	if cfg.weightFn != nil {
		opts = append(opts, core.WithWeight(cfg.weightFn(cfg.rng)))
	}
	if err := g.AddLink(u, v, c, opts...); err != nil {
		return fmt.Errorf("%s: AddLink(%d–%d, c=%g): %w", method, u, v, c, err)
	}

	return nil
}
