// SPDX-License-Identifier: MIT
//
// File: catalog.go
// Role: Enumerate candidate paths for every ordered pair and index them.
// Determinism:
//   - Paths are stored in (src asc, dst asc, rank asc) order; the global
//     index of a path is its position in that order and never changes.

package ksp

import (
	"context"
	"fmt"

	"github.com/katalvlaran/teflow/bfs"
	"github.com/katalvlaran/teflow/core"
)

// Pair is an ordered (source, destination) node pair.
type Pair struct {
	Src int
	Dst int
}

// span is a half-open index range [Start, End) into Catalog.paths.
type span struct {
	Start int
	End   int
}

// Catalog is the immutable path catalogue of a topology: up to k candidate
// paths per ordered pair, globally indexed.
type Catalog struct {
	n      int
	k      int
	metric core.Metric
	paths  []Path
	spans  []span // n*n entries, row-major by (src, dst)
}

// Enumerate runs KShortest for every ordered pair (i, j), i ≠ j.
// Pairs in different connected components get no paths without a search.
//
// Errors:
//   - ErrNilGraph, ErrBadK.
//   - ctx.Err() if the context is cancelled between pairs.
//
// Complexity: O(n² · KShortest).
func Enumerate(ctx context.Context, g *core.Graph, k int, opts ...Option) (*Catalog, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadK, k)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	comp, err := bfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("ksp: components: %w", err)
	}

	n := g.NodeCount()
	c := &Catalog{n: n, k: k, metric: cfg.Metric, spans: make([]span, n*n)}
	for i := 0; i < n; i++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		for j := 0; j < n; j++ {
			start := len(c.paths)
			if i != j && comp[i] == comp[j] {
				ps, kerr := KShortest(g, i, j, k, WithMetric(cfg.Metric))
				if kerr != nil {
					return nil, kerr
				}
				c.paths = append(c.paths, ps...)
			}
			c.spans[i*n+j] = span{Start: start, End: len(c.paths)}
		}
	}

	return c, nil
}

// NodeCount returns the node count of the enumerated topology.
func (c *Catalog) NodeCount() int { return c.n }

// K returns the per-pair path limit used for enumeration.
func (c *Catalog) K() int { return c.k }

// Metric returns the ranking metric used for enumeration.
func (c *Catalog) Metric() core.Metric { return c.metric }

// Len returns the total number of paths.
func (c *Catalog) Len() int { return len(c.paths) }

// Path returns the path with global index idx.
func (c *Catalog) Path(idx int) Path { return c.paths[idx] }

// Paths returns all paths in global index order. The slice must not be modified.
func (c *Catalog) Paths() []Path { return c.paths }

// PairRange returns the half-open global index range of the (src, dst) paths.
// Out-of-range or diagonal pairs yield an empty range.
func (c *Catalog) PairRange(src, dst int) (start, end int) {
	if src < 0 || src >= c.n || dst < 0 || dst >= c.n {
		return 0, 0
	}
	s := c.spans[src*c.n+dst]

	return s.Start, s.End
}

// PairPaths returns the candidate paths of (src, dst) in rank order.
func (c *Catalog) PairPaths(src, dst int) []Path {
	start, end := c.PairRange(src, dst)

	return c.paths[start:end]
}

// Pairs returns every ordered pair with at least one path, in (src, dst) order.
func (c *Catalog) Pairs() []Pair {
	var out []Pair
	for i := 0; i < c.n; i++ {
		for j := 0; j < c.n; j++ {
			if s := c.spans[i*c.n+j]; s.End > s.Start {
				out = append(out, Pair{Src: i, Dst: j})
			}
		}
	}

	return out
}
