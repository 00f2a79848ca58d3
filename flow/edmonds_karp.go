package flow

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/teflow/core"
)

// MaxFlow computes the maximum flow between source and sink of the
// undirected topology g with the configured algorithm (Edmonds–Karp by
// default) and derives a minimum cut from the final residual network.
//
// Errors:
//   - ErrNilGraph, ErrSourceNotFound, ErrSinkNotFound, ErrSameEndpoints.
//   - ctx.Err() when cancelled between augmentations.
func MaxFlow(ctx context.Context, g *core.Graph, source, sink int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	if !g.HasNode(sink) {
		return nil, fmt.Errorf("%w: %d", ErrSinkNotFound, sink)
	}
	if source == sink {
		return nil, fmt.Errorf("%w: %d", ErrSameEndpoints, source)
	}

	r, err := newResidual(g, cfg.Epsilon)
	if err != nil {
		return nil, err
	}
	var value float64
	if cfg.Algorithm == DinicAlgorithm {
		value, err = dinic(ctx, r, source, sink, cfg)
	} else {
		value, err = edmondsKarp(ctx, r, source, sink, cfg)
	}
	if err != nil {
		return nil, err
	}

	return r.result(source, value), nil
}

// edmondsKarp augments along BFS-shortest residual paths until none remain.
//
// Complexity: O(V · E²).
func edmondsKarp(ctx context.Context, r *residual, source, sink int, cfg Options) (float64, error) {
	var total float64
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		path, bottle := r.shortestAugmentingPath(source, sink)
		if len(path) == 0 || bottle <= cfg.Epsilon {
			break
		}
		cfg.Logger.Debug("augmenting path", "path", path, "flow", bottle)
		total += bottle
		for i := 0; i+1 < len(path); i++ {
			r.push(path[i], path[i+1], bottle)
		}
	}

	return total, nil
}

// shortestAugmentingPath returns the fewest-arc residual path source→sink
// and its bottleneck, or nil when the sink is unreachable.
func (r *residual) shortestAugmentingPath(source, sink int) ([]int, float64) {
	parent := make([]int, r.n)
	for i := range parent {
		parent[i] = -1
	}
	parent[source] = source
	bottle := make([]float64, r.n)
	bottle[source] = math.Inf(1)

	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range r.adj[u] {
			c := r.res[u][v]
			if parent[v] >= 0 || c <= r.eps {
				continue
			}
			parent[v] = u
			bottle[v] = math.Min(bottle[u], c)
			if v == sink {
				path := []int{sink}
				for cur := sink; cur != source; cur = parent[cur] {
					path = append(path, parent[cur])
				}
				for a, b := 0, len(path)-1; a < b; a, b = a+1, b-1 {
					path[a], path[b] = path[b], path[a]
				}
				return path, bottle[sink]
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}
