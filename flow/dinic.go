package flow

import (
	"context"
	"math"
)

// dinic computes the maximum flow with level graphs and blocking flows.
//
// Steps:
//  1. BFS from source over residual arcs to assign levels; stop if the sink
//     is unreachable.
//  2. Repeatedly push flow along level-increasing arcs by DFS, advancing a
//     per-node arc pointer past arcs that cannot carry more.
//
// Complexity: O(V² · E).
func dinic(ctx context.Context, r *residual, source, sink int, cfg Options) (float64, error) {
	var total float64
	level := make([]int, r.n)
	iter := make([]int, r.n)
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		// 1) Level graph
		for i := range level {
			level[i] = -1
		}
		level[source] = 0
		queue := []int{source}
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for _, v := range r.adj[u] {
				if level[v] < 0 && r.res[u][v] > r.eps {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		// 2) Blocking flow
		for i := range iter {
			iter[i] = 0
		}
		for {
			pushed := r.dinicPush(level, iter, source, sink, math.Inf(1))
			if pushed <= r.eps {
				break
			}
			cfg.Logger.Debug("blocking push", "flow", pushed)
			total += pushed
		}
	}

	return total, nil
}

// dinicPush sends up to available units from u to sink along the level graph.
func (r *residual) dinicPush(level, iter []int, u, sink int, available float64) float64 {
	if u == sink {
		return available
	}
	for ; iter[u] < len(r.adj[u]); iter[u]++ {
		v := r.adj[u][iter[u]]
		c := r.res[u][v]
		if c <= r.eps || level[v] != level[u]+1 {
			continue
		}
		if pushed := r.dinicPush(level, iter, v, sink, math.Min(available, c)); pushed > r.eps {
			r.push(u, v, pushed)
			return pushed
		}
	}

	return 0
}
