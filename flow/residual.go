// SPDX-License-Identifier: MIT
//
// File: residual.go
// Role: Residual network of an undirected topology.
// Determinism:
//   - Neighbor lists are ascending by node ID, so searches are reproducible.
// AI-HINT (file):
//   - An undirected link u–v of capacity c becomes two arcs u→v and v→u of
//     capacity c each; net flow on the link is c − res[u][v].

package flow

import (
	"math"

	"github.com/katalvlaran/teflow/core"
)

// residual holds remaining capacities res[u][v] and sorted neighbor lists.
type residual struct {
	n     int
	res   []map[int]float64
	adj   [][]int
	links []core.Link
	eps   float64
}

// newResidual builds the initial residual network of g.
func newResidual(g *core.Graph, eps float64) (*residual, error) {
	n := g.NodeCount()
	r := &residual{
		n:     n,
		res:   make([]map[int]float64, n),
		adj:   make([][]int, n),
		links: g.Links(),
		eps:   eps,
	}
	for u := 0; u < n; u++ {
		r.res[u] = make(map[int]float64)
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbrs {
			r.adj[u] = append(r.adj[u], nb.ID)
			r.res[u][nb.ID] = nb.Link.Capacity
		}
	}

	return r, nil
}

// push moves f units along u→v.
func (r *residual) push(u, v int, f float64) {
	r.res[u][v] = math.Max(0, r.res[u][v]-f)
	r.res[v][u] += f
}

// reachable marks nodes reachable from s over arcs with capacity > eps.
func (r *residual) reachable(s int) []bool {
	seen := make([]bool, r.n)
	seen[s] = true
	queue := []int{s}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range r.adj[u] {
			if !seen[v] && r.res[u][v] > r.eps {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}

// result assembles flow, source side and cut from the final residual state.
func (r *residual) result(s int, value float64) *Result {
	out := &Result{Value: value, Flow: make(map[core.Arc]float64)}
	for _, l := range r.links {
		key := l.Key()
		f := l.Capacity - r.res[key.Tail][key.Head]
		switch {
		case f > r.eps:
			out.Flow[core.Arc{From: key.Tail, To: key.Head}] = f
		case f < -r.eps:
			out.Flow[core.Arc{From: key.Head, To: key.Tail}] = -f
		}
	}

	side := r.reachable(s)
	for v, in := range side {
		if in {
			out.SourceSide = append(out.SourceSide, v)
		}
	}
	for _, l := range r.links {
		if side[l.U] != side[l.V] {
			out.Cut = append(out.Cut, l.Key())
		}
	}

	return out
}
