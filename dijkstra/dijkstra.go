// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// undirected topology of core.Graph with non-negative float64 link costs.
//
// Notes on implementation choices:
//
//   - Neighbors are relaxed in ascending node order and heap ties are broken
//     by push sequence, so equal-cost paths are resolved identically on every run.
//   - Distances are only updated on strict improvement; the first discovered
//     predecessor wins among equal-cost alternatives.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/teflow/core"
)

// Dijkstra computes shortest distances from Options.Source to every node.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance (+Inf if unreachable or beyond MaxDistance).
//   - prev: prev[v] is the predecessor of v on the chosen shortest path,
//     NoPredecessor for the source and unreachable nodes.
//   - err:  ErrNilGraph, ErrNoSource or ErrNodeNotFound.
//
// Complexity:
//
//   - Time:  O((n + E) log n)
//   - Space: O(n + E)
func Dijkstra(g *core.Graph, opts ...Option) ([]float64, []int, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if cfg.Source == noSource {
		return nil, nil, ErrNoSource
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %d", ErrNodeNotFound, cfg.Source)
	}

	// 3) Run
	r := newRunner(g, cfg)
	if err := r.process(noSource); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns one minimum-cost path src → dst as a node sequence and its cost.
// ok is false when dst is unreachable under the supplied masks; that is not an error.
//
// The search stops as soon as dst is settled.
func ShortestPath(g *core.Graph, src, dst int, opts ...Option) (nodes []int, cost float64, ok bool, err error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Source = src

	if g == nil {
		return nil, 0, false, ErrNilGraph
	}
	if !g.HasNode(src) {
		return nil, 0, false, fmt.Errorf("%w: source %d", ErrNodeNotFound, src)
	}
	if !g.HasNode(dst) {
		return nil, 0, false, fmt.Errorf("%w: target %d", ErrNodeNotFound, dst)
	}

	r := newRunner(g, cfg)
	if err = r.process(dst); err != nil {
		return nil, 0, false, err
	}
	if math.IsInf(r.dist[dst], 1) {
		return nil, 0, false, nil
	}

	// Walk predecessors back to src, then reverse.
	for v := dst; v != NoPredecessor; v = r.prev[v] {
		nodes = append(nodes, v)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return nodes, r.dist[dst], true, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // The input graph; read-only within Dijkstra.
	options Options     // Configuration options.
	dist    []float64   // Maps node → current best distance from Source.
	prev    []int       // Maps node → predecessor on the shortest path.
	visited []bool      // Tracks if a node's distance is finalized.
	pq      nodePQ      // Min-heap of *nodeItem for lazy priority queue.
	seq     uint64      // Push counter used for deterministic tie-breaking.
}

// newRunner allocates state and seeds the heap with the source at distance 0.
func newRunner(g *core.Graph, cfg Options) *runner {
	n := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = math.Inf(1)
		r.prev[v] = NoPredecessor
	}
	r.dist[cfg.Source] = 0
	heap.Init(&r.pq)
	r.push(cfg.Source, 0)

	return r
}

// push adds a heap entry stamped with the next sequence number.
func (r *runner) push(id int, d float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// process repeatedly settles the closest node and relaxes its links.
// If target is a valid node, the loop stops once target is settled.
func (r *runner) process(target int) error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if u == target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each link incident to u and improves distances to its neighbors.
// Blocked nodes and links are skipped.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	for _, nb := range neighbors {
		v := nb.ID
		if r.visited[v] {
			continue
		}
		if _, blocked := r.options.BlockedNodes[v]; blocked {
			continue
		}
		if _, blocked := r.options.BlockedLinks[nb.Link.Key()]; blocked {
			continue
		}

		newDist := r.dist[u] + nb.Link.Cost(r.options.Metric)
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only: the first discovered predecessor wins ties.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist)
	}

	return nil
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   int     // node ID
	dist float64 // distance from source
	seq  uint64  // push order, breaks distance ties
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by push sequence.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
