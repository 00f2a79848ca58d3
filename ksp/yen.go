// SPDX-License-Identifier: MIT
//
// File: yen.go
// Role: Yen's k-shortest simple paths for one (source, destination) pair.
// Determinism:
//   - Candidates are ranked by (cost asc, discovery sequence asc).
//   - Spur searches use dijkstra's deterministic tie-breaking.

package ksp

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/teflow/core"
	"github.com/katalvlaran/teflow/dijkstra"
)

// KShortest returns up to k simple paths from src to dst in non-decreasing
// cost order.
//
// Steps:
//  1. Validate inputs (graph, k, endpoints, src ≠ dst).
//  2. A[0] = shortest path; none ⇒ empty result (unreachable is not an error).
//  3. For each next rank, spur from every node of the previous path:
//     block nodes of the root path (except the spur node) and every link
//     that an accepted path with the same root takes out of the spur node.
//  4. Spur + root becomes a candidate unless already seen.
//  5. Accept the best candidate by (cost, discovery sequence).
//
// Complexity: O(k · n · (n + E) log n) in the worst case.
func KShortest(g *core.Graph, src, dst, k int, opts ...Option) ([]Path, error) {
	// 1) Validation
	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadK, k)
	}
	if !g.HasNode(src) || !g.HasNode(dst) {
		return nil, fmt.Errorf("%w: %d→%d", ErrNodeNotFound, src, dst)
	}
	if src == dst {
		return nil, fmt.Errorf("%w: %d", ErrSamePair, src)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	y := &yen{g: g, src: src, dst: dst, metric: cfg.Metric, seen: make(map[string]struct{})}

	// 2) First shortest path
	nodes, cost, ok, err := dijkstra.ShortestPath(g, src, dst, dijkstra.WithMetric(cfg.Metric))
	if err != nil {
		return nil, fmt.Errorf("ksp: shortest %d→%d: %w", src, dst, err)
	}
	if !ok {
		return []Path{}, nil
	}
	first := Path{Src: src, Dst: dst, Nodes: nodes, Cost: cost}
	y.accepted = append(y.accepted, first)
	y.seen[first.key()] = struct{}{}

	// 3–5) Remaining ranks
	for len(y.accepted) < k {
		if err = y.spurFrom(y.accepted[len(y.accepted)-1]); err != nil {
			return nil, err
		}
		if y.candidates.Len() == 0 {
			break
		}
		best := heap.Pop(&y.candidates).(*candidate)
		y.accepted = append(y.accepted, best.path)
	}

	return y.accepted, nil
}

// yen holds the mutable state of one KShortest call.
type yen struct {
	g        *core.Graph
	src, dst int
	metric   core.Metric

	accepted   []Path              // A: accepted paths in rank order
	candidates candidatePQ         // B: pending candidates
	seen       map[string]struct{} // node sequences already in A or B
	seq        uint64              // candidate discovery counter
}

// spurFrom generates every spur candidate deviating from prev.
func (y *yen) spurFrom(prev Path) error {
	for i := 0; i < len(prev.Nodes)-1; i++ {
		spur := prev.Nodes[i]
		root := prev.Nodes[:i+1]

		// Links leaving the spur node along any accepted path sharing this root.
		blockedLinks := make(map[core.LinkKey]struct{})
		for _, p := range y.accepted {
			if len(p.Nodes) > i+1 && samePrefix(p.Nodes, root) {
				blockedLinks[core.Canonical(p.Nodes[i], p.Nodes[i+1])] = struct{}{}
			}
		}
		// Root nodes other than the spur keep the result simple.
		blockedNodes := make(map[int]struct{}, i)
		for _, v := range root[:i] {
			blockedNodes[v] = struct{}{}
		}

		spurNodes, spurCost, ok, err := dijkstra.ShortestPath(y.g, spur, y.dst,
			dijkstra.WithMetric(y.metric),
			dijkstra.WithBlockedNodes(blockedNodes),
			dijkstra.WithBlockedLinks(blockedLinks),
		)
		if err != nil {
			return fmt.Errorf("ksp: spur %d→%d: %w", spur, y.dst, err)
		}
		if !ok {
			continue
		}

		rootCost, err := y.costOf(root)
		if err != nil {
			return err
		}
		total := make([]int, 0, len(root)+len(spurNodes)-1)
		total = append(total, root...)
		total = append(total, spurNodes[1:]...)
		cand := Path{Src: y.src, Dst: y.dst, Nodes: total, Cost: rootCost + spurCost}

		if _, dup := y.seen[cand.key()]; dup {
			continue
		}
		y.seen[cand.key()] = struct{}{}
		heap.Push(&y.candidates, &candidate{path: cand, seq: y.seq})
		y.seq++
	}

	return nil
}

// costOf sums link costs along a node sequence under the enumeration metric.
func (y *yen) costOf(nodes []int) (float64, error) {
	var sum float64
	for i := 0; i+1 < len(nodes); i++ {
		l, err := y.g.Link(core.Canonical(nodes[i], nodes[i+1]))
		if err != nil {
			return 0, fmt.Errorf("ksp: root path: %w", err)
		}
		sum += l.Cost(y.metric)
	}

	return sum, nil
}

// samePrefix reports whether nodes starts with prefix.
func samePrefix(nodes, prefix []int) bool {
	if len(nodes) < len(prefix) {
		return false
	}
	for i, v := range prefix {
		if nodes[i] != v {
			return false
		}
	}

	return true
}

// candidate is a pending path in Yen's B set.
type candidate struct {
	path Path
	seq  uint64
}

// candidatePQ is a min-heap ordered by (cost, seq).
type candidatePQ []*candidate

func (pq candidatePQ) Len() int { return len(pq) }

func (pq candidatePQ) Less(i, j int) bool {
	if pq[i].path.Cost != pq[j].path.Cost {
		return pq[i].path.Cost < pq[j].path.Cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(*candidate)) }

func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
