// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node queries and neighborhoods (NodeCount, Nodes, Neighbors, Degree).
// Determinism:
//   - Nodes() is 0..n-1.
//   - Neighbors() is sorted by neighbor ID asc.
// Concurrency:
//   - Read operations hold mu read lock.

package core

import (
	"fmt"
	"sort"
)

// Neighbor is one adjacent node together with the link that reaches it.
type Neighbor struct {
	// ID is the adjacent node.
	ID int

	// Link is a copy of the connecting link.
	Link Link
}

// inRange reports whether id is a valid node identifier.
func (g *Graph) inRange(id int) bool { return id >= 0 && id < g.n }

// Name returns the topology name (possibly empty).
func (g *Graph) Name() string { return g.name }

// NodeCount returns n. The node set is fixed at construction time.
// Complexity: O(1).
func (g *Graph) NodeCount() int { return g.n }

// HasNode reports whether id ∈ [0, n).
func (g *Graph) HasNode(id int) bool { return g.inRange(id) }

// Nodes returns the node identifiers 0..n-1.
// Complexity: O(n).
func (g *Graph) Nodes() []int {
	out := make([]int, g.n)
	for i := range out {
		out[i] = i
	}

	return out
}

// Neighbors returns every node adjacent to id, sorted by ID ascending, with
// the connecting link.
//
// Errors:
//   - ErrNodeOutOfRange: if id ∉ [0, n).
//
// Complexity: O(d log d), d = degree(id).
func (g *Graph) Neighbors(id int) ([]Neighbor, error) {
	if !g.inRange(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeOutOfRange, id)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Neighbor, 0, len(g.adjacency[id]))
	for v, key := range g.adjacency[id] {
		out = append(out, Neighbor{ID: v, Link: *g.links[key]})
	}
	// Sort by ID to ensure reproducible ordering
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// Degree returns the number of links incident to id.
func (g *Graph) Degree(id int) (int, error) {
	if !g.inRange(id) {
		return 0, fmt.Errorf("%w: %d", ErrNodeOutOfRange, id)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id]), nil
}
