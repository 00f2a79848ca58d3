// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: name, node count, links and adjacency.
//
// Complexity: O(n + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	// NewGraph only fails on negative n, which an existing graph never has.
	clone, _ := NewGraph(g.n, WithName(g.name))
	for key, l := range g.links {
		cp := *l
		clone.links[key] = &cp
		clone.adjacency[l.U][l.V] = key
		clone.adjacency[l.V][l.U] = key
	}

	return clone
}
