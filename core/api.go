// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only summaries.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.
// AI-HINT (file):
//   - Stats() is an O(E) snapshot; rely on it for quick admissions/diagnostics.

package core

import "math"

// GraphStats is an immutable-by-convention snapshot of topology size and capacity range.
type GraphStats struct {
	Name          string
	NodeCount     int
	LinkCount     int
	MinCapacity   float64
	MaxCapacity   float64
	TotalCapacity float64
	// Isolated counts nodes without any incident link.
	Isolated int
}

// Stats produces a deterministic, read-only snapshot of the topology.
//
// Implementation:
//   - Stage 1: Acquire mu.RLock.
//   - Stage 2: Scan links once for capacity range and total.
//   - Stage 3: Scan adjacency once for isolated nodes.
//
// Determinism:
//   - Deterministic for a fixed graph state.
//
// Complexity:
//   - Time O(n+E), Space O(1) plus the returned struct.
//
// Notes:
//   - For a graph without links MinCapacity and MaxCapacity are 0.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Name:        g.name,
		NodeCount:   g.n,
		LinkCount:   len(g.links),
		MinCapacity: math.Inf(1),
		MaxCapacity: math.Inf(-1),
	}
	for _, l := range g.links { // single pass over all links (O(E))
		stats.TotalCapacity += l.Capacity
		stats.MinCapacity = math.Min(stats.MinCapacity, l.Capacity)
		stats.MaxCapacity = math.Max(stats.MaxCapacity, l.Capacity)
	}
	if len(g.links) == 0 {
		stats.MinCapacity, stats.MaxCapacity = 0, 0
	}
	for _, adj := range g.adjacency {
		if len(adj) == 0 {
			stats.Isolated++
		}
	}

	return &stats
}
