// Package dijkstra provides single-source shortest paths over the undirected,
// capacitated topology of core.Graph.
//
// Overview:
//
//   - Dijkstra computes minimum-cost distances from one source node to all
//     reachable nodes in O((n + E) log n) time.
//   - ShortestPath returns one concrete node sequence src → dst and stops as
//     soon as dst is settled.
//   - Link cost is chosen by core.Metric: the link Weight (which defaults to
//     Capacity) or a unit cost per hop.
//
// Masking (used by Yen's k-shortest-paths in package ksp):
//
//   - WithBlockedNodes(set): nodes that may not be entered.
//   - WithBlockedLinks(set): canonical links that may not be traversed.
//
// Determinism:
//
//   - Neighbors are visited in ascending ID order, heap ties break by push
//     order, and distances change only on strict improvement. For a fixed
//     topology and mask the returned path is always the same.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrNoSource:       Dijkstra called without Source(...).
//   - ErrNodeNotFound:   source or target outside [0, n).
//   - ErrBadMaxDistance: negative MaxDistance (panics at option construction).
//
// An unreachable target is not an error: ShortestPath reports ok == false.
package dijkstra
