// Package flow computes maximum flows and minimum cuts between two nodes of
// an undirected, capacitated core.Graph.
//
// Two algorithms share one residual network:
//
//   - Edmonds–Karp (default): BFS-shortest augmenting paths, O(V·E²).
//   - Dinic: level graph + blocking flows, O(V²·E).
//
// Every undirected link of capacity c is modelled as two opposite arcs of
// capacity c. The Result carries the flow value, the net flow per directed
// traversal, the source side of a minimum cut and the cut links.
//
// PairBounds runs MaxFlow for every pair with positive demand. A demand above
// its pair bound can never be routed in full, which makes it a quick
// diagnostic before solving a model that forces full satisfaction.
//
// Errors:
//
//	ErrNilGraph       - nil topology.
//	ErrSourceNotFound - source outside [0, n).
//	ErrSinkNotFound   - sink outside [0, n).
//	ErrSameEndpoints  - source == sink.
//	context.Canceled / context.DeadlineExceeded - ctx cancelled between augmentations.
package flow
