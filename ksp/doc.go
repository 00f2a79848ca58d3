// Package ksp enumerates candidate routing paths.
//
// KShortest implements Yen's algorithm over an undirected core.Graph: it
// returns up to k loop-free paths between two nodes in non-decreasing cost
// order, where cost is the sum of link weights (or the hop count with
// core.MetricHops). Spur searches reuse package dijkstra with node and link
// masks, so equal-cost ties resolve the same way on every run.
//
// Enumerate builds a Catalog holding the candidate paths of every ordered
// node pair. Each path receives a stable global index which downstream
// model builders use to name decision variables.
//
//	cat, err := ksp.Enumerate(ctx, g, ksp.DefaultK)
//	for _, p := range cat.PairPaths(0, 2) {
//		fmt.Println(p, p.Cost)
//	}
package ksp
