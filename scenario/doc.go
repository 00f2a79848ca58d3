// Package scenario reads and writes YAML descriptions of traffic-engineering
// instances and materializes them into a core.Graph and a demand.Matrix.
//
// A file carries exactly one topology form:
//
//	links:     explicit {u, v, capacity[, weight]} entries over `nodes` nodes
//	generate:  a builder topology {kind, n | rows+cols, p, seed, capacity | tiers}
//
// and at most one demand form:
//
//	demands:   {src, dst, volume} entries (repeated pairs add up)
//	matrix:    n rows of n volumes
//	uniform:   one volume for every ordered pair
//
// k (default ksp.DefaultK) and metric ("weight" | "hops") configure path
// enumeration.
package scenario
