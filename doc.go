// Package teflow builds path-based multi-commodity flow models for traffic
// engineering on capacitated, undirected topologies.
//
// Given a topology, a demand matrix and k, teflow enumerates up to k
// shortest simple candidate paths per ordered node pair and emits three
// independent linear programs over them:
//
//   - max-throughput:       maximise the total routed flow.
//   - min-mlu:              minimise the maximum link utilisation (MLU),
//     with a small bonus for routed volume.
//   - min-mlu-constrained:  minimise the MLU subject to every demand being
//     routed in full.
//
// Every path flow is credited to the canonical (min, max) key of each link
// it crosses, so traversing a link in either direction loads the same
// capacity.
//
// Packages:
//
//	core/      - Graph, Link, canonical LinkKey (the edge normalizer)
//	bfs/       - traversal and connected components
//	dfs/       - exhaustive simple-path enumeration
//	dijkstra/  - single-pair shortest path with blocked nodes/links
//	ksp/       - Yen's k-shortest paths and the all-pairs path catalog
//	demand/    - n×n demand matrix (gonum mat)
//	model/     - solver-agnostic LP: variables, rows, objective
//	te/        - the three formulations, incidence, the end-to-end Runner
//	solver/    - Solver interface and a gonum simplex backend
//	lpformat/  - CPLEX LP export for external solvers
//	flow/      - max-flow / min-cut and per-pair demand bounds
//	builder/   - synthetic topologies (ring, grid, random, ...)
//	scenario/  - YAML scenario files
//	config/    - TOML run configuration
//	metrics/   - Prometheus collectors
//	cmd/teflow - command line
//
// Quick ASCII example:
//
//	0───1
//	│   │
//	3───2
//
// With capacity 10 per link, k = 2 and 15 units from 0 to 2, max-throughput
// routes 15, min-mlu-constrained reaches an MLU of 0.75 by splitting 7.5
// over each side of the ring.
//
//	go install github.com/katalvlaran/teflow/cmd/teflow@latest
package teflow
