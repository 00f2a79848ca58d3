// Package builder generates synthetic capacitated topologies for traffic
// engineering experiments and tests.
//
// Constructors (Ring, Path, Star, Wheel, Complete, Grid, RandomSparse) are
// composed by BuildGraph, which creates a core.Graph with n nodes and
// applies them in order. Generate maps a topology name ("ring", "grid",
// "random", ...) to the matching composition; scenario files and the
// teflow command line use it.
//
// Link capacities come from a CapacityFn (constant 10 by default; uniform
// or tiered draws with WithUniformCapacity / WithTieredCapacity). Ranking
// weights follow capacity unless WithWeightFn supplies a separate generator.
// Stochastic draws use the RNG set with WithSeed or WithRand, so a fixed
// seed and constructor order always yield the same topology.
//
// Adding a link that already exists is a no-op, which lets constructors be
// layered: Generate("random", ...) lays a ring and then samples chords.
//
// Errors:
//
//	ErrTooFewVertices     - size parameter below the constructor minimum.
//	ErrInvalidProbability - p outside [0, 1].
//	ErrNeedRandSource     - stochastic draw without an RNG.
//	ErrGraphTooSmall      - constructor needs more nodes than the graph has.
//	ErrConstructFailed    - nil constructor or non-positive capacity draw.
//	ErrUnknownTopology    - Generate got an unknown name.
package builder
