// Package dfs enumerates simple paths between two nodes of a core.Graph by
// depth-first search with backtracking.
//
// It is the exhaustive counterpart of ksp.KShortest: every simple path (no
// repeated node) is produced, optionally bounded by hop count or result
// size. Use it on small topologies, to list every route of a pair, or to
// cross-check a k-shortest enumeration.
//
// Complexity:
//
//   - Time:   O(P · n) where P is the number of simple paths explored; P can
//     be exponential in n, so MaxDepth or Limit should bound large graphs.
//   - Memory: O(n) for the recursion stack plus the returned paths.
//
// Options:
//
//   - WithMaxDepth(hops)      drop branches longer than hops links (>= 1).
//   - WithLimit(n)            stop after n paths; Result.Truncated reports it.
//   - WithFilterNeighbor(fn)  skip traversals u→v for which fn returns false.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if src is out of range.
//   - ErrTargetVertexNotFound   if dst is out of range.
//   - context.Canceled          if ctx is done.
package dfs

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that src is not a node of the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrTargetVertexNotFound indicates that dst is not a node of the graph.
	ErrTargetVertexNotFound = errors.New("dfs: target vertex not found")
)

// Option configures SimplePaths.
type Option func(*Options)

// Options holds the enumeration bounds.
type Options struct {
	// MaxDepth, if positive, limits paths to MaxDepth links. Default -1 (no limit).
	MaxDepth int

	// Limit, if positive, stops after Limit paths. Default 0 (no limit).
	Limit int

	// FilterNeighbor, if non-nil, is called for each traversal u→v before
	// descending. Return false to skip it.
	FilterNeighbor func(u, v int) bool
}

// DefaultOptions returns unbounded enumeration without filtering.
func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// WithMaxDepth bounds path length in links. Panics if hops < 1.
func WithMaxDepth(hops int) Option {
	if hops < 1 {
		panic(fmt.Sprintf("dfs: WithMaxDepth(%d): hops must be >= 1", hops))
	}

	return func(o *Options) { o.MaxDepth = hops }
}

// WithLimit stops after n paths. Panics if n < 1.
func WithLimit(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("dfs: WithLimit(%d): n must be >= 1", n))
	}

	return func(o *Options) { o.Limit = n }
}

// WithFilterNeighbor installs a traversal filter.
func WithFilterNeighbor(fn func(u, v int) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// Result captures the outcome of SimplePaths.
type Result struct {
	// Paths lists node sequences src..dst in lexicographic order (neighbors
	// are explored in ascending ID order).
	Paths [][]int

	// SkippedNeighbors counts traversals rejected by FilterNeighbor.
	SkippedNeighbors int

	// Truncated reports that Limit was reached; more paths may exist.
	Truncated bool
}
