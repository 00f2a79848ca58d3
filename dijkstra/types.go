// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a core.Graph topology.
//
// Options:
//
//	– Source:             starting node (must be in [0, n)).
//	– WithMetric:         link cost used for ranking (weight or hops).
//	– WithMaxDistance:    optional cap on distances to explore.
//	– WithBlockedNodes:   nodes that may not be entered (Yen root-path masking).
//	– WithBlockedLinks:   links that may not be traversed in either direction.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNodeNotFound    if the source or target node does not exist.
//	– ErrNoSource        if Source was never set.
//	– ErrBadMaxDistance  if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/teflow/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the source or target node does not exist.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNoSource indicates that no Source option was supplied.
	ErrNoSource = errors.New("dijkstra: source node not set")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// noSource is the sentinel value of Options.Source before Source(...) is applied.
const noSource = -1

// NoPredecessor marks prev entries for the source and unreachable nodes.
const NoPredecessor = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// Source        – starting node.
// Metric        – per-link cost selector.
// MaxDistance   – vertices with distance beyond this are not explored (≥ 0). Default +Inf.
// BlockedNodes  – nodes that must not be entered (the source itself is never blocked).
// BlockedLinks  – canonical links that must not be traversed.
type Options struct {
	Source       int
	Metric       core.Metric
	MaxDistance  float64
	BlockedNodes map[int]struct{}
	BlockedLinks map[core.LinkKey]struct{}
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithMetric selects the link cost used for distances.
func WithMetric(m core.Metric) Option {
	return func(o *Options) {
		o.Metric = m
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		// Panic to signal invalid configuration early.
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithBlockedNodes forbids entering any of the given nodes.
// The map is read, never modified.
func WithBlockedNodes(nodes map[int]struct{}) Option {
	return func(o *Options) {
		o.BlockedNodes = nodes
	}
}

// WithBlockedLinks forbids traversing any of the given links in either direction.
// The map is read, never modified.
func WithBlockedLinks(links map[core.LinkKey]struct{}) Option {
	return func(o *Options) {
		o.BlockedLinks = links
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Source:       unset (must be supplied).
//   - Metric:       core.MetricWeight.
//   - MaxDistance:  +Inf (no cap).
//   - no blocked nodes or links.
func DefaultOptions() Options {
	return Options{
		Source:      noSource,
		Metric:      core.MetricWeight,
		MaxDistance: math.Inf(1),
	}
}
