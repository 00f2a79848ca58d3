// Package core defines the central Graph, Link and LinkKey types used to
// describe a physical network topology: a fixed set of integer-identified
// nodes joined by undirected, capacitated links.
//
// All core APIs use a single sync.RWMutex internally, so a Graph may be read
// concurrently by several model builders once construction is complete.
//
// This file declares Link, Arc, Metric, Graph, GraphOption, LinkOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeOutOfRange  - node identifier outside [0, n).
//	ErrLoopNotAllowed  - link from a node to itself.
//	ErrBadCapacity     - capacity not finite or not strictly positive.
//	ErrBadWeight       - ranking weight not finite or negative.
//	ErrDuplicateLink   - second link between the same unordered node pair.
//	ErrLinkNotFound    - requested link does not exist.
//	ErrBadNodeCount    - negative node count passed to NewGraph.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core topology operations.
var (
	// ErrNodeOutOfRange indicates a node identifier outside [0, n).
	ErrNodeOutOfRange = errors.New("core: node out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted. Topologies never carry loops.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadCapacity indicates a capacity that is NaN, ±Inf, zero or negative.
	ErrBadCapacity = errors.New("core: capacity must be finite and positive")

	// ErrBadWeight indicates a ranking weight that is NaN, ±Inf or negative.
	ErrBadWeight = errors.New("core: weight must be finite and non-negative")

	// ErrDuplicateLink indicates a parallel link between an already linked node pair.
	ErrDuplicateLink = errors.New("core: duplicate link between node pair")

	// ErrLinkNotFound indicates an operation referenced a non-existent link.
	ErrLinkNotFound = errors.New("core: link not found")

	// ErrBadNodeCount indicates a negative node count.
	ErrBadNodeCount = errors.New("core: node count must be non-negative")
)

// Metric selects the per-link cost used to rank candidate paths.
type Metric int

const (
	// MetricWeight ranks by Link.Weight, which equals Link.Capacity unless a
	// distinct weight was supplied with WithWeight.
	MetricWeight Metric = iota

	// MetricHops ranks by number of traversed links (every link costs 1).
	MetricHops
)

// String returns the lower-case metric name used in scenario and config files.
func (m Metric) String() string {
	switch m {
	case MetricWeight:
		return "weight"
	case MetricHops:
		return "hops"
	default:
		return "unknown"
	}
}

// ParseMetric maps "weight"/"capacity" and "hops" to a Metric.
// The empty string maps to MetricWeight.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "", "weight", "capacity":
		return MetricWeight, nil
	case "hops":
		return MetricHops, nil
	default:
		return MetricWeight, errors.New("core: unknown metric " + s)
	}
}

// Link is an undirected physical link between nodes U and V.
//
// U and V are stored in insertion order; use Key() for the canonical identity.
// Capacity bounds the flow the link may carry; Weight is the ranking cost
// used by path enumeration.
type Link struct {
	// U is the first endpoint as supplied to AddLink.
	U int

	// V is the second endpoint as supplied to AddLink.
	V int

	// Capacity is the maximum flow the link can carry (> 0).
	Capacity float64

	// Weight is the path-ranking cost (≥ 0). Defaults to Capacity.
	Weight float64
}

// Key returns the canonical (min, max) identity of the link.
func (l Link) Key() LinkKey { return Canonical(l.U, l.V) }

// Cost returns the ranking cost of the link under metric m.
func (l Link) Cost(m Metric) float64 {
	if m == MetricHops {
		return 1
	}

	return l.Weight
}

// Arc is one directed traversal From→To of an undirected link.
type Arc struct {
	From int
	To   int
}

// Key maps the traversal to the canonical link it uses, independent of direction.
func (a Arc) Key() LinkKey { return Canonical(a.From, a.To) }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithName attaches a human-readable topology name (used in logs and exports).
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// LinkOption configures properties of individual links when added.
type LinkOption func(*Link)

// WithWeight overrides the ranking weight of a link (defaults to its capacity).
func WithWeight(w float64) LinkOption {
	return func(l *Link) { l.Weight = w }
}

// Graph is an undirected, capacitated network topology over nodes [0, n).
//
// mu protects links and adjacency. The node count is immutable.
type Graph struct {
	mu sync.RWMutex // guards links and adjacency

	name string // optional topology name
	n    int    // number of nodes, immutable

	// links maps the canonical key to the stored link.
	links map[LinkKey]*Link

	// adjacency[u] maps neighbor v → canonical key of the u–v link.
	adjacency []map[int]LinkKey
}

// NewGraph creates a topology with n isolated nodes.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadNodeCount
	}
	g := &Graph{
		n:         n,
		links:     make(map[LinkKey]*Link),
		adjacency: make([]map[int]LinkKey, n),
	}
	for u := 0; u < n; u++ {
		g.adjacency[u] = make(map[int]LinkKey)
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
