// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Candidate path value type, options and sentinel errors of package ksp.
// Determinism:
//   - Path values are immutable after creation; Arcs() allocates a fresh slice.

package ksp

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/teflow/core"
)

// DefaultK is the number of candidate paths enumerated per demand pair when
// the caller does not choose one.
const DefaultK = 5

// Sentinel errors for path enumeration.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("ksp: graph is nil")

	// ErrBadK indicates k < 1.
	ErrBadK = errors.New("ksp: k must be at least 1")

	// ErrSamePair indicates source == destination.
	ErrSamePair = errors.New("ksp: source equals destination")

	// ErrNodeNotFound indicates a source or destination outside [0, n).
	ErrNodeNotFound = errors.New("ksp: node not found")
)

// Path is one candidate route: a simple node sequence Src → … → Dst and its
// total cost under the metric used for enumeration.
type Path struct {
	Src   int
	Dst   int
	Nodes []int
	Cost  float64
}

// Hops returns the number of links on the path.
func (p Path) Hops() int { return len(p.Nodes) - 1 }

// Arcs returns the ordered directed traversals of the path.
func (p Path) Arcs() []core.Arc {
	if len(p.Nodes) < 2 {
		return nil
	}
	out := make([]core.Arc, len(p.Nodes)-1)
	for i := range out {
		out[i] = core.Arc{From: p.Nodes[i], To: p.Nodes[i+1]}
	}

	return out
}

// String renders the path as "0→1→2".
func (p Path) String() string {
	var sb strings.Builder
	for i, v := range p.Nodes {
		if i > 0 {
			sb.WriteString("→")
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// key is the dedupe identity of a node sequence.
func (p Path) key() string {
	var sb strings.Builder
	for _, v := range p.Nodes {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte(',')
	}

	return sb.String()
}

// Options configures enumeration.
type Options struct {
	// Metric selects the link cost used to rank paths.
	Metric core.Metric
}

// Option is a functional option for KShortest and Enumerate.
type Option func(*Options)

// WithMetric selects the ranking metric (default core.MetricWeight).
func WithMetric(m core.Metric) Option {
	return func(o *Options) { o.Metric = m }
}

// DefaultOptions returns the default enumeration options.
func DefaultOptions() Options {
	return Options{Metric: core.MetricWeight}
}
