package flow

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/teflow/core"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil topology.
	ErrNilGraph = errors.New("flow: graph is nil")

	// ErrSourceNotFound is returned when the source node is out of range.
	ErrSourceNotFound = errors.New("flow: source node not found")

	// ErrSinkNotFound is returned when the sink node is out of range.
	ErrSinkNotFound = errors.New("flow: sink node not found")

	// ErrSameEndpoints indicates source == sink.
	ErrSameEndpoints = errors.New("flow: source equals sink")

	// ErrUnknownAlgorithm indicates an algorithm name ParseAlgorithm does not know.
	ErrUnknownAlgorithm = errors.New("flow: unknown algorithm")
)

// Algorithm selects the augmenting strategy.
type Algorithm int

const (
	// EdmondsKarpAlgorithm augments along BFS-shortest residual paths.
	EdmondsKarpAlgorithm Algorithm = iota
	// DinicAlgorithm pushes blocking flows on level graphs.
	DinicAlgorithm
)

// String returns "edmonds-karp" or "dinic".
func (a Algorithm) String() string {
	if a == DinicAlgorithm {
		return "dinic"
	}

	return "edmonds-karp"
}

// ParseAlgorithm maps "edmonds-karp" (or "") and "dinic" to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "", "edmonds-karp":
		return EdmondsKarpAlgorithm, nil
	case "dinic":
		return DinicAlgorithm, nil
	default:
		return EdmondsKarpAlgorithm, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Options configures the max-flow routines.
//   - Epsilon: residual capacities ≤ Epsilon count as saturated (default 1e-9).
//   - Algorithm: EdmondsKarpAlgorithm (default) or DinicAlgorithm.
//   - Logger: receives one debug record per augmentation.
type Options struct {
	Epsilon   float64
	Algorithm Algorithm
	Logger    *slog.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns production defaults.
func DefaultOptions() Options {
	return Options{
		Epsilon:   1e-9,
		Algorithm: EdmondsKarpAlgorithm,
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// WithEpsilon sets the saturation threshold. Panics unless eps > 0 and finite.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic("flow: epsilon must be positive and finite")
	}

	return func(o *Options) { o.Epsilon = eps }
}

// WithAlgorithm selects the max-flow algorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algorithm = a }
}

// WithLogger routes augmentation traces to l (nil keeps the discard logger).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is a maximum flow between two nodes of an undirected topology.
type Result struct {
	// Value is the total flow from source to sink.
	Value float64

	// Flow holds the net flow per directed traversal (only positive entries).
	Flow map[core.Arc]float64

	// SourceSide lists the nodes reachable from the source in the final
	// residual network, ascending.
	SourceSide []int

	// Cut lists the saturated links separating SourceSide from the rest, in
	// canonical order. Their capacities sum to Value.
	Cut []core.LinkKey
}
