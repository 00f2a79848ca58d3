package te

import (
	"fmt"
	"math"

	"github.com/katalvlaran/teflow/core"
	"github.com/katalvlaran/teflow/ksp"
)

// Summary is a solution of a Formulation read back in network terms.
type Summary struct {
	// Throughput is Σ path flows.
	Throughput float64

	// Satisfaction is Throughput / TotalDemand (1 when there is no demand).
	Satisfaction float64

	// MLU is the highest load/capacity ratio over all links, computed from
	// the load values (not read from the MLU variable).
	MLU float64

	// Loads maps each canonical link to its load.
	Loads map[core.LinkKey]float64

	// PairFlows maps each routed pair to the sum of its path flows.
	PairFlows map[ksp.Pair]float64
}

// Summarize interprets values (one per model variable, e.g. solver.Result.Values).
func (f *Formulation) Summarize(values []float64) (*Summary, error) {
	if len(values) != f.Model.NumVars() {
		return nil, fmt.Errorf("%w: %d values for %d variables", ErrDimensionMismatch, len(values), f.Model.NumVars())
	}
	s := &Summary{
		Loads:     make(map[core.LinkKey]float64, len(f.Links)),
		PairFlows: make(map[ksp.Pair]float64),
	}
	for idx, x := range f.PathVars {
		v := values[x.Index()]
		s.Throughput += v
		p := f.Catalog.Path(idx)
		s.PairFlows[ksp.Pair{Src: p.Src, Dst: p.Dst}] += v
	}
	for _, l := range f.Links {
		load := values[f.EdgeVars[l.Key()].Index()]
		s.Loads[l.Key()] = load
		s.MLU = math.Max(s.MLU, load/l.Capacity)
	}
	s.Satisfaction = 1
	if f.TotalDemand > 0 {
		s.Satisfaction = s.Throughput / f.TotalDemand
	}

	return s, nil
}
