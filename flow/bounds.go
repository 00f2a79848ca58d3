package flow

import (
	"context"
	"fmt"

	"github.com/katalvlaran/teflow/core"
	"github.com/katalvlaran/teflow/demand"
)

// PairBound compares the demand of one pair with its single-pair max flow.
type PairBound struct {
	Src, Dst int
	Demand   float64
	MaxFlow  float64
}

// Exceeds reports whether the demand cannot fit even with the whole network
// dedicated to this pair.
func (b PairBound) Exceeds(eps float64) bool { return b.Demand > b.MaxFlow+eps }

// PairBounds computes the max flow of every pair with positive demand, in
// (src, dst) order. A pair whose demand exceeds its bound makes any model
// that forces full satisfaction infeasible; the converse does not hold
// because pairs compete for the same links.
//
// Max flow is symmetric on undirected topologies, so (i, j) and (j, i) share
// one computation.
func PairBounds(ctx context.Context, g *core.Graph, dm *demand.Matrix, opts ...Option) ([]PairBound, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if dm == nil || dm.N() != g.NodeCount() {
		return nil, fmt.Errorf("flow: demand matrix does not match %d nodes", g.NodeCount())
	}
	cache := make(map[core.LinkKey]float64)
	var out []PairBound
	n := g.NodeCount()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := dm.At(i, j)
			if i == j || d <= 0 {
				continue
			}
			key := core.Canonical(i, j)
			mf, ok := cache[key]
			if !ok {
				res, err := MaxFlow(ctx, g, i, j, opts...)
				if err != nil {
					return nil, err
				}
				mf = res.Value
				cache[key] = mf
			}
			out = append(out, PairBound{Src: i, Dst: j, Demand: d, MaxFlow: mf})
		}
	}

	return out, nil
}
