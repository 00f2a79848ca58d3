package ksp_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/teflow/builder"
	"github.com/katalvlaran/teflow/core"
	"github.com/katalvlaran/teflow/dfs"
	"github.com/katalvlaran/teflow/ksp"
)

// exhaustiveCosts ranks every simple src→dst path by brute force.
func exhaustiveCosts(t *testing.T, g *core.Graph, src, dst int) []float64 {
	t.Helper()
	res, err := dfs.SimplePaths(context.Background(), g, src, dst)
	require.NoError(t, err)
	costs := make([]float64, 0, len(res.Paths))
	for _, nodes := range res.Paths {
		var c float64
		for i := 0; i+1 < len(nodes); i++ {
			l, err := g.Link(core.Canonical(nodes[i], nodes[i+1]))
			require.NoError(t, err)
			c += l.Weight
		}
		costs = append(costs, c)
	}
	sort.Float64s(costs)

	return costs
}

// TestKShortest_MatchesExhaustive checks, on seeded random topologies, that
// the i-th path returned has the i-th smallest cost among all simple paths.
func TestKShortest_MatchesExhaustive(t *testing.T) {
	const k = 6
	for _, seed := range []int64{1, 2, 3, 4} {
		g, err := builder.Generate(builder.TopologyRandom, builder.Params{N: 7, P: 0.35}, nil,
			builder.WithSeed(seed), builder.WithUniformCapacity(1, 50))
		require.NoError(t, err)

		for src := 0; src < g.NodeCount(); src++ {
			for dst := 0; dst < g.NodeCount(); dst++ {
				if src == dst {
					continue
				}
				want := exhaustiveCosts(t, g, src, dst)
				got, err := ksp.KShortest(g, src, dst, k)
				require.NoError(t, err)
				require.Len(t, got, min(k, len(want)), "seed %d pair %d→%d", seed, src, dst)
				for i, p := range got {
					require.InDelta(t, want[i], p.Cost, 1e-9, "seed %d pair %d→%d rank %d", seed, src, dst, i)
				}
			}
		}
	}
}
