package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/teflow/builder"
	"github.com/katalvlaran/teflow/core"
)

// keys returns the canonical keys of g in sorted order.
func keys(g *core.Graph) []core.LinkKey { return g.LinkKeys() }

func TestBuilders_Topologies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		n     int
		ctor  builder.Constructor
		wantE int
		check func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Ring(5)", n: 5, ctor: builder.Ring(5), wantE: 5,
			check: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					require.True(t, g.HasLink(i, (i+1)%5))
					d, err := g.Degree(i)
					require.NoError(t, err)
					require.Equal(t, 2, d)
				}
			},
		},
		{
			name: "Path(4)", n: 4, ctor: builder.Path(4), wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []core.LinkKey{{Tail: 0, Head: 1}, {Tail: 1, Head: 2}, {Tail: 2, Head: 3}}, keys(g))
			},
		},
		{
			name: "Star(4)", n: 4, ctor: builder.Star(4), wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				d, err := g.Degree(0)
				require.NoError(t, err)
				require.Equal(t, 3, d)
			},
		},
		{
			name: "Wheel(5)", n: 5, ctor: builder.Wheel(5), wantE: 8,
			check: func(t *testing.T, g *core.Graph) {
				d, err := g.Degree(4)
				require.NoError(t, err)
				require.Equal(t, 4, d)
				require.True(t, g.HasLink(3, 0))
			},
		},
		{name: "Complete(5)", n: 5, ctor: builder.Complete(5), wantE: 10},
		{
			name: "Grid(2,3)", n: 6, ctor: builder.Grid(2, 3), wantE: 7,
			check: func(t *testing.T, g *core.Graph) {
				require.True(t, g.HasLink(builder.GridNode(0, 2, 3), builder.GridNode(1, 2, 3)))
				require.False(t, g.HasLink(2, 3))
			},
		},
		{name: "RandomSparse(p=1)", n: 4, ctor: builder.RandomSparse(4, 1), wantE: 6},
		{name: "RandomSparse(p=0)", n: 4, ctor: builder.RandomSparse(4, 0), wantE: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.n, nil, nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.n, g.NodeCount())
			require.Equal(t, tc.wantE, g.LinkCount())
			for _, l := range g.Links() {
				require.Equal(t, builder.DefaultCapacity, l.Capacity)
				require.Equal(t, l.Capacity, l.Weight)
			}
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph(2, nil, nil, builder.Ring(2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(3, nil, nil, builder.Ring(4))
	require.ErrorIs(t, err, builder.ErrGraphTooSmall)

	_, err = builder.BuildGraph(4, nil, nil, builder.RandomSparse(4, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(4, nil, nil, builder.RandomSparse(4, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(4, nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(-1, nil, nil)
	require.ErrorIs(t, err, core.ErrBadNodeCount)

	_, err = builder.Generate("torus", builder.Params{N: 4}, nil)
	require.ErrorIs(t, err, builder.ErrUnknownTopology)

	_, err = builder.Generate(builder.TopologyGrid, builder.Params{Rows: 0, Cols: 3}, nil)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestBuilders_Compose(t *testing.T) {
	t.Parallel()

	// Ring links survive a full RandomSparse pass without duplicates.
	g, err := builder.BuildGraph(5, nil, []builder.BuilderOption{builder.WithCapacity(40)},
		builder.Ring(5), builder.RandomSparse(5, 1))
	require.NoError(t, err)
	require.Equal(t, 10, g.LinkCount())
	require.Equal(t, 400.0, g.TotalCapacity())
}

func TestBuilders_SeededDeterminism(t *testing.T) {
	t.Parallel()

	build := func(seed int64) *core.Graph {
		g, err := builder.Generate(builder.TopologyRandom, builder.Params{N: 12, P: 0.3}, nil,
			builder.WithSeed(seed), builder.WithTieredCapacity(10, 40, 100))
		require.NoError(t, err)
		return g
	}
	a, b := build(7), build(7)
	require.Equal(t, a.Links(), b.Links())
	require.GreaterOrEqual(t, a.LinkCount(), 12)
	for _, l := range a.Links() {
		require.Contains(t, []float64{10, 40, 100}, l.Capacity)
	}
}

func TestBuilders_Options(t *testing.T) {
	t.Parallel()

	g, err := builder.Generate(builder.TopologyPath, builder.Params{N: 3}, []core.GraphOption{core.WithName("chain")},
		builder.WithSeed(1), builder.WithUniformCapacity(5, 15), builder.WithWeightFn(builder.ConstantCapacityFn(1)))
	require.NoError(t, err)
	require.Equal(t, "chain", g.Name())
	for _, l := range g.Links() {
		require.GreaterOrEqual(t, l.Capacity, 5.0)
		require.Less(t, l.Capacity, 15.0)
		require.Equal(t, 1.0, l.Weight)
	}

	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithCapacityFn(nil) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.ConstantCapacityFn(0) })
	require.Panics(t, func() { builder.UniformCapacityFn(5, 1) })
	require.Panics(t, func() { builder.TieredCapacityFn() })
	require.Panics(t, func() { builder.TieredCapacityFn(10, -1) })

	require.Equal(t, 3.0, builder.UniformCapacityFn(3, 9)(nil))
	require.Equal(t, 10.0, builder.TieredCapacityFn(10, 40)(nil))
}
