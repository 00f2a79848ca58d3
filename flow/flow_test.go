package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/teflow/core"
	"github.com/katalvlaran/teflow/demand"
	"github.com/katalvlaran/teflow/flow"
)

// MaxFlowSuite runs every case against both algorithms.
type MaxFlowSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *MaxFlowSuite) SetupTest() { s.ctx = context.Background() }

func (s *MaxFlowSuite) graph(n int, links ...[3]float64) *core.Graph {
	g, err := core.NewGraph(n)
	s.Require().NoError(err)
	for _, l := range links {
		s.Require().NoError(g.AddLink(int(l[0]), int(l[1]), l[2]))
	}

	return g
}

func (s *MaxFlowSuite) algorithms() []flow.Algorithm {
	return []flow.Algorithm{flow.EdmondsKarpAlgorithm, flow.DinicAlgorithm}
}

// TestRing: two disjoint routes of capacity 10 between opposite nodes.
func (s *MaxFlowSuite) TestRing() {
	g := s.graph(4, [3]float64{0, 1, 10}, [3]float64{1, 2, 10}, [3]float64{2, 3, 10}, [3]float64{3, 0, 10})
	for _, a := range s.algorithms() {
		res, err := flow.MaxFlow(s.ctx, g, 0, 2, flow.WithAlgorithm(a))
		s.Require().NoError(err)
		s.Require().InDelta(20, res.Value, 1e-9, a.String())
		s.Require().Equal([]int{0}, res.SourceSide)
		s.Require().Equal([]core.LinkKey{core.Canonical(0, 1), core.Canonical(0, 3)}, res.Cut)
		s.Require().InDelta(10, res.Flow[core.Arc{From: 0, To: 1}], 1e-9)
		s.Require().InDelta(10, res.Flow[core.Arc{From: 3, To: 2}], 1e-9)
	}
}

// TestBottleneck: the middle link limits the flow and forms the cut.
func (s *MaxFlowSuite) TestBottleneck() {
	g := s.graph(4, [3]float64{0, 1, 7}, [3]float64{1, 2, 3}, [3]float64{2, 3, 9})
	for _, a := range s.algorithms() {
		res, err := flow.MaxFlow(s.ctx, g, 3, 0, flow.WithAlgorithm(a))
		s.Require().NoError(err)
		s.Require().InDelta(3, res.Value, 1e-9)
		s.Require().Equal([]core.LinkKey{core.Canonical(1, 2)}, res.Cut)
		s.Require().Equal([]int{2, 3}, res.SourceSide)
		s.Require().InDelta(3, res.Flow[core.Arc{From: 2, To: 1}], 1e-9)
	}
}

// TestCutMatchesValue: on a denser graph the cut capacity equals the flow.
func (s *MaxFlowSuite) TestCutMatchesValue() {
	g := s.graph(6,
		[3]float64{0, 1, 16}, [3]float64{0, 2, 13}, [3]float64{1, 2, 4}, [3]float64{1, 3, 12},
		[3]float64{2, 4, 14}, [3]float64{3, 2, 9}, [3]float64{3, 5, 20}, [3]float64{4, 3, 7}, [3]float64{4, 5, 4},
	)
	var values []float64
	for _, a := range s.algorithms() {
		res, err := flow.MaxFlow(s.ctx, g, 0, 5, flow.WithAlgorithm(a))
		s.Require().NoError(err)
		var cut float64
		for _, k := range res.Cut {
			c, err := g.Capacity(k)
			s.Require().NoError(err)
			cut += c
		}
		s.Require().InDelta(res.Value, cut, 1e-9)
		values = append(values, res.Value)
	}
	s.Require().InDelta(values[0], values[1], 1e-9)
}

func (s *MaxFlowSuite) TestDisconnected() {
	g := s.graph(3, [3]float64{0, 1, 5})
	res, err := flow.MaxFlow(s.ctx, g, 0, 2)
	s.Require().NoError(err)
	s.Require().Equal(0.0, res.Value)
	s.Require().Empty(res.Flow)
	s.Require().Empty(res.Cut)
}

func (s *MaxFlowSuite) TestErrors() {
	g := s.graph(2, [3]float64{0, 1, 1})
	_, err := flow.MaxFlow(s.ctx, nil, 0, 1)
	s.Require().ErrorIs(err, flow.ErrNilGraph)
	_, err = flow.MaxFlow(s.ctx, g, 5, 1)
	s.Require().ErrorIs(err, flow.ErrSourceNotFound)
	_, err = flow.MaxFlow(s.ctx, g, 0, 5)
	s.Require().ErrorIs(err, flow.ErrSinkNotFound)
	_, err = flow.MaxFlow(s.ctx, g, 1, 1)
	s.Require().ErrorIs(err, flow.ErrSameEndpoints)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err = flow.MaxFlow(ctx, g, 0, 1)
	s.Require().ErrorIs(err, context.Canceled)

	s.Require().Panics(func() { flow.WithEpsilon(0) })
}

func TestMaxFlowSuite(t *testing.T) { suite.Run(t, new(MaxFlowSuite)) }

func TestPairBounds(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddLink(i, (i+1)%4, 10))
	}
	dm, err := demand.New(4)
	require.NoError(t, err)
	require.NoError(t, dm.Set(0, 2, 25))
	require.NoError(t, dm.Set(2, 0, 5))
	require.NoError(t, dm.Set(1, 2, 12))

	bounds, err := flow.PairBounds(context.Background(), g, dm)
	require.NoError(t, err)
	require.Len(t, bounds, 3)

	require.Equal(t, 0, bounds[0].Src)
	require.Equal(t, 2, bounds[0].Dst)
	require.InDelta(t, 20, bounds[0].MaxFlow, 1e-9)
	require.True(t, bounds[0].Exceeds(1e-9))

	require.Equal(t, 1, bounds[1].Src)
	require.False(t, bounds[1].Exceeds(1e-9))

	require.Equal(t, 2, bounds[2].Src)
	require.InDelta(t, 20, bounds[2].MaxFlow, 1e-9)

	dinic, err := flow.PairBounds(context.Background(), g, dm, flow.WithAlgorithm(flow.DinicAlgorithm))
	require.NoError(t, err)
	require.Len(t, dinic, len(bounds))
	for i := range bounds {
		require.InDelta(t, bounds[i].MaxFlow, dinic[i].MaxFlow, 1e-9)
	}

	small, err := demand.New(2)
	require.NoError(t, err)
	_, err = flow.PairBounds(context.Background(), g, small)
	require.Error(t, err)
}

func TestParseAlgorithm(t *testing.T) {
	for in, want := range map[string]flow.Algorithm{
		"":             flow.EdmondsKarpAlgorithm,
		"edmonds-karp": flow.EdmondsKarpAlgorithm,
		"dinic":        flow.DinicAlgorithm,
	} {
		got, err := flow.ParseAlgorithm(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
	}
	require.Equal(t, "dinic", flow.DinicAlgorithm.String())

	_, err := flow.ParseAlgorithm("push-relabel")
	require.ErrorIs(t, err, flow.ErrUnknownAlgorithm)
}
