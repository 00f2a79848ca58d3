// SPDX-License-Identifier: MIT
// Package core_test verifies topology construction, validation and the
// canonical link mapping.
package core_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/teflow/core"
)

// ringOf builds an n-node ring 0-1-...-(n-1)-0 with uniform capacity.
func ringOf(t *testing.T, n int, capacity float64) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddLink(i, (i+1)%n, capacity))
	}

	return g
}

// GraphSuite groups construction and query tests.
type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = ringOf(s.T(), 4, 10)
}

// TestValidation covers every AddLink sentinel.
func (s *GraphSuite) TestValidation() {
	g, err := core.NewGraph(3)
	s.Require().NoError(err)

	s.Require().ErrorIs(g.AddLink(0, 0, 1), core.ErrLoopNotAllowed)
	s.Require().ErrorIs(g.AddLink(0, 3, 1), core.ErrNodeOutOfRange)
	s.Require().ErrorIs(g.AddLink(-1, 1, 1), core.ErrNodeOutOfRange)
	s.Require().ErrorIs(g.AddLink(0, 1, 0), core.ErrBadCapacity)
	s.Require().ErrorIs(g.AddLink(0, 1, -2), core.ErrBadCapacity)
	s.Require().ErrorIs(g.AddLink(0, 1, math.NaN()), core.ErrBadCapacity)
	s.Require().ErrorIs(g.AddLink(0, 1, math.Inf(1)), core.ErrBadCapacity)
	s.Require().ErrorIs(g.AddLink(0, 1, 1, core.WithWeight(-1)), core.ErrBadWeight)

	s.Require().NoError(g.AddLink(0, 1, 5))
	// Parallel link in the opposite orientation is still the same pair.
	s.Require().ErrorIs(g.AddLink(1, 0, 7), core.ErrDuplicateLink)
	s.Require().Equal(1, g.LinkCount())

	_, err = core.NewGraph(-1)
	s.Require().ErrorIs(err, core.ErrBadNodeCount)
}

// TestCanonical checks that both traversal directions land on the same key.
func (s *GraphSuite) TestCanonical() {
	s.Require().Equal(core.LinkKey{Tail: 1, Head: 3}, core.Canonical(3, 1))
	s.Require().Equal(core.Canonical(1, 3), core.Canonical(3, 1))
	s.Require().Equal(core.Arc{From: 2, To: 0}.Key(), core.Arc{From: 0, To: 2}.Key())
	s.Require().Equal("(0, 2)", core.Canonical(2, 0).String())

	// Ring link 3–0 was added as (3,0); its key is (0,3).
	l, err := s.g.Link(core.Canonical(0, 3))
	s.Require().NoError(err)
	s.Require().Equal(3, l.U)
	s.Require().Equal(0, l.V)
	s.Require().Equal(core.LinkKey{Tail: 0, Head: 3}, l.Key())
}

// TestLinksOrder asserts deterministic canonical ordering.
func (s *GraphSuite) TestLinksOrder() {
	keys := s.g.LinkKeys()
	s.Require().Equal([]core.LinkKey{
		{Tail: 0, Head: 1}, {Tail: 0, Head: 3}, {Tail: 1, Head: 2}, {Tail: 2, Head: 3},
	}, keys)

	links := s.g.Links()
	s.Require().Len(links, 4)
	for i, l := range links {
		s.Require().Equal(keys[i], l.Key())
		s.Require().Equal(10.0, l.Capacity)
		s.Require().Equal(10.0, l.Weight, "weight defaults to capacity")
	}
}

// TestNeighbors asserts ID-sorted neighborhoods and range errors.
func (s *GraphSuite) TestNeighbors() {
	nb, err := s.g.Neighbors(0)
	s.Require().NoError(err)
	s.Require().Len(nb, 2)
	s.Require().Equal(1, nb[0].ID)
	s.Require().Equal(3, nb[1].ID)

	_, err = s.g.Neighbors(4)
	s.Require().ErrorIs(err, core.ErrNodeOutOfRange)

	d, err := s.g.Degree(2)
	s.Require().NoError(err)
	s.Require().Equal(2, d)
}

// TestWeightOverride keeps capacity and ranking weight apart.
func (s *GraphSuite) TestWeightOverride() {
	g, err := core.NewGraph(2)
	s.Require().NoError(err)
	s.Require().NoError(g.AddLink(0, 1, 40, core.WithWeight(3)))
	l, err := g.Link(core.Canonical(1, 0))
	s.Require().NoError(err)
	s.Require().Equal(40.0, l.Capacity)
	s.Require().Equal(3.0, l.Cost(core.MetricWeight))
	s.Require().Equal(1.0, l.Cost(core.MetricHops))
}

// TestCloneAndFailureView checks deep copy and non-mutating removal.
func (s *GraphSuite) TestCloneAndFailureView() {
	clone := s.g.Clone()
	s.Require().NoError(clone.RemoveLink(1, 0))
	s.Require().True(s.g.HasLink(0, 1), "source must be untouched")
	s.Require().False(clone.HasLink(0, 1))

	failed, err := core.WithoutLinks(s.g, core.Canonical(2, 3))
	s.Require().NoError(err)
	s.Require().Equal(3, failed.LinkCount())
	s.Require().Equal(4, s.g.LinkCount())

	_, err = core.WithoutLinks(s.g, core.Canonical(0, 2))
	s.Require().ErrorIs(err, core.ErrLinkNotFound)
}

// TestStats checks the snapshot summary.
func (s *GraphSuite) TestStats() {
	g, err := core.NewGraph(5, core.WithName("line"))
	s.Require().NoError(err)
	s.Require().NoError(g.AddLink(0, 1, 2))
	s.Require().NoError(g.AddLink(1, 2, 8))

	st := g.Stats()
	s.Require().Equal("line", st.Name)
	s.Require().Equal(5, st.NodeCount)
	s.Require().Equal(2, st.LinkCount)
	s.Require().Equal(2.0, st.MinCapacity)
	s.Require().Equal(8.0, st.MaxCapacity)
	s.Require().Equal(10.0, st.TotalCapacity)
	s.Require().Equal(2, st.Isolated)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// TestConcurrentReaders exercises the read lock from several goroutines.
func TestConcurrentReaders(t *testing.T) {
	g := ringOf(t, 16, 1)
	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for r := 0; r < 32; r++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if _, err := g.Neighbors(id % 16); err != nil {
				errs <- err
			}
			if len(g.Links()) != 16 {
				errs <- errors.New("unexpected link count")
			}
		}(r)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

func TestParseMetric(t *testing.T) {
	m, err := core.ParseMetric("hops")
	require.NoError(t, err)
	require.Equal(t, core.MetricHops, m)

	m, err = core.ParseMetric("")
	require.NoError(t, err)
	require.Equal(t, core.MetricWeight, m)
	require.Equal(t, "weight", m.String())

	_, err = core.ParseMetric("latency")
	require.Error(t, err)
}
