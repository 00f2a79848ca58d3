package te_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/teflow/core"
	"github.com/katalvlaran/teflow/demand"
	"github.com/katalvlaran/teflow/ksp"
	"github.com/katalvlaran/teflow/model"
	"github.com/katalvlaran/teflow/te"
)

// ring4 is 0-1-2-3-0 with capacity 10 everywhere.
func ring4(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(4, core.WithName("ring4"))
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddLink(i, (i+1)%4, 10))
	}

	return g
}

// singleDemand returns a 4×4 matrix with demand[0][2] = v.
func singleDemand(t *testing.T, v float64) *demand.Matrix {
	t.Helper()
	dm, err := demand.New(4)
	require.NoError(t, err)
	require.NoError(t, dm.Set(0, 2, v))

	return dm
}

// BuildSuite exercises the model skeleton on the 4-node ring with k = 2.
type BuildSuite struct {
	suite.Suite
	g   *core.Graph
	cat *ksp.Catalog
	inc *te.Incidence
	dm  *demand.Matrix
}

func (s *BuildSuite) SetupTest() {
	s.g = ring4(s.T())
	var err error
	s.cat, err = ksp.Enumerate(context.Background(), s.g, 2)
	s.Require().NoError(err)
	s.inc, err = te.NewIncidence(s.cat)
	s.Require().NoError(err)
	s.dm = singleDemand(s.T(), 15)
}

func (s *BuildSuite) TestCredits() {
	// 8 adjacent ordered pairs × (1 + 3 hops) + 4 opposite pairs × (2 + 2 hops)
	s.Require().Equal(48, s.inc.TotalCredits())
	for _, key := range s.g.LinkKeys() {
		s.Require().Equal(12, s.inc.Credits(key))
	}
	s.Require().Len(s.inc.Pairs, 12)
}

func (s *BuildSuite) TestCreditedLinksAreTopologyLinks() {
	for key := range s.inc.EdgePaths {
		s.Require().True(s.g.HasLink(key.Tail, key.Head), "credited %s", key)
		s.Require().Less(key.Tail, key.Head)
	}
}

func (s *BuildSuite) TestDirectionInvariantCredit() {
	fwd := s.cat.PairPaths(0, 1)[0] // 0→1
	rev := s.cat.PairPaths(1, 0)[0] // 1→0
	s.Require().Equal([]int{0, 1}, fwd.Nodes)
	s.Require().Equal([]int{1, 0}, rev.Nodes)

	fi, _ := s.cat.PairRange(0, 1)
	ri, _ := s.cat.PairRange(1, 0)
	credits := s.inc.EdgePaths[core.Canonical(1, 0)]
	s.Require().Contains(credits, fi)
	s.Require().Contains(credits, ri)

	f, err := te.Build(te.MaxThroughput, s.g, s.inc, s.dm)
	s.Require().NoError(err)
	row, ok := f.Model.Constraint(te.LoadRowName(core.Canonical(0, 1)))
	s.Require().True(ok)
	coefs := make(map[model.Var]float64)
	for _, t := range row.Terms {
		coefs[t.Var] = t.Coef
	}
	s.Require().Equal(-1.0, coefs[f.PathVars[fi]])
	s.Require().Equal(-1.0, coefs[f.PathVars[ri]])
}

func (s *BuildSuite) TestCounts() {
	mt, err := te.Build(te.MaxThroughput, s.g, s.inc, s.dm)
	s.Require().NoError(err)
	s.Require().Equal(te.Stats{
		PathVars: 24, EdgeVars: 4,
		CapacityRows: 4, LoadRows: 4, DemandRows: 12,
	}, mt.Stats())
	s.Require().Equal(28, mt.Model.NumVars())
	s.Require().Equal(20, mt.Model.NumConstrs())
	s.Require().False(mt.HasMLU())
	s.Require().Equal(model.Maximize, mt.Model.Objective().Sense)

	for _, v := range []te.Variant{te.MinMLUWeighted, te.MinMLUConstrained} {
		f, err := te.Build(v, s.g, s.inc, s.dm)
		s.Require().NoError(err)
		s.Require().Equal(te.Stats{
			PathVars: 24, EdgeVars: 4, ScalarVars: 2,
			CapacityRows: 4, UtilizationRows: 4, LoadRows: 4, DemandRows: 12, FlowRows: 1,
		}, f.Stats(), v.String())
		s.Require().True(f.HasMLU())
		s.Require().Equal(f.Stats().Vars(), f.Model.NumVars())
		s.Require().Equal(f.Stats().Constrs(), f.Model.NumConstrs())
	}
}

// Every load row is exactly  load − Σ crediting path flows = 0.
func (s *BuildSuite) TestLoadBookkeepingIdentity() {
	for _, v := range te.Variants {
		f, err := te.Build(v, s.g, s.inc, s.dm)
		s.Require().NoError(err)
		for _, l := range f.Links {
			key := l.Key()
			row, ok := f.Model.Constraint(te.LoadRowName(key))
			s.Require().True(ok)
			s.Require().Equal(model.Equal, row.Sense)
			s.Require().Equal(0.0, row.RHS)

			want := map[int]float64{f.EdgeVars[key].Index(): 1}
			for _, idx := range s.inc.EdgePaths[key] {
				want[f.PathVars[idx].Index()] -= 1
			}
			got := make(map[int]float64)
			for _, t := range row.Terms {
				got[t.Var.Index()] += t.Coef
			}
			s.Require().Equal(want, got, "%s %s", v, key)
		}
	}
}

func (s *BuildSuite) TestDemandRowSense() {
	key := ksp.Pair{Src: 0, Dst: 2}
	for v, sense := range map[te.Variant]model.Sense{
		te.MaxThroughput:     model.LessEqual,
		te.MinMLUWeighted:    model.LessEqual,
		te.MinMLUConstrained: model.GreaterEqual,
	} {
		f, err := te.Build(v, s.g, s.inc, s.dm)
		s.Require().NoError(err)
		row, ok := f.Model.Constraint(te.DemandRowName(key))
		s.Require().True(ok)
		s.Require().Equal(sense, row.Sense)
		s.Require().Equal(15.0, row.RHS)
		s.Require().Len(row.Terms, 2)
	}
}

func (s *BuildSuite) TestIdempotentRebuild() {
	for _, v := range te.Variants {
		a, err := te.Build(v, s.g, s.inc, s.dm)
		s.Require().NoError(err)
		b, err := te.Build(v, s.g, s.inc, s.dm)
		s.Require().NoError(err)
		s.Require().Equal(a.Stats(), b.Stats())
		s.Require().Equal(a.Model.Vars(), b.Model.Vars())

		ca, cb := a.Model.Constraints(), b.Model.Constraints()
		s.Require().Len(cb, len(ca))
		for i := range ca {
			s.Require().Equal(ca[i].Name, cb[i].Name)
			s.Require().Equal(ca[i].Sense, cb[i].Sense)
			s.Require().Equal(ca[i].RHS, cb[i].RHS)
			s.Require().Len(cb[i].Terms, len(ca[i].Terms))
		}
	}
}

func (s *BuildSuite) TestNoHandleAliasing() {
	forms, err := te.BuildAll(s.g, s.inc, s.dm)
	s.Require().NoError(err)
	s.Require().Len(forms, 3)
	for i := range forms {
		for j := range forms {
			if i == j {
				continue
			}
			s.Require().NotSame(forms[i].Model, forms[j].Model)
			_, err = forms[j].Model.AddConstr(model.Sum(forms[i].PathVars[0]), model.LessEqual, 1, "cross")
			s.Require().ErrorIs(err, model.ErrForeignVar)
		}
		for _, x := range forms[i].PathVars {
			s.Require().Same(forms[i].Model, x.Model())
		}
	}
}

func (s *BuildSuite) TestWeightedObjective() {
	f, err := te.Build(te.MinMLUWeighted, s.g, s.inc, s.dm)
	s.Require().NoError(err)
	obj := f.Model.Objective()
	s.Require().Equal(model.Minimize, obj.Sense)
	s.Require().Len(obj.Terms, 2)
	s.Require().Equal(f.MLU, obj.Terms[0].Var)
	s.Require().Equal(f.TotalFlow, obj.Terms[1].Var)
	s.Require().InDelta(-1.0/15, obj.Terms[1].Coef, 1e-15)

	// zero total demand drops the bonus
	zero, err := demand.New(4)
	s.Require().NoError(err)
	f, err = te.Build(te.MinMLUWeighted, s.g, s.inc, zero)
	s.Require().NoError(err)
	obj = f.Model.Objective()
	s.Require().Len(obj.Terms, 1)
	s.Require().Equal(f.MLU, obj.Terms[0].Var)
	s.Require().Equal(0.0, f.TotalDemand)
}

func (s *BuildSuite) TestInconsistentCredit() {
	// catalogue of the intact ring against a topology that lost 0–1
	broken, err := core.WithoutLinks(s.g, core.Canonical(0, 1))
	s.Require().NoError(err)
	_, err = te.Build(te.MaxThroughput, broken, s.inc, s.dm)
	s.Require().ErrorIs(err, te.ErrInconsistentCredit)

	// a path credited to a link it never traverses
	start, _ := s.cat.PairRange(0, 1) // path 0→1
	tampered := &te.Incidence{Catalog: s.cat, Pairs: s.inc.Pairs, EdgePaths: map[core.LinkKey][]int{}}
	for k, v := range s.inc.EdgePaths {
		tampered.EdgePaths[k] = append([]int(nil), v...)
	}
	key := core.Canonical(2, 3)
	tampered.EdgePaths[key] = append(tampered.EdgePaths[key], start)
	_, err = te.Build(te.MinMLUConstrained, s.g, tampered, s.dm)
	s.Require().ErrorIs(err, te.ErrInconsistentCredit)

	// a missing traversal
	delete(tampered.EdgePaths, key)
	_, err = te.Build(te.MinMLUConstrained, s.g, tampered, s.dm)
	s.Require().ErrorIs(err, te.ErrInconsistentCredit)
}

func (s *BuildSuite) TestInputValidation() {
	_, err := te.Build(te.Variant(7), s.g, s.inc, s.dm)
	s.Require().ErrorIs(err, te.ErrUnknownVariant)

	_, err = te.Build(te.MaxThroughput, nil, s.inc, s.dm)
	s.Require().ErrorIs(err, te.ErrNilInput)

	small, err := demand.New(3)
	s.Require().NoError(err)
	_, err = te.Build(te.MaxThroughput, s.g, s.inc, small)
	s.Require().ErrorIs(err, te.ErrDimensionMismatch)

	_, err = te.NewIncidence(nil)
	s.Require().Error(err)
}

func TestBuildSuite(t *testing.T) { suite.Run(t, new(BuildSuite)) }

func TestUnreachablePairsHaveNoDemandRow(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddLink(0, 1, 5))
	require.NoError(t, g.AddLink(2, 3, 5))
	cat, err := ksp.Enumerate(context.Background(), g, 3)
	require.NoError(t, err)
	inc, err := te.NewIncidence(cat)
	require.NoError(t, err)

	dm, err := demand.Uniform(4, 1)
	require.NoError(t, err)
	f, err := te.Build(te.MinMLUConstrained, g, inc, dm)
	require.NoError(t, err)
	require.Equal(t, 4, f.Stats().DemandRows)
	_, ok := f.Model.Constraint(te.DemandRowName(ksp.Pair{Src: 0, Dst: 2}))
	require.False(t, ok)
	_, ok = f.Model.Constraint(te.DemandRowName(ksp.Pair{Src: 0, Dst: 1}))
	require.True(t, ok)
}

func TestParseVariant(t *testing.T) {
	for in, want := range map[string]te.Variant{
		"mt":                  te.MaxThroughput,
		"max-throughput":      te.MaxThroughput,
		"MLU":                 te.MinMLUWeighted,
		"min-mlu":             te.MinMLUWeighted,
		"mlu-constrained":     te.MinMLUConstrained,
		"min-mlu-constrained": te.MinMLUConstrained,
	} {
		got, err := te.ParseVariant(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := te.ParseVariant("bogus")
	require.ErrorIs(t, err, te.ErrUnknownVariant)

	for _, v := range te.Variants {
		back, err := te.ParseVariant(v.String())
		require.NoError(t, err)
		require.Equal(t, v, back)
	}
	require.Equal(t, "variant(9)", te.Variant(9).String())
}
