// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: One parameterized builder for the three path-based formulations.
// Steps (shared skeleton, all variants):
//  1. load variable per canonical link, load ≤ capacity;
//  2. MLU variants: load/capacity − mlu ≤ 0;
//  3. flow variable per catalogue path (≥ 0);
//  4. per link: load − Σ crediting flows = 0 (empty sum allowed);
//  5. per pair with ≥ 1 path: Σ flows ≤ demand, or ≥ demand when constrained.
// Then the variant objective.
// Determinism:
//   - Links in canonical order, paths in catalogue order, pairs in (src, dst) order.
// AI-HINT (file):
//   - Every Build call creates its own model.Model; handles never cross variants.

package te

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/teflow/core"
	"github.com/katalvlaran/teflow/demand"
	"github.com/katalvlaran/teflow/ksp"
	"github.com/katalvlaran/teflow/model"
)

// Sentinel errors for model construction.
var (
	// ErrNilInput indicates a nil graph, incidence or demand matrix.
	ErrNilInput = errors.New("te: nil input")

	// ErrDimensionMismatch indicates topology, catalogue and demand disagree on n.
	ErrDimensionMismatch = errors.New("te: dimension mismatch")

	// ErrUnknownVariant indicates a Variant outside the defined set.
	ErrUnknownVariant = errors.New("te: unknown variant")

	// ErrInconsistentCredit indicates a path traversal credited to a link the
	// topology does not declare, or credit that does not match the paths.
	ErrInconsistentCredit = errors.New("te: inconsistent edge crediting")
)

// Stats counts variables and rows per family.
type Stats struct {
	PathVars   int
	EdgeVars   int
	ScalarVars int // mlu and total_flow

	CapacityRows    int
	UtilizationRows int
	LoadRows        int
	DemandRows      int
	FlowRows        int
}

// Vars returns the total number of variables.
func (s Stats) Vars() int { return s.PathVars + s.EdgeVars + s.ScalarVars }

// Constrs returns the total number of constraints.
func (s Stats) Constrs() int {
	return s.CapacityRows + s.UtilizationRows + s.LoadRows + s.DemandRows + s.FlowRows
}

// Formulation is one built model together with the handles needed to read
// a solution back.
type Formulation struct {
	Variant Variant
	Model   *model.Model

	// PathVars[i] is the flow variable of catalogue path i.
	PathVars []model.Var

	// EdgeVars maps each canonical link to its load variable.
	EdgeVars map[core.LinkKey]model.Var

	// Links are the declared links in canonical order.
	Links []core.Link

	// MLU is the utilization bound (zero Var for MaxThroughput).
	MLU model.Var

	// TotalFlow is Σ flows (zero Var for MaxThroughput).
	TotalFlow model.Var

	// TotalDemand is Σ demand[i][j].
	TotalDemand float64

	Catalog *ksp.Catalog
	stats   Stats
}

// HasMLU reports whether the formulation declares the MLU variable.
func (f *Formulation) HasMLU() bool { return f.MLU.Model() != nil }

// Stats returns the per-family counts.
func (f *Formulation) Stats() Stats { return f.stats }

// Build constructs the model of variant v. No feasibility pre-check is made.
//
// Errors:
//   - ErrUnknownVariant, ErrNilInput, ErrDimensionMismatch.
//   - ErrInconsistentCredit: the incidence credits a link the graph lacks,
//     or a credited path does not traverse that link.
//
// Complexity: O(E + P·h + n²) rows and terms, P = paths, h = mean hops.
func Build(v Variant, g *core.Graph, inc *Incidence, dm *demand.Matrix) (*Formulation, error) {
	if !v.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	if g == nil || inc == nil || inc.Catalog == nil || dm == nil {
		return nil, ErrNilInput
	}
	n := g.NodeCount()
	if inc.Catalog.NodeCount() != n || dm.N() != n {
		return nil, fmt.Errorf("%w: graph n=%d, catalog n=%d, demand n=%d",
			ErrDimensionMismatch, n, inc.Catalog.NodeCount(), dm.N())
	}
	links := g.Links()
	if err := verifyCredit(links, inc); err != nil {
		return nil, err
	}

	b := &builder{
		v:   v,
		inc: inc,
		dm:  dm,
		f: &Formulation{
			Variant:     v,
			Model:       model.New(v.String()),
			EdgeVars:    make(map[core.LinkKey]model.Var, len(links)),
			Links:       links,
			TotalDemand: dm.Total(),
			Catalog:     inc.Catalog,
		},
	}
	for _, step := range []func() error{
		b.declareMLU,
		b.declareLinks,
		b.declarePaths,
		b.defineLoads,
		b.addDemandRows,
		b.defineTotalFlow,
		b.setObjective,
	} {
		if err := step(); err != nil {
			return nil, fmt.Errorf("te: build %s: %w", v, err)
		}
	}

	return b.f, nil
}

// BuildAll builds every requested variant (all three when none is given).
// Each formulation owns an independent model.
func BuildAll(g *core.Graph, inc *Incidence, dm *demand.Matrix, variants ...Variant) ([]*Formulation, error) {
	if len(variants) == 0 {
		variants = Variants
	}
	out := make([]*Formulation, 0, len(variants))
	for _, v := range variants {
		f, err := Build(v, g, inc, dm)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, nil
}

// builder carries the state of one Build call.
type builder struct {
	v   Variant
	inc *Incidence
	dm  *demand.Matrix
	f   *Formulation
}

func (b *builder) declareMLU() error {
	if !b.v.usesMLU() {
		return nil
	}
	mlu, err := b.f.Model.AddVar(MLUName, 0, model.Inf)
	if err != nil {
		return err
	}
	b.f.MLU = mlu
	b.f.stats.ScalarVars++

	return nil
}

// declareLinks covers steps 1 and 2.
func (b *builder) declareLinks() error {
	m := b.f.Model
	for _, l := range b.f.Links {
		key := l.Key()
		load, err := m.AddVar(EdgeVarName(key), 0, model.Inf)
		if err != nil {
			return err
		}
		b.f.EdgeVars[key] = load
		b.f.stats.EdgeVars++

		if _, err = m.AddConstr(model.Sum(load), model.LessEqual, l.Capacity, CapacityRowName(key)); err != nil {
			return err
		}
		b.f.stats.CapacityRows++

		if !b.f.HasMLU() {
			continue
		}
		util := model.Expr{}
		util.AddTerm(load, 1/l.Capacity).AddTerm(b.f.MLU, -1)
		if _, err = m.AddConstr(util, model.LessEqual, 0, UtilizationRowName(key)); err != nil {
			return err
		}
		b.f.stats.UtilizationRows++
	}

	return nil
}

// declarePaths covers step 3.
func (b *builder) declarePaths() error {
	cat := b.inc.Catalog
	b.f.PathVars = make([]model.Var, cat.Len())
	for _, pair := range b.inc.Pairs {
		start, end := cat.PairRange(pair.Src, pair.Dst)
		for idx := start; idx < end; idx++ {
			x, err := b.f.Model.AddVar(PathVarName(pair.Src, pair.Dst, idx-start), 0, model.Inf)
			if err != nil {
				return err
			}
			b.f.PathVars[idx] = x
			b.f.stats.PathVars++
		}
	}

	return nil
}

// defineLoads covers step 4: load − Σ crediting flows = 0 for every link.
func (b *builder) defineLoads() error {
	for _, l := range b.f.Links {
		key := l.Key()
		row := model.Sum(b.f.EdgeVars[key])
		for _, idx := range b.inc.EdgePaths[key] {
			row.AddTerm(b.f.PathVars[idx], -1)
		}
		if _, err := b.f.Model.AddConstr(row, model.Equal, 0, LoadRowName(key)); err != nil {
			return err
		}
		b.f.stats.LoadRows++
	}

	return nil
}

// addDemandRows covers step 5.
func (b *builder) addDemandRows() error {
	sense := b.v.demandSense()
	for _, pair := range b.inc.Pairs {
		start, end := b.inc.Catalog.PairRange(pair.Src, pair.Dst)
		row := model.Sum(b.f.PathVars[start:end]...)
		if _, err := b.f.Model.AddConstr(row, sense, b.dm.At(pair.Src, pair.Dst), DemandRowName(pair)); err != nil {
			return err
		}
		b.f.stats.DemandRows++
	}

	return nil
}

// defineTotalFlow declares total_flow = Σ flows for the MLU variants.
func (b *builder) defineTotalFlow() error {
	if !b.v.usesMLU() {
		return nil
	}
	tf, err := b.f.Model.AddVar(TotalFlowName, 0, model.Inf)
	if err != nil {
		return err
	}
	b.f.TotalFlow = tf
	b.f.stats.ScalarVars++

	row := model.Sum(tf)
	for _, x := range b.f.PathVars {
		row.AddTerm(x, -1)
	}
	if _, err = b.f.Model.AddConstr(row, model.Equal, 0, FlowRowName); err != nil {
		return err
	}
	b.f.stats.FlowRows++

	return nil
}

func (b *builder) setObjective() error {
	switch b.v {
	case MaxThroughput:
		return b.f.Model.SetObjective(model.Sum(b.f.PathVars...), model.Maximize)
	case MinMLUWeighted:
		obj := model.Sum(b.f.MLU)
		// zero total demand: no bonus term, objective is MLU alone
		if b.f.TotalDemand > 0 {
			obj.AddTerm(b.f.TotalFlow, -1/b.f.TotalDemand)
		}
		return b.f.Model.SetObjective(obj, model.Minimize)
	default:
		return b.f.Model.SetObjective(model.Sum(b.f.MLU), model.Minimize)
	}
}

// verifyCredit checks that every credited key is a declared link, that every
// credited path traverses that link, and that no traversal is missing.
func verifyCredit(links []core.Link, inc *Incidence) error {
	declared := make(map[core.LinkKey]struct{}, len(links))
	for _, l := range links {
		declared[l.Key()] = struct{}{}
	}

	cat := inc.Catalog
	credited := 0
	for key, idxs := range inc.EdgePaths {
		if _, ok := declared[key]; !ok {
			return fmt.Errorf("%w: %s is not a topology link", ErrInconsistentCredit, key)
		}
		for _, idx := range idxs {
			if idx < 0 || idx >= cat.Len() || !traverses(cat.Path(idx), key) {
				return fmt.Errorf("%w: path %d credited to %s", ErrInconsistentCredit, idx, key)
			}
		}
		credited += len(idxs)
	}

	hops := 0
	for _, p := range cat.Paths() {
		hops += p.Hops()
	}
	if credited != hops {
		return fmt.Errorf("%w: %d credits for %d traversals", ErrInconsistentCredit, credited, hops)
	}

	return nil
}

func traverses(p ksp.Path, key core.LinkKey) bool {
	for _, a := range p.Arcs() {
		if a.Key() == key {
			return true
		}
	}

	return false
}
