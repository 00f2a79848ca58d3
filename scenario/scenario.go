// SPDX-License-Identifier: MIT
//
// File: scenario.go
// Role: YAML scenario files: topology + demand + path settings.
// Policy:
//   - Unknown keys are rejected (KnownFields) so typos never pass silently.
//   - Exactly one topology form (links | generate) and at most one demand
//     form (demands | matrix | uniform) per file.
// AI-HINT (file):
//   - Build() is the only way to obtain a Graph/Matrix from a Scenario; it
//     runs Validate first.

package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/teflow/builder"
	"github.com/katalvlaran/teflow/core"
	"github.com/katalvlaran/teflow/demand"
	"github.com/katalvlaran/teflow/ksp"
)

// Sentinel errors.
var (
	// ErrNoTopology indicates neither links nor a generator was given.
	ErrNoTopology = errors.New("scenario: no topology")

	// ErrMixedTopology indicates both links and a generator were given.
	ErrMixedTopology = errors.New("scenario: links and generate are mutually exclusive")

	// ErrMixedDemand indicates more than one demand form was given.
	ErrMixedDemand = errors.New("scenario: demands, matrix and uniform are mutually exclusive")

	// ErrBadNodes indicates a missing or inconsistent node count.
	ErrBadNodes = errors.New("scenario: bad node count")

	// ErrBadK indicates a negative k.
	ErrBadK = errors.New("scenario: k must be non-negative")
)

// Link is one undirected link entry. Weight defaults to Capacity.
type Link struct {
	U        int      `yaml:"u"`
	V        int      `yaml:"v"`
	Capacity float64  `yaml:"capacity"`
	Weight   *float64 `yaml:"weight,omitempty"`
}

// Demand is one ordered (src, dst, volume) entry. Repeated pairs add up.
type Demand struct {
	Src    int     `yaml:"src"`
	Dst    int     `yaml:"dst"`
	Volume float64 `yaml:"volume"`
}

// Generator describes a synthetic topology produced by package builder.
type Generator struct {
	Kind     string    `yaml:"kind"`
	N        int       `yaml:"n,omitempty"`
	Rows     int       `yaml:"rows,omitempty"`
	Cols     int       `yaml:"cols,omitempty"`
	P        float64   `yaml:"p,omitempty"`
	Seed     int64     `yaml:"seed,omitempty"`
	Capacity float64   `yaml:"capacity,omitempty"`
	Tiers    []float64 `yaml:"tiers,omitempty"`
}

// Scenario is the on-disk description of one traffic-engineering instance.
type Scenario struct {
	Name   string `yaml:"name,omitempty"`
	Nodes  int    `yaml:"nodes,omitempty"`
	K      int    `yaml:"k,omitempty"`
	Metric string `yaml:"metric,omitempty"`

	Links    []Link     `yaml:"links,omitempty"`
	Generate *Generator `yaml:"generate,omitempty"`

	Demands []Demand    `yaml:"demands,omitempty"`
	Matrix  [][]float64 `yaml:"matrix,omitempty"`
	Uniform *float64    `yaml:"uniform,omitempty"`
}

// Instance is a validated, materialized scenario.
type Instance struct {
	Name   string
	Graph  *core.Graph
	Demand *demand.Matrix
	K      int
	Metric core.Metric
}

// Load reads and decodes the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Decode parses a scenario document from r.
func Decode(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}

	return &s, nil
}

// Encode writes s as YAML to w.
func (s *Scenario) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("scenario: encode: %w", err)
	}

	return enc.Close()
}

// Save writes s to path, replacing any existing file.
func (s *Scenario) Save(path string) error {
	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	return nil
}

// Validate checks the structural rules that do not need a built graph.
func (s *Scenario) Validate() error {
	switch {
	case len(s.Links) > 0 && s.Generate != nil:
		return ErrMixedTopology
	case len(s.Links) == 0 && s.Generate == nil && s.Nodes == 0:
		return ErrNoTopology
	}
	forms := 0
	if len(s.Demands) > 0 {
		forms++
	}
	if len(s.Matrix) > 0 {
		forms++
	}
	if s.Uniform != nil {
		forms++
	}
	if forms > 1 {
		return ErrMixedDemand
	}
	if s.K < 0 {
		return fmt.Errorf("%w: %d", ErrBadK, s.K)
	}
	if s.Nodes < 0 {
		return fmt.Errorf("%w: %d", ErrBadNodes, s.Nodes)
	}
	if _, err := core.ParseMetric(s.Metric); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	return nil
}

// Build validates s and materializes the topology and demand matrix.
// A zero K selects ksp.DefaultK.
func (s *Scenario) Build() (*Instance, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	metric, _ := core.ParseMetric(s.Metric)
	g, err := s.graph()
	if err != nil {
		return nil, err
	}
	dm, err := s.demand(g.NodeCount())
	if err != nil {
		return nil, err
	}
	k := s.K
	if k == 0 {
		k = ksp.DefaultK
	}

	return &Instance{Name: s.Name, Graph: g, Demand: dm, K: k, Metric: metric}, nil
}

func (s *Scenario) graph() (*core.Graph, error) {
	if s.Generate != nil {
		g, err := s.Generate.build(s.Name)
		if err != nil {
			return nil, fmt.Errorf("scenario: generate: %w", err)
		}
		if s.Nodes != 0 && s.Nodes != g.NodeCount() {
			return nil, fmt.Errorf("%w: nodes=%d, generator produced %d", ErrBadNodes, s.Nodes, g.NodeCount())
		}
		return g, nil
	}

	g, err := core.NewGraph(s.Nodes, core.WithName(s.Name))
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	for i, l := range s.Links {
		var opts []core.LinkOption
		if l.Weight != nil {
			opts = append(opts, core.WithWeight(*l.Weight))
		}
		if err = g.AddLink(l.U, l.V, l.Capacity, opts...); err != nil {
			return nil, fmt.Errorf("scenario: links[%d]: %w", i, err)
		}
	}

	return g, nil
}

func (s *Scenario) demand(n int) (*demand.Matrix, error) {
	switch {
	case len(s.Matrix) > 0:
		if len(s.Matrix) != n {
			return nil, fmt.Errorf("scenario: matrix has %d rows for %d nodes: %w", len(s.Matrix), n, demand.ErrNotSquare)
		}
		dm, err := demand.FromRows(s.Matrix)
		if err != nil {
			return nil, fmt.Errorf("scenario: matrix: %w", err)
		}
		return dm, nil
	case s.Uniform != nil:
		dm, err := demand.Uniform(n, *s.Uniform)
		if err != nil {
			return nil, fmt.Errorf("scenario: uniform: %w", err)
		}
		return dm, nil
	}

	dm, err := demand.New(n)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	for i, d := range s.Demands {
		if err = dm.Add(d.Src, d.Dst, d.Volume); err != nil {
			return nil, fmt.Errorf("scenario: demands[%d]: %w", i, err)
		}
	}

	return dm, nil
}

func (gen *Generator) build(name string) (*core.Graph, error) {
	opts := []builder.BuilderOption{builder.WithSeed(gen.Seed)}
	switch {
	case len(gen.Tiers) > 0:
		opts = append(opts, builder.WithCapacityFn(builder.TieredCapacityFn(gen.Tiers...)))
	case gen.Capacity > 0:
		opts = append(opts, builder.WithCapacity(gen.Capacity))
	}
	params := builder.Params{N: gen.N, Rows: gen.Rows, Cols: gen.Cols, P: gen.P}

	return builder.Generate(gen.Kind, params, []core.GraphOption{core.WithName(name)}, opts...)
}

// FromInstance renders a materialized topology and demand back into the
// explicit links/demands form. Weights equal to capacity are omitted.
func FromInstance(name string, g *core.Graph, dm *demand.Matrix, k int, metric core.Metric) *Scenario {
	s := &Scenario{Name: name, Nodes: g.NodeCount(), K: k, Metric: metric.String()}
	for _, l := range g.Links() {
		entry := Link{U: l.U, V: l.V, Capacity: l.Capacity}
		if l.Weight != l.Capacity {
			w := l.Weight
			entry.Weight = &w
		}
		s.Links = append(s.Links, entry)
	}
	if dm == nil {
		return s
	}
	for i := 0; i < dm.N(); i++ {
		for j := 0; j < dm.N(); j++ {
			if v := dm.At(i, j); v > 0 {
				s.Demands = append(s.Demands, Demand{Src: i, Dst: j, Volume: v})
			}
		}
	}

	return s
}
