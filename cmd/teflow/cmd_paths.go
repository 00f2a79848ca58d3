package main

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/teflow/core"
	"github.com/katalvlaran/teflow/dfs"
	"github.com/katalvlaran/teflow/ksp"
)

type pathsFlags struct {
	scenario string
	src, dst int
	k        int
	metric   string
	all      bool
	maxHops  int
}

func newPathsCmd(a *app) *cobra.Command {
	var f pathsFlags
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "List the k shortest candidate paths of one node pair",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, inst, err := a.loadScenario(f.scenario)
			if err != nil {
				return err
			}
			k, metric, err := a.pathSettings(cmd, s, f.k, f.metric)
			if err != nil {
				return err
			}
			var lines []pathLine
			if f.all {
				lines, err = allPaths(cmd, inst.Graph, f.src, f.dst, metric, f.maxHops)
			} else {
				lines, err = kShortest(inst.Graph, f.src, f.dst, k, metric)
			}
			if err != nil {
				return err
			}
			printPaths(a.out, f.src, f.dst, metric, lines)

			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.scenario, "scenario", "s", "", "scenario YAML file")
	fl.IntVar(&f.src, "src", 0, "source node")
	fl.IntVar(&f.dst, "dst", 0, "destination node")
	fl.IntVar(&f.k, "k", 0, "number of paths")
	fl.StringVar(&f.metric, "metric", "", "path ranking metric (weight|hops)")
	fl.BoolVar(&f.all, "all", false, "list every simple path instead of the k shortest")
	fl.IntVar(&f.maxHops, "max-hops", 0, "with --all, skip paths longer than this many links")
	_ = cmd.MarkFlagRequired("scenario")
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("dst")

	return cmd
}

func kShortest(g *core.Graph, src, dst, k int, metric core.Metric) ([]pathLine, error) {
	paths, err := ksp.KShortest(g, src, dst, k, ksp.WithMetric(metric))
	if err != nil {
		return nil, err
	}
	lines := make([]pathLine, len(paths))
	for i, p := range paths {
		lines[i] = pathLine{cost: p.Cost, hops: p.Hops(), nodes: p.String()}
	}

	return lines, nil
}

// allPaths enumerates every simple path and orders it by cost, then by node
// sequence (the enumeration order).
func allPaths(cmd *cobra.Command, g *core.Graph, src, dst int, metric core.Metric, maxHops int) ([]pathLine, error) {
	var opts []dfs.Option
	if maxHops > 0 {
		opts = append(opts, dfs.WithMaxDepth(maxHops))
	}
	res, err := dfs.SimplePaths(cmd.Context(), g, src, dst, opts...)
	if err != nil {
		return nil, err
	}
	lines := make([]pathLine, 0, len(res.Paths))
	for _, nodes := range res.Paths {
		if len(nodes) < 2 {
			continue
		}
		p := ksp.Path{Src: src, Dst: dst, Nodes: nodes}
		for _, arc := range p.Arcs() {
			l, lerr := g.Link(arc.Key())
			if lerr != nil {
				return nil, lerr
			}
			p.Cost += l.Cost(metric)
		}
		lines = append(lines, pathLine{cost: p.Cost, hops: p.Hops(), nodes: p.String()})
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].cost < lines[j].cost })

	return lines, nil
}
