package main

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/teflow/core"
	"github.com/katalvlaran/teflow/te"
)

// printReport renders one line per variant followed by the link loads of
// every optimal variant.
func printReport(w io.Writer, name string, rep *te.Report) {
	fmt.Fprintf(w, "scenario %s  run %s  paths %d  pairs %d\n",
		name, rep.RunID, rep.Catalog.Len(), len(rep.Incidence.Pairs))
	fmt.Fprintf(w, "%-20s %-10s %12s %10s %12s %8s %8s %10s\n",
		"VARIANT", "STATUS", "OBJECTIVE", "MLU", "THROUGHPUT", "VARS", "ROWS", "RUNTIME")
	for _, o := range rep.Outcomes {
		st := o.Formulation.Stats()
		mlu, thr := "-", "-"
		obj := "-"
		if o.Summary != nil {
			mlu = fmt.Sprintf("%.4f", o.Summary.MLU)
			thr = fmt.Sprintf("%.4f", o.Summary.Throughput)
			obj = fmt.Sprintf("%.4f", o.Result.Objective)
		}
		fmt.Fprintf(w, "%-20s %-10s %12s %10s %12s %8d %8d %10s\n",
			o.Variant, o.Result.Status, obj, mlu, thr, st.Vars(), st.Constrs(),
			o.Result.Runtime.Round(time.Microsecond))
	}

	for _, o := range rep.Outcomes {
		if o.Summary == nil {
			continue
		}
		fmt.Fprintf(w, "\n%s link loads:\n", o.Variant)
		for _, l := range o.Formulation.Links {
			load := o.Summary.Loads[l.Key()]
			fmt.Fprintf(w, "  %-12s %10.4f / %-10g %6.1f%%\n", l.Key(), load, l.Capacity, 100*load/l.Capacity)
		}
	}
}

// printPaths lists candidate paths of one pair.
func printPaths(w io.Writer, src, dst int, metric core.Metric, paths []pathLine) {
	fmt.Fprintf(w, "%d → %d (%s)\n", src, dst, metric)
	if len(paths) == 0 {
		fmt.Fprintln(w, "  no path")
		return
	}
	for i, p := range paths {
		fmt.Fprintf(w, "  %d. cost %-10g hops %-3d %s\n", i+1, p.cost, p.hops, p.nodes)
	}
}

type pathLine struct {
	cost  float64
	hops  int
	nodes string
}
