package te_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/teflow/core"
	"github.com/katalvlaran/teflow/demand"
	"github.com/katalvlaran/teflow/te"
)

// ExampleRunner_Run solves the three variants on a four-node ring where node
// 0 sends 15 units to node 2 over two disjoint routes of capacity 10.
func ExampleRunner_Run() {
	g, _ := core.NewGraph(4)
	for i := 0; i < 4; i++ {
		_ = g.AddLink(i, (i+1)%4, 10)
	}
	dm, _ := demand.New(4)
	_ = dm.Set(0, 2, 15)

	rep, _ := te.NewRunner(nil, te.WithK(2)).Run(context.Background(), g, dm)
	for _, o := range rep.Outcomes {
		fmt.Printf("%-20s %s %.2f\n", o.Variant, o.Result.Status, o.Result.Objective)
	}
	// Output:
	// max-throughput       optimal 15.00
	// min-mlu              optimal -0.25
	// min-mlu-constrained  optimal 0.75
}
