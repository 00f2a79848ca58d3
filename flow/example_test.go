package flow_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/teflow/core"
	"github.com/katalvlaran/teflow/flow"
)

// ExampleMaxFlow finds the bottleneck link of a three-hop chain.
func ExampleMaxFlow() {
	g, _ := core.NewGraph(4)
	_ = g.AddLink(0, 1, 7)
	_ = g.AddLink(1, 2, 3)
	_ = g.AddLink(2, 3, 9)

	res, _ := flow.MaxFlow(context.Background(), g, 0, 3)
	fmt.Println(res.Value, res.Cut)
	// Output:
	// 3 [(1, 2)]
}
