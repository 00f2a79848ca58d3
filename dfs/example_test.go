package dfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/teflow/core"
	"github.com/katalvlaran/teflow/dfs"
)

// ExampleSimplePaths lists every route between opposite corners of a
// 4-node ring with one diagonal.
func ExampleSimplePaths() {
	g, _ := core.NewGraph(4)
	for i := 0; i < 4; i++ {
		_ = g.AddLink(i, (i+1)%4, 10)
	}
	_ = g.AddLink(1, 3, 10)

	res, _ := dfs.SimplePaths(context.Background(), g, 0, 2)
	for _, p := range res.Paths {
		fmt.Println(p)
	}
	// Output:
	// [0 1 2]
	// [0 1 3 2]
	// [0 3 1 2]
	// [0 3 2]
}
