package builder_test

import (
	"fmt"

	"github.com/katalvlaran/teflow/builder"
)

// ExampleGenerate builds the 4-node ring used throughout the teflow docs.
func ExampleGenerate() {
	g, _ := builder.Generate(builder.TopologyRing, builder.Params{N: 4}, nil, builder.WithCapacity(10))
	for _, l := range g.Links() {
		fmt.Println(l.Key(), l.Capacity)
	}
	// Output:
	// (0, 1) 10
	// (0, 3) 10
	// (1, 2) 10
	// (2, 3) 10
}
