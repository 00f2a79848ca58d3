package builder

import (
	"fmt"

	"github.com/katalvlaran/teflow/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor with hub 0 linked to leaves 1..n-1.
// Requires n ≥ 2. Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := requireNodes(methodStar, g, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addLink(methodStar, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
