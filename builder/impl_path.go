package builder

import (
	"fmt"

	"github.com/katalvlaran/teflow/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that chains nodes 0–1–…–(n-1).
// Requires n ≥ 2. Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := requireNodes(methodPath, g, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addLink(methodPath, g, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
