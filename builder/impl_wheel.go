// SPDX-License-Identifier: MIT
//
// impl_wheel.go - Wheel(n): rim cycle over 0..n-2 plus hub n-1.
//
// Contract:
//   • n ≥ 4 (the rim must be a cycle of at least 3 nodes).
//   • Emits the rim first (Ring order), then spokes hub–i for i ascending.

package builder

import (
	"fmt"

	"github.com/katalvlaran/teflow/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Ring(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		if err := requireNodes(methodWheel, g, n); err != nil {
			return err
		}
		hub := n - 1
		for i := 0; i < hub; i++ {
			if err := addLink(methodWheel, g, cfg, hub, i); err != nil {
				return err
			}
		}

		return nil
	}
}
