// SPDX-License-Identifier: MIT
//
// impl_ring.go - Ring(n): the n-node cycle C_n.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices); g must hold ≥ n nodes.
//   • Emits links in stable order i–(i+1)%n for i = 0..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/teflow/core"
)

const (
	methodRing   = "Ring"
	minRingNodes = 3
)

// Ring returns a Constructor that closes nodes 0..n-1 into a cycle.
// Complexity: O(n).
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewVertices)
		}
		if err := requireNodes(methodRing, g, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addLink(methodRing, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
