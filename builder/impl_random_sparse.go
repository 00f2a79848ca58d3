// SPDX-License-Identifier: MIT
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi link sampling.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Trials run over unordered pairs {i, j}, i asc then j > i asc; one
//     Bernoulli draw per pair not already linked.
//
// Determinism:
//   - Fixed trial order ⇒ identical topologies for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/teflow/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that links every unordered pair of
// nodes 0..n-1 independently with probability p.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := requireNodes(methodRandomSparse, g, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if g.HasLink(i, j) {
					continue
				}
				var take bool
				switch {
				case p == probMax:
					take = true
				case p == probMin:
					take = false
				default:
					take = cfg.rng.Float64() < p
				}
				if !take {
					continue
				}
				if err := addLink(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
