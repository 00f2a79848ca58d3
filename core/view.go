// File: view.go
// Role: Non-mutating topology views.
// Determinism:
//   - Node identifiers and remaining link attributes are preserved.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - WithoutLinks models link failures: the failed links simply disappear.

package core

import "fmt"

// WithoutLinks returns a copy of g with the given links removed, e.g. to
// evaluate a failure scenario. Unknown keys yield ErrLinkNotFound.
//
// Complexity: O(n + E).
func WithoutLinks(g *Graph, failed ...LinkKey) (*Graph, error) {
	out := g.Clone()
	for _, key := range failed {
		if err := out.RemoveLink(key.Tail, key.Head); err != nil {
			return nil, fmt.Errorf("WithoutLinks: %w", err)
		}
	}

	return out, nil
}
