// SPDX-License-Identifier: MIT
//
// File: incidence.go
// Role: Edge → crediting paths and pair → paths, computed once per catalogue
//       and shared read-only by every variant build.
// Determinism:
//   - EdgePaths lists hold path indices in ascending (catalogue) order.

package te

import (
	"errors"

	"github.com/katalvlaran/teflow/core"
	"github.com/katalvlaran/teflow/ksp"
)

// Incidence is the crediting structure of a path catalogue.
type Incidence struct {
	// Catalog is the source catalogue.
	Catalog *ksp.Catalog

	// EdgePaths maps every canonical link traversed by some path to the
	// indices of the paths traversing it, one entry per traversal.
	EdgePaths map[core.LinkKey][]int

	// Pairs lists the ordered pairs with at least one path.
	Pairs []ksp.Pair
}

// NewIncidence credits every traversal of every catalogue path to the
// canonical key of the link it uses.
func NewIncidence(cat *ksp.Catalog) (*Incidence, error) {
	if cat == nil {
		return nil, errors.New("te: catalog is nil")
	}
	inc := &Incidence{
		Catalog:   cat,
		EdgePaths: make(map[core.LinkKey][]int),
		Pairs:     cat.Pairs(),
	}
	for idx, p := range cat.Paths() {
		for _, a := range p.Arcs() {
			key := a.Key()
			inc.EdgePaths[key] = append(inc.EdgePaths[key], idx)
		}
	}

	return inc, nil
}

// Credits returns the number of traversals credited to key.
func (inc *Incidence) Credits(key core.LinkKey) int { return len(inc.EdgePaths[key]) }

// TotalCredits returns the number of traversals over all links.
func (inc *Incidence) TotalCredits() int {
	n := 0
	for _, idxs := range inc.EdgePaths {
		n += len(idxs)
	}

	return n
}
