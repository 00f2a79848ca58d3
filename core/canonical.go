// SPDX-License-Identifier: MIT
//
// File: canonical.go
// Role: Undirected edge normalization. Canonical() is the single mapping from
//       an endpoint pair (in either order) to the link identity used by every
//       constraint family.
// Determinism:
//   - LinkKey ordering is (Tail asc, Head asc); SortKeys uses it.
// AI-HINT (file):
//   - Never build a LinkKey literal from a traversal by hand; call Canonical or Arc.Key.

package core

import (
	"fmt"
	"sort"
)

// LinkKey is the canonical identity of an undirected link: Tail < Head.
type LinkKey struct {
	Tail int
	Head int
}

// Canonical returns the key (min(u,v), max(u,v)).
//
// Complexity: O(1).
func Canonical(u, v int) LinkKey {
	if u > v {
		return LinkKey{Tail: v, Head: u}
	}

	return LinkKey{Tail: u, Head: v}
}

// String renders the key as "(tail, head)".
func (k LinkKey) String() string {
	return fmt.Sprintf("(%d, %d)", k.Tail, k.Head)
}

// Less orders keys by Tail, then Head.
func (k LinkKey) Less(o LinkKey) bool {
	if k.Tail != o.Tail {
		return k.Tail < o.Tail
	}

	return k.Head < o.Head
}

// SortKeys sorts keys in canonical order in place.
func SortKeys(keys []LinkKey) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
}
