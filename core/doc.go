// Package core provides the thread-safe in-memory network topology consumed by
// path enumeration and traffic-engineering model construction.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Nodes are the integers 0..n-1, fixed at construction (NewGraph(n)).
//   - Links are undirected and carry a strictly positive Capacity.
//   - Each link also carries a ranking Weight, equal to Capacity unless
//     overridden with WithWeight(w).
//   - No self-loops, no parallel links: both are rejected at AddLink time
//     instead of being silently collapsed.
//   - One sync.RWMutex guards links and adjacency.
//
// Canonical links:
//
//	Every undirected link has exactly one identity, LinkKey{Tail, Head} with
//	Tail < Head, produced by Canonical(u, v). A directed traversal Arc{From, To}
//	maps to the same key through Arc.Key(). Model builders MUST credit flow and
//	declare capacity constraints through this single mapping.
//
// Core Methods:
//
//	AddLink(u, v int, capacity float64, opts ...LinkOption) error // O(1)
//	RemoveLink(u, v int) error                                    // O(1)
//	HasLink(u, v int) bool                                        // O(1)
//	Link(key LinkKey) (Link, error)                               // O(1)
//	Links() []Link                                                // O(E·log E), canonical order
//	Neighbors(id int) ([]Neighbor, error)                         // O(d·log d), ID order
//	Clone() *Graph                                                // O(n+E)
//	WithoutLinks(g, keys...) (*Graph, error)                      // failure view
//
// Errors:
//
//	ErrNodeOutOfRange – node outside [0, n)
//	ErrLoopNotAllowed – u == v
//	ErrBadCapacity    – capacity NaN, ±Inf or ≤ 0
//	ErrBadWeight      – weight NaN, ±Inf or < 0
//	ErrDuplicateLink  – second link on the same unordered pair
//	ErrLinkNotFound   – missing link
package core
