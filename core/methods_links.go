// SPDX-License-Identifier: MIT
//
// File: methods_links.go
// Role: Link lifecycle & queries: AddLink/RemoveLink/HasLink/Link/Capacity/Links/LinkCount.
// Determinism:
//   - Links() returns links sorted by canonical key (Tail asc, Head asc).
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.
// AI-HINT (file):
//   - Every link is undirected; HasLink(u,v) == HasLink(v,u).
//   - Parallel links are rejected with ErrDuplicateLink, never collapsed.

package core

import (
	"fmt"
	"math"
)

// AddLink creates an undirected link u–v with the given capacity.
//
// Steps:
//  1. Validate endpoints (range, no loop).
//  2. Validate capacity (finite, > 0).
//  3. Build Link with Weight = capacity, apply opts, validate weight.
//  4. Lock mu, reject a second link on the same canonical key.
//  5. Store link and mirror adjacency u→v and v→u.
//
// Errors:
//   - ErrNodeOutOfRange, ErrLoopNotAllowed, ErrBadCapacity, ErrBadWeight, ErrDuplicateLink.
//
// Complexity: O(1) amortized.
func (g *Graph) AddLink(u, v int, capacity float64, opts ...LinkOption) error {
	// 1) Endpoint validation
	if !g.inRange(u) || !g.inRange(v) {
		return fmt.Errorf("%w: link %d–%d with n=%d", ErrNodeOutOfRange, u, v, g.n)
	}
	if u == v {
		return fmt.Errorf("%w: node %d", ErrLoopNotAllowed, u)
	}

	// 2) Capacity validation
	if math.IsNaN(capacity) || math.IsInf(capacity, 0) || capacity <= 0 {
		return fmt.Errorf("%w: link %d–%d capacity=%g", ErrBadCapacity, u, v, capacity)
	}

	// 3) Build link; weight defaults to capacity
	l := &Link{U: u, V: v, Capacity: capacity, Weight: capacity}
	for _, opt := range opts {
		opt(l)
	}
	if math.IsNaN(l.Weight) || math.IsInf(l.Weight, 0) || l.Weight < 0 {
		return fmt.Errorf("%w: link %d–%d weight=%g", ErrBadWeight, u, v, l.Weight)
	}

	// 4) Insert under lock
	key := l.Key()
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.links[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateLink, key)
	}

	// 5) Store and mirror adjacency
	g.links[key] = l
	g.adjacency[u][v] = key
	g.adjacency[v][u] = key

	return nil
}

// RemoveLink deletes the link between u and v (in either order).
// Complexity: O(1).
func (g *Graph) RemoveLink(u, v int) error {
	if !g.inRange(u) || !g.inRange(v) {
		return ErrNodeOutOfRange
	}
	key := Canonical(u, v)

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.links[key]; !ok {
		return fmt.Errorf("%w: %s", ErrLinkNotFound, key)
	}
	delete(g.links, key)
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)

	return nil
}

// HasLink reports whether u and v are directly linked. Out-of-range ⇒ false.
// Complexity: O(1).
func (g *Graph) HasLink(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.links[Canonical(u, v)]

	return ok
}

// Link returns a copy of the link stored under key.
// Complexity: O(1).
func (g *Graph) Link(key LinkKey) (Link, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	l, ok := g.links[key]
	if !ok {
		return Link{}, fmt.Errorf("%w: %s", ErrLinkNotFound, key)
	}

	return *l, nil
}

// Capacity returns the capacity of the link stored under key.
func (g *Graph) Capacity(key LinkKey) (float64, error) {
	l, err := g.Link(key)
	if err != nil {
		return 0, err
	}

	return l.Capacity, nil
}

// Links returns copies of all links sorted by canonical key.
// Complexity: O(E log E).
func (g *Graph) Links() []Link {
	g.mu.RLock()
	keys := make([]LinkKey, 0, len(g.links))
	for k := range g.links {
		keys = append(keys, k)
	}
	SortKeys(keys)
	out := make([]Link, len(keys))
	for i, k := range keys {
		out[i] = *g.links[k]
	}
	g.mu.RUnlock()

	return out
}

// LinkKeys returns the canonical keys of all links in sorted order.
// Complexity: O(E log E).
func (g *Graph) LinkKeys() []LinkKey {
	g.mu.RLock()
	defer g.mu.RUnlock()
	keys := make([]LinkKey, 0, len(g.links))
	for k := range g.links {
		keys = append(keys, k)
	}
	SortKeys(keys)

	return keys
}

// LinkCount returns the number of links.
// Complexity: O(1).
func (g *Graph) LinkCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.links)
}

// TotalCapacity returns the sum of all link capacities.
func (g *Graph) TotalCapacity() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var sum float64
	for _, l := range g.links {
		sum += l.Capacity
	}

	return sum
}
