// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order, plus
// connected-component labelling used to skip unreachable demand pairs.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/teflow/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// enqueue marks id reached at depth d, records its parent and queues it.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}
	for _, nb := range neighbors {
		if w.res.Depth[nb.ID] != Unreached {
			continue
		}
		if !w.opts.FilterNeighbor(item.id, nb.ID) {
			continue
		}
		w.enqueue(nb.ID, item.depth+1, item.id)
	}

	return nil
}

// Components labels every node with the index of its connected component.
// Labels are assigned in order of the smallest node of each component, so
// node 0 is always in component 0.
//
// Complexity: O(n + E).
func Components(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NodeCount()
	label := make([]int, n)
	for i := range label {
		label[i] = Unreached
	}
	next := 0
	for start := 0; start < n; start++ {
		if label[start] != Unreached {
			continue
		}
		res, err := BFS(g, start)
		if err != nil {
			return nil, err
		}
		for _, id := range res.Order {
			label[id] = next
		}
		next++
	}

	return label, nil
}
