package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/teflow/core"
)

// walker encapsulates backtracking state.
type walker struct {
	ctx   context.Context
	adj   [][]int
	dst   int
	opts  Options
	onSeq []bool
	stack []int
	res   *Result
}

// SimplePaths returns every simple path from src to dst within the
// configured bounds. src == dst yields the single trivial path [src].
func SimplePaths(ctx context.Context, g *core.Graph, src, dst int, opts ...Option) (*Result, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(src) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, src)
	}
	if !g.HasNode(dst) {
		return nil, fmt.Errorf("%w: %d", ErrTargetVertexNotFound, dst)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Snapshot sorted adjacency once
	n := g.NodeCount()
	adj := make([][]int, n)
	for u := 0; u < n; u++ {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbrs {
			adj[u] = append(adj[u], nb.ID)
		}
	}

	w := &walker{
		ctx:   ctx,
		adj:   adj,
		dst:   dst,
		opts:  o,
		onSeq: make([]bool, n),
		res:   &Result{},
	}
	// 4. Walk
	if err := w.visit(src); err != nil {
		return nil, err
	}

	return w.res, nil
}

// visit extends the current prefix with u. Once Truncated is set no
// further branch is expanded.
func (w *walker) visit(u int) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}
	w.stack = append(w.stack, u)
	w.onSeq[u] = true
	defer func() {
		w.stack = w.stack[:len(w.stack)-1]
		w.onSeq[u] = false
	}()

	if u == w.dst {
		w.res.Paths = append(w.res.Paths, append([]int(nil), w.stack...))
		if w.opts.Limit > 0 && len(w.res.Paths) >= w.opts.Limit {
			w.res.Truncated = true
		}
		return nil
	}
	// depth in links of the prefix is len(stack)-1
	if w.opts.MaxDepth > 0 && len(w.stack)-1 >= w.opts.MaxDepth {
		return nil
	}
	for _, v := range w.adj[u] {
		if w.res.Truncated {
			return nil
		}
		if w.onSeq[v] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(u, v) {
			w.res.SkippedNeighbors++
			continue
		}
		if err := w.visit(v); err != nil {
			return err
		}
	}

	return nil
}
