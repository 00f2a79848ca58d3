package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/teflow/bfs"
	"github.com/katalvlaran/teflow/core"
)

// twoIslands: 0-1-2 path and a separate 3-4 link, node 5 isolated.
func twoIslands(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(6)
	require.NoError(t, err)
	require.NoError(t, g.AddLink(0, 1, 1))
	require.NoError(t, g.AddLink(1, 2, 1))
	require.NoError(t, g.AddLink(3, 4, 1))

	return g
}

func TestBFS_DepthAndPath(t *testing.T) {
	g := twoIslands(t)
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Order)
	require.Equal(t, 2, res.Depth[2])
	require.False(t, res.Reached(3))

	p, err := res.PathTo(2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, p)

	_, err = res.PathTo(4)
	require.Error(t, err)
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := twoIslands(t)
	_, err = bfs.BFS(g, 9)
	require.ErrorIs(t, err, bfs.ErrStartNodeNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	boom := errors.New("boom")
	_, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 1 {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := twoIslands(t)
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, res.Order)

	res, err = bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(_, nb int) bool { return nb != 1 }))
	require.NoError(t, err)
	require.Equal(t, []int{0}, res.Order)
}

func TestComponents(t *testing.T) {
	labels, err := bfs.Components(twoIslands(t))
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0, 1, 1, 2}, labels)

	_, err = bfs.Components(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}
