package dijkstra_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/dijkstra"
	"github.com/katalvlaran/patrol/gridgraph"
)

func allPairsFixture(t testing.TB) (*gridgraph.GridGraph, []gridgraph.Cell) {
	g := mustGrid(t, [][]int{
		{1, 2, 3, W, 1},
		{4, W, 1, W, 1},
		{1, 1, 7, W, 1},
	})
	sources := []gridgraph.Cell{cell(0, 0), cell(0, 2), cell(2, 2), cell(1, 0), cell(0, 4)}
	return g, sources
}

// TestAllPairs_MatchesSingleSource compares every row against a direct run.
func TestAllPairs_MatchesSingleSource(t *testing.T) {
	g, sources := allPairsFixture(t)
	dist, err := dijkstra.AllPairs(context.Background(), g, sources, 3)
	require.NoError(t, err)
	require.Equal(t, len(sources), dist.Rows())

	for i, s := range sources {
		res, err := dijkstra.Dijkstra(g, dijkstra.Source(s))
		require.NoError(t, err)
		for j, d := range sources {
			got, err := dist.At(i, j)
			require.NoError(t, err)
			if i == j {
				assert.Equal(t, int64(0), got)
				continue
			}
			assert.Equal(t, res.DistanceTo(d), got, "dist[%d][%d]", i, j)
		}
	}
}

// TestAllPairs_UnreachableAcrossWall checks the isolated right column.
func TestAllPairs_UnreachableAcrossWall(t *testing.T) {
	g, sources := allPairsFixture(t)
	dist, err := dijkstra.AllPairs(context.Background(), g, sources, 0)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		v, _ := dist.At(i, 4)
		assert.Equal(t, dijkstra.Unreachable, v)
		v, _ = dist.At(4, i)
		assert.Equal(t, dijkstra.Unreachable, v)
	}
}

// TestAllPairs_WorkerCountDoesNotChangeResult runs sequentially and in parallel.
func TestAllPairs_WorkerCountDoesNotChangeResult(t *testing.T) {
	g, sources := allPairsFixture(t)
	seq, err := dijkstra.AllPairs(context.Background(), g, sources, 1)
	require.NoError(t, err)
	par, err := dijkstra.AllPairs(context.Background(), g, sources, 8)
	require.NoError(t, err)
	assert.Equal(t, seq.Flat(), par.Flat())
}

// TestAllPairs_Errors covers nil input, wall sources and cancellation.
func TestAllPairs_Errors(t *testing.T) {
	g, sources := allPairsFixture(t)

	_, err := dijkstra.AllPairs(context.Background(), nil, sources, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.AllPairs(context.Background(), g, nil, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNoSource)

	_, err = dijkstra.AllPairs(context.Background(), g, []gridgraph.Cell{cell(0, 3)}, 1)
	assert.ErrorIs(t, err, dijkstra.ErrSourceBlocked)

	_, err = dijkstra.AllPairs(context.Background(), g, []gridgraph.Cell{cell(9, 9)}, 1)
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfBounds)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dijkstra.AllPairs(ctx, g, sources, 2)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}
