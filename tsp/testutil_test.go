// Package tsp_test provides helpers shared across the *_test.go files.
package tsp_test

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/dijkstra"
	"github.com/katalvlaran/patrol/gridgraph"
	"github.com/katalvlaran/patrol/matrix"
	"github.com/katalvlaran/patrol/roads"
	"github.com/katalvlaran/patrol/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(7)

	// proposalsSmall bounds annealing runs that must stay fast and repeatable.
	proposalsSmall = 2000
)

// mazeTable builds the network and link table of a literal grid.
func mazeTable(t testing.TB, values [][]int, start gridgraph.Cell) (*roads.Network, *tsp.LinkTable) {
	t.Helper()
	g, err := gridgraph.NewGridGraph(values)
	require.NoError(t, err)
	net, err := roads.NewNetwork(g, start)
	require.NoError(t, err)
	dist, err := dijkstra.AllPairs(context.Background(), g, net.Junctions, 2)
	require.NoError(t, err)
	lt, err := tsp.NewLinkTable(dist, net.RoadJunctions)
	require.NoError(t, err)
	return net, lt
}

// randomTable builds a synthetic instance with nRoads roads over
// 2·nRoads-1 junctions placed on a 30×30 plane. Distances are Manhattan
// with a small random asymmetric surcharge; some junctions are shared by
// two roads.
func randomTable(t testing.TB, seed int64, nRoads int) *tsp.LinkTable {
	t.Helper()
	gofakeit.Seed(seed)

	j := 2*nRoads - 1
	xs := make([]int, j)
	ys := make([]int, j)
	for i := range xs {
		xs[i] = gofakeit.Number(0, 30)
		ys[i] = gofakeit.Number(0, 30)
	}
	dist, err := matrix.NewSquare(j)
	require.NoError(t, err)
	for u := 0; u < j; u++ {
		for v := 0; v < j; v++ {
			if u == v {
				continue
			}
			d := abs(xs[u]-xs[v]) + abs(ys[u]-ys[v]) + gofakeit.Number(0, 3)
			require.NoError(t, dist.Set(u, v, int64(d)))
		}
	}

	rj := make([][]int, nRoads)
	rj[0] = []int{0}
	for v := 1; v < j; v++ {
		r := 1 + (v-1)%(nRoads-1)
		rj[r] = append(rj[r], v)
		if other := gofakeit.Number(1, nRoads-1); other != r && gofakeit.Number(0, 3) == 0 {
			rj[other] = append(rj[other], v)
		}
	}
	lt, err := tsp.NewLinkTable(dist, rj)
	require.NoError(t, err)
	return lt
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// bruteForce returns the minimum TourCost over every road order.
func bruteForce(t testing.TB, lt *tsp.LinkTable) int64 {
	t.Helper()
	n := lt.NumRoads()
	tour := make([]int, n+1)
	used := make([]bool, n)
	best := matrix.Inf
	var rec func(pos int)
	rec = func(pos int) {
		if pos == n {
			c, _, _, err := tsp.TourCost(lt, tour)
			require.NoError(t, err)
			if c < best {
				best = c
			}
			return
		}
		for r := 1; r < n; r++ {
			if used[r] {
				continue
			}
			used[r] = true
			tour[pos] = r
			rec(pos + 1)
			used[r] = false
		}
	}
	rec(1)
	return best
}

// annealOpts returns proposal-capped options without a wall clock.
func annealOpts(seed int64) tsp.Options {
	opts := tsp.DefaultOptions()
	opts.Algo = tsp.AlgoAnneal
	opts.Seed = seed
	opts.MaxProposals = proposalsSmall
	return opts
}

func cell(r, c int) gridgraph.Cell { return gridgraph.Cell{Row: r, Col: c} }
