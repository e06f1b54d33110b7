package gridgraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/gridgraph"
)

// TestConnectedComponents_Simple tests ConnectedComponents on a 3×4 maze.
//
// Grid (# = wall):
//
//	# 1 1 #
//	1 1 # #
//	# # 1 1
//
// Expected: 2 components of sizes 4 and 2; diagonal contact does not connect.
func TestConnectedComponents_Simple(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{W, 1, 1, W},
		{1, 1, W, W},
		{W, W, 1, 1},
	})
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 4}, sizes)
}

// TestConnectedComponents_ZeroCostIsPassable ensures cost 0 is treated as floor, not wall.
func TestConnectedComponents_ZeroCostIsPassable(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{0, 0, 0},
		{W, W, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 7)
	assert.Equal(t, 0, comps[0][0], "component starts at its first row-major cell")
}

// TestComponentLabels checks labels agree with ConnectedComponents and walls get -1.
func TestComponentLabels(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{1, W, 1},
		{1, W, 1},
		{W, W, 1},
	})
	require.NoError(t, err)

	labels := gg.ComponentLabels()
	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)
	for ci, comp := range comps {
		for _, idx := range comp {
			assert.Equal(t, ci, labels[idx])
		}
	}
	assert.Equal(t, -1, labels[gg.Index(gridgraph.Cell{Row: 0, Col: 1})])
}

// TestConnectedComponents_AllWalls returns nothing for a grid with no floor.
func TestConnectedComponents_AllWalls(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{W, W}, {W, W}})
	require.NoError(t, err)
	assert.Empty(t, gg.ConnectedComponents())
}
