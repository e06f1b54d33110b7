package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/matrix"
	"github.com/katalvlaran/patrol/tsp"
)

// fourJunctions: road 0 = {0}, road 1 = {1, 2}, road 2 = {3}.
func fourJunctions(t *testing.T) *matrix.Dense {
	t.Helper()
	rows := [][]int64{
		{0, 4, 2, 9},
		{4, 0, 3, 1},
		{2, 3, 0, 6},
		{8, 1, 5, 0},
	}
	m, err := matrix.NewDense(4, 4)
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}
	return m
}

func TestNewLinkTable_PicksCheapestJunctionPair(t *testing.T) {
	lt, err := tsp.NewLinkTable(fourJunctions(t), [][]int{{0}, {1, 2}, {3}})
	require.NoError(t, err)
	assert.Equal(t, 3, lt.NumRoads())
	assert.Equal(t, 4, lt.NumJunctions())

	cases := []struct {
		a, b     int
		cost     int64
		from, to int
	}{
		{0, 1, 2, 0, 2},
		{1, 0, 2, 2, 0},
		{1, 2, 1, 1, 3},
		{2, 1, 1, 3, 1},
		{0, 2, 9, 0, 3},
		{2, 0, 8, 3, 0},
		{1, 1, 0, 1, 1},
		{0, 0, 0, 0, 0},
	}
	for _, tc := range cases {
		cost, from, to := lt.Link(tc.a, tc.b)
		assert.Equal(t, tc.cost, cost, "cost %d→%d", tc.a, tc.b)
		assert.Equal(t, tc.from, from, "from %d→%d", tc.a, tc.b)
		assert.Equal(t, tc.to, to, "to %d→%d", tc.a, tc.b)
	}
	assert.Equal(t, int64(6), lt.Dist(2, 3))
}

func TestNewLinkTable_Errors(t *testing.T) {
	_, err := tsp.NewLinkTable(nil, [][]int{{0}})
	assert.ErrorIs(t, err, tsp.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = tsp.NewLinkTable(rect, [][]int{{0}})
	assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	sq := fourJunctions(t)
	_, err = tsp.NewLinkTable(sq, nil)
	assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.NewLinkTable(sq, [][]int{{0}, {}})
	assert.ErrorIs(t, err, tsp.ErrEmptyRoad)

	_, err = tsp.NewLinkTable(sq, [][]int{{0}, {4}})
	assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	cut, err := matrix.NewSquare(2)
	require.NoError(t, err)
	_, err = tsp.NewLinkTable(cut, [][]int{{0}, {1}})
	assert.ErrorIs(t, err, tsp.ErrUnreachableRoad)
}
