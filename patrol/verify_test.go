package patrol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/gridgraph"
	"github.com/katalvlaran/patrol/moves"
	"github.com/katalvlaran/patrol/patrol"
	"github.com/katalvlaran/patrol/roads"
)

func TestVerify(t *testing.T) {
	maze := centreMaze(t)
	net, err := roads.NewNetwork(maze.Grid, maze.Start)
	require.NoError(t, err)

	cases := []struct {
		name string
		seq  string
		want error
	}{
		{"full loop", "ULDDRRUUL" + "D", nil},
		{"empty walk", "", patrol.ErrUncovered},
		{"top only", "UD", patrol.ErrUncovered},
		{"not closed", "U", patrol.ErrNotClosed},
		{"off grid", "UU", moves.ErrOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seq, err := moves.ParseSequence(tc.seq)
			require.NoError(t, err)
			err = patrol.Verify(maze, net, seq)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestVerify_Blocked(t *testing.T) {
	maze := mustMaze(t, [][]int{{1, 1, 1}, {1, gridgraph.Wall, 1}, {1, 1, 1}}, gridgraph.Cell{})
	net, err := roads.NewNetwork(maze.Grid, maze.Start)
	require.NoError(t, err)

	seq, err := moves.ParseSequence("DR")
	require.NoError(t, err)
	assert.ErrorIs(t, patrol.Verify(maze, net, seq), moves.ErrBlocked)
	assert.ErrorIs(t, patrol.Verify(nil, net, seq), patrol.ErrNilMaze)
}
