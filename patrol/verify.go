package patrol

import (
	"fmt"

	"github.com/katalvlaran/patrol/gridgraph"
	"github.com/katalvlaran/patrol/moves"
	"github.com/katalvlaran/patrol/roads"
)

// Verify replays seq on maze and checks that every move stays on passable
// in-bounds cells, that the walk ends on maze.Start, and that it stands on
// at least one junction of every road of net.
//
// Errors: ErrNilMaze, moves replay errors (moves.ErrOutOfBounds,
// moves.ErrBlocked, moves.ErrInvalidMove), ErrNotClosed, ErrUncovered.
func Verify(maze *gridgraph.Maze, net *roads.Network, seq moves.Sequence) error {
	if maze == nil || maze.Grid == nil || net == nil {
		return ErrNilMaze
	}
	trace, err := moves.Replay(maze.Grid, maze.Start, seq)
	if err != nil {
		return err
	}
	if !trace.Closed() {
		return fmt.Errorf("%w: ends at %v, start %v", ErrNotClosed, trace.End, trace.Start)
	}
	for ri, ids := range net.RoadJunctions {
		covered := false
		for _, id := range ids {
			if trace.Visited(net.Junctions[id]) {
				covered = true
				break
			}
		}
		if !covered {
			return fmt.Errorf("%w: road %d %v", ErrUncovered, ri, net.Roads[ri])
		}
	}
	return nil
}
