package moves

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/patrol/gridgraph"
)

// Sentinel errors.
var (
	// ErrNilGrid indicates a nil *gridgraph.GridGraph.
	ErrNilGrid = errors.New("moves: grid is nil")
	// ErrNoPath indicates two cells that are not connected.
	ErrNoPath = errors.New("moves: no path between cells")
	// ErrInvalidMove indicates a character outside "UDLR".
	ErrInvalidMove = errors.New("moves: invalid move")
	// ErrOutOfBounds indicates a move leaving the grid.
	ErrOutOfBounds = errors.New("moves: move leaves the grid")
	// ErrBlocked indicates a move into a wall.
	ErrBlocked = errors.New("moves: move into a wall")
)

// Move is a unit step.
type Move byte

// The move alphabet.
const (
	Up    Move = 'U'
	Down  Move = 'D'
	Left  Move = 'L'
	Right Move = 'R'
)

// FromDirection maps a grid direction to its move letter.
func FromDirection(d gridgraph.Direction) Move {
	switch d {
	case gridgraph.Up:
		return Up
	case gridgraph.Down:
		return Down
	case gridgraph.Left:
		return Left
	case gridgraph.Right:
		return Right
	}
	return 0
}

// Direction maps the move back to a grid direction.
func (m Move) Direction() gridgraph.Direction {
	switch m {
	case Up:
		return gridgraph.Up
	case Down:
		return gridgraph.Down
	case Left:
		return gridgraph.Left
	case Right:
		return gridgraph.Right
	}
	return gridgraph.NoDirection
}

// Sequence is an ordered list of moves.
type Sequence []Move

// String renders the sequence as a single "UDLR" line.
func (s Sequence) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, m := range s {
		sb.WriteByte(byte(m))
	}
	return sb.String()
}

// ParseSequence parses a "UDLR" string; surrounding whitespace is ignored.
func ParseSequence(s string) (Sequence, error) {
	s = strings.TrimSpace(s)
	out := make(Sequence, 0, len(s))
	for i := 0; i < len(s); i++ {
		m := Move(s[i])
		if m.Direction() == gridgraph.NoDirection {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidMove, s[i], i)
		}
		out = append(out, m)
	}
	return out, nil
}
