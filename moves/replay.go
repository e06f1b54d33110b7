package moves

import (
	"fmt"

	"github.com/katalvlaran/patrol/gridgraph"
)

// Trace is the outcome of replaying a Sequence.
type Trace struct {
	Start gridgraph.Cell
	End   gridgraph.Cell
	Cost  int64
	Steps int
	Cells []gridgraph.Cell // every visited position, Start included

	grid    *gridgraph.GridGraph
	visited []bool
}

// Closed reports whether the walk ended where it started.
func (t *Trace) Closed() bool { return t.Start == t.End }

// Visited reports whether the walk stood on c at some point.
func (t *Trace) Visited(c gridgraph.Cell) bool {
	return t.grid.InBounds(c) && t.visited[t.grid.Index(c)]
}

// Replay applies seq from start. Each move costs the cell it enters.
//
// Errors: ErrNilGrid, ErrOutOfBounds (start or a move off the grid),
// ErrBlocked (start or a move on a wall), ErrInvalidMove.
//
// Complexity: O(len(seq) + C).
func Replay(g *gridgraph.GridGraph, start gridgraph.Cell, seq Sequence) (*Trace, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.Passable(start) {
		return nil, fmt.Errorf("%w: start %v", ErrBlocked, start)
	}

	t := &Trace{
		Start:   start,
		End:     start,
		Cells:   make([]gridgraph.Cell, 0, len(seq)+1),
		grid:    g,
		visited: make([]bool, g.Size()),
	}
	t.Cells = append(t.Cells, start)
	t.visited[g.Index(start)] = true

	cur := start
	for i, m := range seq {
		d := m.Direction()
		if d == gridgraph.NoDirection {
			return nil, fmt.Errorf("%w: %q at step %d", ErrInvalidMove, byte(m), i)
		}
		dr, dc := d.Delta()
		next := gridgraph.Cell{Row: cur.Row + dr, Col: cur.Col + dc}
		if !g.InBounds(next) {
			return nil, fmt.Errorf("%w: step %d %c from %v", ErrOutOfBounds, i, byte(m), cur)
		}
		if !g.Passable(next) {
			return nil, fmt.Errorf("%w: step %d %c from %v", ErrBlocked, i, byte(m), cur)
		}
		cur = next
		t.Cost += int64(g.Cost(cur))
		t.Steps++
		t.Cells = append(t.Cells, cur)
		t.visited[g.Index(cur)] = true
	}
	t.End = cur
	return t, nil
}
