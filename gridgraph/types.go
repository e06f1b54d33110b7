package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCost indicates a passable cell with a cost below zero.
	ErrNegativeCost = errors.New("gridgraph: passable cell cost must be non-negative")
	// ErrMalformedHeader indicates the first input line is not "N startRow startCol".
	ErrMalformedHeader = errors.New("gridgraph: malformed maze header")
	// ErrRowCount indicates the number of maze rows differs from N.
	ErrRowCount = errors.New("gridgraph: maze row count does not match header")
	// ErrBadCell indicates a character other than '#' or a digit.
	ErrBadCell = errors.New("gridgraph: invalid maze cell character")
	// ErrStartOutOfBounds indicates the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("gridgraph: start cell out of bounds")
	// ErrStartBlocked indicates the start cell is a wall.
	ErrStartBlocked = errors.New("gridgraph: start cell is not passable")
)

// Wall is the cost value of an impassable cell.
const Wall = -1

// MaxSize is the largest maze side ParseMaze accepts; every coordinate then
// fits in seven bits.
const MaxSize = 127

// Cell addresses a grid cell by row and column.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is one of the four unit moves.
type Direction uint8

const (
	// Up decreases the row.
	Up Direction = iota
	// Down increases the row.
	Down
	// Left decreases the column.
	Left
	// Right increases the column.
	Right
	// NoDirection marks a cell without a parent step.
	NoDirection Direction = 0xFF
)

// Directions lists the four moves in a fixed order; traversals use it so
// that discovery order is deterministic.
var Directions = [4]Direction{Down, Right, Up, Left}

var deltas = [4][2]int{
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

// Delta returns the (row, col) offset of d.
func (d Direction) Delta() (dr, dc int) {
	if d > Right {
		return 0, 0
	}
	return deltas[d][0], deltas[d][1]
}

// Opposite returns the move that undoes d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return NoDirection
}

// String returns a lowercase name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// GridGraph treats a 2D cost grid as a graph. It is immutable once built.
// Width and Height define dimensions; costs holds Height*Width values in
// row-major order, Wall for impassable cells.
type GridGraph struct {
	Width, Height int
	costs         []int
}

// Maze is a GridGraph together with the patrol start cell.
type Maze struct {
	Grid  *GridGraph
	Start Cell
}
