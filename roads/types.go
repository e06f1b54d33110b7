package roads

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/patrol/gridgraph"
)

// Sentinel errors for road extraction.
var (
	// ErrNilGrid indicates a nil *gridgraph.GridGraph.
	ErrNilGrid = errors.New("roads: grid is nil")
	// ErrStartOutOfBounds indicates the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("roads: start cell out of bounds")
	// ErrStartBlocked indicates the start cell is a wall.
	ErrStartBlocked = errors.New("roads: start cell is not passable")
	// ErrIsolatedRoad indicates a road without any junction.
	ErrIsolatedRoad = errors.New("roads: road has no junction")
)

// Orientation is the axis a road runs along.
type Orientation uint8

const (
	// Horizontal roads keep their row fixed.
	Horizontal Orientation = iota
	// Vertical roads keep their column fixed.
	Vertical
	// Point is the zero-length start pseudo-road.
	Point
)

// String returns "h", "v" or "start".
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "h"
	case Vertical:
		return "v"
	}
	return "start"
}

// Road is a maximal straight run of passable cells. From is the cell with
// the smaller coordinate along the road's axis.
type Road struct {
	Orientation Orientation
	From, To    gridgraph.Cell
}

// Len returns the number of cells on the road.
func (r Road) Len() int {
	switch r.Orientation {
	case Horizontal:
		return r.To.Col - r.From.Col + 1
	case Vertical:
		return r.To.Row - r.From.Row + 1
	}
	return 1
}

// Cells lists the road's cells from From to To.
func (r Road) Cells() []gridgraph.Cell {
	out := make([]gridgraph.Cell, 0, r.Len())
	c := r.From
	for i := 0; i < r.Len(); i++ {
		out = append(out, c)
		switch r.Orientation {
		case Horizontal:
			c.Col++
		case Vertical:
			c.Row++
		}
	}
	return out
}

// String renders the road as "h(0,0)-(0,4)".
func (r Road) String() string {
	return fmt.Sprintf("%s%v-%v", r.Orientation, r.From, r.To)
}

// Network is the road/junction structure of a maze.
//
// Roads[0] is the start pseudo-road. Junctions[id] is the cell of junction
// id; Junctions[0] is the start. RoadJunctions[r] lists, without
// duplicates and in scan order, the junction ids lying on road r, and
// JunctionRoads[id] lists the roads passing through junction id.
type Network struct {
	Grid          *gridgraph.GridGraph
	Start         gridgraph.Cell
	Roads         []Road
	Junctions     []gridgraph.Cell
	RoadJunctions [][]int
	JunctionRoads [][]int

	junctionID []int // per cell index, -1 when the cell is not a junction
}

// NumRoads returns the number of roads including the start pseudo-road.
func (n *Network) NumRoads() int { return len(n.Roads) }

// NumJunctions returns the number of junctions.
func (n *Network) NumJunctions() int { return len(n.Junctions) }

// JunctionAt returns the junction id of c.
func (n *Network) JunctionAt(c gridgraph.Cell) (int, bool) {
	if !n.Grid.InBounds(c) {
		return -1, false
	}
	id := n.junctionID[n.Grid.Index(c)]
	return id, id >= 0
}
