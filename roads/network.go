package roads

import (
	"fmt"

	"github.com/katalvlaran/patrol/gridgraph"
)

// NewNetwork extracts the roads of g and registers their junctions.
//
// Steps:
//  1. Validate g and start.
//  2. Roads[0] = Point road at start; junction 0 = start.
//  3. Append Extract(g); for every road cell that has a passable
//     perpendicular neighbour, or is the start, look up or assign its
//     junction id and record it on the road.
//  4. Fail with ErrIsolatedRoad if some road collected no junction.
//
// Complexity: O(W×H).
func NewNetwork(g *gridgraph.GridGraph, start gridgraph.Cell) (*Network, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if !g.Passable(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}

	n := &Network{
		Grid:       g,
		Start:      start,
		Roads:      append([]Road{{Orientation: Point, From: start, To: start}}, Extract(g)...),
		Junctions:  []gridgraph.Cell{start},
		junctionID: make([]int, g.Size()),
	}
	for i := range n.junctionID {
		n.junctionID[i] = -1
	}
	n.junctionID[g.Index(start)] = 0

	n.RoadJunctions = make([][]int, len(n.Roads))
	n.RoadJunctions[0] = []int{0}
	for ri := 1; ri < len(n.Roads); ri++ {
		road := n.Roads[ri]
		for _, c := range road.Cells() {
			if c != start && !hasPerpendicularNeighbour(g, road.Orientation, c) {
				continue
			}
			n.RoadJunctions[ri] = append(n.RoadJunctions[ri], n.register(c))
		}
		if len(n.RoadJunctions[ri]) == 0 {
			return nil, fmt.Errorf("%w: road %d %v", ErrIsolatedRoad, ri, road)
		}
	}

	n.JunctionRoads = make([][]int, len(n.Junctions))
	for ri, ids := range n.RoadJunctions {
		for _, id := range ids {
			n.JunctionRoads[id] = append(n.JunctionRoads[id], ri)
		}
	}

	return n, nil
}

// register returns the junction id of c, assigning the next id if needed.
func (n *Network) register(c gridgraph.Cell) int {
	idx := n.Grid.Index(c)
	if id := n.junctionID[idx]; id >= 0 {
		return id
	}
	id := len(n.Junctions)
	n.junctionID[idx] = id
	n.Junctions = append(n.Junctions, c)
	return id
}

// hasPerpendicularNeighbour reports whether c has a passable neighbour
// across the road's axis.
func hasPerpendicularNeighbour(g *gridgraph.GridGraph, o Orientation, c gridgraph.Cell) bool {
	dirs := [2]gridgraph.Direction{gridgraph.Up, gridgraph.Down}
	if o == Vertical {
		dirs = [2]gridgraph.Direction{gridgraph.Left, gridgraph.Right}
	}
	for _, d := range dirs {
		if _, ok := g.Step(c, d); ok {
			return true
		}
	}
	return false
}
