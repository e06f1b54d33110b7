package gridgraph

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed as values[row][col]. Wall marks impassable cells; every other value
// must be non-negative. The input is copied to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNegativeCost.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	costs := make([]int, 0, w*h)
	for _, row := range values {
		for _, v := range row {
			if v < 0 && v != Wall {
				return nil, ErrNegativeCost
			}
			costs = append(costs, v)
		}
	}

	return &GridGraph{Width: w, Height: h, costs: costs}, nil
}

// Size returns the number of cells, W×H.
func (gg *GridGraph) Size() int {
	return gg.Width * gg.Height
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < gg.Height && c.Col >= 0 && c.Col < gg.Width
}

// Passable reports whether c is inside the grid and not a wall.
func (gg *GridGraph) Passable(c Cell) bool {
	return gg.InBounds(c) && gg.costs[gg.Index(c)] != Wall
}

// Cost returns the cost of entering c, or Wall when c is impassable or out of bounds.
func (gg *GridGraph) Cost(c Cell) int {
	if !gg.InBounds(c) {
		return Wall
	}
	return gg.costs[gg.Index(c)]
}

// CostAt returns the cost stored at a row-major index without bounds checks.
func (gg *GridGraph) CostAt(idx int) int {
	return gg.costs[idx]
}

// Index maps c to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (gg *GridGraph) Index(c Cell) int {
	return c.Row*gg.Width + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{Row: idx / gg.Width, Col: idx % gg.Width}
}

// Step returns the neighbour of c in direction d and whether it is passable.
func (gg *GridGraph) Step(c Cell, d Direction) (Cell, bool) {
	dr, dc := d.Delta()
	n := Cell{Row: c.Row + dr, Col: c.Col + dc}
	return n, gg.Passable(n)
}

// Values returns a fresh copy of the grid as values[row][col].
func (gg *GridGraph) Values() [][]int {
	out := make([][]int, gg.Height)
	for r := 0; r < gg.Height; r++ {
		out[r] = make([]int, gg.Width)
		copy(out[r], gg.costs[r*gg.Width:(r+1)*gg.Width])
	}
	return out
}
