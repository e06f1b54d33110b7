// Package gridgraph treats a weighted maze as a graph of cells, the input
// model of the patrol planner.
//
// What:
//
//   - GridGraph wraps a rectangular grid of cell costs; Wall marks impassable cells.
//   - Moves are 4-directional; entering a cell costs that cell's value.
//   - Maze pairs a GridGraph with the patrol start cell and reads/writes the
//     textual maze format.
//   - Identifies connected components of passable cells.
//
// Input format:
//
//	N startRow startCol
//	N lines of N characters each: '#' (wall) or '0'..'9' (passable, digit = cost)
//
// Complexity:
//
//   - NewGridGraph:        O(W×H) time and memory.
//   - ParseMaze:           O(W×H).
//   - ConnectedComponents: O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a passable cell carries a negative cost.
//   - ErrMalformedHeader, ErrRowCount, ErrBadCell: textual input is malformed.
//   - ErrStartOutOfBounds, ErrStartBlocked: the start cell is unusable.
package gridgraph
