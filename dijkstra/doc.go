// Package dijkstra runs Dijkstra's shortest-path algorithm over a weighted
// maze (gridgraph.GridGraph) and builds the junction-to-junction distance
// matrix the patrol planner optimizes over.
//
// Overview:
//
//   - Moves are 4-directional; the cost of a step is the cost of the cell
//     being entered, so dist(a, a) = 0 and dist(a, b) excludes a's own cost.
//   - A min-heap keyed on (distance, cell index) always expands the closest
//     unsettled cell; stale heap entries are skipped ("lazy decrease-key").
//   - Optional parent directions allow path reconstruction, and an optional
//     target stops the search as soon as it is settled.
//
// All-pairs:
//
//   - AllPairs runs one single-source search per junction and projects the
//     result onto the other junctions, producing one row of the distance matrix.
//   - Rows are independent: they are computed by a bounded pool of goroutines
//     (golang.org/x/sync/errgroup) sharing only the read-only grid and each
//     writing its own matrix row.
//
// Performance and complexity:
//
//   - Single source: O(C log C) time, O(C) space, C = W×H cells.
//   - AllPairs:      O(J · C log C) time for J junctions, O(J²) output.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:          the grid pointer is nil.
//   - ErrNoSource:          no Source option was given.
//   - ErrSourceOutOfBounds: the source lies outside the grid.
//   - ErrSourceBlocked:     the source is a wall.
//   - ErrTargetOutOfBounds: the target lies outside the grid.
//
// Thread safety:
//
//   - Dijkstra only reads the grid; concurrent calls on the same grid are safe.
package dijkstra
