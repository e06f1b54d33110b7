// Package roads decomposes a maze grid into straight corridors ("roads")
// and the junction cells where corridors meet.
//
// What:
//
//   - Extract scans every even row for horizontal runs and every even column
//     for vertical runs of passable cells. Runs of a single cell are not roads.
//   - NewNetwork registers junctions: road cells with a passable neighbour
//     perpendicular to the road, plus the start cell, which is always
//     junction 0. Road 0 is a zero-length pseudo-road holding only the start.
//
// Junction ids are dense (0..J-1) and assigned in discovery order: start
// first, then horizontal roads top to bottom, then vertical roads left to
// right, each scanned in increasing coordinate order.
//
// Complexity:
//
//   - Extract:    O(W×H).
//   - NewNetwork: O(W×H) time and memory.
//
// Errors:
//
//   - ErrNilGrid: the grid is nil.
//   - ErrStartOutOfBounds, ErrStartBlocked: the start cell is unusable.
//   - ErrIsolatedRoad: a road has no junction, so it cannot be linked to any
//     other road.
package roads
