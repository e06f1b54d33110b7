// Package moves turns junction-to-junction hops into unit moves and replays
// move strings on a maze.
//
// What:
//
//   - Move is one of 'U', 'D', 'L', 'R'; Sequence is their concatenation.
//   - Reconstructor.Path finds a cheapest path between two cells with a
//     reverse Dijkstra seeded at the destination and stopped at the source,
//     then walks the parent directions forward. The path cost equals the
//     forward shortest distance (each step costs the cell entered).
//   - Reconstructor.Walk concatenates the paths between consecutive cells,
//     reconstructing segments concurrently.
//   - Replay applies a Sequence from a start cell, accumulating cost and
//     recording visited cells; it rejects moves off the grid or into walls.
//
// Errors:
//
//   - ErrNilGrid: the grid is nil.
//   - ErrNoPath: no path exists between two cells.
//   - ErrInvalidMove: a character outside "UDLR".
//   - ErrOutOfBounds, ErrBlocked: a replayed move leaves the grid or hits a wall.
package moves
