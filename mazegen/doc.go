// Package mazegen generates random patrol mazes in the planner's input shape.
//
// Layout of an n×n maze (n odd):
//
//   - Cells with both coordinates even are nodes and always passable.
//   - Cells with exactly one odd coordinate are links between two nodes;
//     they are passable only when the link is open.
//   - Cells with both coordinates odd are walls.
//
// Links are opened by randomized Kruskal over the node lattice, which yields
// a spanning tree, and each rejected link is still opened with probability
// LoopRatio to create cycles. Every passable cell gets a cost drawn from
// [MinCost, MaxCost]; the start is a random node.
//
// Complexity: O(n² α(n²)) time, O(n²) memory.
package mazegen
