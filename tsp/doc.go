// Package tsp orders the roads of a patrol network into a closed tour.
//
// The problem is a relaxed rural-postman variant: every road must be touched
// once, and touching a road means entering it at one of its junctions and
// leaving it at one (possibly the same) junction. Road 0 is the start
// pseudo-road and is fixed at both ends of the tour.
//
// What:
//
//   - LinkTable precomputes, for every ordered road pair (a,b), the cheapest
//     junction-to-junction distance from a to b and the junctions realizing it.
//     Solvers never look at the grid again.
//   - Annealer runs simulated annealing over road orders with two moves,
//     segment reversal (2-opt) and block relocation (Or-opt), evaluating each
//     proposal in O(window) time.
//   - Exhaustive solves tiny instances exactly with a Held–Karp style
//     dynamic program over (visited set, previous road, last road).
//   - Solve dispatches between them and can run independent annealing
//     restarts in parallel.
//
// Tour cost:
//
//	cost = Σ_{i=0}^{R-1} [ (i>0 ? dist(entry[i], exit[i]) : 0) + dist(exit[i], entry[i+1]) ]
//
// where exit[i] and entry[i+1] are the argmin junctions of the link
// tour[i]→tour[i+1].
//
// Determinism:
//
//   - All randomness flows from Options.Seed (0 selects a fixed default).
//   - With MaxProposals set and no deadline, runs are bit-for-bit repeatable.
//
// Complexity:
//
//   - NewLinkTable: O(Σ_a Σ_b |J_a|·|J_b|) = O(J²) time, O(R² + J²) memory.
//   - Annealer: O(R) memory; each proposal O(window) ≤ O(R).
//   - Exhaustive: O(2ⁿ·n³) time, O(2ⁿ·n²) memory, n = R-1 ≤ MaxExhaustiveRoads.
package tsp
