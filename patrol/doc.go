// Package patrol wires the planner stages into one call.
//
// Plan runs, in order:
//
//	roads.NewNetwork      road runs and junctions of the maze
//	component check       every road must share the start's component
//	dijkstra.AllPairs     junction-to-junction distances (parallel)
//	tsp.Solve | greedy    road order and entry/exit junctions
//	moves.Walk            per-hop move reconstruction (parallel)
//	Verify                replay: closure, validity and coverage
//
// Every stage is timed on the injected *log.Logger as
// "op=<stage> dur=<ms>ms [err=<err>]". A nil logger discards the lines.
//
// The optimizer deadline is Options.TimeLimit after Plan starts (or after
// the instant given to PlanSince), or nine
// tenths of the way to the context deadline when that comes first, so the
// later stages still run under the same context. Running out of time is not an
// error: the best tour found so far is used.
package patrol
