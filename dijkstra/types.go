package dijkstra

import (
	"errors"

	"github.com/katalvlaran/patrol/gridgraph"
	"github.com/katalvlaran/patrol/matrix"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *gridgraph.GridGraph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoSource indicates that no source cell was configured.
	ErrNoSource = errors.New("dijkstra: source cell not set")

	// ErrSourceOutOfBounds indicates that the source lies outside the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source cell out of bounds")

	// ErrSourceBlocked indicates that the source cell is a wall.
	ErrSourceBlocked = errors.New("dijkstra: source cell is not passable")

	// ErrTargetOutOfBounds indicates that the target lies outside the grid.
	ErrTargetOutOfBounds = errors.New("dijkstra: target cell out of bounds")
)

// Unreachable is the distance reported for cells that cannot be reached.
const Unreachable = matrix.Inf

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting cell (must be set, in bounds and passable).
// Target      – optional cell; the search stops once it is settled.
// ReturnPath  – if true, Result.Parent is filled with parent directions.
// Reverse     – if true, Dist[i] is the cost of travelling from cell i to
//
//	the source, i.e. each step is charged the cost of the cell being left
//	in search order. Parent then holds the search step into i, whose
//	Opposite is the first forward move out of i.
type Options struct {
	Source     gridgraph.Cell
	HasSource  bool
	Target     gridgraph.Cell
	HasTarget  bool
	ReturnPath bool
	Reverse    bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell.
func Source(c gridgraph.Cell) Option {
	return func(o *Options) {
		o.Source = c
		o.HasSource = true
	}
}

// WithTarget stops the search as soon as c is settled. Distances of cells
// that were not settled by then are upper bounds or Unreachable.
func WithTarget(c gridgraph.Cell) Option {
	return func(o *Options) {
		o.Target = c
		o.HasTarget = true
	}
}

// WithReturnPath enables generation of parent directions in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithReverse computes distances towards the source instead of from it.
func WithReverse() Option {
	return func(o *Options) {
		o.Reverse = true
	}
}

// DefaultOptions returns an Options struct with no source, no target and
// no parent tracking.
func DefaultOptions() Options {
	return Options{}
}

// Result holds the output of a single-source run.
//
// Dist[i]   – distance from the source to cell index i, Unreachable if none.
// Parent[i] – the direction of the final step into cell i on one shortest
//
//	path, gridgraph.NoDirection for the source and unreached cells.
//	Nil unless ReturnPath was requested.
type Result struct {
	Dist   []int64
	Parent []gridgraph.Direction
	grid   *gridgraph.GridGraph
}

// DistanceTo returns the distance to c, or Unreachable when c is out of bounds.
func (r *Result) DistanceTo(c gridgraph.Cell) int64 {
	if !r.grid.InBounds(c) {
		return Unreachable
	}
	return r.Dist[r.grid.Index(c)]
}

// ParentOf returns the direction of the last step into c.
func (r *Result) ParentOf(c gridgraph.Cell) gridgraph.Direction {
	if r.Parent == nil || !r.grid.InBounds(c) {
		return gridgraph.NoDirection
	}
	return r.Parent[r.grid.Index(c)]
}
