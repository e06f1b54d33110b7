package patrol

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"strings"
	"time"

	"github.com/katalvlaran/patrol/gridgraph"
	"github.com/katalvlaran/patrol/matrix"
	"github.com/katalvlaran/patrol/moves"
	"github.com/katalvlaran/patrol/roads"
	"github.com/katalvlaran/patrol/tsp"
)

// Sentinel errors.
var (
	// ErrNilMaze indicates a nil maze or grid.
	ErrNilMaze = errors.New("patrol: maze is nil")
	// ErrBadTimeLimit indicates a non-positive time limit.
	ErrBadTimeLimit = errors.New("patrol: time limit must be positive")
	// ErrUnknownStrategy indicates a Strategy outside the declared values.
	ErrUnknownStrategy = errors.New("patrol: unknown strategy")
	// ErrDisconnected indicates a road outside the start cell's component.
	ErrDisconnected = errors.New("patrol: road not connected to start")
	// ErrCostMismatch indicates the reconstructed walk cost differs from the
	// planned tour cost.
	ErrCostMismatch = errors.New("patrol: reconstructed cost differs from planned cost")
	// ErrNotClosed indicates a move sequence that does not end at the start.
	ErrNotClosed = errors.New("patrol: walk does not return to start")
	// ErrUncovered indicates a road none of whose junctions the walk visits.
	ErrUncovered = errors.New("patrol: road not covered")
)

// Strategy selects how the road order is produced.
type Strategy int

const (
	// StrategyAnneal orders roads with tsp.Solve.
	StrategyAnneal Strategy = iota
	// StrategyGreedy walks to the nearest uncovered junction each step.
	StrategyGreedy
)

// String returns "anneal" or "greedy".
func (s Strategy) String() string {
	switch s {
	case StrategyAnneal:
		return "anneal"
	case StrategyGreedy:
		return "greedy"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy is the inverse of Strategy.String, case-insensitive.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "anneal":
		return StrategyAnneal, nil
	case "greedy":
		return StrategyGreedy, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// DefaultTimeLimit leaves headroom under a three second budget.
const DefaultTimeLimit = 2800 * time.Millisecond

// Options configures a Planner.
type Options struct {
	TimeLimit time.Duration
	Workers   int // goroutines for AllPairs and Walk; <= 0 means NumCPU
	Strategy  Strategy
	Solver    tsp.Options
	Verify    bool
	Logger    *log.Logger // nil discards stage logs
}

// DefaultOptions returns the annealing strategy with tuned solver defaults,
// verification on and one worker per CPU.
func DefaultOptions() Options {
	return Options{
		TimeLimit: DefaultTimeLimit,
		Workers:   runtime.NumCPU(),
		Strategy:  StrategyAnneal,
		Solver:    tsp.DefaultOptions(),
		Verify:    true,
	}
}

// Plan is the outcome of Planner.Plan.
type Plan struct {
	Maze      *gridgraph.Maze
	Network   *roads.Network
	Dist      *matrix.Dense  // junction distances
	Tour      []int          // road order; nil for StrategyGreedy
	Waypoints []int          // junction ids visited in order
	Moves     moves.Sequence // the closed walk
	Cost      int64
	Stats     tsp.Stats // zero for StrategyGreedy
	Elapsed   time.Duration
}
