package patrol

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/katalvlaran/patrol/dijkstra"
	"github.com/katalvlaran/patrol/greedy"
	"github.com/katalvlaran/patrol/gridgraph"
	"github.com/katalvlaran/patrol/moves"
	"github.com/katalvlaran/patrol/roads"
	"github.com/katalvlaran/patrol/tsp"
)

// Planner runs the full pipeline. It holds no per-plan state, so one
// Planner may serve concurrent Plan calls.
type Planner struct {
	opts Options
	log  *log.Logger
	now  func() time.Time
}

// NewPlanner validates opts and returns a Planner.
//
// Errors: ErrBadTimeLimit, ErrUnknownStrategy, and the tsp option errors
// (tsp.ErrBadTemperature, tsp.ErrBadBatchSize, tsp.ErrBadOption,
// tsp.ErrUnsupportedAlgorithm).
func NewPlanner(opts Options) (*Planner, error) {
	if opts.TimeLimit <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadTimeLimit, opts.TimeLimit)
	}
	if opts.Strategy != StrategyAnneal && opts.Strategy != StrategyGreedy {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, opts.Strategy)
	}
	if err := tsp.ValidateOptions(opts.Solver); err != nil {
		return nil, err
	}
	lg := opts.Logger
	if lg == nil {
		lg = log.New(io.Discard, "", 0)
	}
	now := opts.Solver.Now
	if now == nil {
		now = time.Now
	}
	return &Planner{opts: opts, log: lg, now: now}, nil
}

// Options returns the planner's configuration.
func (p *Planner) Options() Options { return p.opts }

// time starts a stage timer; call the returned func with the stage error.
func (p *Planner) time(op string) func(errp *error) {
	start := time.Now()
	return func(errp *error) {
		dur := time.Since(start)
		if errp != nil && *errp != nil {
			p.log.Printf("op=%s dur=%dms err=%v", op, dur.Milliseconds(), *errp)
			return
		}
		p.log.Printf("op=%s dur=%dms", op, dur.Milliseconds())
	}
}

// Plan computes a closed walk from maze.Start that covers every road. The
// time limit runs from the moment Plan is called; use PlanSince to count
// earlier work such as reading the maze.
//
// Errors: ErrNilMaze, roads errors (roads.ErrIsolatedRoad, ...),
// ErrDisconnected, dijkstra errors, tsp errors, greedy errors,
// moves.ErrNoPath, ErrCostMismatch, and with Verify set ErrNotClosed or
// ErrUncovered. ctx cancellation aborts the parallel stages with ctx.Err().
func (p *Planner) Plan(ctx context.Context, maze *gridgraph.Maze) (*Plan, error) {
	return p.PlanSince(ctx, maze, p.now())
}

// PlanSince is Plan with the time limit measured from started instead of
// from the call. A started far enough in the past leaves the optimizer no
// time, and the initial tour is used.
func (p *Planner) PlanSince(ctx context.Context, maze *gridgraph.Maze, started time.Time) (plan *Plan, err error) {
	if maze == nil || maze.Grid == nil {
		return nil, ErrNilMaze
	}
	deadline := started.Add(p.opts.TimeLimit)
	if d, ok := ctx.Deadline(); ok {
		// Keep a tenth of the context budget for reconstruction.
		if cut := started.Add(d.Sub(started) * 9 / 10); cut.Before(deadline) {
			deadline = cut
		}
	}
	defer p.time("plan")(&err)

	plan = &Plan{Maze: maze}

	done := p.time("roads")
	plan.Network, err = roads.NewNetwork(maze.Grid, maze.Start)
	if err == nil {
		err = checkConnected(plan.Network)
	}
	done(&err)
	if err != nil {
		return nil, err
	}
	net := plan.Network

	done = p.time("allpairs")
	plan.Dist, err = dijkstra.AllPairs(ctx, maze.Grid, net.Junctions, p.opts.Workers)
	done(&err)
	if err != nil {
		return nil, err
	}

	switch p.opts.Strategy {
	case StrategyGreedy:
		done = p.time("greedy")
		plan.Waypoints, plan.Cost, err = greedy.Walk(net, plan.Dist)
		done(&err)
		if err != nil {
			return nil, err
		}
	default:
		var lt *tsp.LinkTable
		done = p.time("links")
		lt, err = tsp.NewLinkTable(plan.Dist, net.RoadJunctions)
		done(&err)
		if err != nil {
			return nil, err
		}

		var res tsp.Result
		done = p.time("solve")
		res, err = tsp.Solve(ctx, lt, deadline, p.opts.Solver)
		done(&err)
		if err != nil {
			return nil, err
		}
		plan.Tour, plan.Cost, plan.Stats = res.Tour, res.Cost, res.Stats
		plan.Waypoints = res.Waypoints()
		p.log.Printf("op=solve algo=%s proposals=%d accepted=%d improved=%d initial=%d cost=%d",
			res.Stats.Algo, res.Stats.Proposals, res.Stats.Accepted, res.Stats.Improved,
			res.Stats.InitialCost, res.Cost)
	}

	cells := make([]gridgraph.Cell, len(plan.Waypoints))
	for i, id := range plan.Waypoints {
		cells[i] = net.Junctions[id]
	}

	var rec *moves.Reconstructor
	var walked int64
	done = p.time("reconstruct")
	rec, err = moves.NewReconstructor(maze.Grid)
	if err == nil {
		plan.Moves, walked, err = rec.Walk(ctx, cells, p.opts.Workers)
	}
	if err == nil && walked != plan.Cost {
		err = fmt.Errorf("%w: walk %d, tour %d", ErrCostMismatch, walked, plan.Cost)
	}
	done(&err)
	if err != nil {
		return nil, err
	}

	if p.opts.Verify {
		done = p.time("verify")
		err = Verify(maze, net, plan.Moves)
		done(&err)
		if err != nil {
			return nil, err
		}
	}

	plan.Elapsed = p.now().Sub(started)
	p.log.Printf("op=summary roads=%d junctions=%d cost=%d moves=%d strategy=%s",
		net.NumRoads(), net.NumJunctions(), plan.Cost, len(plan.Moves), p.opts.Strategy)
	return plan, nil
}

// checkConnected rejects roads lying outside the start cell's component.
// Roads are contiguous, so checking one cell per road is enough.
func checkConnected(net *roads.Network) error {
	g := net.Grid
	labels := g.ComponentLabels()
	home := labels[g.Index(net.Start)]
	for i, r := range net.Roads {
		if labels[g.Index(r.From)] != home {
			return fmt.Errorf("%w: road %d %v", ErrDisconnected, i, r)
		}
	}
	return nil
}
