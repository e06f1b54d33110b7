package moves

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/patrol/dijkstra"
	"github.com/katalvlaran/patrol/gridgraph"
)

// Reconstructor rebuilds cheapest paths on one grid. It holds no mutable
// state and is safe for concurrent use.
type Reconstructor struct {
	g *gridgraph.GridGraph
}

// NewReconstructor returns a Reconstructor for g.
func NewReconstructor(g *gridgraph.GridGraph) (*Reconstructor, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return &Reconstructor{g: g}, nil
}

// Path returns the moves of a cheapest path from -> to and its cost.
//
// The search runs backwards from to and stops once from is settled, so
// every cell on the path already has its final parent. Walking forward
// from from, each parent direction reversed is the next move.
//
// Complexity: O(C log C) for the search, O(path) for the walk.
func (r *Reconstructor) Path(from, to gridgraph.Cell) (Sequence, int64, error) {
	res, err := dijkstra.Dijkstra(r.g,
		dijkstra.Source(to),
		dijkstra.WithTarget(from),
		dijkstra.WithReverse(),
		dijkstra.WithReturnPath(),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v -> %v: %w", ErrNoPath, from, to, err)
	}
	cost := res.DistanceTo(from)
	if cost == dijkstra.Unreachable {
		return nil, 0, fmt.Errorf("%w: %v -> %v", ErrNoPath, from, to)
	}

	seq := make(Sequence, 0, 16)
	cur := from
	for steps := 0; cur != to; steps++ {
		d := res.ParentOf(cur)
		if d == gridgraph.NoDirection || steps > r.g.Size() {
			return nil, 0, fmt.Errorf("%w: broken parent chain at %v", ErrNoPath, cur)
		}
		next, ok := r.g.Step(cur, d.Opposite())
		if !ok {
			return nil, 0, fmt.Errorf("%w: parent of %v leads into a wall", ErrNoPath, cur)
		}
		seq = append(seq, FromDirection(d.Opposite()))
		cur = next
	}

	return seq, cost, nil
}

// Walk concatenates Path(cells[i], cells[i+1]) for every consecutive pair
// and returns the total cost. Segments are reconstructed concurrently by up
// to workers goroutines (workers <= 0 uses runtime.NumCPU()).
//
// Complexity: O(len(cells) · C log C) total work.
func (r *Reconstructor) Walk(ctx context.Context, cells []gridgraph.Cell, workers int) (Sequence, int64, error) {
	if len(cells) < 2 {
		return Sequence{}, 0, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	segs := make([]Sequence, len(cells)-1)
	costs := make([]int64, len(cells)-1)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range segs {
		i := i
		if cells[i] == cells[i+1] {
			continue
		}
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seq, c, err := r.Path(cells[i], cells[i+1])
			if err != nil {
				return fmt.Errorf("segment %d: %w", i, err)
			}
			segs[i], costs[i] = seq, c
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}

	var (
		total int64
		n     int
	)
	for i := range segs {
		total += costs[i]
		n += len(segs[i])
	}
	out := make(Sequence, 0, n)
	for _, s := range segs {
		out = append(out, s...)
	}
	return out, total, nil
}
