package dijkstra

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/patrol/gridgraph"
	"github.com/katalvlaran/patrol/matrix"
)

// AllPairs computes dist[i][j], the shortest-path cost from sources[i] to
// sources[j] over the whole grid. dist[i][i] is 0 and unreachable pairs hold
// Unreachable.
//
// Each row is one single-source run. Up to workers rows run at once
// (workers <= 0 uses runtime.NumCPU()); every goroutine writes only its own
// row, so no locking is needed. The first error, or ctx cancellation,
// aborts the remaining rows.
//
// Complexity: O(J · C log C) time, O(J² + workers·C) space.
func AllPairs(ctx context.Context, g *gridgraph.GridGraph, sources []gridgraph.Cell, workers int) (*matrix.Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(sources) == 0 {
		return nil, ErrNoSource
	}
	dist, err := matrix.NewSquare(len(sources))
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Cell index of every source, so a row is a gather over the search result.
	idx := make([]int, len(sources))
	for i, c := range sources {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: source %d at %v", ErrSourceOutOfBounds, i, c)
		}
		idx[i] = g.Index(c)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range sources {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Dijkstra(g, Source(sources[i]))
			if err != nil {
				return fmt.Errorf("dijkstra: row %d: %w", i, err)
			}
			row, err := dist.Row(i)
			if err != nil {
				return err
			}
			for j, cell := range idx {
				if j != i {
					row[j] = res.Dist[cell]
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return dist, nil
}
