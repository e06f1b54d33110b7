// Package tsp - unified dispatcher for the tour solvers.
package tsp

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Solve validates opts and routes to the chosen algorithm.
//
//   - AlgoExhaustive: Exhaustive(lt).
//   - AlgoAnneal: max(1, Restarts) independent annealers run concurrently,
//     each on its own RNG stream derived from Seed, all sharing deadline.
//     The cheapest result wins; ties go to the lowest restart index.
//   - AlgoAuto: Exhaustive when R-1 ≤ MaxExhaustiveRoads, else AlgoAnneal.
//
// ctx cancellation stops waiting for restarts that have not started yet;
// a running annealer is bounded by deadline and MaxProposals only.
//
// Complexity: per algorithm (see Exhaustive and Annealer.Run).
func Solve(ctx context.Context, lt *LinkTable, deadline time.Time, opts Options) (Result, error) {
	if lt == nil {
		return Result{}, ErrNilMatrix
	}
	if err := ValidateOptions(opts); err != nil {
		return Result{}, err
	}

	algo := opts.Algo
	if algo == AlgoAuto {
		algo = AlgoAnneal
		if lt.roads-1 <= MaxExhaustiveRoads {
			algo = AlgoExhaustive
		}
	}
	if algo == AlgoExhaustive {
		return Exhaustive(lt)
	}

	restarts := opts.Restarts
	if restarts < 1 {
		restarts = 1
	}
	results := make([]Result, restarts)

	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < restarts; i++ {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a := newAnnealer(lt, opts, deriveRNG(opts.Seed, uint64(i)))
			results[i] = a.Run(deadline)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	best := 0
	for i := 1; i < restarts; i++ {
		if results[i].Cost < results[best].Cost {
			best = i
		}
	}
	return results[best], nil
}
