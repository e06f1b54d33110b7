// Package tsp - simulated annealing over road orders.
//
// The annealer owns its whole search state (tour, junction choices, running
// cost, RNG), so independent runs never share anything.
//
// Loop:
//   - Read the clock once per batch; stop at the deadline or proposal cap.
//   - Temperature falls linearly from T0 (at Run start) to T1 (at the deadline).
//   - Each batch makes BatchSize × (relocate, reverse) proposals. A proposal
//     rewrites only the junction choices inside its window and compares the
//     window cost before and after, so evaluation is O(window).
//   - Acceptance: Δ < EarlyReject·temp and U[0,1) < exp(min(0, −Δ/temp)).
//     Rejected proposals are undone in place.
//   - The cheapest tour seen is kept and returned.
package tsp

import (
	"math"
	"math/rand"
	"time"
)

// Minimum tour sizes (number of roads including the start) for each move.
const (
	minReverseRoads  = 3
	minRelocateRoads = 6
)

// Annealer is a single simulated-annealing run.
type Annealer struct {
	lt   *LinkTable
	opts Options
	rng  *rand.Rand
	now  func() time.Time
	n    int // number of roads

	tour  []int
	entry []int
	exit  []int
	cost  int64

	bestTour  []int
	bestEntry []int
	bestExit  []int
	bestCost  int64

	stats Stats
}

// NewAnnealer validates opts and prepares a run from a random initial tour
// drawn from opts.Seed.
//
// Complexity: O(R).
func NewAnnealer(lt *LinkTable, opts Options) (*Annealer, error) {
	if lt == nil {
		return nil, ErrNilMatrix
	}
	if err := ValidateOptions(opts); err != nil {
		return nil, err
	}
	return newAnnealer(lt, opts, rngFromSeed(opts.Seed)), nil
}

func newAnnealer(lt *LinkTable, opts Options, rng *rand.Rand) *Annealer {
	n := lt.roads
	a := &Annealer{
		lt:    lt,
		opts:  opts,
		rng:   rng,
		now:   opts.Now,
		n:     n,
		tour:  randomTour(n, rng),
		entry: make([]int, n+1),
		exit:  make([]int, n+1),
	}
	if a.now == nil {
		a.now = time.Now
	}
	assignJunctions(lt, a.tour, a.entry, a.exit, 0, n)
	a.cost = windowCost(lt, a.entry, a.exit, 0, n)

	a.bestTour = CopyTour(a.tour)
	a.bestEntry = CopyTour(a.entry)
	a.bestExit = CopyTour(a.exit)
	a.bestCost = a.cost
	a.stats = Stats{Algo: AlgoAnneal, InitialCost: a.cost}
	return a
}

// Cost returns the running cost of the current tour.
func (a *Annealer) Cost() int64 { return a.cost }

// Tour returns a copy of the current (not necessarily best) tour.
func (a *Annealer) Tour() []int { return CopyTour(a.tour) }

// Run anneals until deadline or until MaxProposals proposals were made,
// whichever comes first, and returns the cheapest tour seen.
//
// A zero deadline means no wall-clock limit; with neither a deadline nor a
// proposal cap Run returns the initial tour. Instances with fewer than
// three roads admit no move and return immediately.
//
// Complexity: O(proposals · R) worst case.
func (a *Annealer) Run(deadline time.Time) Result {
	start := a.now()
	if deadline.IsZero() && a.opts.MaxProposals <= 0 {
		return a.result(start)
	}
	if a.n < minReverseRoads {
		return a.result(start)
	}

	for !a.exhausted() {
		now := a.now()
		if !deadline.IsZero() && !now.Before(deadline) {
			break
		}
		temp := a.temperature(start, now, deadline)
		for b := 0; b < a.opts.BatchSize && !a.exhausted(); b++ {
			if a.n >= minRelocateRoads {
				a.relocate(temp)
				if a.exhausted() {
					break
				}
			}
			a.reverse(temp)
		}
		a.stats.Batches++
	}

	return a.result(start)
}

// exhausted reports whether the proposal cap has been reached.
func (a *Annealer) exhausted() bool {
	return a.opts.MaxProposals > 0 && a.stats.Proposals >= a.opts.MaxProposals
}

// temperature interpolates linearly between T0 and T1 by the elapsed share
// of the time budget, or of the proposal budget when there is no deadline.
func (a *Annealer) temperature(start, now, deadline time.Time) float64 {
	var frac float64
	if !deadline.IsZero() {
		if span := deadline.Sub(start); span > 0 {
			frac = float64(now.Sub(start)) / float64(span)
		} else {
			frac = 1
		}
	}
	if a.opts.MaxProposals > 0 {
		pf := float64(a.stats.Proposals) / float64(a.opts.MaxProposals)
		if deadline.IsZero() || pf > frac {
			frac = pf
		}
	}
	frac = math.Max(0, math.Min(1, frac))
	return a.opts.T0 + (a.opts.T1-a.opts.T0)*frac
}

// accept applies the acceptance rule to a proposal with cost change delta.
func (a *Annealer) accept(delta int64, temp float64) bool {
	d := float64(delta)
	if d >= a.opts.EarlyReject*temp {
		return false
	}
	return a.rng.Float64() < math.Exp(math.Min(0, -d/temp))
}

// commit books an accepted proposal and refreshes the best-so-far tour.
func (a *Annealer) commit(delta int64) {
	a.cost += delta
	a.stats.Accepted++
	if a.cost < a.bestCost {
		a.bestCost = a.cost
		copy(a.bestTour, a.tour)
		copy(a.bestEntry, a.entry)
		copy(a.bestExit, a.exit)
		a.stats.Improved++
	}
}

// result snapshots the best tour.
func (a *Annealer) result(start time.Time) Result {
	st := a.stats
	st.Elapsed = a.now().Sub(start)
	return Result{
		Tour:  CopyTour(a.bestTour),
		Entry: CopyTour(a.bestEntry),
		Exit:  CopyTour(a.bestExit),
		Cost:  a.bestCost,
		Stats: st,
	}
}
