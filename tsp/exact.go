package tsp

import (
	"fmt"

	"github.com/katalvlaran/patrol/matrix"
)

// Exhaustive finds a cheapest tour exactly.
//
// The cost of visiting road l depends on both its neighbours (entry comes
// from the link p→l, exit from the link l→x), so the classic Held–Karp state
// (subset, last) is extended with the previous road:
//
//	dp[mask][p][l] = cheapest walk from road 0 through exactly the roads in
//	                 mask, ending with p→l, counting every term already
//	                 fixed (all links, and the inner walks of every road but l).
//
// Extending by x adds dist(to(p,l), from(l,x)) + link(l,x). Closing with
// x = 0 yields the tour cost. Ties keep the first candidate found, so the
// result is deterministic.
//
// Errors: ErrNilMatrix, ErrTooManyRoads when R-1 > MaxExhaustiveRoads.
//
// Complexity: O(2ⁿ·n³) time, O(2ⁿ·n²) memory, n = R-1.
func Exhaustive(lt *LinkTable) (Result, error) {
	if lt == nil {
		return Result{}, ErrNilMatrix
	}
	n := lt.roads - 1
	if n > MaxExhaustiveRoads {
		return Result{}, fmt.Errorf("%w: %d roads, limit %d", ErrTooManyRoads, n, MaxExhaustiveRoads)
	}
	if n == 0 {
		return finishExhaustive(lt, []int{0, 0})
	}

	// Roads are 1..n; bit(x) = 1<<(x-1). p ranges over 0..n (0 = start).
	side := n + 1
	full := 1<<n - 1
	states := (full + 1) * side * side
	dp := make([]int64, states)
	par := make([]int8, states)
	for i := range dp {
		dp[i] = matrix.Inf
	}
	st := func(mask, p, l int) int { return (mask*side+p)*side + l }

	// inner returns the cost of walking road l between its entry from p and
	// its exit towards x, plus the link l→x.
	inner := func(p, l, x int) int64 {
		_, _, in := lt.Link(p, l)
		link, out, _ := lt.Link(l, x)
		return lt.Dist(in, out) + link
	}

	var x int
	for x = 1; x <= n; x++ {
		c, _, _ := lt.Link(0, x)
		dp[st(1<<(x-1), 0, x)] = c
		par[st(1<<(x-1), 0, x)] = -1
	}

	var (
		mask, p, l int
		v, cand    int64
	)
	for mask = 1; mask <= full; mask++ {
		for p = 0; p <= n; p++ {
			for l = 1; l <= n; l++ {
				v = dp[st(mask, p, l)]
				if v == matrix.Inf {
					continue
				}
				for x = 1; x <= n; x++ {
					if mask&(1<<(x-1)) != 0 {
						continue
					}
					cand = v + inner(p, l, x)
					k := st(mask|1<<(x-1), l, x)
					if cand < dp[k] {
						dp[k] = cand
						par[k] = int8(p)
					}
				}
			}
		}
	}

	best := matrix.Inf
	bp, bl := -1, -1
	for p = 0; p <= n; p++ {
		for l = 1; l <= n; l++ {
			v = dp[st(full, p, l)]
			if v == matrix.Inf {
				continue
			}
			if cand = v + inner(p, l, 0); cand < best {
				best, bp, bl = cand, p, l
			}
		}
	}
	if bl < 0 {
		return Result{}, ErrUnreachableRoad
	}

	// Walk parents back from the closing state.
	tour := make([]int, n+2)
	mask, p, l = full, bp, bl
	for k := n; k >= 1; k-- {
		tour[k] = l
		pp := int(par[st(mask, p, l)])
		mask &^= 1 << (l - 1)
		l, p = p, pp
	}

	return finishExhaustive(lt, tour)
}

// finishExhaustive evaluates the chosen tour into a Result.
func finishExhaustive(lt *LinkTable, tour []int) (Result, error) {
	cost, entry, exit, err := TourCost(lt, tour)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Tour:  tour,
		Entry: entry,
		Exit:  exit,
		Cost:  cost,
		Stats: Stats{Algo: AlgoExhaustive, InitialCost: cost},
	}, nil
}
