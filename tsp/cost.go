// Package tsp - cost utilities shared by the solvers.
//
// TourCost recomputes a tour's cost from scratch; the annealer uses it as
// the reference its incremental bookkeeping must agree with.
package tsp

// TourCost validates tour against lt and returns its cost together with the
// entry and exit junctions of every position.
//
// Complexity: O(R).
func TourCost(lt *LinkTable, tour []int) (cost int64, entry, exit []int, err error) {
	if lt == nil {
		return 0, nil, nil, ErrNilMatrix
	}
	if err = ValidateTour(tour, lt.roads); err != nil {
		return 0, nil, nil, err
	}
	n := lt.roads
	entry = make([]int, n+1)
	exit = make([]int, n+1)
	assignJunctions(lt, tour, entry, exit, 0, n)
	return windowCost(lt, entry, exit, 0, n), entry, exit, nil
}

// assignJunctions sets exit[i] and entry[i+1] from the link tour[i]→tour[i+1]
// for every i in [lo, hi).
//
// Complexity: O(hi-lo).
func assignJunctions(lt *LinkTable, tour, entry, exit []int, lo, hi int) {
	r := lt.roads
	for i := lo; i < hi; i++ {
		k := tour[i]*r + tour[i+1]
		exit[i] = lt.from[k]
		entry[i+1] = lt.to[k]
	}
	// Positions 0 and n sit on the start pseudo-road whose only junction is
	// the start, so the closing entry/exit are fixed.
	if lo == 0 {
		entry[0] = exit[0]
	}
	if hi == len(tour)-1 {
		exit[hi] = entry[hi]
	}
}

// windowCost sums the cost terms owned by positions lo..hi: the walk inside
// road tour[i] (skipped at both ends of the tour) and the link to the next
// position (skipped for i == hi).
//
// Complexity: O(hi-lo).
func windowCost(lt *LinkTable, entry, exit []int, lo, hi int) int64 {
	n := len(entry) - 1
	var sum int64
	for i := lo; i <= hi; i++ {
		if i != 0 && i != n {
			sum += lt.Dist(entry[i], exit[i])
		}
		if i != hi {
			sum += lt.Dist(exit[i], entry[i+1])
		}
	}
	return sum
}
