// Package tsp - Or-opt block relocation move of the annealer.
//
// A random block tour[l..r] with 1 ≤ l, r-l ≥ 4, r ≤ n-1 is rotated by one
// position, which moves a single road from one end of the block to the
// other. The affected links are l-1→l … r→r+1, so the window is [l-1, r+1].
package tsp

// relocate proposes one block rotation at temperature temp and keeps it or
// undoes it. Requires n ≥ minRelocateRoads.
//
// Complexity: O(r-l).
func (a *Annealer) relocate(temp float64) {
	n := a.n
	l := 1 + a.rng.Intn(n-5)       // l ∈ [1, n-5]
	r := l + 4 + a.rng.Intn(n-l-4) // r ∈ [l+4, n-1]

	prev := windowCost(a.lt, a.entry, a.exit, l-1, r+1)
	left := a.rng.Float64() < 0.5
	if left {
		rotateLeftInPlace(a.tour, l, r)
	} else {
		rotateRightInPlace(a.tour, l, r)
	}
	assignJunctions(a.lt, a.tour, a.entry, a.exit, l-1, r+1)
	delta := windowCost(a.lt, a.entry, a.exit, l-1, r+1) - prev
	a.stats.Proposals++

	if a.accept(delta, temp) {
		a.commit(delta)
		return
	}
	if left {
		rotateRightInPlace(a.tour, l, r)
	} else {
		rotateLeftInPlace(a.tour, l, r)
	}
	assignJunctions(a.lt, a.tour, a.entry, a.exit, l-1, r+1)
}
