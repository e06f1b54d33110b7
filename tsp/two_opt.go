// Package tsp - 2-opt segment reversal move of the annealer.
//
// A random window [l, r] with r-l ≥ 3 is chosen and the interior
// tour[l+1..r-1] is reversed. Only exit[l..r-1] and entry[l+1..r] change,
// so the cost delta is windowCost(l, r) after minus before.
package tsp

// reverse proposes one segment reversal at temperature temp and keeps it or
// undoes it. Requires n ≥ minReverseRoads.
//
// Complexity: O(r-l).
func (a *Annealer) reverse(temp float64) {
	n := a.n
	l := a.rng.Intn(n - 2)         // l ∈ [0, n-3]
	r := l + 3 + a.rng.Intn(n-l-2) // r ∈ [l+3, n]

	prev := windowCost(a.lt, a.entry, a.exit, l, r)
	_ = reverseArcInPlace(a.tour, l+1, r-1)
	assignJunctions(a.lt, a.tour, a.entry, a.exit, l, r)
	delta := windowCost(a.lt, a.entry, a.exit, l, r) - prev
	a.stats.Proposals++

	if a.accept(delta, temp) {
		a.commit(delta)
		return
	}
	_ = reverseArcInPlace(a.tour, l+1, r-1)
	assignJunctions(a.lt, a.tour, a.entry, a.exit, l, r)
}
