// Package tsp - tour utilities shared by the solvers.
//
// These helpers operate purely on tour structure (road index sequences):
//   - ValidateTour: enforce closed-tour invariants.
//   - reverseArcInPlace: in-place segment reversal (2-opt core).
//   - rotateRightInPlace / rotateLeftInPlace: block relocation (Or-opt core).
//   - CopyTour: independent copy of a tour slice.
package tsp

import "fmt"

// ValidateTour enforces the closed-tour invariants for n roads:
//
//	len(tour) == n+1, tour[0] == tour[n] == 0,
//	each road r ∈ [0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n+1 {
		return fmt.Errorf("%w: length %d for %d roads", ErrInvalidTour, len(tour), n)
	}
	if tour[0] != 0 || tour[n] != 0 {
		return fmt.Errorf("%w: must start and end at road 0", ErrInvalidTour)
	}
	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		v := tour[i]
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("%w: road %d at position %d", ErrInvalidTour, v, i)
		}
		seen[v] = true
	}
	return nil
}

// reverseArcInPlace reverses the inclusive segment tour[i..k] in place,
// keeping both ends of the closed tour intact.
//
// Contracts: 1 ≤ i < k ≤ len(tour)-2.
//
// Complexity: O(k-i) time, O(1) space.
func reverseArcInPlace(tour []int, i, k int) error {
	n := len(tour) - 1
	if n < 2 || i < 1 || k > n-1 || i >= k {
		return ErrDimensionMismatch
	}
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
	return nil
}

// rotateRightInPlace moves tour[k] to position i, shifting tour[i..k-1] one
// step right: [a_i … a_{k-1} a_k] → [a_k a_i … a_{k-1}].
//
// Complexity: O(k-i) time, O(1) space.
func rotateRightInPlace(tour []int, i, k int) {
	last := tour[k]
	copy(tour[i+1:k+1], tour[i:k])
	tour[i] = last
}

// rotateLeftInPlace is the inverse of rotateRightInPlace:
// [a_i a_{i+1} … a_k] → [a_{i+1} … a_k a_i].
//
// Complexity: O(k-i) time, O(1) space.
func rotateLeftInPlace(tour []int, i, k int) {
	first := tour[i]
	copy(tour[i:k], tour[i+1:k+1])
	tour[k] = first
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)
	return out
}
