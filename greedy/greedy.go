// Package greedy is a baseline patrol strategy: always walk to the nearest
// junction that still has an uncovered road, then go home.
//
// It needs no search budget and gives an upper bound the annealer should
// beat; the planner also uses it when the configured strategy is "greedy".
//
// Complexity: O(R·J) junction scans, each O(1) with the distance matrix.
package greedy

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/patrol/matrix"
	"github.com/katalvlaran/patrol/roads"
)

// Sentinel errors.
var (
	// ErrNilInput indicates a nil network or distance matrix.
	ErrNilInput = errors.New("greedy: network or distance matrix is nil")
	// ErrDimensionMismatch indicates a matrix that is not J×J.
	ErrDimensionMismatch = errors.New("greedy: distance matrix does not match junctions")
	// ErrUnreachable indicates uncovered roads none of whose junctions can be reached.
	ErrUnreachable = errors.New("greedy: uncovered road unreachable")
)

// Walk returns the visited junction ids, starting and ending with junction
// 0, and the total distance. At every step the next junction is the one
// with the smallest distance from the current junction among those lying
// on at least one uncovered road; ties go to the lowest id. Arriving at a
// junction covers every road through it.
func Walk(net *roads.Network, dist *matrix.Dense) ([]int, int64, error) {
	if net == nil || dist == nil {
		return nil, 0, ErrNilInput
	}
	j := net.NumJunctions()
	if dist.Rows() != j || dist.Cols() != j {
		return nil, 0, fmt.Errorf("%w: %dx%d for %d junctions", ErrDimensionMismatch, dist.Rows(), dist.Cols(), j)
	}

	covered := make([]bool, net.NumRoads())
	left := net.NumRoads()
	cover := func(id int) {
		for _, r := range net.JunctionRoads[id] {
			if !covered[r] {
				covered[r] = true
				left--
			}
		}
	}

	cur := 0
	route := []int{0}
	cover(0)
	var total int64

	for left > 0 {
		row, err := dist.Row(cur)
		if err != nil {
			return nil, 0, err
		}
		next, best := -1, matrix.Inf
		for id := 0; id < j; id++ {
			if row[id] >= best || !touchesUncovered(net, covered, id) {
				continue
			}
			next, best = id, row[id]
		}
		if next < 0 {
			return nil, 0, fmt.Errorf("%w: %d roads left from junction %d", ErrUnreachable, left, cur)
		}
		total += best
		route = append(route, next)
		cover(next)
		cur = next
	}

	if cur != 0 {
		back, err := dist.At(cur, 0)
		if err != nil {
			return nil, 0, err
		}
		if back == matrix.Inf {
			return nil, 0, fmt.Errorf("%w: no way back from junction %d", ErrUnreachable, cur)
		}
		total += back
	}
	route = append(route, 0)

	return route, total, nil
}

func touchesUncovered(net *roads.Network, covered []bool, id int) bool {
	for _, r := range net.JunctionRoads[id] {
		if !covered[r] {
			return true
		}
	}
	return false
}
