package tsp

import (
	"fmt"

	"github.com/katalvlaran/patrol/matrix"
)

// LinkTable holds, for every ordered road pair (a,b), the cheapest
// junction-to-junction distance from road a to road b and the junction pair
// achieving it. It also keeps a flat copy of the junction distance matrix
// for within-road costs.
type LinkTable struct {
	roads     int
	junctions int
	cost      []int64 // cost[a*roads+b]
	from      []int   // from[a*roads+b]: exit junction on a
	to        []int   // to[a*roads+b]: entry junction on b
	dist      []int64 // dist[u*junctions+v]
}

// NewLinkTable builds the table from a J×J distance matrix and the junction
// lists of R roads.
//
// For a ≠ b the minimum over all (u ∈ roads[a], v ∈ roads[b]) is taken; ties
// keep the first pair in list order. For a == b the minimum is 0 at the
// road's first junction. A pair whose minimum is still matrix.Inf yields
// ErrUnreachableRoad.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square matrix, no roads,
// junction id out of range), ErrEmptyRoad, ErrUnreachableRoad.
//
// Complexity: O(J²) time, O(R² + J²) memory.
func NewLinkTable(dist *matrix.Dense, roadJunctions [][]int) (*LinkTable, error) {
	if dist == nil {
		return nil, ErrNilMatrix
	}
	j := dist.Rows()
	if j != dist.Cols() || j == 0 {
		return nil, ErrDimensionMismatch
	}
	r := len(roadJunctions)
	if r == 0 {
		return nil, ErrDimensionMismatch
	}
	for a, ids := range roadJunctions {
		if len(ids) == 0 {
			return nil, fmt.Errorf("%w: road %d", ErrEmptyRoad, a)
		}
		for _, u := range ids {
			if u < 0 || u >= j {
				return nil, fmt.Errorf("%w: road %d junction %d", ErrDimensionMismatch, a, u)
			}
		}
	}

	lt := &LinkTable{
		roads:     r,
		junctions: j,
		cost:      make([]int64, r*r),
		from:      make([]int, r*r),
		to:        make([]int, r*r),
		dist:      dist.Flat(),
	}

	var (
		a, b, k int
		u, v    int
		best    int64
		d       int64
	)
	for a = 0; a < r; a++ {
		for b = 0; b < r; b++ {
			k = a*r + b
			best = matrix.Inf
			lt.from[k], lt.to[k] = -1, -1
			for _, u = range roadJunctions[a] {
				row := lt.dist[u*j : (u+1)*j]
				for _, v = range roadJunctions[b] {
					d = row[v]
					if d < best {
						best, lt.from[k], lt.to[k] = d, u, v
					}
				}
			}
			if best == matrix.Inf {
				return nil, fmt.Errorf("%w: no link from road %d to road %d", ErrUnreachableRoad, a, b)
			}
			lt.cost[k] = best
		}
	}

	return lt, nil
}

// NumRoads returns R.
func (lt *LinkTable) NumRoads() int { return lt.roads }

// NumJunctions returns J.
func (lt *LinkTable) NumJunctions() int { return lt.junctions }

// Link returns the cheapest link a→b and its exit/entry junctions.
func (lt *LinkTable) Link(a, b int) (cost int64, from, to int) {
	k := a*lt.roads + b
	return lt.cost[k], lt.from[k], lt.to[k]
}

// Dist returns the junction distance u→v.
func (lt *LinkTable) Dist(u, v int) int64 {
	return lt.dist[u*lt.junctions+v]
}
