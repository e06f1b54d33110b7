package mazegen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/patrol/gridgraph"
)

// Sentinel errors.
var (
	// ErrBadSize indicates n is even, smaller than 3 or above gridgraph.MaxSize.
	ErrBadSize = errors.New("mazegen: size must be odd and within 3..127")
	// ErrBadCost indicates a cost range outside 0..9 or with MinCost > MaxCost.
	ErrBadCost = errors.New("mazegen: cost range must satisfy 0 <= min <= max <= 9")
	// ErrBadLoopRatio indicates a loop ratio outside [0, 1].
	ErrBadLoopRatio = errors.New("mazegen: loop ratio must be within [0, 1]")
)

// Options configures Generate.
type Options struct {
	Seed      int64   // 0 selects a fixed default stream
	MinCost   int     // smallest cell cost
	MaxCost   int     // largest cell cost
	LoopRatio float64 // chance to open a link that would close a cycle
}

// DefaultOptions returns costs 1..9 and a 10% loop ratio.
func DefaultOptions() Options {
	return Options{MinCost: 1, MaxCost: 9, LoopRatio: 0.1}
}

// link is a candidate opening between two lattice nodes.
type link struct {
	a, b int            // node ids
	cell gridgraph.Cell // grid cell between them
}

// Generate builds an n×n maze. The same Options always produce the same maze.
func Generate(n int, opts Options) (*gridgraph.Maze, error) {
	if n < 3 || n > gridgraph.MaxSize || n%2 == 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, n)
	}
	if opts.MinCost < 0 || opts.MaxCost > 9 || opts.MinCost > opts.MaxCost {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrBadCost, opts.MinCost, opts.MaxCost)
	}
	if !(opts.LoopRatio >= 0 && opts.LoopRatio <= 1) {
		return nil, fmt.Errorf("%w: %g", ErrBadLoopRatio, opts.LoopRatio)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))

	k := n/2 + 1 // nodes per side
	open := make([][]bool, n)
	for r := range open {
		open[r] = make([]bool, n)
	}
	for r := 0; r < n; r += 2 {
		for c := 0; c < n; c += 2 {
			open[r][c] = true
		}
	}

	links := make([]link, 0, 2*k*(k-1))
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			id := i*k + j
			if j+1 < k {
				links = append(links, link{a: id, b: id + 1, cell: gridgraph.Cell{Row: 2 * i, Col: 2*j + 1}})
			}
			if i+1 < k {
				links = append(links, link{a: id, b: id + k, cell: gridgraph.Cell{Row: 2*i + 1, Col: 2 * j}})
			}
		}
	}
	rng.Shuffle(len(links), func(i, j int) { links[i], links[j] = links[j], links[i] })

	ds := newDisjointSet(k * k)
	for _, l := range links {
		if ds.union(l.a, l.b) || rng.Float64() < opts.LoopRatio {
			open[l.cell.Row][l.cell.Col] = true
		}
	}

	values := make([][]int, n)
	span := opts.MaxCost - opts.MinCost + 1
	for r := range values {
		values[r] = make([]int, n)
		for c := range values[r] {
			if !open[r][c] {
				values[r][c] = gridgraph.Wall
				continue
			}
			values[r][c] = opts.MinCost + rng.Intn(span)
		}
	}
	start := gridgraph.Cell{Row: 2 * rng.Intn(k), Col: 2 * rng.Intn(k)}

	return gridgraph.NewMaze(values, start)
}

// disjointSet is a union-find over dense ids with path compression and
// union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

func (ds *disjointSet) find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}
	return x
}

// union merges the sets of a and b and reports whether they were distinct.
func (ds *disjointSet) union(a, b int) bool {
	x, y := ds.find(a), ds.find(b)
	if x == y {
		return false
	}
	switch {
	case ds.rank[x] > ds.rank[y]:
		ds.parent[y] = x
	case ds.rank[x] < ds.rank[y]:
		ds.parent[x] = y
	default:
		ds.parent[x] = y
		ds.rank[y]++
	}
	return true
}
