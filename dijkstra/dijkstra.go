// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted grids.
//
// Notes on implementation choices:
//
//   - The heap is keyed on (distance, cell index); ties resolve by index so
//     runs are reproducible.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Walls are never pushed; bounds are checked per step.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/patrol/gridgraph"
)

// Dijkstra computes shortest distances from the configured source cell to
// every cell of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be set (ErrNoSource), in bounds (ErrSourceOutOfBounds)
//     and passable (ErrSourceBlocked).
//  3. Target, when set, must be in bounds (ErrTargetOutOfBounds).
//
// Complexity:
//
//   - Time:  O(C log C), C = number of cells.
//   - Space: O(C).
func Dijkstra(g *gridgraph.GridGraph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !cfg.HasSource {
		return nil, ErrNoSource
	}
	if !g.InBounds(cfg.Source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceOutOfBounds, cfg.Source)
	}
	if !g.Passable(cfg.Source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceBlocked, cfg.Source)
	}
	if cfg.HasTarget && !g.InBounds(cfg.Target) {
		return nil, fmt.Errorf("%w: %v", ErrTargetOutOfBounds, cfg.Target)
	}

	r := newRunner(g, cfg)
	r.init()
	r.process()

	res := &Result{Dist: r.dist, grid: g}
	if cfg.ReturnPath {
		res.Parent = r.parent
	}
	return res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.GridGraph
	options Options
	dist    []int64
	parent  []gridgraph.Direction
	settled []bool
	pq      nodePQ
	target  int
}

func newRunner(g *gridgraph.GridGraph, cfg Options) *runner {
	n := g.Size()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		settled: make([]bool, n),
		pq:      make(nodePQ, 0, 64),
		target:  -1,
	}
	if cfg.ReturnPath {
		r.parent = make([]gridgraph.Direction, n)
	}
	if cfg.HasTarget {
		r.target = g.Index(cfg.Target)
	}
	return r
}

// init sets every distance to Unreachable and pushes the source at 0.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = Unreachable
	}
	for i := range r.parent {
		r.parent[i] = gridgraph.NoDirection
	}
	src := r.g.Index(r.options.Source)
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{dist: 0, idx: int32(src)})
}

// process is the core loop: pop the closest unsettled cell, settle it, relax
// its neighbours. It stops when the heap is empty or the target has been
// settled.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := int(item.idx)

		if r.settled[u] || item.dist > r.dist[u] {
			continue
		}
		r.settled[u] = true
		if u == r.target {
			break
		}
		r.relax(u)
	}
}

// relax tries to improve the distance of each passable neighbour of u.
// The step cost is the cost of the neighbour being entered, or the cost of
// u itself on a reverse search.
func (r *runner) relax(u int) {
	cu := r.g.Coordinate(u)
	du := r.dist[u]
	leave := int64(r.g.CostAt(u))
	for _, d := range gridgraph.Directions {
		cv, ok := r.g.Step(cu, d)
		if !ok {
			continue
		}
		v := r.g.Index(cv)
		if r.settled[v] {
			continue
		}
		step := leave
		if !r.options.Reverse {
			step = int64(r.g.CostAt(v))
		}
		nd := du + step
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		if r.parent != nil {
			r.parent[v] = d
		}
		heap.Push(&r.pq, nodeItem{dist: nd, idx: int32(v)})
	}
}

// nodeItem is a heap entry: a cell index and its tentative distance.
type nodeItem struct {
	dist int64
	idx  int32
}

// nodePQ is a min-heap of nodeItem ordered by (dist, idx).
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
