package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells under
// 4-connectivity. Components are returned in row-major order of their first
// cell; each component is a slice of row-major cell indices in BFS order.
//
// To convert an index back to a Cell, use Coordinate(idx).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	labels := gg.ComponentLabels()
	seen := make([]bool, len(labels))
	var comps [][]int
	for i0, l := range labels {
		if l < 0 || l < len(comps) {
			continue
		}
		// BFS again from the first cell of the component so the order of
		// the returned cells is breadth-first from that cell.
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := gg.Coordinate(queue[qi])
			for _, d := range Directions {
				v, ok := gg.Step(u, d)
				if !ok {
					continue
				}
				vi := gg.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// ComponentLabels assigns every passable cell the index of its connected
// component (numbered in row-major order of discovery); walls get -1.
//
// Time:   O(W·H·4).
// Memory: O(W·H).
func (gg *GridGraph) ComponentLabels() []int {
	total := gg.Size()
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	next := 0
	queue := make([]int, 0, total)

	for i0 := 0; i0 < total; i0++ {
		if gg.costs[i0] == Wall || labels[i0] >= 0 {
			continue
		}
		labels[i0] = next
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := gg.Coordinate(queue[qi])
			for _, d := range Directions {
				v, ok := gg.Step(u, d)
				if !ok {
					continue
				}
				vi := gg.Index(v)
				if labels[vi] < 0 {
					labels[vi] = next
					queue = append(queue, vi)
				}
			}
		}
		next++
	}
	return labels
}
