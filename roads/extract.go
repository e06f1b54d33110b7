package roads

import "github.com/katalvlaran/patrol/gridgraph"

// Extract returns the roads of g: maximal runs of at least two passable
// cells along even rows (horizontal, listed first) and even columns
// (vertical). Within each group roads are ordered by line, then by start.
func Extract(g *gridgraph.GridGraph) []Road {
	if g == nil {
		return nil
	}
	var out []Road
	for r := 0; r < g.Height; r += 2 {
		out = appendRuns(out, g, Horizontal, gridgraph.Cell{Row: r}, g.Width)
	}
	for c := 0; c < g.Width; c += 2 {
		out = appendRuns(out, g, Vertical, gridgraph.Cell{Col: c}, g.Height)
	}
	return out
}

// appendRuns scans one line starting at origin and appends its runs.
func appendRuns(out []Road, g *gridgraph.GridGraph, o Orientation, origin gridgraph.Cell, length int) []Road {
	at := func(i int) gridgraph.Cell {
		if o == Horizontal {
			return gridgraph.Cell{Row: origin.Row, Col: i}
		}
		return gridgraph.Cell{Row: i, Col: origin.Col}
	}
	for i := 0; i < length; {
		if !g.Passable(at(i)) {
			i++
			continue
		}
		lo := i
		for i < length && g.Passable(at(i)) {
			i++
		}
		if i-lo >= 2 {
			out = append(out, Road{Orientation: o, From: at(lo), To: at(i - 1)})
		}
	}
	return out
}
