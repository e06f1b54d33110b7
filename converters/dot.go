package converters

import (
	"errors"
	"fmt"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/patrol/matrix"
	"github.com/katalvlaran/patrol/roads"
)

// ErrNilNetwork indicates a nil network.
var ErrNilNetwork = errors.New("converters: network is nil")

// ErrBadWaypoint indicates a waypoint that is not a junction id.
var ErrBadWaypoint = errors.New("converters: waypoint out of range")

const (
	graphName      = "patrol"
	colorRoad      = "gray50"
	colorTour      = "red"
	colorStartNode = "forestgreen"
)

// NetworkToDOT renders net as DOT. dist is optional; when set, road edges
// carry the junction distance as label. waypoints is optional.
func NetworkToDOT(net *roads.Network, dist *matrix.Dense, waypoints []int) (string, error) {
	if net == nil {
		return "", ErrNilNetwork
	}
	for i, id := range waypoints {
		if id < 0 || id >= net.NumJunctions() {
			return "", fmt.Errorf("%w: index %d id %d", ErrBadWaypoint, i, id)
		}
	}

	graph := gographviz.NewGraph()
	if err := graph.SetName(graphName); err != nil {
		return "", err
	}
	if err := graph.SetDir(true); err != nil {
		return "", err
	}
	_ = graph.AddAttr(graphName, "splines", "true")
	_ = graph.AddAttr(graphName, "overlap", "false")

	for id, c := range net.Junctions {
		attrs := map[string]string{
			"label":    fmt.Sprintf(`"%d\n%v"`, id, c),
			"pos":      fmt.Sprintf(`"%d,%d!"`, c.Col*60, -c.Row*60),
			"shape":    "circle",
			"fontsize": "10",
		}
		if id == 0 {
			attrs["color"] = colorStartNode
			attrs["penwidth"] = "2"
			attrs["shape"] = "doublecircle"
		}
		if err := graph.AddNode(graphName, nodeName(id), attrs); err != nil {
			return "", err
		}
	}

	for ri, ids := range net.RoadJunctions {
		for k := 0; k+1 < len(ids); k++ {
			u, v := ids[k], ids[k+1]
			if u == v {
				continue
			}
			attrs := map[string]string{
				"dir":     "none",
				"color":   colorRoad,
				"tooltip": fmt.Sprintf(`"road %d %v"`, ri, net.Roads[ri]),
			}
			if dist != nil {
				if d, err := dist.At(u, v); err == nil && d != matrix.Inf {
					attrs["label"] = fmt.Sprintf(`"%d"`, d)
				}
			}
			if err := graph.AddEdge(nodeName(u), nodeName(v), true, attrs); err != nil {
				return "", err
			}
		}
	}

	step := 0
	for k := 0; k+1 < len(waypoints); k++ {
		u, v := waypoints[k], waypoints[k+1]
		if u == v {
			continue
		}
		step++
		attrs := map[string]string{
			"color":     colorTour,
			"penwidth":  "2",
			"xlabel":    fmt.Sprintf(`"%d"`, step),
			"fontcolor": colorTour,
		}
		if err := graph.AddEdge(nodeName(u), nodeName(v), true, attrs); err != nil {
			return "", err
		}
	}

	return graph.String(), nil
}

func nodeName(id int) string { return fmt.Sprintf("j%d", id) }
