package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/patrol/converters"
	"github.com/katalvlaran/patrol/dijkstra"
	"github.com/katalvlaran/patrol/matrix"
	"github.com/katalvlaran/patrol/roads"
)

var graphTour bool

func init() {
	graphCmd := &cobra.Command{
		Use:   "graph [maze-file]",
		Short: "Print the junction graph as Graphviz DOT",
		Long: `Print the junctions of a maze and the road segments between them in DOT.
With --tour the planned walk is overlaid as numbered red arrows.

Examples:
  patrol graph maze.txt | neato -n -Tsvg > maze.svg
  patrol graph --tour maze.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGraph,
	}
	graphCmd.Flags().BoolVar(&graphTour, "tour", false, "plan and overlay the walk")
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	maze, err := readMaze(cmd, argOrEmpty(args))
	if err != nil {
		return err
	}

	var (
		net       *roads.Network
		dist      *matrix.Dense
		waypoints []int
	)
	if graphTour {
		planner, err := plannerFromFlags(cmd)
		if err != nil {
			return err
		}
		plan, err := planner.PlanSince(cmd.Context(), maze, started)
		if err != nil {
			return fmt.Errorf("plan: %w", err)
		}
		net, dist, waypoints = plan.Network, plan.Dist, plan.Waypoints
	} else {
		net, err = roads.NewNetwork(maze.Grid, maze.Start)
		if err != nil {
			return err
		}
		dist, err = dijkstra.AllPairs(cmd.Context(), maze.Grid, net.Junctions, 0)
		if err != nil {
			return err
		}
	}

	dot, err := converters.NetworkToDOT(net, dist, waypoints)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), dot)
	return err
}
