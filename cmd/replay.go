package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/patrol/moves"
	"github.com/katalvlaran/patrol/roads"
)

func init() {
	replayCmd := &cobra.Command{
		Use:   "replay <maze-file> <moves|@moves-file>",
		Short: "Replay a move line on a maze and report cost and coverage",
		Long: `Apply a U/D/L/R move line from the maze start and report the walk cost,
the number of steps, whether it returns to the start and whether it covers
every road. A leading '@' reads the moves from a file.

Examples:
  patrol replay maze.txt ULDDRRUULD
  patrol plan maze.txt > walk.txt && patrol replay maze.txt @walk.txt`,
		Args: cobra.ExactArgs(2),
		RunE: runReplay,
	}
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	maze, err := readMaze(cmd, args[0])
	if err != nil {
		return err
	}

	text := args[1]
	if strings.HasPrefix(text, "@") {
		b, err := os.ReadFile(text[1:])
		if err != nil {
			return err
		}
		text = string(b)
	}
	seq, err := moves.ParseSequence(strings.TrimSpace(text))
	if err != nil {
		return err
	}

	trace, err := moves.Replay(maze.Grid, maze.Start, seq)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	net, err := roads.NewNetwork(maze.Grid, maze.Start)
	if err != nil {
		return err
	}
	covered := 0
	for _, ids := range net.RoadJunctions {
		for _, id := range ids {
			if trace.Visited(net.Junctions[id]) {
				covered++
				break
			}
		}
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "cost=%d steps=%d closed=%t covered=%d/%d\n",
		trace.Cost, trace.Steps, trace.Closed(), covered, net.NumRoads())
	return err
}
