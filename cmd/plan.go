package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/patrol/config"
	"github.com/katalvlaran/patrol/patrol"
)

var planFlags struct {
	timeLimit    time.Duration
	seed         int64
	strategy     string
	algorithm    string
	workers      int
	restarts     int
	maxProposals int
	noVerify     bool
}

func init() {
	planCmd := &cobra.Command{
		Use:   "plan [maze-file]",
		Short: "Print a covering closed walk as U/D/L/R moves",
		Long: `Plan a closed walk from the maze start that covers every road and print
it as a single line of moves. The maze is read from stdin when no file is
given.

Examples:
  patrol plan maze.txt
  patrol gen -n 41 | patrol plan --time-limit 1s
  patrol plan --strategy greedy maze.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPlan,
	}

	f := planCmd.Flags()
	f.DurationVarP(&planFlags.timeLimit, "time-limit", "t", 0, "time budget counted from process start, reading the maze included")
	f.Int64Var(&planFlags.seed, "seed", 0, "random seed (0 = default stream)")
	f.StringVar(&planFlags.strategy, "strategy", "", "anneal or greedy")
	f.StringVar(&planFlags.algorithm, "algorithm", "", "auto, anneal or exhaustive")
	f.IntVarP(&planFlags.workers, "workers", "w", 0, "parallel workers")
	f.IntVar(&planFlags.restarts, "restarts", 0, "independent annealing runs")
	f.IntVar(&planFlags.maxProposals, "max-proposals", 0, "cap on annealing proposals (0 = none)")
	f.BoolVar(&planFlags.noVerify, "no-verify", false, "skip replay verification")

	rootCmd.AddCommand(planCmd)
}

// plannerFromFlags merges explicitly set plan flags over the loaded config.
func plannerFromFlags(cmd *cobra.Command) (*patrol.Planner, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	f := cmd.Flags()
	if f.Changed("time-limit") {
		cfg.TimeLimit = config.Duration(planFlags.timeLimit)
	}
	if f.Changed("seed") {
		cfg.Seed = planFlags.seed
	}
	if f.Changed("strategy") {
		cfg.Strategy = planFlags.strategy
	}
	if f.Changed("algorithm") {
		cfg.Algorithm = planFlags.algorithm
	}
	if f.Changed("workers") {
		cfg.Workers = planFlags.workers
	}
	if f.Changed("restarts") {
		cfg.Restarts = planFlags.restarts
	}
	if f.Changed("max-proposals") {
		cfg.MaxProposals = planFlags.maxProposals
	}
	if f.Changed("no-verify") {
		cfg.Verify = !planFlags.noVerify
	}

	opts, err := cfg.PlannerOptions()
	if err != nil {
		return nil, err
	}
	opts.Logger = newLogger(cmd)
	return patrol.NewPlanner(opts)
}

func runPlan(cmd *cobra.Command, args []string) error {
	planner, err := plannerFromFlags(cmd)
	if err != nil {
		return err
	}
	maze, err := readMaze(cmd, argOrEmpty(args))
	if err != nil {
		return err
	}
	plan, err := planner.PlanSince(cmd.Context(), maze, started)
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), plan.Moves.String())
	return err
}
