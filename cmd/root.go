// Package cmd implements the patrol command line.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/patrol/config"
	"github.com/katalvlaran/patrol/gridgraph"
)

// started is the process start; the plan time limit counts from here.
var started = time.Now()

var (
	configPath string
	envFile    string
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "patrol",
	Short: "Plan closed patrol walks that cover every road of a grid maze",
	Long: `patrol reads a maze ("N startRow startCol" then N rows of '#' and
digits), finds a cheap closed walk from the start that touches every road,
and prints it as a line of U/D/L/R moves.

Settings come from defaults, then --config (YAML), then PATROL_* variables
(optionally from --env-file), then command flags.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load PATROL_* variables from this file (default .env if present)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress stage logs")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves defaults, file and environment.
func loadConfig() (config.Config, error) {
	if err := config.LoadEnvFile(envFile, envFile == ""); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command) *log.Logger {
	if quiet {
		return log.New(io.Discard, "", 0)
	}
	return log.New(cmd.ErrOrStderr(), "patrol ", log.LstdFlags|log.Lmicroseconds)
}

// readMaze parses the maze at path, or stdin when path is "" or "-".
func readMaze(cmd *cobra.Command, path string) (*gridgraph.Maze, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	maze, err := gridgraph.ParseMaze(r)
	if err != nil {
		return nil, fmt.Errorf("read maze: %w", err)
	}
	return maze, nil
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
