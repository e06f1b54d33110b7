package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/gridgraph"
	"github.com/katalvlaran/patrol/moves"
)

const centreMaze = "3 1 1\n111\n111\n111\n"

// resetFlags restores every flag of c and its children to its default, so
// one Execute does not leak into the next.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the root command with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestPlanCommand_Stdin(t *testing.T) {
	out, err := run(t, centreMaze, "plan", "-q", "--seed", "3")
	require.NoError(t, err)

	seq, err := moves.ParseSequence(strings.TrimSpace(out))
	require.NoError(t, err)
	maze, err := gridgraph.ParseMaze(strings.NewReader(centreMaze))
	require.NoError(t, err)
	trace, err := moves.Replay(maze.Grid, maze.Start, seq)
	require.NoError(t, err)
	assert.True(t, trace.Closed())
	assert.Equal(t, int64(8), trace.Cost)
}

func TestPlanCommand_BadStrategy(t *testing.T) {
	_, err := run(t, centreMaze, "plan", "-q", "--strategy", "random")
	assert.Error(t, err)
}

func TestGenThenReplay(t *testing.T) {
	mazeText, err := run(t, "", "gen", "-n", "9", "--seed", "4")
	require.NoError(t, err)
	mazePath := writeTemp(t, "maze.txt", mazeText)

	walk, err := run(t, "", "plan", "-q", "--time-limit", "200ms", mazePath)
	require.NoError(t, err)
	walkPath := writeTemp(t, "walk.txt", walk)

	out, err := run(t, "", "replay", mazePath, "@"+walkPath)
	require.NoError(t, err)
	assert.Contains(t, out, "closed=true")

	maze, err := gridgraph.ParseMaze(strings.NewReader(mazeText))
	require.NoError(t, err)
	assert.Equal(t, 9, maze.Grid.Height)
}

func TestReplayCommand_Partial(t *testing.T) {
	mazePath := writeTemp(t, "maze.txt", centreMaze)
	out, err := run(t, "", "replay", mazePath, "UD")
	require.NoError(t, err)
	assert.Equal(t, "cost=2 steps=2 closed=true covered=2/5\n", out)

	_, err = run(t, "", "replay", mazePath, "UUU")
	assert.ErrorIs(t, err, moves.ErrOutOfBounds)
}

func TestGraphCommand(t *testing.T) {
	out, err := run(t, centreMaze, "graph")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph patrol"))
	assert.Contains(t, out, "doublecircle")

	out, err = run(t, centreMaze, "graph", "-q", "--tour")
	require.NoError(t, err)
	assert.Contains(t, out, "red")
}

func TestConfigCommand(t *testing.T) {
	cfgPath := writeTemp(t, "patrol.yaml", "seed: 12\nstrategy: greedy\n")
	t.Setenv("PATROL_RESTARTS", "5")

	out, err := run(t, "", "config", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "seed: 12")
	assert.Contains(t, out, "strategy: greedy")
	assert.Contains(t, out, "restarts: 5")
}
