package mazegen_test

import (
	"bytes"
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/gridgraph"
	"github.com/katalvlaran/patrol/mazegen"
	"github.com/katalvlaran/patrol/roads"
)

// TestGenerate_Structure checks the lattice layout over random sizes/seeds.
func TestGenerate_Structure(t *testing.T) {
	gofakeit.Seed(2024)
	for k := 0; k < 25; k++ {
		n := 2*gofakeit.Number(1, 12) + 1
		opts := mazegen.DefaultOptions()
		opts.Seed = int64(gofakeit.Number(1, 1<<30))
		opts.LoopRatio = float64(gofakeit.Number(0, 30)) / 100

		m, err := mazegen.Generate(n, opts)
		require.NoError(t, err)
		g := m.Grid
		require.Equal(t, n, g.Width)
		require.Equal(t, n, g.Height)

		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				cl := gridgraph.Cell{Row: r, Col: c}
				switch {
				case r%2 == 0 && c%2 == 0:
					assert.True(t, g.Passable(cl), "node %v", cl)
				case r%2 == 1 && c%2 == 1:
					assert.False(t, g.Passable(cl), "pillar %v", cl)
				}
				if g.Passable(cl) {
					cost := g.Cost(cl)
					assert.GreaterOrEqual(t, cost, opts.MinCost)
					assert.LessOrEqual(t, cost, opts.MaxCost)
				}
			}
		}
		assert.Zero(t, m.Start.Row%2)
		assert.Zero(t, m.Start.Col%2)
		assert.Len(t, g.ConnectedComponents(), 1, "maze must be connected")

		_, err = roads.NewNetwork(g, m.Start)
		assert.NoError(t, err, "n=%d seed=%d", n, opts.Seed)
	}
}

// TestGenerate_TreeWithoutLoops: LoopRatio 0 opens exactly nodes-1 links.
func TestGenerate_TreeWithoutLoops(t *testing.T) {
	const n = 11
	opts := mazegen.DefaultOptions()
	opts.LoopRatio = 0
	opts.Seed = 5
	m, err := mazegen.Generate(n, opts)
	require.NoError(t, err)

	k := n/2 + 1
	passable := 0
	for idx := 0; idx < m.Grid.Size(); idx++ {
		if m.Grid.Passable(m.Grid.Coordinate(idx)) {
			passable++
		}
	}
	nodes := k * k
	assert.Equal(t, nodes+nodes-1, passable)
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := mazegen.DefaultOptions()
	opts.Seed = 77
	a, err := mazegen.Generate(15, opts)
	require.NoError(t, err)
	b, err := mazegen.Generate(15, opts)
	require.NoError(t, err)

	var bufA, bufB bytes.Buffer
	require.NoError(t, a.Format(&bufA))
	require.NoError(t, b.Format(&bufB))
	assert.Equal(t, bufA.String(), bufB.String())

	opts.Seed = 78
	c, err := mazegen.Generate(15, opts)
	require.NoError(t, err)
	var bufC bytes.Buffer
	require.NoError(t, c.Format(&bufC))
	assert.NotEqual(t, bufA.String(), bufC.String())
}

// TestGenerate_RoundTripsThroughParser feeds the generated text back in.
func TestGenerate_RoundTripsThroughParser(t *testing.T) {
	m, err := mazegen.Generate(9, mazegen.DefaultOptions())
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, m.Format(&buf))

	back, err := gridgraph.ParseMaze(&buf)
	require.NoError(t, err)
	assert.Equal(t, m.Start, back.Start)
	assert.Equal(t, m.Grid.Values(), back.Grid.Values())
}

func TestGenerate_Errors(t *testing.T) {
	opts := mazegen.DefaultOptions()
	for _, n := range []int{-1, 0, 1, 4, gridgraph.MaxSize + 2} {
		_, err := mazegen.Generate(n, opts)
		assert.ErrorIs(t, err, mazegen.ErrBadSize, "n=%d", n)
	}

	bad := opts
	bad.MinCost, bad.MaxCost = 5, 2
	_, err := mazegen.Generate(5, bad)
	assert.ErrorIs(t, err, mazegen.ErrBadCost)

	bad = opts
	bad.MaxCost = 10
	_, err = mazegen.Generate(5, bad)
	assert.ErrorIs(t, err, mazegen.ErrBadCost)

	bad = opts
	bad.LoopRatio = 1.5
	_, err = mazegen.Generate(5, bad)
	assert.ErrorIs(t, err, mazegen.ErrBadLoopRatio)
}
