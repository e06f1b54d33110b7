// Package matrix_test contains unit tests for the Dense distance matrix.
package matrix_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewSquare(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfBounds ensures At(), Set() and Row() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 789))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(789), val)
}

// TestNewSquare checks the neutral distance state: zero diagonal, Inf elsewhere.
func TestNewSquare(t *testing.T) {
	m, err := matrix.NewSquare(3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, int64(0), v)
			} else {
				require.Equal(t, matrix.Inf, v)
			}
		}
	}
	require.Equal(t, "[0, inf, inf]\n[inf, 0, inf]\n[inf, inf, 0]\n", m.String())
}

// TestRowSharesStorage ensures writes through Row are visible via At and
// that the returned slice cannot grow into the next row.
func TestRowSharesStorage(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	row, err := m.Row(0)
	require.NoError(t, err)
	row[1] = 5
	_ = append(row, 42)

	v, _ := m.At(0, 1)
	require.Equal(t, int64(5), v)
	v, _ = m.At(1, 0)
	require.Equal(t, int64(0), v)
}

// TestRowConcurrentWriters fills distinct rows from separate goroutines.
func TestRowConcurrentWriters(t *testing.T) {
	const n = 16
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			row, _ := m.Row(i)
			for j := range row {
				row[j] = int64(i*n + j)
			}
		}(i)
	}
	wg.Wait()

	flat := m.Flat()
	for k, v := range flat {
		require.Equal(t, int64(k), v)
	}
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_ = m.Set(0, 0, 1)

	clone := m.Clone()
	_ = clone.Set(0, 0, 3)

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), cloneVal)
}
