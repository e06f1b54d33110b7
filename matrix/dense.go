package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of int64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []int64
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// NewSquare creates an n×n Dense matrix with every off-diagonal entry set to
// Inf and a zero diagonal, the neutral state of a distance matrix.
func NewSquare(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	m.Fill(Inf)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 0
	}
	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns row i as a slice sharing the matrix storage. Writers must own
// the row exclusively; concurrent writers to distinct rows are safe.
// Complexity: O(1).
func (m *Dense) Row(i int) ([]int64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// Fill sets every element to v.
func (m *Dense) Fill(v int64) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Flat returns a copy of the row-major backing data, for hot loops that
// index it directly as data[row*Cols()+col].
func (m *Dense) Flat() []int64 {
	out := make([]int64, len(m.data))
	copy(out, m.data)
	return out
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	return &Dense{r: m.r, c: m.c, data: m.Flat()}
}

// String implements fmt.Stringer for easy debugging; Inf prints as "inf".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			v := m.data[i*m.c+j]
			if v == Inf {
				sb.WriteString("inf")
			} else {
				fmt.Fprintf(&sb, "%d", v)
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
