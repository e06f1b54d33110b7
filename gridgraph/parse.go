package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseMaze reads the textual maze format:
//
//	N startRow startCol
//	N rows of exactly N characters over '#' and '0'..'9'
//
// N must lie in 1..MaxSize. Trailing blank lines and CRLF line endings are
// tolerated. Any other
// deviation is fatal; no partial grid is returned.
// Complexity: O(N²).
func ParseMaze(r io.Reader) (*Maze, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("gridgraph: read header: %w", err)
		}
		return nil, ErrMalformedHeader
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedHeader, len(fields))
	}
	var nums [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, f)
		}
		nums[i] = v
	}
	n, start := nums[0], Cell{Row: nums[1], Col: nums[2]}
	if n <= 0 || n > MaxSize {
		return nil, fmt.Errorf("%w: size %d outside 1..%d", ErrMalformedHeader, n, MaxSize)
	}

	values := make([][]int, 0, n)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if len(values) == n {
			if strings.TrimSpace(line) != "" {
				return nil, fmt.Errorf("%w: more than %d rows", ErrRowCount, n)
			}
			continue
		}
		if len(line) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, len(values), len(line), n)
		}
		row := make([]int, n)
		for col := 0; col < n; col++ {
			ch := line[col]
			switch {
			case ch == '#':
				row[col] = Wall
			case ch >= '0' && ch <= '9':
				row[col] = int(ch - '0')
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, ch, len(values), col)
			}
		}
		values = append(values, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read rows: %w", err)
	}
	if len(values) != n {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrRowCount, len(values), n)
	}

	return NewMaze(values, start)
}

// NewMaze builds a Maze from values[row][col] and validates the start cell.
func NewMaze(values [][]int, start Cell) (*Maze, error) {
	g, err := NewGridGraph(values)
	if err != nil {
		return nil, err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if !g.Passable(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}
	return &Maze{Grid: g, Start: start}, nil
}

// Format writes m in the textual maze format accepted by ParseMaze.
// Costs above 9 cannot be represented and are rejected with ErrBadCell.
func (m *Maze) Format(w io.Writer) error {
	g := m.Grid
	bw := bufio.NewWriter(w)
	if g.Width != g.Height {
		return fmt.Errorf("%w: %dx%d", ErrNonRectangular, g.Height, g.Width)
	}
	fmt.Fprintf(bw, "%d %d %d\n", g.Height, m.Start.Row, m.Start.Col)
	line := make([]byte, g.Width+1)
	line[g.Width] = '\n'
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			v := g.costs[r*g.Width+c]
			switch {
			case v == Wall:
				line[c] = '#'
			case v <= 9:
				line[c] = byte('0' + v)
			default:
				return fmt.Errorf("%w: cost %d at (%d,%d)", ErrBadCell, v, r, c)
			}
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
