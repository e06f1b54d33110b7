// Package matrix: sentinel error set.
// All methods return these sentinels and tests check them via errors.Is.
// No method panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"math"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// Inf is the distance stored for unreachable pairs.
const Inf int64 = math.MaxInt64
