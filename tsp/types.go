package tsp

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors.
var (
	// ErrNilMatrix indicates a nil distance matrix or link table.
	ErrNilMatrix = errors.New("tsp: distance matrix is nil")

	// ErrDimensionMismatch indicates inconsistent sizes or out-of-range indices.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrEmptyRoad indicates a road without junctions.
	ErrEmptyRoad = errors.New("tsp: road has no junctions")

	// ErrUnreachableRoad indicates two roads with no finite link.
	ErrUnreachableRoad = errors.New("tsp: road unreachable")

	// ErrInvalidTour indicates a tour that is not a closed permutation of roads
	// starting and ending at road 0.
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrBadTemperature indicates T1 <= 0 or T0 < T1.
	ErrBadTemperature = errors.New("tsp: invalid temperature schedule")

	// ErrBadBatchSize indicates a non-positive batch size.
	ErrBadBatchSize = errors.New("tsp: batch size must be positive")

	// ErrBadOption indicates a negative proposal cap, restart count or
	// early-reject factor.
	ErrBadOption = errors.New("tsp: invalid option value")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrTooManyRoads indicates an instance too large for Exhaustive.
	ErrTooManyRoads = errors.New("tsp: too many roads for exhaustive search")
)

// MaxExhaustiveRoads bounds the number of non-start roads Exhaustive accepts.
// AlgoAuto switches to annealing above it.
const MaxExhaustiveRoads = 10

// Algorithm selects a solver.
type Algorithm int

const (
	// AlgoAuto uses Exhaustive up to MaxExhaustiveRoads, annealing beyond.
	AlgoAuto Algorithm = iota
	// AlgoAnneal always anneals.
	AlgoAnneal
	// AlgoExhaustive always solves exactly (fails with ErrTooManyRoads on big inputs).
	AlgoExhaustive
)

// String returns the lowercase algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgoAuto:
		return "auto"
	case AlgoAnneal:
		return "anneal"
	case AlgoExhaustive:
		return "exhaustive"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps "auto", "anneal" or "exhaustive" to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return AlgoAuto, nil
	case "anneal":
		return AlgoAnneal, nil
	case "exhaustive":
		return AlgoExhaustive, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
}

// Options configures the solvers.
//
// Temperature falls linearly from T0 to T1 over the run. Proposals are made
// in batches of BatchSize relocate+reverse pairs; the clock is read once per
// batch. A proposal with Δ >= EarlyReject·temp is rejected without drawing.
// MaxProposals > 0 caps the number of proposals; when the run has no
// deadline the temperature then follows the proposal count instead of the
// clock. Restarts > 1 runs that many independent annealers and keeps the
// cheapest tour.
type Options struct {
	Algo         Algorithm
	Seed         int64
	T0, T1       float64
	BatchSize    int
	EarlyReject  float64
	MaxProposals int
	Restarts     int

	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

// Tuned annealing defaults.
const (
	DefaultT0          = 40.0
	DefaultT1          = 0.0001
	DefaultBatchSize   = 100
	DefaultEarlyReject = 10.0
)

// DefaultOptions returns the tuned defaults with AlgoAuto and seed 0.
func DefaultOptions() Options {
	return Options{
		Algo:        AlgoAuto,
		T0:          DefaultT0,
		T1:          DefaultT1,
		BatchSize:   DefaultBatchSize,
		EarlyReject: DefaultEarlyReject,
		Restarts:    1,
	}
}

// Stats summarizes a solver run.
type Stats struct {
	Algo        Algorithm
	Proposals   int
	Accepted    int
	Improved    int // times the best-so-far tour got cheaper
	Batches     int
	InitialCost int64
	Elapsed     time.Duration
}

// Result is a closed road tour together with its junction choices.
//
// Tour has length R+1 with Tour[0] == Tour[R] == 0. Entry[i] and Exit[i] are
// the junctions where road Tour[i] is entered and left; Entry[0] and Exit[R]
// are the start junction 0.
type Result struct {
	Tour  []int
	Entry []int
	Exit  []int
	Cost  int64
	Stats Stats
}

// Waypoints returns the junctions the walk passes through in order:
// Exit[0], Entry[1], Exit[1], …, Entry[R]. Consecutive entries may repeat.
func (r Result) Waypoints() []int {
	n := len(r.Tour) - 1
	if n < 1 {
		return nil
	}
	out := make([]int, 0, 2*n)
	for i := 0; i <= n; i++ {
		if i > 0 {
			out = append(out, r.Entry[i])
		}
		if i < n {
			out = append(out, r.Exit[i])
		}
	}
	return out
}
