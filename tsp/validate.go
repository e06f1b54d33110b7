// Package tsp - option validation shared by the solvers.
package tsp

import "fmt"

// ValidateOptions checks internal consistency of Options. Solve and
// NewAnnealer call it; callers may use it to fail early on configuration.
//
// Complexity: O(1).
func ValidateOptions(opts Options) error {
	switch opts.Algo {
	case AlgoAuto, AlgoAnneal, AlgoExhaustive:
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, opts.Algo)
	}
	if !(opts.T1 > 0) || opts.T0 < opts.T1 {
		return fmt.Errorf("%w: t0=%g t1=%g", ErrBadTemperature, opts.T0, opts.T1)
	}
	if opts.BatchSize <= 0 {
		return fmt.Errorf("%w: %d", ErrBadBatchSize, opts.BatchSize)
	}
	if !(opts.EarlyReject > 0) {
		return fmt.Errorf("%w: early reject %g", ErrBadOption, opts.EarlyReject)
	}
	if opts.MaxProposals < 0 {
		return fmt.Errorf("%w: max proposals %d", ErrBadOption, opts.MaxProposals)
	}
	if opts.Restarts < 0 {
		return fmt.Errorf("%w: restarts %d", ErrBadOption, opts.Restarts)
	}
	return nil
}
