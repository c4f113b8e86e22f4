// Package tsp - validation utilities shared by the facade and solvers.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
package tsp

import (
	"fmt"
	"math"
)

// validateInstance guards against nil or empty instances reaching a solver.
// NewInstance already enforces this; the check covers zero-value Instances.
func validateInstance(in *Instance) error {
	if in == nil || len(in.points) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidInstance)
	}

	return nil
}

// validateOptions checks Options against the needs of algo.
//
// Complexity: O(1).
func validateOptions(algo Algorithm, opts Options) error {
	if opts.TimeLimit < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTimeBudget, opts.TimeLimit)
	}
	if algo.TimeBounded() && opts.TimeLimit == 0 {
		return fmt.Errorf("%w: %s requires a positive budget", ErrInvalidTimeBudget, algo)
	}
	if opts.CheckInterval < 0 {
		return fmt.Errorf("%w: negative check interval %d", ErrInvalidTimeBudget, opts.CheckInterval)
	}
	if algo == LocalSearch {
		return opts.Schedule.Validate()
	}

	return nil
}

// Validate checks the schedule domain: Initial > 0, Min > 0, 0 < Alpha < 1,
// all finite.
func (s Schedule) Validate() error {
	if !finite(s.Initial) || s.Initial <= 0 {
		return fmt.Errorf("%w: initial temperature %v", ErrInvalidSchedule, s.Initial)
	}
	if !finite(s.Min) || s.Min <= 0 {
		return fmt.Errorf("%w: minimum temperature %v", ErrInvalidSchedule, s.Min)
	}
	if math.IsNaN(s.Alpha) || s.Alpha <= 0 || s.Alpha >= 1 {
		return fmt.Errorf("%w: cooling factor %v", ErrInvalidSchedule, s.Alpha)
	}

	return nil
}

// Steps returns the number of annealing steps the schedule allows before
// freezing, ignoring any deadline: the count of k ≥ 0 with Initial·Alpha^k ≥ Min.
func (s Schedule) Steps() int64 {
	if s.Validate() != nil || s.Initial < s.Min {
		return 0
	}

	return int64(math.Floor(math.Log(s.Min/s.Initial)/math.Log(s.Alpha))) + 1
}
