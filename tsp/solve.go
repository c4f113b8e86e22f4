// Package tsp - unified dispatcher for TSP solvers.
//
// This file provides the canonical entry points:
//
//   - Solve: the uniform facade (instance, algorithm, budget, optional seed).
//   - SolveWithOptions: same routing with full control over Options.
//
// Design principles:
//   - Validation happens before any work: an unknown algorithm fails with
//     ErrInvalidAlgorithm and no distance table is built.
//   - Strict sentinels: only errors from types.go.
//   - Elapsed is measured around the whole dispatched call.
package tsp

import "time"

// Solve runs algo on in with the given budget. The budget is forwarded to
// BruteForce and LocalSearch (where it must be positive) and only bounds the
// optional polish of Approximation. seed is used by LocalSearch only; nil
// requests a nondeterministic seed (reported back in Result.Seed).
//
// Errors: ErrInvalidAlgorithm, ErrInvalidTimeBudget, ErrInvalidInstance.
func Solve(in *Instance, algo Algorithm, budget time.Duration, seed *int64) (Result, error) {
	opts := DefaultOptions()
	opts.TimeLimit = budget
	opts.Seed = seed

	return SolveWithOptions(in, algo, opts)
}

// SolveWithOptions validates algo and routes to the matching solver.
func SolveWithOptions(in *Instance, algo Algorithm, opts Options) (Result, error) {
	if !algo.Valid() {
		return Result{}, ErrInvalidAlgorithm
	}
	if algo == Approximation && opts.TimeLimit < 0 {
		// Approximation ignores the budget, so a negative one is dropped
		// rather than rejected.
		opts.TimeLimit = 0
	}

	var (
		start = time.Now()
		res   Result
		err   error
	)
	switch algo {
	case BruteForce:
		res, err = SolveBruteForce(in, opts)
	case Approximation:
		res, err = SolveApprox(in, opts)
	case LocalSearch:
		res, err = SolveAnneal(in, opts)
	}
	if err != nil {
		return Result{}, err
	}
	res.Elapsed = time.Since(start)

	return res, nil
}
