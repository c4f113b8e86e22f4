// Package tsp - MST-doubling 2-approximation.
//
// SolveApprox computes a tour for the metric TSP in three steps:
//
//  1. Minimum Spanning Tree rooted at 0 (Prim, see mst.go).
//  2. Preorder walk of the tree, children in ascending index order.
//  3. Tour length of the walk.
//
// Mathematical guarantee:
//   - The preorder walk shortcuts a doubled MST; with the triangle inequality its
//     length is ≤ 2·w(MST) ≤ 2·OPT. Euclidean instances are metric.
//
// Options notes:
//   - No RNG is used; determinism is intrinsic.
//   - opts.TimeLimit is accepted for interface uniformity. It only bounds the
//     optional 2-opt post-pass (opts.TwoOptPolish), which never lengthens the
//     tour, so the 2·OPT bound holds either way.
//
// Returned value:
//   - Complete is always false; LowerBound carries w(MST).
//
// Complexity: O(n²) time, O(n²) space for the distance table.
package tsp

import "time"

// SolveApprox runs the MST + preorder approximation on in.
//
// Errors: ErrInvalidInstance, ErrInvalidTimeBudget (negative budget).
func SolveApprox(in *Instance, opts Options) (Result, error) {
	if err := validateInstance(in); err != nil {
		return Result{}, err
	}
	if err := validateOptions(Approximation, opts); err != nil {
		return Result{}, err
	}

	var (
		start = time.Now()
		dist  = NewDistanceTable(in)
		tree  = MinimumSpanningTree(dist)
		tour  = tree.Preorder()
	)
	if opts.TwoOptPolish {
		var remaining time.Duration
		if opts.TimeLimit > 0 {
			remaining = opts.TimeLimit - time.Since(start)
			if remaining <= 0 {
				remaining = time.Nanosecond
			}
		}
		TwoOpt(dist, tour, remaining)
	}

	return Result{
		Algorithm:  Approximation,
		Length:     dist.Length(tour),
		Tour:       tour,
		Elapsed:    time.Since(start),
		Complete:   false,
		StopReason: StopConstructed,
		LowerBound: tree.Weight,
	}, nil
}
