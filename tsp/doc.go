// Package tsp provides Euclidean Travelling Salesman Problem solvers.
//
// Three interchangeable algorithms run over an immutable *Instance:
//
//	SolveBruteForce  exhaustive enumeration under a fixed start, O(n·(n−1)!);
//	                 stops at its deadline with the best tour so far.
//	SolveApprox      MST + preorder walk, ≤ 2·OPT, O(n²).
//	SolveAnneal      simulated annealing over swap moves, O(1) per step,
//	                 bounded by its schedule and deadline; seeded runs replay.
//
// Solve is the uniform facade: it validates the algorithm and budget, runs one
// solver and returns a Result holding the best tour, its length, elapsed time
// and whether the enumeration was exhaustive.
//
// Every invocation owns its working tour, distance table and random source, so
// one Instance can be solved concurrently by many goroutines. Nothing in this
// package logs or touches global state.
package tsp
