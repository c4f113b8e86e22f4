// Package experiment drives batches of solver runs and summarizes them.
//
// A Plan names instances (store keys), algorithms, a cutoff and the seeds for
// LocalSearch. Run solves every (instance, algorithm, seed) combination,
// bounded by Plan.Parallelism concurrent invocations, saves the best run of
// each group as a .sol file and returns one Summary per group. WriteCSV and
// WriteTable render summaries; Sweep measures solution quality as a function
// of the cutoff.
//
// Each invocation stays single-threaded; parallelism here only overlaps
// independent runs.
package experiment
