package tsp

import "time"

// SolveBruteForce finds an optimal tour by enumerating every permutation of
// the indices 1..n-1 behind a fixed start 0. Fixing the start loses no distinct
// tour, since tour length is rotation invariant, and divides the work by n.
//
// Enumeration uses an iterative lexicographic next-permutation, beginning with
// the identity order, so the identity tour is always the first candidate and
// the result is never worse than it. The best tour is replaced only on a strict
// improvement (first found wins on ties).
//
// The deadline is polled after each complete permutation (or every
// opts.CheckInterval permutations). On expiry the best tour so far is returned
// with Complete=false; exhausting the enumeration yields Complete=true and a
// globally optimal tour.
//
// Errors: ErrInvalidInstance, ErrInvalidTimeBudget (opts.TimeLimit ≤ 0).
//
// Time:  O(n · (n-1)!) without a deadline.
// Space: O(n) plus the distance table.
func SolveBruteForce(in *Instance, opts Options) (Result, error) {
	if err := validateInstance(in); err != nil {
		return Result{}, err
	}
	if err := validateOptions(BruteForce, opts); err != nil {
		return Result{}, err
	}

	var (
		start = time.Now()
		dl    = newDeadline(start, opts.TimeLimit, opts.checkInterval(DefaultBruteForceCheck))
		dist  = NewDistanceTable(in)
		cur   = IdentityTour(in.Len())
	)

	var (
		best     = cur.Clone()
		bestLen  = dist.Length(cur)
		evals    = int64(1)
		complete bool
		length   float64
	)
	for {
		if !nextPermutation(cur[1:]) {
			complete = true
			break
		}
		if dl.expired() {
			break
		}
		length = dist.Length(cur)
		evals++
		if length < bestLen {
			bestLen = length
			copy(best, cur)
		}
		opts.report(evals, func() Progress {
			return Progress{Algorithm: BruteForce, Iteration: evals, Best: bestLen, Elapsed: dl.elapsed()}
		})
	}

	res := Result{
		Algorithm:  BruteForce,
		Length:     bestLen,
		Tour:       best,
		Elapsed:    time.Since(start),
		Complete:   complete,
		Iterations: evals,
		StopReason: StopExhausted,
	}
	if !complete {
		res.StopReason = StopDeadline
	}

	return res, nil
}

// nextPermutation rearranges a into the lexicographically next permutation and
// reports whether one existed. On false, a is left in its last (descending)
// order.
//
// Complexity: O(len(a)) worst case, O(1) amortized.
func nextPermutation(a []int) bool {
	var (
		n = len(a)
		i = n - 2
		j int
	)
	// Longest non-increasing suffix starts at i+1.
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	// Rightmost successor of the pivot.
	j = n - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	reverseSegment(a, i+1, n-1)

	return true
}
