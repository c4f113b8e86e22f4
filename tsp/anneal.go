// Package tsp - simulated annealing over swap neighborhoods.
//
// State machine over a single evolving tour:
//
//	Init:    uniformly random permutation from a solver-owned seeded source;
//	         best := current; T := Schedule.Initial.
//	Iterate: draw two distinct positions and swap them (one candidate per step);
//	         Δ = cost(neighbor) − cost(current);
//	         Δ ≤ 0 is accepted, Δ > 0 is accepted iff U[0,1) < exp(−Δ/T);
//	         record a new best on strict improvement; T *= Schedule.Alpha.
//	Stop:    T < Schedule.Min, or the deadline expires. The best tour ever seen
//	         is returned, never merely the final current tour.
//
// Determinism:
//   - Per step the RNG is consumed in a fixed order: two Intn draws for the
//     positions, then one Float64 only when Δ > 0. Deadline polling consumes
//     nothing, so a seeded run whose deadline never fires is fully reproducible.
//
// Cost model:
//   - Δ is evaluated from the (at most four) edges touched by the swap.
//   - The running cost is resynchronised with a full table evaluation whenever
//     a new best is recorded, so reported lengths carry no accumulated drift.
package tsp

import (
	"math"
	"math/rand"
	"time"
)

// SolveAnneal runs simulated annealing on in.
//
// Errors: ErrInvalidInstance, ErrInvalidTimeBudget (opts.TimeLimit ≤ 0),
// ErrInvalidSchedule.
//
// Complexity: O(1) per step with a dense table; O(n) per recorded best.
func SolveAnneal(in *Instance, opts Options) (Result, error) {
	if err := validateInstance(in); err != nil {
		return Result{}, err
	}
	if err := validateOptions(LocalSearch, opts); err != nil {
		return Result{}, err
	}

	var (
		start     = time.Now()
		rng, seed = newRand(opts.Seed)
		n         = in.Len()
		dist      = NewDistanceTable(in)
		cur       = randomTour(n, rng)
		curCost   = dist.Length(cur)
	)

	res := Result{
		Algorithm: LocalSearch,
		Seed:      seed,
	}
	if n < 2 {
		res.Length = curCost
		res.Tour = cur
		res.StopReason = StopTrivial
		res.Elapsed = time.Since(start)

		return res, nil
	}

	var (
		dl       = newDeadline(start, opts.TimeLimit, opts.checkInterval(DefaultAnnealCheck))
		sched    = opts.Schedule
		temp     = sched.Initial
		best     = cur.Clone()
		bestCost = curCost
		steps    int64
		reason   = StopFrozen
		i, j     int
		delta    float64
	)
	for temp >= sched.Min {
		if dl.expired() {
			reason = StopDeadline
			break
		}
		steps++

		i, j = pickTwoDistinct(rng, n)
		delta = swapDelta(dist, cur, i, j)
		if accept(rng, delta, temp) {
			cur[i], cur[j] = cur[j], cur[i]
			curCost += delta
			if curCost < bestCost {
				curCost = dist.Length(cur)
				if curCost < bestCost {
					bestCost = curCost
					copy(best, cur)
				}
			}
		}

		temp *= sched.Alpha
		opts.report(steps, func() Progress {
			return Progress{Algorithm: LocalSearch, Iteration: steps, Best: bestCost, Temperature: temp, Elapsed: dl.elapsed()}
		})
	}

	res.Length = bestCost
	res.Tour = best
	res.Iterations = steps
	res.StopReason = reason
	res.Elapsed = time.Since(start)

	return res, nil
}

// accept applies the Metropolis criterion. A uniform draw is consumed only
// when delta > 0.
func accept(rng *rand.Rand, delta, temp float64) bool {
	if delta <= 0 {
		return true
	}

	return rng.Float64() < math.Exp(-delta/temp)
}

// swapDelta returns cost(t with positions i,j swapped) − cost(t), looking only
// at the edges that start at positions i−1, i, j−1, j (mod n). Duplicates are
// dropped so adjacent and wrap-around swaps are counted once. t is restored
// before returning.
//
// Complexity: O(1).
func swapDelta(dist *DistanceTable, t Tour, i, j int) float64 {
	var (
		n     = len(t)
		cand  = [4]int{(i - 1 + n) % n, i, (j - 1 + n) % n, j}
		edges [4]int
		m     int
		k, q  int
		dup   bool
	)
	for k = 0; k < 4; k++ {
		dup = false
		for q = 0; q < m; q++ {
			if edges[q] == cand[k] {
				dup = true
				break
			}
		}
		if !dup {
			edges[m] = cand[k]
			m++
		}
	}

	var before, after float64
	for k = 0; k < m; k++ {
		before += dist.At(t[edges[k]], t[(edges[k]+1)%n])
	}
	t[i], t[j] = t[j], t[i]
	for k = 0; k < m; k++ {
		after += dist.At(t[edges[k]], t[(edges[k]+1)%n])
	}
	t[i], t[j] = t[j], t[i]

	return after - before
}
