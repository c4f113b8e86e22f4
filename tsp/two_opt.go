// Package tsp - 2-opt polish for constructed tours.
//
// TwoOpt performs deterministic first-improvement 2-opt on a cyclic tour:
// reversing segment [i..k] replaces edges (a,b),(c,d) by (a,c),(b,d) with
// a=T[i−1], b=T[i], c=T[k], d=T[k+1 mod n], and
// Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d).
//
// Design:
//   - Deterministic scanning order; no RNG.
//   - Position 0 is never moved, so the tour keeps its start.
//   - Only strict improvements beyond twoOptEps are applied, so the result is
//     never longer than the input.
//   - Soft time budget via periodic deadline checks.
//
// Complexity:
//   - One pass: O(n²) candidate checks; first-improvement restarts after each move.
//   - Each accepted move costs O(k−i).
package tsp

import "time"

// twoOptEps is the minimal gain for a move to count as an improvement.
const twoOptEps = 1e-12

// twoOptCheck is the clock-read cadence in candidate evaluations.
const twoOptCheck = 2048

// TwoOpt improves t in place until no improving move exists or limit expires
// (limit ≤ 0 means unbounded). It returns the number of accepted moves.
func TwoOpt(dist *DistanceTable, t Tour, limit time.Duration) int {
	var n = len(t)
	if n < 4 {
		return 0
	}

	var (
		dl       = newDeadline(time.Now(), limit, twoOptCheck)
		accepted int
	)
	for {
		improved := false

		var (
			a, b, c, d int
			delta      float64
			i, k       int
		)
	scan:
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				if dl.expired() {
					return accepted
				}
				a = t[i-1]
				b = t[i]
				c = t[k]
				d = t[(k+1)%n]

				delta = dist.At(a, c) + dist.At(b, d) - dist.At(a, b) - dist.At(c, d)
				if delta < -twoOptEps {
					reverseSegment(t, i, k)
					accepted++
					improved = true

					break scan
				}
			}
		}

		if !improved {
			return accepted
		}
	}
}
