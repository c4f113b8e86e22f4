// Package tsp - RNG utilities for the randomized solver.
//
// This file centralizes random generation for simulated annealing.
//
// Goals:
//   - Determinism: same seed ⇒ identical draw sequence on every platform.
//   - Encapsulation: one RNG per solver invocation, created here; no global source.
//   - Reproducibility of unseeded runs: the drawn seed is reported back so any
//     run can be replayed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each invocation owns its *rand.Rand.
package tsp

import (
	"math/rand"
	"time"
)

// newRand returns a fresh deterministic *rand.Rand and the seed it was built from.
// Policy: a non-nil seed is used verbatim; nil draws a seed from the wall clock
// mixed through deriveSeed.
//
// Complexity: O(1).
func newRand(seed *int64) (*rand.Rand, int64) {
	var s int64
	if seed != nil {
		s = *seed
	} else {
		s = deriveSeed(time.Now().UnixNano(), 0)
	}

	return rand.New(rand.NewSource(s)), s
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// (SplitMix64 finalizer). Used for unseeded runs and by the experiment driver to
// derive per-run seeds from a base seed.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveSeed exposes deriveSeed for callers that fan one base seed out to many
// independent runs.
func DeriveSeed(base int64, run int) int64 { return deriveSeed(base, uint64(run)) }

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var (
		n = len(a)
		i int
		j int
	)
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// randomTour returns a uniformly random permutation of 0..n-1 drawn from rng.
//
// Complexity: O(n) time, O(n) space.
func randomTour(n int, rng *rand.Rand) Tour {
	t := IdentityTour(n)
	shuffleIntsInPlace(t, rng)

	return t
}

// pickTwoDistinct draws two distinct positions in [0, n) uniformly.
// Exactly two Intn calls are consumed. Requires n ≥ 2.
//
// Complexity: O(1).
func pickTwoDistinct(rng *rand.Rand, n int) (int, int) {
	var (
		i = rng.Intn(n)
		j = rng.Intn(n - 1)
	)
	if j >= i {
		j++
	}

	return i, j
}
