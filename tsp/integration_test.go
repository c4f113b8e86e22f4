// Package tsp_test provides end-to-end checks through the Solve facade.
// Goals:
//  1. Every algorithm returns a valid tour whose length matches TourLength.
//  2. Brute force is never beaten by the two heuristics.
//  3. One Instance can be solved concurrently.
package tsp_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspkit/tsp"
)

func TestIntegration_UnitSquare_AllAlgorithms(t *testing.T) {
	in := unitSquare(t)

	bf, err := tsp.Solve(in, tsp.BruteForce, timeGenerous, nil)
	require.NoError(t, err)
	requireValidResult(t, in, bf)
	require.InDelta(t, 4.0, bf.Length, epsTiny)
	require.True(t, bf.Complete)

	approx, err := tsp.Solve(in, tsp.Approximation, timeGenerous, nil)
	require.NoError(t, err)
	requireValidResult(t, in, approx)
	require.Greater(t, approx.Length, 0.0)
	require.LessOrEqual(t, approx.Length, 8.0)
	require.False(t, approx.Complete)

	ls, err := tsp.Solve(in, tsp.LocalSearch, timeGenerous, tsp.SeedOf(seedDet))
	require.NoError(t, err)
	requireValidResult(t, in, ls)
	require.InDelta(t, 4.0, ls.Length, epsTiny)
	require.False(t, ls.Complete)
	require.Equal(t, seedDet, ls.Seed)
}

func TestIntegration_BruteForceIsNeverBeaten(t *testing.T) {
	in := rippledCircle(t, 8)

	bf, err := tsp.Solve(in, tsp.BruteForce, timeGenerous, nil)
	require.NoError(t, err)
	require.True(t, bf.Complete)

	for _, algo := range []tsp.Algorithm{tsp.Approximation, tsp.LocalSearch} {
		res, err := tsp.Solve(in, algo, timeGenerous, tsp.SeedOf(seedDet))
		require.NoError(t, err)
		requireValidResult(t, in, res)
		require.GreaterOrEqual(t, res.Length, bf.Length-epsTiny, algo)
	}
}

func TestIntegration_ConcurrentSolves(t *testing.T) {
	in := randomInstance(t, 40, 99)

	const workers = 8
	var (
		wg      sync.WaitGroup
		results = make([]tsp.Result, workers)
		errs    = make([]error, workers)
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			algo := tsp.Algorithms[1+w%2]
			results[w], errs[w] = tsp.Solve(in, algo, timeGenerous, tsp.SeedOf(int64(w)))
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		require.NoError(t, errs[w])
		requireValidResult(t, in, results[w])
	}
	// Approximation is deterministic regardless of the goroutine it ran on.
	require.Equal(t, results[0].Tour, results[2].Tour)
}
