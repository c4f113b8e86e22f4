// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspkit/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny is the tolerance for comparing independently summed lengths.
	epsTiny = 1e-9

	// seedDet is a deterministic seed for annealing runs.
	seedDet = int64(42)

	// timeGenerous is a budget that never fires on the instance sizes used here.
	timeGenerous = 30 * time.Second

	// timeTiny is a budget that expires almost immediately.
	timeTiny = time.Nanosecond
)

// -----------------------------------------------------------------------------
// Instance generators
// -----------------------------------------------------------------------------

// mustInstance builds an instance from raw coordinates or fails the test.
func mustInstance(t testing.TB, coords [][2]float64) *tsp.Instance {
	t.Helper()
	in, err := tsp.FromCoords("test", coords)
	require.NoError(t, err)

	return in
}

// unitSquare has the perimeter, 4.0, as its optimum.
func unitSquare(t testing.TB) *tsp.Instance {
	return mustInstance(t, [][2]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}})
}

// rippledCircle places n points on a slightly perturbed circle to avoid ties.
func rippledCircle(t testing.TB, n int) *tsp.Instance {
	t.Helper()
	pts := make([][2]float64, n)

	var (
		i     int
		th, r float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 10.0 + 0.25*float64((i*5)%7)
		pts[i] = [2]float64{r * math.Cos(th), r * math.Sin(th)}
	}

	return mustInstance(t, pts)
}

// randomInstance draws n points uniformly from a 100×100 box.
func randomInstance(t testing.TB, n int, seed int64) *tsp.Instance {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	pts := make([][2]float64, n)
	var i int
	for i = range pts {
		pts[i] = [2]float64{rng.Float64() * 100, rng.Float64() * 100}
	}

	return mustInstance(t, pts)
}

// -----------------------------------------------------------------------------
// Oracles
// -----------------------------------------------------------------------------

// exhaustiveOptimum is an independent recursive oracle: it tries every
// permutation of 1..n-1 behind 0 and returns the minimum cyclic length.
func exhaustiveOptimum(in *tsp.Instance) float64 {
	n := in.Len()
	if n < 2 {
		return 0
	}
	rest := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		rest = append(rest, i)
	}
	best := math.Inf(1)
	used := make([]bool, n)
	path := tsp.Tour{0}

	var rec func()
	rec = func() {
		if len(path) == n {
			if l := tsp.TourLength(in, path); l < best {
				best = l
			}
			return
		}
		for _, v := range rest {
			if used[v] {
				continue
			}
			used[v] = true
			path = append(path, v)
			rec()
			path = path[:len(path)-1]
			used[v] = false
		}
	}
	rec()

	return best
}

// requireValidResult checks the invariants every Result must satisfy.
func requireValidResult(t *testing.T, in *tsp.Instance, res tsp.Result) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(res.Tour, in.Len()))
	require.InDelta(t, tsp.TourLength(in, res.Tour), res.Length, epsTiny)
	require.GreaterOrEqual(t, res.Elapsed, time.Duration(0))
}
