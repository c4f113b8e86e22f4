// Package tsp_test benchmarks the solvers and their hot helpers.
//
// Policy:
//   - Deterministic geometry (rippled circles, seeded random points).
//   - All inputs are built outside the timer; only the algorithmic core is measured.
//   - Brute force stays small enough to exhaust quickly.
package tsp_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/tspkit/tsp"
)

func BenchmarkBruteForce_n9(b *testing.B) {
	in := rippledCircle(b, 9)
	opts := tsp.DefaultOptions()
	opts.TimeLimit = time.Minute

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.SolveBruteForce(in, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkApprox_n500(b *testing.B) {
	in := randomInstance(b, 500, seedDet)
	opts := tsp.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.SolveApprox(in, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkApproxTwoOpt_n200(b *testing.B) {
	in := randomInstance(b, 200, seedDet)
	opts := tsp.DefaultOptions()
	opts.TwoOptPolish = true

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.SolveApprox(in, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAnneal_n100_ShortSchedule(b *testing.B) {
	in := randomInstance(b, 100, seedDet)
	opts := tsp.DefaultOptions()
	opts.TimeLimit = time.Minute
	opts.Seed = tsp.SeedOf(seedDet)
	opts.Schedule = tsp.Schedule{Initial: 1000, Alpha: 0.999, Min: 1e-2}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.SolveAnneal(in, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDistanceTable_n1000(b *testing.B) {
	in := randomInstance(b, 1000, seedDet)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tsp.NewDistanceTable(in)
	}
}

func BenchmarkTourLength_n1000(b *testing.B) {
	in := randomInstance(b, 1000, seedDet)
	dist := tsp.NewDistanceTable(in)
	tour := tsp.IdentityTour(in.Len())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dist.Length(tour)
	}
}
