package tsp

import "time"

// Annealing defaults. They are the constants the solver was tuned with in
// experiments, not derived values; override them through Options.Schedule.
const (
	DefaultInitialTemp = 100000.0
	DefaultAlpha       = 0.9999
	DefaultMinTemp     = 1e-4
)

// Deadline check cadences used when Options.CheckInterval is 0.
const (
	// DefaultBruteForceCheck reads the clock after every complete permutation.
	DefaultBruteForceCheck = 1

	// DefaultAnnealCheck reads the clock every 64 annealing steps.
	DefaultAnnealCheck = 64
)

// Schedule is a geometric cooling schedule: T starts at Initial, is multiplied
// by Alpha after every step, and annealing stops once T < Min.
type Schedule struct {
	Initial float64
	Alpha   float64
	Min     float64
}

// DefaultSchedule returns the documented default schedule.
func DefaultSchedule() Schedule {
	return Schedule{Initial: DefaultInitialTemp, Alpha: DefaultAlpha, Min: DefaultMinTemp}
}

// Progress is a snapshot handed to Options.Progress.
type Progress struct {
	Algorithm   Algorithm
	Iteration   int64
	Best        float64
	Temperature float64 // LS only
	Elapsed     time.Duration
}

// Options configures a solver invocation. The zero value is not useful;
// start from DefaultOptions.
type Options struct {
	// TimeLimit is the wall-clock budget. Required (>0) for BruteForce and
	// LocalSearch; Approximation uses it only to bound the optional 2-opt pass.
	TimeLimit time.Duration

	// Seed for LocalSearch; nil draws a nondeterministic seed.
	Seed *int64

	// CheckInterval is the number of iterations between clock reads.
	// 0 selects the per-solver default.
	CheckInterval int

	// Schedule drives simulated annealing.
	Schedule Schedule

	// TwoOptPolish runs a first-improvement 2-opt pass on the approximation tour.
	TwoOptPolish bool

	// Progress, when non-nil, is called synchronously every ProgressEvery iterations.
	Progress      func(Progress)
	ProgressEvery int64
}

// DefaultOptions returns options with the default schedule and cadences.
func DefaultOptions() Options {
	return Options{
		Schedule:      DefaultSchedule(),
		ProgressEvery: 10000,
	}
}

// SeedOf returns a pointer to s, for filling Options.Seed inline.
func SeedOf(s int64) *int64 { return &s }

// checkInterval resolves the effective clock-read cadence.
func (o Options) checkInterval(def int) int {
	if o.CheckInterval > 0 {
		return o.CheckInterval
	}

	return def
}

// report invokes the progress hook when one is installed and the cadence matches.
func (o Options) report(iter int64, p func() Progress) {
	if o.Progress == nil || o.ProgressEvery <= 0 || iter%o.ProgressEvery != 0 {
		return
	}
	o.Progress(p())
}
