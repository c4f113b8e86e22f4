package experiment

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/katalvlaran/tspkit/logger"
	"github.com/katalvlaran/tspkit/tsp"
)

// ErrInvalidPlan is returned for plans that cannot be run.
var ErrInvalidPlan = errors.New("experiment: invalid plan")

// Plan describes one batch of runs.
type Plan struct {
	// Instances are store keys of TSPLIB files.
	Instances []string
	// Algorithms to run on every instance.
	Algorithms []tsp.Algorithm
	// Cutoff is the per-run budget.
	Cutoff time.Duration

	// Seeds lists the LocalSearch seeds explicitly. When empty, Runs seeds
	// are derived from BaseSeed.
	Seeds    []int64
	Runs     int
	BaseSeed int64

	// Parallelism bounds the number of concurrent solver invocations.
	Parallelism int
	// OutputPrefix is the store prefix for .sol files.
	OutputPrefix string

	// Options carries solver tuning; TimeLimit and Seed are overwritten per run.
	Options tsp.Options

	// Logger receives per-run events; nil uses logger.Default.
	Logger *slog.Logger
}

// Validate checks that p can be run.
func (p Plan) Validate() error {
	if len(p.Instances) == 0 {
		return fmt.Errorf("%w: no instances", ErrInvalidPlan)
	}
	if len(p.Algorithms) == 0 {
		return fmt.Errorf("%w: no algorithms", ErrInvalidPlan)
	}
	for _, a := range p.Algorithms {
		if !a.Valid() {
			return fmt.Errorf("%w: %w: %q", ErrInvalidPlan, tsp.ErrInvalidAlgorithm, a)
		}
	}
	if p.Cutoff <= 0 {
		return fmt.Errorf("%w: %w: cutoff %v", ErrInvalidPlan, tsp.ErrInvalidTimeBudget, p.Cutoff)
	}
	if slices.Contains(p.Algorithms, tsp.LocalSearch) && len(p.Seeds) == 0 && p.Runs <= 0 {
		return fmt.Errorf("%w: no local search runs", ErrInvalidPlan)
	}

	return nil
}

// SeedList returns the LocalSearch seeds in run order.
func (p Plan) SeedList() []int64 {
	if len(p.Seeds) > 0 {
		out := make([]int64, len(p.Seeds))
		copy(out, p.Seeds)
		return out
	}
	out := make([]int64, p.Runs)
	for i := range out {
		out[i] = tsp.DeriveSeed(p.BaseSeed, i)
	}

	return out
}

// runsFor returns the seeds to use for algo. Only LocalSearch depends on a
// seed; the other algorithms run once.
func (p Plan) runsFor(algo tsp.Algorithm) []*int64 {
	if algo != tsp.LocalSearch {
		return []*int64{nil}
	}
	seeds := p.SeedList()
	out := make([]*int64, len(seeds))
	for i := range seeds {
		out[i] = &seeds[i]
	}

	return out
}

func (p Plan) parallelism() int {
	if p.Parallelism > 0 {
		return p.Parallelism
	}

	return 1
}

func (p Plan) log() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}

	return logger.Default
}
