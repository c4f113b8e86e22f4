package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tspkit/solution"
	"github.com/katalvlaran/tspkit/store"
	"github.com/katalvlaran/tspkit/tsp"
	"github.com/katalvlaran/tspkit/tsplib"
)

// Summary aggregates all runs of one algorithm on one instance.
type Summary struct {
	Instance  string
	Algorithm tsp.Algorithm
	Runs      int

	MeanLength   float64
	StdDevLength float64
	BestLength   float64
	WorstLength  float64
	MedianLength float64
	MeanElapsed  time.Duration

	// RelError is (MeanLength − BestLength) / BestLength · 100.
	RelError float64
	// Complete reports whether the best run finished its enumeration.
	Complete bool

	BestTour tsp.Tour
	BestSeed *int64
	// BestKey is the store key the best run was saved under.
	BestKey string
}

// job is one solver invocation.
type job struct {
	group int
	inst  *tsp.Instance
	algo  tsp.Algorithm
	seed  *int64
}

// Run executes p, reading instances from src and saving the best .sol of each
// group to dst. Summaries come back in (instance, algorithm) plan order.
// Cancelling ctx stops scheduling further runs and returns ctx's error.
func Run(ctx context.Context, p Plan, src, dst store.Store) ([]Summary, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	log := p.log()

	instances := make([]*tsp.Instance, len(p.Instances))
	for i, key := range p.Instances {
		in, err := tsplib.LoadFrom(ctx, src, key)
		if err != nil {
			return nil, err
		}
		instances[i] = in
		log.Debug("instance loaded", "key", key, "name", in.Name(), "points", in.Len())
	}

	var (
		jobs   []job
		groups = len(instances) * len(p.Algorithms)
	)
	for i, in := range instances {
		for a, algo := range p.Algorithms {
			for _, seed := range p.runsFor(algo) {
				jobs = append(jobs, job{group: i*len(p.Algorithms) + a, inst: in, algo: algo, seed: seed})
			}
		}
	}

	results := make([]tsp.Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.parallelism())

	for j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			jb := jobs[j]
			opts := p.Options
			opts.TimeLimit = p.Cutoff
			opts.Seed = jb.seed
			opts.Progress = nil

			res, err := tsp.SolveWithOptions(jb.inst, jb.algo, opts)
			if err != nil {
				return fmt.Errorf("%s/%s: %w", jb.inst.Name(), jb.algo, err)
			}
			results[j] = res
			log.Info("run finished",
				"instance", jb.inst.Name(),
				"algorithm", jb.algo,
				"seed", res.Seed,
				"length", res.Length,
				"elapsed", res.Elapsed,
				"stop", res.StopReason)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	byGroup := make([][]int, groups)
	for j := range jobs {
		byGroup[jobs[j].group] = append(byGroup[jobs[j].group], j)
	}

	out := make([]Summary, 0, groups)
	for gi, idx := range byGroup {
		first := jobs[idx[0]]
		sum, best, err := summarize(first.inst.Name(), first.algo, jobs, results, idx)
		if err != nil {
			return nil, err
		}

		rec := solution.FromResult(first.inst.Name(), p.Cutoff, jobs[best].seed, results[best])
		key, err := solution.Save(ctx, dst, p.OutputPrefix, rec)
		if err != nil {
			return nil, err
		}
		sum.BestKey = key
		out = append(out, sum)

		log.Info("group summarized",
			"group", gi,
			"instance", sum.Instance,
			"algorithm", sum.Algorithm,
			"runs", sum.Runs,
			"best", sum.BestLength,
			"mean", sum.MeanLength,
			"rel_error", sum.RelError,
			"solution", key)
	}

	return out, nil
}

// summarize computes the statistics of the runs listed in idx and returns the
// index (into jobs) of the best one. The first run wins ties.
func summarize(instance string, algo tsp.Algorithm, jobs []job, results []tsp.Result, idx []int) (Summary, int, error) {
	var (
		lengths = make(stats.Float64Data, len(idx))
		elapsed time.Duration
		best    = idx[0]
	)
	for k, j := range idx {
		lengths[k] = results[j].Length
		elapsed += results[j].Elapsed
		if results[j].Length < results[best].Length {
			best = j
		}
	}

	mean, err := stats.Mean(lengths)
	if err != nil {
		return Summary{}, 0, fmt.Errorf("mean of %s/%s: %w", instance, algo, err)
	}
	sd, err := stats.StandardDeviation(lengths)
	if err != nil {
		return Summary{}, 0, fmt.Errorf("stddev of %s/%s: %w", instance, algo, err)
	}
	median, err := stats.Median(lengths)
	if err != nil {
		return Summary{}, 0, fmt.Errorf("median of %s/%s: %w", instance, algo, err)
	}
	worst, err := stats.Max(lengths)
	if err != nil {
		return Summary{}, 0, fmt.Errorf("max of %s/%s: %w", instance, algo, err)
	}

	bestRes := results[best]
	s := Summary{
		Instance:     instance,
		Algorithm:    algo,
		Runs:         len(idx),
		MeanLength:   mean,
		StdDevLength: sd,
		BestLength:   bestRes.Length,
		WorstLength:  worst,
		MedianLength: median,
		MeanElapsed:  elapsed / time.Duration(len(idx)),
		RelError:     relError(mean, bestRes.Length),
		Complete:     bestRes.Complete,
		BestTour:     bestRes.Tour.Clone(),
	}
	if jobs[best].seed != nil {
		seed := *jobs[best].seed
		s.BestSeed = &seed
	}

	return s, best, nil
}

// relError returns the percentage by which mean exceeds best; 0 when best is 0.
func relError(mean, best float64) float64 {
	if best == 0 {
		return 0
	}

	return (mean - best) / best * 100
}
