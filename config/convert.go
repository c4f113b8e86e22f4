package config

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tspkit/store"
	"github.com/katalvlaran/tspkit/store/miniostore"
	"github.com/katalvlaran/tspkit/store/s3store"
	"github.com/katalvlaran/tspkit/tsp"
)

// TSPSchedule converts the schedule section.
func (s Solver) TSPSchedule() tsp.Schedule {
	return tsp.Schedule{Initial: s.Schedule.Initial, Alpha: s.Schedule.Alpha, Min: s.Schedule.Min}
}

// Options returns solver options carrying the configured tuning. The time
// limit and seed are left for the caller.
func (s Solver) Options() tsp.Options {
	opts := tsp.DefaultOptions()
	opts.CheckInterval = s.CheckInterval
	opts.ProgressEvery = s.ProgressEvery
	opts.TwoOptPolish = s.TwoOptPolish
	opts.Schedule = s.TSPSchedule()

	return opts
}

// ParseAlgorithms resolves the algorithm selectors.
func (e Experiment) ParseAlgorithms() ([]tsp.Algorithm, error) {
	if len(e.Algorithms) == 0 {
		return nil, fmt.Errorf("at least one algorithm must be listed")
	}
	out := make([]tsp.Algorithm, 0, len(e.Algorithms))
	seen := make(map[tsp.Algorithm]bool)
	for _, s := range e.Algorithms {
		a, err := tsp.ParseAlgorithm(s)
		if err != nil {
			return nil, err
		}
		if seen[a] {
			return nil, fmt.Errorf("duplicate algorithm: %s", a)
		}
		seen[a] = true
		out = append(out, a)
	}

	return out, nil
}

// Open connects the configured store.
func (s Storage) Open(ctx context.Context) (store.Store, error) {
	switch s.Kind {
	case "minio":
		return miniostore.Dial(ctx, miniostore.Options{
			Endpoint:     s.Endpoint,
			Bucket:       s.Bucket,
			Prefix:       s.Prefix,
			AccessKeyEnv: s.AccessKeyEnv,
			SecretKeyEnv: s.SecretKeyEnv,
			Secure:       s.Secure,
		})
	case "s3":
		return s3store.Dial(ctx, s3store.Options{
			Bucket:    s.Bucket,
			Prefix:    s.Prefix,
			Region:    s.Region,
			Endpoint:  s.Endpoint,
			PathStyle: s.PathStyle,
		})
	case "local", "":
		return store.NewLocalStore(s.Root), nil
	default:
		return nil, fmt.Errorf("invalid storage kind: %s", s.Kind)
	}
}
