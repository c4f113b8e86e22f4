package experiment

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/tspkit/solution"
	"github.com/katalvlaran/tspkit/tsp"
)

// SweepPoint is the outcome of one run at a given cutoff.
type SweepPoint struct {
	Cutoff   time.Duration
	Length   float64
	Complete bool
	Elapsed  time.Duration
}

// Sweep solves in once per cutoff, in the given order, with the same seed, and
// reports the best length reached under each budget. opts carries solver
// tuning; its TimeLimit and Seed are overwritten.
func Sweep(ctx context.Context, in *tsp.Instance, algo tsp.Algorithm, cutoffs []time.Duration, seed *int64, opts tsp.Options) ([]SweepPoint, error) {
	if !algo.Valid() {
		return nil, fmt.Errorf("%w: %q", tsp.ErrInvalidAlgorithm, algo)
	}

	out := make([]SweepPoint, 0, len(cutoffs))
	for _, c := range cutoffs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		opts.TimeLimit = c
		opts.Seed = seed

		res, err := tsp.SolveWithOptions(in, algo, opts)
		if err != nil {
			return nil, fmt.Errorf("cutoff %v: %w", c, err)
		}
		out = append(out, SweepPoint{Cutoff: c, Length: res.Length, Complete: res.Complete, Elapsed: res.Elapsed})
	}

	return out, nil
}

// WriteSweepCSV writes "Instance,Algorithm,Cutoff (s),Solution Quality,Full Tour" rows.
func WriteSweepCSV(w io.Writer, instance string, algo tsp.Algorithm, points []SweepPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Instance", "Algorithm", "Cutoff (s)", "Solution Quality", "Full Tour"}); err != nil {
		return err
	}
	for _, p := range points {
		if err := cw.Write([]string{
			instance,
			algo.String(),
			solution.FormatCutoff(p.Cutoff),
			fmt.Sprintf("%.2f", p.Length),
			yesNo(p.Complete),
		}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
