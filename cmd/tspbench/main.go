// Command tspbench runs a batch of solver experiments described by a YAML
// configuration and writes per-group .sol files plus a results report.
//
//	tspbench -config bench.yaml
//	tspbench -config bench.yaml -sweep inputs/atlanta.tsp -sweep-alg LS
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/tspkit/config"
	"github.com/katalvlaran/tspkit/experiment"
	"github.com/katalvlaran/tspkit/logger"
	"github.com/katalvlaran/tspkit/store"
	"github.com/katalvlaran/tspkit/tsp"
	"github.com/katalvlaran/tspkit/tsplib"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	configPath string
	prefix     string
	sweepKey   string
	sweepAlg   tsp.Algorithm
	logLevel   string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var (
		o        options
		fs       = flag.NewFlagSet("tspbench", flag.ContinueOnError)
		sweepAlg = fs.String("sweep-alg", "LS", "algorithm for the cutoff sweep")
	)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "YAML experiment configuration (required)")
	fs.StringVar(&o.prefix, "prefix", "", "override experiment.output_prefix")
	fs.StringVar(&o.sweepKey, "sweep", "", "instance key for a cutoff-vs-quality sweep instead of the batch")
	fs.StringVar(&o.logLevel, "log-level", "", "override log_level")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.configPath == "" {
		return o, errors.New("-config is required")
	}
	a, err := tsp.ParseAlgorithm(*sweepAlg)
	if err != nil {
		return o, err
	}
	o.sweepAlg = a
	if o.logLevel != "" && !logger.ValidLevel(o.logLevel) {
		return o, fmt.Errorf("-log-level must be debug, info, warn or error, got %q", o.logLevel)
	}

	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, "tspbench:", err)
		}
		return exitUsage
	}

	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		fmt.Fprintln(stderr, "tspbench:", err)
		return exitUsage
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.prefix != "" {
		cfg.Experiment.OutputPrefix = o.prefix
	}
	log, err := logger.NewFormat(cfg.LogFormat, cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "tspbench:", err)
		return exitUsage
	}
	if o.sweepKey != "" && len(cfg.Experiment.SweepCutoffs) == 0 {
		fmt.Fprintln(stderr, "tspbench: -sweep needs experiment.sweep_cutoffs")
		return exitUsage
	}

	s, err := cfg.Storage.Open(ctx)
	if err != nil {
		log.Error("storage unavailable", "error", err)
		return exitError
	}

	if o.sweepKey != "" {
		err = sweep(ctx, cfg, o, s, log, stdout)
	} else {
		err = batch(ctx, cfg, s, log, stdout)
	}
	if err != nil {
		log.Error("experiment failed", "error", err)
		return exitError
	}

	return exitOK
}

// buildPlan maps the experiment section onto an experiment.Plan.
func buildPlan(cfg *config.Config, log *slog.Logger) (experiment.Plan, error) {
	algos, err := cfg.Experiment.ParseAlgorithms()
	if err != nil {
		return experiment.Plan{}, err
	}
	cutoff, err := cfg.Experiment.GetCutoff()
	if err != nil {
		return experiment.Plan{}, err
	}

	return experiment.Plan{
		Instances:    cfg.Experiment.Instances,
		Algorithms:   algos,
		Cutoff:       cutoff,
		Seeds:        cfg.Experiment.Seeds,
		Runs:         cfg.Experiment.Runs,
		BaseSeed:     cfg.Experiment.BaseSeed,
		Parallelism:  cfg.Experiment.Parallelism,
		OutputPrefix: cfg.Experiment.OutputPrefix,
		Options:      cfg.Solver.Options(),
		Logger:       log,
	}, nil
}

func batch(ctx context.Context, cfg *config.Config, s store.Store, log *slog.Logger, stdout io.Writer) error {
	plan, err := buildPlan(cfg, log)
	if err != nil {
		return err
	}
	if len(plan.Instances) == 0 {
		keys, err := s.List(ctx, "")
		if err != nil {
			return err
		}
		for _, k := range keys {
			if tsplib.IsInstance(k) {
				plan.Instances = append(plan.Instances, k)
			}
		}
		log.Info("instances discovered", "count", humanize.Comma(int64(len(plan.Instances))))
	}

	sums, err := experiment.Run(ctx, plan, s, s)
	if err != nil {
		return err
	}
	keys, err := experiment.SaveReport(ctx, s, plan.OutputPrefix, sums)
	if err != nil {
		return err
	}
	log.Info("report written", "keys", keys)

	return experiment.WriteTable(stdout, sums)
}

func sweep(ctx context.Context, cfg *config.Config, o options, s store.Store, log *slog.Logger, stdout io.Writer) error {
	in, err := tsplib.LoadFrom(ctx, s, o.sweepKey)
	if err != nil {
		return err
	}
	cutoffs, err := cfg.Experiment.GetSweepCutoffs()
	if err != nil {
		return err
	}
	seed := tsp.SeedOf(cfg.Experiment.BaseSeed)

	points, err := experiment.Sweep(ctx, in, o.sweepAlg, cutoffs, seed, cfg.Solver.Options())
	if err != nil {
		return err
	}
	for _, p := range points {
		log.Info("sweep point", "cutoff", p.Cutoff, "length", p.Length, "complete", p.Complete)
	}

	var buf strings.Builder
	if err := experiment.WriteSweepCSV(&buf, in.Name(), o.sweepAlg, points); err != nil {
		return err
	}
	key := path.Join(cfg.Experiment.OutputPrefix, fmt.Sprintf("sweep_%s_%s.csv", in.Name(), o.sweepAlg))
	if err := s.Put(ctx, key, []byte(buf.String())); err != nil {
		return err
	}
	log.Info("sweep written", "key", key)

	_, err = io.WriteString(stdout, buf.String())
	return err
}
