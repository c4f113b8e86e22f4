// Command tspsolve runs one solver on one TSPLIB instance and writes the
// result as a .sol file.
//
//	tspsolve -inst DATA/Atlanta.tsp -alg LS -time 30 -seed 7
//
// Exit status is 0 on success, 2 on invalid flags and 1 when the instance
// cannot be read or the solver fails.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/tspkit/config"
	"github.com/katalvlaran/tspkit/logger"
	"github.com/katalvlaran/tspkit/solution"
	"github.com/katalvlaran/tspkit/store"
	"github.com/katalvlaran/tspkit/tsp"
	"github.com/katalvlaran/tspkit/tsplib"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// progressInterval throttles progress log lines.
const progressInterval = 2 * time.Second

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	inst       string
	alg        tsp.Algorithm
	budget     time.Duration
	seed       *int64
	out        string
	outSet     bool
	configPath string
	logLevel   string
	logFormat  string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var (
		o       options
		fs      = flag.NewFlagSet("tspsolve", flag.ContinueOnError)
		alg     = fs.String("alg", "", "algorithm: BF, Approx or LS")
		seconds = fs.Float64("time", 0, "cutoff in seconds (required for BF and LS)")
		seed    = fs.Int64("seed", 0, "random seed for LS (default: drawn and reported)")
	)
	fs.SetOutput(stderr)
	fs.StringVar(&o.inst, "inst", "", "path to a TSPLIB instance (.tsp, optionally .gz/.zst/.lz4)")
	fs.StringVar(&o.out, "out", "output", "output directory; results go to <out>/<ALG>/")
	fs.StringVar(&o.configPath, "config", "", "optional YAML configuration")
	fs.StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	fs.StringVar(&o.logFormat, "log-format", "", "text or json (overrides config)")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	o.outSet = set["out"]

	if o.inst == "" {
		return o, errors.New("-inst is required")
	}
	a, err := tsp.ParseAlgorithm(*alg)
	if err != nil {
		return o, err
	}
	o.alg = a

	if math.IsNaN(*seconds) || math.IsInf(*seconds, 0) || *seconds < 0 {
		return o, fmt.Errorf("-time must be a non-negative number of seconds, got %v", *seconds)
	}
	if *seconds > float64(math.MaxInt64)/float64(time.Second) {
		return o, fmt.Errorf("-time %v is out of range", *seconds)
	}
	o.budget = time.Duration(*seconds * float64(time.Second))
	if a.TimeBounded() && o.budget <= 0 {
		return o, fmt.Errorf("-time is required for %s", a)
	}
	if o.logLevel != "" && !logger.ValidLevel(o.logLevel) {
		return o, fmt.Errorf("-log-level must be debug, info, warn or error, got %q", o.logLevel)
	}
	if set["seed"] {
		o.seed = tsp.SeedOf(*seed)
	}

	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, "tspsolve:", err)
		}
		return exitUsage
	}

	cfg := config.Default()
	if o.configPath != "" {
		if cfg, err = config.LoadConfig(o.configPath); err != nil {
			fmt.Fprintln(stderr, "tspsolve:", err)
			return exitUsage
		}
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.logFormat != "" {
		cfg.LogFormat = o.logFormat
	}
	log, err := logger.NewFormat(cfg.LogFormat, cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "tspsolve:", err)
		return exitUsage
	}

	if err := solve(ctx, o, cfg, log, stdout); err != nil {
		log.Error("solve failed", "error", err)
		return exitError
	}

	return exitOK
}

func solve(ctx context.Context, o options, cfg *config.Config, log *slog.Logger, stdout io.Writer) error {
	in, err := tsplib.Load(o.inst)
	if err != nil {
		return err
	}
	log.Info("instance loaded", "name", in.Name(), "points", humanize.Comma(int64(in.Len())))

	opts := cfg.Solver.Options()
	opts.TimeLimit = o.budget
	opts.Seed = o.seed
	sometimes := rate.Sometimes{Interval: progressInterval}
	opts.Progress = func(p tsp.Progress) {
		sometimes.Do(func() {
			log.Info("progress",
				"algorithm", p.Algorithm,
				"iteration", humanize.Comma(p.Iteration),
				"best", p.Best,
				"temperature", p.Temperature,
				"elapsed", p.Elapsed)
		})
	}

	res, err := tsp.SolveWithOptions(in, o.alg, opts)
	if err != nil {
		return err
	}
	log.Info("solved",
		"algorithm", res.Algorithm,
		"length", res.Length,
		"complete", res.Complete,
		"stop", res.StopReason,
		"iterations", humanize.Comma(res.Iterations),
		"elapsed", res.Elapsed)

	dst, prefix, err := output(ctx, o, cfg)
	if err != nil {
		return err
	}
	rec := solution.FromResult(in.Name(), o.budget, o.seed, res)
	key, err := solution.Save(ctx, dst, prefix, rec)
	if err != nil {
		return err
	}
	log.Info("solution written", "key", key)

	var buf bytes.Buffer
	if err := solution.Write(&buf, rec); err != nil {
		return err
	}
	_, err = stdout.Write(buf.Bytes())

	return err
}

// output picks the result store: -out when given or when no config file is
// used, otherwise the configured storage under its output prefix.
func output(ctx context.Context, o options, cfg *config.Config) (store.Store, string, error) {
	if o.outSet || o.configPath == "" {
		return store.NewLocalStore(o.out), "", nil
	}
	s, err := cfg.Storage.Open(ctx)
	if err != nil {
		return nil, "", err
	}

	return s, cfg.Experiment.OutputPrefix, nil
}
