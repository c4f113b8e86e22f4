package config

import (
	"fmt"
	"time"
)

// Config is the top-level configuration shared by tspsolve and tspbench.
type Config struct {
	LogLevel   string     `yaml:"log_level"`
	LogFormat  string     `yaml:"log_format"`
	Solver     Solver     `yaml:"solver"`
	Experiment Experiment `yaml:"experiment"`
	Storage    Storage    `yaml:"storage"`
}

// Solver tunes the solver layer.
type Solver struct {
	CheckInterval int      `yaml:"check_interval"` // 0 => per-solver default
	ProgressEvery int64    `yaml:"progress_every"`
	TwoOptPolish  bool     `yaml:"two_opt_polish"`
	Schedule      Schedule `yaml:"schedule"`
}

// Schedule is the annealing cooling schedule.
type Schedule struct {
	Initial float64 `yaml:"initial"`
	Alpha   float64 `yaml:"alpha"`
	Min     float64 `yaml:"min"`
}

// Experiment describes a batch of solver runs.
type Experiment struct {
	Instances    []string `yaml:"instances"`
	Algorithms   []string `yaml:"algorithms"`
	Cutoff       string   `yaml:"cutoff"` // e.g., "30s"
	Runs         int      `yaml:"runs"`
	Seeds        []int64  `yaml:"seeds,omitempty"`
	BaseSeed     int64    `yaml:"base_seed"`
	Parallelism  int      `yaml:"parallelism"`
	OutputPrefix string   `yaml:"output_prefix"`
	SweepCutoffs []string `yaml:"sweep_cutoffs,omitempty"`
}

// Storage selects where instances are read from and results written to.
type Storage struct {
	Kind         string `yaml:"kind"` // local, minio or s3
	Root         string `yaml:"root"`
	Endpoint     string `yaml:"endpoint,omitempty"`
	Bucket       string `yaml:"bucket,omitempty"`
	Prefix       string `yaml:"prefix,omitempty"`
	AccessKeyEnv string `yaml:"access_key_env,omitempty"`
	SecretKeyEnv string `yaml:"secret_key_env,omitempty"`
	Secure       bool   `yaml:"secure,omitempty"`
	Region       string `yaml:"region,omitempty"`     // s3
	PathStyle    bool   `yaml:"path_style,omitempty"` // s3
}

// GetCutoff parses the experiment cutoff.
func (e Experiment) GetCutoff() (time.Duration, error) {
	return time.ParseDuration(e.Cutoff)
}

// GetSweepCutoffs parses the sweep cutoffs in order.
func (e Experiment) GetSweepCutoffs() ([]time.Duration, error) {
	out := make([]time.Duration, 0, len(e.SweepCutoffs))
	for _, s := range e.SweepCutoffs {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("sweep cutoff %q: %w", s, err)
		}
		out = append(out, d)
	}

	return out, nil
}
