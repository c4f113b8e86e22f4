package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/katalvlaran/tspkit/logger"
	"github.com/katalvlaran/tspkit/tsp"
)

// LoadConfig loads and parses a configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseConfigYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// validateConfig performs validation on the configuration.
func validateConfig(cfg *Config) error {
	if !logger.ValidLevel(cfg.LogLevel) {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return fmt.Errorf("invalid log_format: %s (must be text or json)", cfg.LogFormat)
	}

	if err := validateSolver(&cfg.Solver); err != nil {
		return fmt.Errorf("solver validation failed: %w", err)
	}
	if err := validateExperiment(&cfg.Experiment); err != nil {
		return fmt.Errorf("experiment validation failed: %w", err)
	}
	if err := validateStorage(&cfg.Storage); err != nil {
		return fmt.Errorf("storage validation failed: %w", err)
	}

	return nil
}

func validateSolver(s *Solver) error {
	if s.CheckInterval < 0 {
		return fmt.Errorf("check_interval cannot be negative")
	}
	if s.ProgressEvery < 0 {
		return fmt.Errorf("progress_every cannot be negative")
	}
	if err := s.TSPSchedule().Validate(); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	return nil
}

func validateExperiment(e *Experiment) error {
	algos, err := e.ParseAlgorithms()
	if err != nil {
		return err
	}
	cutoff, err := e.GetCutoff()
	if err != nil {
		return fmt.Errorf("invalid cutoff %q: %w", e.Cutoff, err)
	}
	if cutoff <= 0 {
		return fmt.Errorf("cutoff must be positive")
	}
	if slices.Contains(algos, tsp.LocalSearch) && e.Runs <= 0 && len(e.Seeds) == 0 {
		return fmt.Errorf("runs must be positive when no seeds are listed")
	}
	if e.Parallelism <= 0 {
		return fmt.Errorf("parallelism must be positive")
	}
	sweep, err := e.GetSweepCutoffs()
	if err != nil {
		return err
	}
	for _, d := range sweep {
		if d <= 0 {
			return fmt.Errorf("sweep cutoffs must be positive")
		}
	}
	return nil
}

func validateStorage(s *Storage) error {
	switch s.Kind {
	case "local":
		if s.Root == "" {
			return fmt.Errorf("root is required for local storage")
		}
	case "minio":
		if s.Endpoint == "" || s.Bucket == "" {
			return fmt.Errorf("endpoint and bucket are required for minio storage")
		}
	case "s3":
		if s.Bucket == "" {
			return fmt.Errorf("bucket is required for s3 storage")
		}
	default:
		return fmt.Errorf("invalid kind: %s (must be local, minio or s3)", s.Kind)
	}
	return nil
}
