package config

import "github.com/katalvlaran/tspkit/tsp"

// Default returns the configuration used when no file is given. Parsing
// starts from these values, so a file only needs the keys it changes.
func Default() *Config {
	def := tsp.DefaultOptions()

	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Solver: Solver{
			ProgressEvery: def.ProgressEvery,
			Schedule: Schedule{
				Initial: def.Schedule.Initial,
				Alpha:   def.Schedule.Alpha,
				Min:     def.Schedule.Min,
			},
		},
		Experiment: Experiment{
			Algorithms:   []string{string(tsp.BruteForce), string(tsp.Approximation), string(tsp.LocalSearch)},
			Cutoff:       "30s",
			Runs:         15,
			Parallelism:  1,
			OutputPrefix: "output_exec",
		},
		Storage: Storage{
			Kind: "local",
			Root: ".",
		},
	}
}
