// Package tspkit is a small toolkit for the Euclidean Travelling Salesman
// Problem: solvers, an instance loader, result files and an experiment
// driver for comparing them.
//
// Layout:
//
//	tsp/        instances, tours, distance table and the three solvers
//	            (BF exact with a deadline, Approx MST preorder, LS annealing)
//	tsplib/     TSPLIB NODE_COORD_SECTION reader/writer, .gz/.zst/.lz4 aware
//	solution/   .sol result files and their naming scheme
//	experiment/ batch runs, per-group statistics, cutoff sweeps, reports
//	store/      key/value storage for inputs and outputs (local, memory, MinIO, S3)
//	config/     YAML configuration
//	logger/     slog helpers shared by the binaries
//	cmd/        tspsolve (one run) and tspbench (batch and sweep)
//
// Quick start:
//
//	in, _ := tsp.FromCoords("square", [][2]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}})
//	res, _ := tsp.Solve(in, tsp.BruteForce, 5*time.Second, nil)
//	fmt.Println(res.Tour, res.Length) // [0 1 2 3] 4
package tspkit
