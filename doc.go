// Package annealtsp approximates Travelling Salesman tours with simulated
// annealing over a dense distance matrix.
//
// The module is organised as small, independently usable packages:
//
//	matrix/   - dense symmetric distance matrices and their validators
//	tsp/      - routes, tour cost and the 2-opt local search used for polishing
//	instance/ - random and file-based point sets turned into distance matrices
//	kernel/   - proposal kernels (swap, reversion, insertion, random walk, mixing)
//	cooling/  - temperature schedules (exponential, logarithmic)
//	anneal/   - the Metropolis engine, statistics collector and parallel chains
//	metrics/  - Prometheus instrumentation fed by engine observers
//	archive/  - SQLite history of finished runs
//	config/   - YAML/JSON/env configuration with validation
//
// The annealtsp command in cmd/annealtsp wires them together.
//
// Quick start:
//
//	pts, _ := instance.Sample(50, 0, 1, 7)
//	d, _ := instance.Euclidean(pts)
//	e, _ := anneal.NewEngine(d, kernel.NewReversion(7), anneal.DefaultOptions())
//	res, _ := e.Run(context.Background())
//	fmt.Println(res.Cost, res.Route)
//
// Runs are deterministic for a fixed seed: the same matrix, kernel seed and
// options always produce the same route.
package annealtsp
