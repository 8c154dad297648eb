// Package metrics exports annealing runs as Prometheus metrics.
//
// Metrics are registered on a caller-supplied prometheus.Registerer so tests
// and embedders can use isolated registries; the CLI passes the default one
// and serves it with promhttp.
package metrics
