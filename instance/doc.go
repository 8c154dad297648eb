// Package instance builds annealing inputs from raw 2-D coordinates.
//
// It samples random grid instances, loads point lists from CSV, JSON or YAML
// files, and turns points into the Euclidean *matrix.Distance consumed by the
// annealer. The annealer itself never sees coordinates.
package instance
