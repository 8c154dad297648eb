// Package config loads annealtsp configuration.
//
// Priority: environment (ANNEAL_*) > file (YAML, or JSON) > defaults.
// The merged configuration is validated with struct tags and cross-field
// rules before use.
package config
