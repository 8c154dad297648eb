// Package archive stores finished annealing results in SQLite.
//
// The archive is write-once history: it records what a run produced, never
// the state needed to resume one.
package archive
