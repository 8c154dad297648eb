package anneal

import (
	"fmt"
	"time"

	"github.com/katalvlaran/annealtsp/tsp"
)

// StopReason tells why a run ended.
type StopReason int

const (
	// Exhausted: all Iterations were performed.
	Exhausted StopReason = iota
	// Converged: early stop fired.
	Converged
	// Cancelled: the context was done; the best route so far is returned.
	Cancelled
	// Trivial: fewer than three cities, so only one tour class exists and
	// no iteration ran.
	Trivial
	// Failed: a kernel returned an error mid-run.
	Failed
)

var stopReasonNames = [...]string{"exhausted", "converged", "cancelled", "trivial", "failed"}

// String returns the lower-case reason name.
func (r StopReason) String() string {
	if r < 0 || int(r) >= len(stopReasonNames) {
		return fmt.Sprintf("StopReason(%d)", int(r))
	}

	return stopReasonNames[r]
}

// MarshalText encodes the reason by name.
func (r StopReason) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText decodes a reason name.
func (r *StopReason) UnmarshalText(b []byte) error {
	for i, name := range stopReasonNames {
		if name == string(b) {
			*r = StopReason(i)

			return nil
		}
	}

	return fmt.Errorf("anneal: unknown stop reason %q: %w", b, tsp.ErrValidation)
}

// Result is the outcome of a run.
type Result struct {
	Route      tsp.Route     `json:"route"`
	Cost       float64       `json:"cost"`
	Iterations int           `json:"iterations"`
	Accepted   int           `json:"accepted"`
	Reason     StopReason    `json:"reason"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

// best is the monotone best-so-far record.
type best struct {
	route tsp.Route
	cost  float64
}

// offer replaces the record iff cost is strictly lower.
func (b *best) offer(r tsp.Route, cost float64) bool {
	if cost < b.cost {
		b.route, b.cost = r, cost

		return true
	}

	return false
}
