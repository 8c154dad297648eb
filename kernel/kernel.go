package kernel

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/annealtsp/tsp"
)

// minSampleCities is the smallest route the random samplers accept: position 0
// is fixed, so two distinct movable positions need n ≥ 3.
const minSampleCities = 3

// Kernel proposes a neighbouring route.
type Kernel interface {
	// Sample returns a new route one move away from r. r is not modified.
	Sample(r tsp.Route) (tsp.Route, error)
}

// seeded is the shared random state of the built-in kernels.
type seeded struct {
	seed int64
	rng  *rand.Rand
}

func newSeeded(seed int64) seeded {
	return seeded{seed: seed, rng: tsp.NewRand(seed)}
}

// Seed returns the seed the kernel was built with.
func (s *seeded) Seed() int64 { return s.seed }

// drawPair draws two distinct movable positions from [1, n).
func (s *seeded) drawPair(op string, r tsp.Route) (int, int, error) {
	if err := checkSample(op, r); err != nil {
		return 0, 0, err
	}
	i, j := tsp.DistinctPair(s.rng, 1, r.Len())

	return i, j, nil
}

// checkSample rejects routes too short for a random move.
func checkSample(op string, r tsp.Route) error {
	if r.Len() < minSampleCities {
		return fmt.Errorf("%s.Sample(len=%d): %w", op, r.Len(), tsp.ErrInvalidInput)
	}

	return nil
}

// checkPositions validates deterministic move positions.
func checkPositions(op string, r tsp.Route, i, j int) error {
	n := r.Len()
	if n < 2 {
		return fmt.Errorf("%s.SampleAt(len=%d): %w", op, n, tsp.ErrInvalidInput)
	}
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("%s.SampleAt(%d,%d) on len=%d: %w", op, i, j, n, tsp.ErrInvalidInput)
	}

	return nil
}

// NameOf returns the config name of a built-in kernel, or "custom".
func NameOf(k Kernel) string {
	switch k.(type) {
	case *Swap:
		return NameSwap
	case *Reversion:
		return NameReversion
	case *Insertion:
		return NameInsertion
	case *RandomWalk:
		return NameRandomWalk
	case *Mixing:
		return NameMixing
	default:
		return "custom"
	}
}
