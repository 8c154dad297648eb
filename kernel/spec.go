package kernel

import (
	"fmt"

	"github.com/katalvlaran/annealtsp/tsp"
)

// Kernel names accepted by Build.
const (
	NameSwap       = "swap"
	NameReversion  = "reversion"
	NameInsertion  = "insertion"
	NameRandomWalk = "random_walk"
	NameMixing     = "mixing"
)

// ErrUnknownKernel is returned by Build for an unrecognised kernel name.
var ErrUnknownKernel = fmt.Errorf("%w: unknown kernel", tsp.ErrValidation)

// Spec is the declarative (config-file) form of a kernel.
//
// Seed 0 inherits the seed passed to Build. Mixing members without their own
// seed receive DeriveSeed(parent, index+1), so sibling kernels never share a
// stream. Weight is only meaningful inside Members.
type Spec struct {
	Name    string  `yaml:"name" json:"name" validate:"required,oneof=swap reversion insertion random_walk mixing"`
	Seed    int64   `yaml:"seed,omitempty" json:"seed,omitempty"`
	Weight  float64 `yaml:"weight,omitempty" json:"weight,omitempty" validate:"gte=0"`
	Members []Spec  `yaml:"members,omitempty" json:"members,omitempty" validate:"omitempty,dive"`
}

// Build constructs the kernel described by s.
func Build(s Spec, seed int64) (Kernel, error) {
	if s.Seed != 0 {
		seed = s.Seed
	}
	switch s.Name {
	case NameSwap:
		return NewSwap(seed), nil
	case NameReversion:
		return NewReversion(seed), nil
	case NameInsertion:
		return NewInsertion(seed), nil
	case NameRandomWalk:
		return NewRandomWalk(seed), nil
	case NameMixing:
		return buildMixing(s, seed)
	default:
		return nil, fmt.Errorf("kernel.Build(%q): %w", s.Name, ErrUnknownKernel)
	}
}

func buildMixing(s Spec, seed int64) (*Mixing, error) {
	if len(s.Members) == 0 {
		return nil, fmt.Errorf("kernel.Build(mixing): no members: %w", tsp.ErrValidation)
	}
	members := make([]Weighted, len(s.Members))
	for i, ms := range s.Members {
		if ms.Seed == 0 {
			ms.Seed = tsp.DeriveSeed(seed, uint64(i+1))
		}
		k, err := Build(ms, seed)
		if err != nil {
			return nil, fmt.Errorf("kernel.Build(mixing) member %d: %w", i, err)
		}
		members[i] = Weighted{P: ms.Weight, K: k}
	}

	return NewMixing(members, seed)
}

// Describe converts a built-in kernel back into its Spec. Mixing members are
// listed in sorted order with their normalised probabilities as weights.
// Kernels implemented outside this package yield tsp.ErrNotImplemented.
func Describe(k Kernel) (Spec, error) {
	switch v := k.(type) {
	case *Swap:
		return Spec{Name: NameSwap, Seed: v.Seed()}, nil
	case *Reversion:
		return Spec{Name: NameReversion, Seed: v.Seed()}, nil
	case *Insertion:
		return Spec{Name: NameInsertion, Seed: v.Seed()}, nil
	case *RandomWalk:
		return Spec{Name: NameRandomWalk, Seed: v.Seed()}, nil
	case *Mixing:
		out := Spec{Name: NameMixing, Seed: v.Seed(), Members: make([]Spec, len(v.kernels))}
		for i, mk := range v.kernels {
			ms, err := Describe(mk)
			if err != nil {
				return Spec{}, fmt.Errorf("kernel.Describe(mixing) member %d: %w", i, err)
			}
			ms.Weight = v.probs[i]
			out.Members[i] = ms
		}

		return out, nil
	default:
		return Spec{}, fmt.Errorf("kernel.Describe(%T): %w", k, tsp.ErrNotImplemented)
	}
}
