package cooling

import (
	"fmt"

	"github.com/katalvlaran/annealtsp/tsp"
)

// Schedule kinds accepted by Build.
const (
	KindExponential = "exponential"
	KindLogarithmic = "logarithmic"
)

// ErrUnknownSchedule is returned by Build for an unrecognised kind.
var ErrUnknownSchedule = fmt.Errorf("%w: unknown cooling schedule", tsp.ErrValidation)

// Spec is the declarative (config-file) form of a schedule.
// Zero parameters select the kind's defaults.
type Spec struct {
	Kind string  `yaml:"kind" json:"kind" validate:"required,oneof=exponential logarithmic"`
	T0   float64 `yaml:"t0,omitempty" json:"t0,omitempty" validate:"gte=0"`
	Rho  float64 `yaml:"rho,omitempty" json:"rho,omitempty" validate:"gte=0,lt=1"`
	K0   float64 `yaml:"k0,omitempty" json:"k0,omitempty" validate:"omitempty,gte=1"`
}

// Build constructs the schedule described by s.
func Build(s Spec) (Schedule, error) {
	switch s.Kind {
	case KindExponential:
		d := DefaultExponential()
		if s.T0 != 0 {
			d.T0 = s.T0
		}
		if s.Rho != 0 {
			d.Rho = s.Rho
		}

		return NewExponential(d.T0, d.Rho)
	case KindLogarithmic:
		d := DefaultLogarithmic()
		if s.T0 != 0 {
			d.T0 = s.T0
		}
		if s.K0 != 0 {
			d.K0 = s.K0
		}

		return NewLogarithmic(d.T0, d.K0)
	default:
		return nil, fmt.Errorf("cooling.Build(%q): %w", s.Kind, ErrUnknownSchedule)
	}
}

// Describe returns the Spec of a closed-form schedule; Func and foreign
// schedules yield tsp.ErrNotImplemented.
func Describe(s Schedule) (Spec, error) {
	switch v := s.(type) {
	case Exponential:
		return Spec{Kind: KindExponential, T0: v.T0, Rho: v.Rho}, nil
	case Logarithmic:
		return Spec{Kind: KindLogarithmic, T0: v.T0, K0: v.K0}, nil
	default:
		return Spec{}, fmt.Errorf("cooling.Describe(%T): %w", s, tsp.ErrNotImplemented)
	}
}
