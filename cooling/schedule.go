package cooling

import (
	"fmt"
	"math"

	"github.com/katalvlaran/annealtsp/tsp"
)

// Defaults for the closed-form schedules.
const (
	DefaultExponentialT0  = 100.0
	DefaultExponentialRho = 0.99
	DefaultLogarithmicT0  = 25.0
	DefaultLogarithmicK0  = 2.0
)

// Schedule returns the temperature at iteration k (k ≥ 1).
type Schedule interface {
	Temperature(k int) float64
}

// Func adapts an ordinary function to Schedule.
type Func func(k int) float64

// Temperature calls f(k).
func (f Func) Temperature(k int) float64 { return f(k) }

// Exponential is T(k) = T0 · Rho^k.
type Exponential struct {
	T0  float64
	Rho float64
}

// NewExponential validates T0 > 0 and 0 < rho < 1.
func NewExponential(t0, rho float64) (Exponential, error) {
	if err := checkT0("NewExponential", t0); err != nil {
		return Exponential{}, err
	}
	if math.IsNaN(rho) || rho <= 0 || rho >= 1 {
		return Exponential{}, fmt.Errorf("NewExponential: rho=%v not in (0,1): %w", rho, tsp.ErrValidation)
	}

	return Exponential{T0: t0, Rho: rho}, nil
}

// DefaultExponential returns T0=100, Rho=0.99.
func DefaultExponential() Exponential {
	return Exponential{T0: DefaultExponentialT0, Rho: DefaultExponentialRho}
}

// Temperature returns T0 · Rho^k.
func (e Exponential) Temperature(k int) float64 {
	return e.T0 * math.Pow(e.Rho, float64(k))
}

// Logarithmic is T(k) = T0 · ln(K0) / ln(k + K0).
// K0 == 1 is legal and yields T ≡ 0 (a pure descent).
type Logarithmic struct {
	T0 float64
	K0 float64
}

// NewLogarithmic validates T0 > 0 and K0 ≥ 1.
func NewLogarithmic(t0, k0 float64) (Logarithmic, error) {
	if err := checkT0("NewLogarithmic", t0); err != nil {
		return Logarithmic{}, err
	}
	if math.IsNaN(k0) || math.IsInf(k0, 0) || k0 < 1 {
		return Logarithmic{}, fmt.Errorf("NewLogarithmic: k0=%v < 1: %w", k0, tsp.ErrValidation)
	}

	return Logarithmic{T0: t0, K0: k0}, nil
}

// DefaultLogarithmic returns T0=25, K0=2.
func DefaultLogarithmic() Logarithmic {
	return Logarithmic{T0: DefaultLogarithmicT0, K0: DefaultLogarithmicK0}
}

// Temperature returns T0 · ln(K0) / ln(k + K0).
func (l Logarithmic) Temperature(k int) float64 {
	return l.T0 * math.Log(l.K0) / math.Log(float64(k)+l.K0)
}

func checkT0(op string, t0 float64) error {
	if math.IsNaN(t0) || math.IsInf(t0, 0) || t0 <= 0 {
		return fmt.Errorf("%s: t0=%v must be positive and finite: %w", op, t0, tsp.ErrValidation)
	}

	return nil
}
