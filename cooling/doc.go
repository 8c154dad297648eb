// Package cooling provides annealing temperature schedules.
//
// A Schedule maps the 1-based iteration index k to a temperature. The two
// closed-form schedules are
//
//	Exponential:  T(k) = T0 · ρ^k
//	Logarithmic:  T(k) = T0 · ln(k0) / ln(k + k0)
//
// and Func adapts any func(int) float64. Schedules are pure and safe for
// concurrent use.
package cooling
