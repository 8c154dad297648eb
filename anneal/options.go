package anneal

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/annealtsp/cooling"
	"github.com/katalvlaran/annealtsp/tsp"
)

// Defaults for Options.
const (
	DefaultIterations = 1_000_000
	DefaultStopAfter  = 10_000
)

// Options configures an Engine.
type Options struct {
	// Iterations is the maximum number of proposals (≥ 1).
	Iterations int
	// EarlyStop ends the run once consecutive rejections exceed StopAfter.
	EarlyStop bool
	StopAfter int
	// Seed drives the Metropolis draws. 0 selects the package default stream.
	Seed int64
	// Schedule maps iteration k to temperature. Required.
	Schedule cooling.Schedule

	// Initial is the starting route; the zero Route selects WarmStart.
	Initial   tsp.Route
	WarmStart tsp.WarmStart
	// Polish runs a 2-opt pass over the best route after annealing.
	Polish bool

	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// TracerProvider defaults to the global otel provider.
	TracerProvider trace.TracerProvider
}

// DefaultOptions returns 10⁶ iterations, early stop after 10⁴ consecutive
// rejections, the default exponential schedule and the identity start.
func DefaultOptions() Options {
	return Options{
		Iterations: DefaultIterations,
		EarlyStop:  true,
		StopAfter:  DefaultStopAfter,
		Schedule:   cooling.DefaultExponential(),
		WarmStart:  tsp.WarmStartIdentity,
	}
}

func (o Options) validate() error {
	if o.Iterations < 1 {
		return fmt.Errorf("Iterations=%d < 1: %w", o.Iterations, tsp.ErrValidation)
	}
	if o.EarlyStop && o.StopAfter < 1 {
		return fmt.Errorf("StopAfter=%d < 1 with EarlyStop: %w", o.StopAfter, tsp.ErrValidation)
	}
	if o.Schedule == nil {
		return fmt.Errorf("nil Schedule: %w", tsp.ErrValidation)
	}
	if _, err := tsp.ParseWarmStart(string(o.WarmStart)); err != nil {
		return err
	}

	return nil
}
