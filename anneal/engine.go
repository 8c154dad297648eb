package anneal

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/annealtsp/kernel"
	"github.com/katalvlaran/annealtsp/matrix"
	"github.com/katalvlaran/annealtsp/tsp"
)

const (
	// tracerName is the instrumentation scope of run spans.
	tracerName = "annealtsp.anneal"

	// eps keeps the acceptance exponent finite as T → 0.
	eps = 2.220446049250313e-16

	// cancelCheckEvery is the context polling period, in iterations.
	cancelCheckEvery = 1024

	// polishEps is the minimum 2-opt gain applied by Polish.
	polishEps = 1e-12

	// metropolisStream is the DeriveSeed stream of the accept/reject draws.
	// Kernel members use streams 1..m, so it sits at the top of the range.
	metropolisStream = ^uint64(0)
)

// MetropolisSeed is the seed of the accept/reject stream for an engine run
// with Options.Seed == seed. It differs from seed, so a kernel built with the
// same seed never replays the acceptance draws.
func MetropolisSeed(seed int64) int64 {
	return tsp.DeriveSeed(seed, metropolisStream)
}

// Engine runs simulated annealing over one distance matrix with one kernel.
// An Engine is not safe for concurrent Runs; use one per goroutine.
type Engine struct {
	d           *matrix.Distance
	k           kernel.Kernel
	opts        Options
	initial     tsp.Route
	initialCost float64
	log         *slog.Logger
	tracer      trace.Tracer
}

// NewEngine validates every input eagerly; failures wrap tsp.ErrValidation.
// The initial route is resolved here (Options.Initial or Options.WarmStart)
// and reused by every Run.
func NewEngine(d *matrix.Distance, k kernel.Kernel, opts Options) (*Engine, error) {
	if d == nil {
		return nil, fmt.Errorf("anneal.NewEngine: nil distance: %w", tsp.ErrValidation)
	}
	if k == nil {
		return nil, fmt.Errorf("anneal.NewEngine: nil kernel: %w", tsp.ErrValidation)
	}
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("anneal.NewEngine: %w", err)
	}

	var (
		initial tsp.Route
		err     error
	)
	if opts.Initial.Len() > 0 {
		if err = opts.Initial.Validate(d.N()); err != nil {
			return nil, fmt.Errorf("anneal.NewEngine: initial route: %w", err)
		}
		initial, err = tsp.NewRoute(opts.Initial.Cities())
	} else {
		initial, err = tsp.InitialRoute(opts.WarmStart, d)
	}
	if err != nil {
		return nil, fmt.Errorf("anneal.NewEngine: %w", err)
	}
	cost, err := tsp.TourCost(d, initial)
	if err != nil {
		return nil, fmt.Errorf("anneal.NewEngine: %w", err)
	}

	e := &Engine{
		d:           d,
		k:           k,
		opts:        opts,
		initial:     initial,
		initialCost: cost,
		log:         opts.Logger,
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	tp := opts.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	e.tracer = tp.Tracer(tracerName)

	return e, nil
}

// Options returns the options the engine was built with.
func (e *Engine) Options() Options { return e.opts }

// Distance returns the engine's distance matrix.
func (e *Engine) Distance() *matrix.Distance { return e.d }

// Kernel returns the engine's kernel.
func (e *Engine) Kernel() kernel.Kernel { return e.k }

// Initial returns the starting route and its cost.
func (e *Engine) Initial() (tsp.Route, float64) { return e.initial, e.initialCost }

// Run anneals from the initial route and returns the best route found.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	return e.RunObserved(ctx, nil)
}

// RunObserved is Run with a per-iteration observer (nil allowed).
//
// Cancellation is cooperative: ctx is polled before the first iteration and
// then every 1024 iterations. A cancelled run returns the best route so far,
// Reason Cancelled and a nil error. A kernel error ends the run with the best
// route so far, Reason Failed and the wrapped error.
func (e *Engine) RunObserved(ctx context.Context, obs Observer) (Result, error) {
	start := time.Now()
	ctx, span := e.tracer.Start(ctx, "anneal.run",
		trace.WithAttributes(
			attribute.Int("anneal.cities", e.d.N()),
			attribute.Int("anneal.max_iterations", e.opts.Iterations),
			attribute.String("anneal.kernel", kernel.NameOf(e.k)),
			attribute.Int64("anneal.seed", e.opts.Seed),
		),
	)
	defer span.End()

	e.log.DebugContext(ctx, "anneal run starting",
		slog.Int("cities", e.d.N()),
		slog.Int("max_iterations", e.opts.Iterations),
		slog.String("kernel", kernel.NameOf(e.k)),
		slog.Float64("initial_cost", e.initialCost),
	)

	res, err := e.run(ctx, obs)
	if err == nil && e.opts.Polish && res.Reason != Trivial {
		res, err = e.polish(res)
	}
	res.Elapsed = time.Since(start)

	span.SetAttributes(
		attribute.Int("anneal.iterations", res.Iterations),
		attribute.Int("anneal.accepted", res.Accepted),
		attribute.String("anneal.reason", res.Reason.String()),
		attribute.Float64("anneal.best_cost", res.Cost),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.log.ErrorContext(ctx, "anneal run failed",
			slog.Int("iterations", res.Iterations),
			slog.Float64("best_cost", res.Cost),
			slog.String("error", err.Error()),
		)

		return res, err
	}
	span.SetStatus(codes.Ok, "")
	e.log.InfoContext(ctx, "anneal run finished",
		slog.String("reason", res.Reason.String()),
		slog.Int("iterations", res.Iterations),
		slog.Int("accepted", res.Accepted),
		slog.Float64("best_cost", res.Cost),
		slog.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}

func (e *Engine) run(ctx context.Context, obs Observer) (Result, error) {
	var (
		current     = e.initial
		currentCost = e.initialCost
		b           = best{route: current, cost: currentCost}
		rng         = tsp.NewRand(MetropolisSeed(e.opts.Seed))
		reason      = Exhausted
		done        int
		accepted    int
		rejected    int
		k           int
	)
	if e.d.N() < minCities {
		return Result{Route: current, Cost: currentCost, Reason: Trivial}, nil
	}

	for k = 1; k <= e.opts.Iterations; k++ {
		if (k-1)%cancelCheckEvery == 0 && ctx.Err() != nil {
			reason = Cancelled
			break
		}

		cand, err := e.k.Sample(current)
		if err != nil {
			return e.partial(b, done, accepted, Failed),
				fmt.Errorf("anneal: iteration %d: kernel %s: %w", k, kernel.NameOf(e.k), err)
		}
		candCost, err := tsp.TourCost(e.d, cand)
		if err != nil {
			return e.partial(b, done, accepted, Failed),
				fmt.Errorf("anneal: iteration %d: candidate: %w", k, err)
		}

		temp := e.opts.Schedule.Temperature(k)
		logP := LogAcceptance(currentCost, candCost, temp)
		ok := logP >= 0 || rng.Float64() < math.Exp(logP)
		if ok {
			current, currentCost = cand, candCost
			b.offer(cand, candCost)
			accepted++
			rejected = 0
		} else {
			rejected++
		}
		done = k

		if obs != nil {
			obs.OnStep(Step{
				K:             k,
				Temperature:   temp,
				LogAcceptProb: logP,
				CandidateCost: candCost,
				CurrentCost:   currentCost,
				BestCost:      b.cost,
				Accepted:      ok,
				AcceptedTotal: accepted,
			})
		}

		if e.opts.EarlyStop && rejected > e.opts.StopAfter {
			reason = Converged
			break
		}
	}

	return e.partial(b, done, accepted, reason), nil
}

func (e *Engine) partial(b best, done, accepted int, reason StopReason) Result {
	return Result{
		Route:      b.route,
		Cost:       b.cost,
		Iterations: done,
		Accepted:   accepted,
		Reason:     reason,
	}
}

func (e *Engine) polish(res Result) (Result, error) {
	r, cost, err := tsp.TwoOpt(e.d, res.Route, polishEps, 0)
	if err != nil {
		return res, fmt.Errorf("anneal: polish: %w", err)
	}
	if cost < res.Cost {
		res.Route, res.Cost = r, cost
	}

	return res, nil
}

// minCities is the smallest instance with more than one tour class.
const minCities = 3

// LogAcceptance returns the Metropolis log-probability of moving from a
// route of cost current to one of cost candidate at temperature temp:
// 0 when the candidate is no worse, −gap/(temp+ε) otherwise.
func LogAcceptance(current, candidate, temp float64) float64 {
	gap := candidate - current
	if gap <= 0 {
		return 0
	}

	return -gap / (temp + eps)
}
