package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/annealtsp/anneal"
	"github.com/katalvlaran/annealtsp/archive"
	"github.com/katalvlaran/annealtsp/config"
	"github.com/katalvlaran/annealtsp/instance"
	"github.com/katalvlaran/annealtsp/kernel"
	"github.com/katalvlaran/annealtsp/matrix"
	"github.com/katalvlaran/annealtsp/metrics"
)

// solveFlags are command-line overrides applied on top of the config.
type solveFlags struct {
	cities     int
	points     string
	kernel     string
	iterations int
	seed       int64
	chains     int
	stats      bool
}

func (a *app) newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Anneal a random or file-based instance and print the best tour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if err = f.apply(cmd, &cfg); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return a.solve(ctx, cfg, f.stats)
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&f.cities, "cities", 0, "random instance size")
	fl.StringVar(&f.points, "points", "", "point file (.csv, .json, .yaml)")
	fl.StringVar(&f.kernel, "kernel", "", "kernel: swap, reversion, insertion, random_walk")
	fl.IntVar(&f.iterations, "iterations", 0, "maximum iterations per chain")
	fl.Int64Var(&f.seed, "seed", 0, "annealing seed")
	fl.IntVar(&f.chains, "chains", 0, "independent chains to run")
	fl.BoolVar(&f.stats, "stats", false, "report acceptance statistics (single chain)")

	return cmd
}

func (f solveFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fl := cmd.Flags()
	if fl.Changed("cities") {
		cfg.Instance.Cities = f.cities
		cfg.Instance.Points = ""
	}
	if fl.Changed("points") {
		cfg.Instance.Points = f.points
	}
	if fl.Changed("kernel") {
		cfg.Kernel = kernel.Spec{Name: f.kernel}
	}
	if fl.Changed("iterations") {
		cfg.Anneal.Iterations = f.iterations
	}
	if fl.Changed("seed") {
		cfg.Anneal.Seed = f.seed
	}
	if fl.Changed("chains") {
		cfg.Anneal.Chains = f.chains
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	return nil
}

// solveOutcome is what solve reports.
type solveOutcome struct {
	Cities   int            `json:"cities"`
	Kernel   string         `json:"kernel"`
	Chains   int            `json:"chains"`
	Best     int            `json:"best_chain"`
	Result   anneal.Result  `json:"result"`
	Stats    *acceptanceSum `json:"stats,omitempty"`
	RunID    string         `json:"run_id,omitempty"`
	Duration time.Duration  `json:"duration_ns"`
}

// acceptanceSum condenses a Collector's series.
type acceptanceSum struct {
	Iterations      int     `json:"iterations"`
	Accepted        int     `json:"accepted"`
	AcceptanceRatio float64 `json:"acceptance_ratio"`
	MeanAcceptProb  float64 `json:"mean_accept_prob"`
	MeanCandidate   float64 `json:"mean_candidate_cost"`
}

func (a *app) solve(ctx context.Context, cfg config.Config, withStats bool) error {
	start := time.Now()
	log := newLogger(cfg.Observability, a.errOut)

	tp, shutdownTracing, err := newTracerProvider(cfg.Observability.Tracing, a.errOut)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	reg := newRegistry()
	m := metrics.New(reg)
	if cfg.Observability.MetricsAddr != "" {
		stopMetrics := serveMetrics(cfg.Observability.MetricsAddr, reg, log)
		defer func() { _ = stopMetrics(context.Background()) }()
	}

	d, err := buildInstance(cfg.Instance)
	if err != nil {
		return err
	}
	opts, err := cfg.Options(log)
	if err != nil {
		return err
	}
	opts.TracerProvider = tp

	out := solveOutcome{Cities: d.N(), Kernel: cfg.Kernel.Name, Chains: cfg.Anneal.Chains}
	var rec archive.Record
	if cfg.Anneal.Chains == 1 {
		rec, err = a.solveSingle(ctx, d, cfg, opts, m, log, withStats, &out)
	} else {
		if withStats {
			log.Warn("--stats only applies to a single chain; ignoring")
		}
		rec, err = a.solveChains(ctx, d, cfg, opts, m, log, &out)
	}
	if err != nil {
		return err
	}
	m.ObserveResult(cfg.Kernel.Name, out.Result)

	if cfg.Archive.Enabled {
		id, err := saveRecord(ctx, cfg.Archive.Path, rec, log)
		if err != nil {
			return err
		}
		out.RunID = id
	}
	out.Duration = time.Since(start)

	if a.jsonOut {
		return writeJSON(a.out, out)
	}

	return renderOutcome(a.out, out)
}

func buildInstance(c config.InstanceConfig) (*matrix.Distance, error) {
	var (
		pts []instance.Point
		err error
	)
	if c.Points != "" {
		pts, err = instance.LoadPoints(c.Points)
	} else {
		lo, hi := c.SampleBounds()
		pts, err = instance.Sample(c.Cities, lo, hi, c.Seed)
	}
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}
	d, err := instance.Euclidean(pts)
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}

	return d, nil
}

func (a *app) solveSingle(
	ctx context.Context, d *matrix.Distance, cfg config.Config, opts anneal.Options,
	m *metrics.Metrics, log *slog.Logger, withStats bool, out *solveOutcome,
) (archive.Record, error) {
	k, err := kernel.Build(cfg.Kernel, opts.Seed)
	if err != nil {
		return archive.Record{}, err
	}
	e, err := anneal.NewEngine(d, k, opts)
	if err != nil {
		return archive.Record{}, err
	}
	obs := anneal.Observers(m.Observer(metrics.ChainLabel(0)), newProgressObserver(log, 0))

	var res anneal.Result
	if withStats {
		c := anneal.NewCollector(e)
		res, err = c.RunObserved(ctx, obs)
		out.Stats = summarize(c)
	} else {
		res, err = e.RunObserved(ctx, obs)
	}
	if err != nil {
		return archive.Record{}, err
	}
	out.Result = res

	return archive.NewRecord(e, res), nil
}

func (a *app) solveChains(
	ctx context.Context, d *matrix.Distance, cfg config.Config, opts anneal.Options,
	m *metrics.Metrics, log *slog.Logger, out *solveOutcome,
) (archive.Record, error) {
	res, err := anneal.RunChains(ctx, d, anneal.ChainConfig{
		Chains:      cfg.Anneal.Chains,
		Parallelism: cfg.Anneal.Parallelism,
		Kernel:      cfg.Kernel,
		Options:     opts,
		Observe: func(chain int) anneal.Observer {
			return anneal.Observers(m.Observer(metrics.ChainLabel(chain)), newProgressObserver(log, chain))
		},
	})
	if err != nil {
		return archive.Record{}, err
	}
	out.Best = res.Best
	out.Result = res.BestResult()

	return archive.RecordOf(d.N(), archive.SpecLabel(cfg.Kernel), archive.ScheduleLabel(opts.Schedule),
		anneal.ChainSeed(opts.Seed, res.Best), out.Result), nil
}

func summarize(c *anneal.Collector) *acceptanceSum {
	s := &acceptanceSum{Iterations: c.Len(), Accepted: c.Accepted()}
	if c.Len() == 0 {
		return s
	}
	ratios := c.AcceptanceRatio()
	s.AcceptanceRatio = ratios[len(ratios)-1]
	for _, p := range c.AcceptanceProbabilities() {
		s.MeanAcceptProb += p
	}
	s.MeanAcceptProb /= float64(c.Len())
	for _, v := range c.Values() {
		s.MeanCandidate += v
	}
	s.MeanCandidate /= float64(c.Len())

	return s
}

func saveRecord(ctx context.Context, path string, rec archive.Record, log *slog.Logger) (string, error) {
	store, err := archive.Open(ctx, path, log)
	if err != nil {
		return "", err
	}
	defer store.Close()

	saved, err := store.Save(ctx, rec)
	if err != nil {
		return "", err
	}

	return saved.ID, nil
}
