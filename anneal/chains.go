package anneal

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/annealtsp/kernel"
	"github.com/katalvlaran/annealtsp/matrix"
	"github.com/katalvlaran/annealtsp/tsp"
)

// ChainConfig configures RunChains.
type ChainConfig struct {
	// Chains is the number of independent engines (≥ 1).
	Chains int
	// Parallelism caps concurrently running chains; ≤ 0 means GOMAXPROCS.
	Parallelism int
	// Kernel is built once per chain.
	Kernel kernel.Spec
	// Options is shared by every chain; Seed is the parent seed.
	Options Options
	// Observe, when set, returns the observer for chain i (nil allowed).
	// Each observer is only called from its own chain's goroutine.
	Observe func(chain int) Observer
}

// ChainResult holds every chain's outcome.
type ChainResult struct {
	Results []Result
	Best    int // index of the lowest-cost chain; ties go to the lower index
}

// BestResult returns Results[Best].
func (r ChainResult) BestResult() Result { return r.Results[r.Best] }

// ChainSeed is the seed chain i derives from parent. It seeds the chain's
// kernel; the chain's accept/reject draws use MetropolisSeed of it. No two
// chains, and no kernel and engine, share a stream.
func ChainSeed(parent int64, chain int) int64 {
	return tsp.DeriveSeed(parent, uint64(chain))
}

// RunChains runs cfg.Chains independent engines over d and reports all of
// them. Chains share only the read-only matrix; they never exchange state.
// The first failing chain cancels the rest and its error is returned.
func RunChains(ctx context.Context, d *matrix.Distance, cfg ChainConfig) (ChainResult, error) {
	if cfg.Chains < 1 {
		return ChainResult{}, fmt.Errorf("anneal.RunChains: Chains=%d < 1: %w", cfg.Chains, tsp.ErrValidation)
	}

	engines := make([]*Engine, cfg.Chains)
	for i := range engines {
		seed := ChainSeed(cfg.Options.Seed, i)
		k, err := kernel.Build(cfg.Kernel, seed)
		if err != nil {
			return ChainResult{}, fmt.Errorf("anneal.RunChains: chain %d: %w", i, err)
		}
		opts := cfg.Options
		opts.Seed = seed
		if opts.Logger != nil {
			opts.Logger = opts.Logger.With("chain", i)
		}
		if engines[i], err = NewEngine(d, k, opts); err != nil {
			return ChainResult{}, fmt.Errorf("anneal.RunChains: chain %d: %w", i, err)
		}
	}

	limit := cfg.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	out := ChainResult{Results: make([]Result, cfg.Chains)}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, e := range engines {
		i, e := i, e
		var obs Observer
		if cfg.Observe != nil {
			obs = cfg.Observe(i)
		}
		g.Go(func() error {
			res, err := e.RunObserved(gctx, obs)
			out.Results[i] = res
			if err != nil {
				return fmt.Errorf("chain %d: %w", i, err)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, fmt.Errorf("anneal.RunChains: %w", err)
	}

	for i := 1; i < len(out.Results); i++ {
		if out.Results[i].Cost < out.Results[out.Best].Cost {
			out.Best = i
		}
	}

	return out, nil
}
