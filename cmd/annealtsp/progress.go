package main

import (
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/annealtsp/anneal"
)

// progressInterval is the minimum spacing of progress log lines.
const progressInterval = 2 * time.Second

// progressObserver logs run progress at most once per interval.
type progressObserver struct {
	log   *slog.Logger
	chain int
	every rate.Sometimes
}

func newProgressObserver(log *slog.Logger, chain int) *progressObserver {
	return &progressObserver{log: log, chain: chain, every: rate.Sometimes{Interval: progressInterval}}
}

func (p *progressObserver) OnStep(s anneal.Step) {
	p.every.Do(func() {
		p.log.Debug("annealing",
			slog.Int("chain", p.chain),
			slog.Int("k", s.K),
			slog.Float64("temperature", s.Temperature),
			slog.Float64("current_cost", s.CurrentCost),
			slog.Float64("best_cost", s.BestCost),
			slog.Int("accepted", s.AcceptedTotal),
		)
	})
}
