package anneal

import (
	"context"
	"math"
)

// Collector records per-iteration statistics of an Engine's runs.
//
// It only observes: every accept/reject decision is the engine's. Each Run
// clears the previous series. Accessors return copies.
type Collector struct {
	e *Engine

	logProbs []float64
	ratios   []float64
	values   []float64
	accepted int
}

// NewCollector wraps e.
func NewCollector(e *Engine) *Collector { return &Collector{e: e} }

// Engine returns the wrapped engine.
func (c *Collector) Engine() *Engine { return c.e }

// Run resets all series and runs the engine with c as its observer.
func (c *Collector) Run(ctx context.Context) (Result, error) {
	return c.RunObserved(ctx, nil)
}

// RunObserved is Run with an extra observer fanned out after the collector.
func (c *Collector) RunObserved(ctx context.Context, obs Observer) (Result, error) {
	c.reset()

	return c.e.RunObserved(ctx, Observers(c, obs))
}

// OnStep appends one iteration to every series.
func (c *Collector) OnStep(s Step) {
	if s.Accepted {
		c.accepted++
	}
	c.logProbs = append(c.logProbs, s.LogAcceptProb)
	c.ratios = append(c.ratios, float64(c.accepted)/float64(s.K))
	c.values = append(c.values, s.CandidateCost)
}

// maxPrealloc caps the per-series capacity reserved up front.
const maxPrealloc = 1 << 16

func (c *Collector) reset() {
	hint := c.e.opts.Iterations
	if hint > maxPrealloc {
		hint = maxPrealloc
	}
	c.logProbs = make([]float64, 0, hint)
	c.ratios = make([]float64, 0, hint)
	c.values = make([]float64, 0, hint)
	c.accepted = 0
}

// Len returns the number of recorded iterations.
func (c *Collector) Len() int { return len(c.logProbs) }

// Accepted returns the number of accepted proposals in the last run.
func (c *Collector) Accepted() int { return c.accepted }

// LogAcceptanceProbabilities returns the log acceptance probability per iteration.
func (c *Collector) LogAcceptanceProbabilities() []float64 { return clone(c.logProbs) }

// AcceptanceProbabilities returns exp of LogAcceptanceProbabilities.
func (c *Collector) AcceptanceProbabilities() []float64 {
	out := make([]float64, len(c.logProbs))
	for i, lp := range c.logProbs {
		out[i] = math.Exp(lp)
	}

	return out
}

// AcceptanceRatio returns accepted-so-far / k per iteration.
func (c *Collector) AcceptanceRatio() []float64 { return clone(c.ratios) }

// Values returns the candidate cost proposed at each iteration.
func (c *Collector) Values() []float64 { return clone(c.values) }

func clone(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)

	return out
}
