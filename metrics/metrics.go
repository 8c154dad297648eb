package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/annealtsp/anneal"
)

const namespace = "annealtsp"

// Metrics holds the collectors for annealing runs.
type Metrics struct {
	steps       *prometheus.CounterVec
	temperature *prometheus.GaugeVec
	currentCost *prometheus.GaugeVec
	bestCost    *prometheus.GaugeVec
	runs        *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
	runIters    *prometheus.HistogramVec
}

// New registers the annealing collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		// steps counts proposals by chain and outcome
		steps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Annealing proposals by chain and outcome",
		}, []string{"chain", "outcome"}),

		temperature: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "temperature",
			Help:      "Current annealing temperature",
		}, []string{"chain"}),

		currentCost: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "current_cost",
			Help:      "Cost of the current route",
		}, []string{"chain"}),

		bestCost: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_cost",
			Help:      "Cost of the best route found so far",
		}, []string{"chain"}),

		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Finished runs by kernel and stop reason",
		}, []string{"kernel", "reason"}),

		runDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of runs",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms to ~4min
		}, []string{"kernel"}),

		runIters: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_iterations",
			Help:      "Iterations performed per run",
			Buckets:   prometheus.ExponentialBuckets(100, 10, 6),
		}, []string{"kernel"}),
	}
}

// ChainLabel formats a chain index as a label value.
func ChainLabel(chain int) string { return strconv.Itoa(chain) }

// Observer returns an anneal.Observer publishing the steps of one chain.
// Label children are resolved once, so OnStep only touches atomics.
func (m *Metrics) Observer(chain string) anneal.Observer {
	return &stepObserver{
		accepted:    m.steps.WithLabelValues(chain, "accepted"),
		rejected:    m.steps.WithLabelValues(chain, "rejected"),
		temperature: m.temperature.WithLabelValues(chain),
		currentCost: m.currentCost.WithLabelValues(chain),
		bestCost:    m.bestCost.WithLabelValues(chain),
	}
}

// ObserveResult records a finished run.
func (m *Metrics) ObserveResult(kernelName string, res anneal.Result) {
	m.runs.WithLabelValues(kernelName, res.Reason.String()).Inc()
	m.runDuration.WithLabelValues(kernelName).Observe(res.Elapsed.Seconds())
	m.runIters.WithLabelValues(kernelName).Observe(float64(res.Iterations))
}

type stepObserver struct {
	accepted    prometheus.Counter
	rejected    prometheus.Counter
	temperature prometheus.Gauge
	currentCost prometheus.Gauge
	bestCost    prometheus.Gauge
}

func (o *stepObserver) OnStep(s anneal.Step) {
	if s.Accepted {
		o.accepted.Inc()
	} else {
		o.rejected.Inc()
	}
	o.temperature.Set(s.Temperature)
	o.currentCost.Set(s.CurrentCost)
	o.bestCost.Set(s.BestCost)
}
