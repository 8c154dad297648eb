package anneal

// Step describes one completed iteration.
type Step struct {
	K             int
	Temperature   float64
	LogAcceptProb float64 // ≤ 0; 0 means guaranteed acceptance
	CandidateCost float64
	CurrentCost   float64 // after the accept/reject decision
	BestCost      float64
	Accepted      bool
	AcceptedTotal int
}

// Observer receives every Step synchronously on the run's goroutine.
// Observers must not retain references beyond the call or block.
type Observer interface {
	OnStep(Step)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Step)

// OnStep calls f(s).
func (f ObserverFunc) OnStep(s Step) { f(s) }

type multiObserver []Observer

func (m multiObserver) OnStep(s Step) {
	for _, o := range m {
		o.OnStep(s)
	}
}

// Observers fans a step out to every non-nil observer, in order.
func Observers(obs ...Observer) Observer {
	out := make(multiObserver, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			out = append(out, o)
		}
	}
	if len(out) == 1 {
		return out[0]
	}

	return out
}
