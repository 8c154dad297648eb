package archive

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/annealtsp/anneal"
	"github.com/katalvlaran/annealtsp/cooling"
	"github.com/katalvlaran/annealtsp/kernel"
)

// customLabel marks kernels and schedules without a declarative form.
const customLabel = "custom"

// NewRecord captures a finished run of e.
func NewRecord(e *anneal.Engine, res anneal.Result) Record {
	opts := e.Options()

	return RecordOf(e.Distance().N(), KernelLabel(e.Kernel()), ScheduleLabel(opts.Schedule), opts.Seed, res)
}

// RecordOf captures a finished run from its parts; used when the engine
// itself is not at hand (e.g. the winning chain of anneal.RunChains).
func RecordOf(cities int, kernelLabel, scheduleLabel string, seed int64, res anneal.Result) Record {
	return Record{
		Cities:     cities,
		Kernel:     kernelLabel,
		Schedule:   scheduleLabel,
		Seed:       seed,
		Iterations: res.Iterations,
		Accepted:   res.Accepted,
		Reason:     res.Reason.String(),
		BestCost:   res.Cost,
		Route:      res.Route.Cities(),
	}
}

// SpecLabel renders a kernel.Spec or cooling.Spec as flow-style YAML.
func SpecLabel(spec any) string { return flowYAML(spec) }

// KernelLabel renders k's Spec as flow-style YAML, or "custom".
func KernelLabel(k kernel.Kernel) string {
	spec, err := kernel.Describe(k)
	if err != nil {
		return customLabel
	}

	return flowYAML(spec)
}

// ScheduleLabel renders s's Spec as flow-style YAML, or "custom".
func ScheduleLabel(s cooling.Schedule) string {
	spec, err := cooling.Describe(s)
	if err != nil {
		return customLabel
	}

	return flowYAML(spec)
}

func flowYAML(v any) string {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return customLabel
	}
	setFlow(&node)
	b, err := yaml.Marshal(&node)
	if err != nil {
		return customLabel
	}

	return strings.TrimSpace(string(b))
}

func setFlow(n *yaml.Node) {
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		n.Style |= yaml.FlowStyle
	}
	for _, c := range n.Content {
		setFlow(c)
	}
}
