package simulation

import (
	"github.com/nvandessel/nmasim"
)

// Scenario defines a complete generation experiment.
type Scenario struct {
	Name   string
	Params nmasim.Parameters

	// Seed feeds the Generator. Scenarios are always seeded so that a
	// failing run can be replayed exactly.
	Seed int64

	// Replicates is the number of datasets drawn off the same stream.
	// Zero means one.
	Replicates int
}

// replicates returns the effective replicate count.
func (s Scenario) replicates() int {
	if s.Replicates < 1 {
		return 1
	}
	return s.Replicates
}

// Result captures the datasets a scenario produced together with the
// scenario itself, so assertions can reach the configured bounds.
type Result struct {
	Scenario Scenario
	Datasets []*nmasim.Dataset
}

// First returns the first dataset. Most single-replicate scenarios only
// care about this one.
func (r Result) First() *nmasim.Dataset {
	return r.Datasets[0]
}

// SampleSizes returns the effective enrollment bounds of the scenario,
// applying the package default when the range was left zero.
func (s Scenario) SampleSizes() nmasim.SampleSizeRange {
	if s.Params.SampleSize == (nmasim.SampleSizeRange{}) {
		return nmasim.DefaultSampleSizeRange
	}
	return s.Params.SampleSize
}
