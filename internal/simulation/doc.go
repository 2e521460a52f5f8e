// Package simulation provides a scenario harness for validating the
// statistical and structural properties of generated datasets.
//
// The harness exercises the real Generator, Dataset, and network
// packages — no mocks. Scenarios pair a Parameters value with a seed and
// an optional replicate count; the Runner generates the datasets and the
// assertion helpers check invariants that must hold for every run:
// study layout, arm bounds, response bounds, network shape, and
// reproducibility.
//
// Usage:
//
//	func TestTwoArmStudies(t *testing.T) {
//	    r := simulation.NewRunner(t)
//	    result := r.Run(simulation.Scenario{
//	        Name: "two-treatments",
//	        Params: nmasim.Parameters{
//	            Studies:    20,
//	            Treatments: 2,
//	            Effects:    []float64{0.3, 0.6},
//	        },
//	        Seed: 11,
//	    })
//	    simulation.AssertWellFormed(t, result)
//	    simulation.AssertArmBounds(t, result)
//	}
package simulation
