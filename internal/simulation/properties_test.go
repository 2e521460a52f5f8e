package simulation_test

import (
	"testing"

	"github.com/nvandessel/nmasim"
	"github.com/nvandessel/nmasim/internal/simulation"
)

// TestGenerationBreadth sweeps scenarios across the parameter space and
// checks the invariants that must hold for every dataset: well-formed
// rows, contiguous study layout, arm counts inside [2, pool], distinct
// treatments per study, enrollment inside the configured range, and a
// network that agrees with the rows it was derived from.
func TestGenerationBreadth(t *testing.T) {
	scenarios := []simulation.Scenario{
		{
			Name:   "smoke-preset",
			Params: nmasim.PresetSmokeTest(),
			Seed:   12345,
		},
		{
			Name:   "sparse-preset",
			Params: nmasim.PresetSparse(),
			Seed:   99,
		},
		{
			Name:   "dense-preset",
			Params: nmasim.PresetDense(),
			Seed:   7,
		},
		{
			Name: "two-treatments-forces-two-arms",
			Params: nmasim.Parameters{
				Studies:    25,
				Treatments: 2,
				Effects:    []float64{0.3, 0.6},
			},
			Seed: 11,
		},
		{
			Name: "single-study",
			Params: nmasim.Parameters{
				Studies:    1,
				Treatments: 5,
				Effects:    []float64{0.1, 0.3, 0.5, 0.7, 0.9},
			},
			Seed: 2024,
		},
		{
			Name: "degenerate-enrollment",
			Params: nmasim.Parameters{
				Studies:    12,
				Treatments: 3,
				Effects:    []float64{0.2, 0.5, 0.8},
				SampleSize: nmasim.SampleSizeRange{Min: 80, Max: 80},
			},
			Seed: 4,
		},
		{
			Name: "certain-outcomes",
			Params: nmasim.Parameters{
				Studies:    10,
				Treatments: 3,
				Effects:    []float64{0, 0.5, 1},
			},
			Seed: 31,
		},
		{
			Name: "wide-enrollment",
			Params: nmasim.Parameters{
				Studies:    8,
				Treatments: 4,
				Effects:    []float64{0.25, 0.45, 0.65, 0.85},
				SampleSize: nmasim.SampleSizeRange{Min: 1, Max: 5000},
			},
			Seed: 58,
		},
	}

	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			r := simulation.NewRunner(t)
			result := r.Run(sc)

			simulation.AssertWellFormed(t, result)
			simulation.AssertStudyLayout(t, result)
			simulation.AssertArmBounds(t, result)
			simulation.AssertSampleBounds(t, result)
			simulation.AssertNetworkConsistent(t, result)
			simulation.AssertProvenance(t, result)
		})
	}
}

// TestTwoTreatmentPoolPinsArmCount validates the smallest pool: with two
// treatments every study must compare exactly the pair {1, 2}.
func TestTwoTreatmentPoolPinsArmCount(t *testing.T) {
	r := simulation.NewRunner(t)
	result := r.Run(simulation.Scenario{
		Name: "two-treatment-pool",
		Params: nmasim.Parameters{
			Studies:    30,
			Treatments: 2,
			Effects:    []float64{0.4, 0.7},
		},
		Seed: 61,
	})

	ds := result.First()
	for study := 1; study <= 30; study++ {
		arms := ds.ArmsOf(study)
		if len(arms) != 2 {
			t.Errorf("study %d has %d arms, want exactly 2", study, len(arms))
			continue
		}
		got := map[int]bool{arms[0].TreatmentID: true, arms[1].TreatmentID: true}
		if !got[1] || !got[2] {
			t.Errorf("study %d compares %v, want treatments {1, 2}", study, arms)
		}
	}
}

// TestCertainOutcomeArms validates the probability endpoints: a
// treatment with effect 0 never responds and a treatment with effect 1
// always responds, in every arm of every study.
func TestCertainOutcomeArms(t *testing.T) {
	r := simulation.NewRunner(t)
	result := r.Run(simulation.Scenario{
		Name: "endpoint-effects",
		Params: nmasim.Parameters{
			Studies:    15,
			Treatments: 2,
			Effects:    []float64{0, 1},
		},
		Seed: 83,
	})

	ds := result.First()
	for i := 0; i < ds.Len(); i++ {
		row := ds.Row(i)
		switch row.TreatmentID {
		case 1:
			if row.Response != 0 {
				t.Errorf("row %d: treatment 1 (effect 0) responded %d times in %d subjects", i, row.Response, row.SampleSize)
			}
		case 2:
			if row.Response != row.SampleSize {
				t.Errorf("row %d: treatment 2 (effect 1) responded %d times, want all %d", i, row.Response, row.SampleSize)
			}
		}
	}
}
