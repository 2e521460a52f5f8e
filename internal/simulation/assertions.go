package simulation

import (
	"testing"

	"github.com/nvandessel/nmasim"
	"github.com/nvandessel/nmasim/network"
)

// AssertWellFormed asserts that every dataset in the result passes the
// structural row checks.
func AssertWellFormed(t *testing.T, result Result) {
	t.Helper()
	for i, ds := range result.Datasets {
		for _, issue := range nmasim.CheckRows(ds.Rows()) {
			t.Errorf("AssertWellFormed: replicate %d: %s", i, issue)
		}
	}
}

// AssertStudyLayout asserts that study IDs run 1..Studies in ascending
// contiguous blocks, the layout the Generator promises.
func AssertStudyLayout(t *testing.T, result Result) {
	t.Helper()
	want := result.Scenario.Params.Studies
	for i, ds := range result.Datasets {
		if got := ds.Studies(); got != want {
			t.Errorf("AssertStudyLayout: replicate %d: %d studies, want %d", i, got, want)
		}
		current := 0
		for j := 0; j < ds.Len(); j++ {
			id := ds.Row(j).StudyID
			switch {
			case id == current:
			case id == current+1:
				current = id
			default:
				t.Errorf("AssertStudyLayout: replicate %d: row %d jumps from study %d to %d", i, j, current, id)
				return
			}
		}
		if current != want {
			t.Errorf("AssertStudyLayout: replicate %d: last study %d, want %d", i, current, want)
		}
	}
}

// AssertArmBounds asserts that every study compares between 2 and
// Treatments distinct treatments, all drawn from the configured pool.
func AssertArmBounds(t *testing.T, result Result) {
	t.Helper()
	pool := result.Scenario.Params.Treatments
	for i, ds := range result.Datasets {
		for study := 1; study <= result.Scenario.Params.Studies; study++ {
			arms := ds.ArmsOf(study)
			if len(arms) < 2 || len(arms) > pool {
				t.Errorf("AssertArmBounds: replicate %d: study %d has %d arms, want 2..%d", i, study, len(arms), pool)
			}
			seen := make(map[int]bool, len(arms))
			for _, a := range arms {
				if a.TreatmentID < 1 || a.TreatmentID > pool {
					t.Errorf("AssertArmBounds: replicate %d: study %d: treatment %d outside pool 1..%d", i, study, a.TreatmentID, pool)
				}
				if seen[a.TreatmentID] {
					t.Errorf("AssertArmBounds: replicate %d: study %d: treatment %d repeated", i, study, a.TreatmentID)
				}
				seen[a.TreatmentID] = true
			}
		}
	}
}

// AssertSampleBounds asserts that enrollment stays inside the scenario's
// sample size range and responses never exceed enrollment.
func AssertSampleBounds(t *testing.T, result Result) {
	t.Helper()
	sizes := result.Scenario.SampleSizes()
	for i, ds := range result.Datasets {
		for j := 0; j < ds.Len(); j++ {
			r := ds.Row(j)
			if r.SampleSize < sizes.Min || r.SampleSize > sizes.Max {
				t.Errorf("AssertSampleBounds: replicate %d: row %d sample size %d not in [%d, %d]", i, j, r.SampleSize, sizes.Min, sizes.Max)
			}
			if r.Response < 0 || r.Response > r.SampleSize {
				t.Errorf("AssertSampleBounds: replicate %d: row %d response %d not in [0, %d]", i, j, r.Response, r.SampleSize)
			}
		}
	}
}

// AssertSameDatasets asserts that two results contain identical datasets
// replicate by replicate. Used to verify that rerunning a seeded
// scenario reproduces it exactly.
func AssertSameDatasets(t *testing.T, a, b Result) {
	t.Helper()
	if len(a.Datasets) != len(b.Datasets) {
		t.Fatalf("AssertSameDatasets: %d vs %d replicates", len(a.Datasets), len(b.Datasets))
	}
	for i := range a.Datasets {
		fa, fb := a.Datasets[i].Fingerprint(), b.Datasets[i].Fingerprint()
		if fa != fb {
			t.Errorf("AssertSameDatasets: replicate %d: fingerprint %x vs %x", i, fa, fb)
		}
	}
}

// AssertDistinctReplicates asserts that no two replicates in the result
// are identical. Replicates come off one continuing stream, so a repeat
// would mean the stream stalled.
func AssertDistinctReplicates(t *testing.T, result Result) {
	t.Helper()
	seen := make(map[uint64]int, len(result.Datasets))
	for i, ds := range result.Datasets {
		fp := ds.Fingerprint()
		if prev, dup := seen[fp]; dup {
			t.Errorf("AssertDistinctReplicates: replicates %d and %d share fingerprint %x", prev, i, fp)
		}
		seen[fp] = i
	}
}

// AssertNetworkConsistent asserts that the evidence network derived from
// each dataset agrees with the dataset itself: nodes stay inside the
// treatment pool, degrees stay below the pool size, and the direct
// comparison counts add up to the number of arm pairs simulated.
func AssertNetworkConsistent(t *testing.T, result Result) {
	t.Helper()
	pool := result.Scenario.Params.Treatments
	for i, ds := range result.Datasets {
		g := network.Build(ds)
		for _, tr := range g.Treatments() {
			if tr < 1 || tr > pool {
				t.Errorf("AssertNetworkConsistent: replicate %d: node %d outside pool 1..%d", i, tr, pool)
			}
			if deg := g.Degree(tr); deg > pool-1 {
				t.Errorf("AssertNetworkConsistent: replicate %d: treatment %d degree %d exceeds %d", i, tr, deg, pool-1)
			}
		}
		wantPairs := 0
		for study := 1; study <= result.Scenario.Params.Studies; study++ {
			k := len(ds.ArmsOf(study))
			wantPairs += k * (k - 1) / 2
		}
		gotPairs := 0
		for _, c := range g.Comparisons() {
			gotPairs += c.Studies
		}
		if gotPairs != wantPairs {
			t.Errorf("AssertNetworkConsistent: replicate %d: %d direct comparisons, want %d", i, gotPairs, wantPairs)
		}
		if g.Connected() != (len(g.Components()) == 1) {
			t.Errorf("AssertNetworkConsistent: replicate %d: Connected()=%v but %d components", i, g.Connected(), len(g.Components()))
		}
	}
}

// AssertProvenance asserts that every replicate carries provenance
// matching the scenario: the seed it was run with, a unique run ID, and
// an echo of the parameters.
func AssertProvenance(t *testing.T, result Result) {
	t.Helper()
	seen := make(map[string]int, len(result.Datasets))
	for i, ds := range result.Datasets {
		prov := ds.Provenance()
		if prov.RunID == "" {
			t.Errorf("AssertProvenance: replicate %d: empty run ID", i)
		}
		if prev, dup := seen[prov.RunID]; dup {
			t.Errorf("AssertProvenance: replicates %d and %d share run ID %s", prev, i, prov.RunID)
		}
		seen[prov.RunID] = i
		if !prov.Seeded {
			t.Errorf("AssertProvenance: replicate %d: not marked seeded", i)
		}
		if prov.Seed != result.Scenario.Seed {
			t.Errorf("AssertProvenance: replicate %d: seed %d, want %d", i, prov.Seed, result.Scenario.Seed)
		}
		if prov.Parameters.Studies != result.Scenario.Params.Studies {
			t.Errorf("AssertProvenance: replicate %d: parameters echo %d studies, want %d", i, prov.Parameters.Studies, result.Scenario.Params.Studies)
		}
		if prov.GeneratedAt.IsZero() {
			t.Errorf("AssertProvenance: replicate %d: zero generation time", i)
		}
	}
}
