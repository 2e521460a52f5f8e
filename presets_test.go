package nmasim

import "testing"

func TestPresets(t *testing.T) {
	tests := []struct {
		name       string
		params     Parameters
		studies    int
		treatments int
	}{
		{"smoke test", PresetSmokeTest(), 10, 3},
		{"sparse", PresetSparse(), 15, 8},
		{"dense", PresetDense(), 60, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.params.Validate(); err != nil {
				t.Fatalf("preset does not validate: %v", err)
			}
			if tt.params.Studies != tt.studies {
				t.Errorf("Studies = %d, want %d", tt.params.Studies, tt.studies)
			}
			if tt.params.Treatments != tt.treatments {
				t.Errorf("Treatments = %d, want %d", tt.params.Treatments, tt.treatments)
			}
			if len(tt.params.Effects) != tt.params.Treatments {
				t.Errorf("preset carries %d effects for %d treatments", len(tt.params.Effects), tt.params.Treatments)
			}

			ds := mustGenerate(t, tt.params, WithSeed(1))
			if issues := CheckRows(ds.Rows()); len(issues) > 0 {
				t.Errorf("preset generates invalid rows: %v", issues)
			}
		})
	}
}

func TestPresetsReturnFreshValues(t *testing.T) {
	a := PresetSmokeTest()
	a.Effects[0] = 0.99

	b := PresetSmokeTest()
	if b.Effects[0] != 0.3 {
		t.Error("presets must not share effect slices across calls")
	}
}
