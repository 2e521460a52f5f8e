package nmasim

import "fmt"

// DefaultSampleSizeRange is the per-arm enrollment range used when
// Parameters.SampleSize is left as its zero value.
var DefaultSampleSizeRange = SampleSizeRange{Min: 50, Max: 200}

// SampleSizeRange bounds the number of subjects enrolled in a single arm.
// Both bounds are inclusive.
type SampleSizeRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Parameters configures a simulation run.
type Parameters struct {
	// Studies is the number of studies to simulate.
	Studies int `json:"num_studies" yaml:"num_studies"`

	// Treatments is the size of the treatment pool. Treatments are
	// identified by the 1-based IDs 1..Treatments.
	Treatments int `json:"num_treatments" yaml:"num_treatments"`

	// Effects holds the true response probability of each treatment;
	// Effects[i] belongs to treatment i+1. The length must equal
	// Treatments and every value must lie in [0, 1].
	Effects []float64 `json:"treatment_effects" yaml:"treatment_effects"`

	// SampleSize bounds per-arm enrollment. Leaving it zero selects
	// DefaultSampleSizeRange; a partially filled range is invalid.
	SampleSize SampleSizeRange `json:"sample_size_range" yaml:"sample_size_range"`
}

// Validate checks p against the constraints documented on each field. It
// returns a *ConfigurationError naming the first offending field, or nil
// when p is usable.
func (p Parameters) Validate() error {
	if p.Studies < 1 {
		return &ConfigurationError{
			Field:  "num_studies",
			Reason: fmt.Sprintf("must be at least 1, got %d", p.Studies),
		}
	}
	if p.Treatments < 2 {
		return &ConfigurationError{
			Field:  "num_treatments",
			Reason: fmt.Sprintf("must be at least 2, got %d", p.Treatments),
		}
	}
	if len(p.Effects) != p.Treatments {
		return &ConfigurationError{
			Field:  "treatment_effects",
			Reason: fmt.Sprintf("must have one entry per treatment, got %d entries for %d treatments", len(p.Effects), p.Treatments),
		}
	}
	for i, e := range p.Effects {
		// The negated form also rejects NaN.
		if !(e >= 0 && e <= 1) {
			return &ConfigurationError{
				Field:  "treatment_effects",
				Reason: fmt.Sprintf("treatment %d: probability must be between 0 and 1, got %f", i+1, e),
			}
		}
	}
	r := p.sampleSize()
	if r.Min < 1 {
		return &ConfigurationError{
			Field:  "sample_size_range",
			Reason: fmt.Sprintf("min must be at least 1, got %d", r.Min),
		}
	}
	if r.Max < r.Min {
		return &ConfigurationError{
			Field:  "sample_size_range",
			Reason: fmt.Sprintf("max must be at least min %d, got %d", r.Min, r.Max),
		}
	}
	return nil
}

// sampleSize returns the effective enrollment range, substituting the
// default for a zero value.
func (p Parameters) sampleSize() SampleSizeRange {
	if p.SampleSize == (SampleSizeRange{}) {
		return DefaultSampleSizeRange
	}
	return p.SampleSize
}
