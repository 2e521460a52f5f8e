package nmasim

// Presets return ready-to-use parameter sets for common network shapes.
// They are starting points: callers may adjust any field before passing
// the result to New or Generate.

// PresetSmokeTest is the smallest useful configuration: ten studies over
// three treatments with well separated effects and default enrollment.
// Suited to examples and quick checks.
func PresetSmokeTest() Parameters {
	return Parameters{
		Studies:    10,
		Treatments: 3,
		Effects:    []float64{0.3, 0.5, 0.7},
		SampleSize: DefaultSampleSizeRange,
	}
}

// PresetSparse spreads few studies over a large treatment pool, so many
// treatment pairs are never compared directly and the evidence network
// may be disconnected.
func PresetSparse() Parameters {
	return Parameters{
		Studies:    15,
		Treatments: 8,
		Effects:    []float64{0.15, 0.25, 0.35, 0.45, 0.55, 0.65, 0.75, 0.85},
		SampleSize: SampleSizeRange{Min: 30, Max: 120},
	}
}

// PresetDense piles many studies onto a small treatment pool, so every
// treatment pair is compared directly in several studies.
func PresetDense() Parameters {
	return Parameters{
		Studies:    60,
		Treatments: 4,
		Effects:    []float64{0.2, 0.4, 0.6, 0.8},
		SampleSize: SampleSizeRange{Min: 100, Max: 400},
	}
}
