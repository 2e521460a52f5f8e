package nmasim

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// spreadEffects builds a valid effects vector for a pool of the given
// size, spacing probabilities evenly inside (0, 1).
func spreadEffects(treatments int) []float64 {
	effects := make([]float64, treatments)
	for i := range effects {
		effects[i] = float64(i+1) / float64(treatments+1)
	}
	return effects
}

func TestGeneratorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("generated rows pass the structural checks for any configuration", prop.ForAll(
		func(studies, treatments int, seed int64) bool {
			params := Parameters{
				Studies:    studies,
				Treatments: treatments,
				Effects:    spreadEffects(treatments),
			}
			g, err := New(params, WithSeed(seed))
			if err != nil {
				return false
			}
			ds, err := g.Generate()
			if err != nil {
				return false
			}
			return len(CheckRows(ds.Rows())) == 0 && ds.Studies() == studies
		},
		gen.IntRange(1, 12),
		gen.IntRange(2, 8),
		gen.Int64Range(0, 1<<40),
	))

	properties.Property("equal seeds reproduce the dataset exactly", prop.ForAll(
		func(studies, treatments int, seed int64) bool {
			params := Parameters{
				Studies:    studies,
				Treatments: treatments,
				Effects:    spreadEffects(treatments),
			}
			a, err := New(params, WithSeed(seed))
			if err != nil {
				return false
			}
			b, err := New(params, WithSeed(seed))
			if err != nil {
				return false
			}
			da, err := a.Generate()
			if err != nil {
				return false
			}
			db, err := b.Generate()
			if err != nil {
				return false
			}
			return da.Fingerprint() == db.Fingerprint()
		},
		gen.IntRange(1, 10),
		gen.IntRange(2, 6),
		gen.Int64Range(0, 1<<40),
	))

	properties.Property("enrollment honors any valid sample size range", prop.ForAll(
		func(min, span int, seed int64) bool {
			params := Parameters{
				Studies:    6,
				Treatments: 3,
				Effects:    spreadEffects(3),
				SampleSize: SampleSizeRange{Min: min, Max: min + span},
			}
			g, err := New(params, WithSeed(seed))
			if err != nil {
				return false
			}
			ds, err := g.Generate()
			if err != nil {
				return false
			}
			for i := 0; i < ds.Len(); i++ {
				r := ds.Row(i)
				if r.SampleSize < min || r.SampleSize > min+span {
					return false
				}
				if r.Response < 0 || r.Response > r.SampleSize {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 60),
		gen.IntRange(0, 120),
		gen.Int64Range(0, 1<<40),
	))

	properties.Property("out-of-range effects are rejected before any draw", prop.ForAll(
		func(bad float64, seed int64) bool {
			rng := rand.New(rand.NewSource(seed))
			twin := rand.New(rand.NewSource(seed))
			_, err := New(Parameters{
				Studies:    4,
				Treatments: 2,
				Effects:    []float64{0.5, bad},
			}, WithRand(rng))
			if !IsConfigurationError(err) {
				return false
			}
			for i := 0; i < 4; i++ {
				if rng.Int63() != twin.Int63() {
					return false
				}
			}
			return true
		},
		gen.Float64Range(1.0001, 1000),
		gen.Int64Range(0, 1<<40),
	))

	properties.TestingRun(t)
}
