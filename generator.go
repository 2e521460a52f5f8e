package nmasim

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/nvandessel/nmasim/internal/logging"
)

// Generator produces datasets from a fixed set of Parameters. A Generator
// owns a single random stream: successive Generate calls continue the
// stream, so each call yields a different dataset while the sequence as a
// whole stays reproducible under a seed.
//
// A Generator is not safe for concurrent use; the stream is shared
// state. Parallel generation wants one Generator per goroutine, each
// with its own seed.
type Generator struct {
	params Parameters
	sizes  SampleSizeRange
	rng    *rand.Rand
	logger *slog.Logger

	seed   int64
	seeded bool
}

// Option configures a Generator. When options conflict, the last one
// wins.
type Option func(*Generator)

// WithSeed makes the Generator deterministic: equal parameters and equal
// seed yield identical datasets. Every seed value is valid, including
// zero.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
		g.seed = seed
		g.seeded = true
	}
}

// WithRand supplies the random source directly. The caller keeps
// ownership of rng; the Generator advances it as it draws.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
		g.seed = 0
		g.seeded = false
	}
}

// WithLogger attaches a structured logger. Generation logs one line per
// study at debug level and one per arm at trace level; the default logger
// discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// New validates params and builds a Generator. Validation happens before
// any option touches a random source, so invalid parameters never consume
// a draw. Without WithSeed or WithRand the stream is seeded from the wall
// clock and runs are not repeatable.
func New(params Parameters, opts ...Option) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	params.Effects = append([]float64(nil), params.Effects...)
	g := &Generator{
		params: params,
		sizes:  params.sampleSize(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g, nil
}

// Generate simulates one dataset. Studies appear in simulation order and
// within a study the arms keep the order their treatments were drawn in.
func (g *Generator) Generate() (*Dataset, error) {
	start := time.Now()
	ctx := context.Background()
	rows := make([]ArmRecord, 0, g.params.Studies*2)
	for study := 1; study <= g.params.Studies; study++ {
		k := g.intRange(2, g.params.Treatments)
		arms := g.rng.Perm(g.params.Treatments)[:k]
		for _, a := range arms {
			treatment := a + 1
			size := g.intRange(g.sizes.Min, g.sizes.Max)
			responses := g.binomial(size, g.params.Effects[a])
			rows = append(rows, ArmRecord{
				StudyID:     study,
				TreatmentID: treatment,
				SampleSize:  size,
				Response:    responses,
			})
			g.logger.Log(ctx, logging.LevelTrace, "arm simulated",
				"study", study, "treatment", treatment, "n", size, "responses", responses)
		}
		g.logger.Debug("study simulated", "study", study, "arms", k)
	}
	ds := &Dataset{rows: rows, prov: g.provenance()}
	g.logger.Info("dataset generated",
		"studies", g.params.Studies, "rows", len(rows), "elapsed", time.Since(start))
	return ds, nil
}

// Replicate generates n datasets off the Generator's stream. Under a seed
// the whole sequence is reproducible as a unit, and each replicate gets
// its own provenance.
func (g *Generator) Replicate(n int) ([]*Dataset, error) {
	if n < 1 {
		return nil, &ConfigurationError{
			Field:  "replicates",
			Reason: fmt.Sprintf("must be at least 1, got %d", n),
		}
	}
	out := make([]*Dataset, 0, n)
	for i := 0; i < n; i++ {
		ds, err := g.Generate()
		if err != nil {
			return nil, err
		}
		out = append(out, ds)
	}
	return out, nil
}

// intRange returns a uniform draw from [min, max]. A degenerate range is
// returned directly without consuming a draw.
func (g *Generator) intRange(min, max int) int {
	if min >= max {
		return min
	}
	return min + g.rng.Intn(max-min+1)
}

// binomial draws from Binomial(n, p) by summing n Bernoulli trials. The
// strict comparison keeps the endpoints exact: p=0 always yields 0 and
// p=1 always yields n.
func (g *Generator) binomial(n int, p float64) int {
	successes := 0
	for i := 0; i < n; i++ {
		if g.rng.Float64() < p {
			successes++
		}
	}
	return successes
}

func (g *Generator) provenance() Provenance {
	params := g.params
	params.Effects = append([]float64(nil), params.Effects...)
	return Provenance{
		RunID:       uuid.NewString(),
		Seed:        g.seed,
		Seeded:      g.seeded,
		Parameters:  params,
		GeneratedAt: time.Now().UTC(),
	}
}

// Generate simulates a dataset in one shot. It is shorthand for New
// followed by Generator.Generate; without WithSeed or WithRand the
// stream is seeded from the wall clock.
func Generate(params Parameters, opts ...Option) (*Dataset, error) {
	g, err := New(params, opts...)
	if err != nil {
		return nil, err
	}
	return g.Generate()
}
