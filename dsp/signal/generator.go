package signal

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Generator draws synthetic test signals from a shared innovation stream.
// Successive calls continue the stream, so paths from one generator are
// independent of each other. Generation is safe for concurrent use when the
// source is (the default [NormalSource] is); SetSeed is not.
type Generator struct {
	src    Innovations
	seed   uint64
	stdDev float64
	logger *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the seed of the generator-owned innovation source.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithSource replaces the generator-owned source. The seed option is ignored
// for a custom source unless it implements Seed(uint64).
func WithSource(src Innovations) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithStdDev scales every innovation by sigma (default 1). Negative values
// are ignored.
func WithStdDev(sigma float64) Option {
	return func(g *Generator) {
		if sigma >= 0 {
			g.stdDev = sigma
		}
	}
}

// WithLogger sets the logger used for advisory warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a generator seeded with 1 unless configured otherwise.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		seed:   1,
		stdDev: 1,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	if g.src == nil {
		g.src = NewNormalSource(g.seed)
	} else if s, ok := g.src.(interface{ Seed(uint64) }); ok {
		s.Seed(g.seed)
	}
	return g
}

// Seed returns the last seed applied to the source.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// SetSeed restarts the innovation stream from seed. It is a no-op on the
// stream for custom sources that cannot be re-seeded.
func (g *Generator) SetSeed(seed uint64) {
	g.seed = seed
	if s, ok := g.src.(interface{ Seed(uint64) }); ok {
		s.Seed(seed)
	}
}

// StdDev returns the innovation scale.
func (g *Generator) StdDev() float64 {
	return g.stdDev
}

// GaussianNoise returns samples of i.i.d. N(0, stdDev^2) noise.
func (g *Generator) GaussianNoise(samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d: %w", samples, ErrInvalidLength)
	}
	out := make([]float64, samples)
	draw(g.src, out)
	if g.stdDev != 1 {
		for i := range out {
			out[i] *= g.stdDev
		}
	}
	return out, nil
}

// Sine returns amplitude*sin(omega*n) for n = 0..samples-1, with omega in
// radians per sample.
func (g *Generator) Sine(omega, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d: %w", samples, ErrInvalidLength)
	}
	if math.IsNaN(omega) || math.IsInf(omega, 0) {
		return nil, fmt.Errorf("sine frequency must be finite: %f", omega)
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = amplitude * math.Sin(omega*float64(i))
	}
	return out, nil
}
