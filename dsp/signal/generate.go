package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-radprof/dsp/core"
	"gonum.org/v1/gonum/mat"
)

// fwhmToSigma converts a Gaussian full width at half maximum to sigma.
var fwhmToSigma = 1 / (2 * math.Sqrt(2*math.Ln2))

// Generator creates deterministic square cutouts from a shared configuration.
type Generator struct {
	cfg  core.FieldConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured cutout generator.
func NewGenerator(opts ...core.FieldOption) *Generator {
	return &Generator{
		cfg:  core.ApplyFieldOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured generator with
// generator-specific options.
func NewGeneratorWithOptions(fieldOpts []core.FieldOption, opts ...Option) *Generator {
	g := NewGenerator(fieldOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator field configuration.
func (g *Generator) Config() core.FieldConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 { return g.seed }

// SetSeed replaces the noise seed.
func (g *Generator) SetSeed(seed int64) { g.seed = seed }

func (g *Generator) field() *mat.Dense {
	return mat.NewDense(g.cfg.Size, g.cfg.Size, nil)
}

// Constant returns a cutout filled with v.
func (g *Generator) Constant(v float64) *mat.Dense {
	m := g.field()
	for i := 0; i < g.cfg.Size; i++ {
		core.Fill(m.RawRowView(i), v)
	}
	return m
}

// Gaussian returns a circular Gaussian of the given peak amplitude centred on
// pixel (row, col). fwhm is in physical units and is converted with the
// configured pixel scale.
func (g *Generator) Gaussian(amplitude, fwhm float64, row, col int) (*mat.Dense, error) {
	if fwhm <= 0 {
		return nil, fmt.Errorf("gaussian fwhm must be > 0: %f", fwhm)
	}

	sigma := g.cfg.ToPixels(fwhm) * fwhmToSigma
	den := 2 * sigma * sigma

	m := g.field()
	for i := 0; i < g.cfg.Size; i++ {
		di := float64(i - row)
		out := m.RawRowView(i)
		for j := range out {
			dj := float64(j - col)
			out[j] = amplitude * math.Exp(-(di*di+dj*dj)/den)
		}
	}
	return m, nil
}

// Ring returns a Gaussian annulus of the given radius and width (both in
// physical units) centred on pixel (row, col).
func (g *Generator) Ring(amplitude, radius, width float64, row, col int) (*mat.Dense, error) {
	if radius < 0 {
		return nil, fmt.Errorf("ring radius must be >= 0: %f", radius)
	}
	if width <= 0 {
		return nil, fmt.Errorf("ring width must be > 0: %f", width)
	}

	r0 := g.cfg.ToPixels(radius)
	w := g.cfg.ToPixels(width)

	m := g.field()
	for i := 0; i < g.cfg.Size; i++ {
		di := float64(i - row)
		out := m.RawRowView(i)
		for j := range out {
			dj := float64(j - col)
			d := math.Sqrt(di*di+dj*dj) - r0
			out[j] = amplitude * math.Exp(-d*d/(2*w*w))
		}
	}
	return m, nil
}

// WhiteNoise returns deterministic Gaussian white noise with standard
// deviation sigma.
func (g *Generator) WhiteNoise(sigma float64) (*mat.Dense, error) {
	if sigma < 0 {
		return nil, fmt.Errorf("noise sigma must be >= 0: %f", sigma)
	}

	rng := rand.New(rand.NewSource(g.seed))

	m := g.field()
	for i := 0; i < g.cfg.Size; i++ {
		out := m.RawRowView(i)
		for j := range out {
			out[j] = rng.NormFloat64() * sigma
		}
	}
	return m, nil
}

// Center returns the default profile center of the configured cutout.
func (g *Generator) Center() (row, col int) {
	return g.cfg.Size / 2, g.cfg.Size / 2
}
