package radial

import (
	"fmt"

	"github.com/cwbudde/algo-radprof/dsp/interp"
)

// DefaultBins is the number of radial bins used when no [WithBins] option
// is given.
const DefaultBins = 50

// Center is an integer pixel position. Row indexes the first matrix
// dimension and Col the second.
type Center struct {
	Row, Col int
}

func (c Center) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// EmptyBinPolicy selects how bins without any pixel are handled.
type EmptyBinPolicy int

const (
	// EmptyBinsDrop reports empty bins as NaN profile values and fits the
	// interpolant through the remaining samples only.
	EmptyBinsDrop EmptyBinPolicy = iota
	// EmptyBinsPropagate feeds NaN samples to the interpolant. Linear and
	// step kinds spread NaN to the neighbouring segments, spline kinds fail.
	EmptyBinsPropagate
	// EmptyBinsReject fails with ErrEmptyBin.
	EmptyBinsReject
)

var policyNames = [...]string{
	EmptyBinsDrop:      "drop",
	EmptyBinsPropagate: "propagate",
	EmptyBinsReject:    "reject",
}

func (p EmptyBinPolicy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("EmptyBinPolicy(%d)", int(p))
	}

	return policyNames[p]
}

// ParseEmptyBinPolicy resolves a policy by name.
func ParseEmptyBinPolicy(name string) (EmptyBinPolicy, error) {
	for i, n := range policyNames {
		if n == name {
			return EmptyBinPolicy(i), nil
		}
	}

	return 0, fmt.Errorf("radial: unknown empty-bin policy %q", name)
}

// Option configures a profile computation.
type Option func(*config)

type config struct {
	bins      int
	center    Center
	hasCenter bool
	kind      interp.Kind
	rescale   bool
	empty     EmptyBinPolicy
}

func defaultConfig() config {
	return config{
		bins:  DefaultBins,
		kind:  interp.KindLinear,
		empty: EmptyBinsDrop,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithBins sets the number of radial bins. Non-positive counts make the
// computation fail with ErrInvalidBins.
func WithBins(n int) Option {
	return func(cfg *config) {
		cfg.bins = n
	}
}

// WithCenter sets the center pixel. Without it the center is
// (rows/2, cols/2), which is only accepted for square images.
func WithCenter(row, col int) Option {
	return func(cfg *config) {
		cfg.center = Center{Row: row, Col: col}
		cfg.hasCenter = true
	}
}

// WithInterpolation selects the interpolation kind used to rebuild the map.
func WithInterpolation(kind interp.Kind) Option {
	return func(cfg *config) {
		cfg.kind = kind
	}
}

// WithRescale matches the reconstructed map's mean and standard deviation to
// the input image.
func WithRescale() Option {
	return func(cfg *config) {
		cfg.rescale = true
	}
}

// WithEmptyBins sets the empty-bin policy. Unknown policies are ignored.
func WithEmptyBins(policy EmptyBinPolicy) Option {
	return func(cfg *config) {
		if policy < EmptyBinsDrop || policy > EmptyBinsReject {
			return
		}

		cfg.empty = policy
	}
}
