package plot

import "github.com/cwbudde/algo-radprof/dsp/interp"

const (
	// DefaultWidth is the default output width in pixels.
	DefaultWidth = 480
	// DefaultHeight is the default output height in pixels.
	DefaultHeight = 360
	// ProfileSamples is the number of points the profile curve is drawn with.
	ProfileSamples = 1001
)

// Option configures rendering.
type Option func(*config)

type config struct {
	width  int
	height int
	title  string
	kind   interp.Kind
}

func defaultConfig() config {
	return config{
		width:  DefaultWidth,
		height: DefaultHeight,
		kind:   interp.KindLinear,
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

// WithSize sets the output size. For maps the width is a minimum: the image
// is upscaled by the largest integer factor that keeps it at or below w
// columns. Non-positive values are ignored.
func WithSize(w, h int) Option {
	return func(c *config) {
		if w > 0 {
			c.width = w
		}

		if h > 0 {
			c.height = h
		}
	}
}

// WithTitle draws s above the plot.
func WithTitle(s string) Option {
	return func(c *config) {
		c.title = s
	}
}

// WithKind selects the interpolation used to draw the profile curve.
func WithKind(kind interp.Kind) Option {
	return func(c *config) {
		c.kind = kind
	}
}
