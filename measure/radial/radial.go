package radial

import (
	"fmt"

	"github.com/cwbudde/algo-radprof/dsp/core"
	"github.com/cwbudde/algo-radprof/dsp/interp"
	"github.com/cwbudde/algo-radprof/stats/binned"
	"github.com/cwbudde/algo-radprof/stats/field"
	"gonum.org/v1/gonum/mat"
)

// Result is the outcome of a real-valued profile computation.
//
// Radii, Values and Counts all have length bins+1. Index 0 is the anchor
// sample at radius zero holding the center pixel value (Counts[0] is 1),
// index k+1 describes bin k.
type Result struct {
	// Map is the reconstructed radially symmetric image, same shape as the input.
	Map *mat.Dense
	// Radii are the profile abscissae in pixels, strictly increasing.
	Radii []float64
	// Values are the profile ordinates. Empty bins are NaN.
	Values []float64
	// Counts is the number of pixels averaged into each profile sample.
	Counts []int
	// Center is the pixel distances were measured from.
	Center Center
	// MaxDistance is the largest pixel distance from Center.
	MaxDistance float64
	// EmptyBins lists the bin indices (not profile indices) with no pixels.
	EmptyBins []int
	// Kind is the interpolation used to rebuild Map.
	Kind interp.Kind
}

// Compute bins img by distance from the center, averages each bin and
// reconstructs a radially symmetric map of the same shape.
func Compute(img mat.Matrix, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts)

	rows, cols := img.Dims()

	g, err := newGeometry(rows, cols, &cfg)
	if err != nil {
		return nil, err
	}

	pixels := field.Flatten(img, nil)

	acc, err := binned.NewAccumulator(g.bins)
	if err != nil {
		return nil, err
	}

	for k, v := range pixels {
		acc.Add(g.labels[k], v)
	}

	means := acc.Means()
	binCounts := acc.Counts()

	empty := emptyBins(binCounts)
	if cfg.empty == EmptyBinsReject && len(empty) > 0 {
		return nil, fmt.Errorf("%w: bins %v", ErrEmptyBin, empty)
	}

	radii := g.radii()
	values := make([]float64, g.bins+1)
	values[0] = pixels[g.anchorIndex()]
	copy(values[1:], means)

	p, err := fitProfile(radii, values, &cfg)
	if err != nil {
		return nil, err
	}

	out := mat.NewDense(rows, cols, nil)
	// A fresh Dense has stride == cols.
	data := out.RawMatrix().Data
	for k, d := range g.dist {
		data[k] = p.Predict(d)
	}

	if cfg.rescale {
		rescale(out, img)
	}

	return &Result{
		Map:         out,
		Radii:       radii,
		Values:      values,
		Counts:      profileCounts(binCounts),
		Center:      g.center,
		MaxDistance: g.maxDist,
		EmptyBins:   empty,
		Kind:        cfg.kind,
	}, nil
}

// Residual returns img - res.Map.
func Residual(img mat.Matrix, res *Result) (*mat.Dense, error) {
	if res == nil || res.Map == nil {
		return nil, fmt.Errorf("%w: missing result map", ErrShapeMismatch)
	}

	rows, cols := img.Dims()
	mr, mc := res.Map.Dims()

	if rows != mr || cols != mc {
		return nil, fmt.Errorf("%w: image %dx%d, map %dx%d", ErrShapeMismatch, rows, cols, mr, mc)
	}

	out := mat.NewDense(rows, cols, nil)
	out.Sub(img, res.Map)

	return out, nil
}

// fitProfile builds the interpolant for one real profile according to the
// empty-bin policy.
func fitProfile(radii, values []float64, cfg *config) (interp.Interpolator, error) {
	xs, ys := radii, values

	if cfg.empty == EmptyBinsDrop {
		xs = make([]float64, 0, len(radii))
		ys = make([]float64, 0, len(values))

		for k, v := range values {
			if !core.IsFinite(v) {
				continue
			}

			xs = append(xs, radii[k])
			ys = append(ys, v)
		}
	}

	p, err := interp.New(cfg.kind, xs, ys)
	if err != nil {
		return nil, fmt.Errorf("radial: build %s profile: %w", cfg.kind, err)
	}

	return p, nil
}

func profileCounts(binCounts []int) []int {
	out := make([]int, len(binCounts)+1)
	out[0] = 1
	copy(out[1:], binCounts)

	return out
}
