package interp

import (
	"math"
	"sort"
)

// Linear is an exact piecewise-linear interpolant that holds the boundary
// values outside the sampled range. A NaN sample only affects the two
// segments adjacent to it.
type Linear struct {
	xs, ys []float64
}

// NewLinear fits a piecewise-linear interpolant. The samples are copied.
func NewLinear(xs, ys []float64) (*Linear, error) {
	if err := validateSamples(xs, ys); err != nil {
		return nil, err
	}

	return &Linear{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
	}, nil
}

// Predict returns the interpolated value at x.
func (l *Linear) Predict(x float64) float64 {
	n := len(l.xs)
	if math.IsNaN(x) {
		return math.NaN()
	}

	if x <= l.xs[0] {
		return l.ys[0]
	}

	if x >= l.xs[n-1] {
		return l.ys[n-1]
	}

	// j is the left knot of the segment containing x.
	j := sort.SearchFloat64s(l.xs, x)
	if l.xs[j] == x {
		return l.ys[j]
	}
	j--

	x0, x1 := l.xs[j], l.xs[j+1]
	y0, y1 := l.ys[j], l.ys[j+1]
	slope := (y1 - y0) / (x1 - x0)

	v := slope*(x-x0) + y0
	if math.IsNaN(v) {
		v = slope*(x-x1) + y1
		if math.IsNaN(v) && y0 == y1 {
			v = y0
		}
	}

	return v
}
