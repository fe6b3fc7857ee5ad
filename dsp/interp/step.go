package interp

import "sort"

// Nearest returns the sample closest to the query. Ties at a midpoint go to
// the lower sample.
type Nearest struct {
	xs, ys []float64
}

// NewNearest fits a nearest-neighbour interpolant. The samples are copied.
func NewNearest(xs, ys []float64) (*Nearest, error) {
	if err := validateSamples(xs, ys); err != nil {
		return nil, err
	}

	return &Nearest{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
	}, nil
}

// Predict returns the value of the nearest sample.
func (s *Nearest) Predict(x float64) float64 {
	n := len(s.xs)
	if x <= s.xs[0] {
		return s.ys[0]
	}

	if x >= s.xs[n-1] {
		return s.ys[n-1]
	}

	j := sort.SearchFloat64s(s.xs, x)
	if s.xs[j] == x {
		return s.ys[j]
	}

	mid := 0.5 * (s.xs[j-1] + s.xs[j])
	if x <= mid {
		return s.ys[j-1]
	}

	return s.ys[j]
}

// Step holds the previous sample (or the next one when next is set) between
// knots.
type Step struct {
	xs, ys []float64
	next   bool
}

// NewStep fits a step interpolant. With next=false it reproduces "previous"
// interpolation, otherwise "next".
func NewStep(xs, ys []float64, next bool) (*Step, error) {
	if err := validateSamples(xs, ys); err != nil {
		return nil, err
	}

	return &Step{
		xs:   append([]float64(nil), xs...),
		ys:   append([]float64(nil), ys...),
		next: next,
	}, nil
}

// Predict returns the step value at x.
func (s *Step) Predict(x float64) float64 {
	n := len(s.xs)
	if x <= s.xs[0] {
		return s.ys[0]
	}

	if x >= s.xs[n-1] {
		return s.ys[n-1]
	}

	j := sort.SearchFloat64s(s.xs, x)
	if s.xs[j] == x || s.next {
		return s.ys[j]
	}

	return s.ys[j-1]
}
