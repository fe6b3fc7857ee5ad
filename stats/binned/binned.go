package binned

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-radprof/dsp/core"
)

var (
	// ErrLengthMismatch is returned when values and labels differ in length.
	ErrLengthMismatch = errors.New("binned: values and labels length mismatch")
	// ErrInvalidCount is returned for a non-positive bin count.
	ErrInvalidCount = errors.New("binned: bin count must be > 0")
)

// Accumulator sums real samples per label. Labels outside [0, n) are
// ignored. It is not safe for concurrent use.
type Accumulator struct {
	sums   []float64
	counts []int
}

// NewAccumulator creates an accumulator with n bins. n must be positive.
func NewAccumulator(n int) (*Accumulator, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}

	return &Accumulator{
		sums:   make([]float64, n),
		counts: make([]int, n),
	}, nil
}

// Len returns the number of bins.
func (a *Accumulator) Len() int { return len(a.sums) }

// Add accumulates v into bin label.
func (a *Accumulator) Add(label int, v float64) {
	if label < 0 || label >= len(a.sums) {
		return
	}

	a.sums[label] += v
	a.counts[label]++
}

// Means returns the per-bin means. Empty bins are NaN.
func (a *Accumulator) Means() []float64 {
	out := make([]float64, len(a.sums))
	for i, s := range a.sums {
		if a.counts[i] == 0 {
			out[i] = math.NaN()
			continue
		}

		out[i] = s / float64(a.counts[i])
	}

	return out
}

// Counts returns a copy of the per-bin sample counts.
func (a *Accumulator) Counts() []int {
	return append([]int(nil), a.counts...)
}

// Reset clears all bins.
func (a *Accumulator) Reset() {
	core.Zero(a.sums)
	clear(a.counts)
}

// ComplexAccumulator sums complex samples per label with independent real
// and imaginary totals.
type ComplexAccumulator struct {
	re, im *Accumulator
}

// NewComplexAccumulator creates a complex accumulator with n bins.
func NewComplexAccumulator(n int) (*ComplexAccumulator, error) {
	re, err := NewAccumulator(n)
	if err != nil {
		return nil, err
	}

	im, _ := NewAccumulator(n)

	return &ComplexAccumulator{re: re, im: im}, nil
}

// Len returns the number of bins.
func (a *ComplexAccumulator) Len() int { return a.re.Len() }

// Add accumulates v into bin label.
func (a *ComplexAccumulator) Add(label int, v complex128) {
	a.re.Add(label, real(v))
	a.im.Add(label, imag(v))
}

// Means returns the per-bin complex means. Empty bins are NaN+NaNi.
func (a *ComplexAccumulator) Means() []complex128 {
	re := a.re.Means()
	im := a.im.Means()

	out := make([]complex128, len(re))
	for i := range re {
		out[i] = complex(re[i], im[i])
	}

	return out
}

// Counts returns a copy of the per-bin sample counts.
func (a *ComplexAccumulator) Counts() []int { return a.re.Counts() }

// Reset clears all bins.
func (a *ComplexAccumulator) Reset() {
	a.re.Reset()
	a.im.Reset()
}

// Mean computes per-label means of values over n bins in one call.
func Mean(values []float64, labels []int, n int) (means []float64, counts []int, err error) {
	if len(values) != len(labels) {
		return nil, nil, fmt.Errorf("%w: %d values, %d labels", ErrLengthMismatch, len(values), len(labels))
	}

	acc, err := NewAccumulator(n)
	if err != nil {
		return nil, nil, err
	}

	for i, v := range values {
		acc.Add(labels[i], v)
	}

	return acc.Means(), acc.Counts(), nil
}

// MeanComplex is the complex counterpart of [Mean].
func MeanComplex(values []complex128, labels []int, n int) (means []complex128, counts []int, err error) {
	if len(values) != len(labels) {
		return nil, nil, fmt.Errorf("%w: %d values, %d labels", ErrLengthMismatch, len(values), len(labels))
	}

	acc, err := NewComplexAccumulator(n)
	if err != nil {
		return nil, nil, err
	}

	for i, v := range values {
		acc.Add(labels[i], v)
	}

	return acc.Means(), acc.Counts(), nil
}
