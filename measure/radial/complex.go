package radial

import (
	"fmt"

	"github.com/cwbudde/algo-radprof/dsp/interp"
	"github.com/cwbudde/algo-radprof/stats/binned"
	"gonum.org/v1/gonum/mat"
)

// ComplexResult is the outcome of a complex-valued profile computation.
// The layout of Radii, Values and Counts matches [Result].
type ComplexResult struct {
	Map         *mat.CDense
	Radii       []float64
	Values      []complex128
	Counts      []int
	Center      Center
	MaxDistance float64
	EmptyBins   []int
	Kind        interp.Kind
}

// ComputeComplex profiles the real and imaginary parts of img independently
// with the same geometry and recombines them.
func ComputeComplex(img mat.CMatrix, opts ...Option) (*ComplexResult, error) {
	cfg := applyOptions(opts)

	rows, cols := img.Dims()

	g, err := newGeometry(rows, cols, &cfg)
	if err != nil {
		return nil, err
	}

	acc, err := binned.NewComplexAccumulator(g.bins)
	if err != nil {
		return nil, err
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			acc.Add(g.labels[i*cols+j], img.At(i, j))
		}
	}

	means := acc.Means()
	binCounts := acc.Counts()

	empty := emptyBins(binCounts)
	if cfg.empty == EmptyBinsReject && len(empty) > 0 {
		return nil, fmt.Errorf("%w: bins %v", ErrEmptyBin, empty)
	}

	radii := g.radii()
	values := make([]complex128, g.bins+1)
	values[0] = img.At(g.center.Row, g.center.Col)
	copy(values[1:], means)

	re := make([]float64, len(values))
	im := make([]float64, len(values))

	for k, v := range values {
		re[k], im[k] = real(v), imag(v)
	}

	pRe, err := fitProfile(radii, re, &cfg)
	if err != nil {
		return nil, fmt.Errorf("real part: %w", err)
	}

	pIm, err := fitProfile(radii, im, &cfg)
	if err != nil {
		return nil, fmt.Errorf("imaginary part: %w", err)
	}

	out := mat.NewCDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d := g.dist[i*cols+j]
			out.Set(i, j, complex(pRe.Predict(d), pIm.Predict(d)))
		}
	}

	if cfg.rescale {
		rescaleComplex(out, img)
	}

	return &ComplexResult{
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

// ResidualComplex returns img - res.Map.
func ResidualComplex(img mat.CMatrix, res *ComplexResult) (*mat.CDense, error) {
	if res == nil || res.Map == nil {
		return nil, fmt.Errorf("%w: missing result map", ErrShapeMismatch)
	}

	rows, cols := img.Dims()
	mr, mc := res.Map.Dims()

	if rows != mr || cols != mc {
		return nil, fmt.Errorf("%w: image %dx%d, map %dx%d", ErrShapeMismatch, rows, cols, mr, mc)
	}

	out := mat.NewCDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, img.At(i, j)-res.Map.At(i, j))
		}
	}

	return out, nil
}
