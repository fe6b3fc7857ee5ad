package window

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Generate2D returns the rows x cols separable window w[i,j] = wy[i]*wx[j].
func Generate2D(t Type, rows, cols int, opts ...Option) (*mat.Dense, error) {
	if err := validate2D(t, rows, cols, applyOptions(opts)); err != nil {
		return nil, err
	}

	wx := Generate(t, cols, opts...)
	wy := Generate(t, rows, opts...)

	out := mat.NewDense(rows, cols, nil)
	for i, w := range wy {
		floats.ScaleTo(out.RawRowView(i), w, wx)
	}

	return out, nil
}

// Apply2D multiplies m in place by the separable 2D window.
func Apply2D(t Type, m *mat.Dense, opts ...Option) error {
	rows, cols := m.Dims()
	if err := validate2D(t, rows, cols, applyOptions(opts)); err != nil {
		return err
	}

	wx := Generate(t, cols, opts...)
	wy := Generate(t, rows, opts...)

	scratch := make([]float64, cols)
	for i, w := range wy {
		floats.ScaleTo(scratch, w, wx)
		vecmath.MulBlockInPlace(m.RawRowView(i), scratch)
	}

	return nil
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf), opts...)
	vecmath.MulBlockInPlace(buf, coeffs)
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}
