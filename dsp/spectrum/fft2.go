package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-radprof/dsp/core"
	"gonum.org/v1/gonum/mat"
)

// ErrEmptyInput is returned for matrices with zero rows or columns.
var ErrEmptyInput = errors.New("spectrum: empty input")

// PaddedSize returns the transform size used for an n-sample axis.
func PaddedSize(n int) int {
	return core.NextPowerOf2(n)
}

// FFT2 returns the unnormalised 2D DFT of m. The result has
// PaddedSize(rows) x PaddedSize(cols) elements.
func FFT2(m mat.Matrix) (*mat.CDense, error) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyInput
	}

	out := mat.NewCDense(PaddedSize(rows), PaddedSize(cols), nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, complex(m.At(i, j), 0))
		}
	}

	if err := transform2(out, false); err != nil {
		return nil, err
	}

	return out, nil
}

// FFT2Complex is the complex-input counterpart of [FFT2].
func FFT2Complex(m mat.CMatrix) (*mat.CDense, error) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyInput
	}

	out := mat.NewCDense(PaddedSize(rows), PaddedSize(cols), nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, m.At(i, j))
		}
	}

	if err := transform2(out, false); err != nil {
		return nil, err
	}

	return out, nil
}

// InverseFFT2 returns the normalised inverse 2D DFT of c. Both dimensions of
// c must already be powers of two.
func InverseFFT2(c mat.CMatrix) (*mat.CDense, error) {
	rows, cols := c.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyInput
	}

	if PaddedSize(rows) != rows || PaddedSize(cols) != cols {
		return nil, fmt.Errorf("spectrum: inverse size %dx%d is not a power of two", rows, cols)
	}

	out := mat.NewCDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, c.At(i, j))
		}
	}

	if err := transform2(out, true); err != nil {
		return nil, err
	}

	return out, nil
}

// transform2 runs the row then column passes in place.
func transform2(c *mat.CDense, inverse bool) error {
	rows, cols := c.Dims()

	rowPlan, err := algofft.NewPlan64(cols)
	if err != nil {
		return fmt.Errorf("spectrum: row plan: %w", err)
	}

	colPlan := rowPlan
	if rows != cols {
		colPlan, err = algofft.NewPlan64(rows)
		if err != nil {
			return fmt.Errorf("spectrum: column plan: %w", err)
		}
	}

	run := func(p *algofft.Plan[complex128], buf []complex128) error {
		if inverse {
			return p.Inverse(buf, buf)
		}

		return p.Forward(buf, buf)
	}

	line := make([]complex128, cols)
	for i := 0; i < rows; i++ {
		for j := range line {
			line[j] = c.At(i, j)
		}

		if err := run(rowPlan, line); err != nil {
			return fmt.Errorf("spectrum: row %d: %w", i, err)
		}

		for j, v := range line {
			c.Set(i, j, v)
		}
	}

	line = make([]complex128, rows)
	for j := 0; j < cols; j++ {
		for i := range line {
			line[i] = c.At(i, j)
		}

		if err := run(colPlan, line); err != nil {
			return fmt.Errorf("spectrum: column %d: %w", j, err)
		}

		for i, v := range line {
			c.Set(i, j, v)
		}
	}

	return nil
}
