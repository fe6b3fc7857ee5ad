package field

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ComplexStats summarises a complex image. Variance is the mean squared
// modulus of the deviation from the complex mean, so StdDev combines the
// real and imaginary spreads.
type ComplexStats struct {
	Rows, Cols int
	Mean       complex128
	Variance   float64
	StdDev     float64
}

// CalculateComplex computes [ComplexStats] for m.
func CalculateComplex(m mat.CMatrix) ComplexStats {
	rows, cols := m.Dims()
	mean, std := MeanStdDevComplex(m)

	return ComplexStats{
		Rows:     rows,
		Cols:     cols,
		Mean:     mean,
		Variance: std * std,
		StdDev:   std,
	}
}

// MeanStdDevComplex returns the complex mean and the population standard
// deviation sqrt(mean(|x - mean|^2)) of m.
func MeanStdDevComplex(m mat.CMatrix) (mean complex128, std float64) {
	rows, cols := m.Dims()
	n := rows * cols

	if n == 0 {
		nan := math.NaN()
		return complex(nan, nan), nan
	}

	re := make([]float64, n)
	im := make([]float64, n)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := m.At(i, j)
			re[i*cols+j] = real(v)
			im[i*cols+j] = imag(v)
		}
	}

	mr, sr := stat.PopMeanStdDev(re, nil)
	mi, si := stat.PopMeanStdDev(im, nil)

	return complex(mr, mi), math.Sqrt(sr*sr + si*si)
}
