package testutil

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Constant returns a rows x cols matrix filled with value.
func Constant(rows, cols int, value float64) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = value
	}
	return mat.NewDense(rows, cols, data)
}

// Gaussian returns an n x n circular Gaussian of the given sigma centred on
// pixel (n/2, n/2).
func Gaussian(n int, amplitude, sigma float64) *mat.Dense {
	c := float64(n / 2)
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			di, dj := float64(i)-c, float64(j)-c
			m.Set(i, j, amplitude*math.Exp(-(di*di+dj*dj)/(2*sigma*sigma)))
		}
	}
	return m
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude] with a fixed seed.
func DeterministicNoise(seed int64, rows, cols int, amplitude float64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return mat.NewDense(rows, cols, data)
}

// ComplexOf combines two real matrices of equal shape into re + i*im.
func ComplexOf(re, im mat.Matrix) *mat.CDense {
	r, c := re.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, complex(re.At(i, j), im.At(i, j)))
		}
	}
	return out
}

// RealPart returns the real components of m.
func RealPart(m mat.CMatrix) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, real(m.At(i, j)))
		}
	}
	return out
}

// ImagPart returns the imaginary components of m.
func ImagPart(m mat.CMatrix) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, imag(m.At(i, j)))
		}
	}
	return out
}
