package field

import (
	"math"

	"github.com/cwbudde/algo-radprof/dsp/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Stats holds whole-image statistics. Moments are population (ddof=0)
// moments over the non-NaN pixels.
type Stats struct {
	Rows, Cols int
	Count      int // non-NaN pixels
	NaNCount   int
	Mean       float64
	Variance   float64
	StdDev     float64
	Sum        float64
	Min        float64
	MinRow     int
	MinCol     int
	Max        float64
	MaxRow     int
	MaxCol     int
}

func emptyStats(rows, cols int) Stats {
	return Stats{
		Rows:     rows,
		Cols:     cols,
		NaNCount: rows * cols,
		Mean:     math.NaN(),
		Variance: math.NaN(),
		StdDev:   math.NaN(),
		Min:      math.NaN(),
		Max:      math.NaN(),
		MinRow:   -1,
		MinCol:   -1,
		MaxRow:   -1,
		MaxCol:   -1,
	}
}

// Calculate computes [Stats] for m. NaN pixels are counted and skipped.
// An image with no usable pixels reports NaN moments and -1 positions.
func Calculate(m mat.Matrix) Stats {
	rows, cols := m.Dims()

	values := make([]float64, 0, rows*cols)
	index := make([]int, 0, rows*cols)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) {
				continue
			}

			values = append(values, v)
			index = append(index, i*cols+j)
		}
	}

	if len(values) == 0 {
		return emptyStats(rows, cols)
	}

	mean, std := stat.PopMeanStdDev(values, nil)
	lo := floats.MinIdx(values)
	hi := floats.MaxIdx(values)

	return Stats{
		Rows:     rows,
		Cols:     cols,
		Count:    len(values),
		NaNCount: rows*cols - len(values),
		Mean:     mean,
		Variance: std * std,
		StdDev:   std,
		Sum:      floats.Sum(values),
		Min:      values[lo],
		MinRow:   index[lo] / cols,
		MinCol:   index[lo] % cols,
		Max:      values[hi],
		MaxRow:   index[hi] / cols,
		MaxCol:   index[hi] % cols,
	}
}

// MeanStdDev returns the population mean and standard deviation of every
// pixel of m. NaN pixels propagate.
func MeanStdDev(m mat.Matrix) (mean, std float64) {
	values := Flatten(m, nil)
	if len(values) == 0 {
		return math.NaN(), math.NaN()
	}

	return stat.PopMeanStdDev(values, nil)
}

// RMS returns the root-mean-square pixel value, or 0 for an empty image.
func RMS(m mat.Matrix) float64 {
	values := Flatten(m, nil)
	if len(values) == 0 {
		return 0
	}

	return floats.Norm(values, 2) / math.Sqrt(float64(len(values)))
}

// Flatten copies m in row-major order into dst, growing it as needed.
func Flatten(m mat.Matrix, dst []float64) []float64 {
	rows, cols := m.Dims()
	n := rows * cols

	dst = core.EnsureLen(dst, n)

	if d, ok := m.(mat.RawMatrixer); ok {
		raw := d.RawMatrix()
		for i := 0; i < rows; i++ {
			copy(dst[i*cols:(i+1)*cols], raw.Data[i*raw.Stride:i*raw.Stride+cols])
		}

		return dst
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[i*cols+j] = m.At(i, j)
		}
	}

	return dst
}
