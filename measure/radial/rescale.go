package radial

import (
	"github.com/cwbudde/algo-radprof/stats/field"
	"gonum.org/v1/gonum/mat"
)

// rescale matches the population mean and standard deviation of out to img
// in place. A flat map is only shifted.
func rescale(out *mat.Dense, img mat.Matrix) {
	dmean, dstd := field.MeanStdDev(img)

	_, mstd := field.MeanStdDev(out)
	if mstd != 0 {
		out.Scale(dstd/mstd, out)
	}

	mean, _ := field.MeanStdDev(out)
	shift := dmean - mean

	out.Apply(func(_, _ int, v float64) float64 {
		return v + shift
	}, out)
}

// rescaleComplex is the complex counterpart of rescale. The scale factor is
// real, the mean shift complex.
func rescaleComplex(out *mat.CDense, img mat.CMatrix) {
	dmean, dstd := field.MeanStdDevComplex(img)

	rows, cols := out.Dims()

	_, mstd := field.MeanStdDevComplex(out)
	if mstd != 0 {
		s := complex(dstd/mstd, 0)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				out.Set(i, j, s*out.At(i, j))
			}
		}
	}

	mean, _ := field.MeanStdDevComplex(out)
	shift := dmean - mean

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, out.At(i, j)+shift)
		}
	}
}
