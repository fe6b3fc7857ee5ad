package spectrum

import "gonum.org/v1/gonum/mat"

// Shift moves the zero-frequency element of c to (rows/2, cols/2), which is
// the default radial-profile center.
func Shift(c mat.CMatrix) *mat.CDense {
	rows, cols := c.Dims()

	out := mat.NewCDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		si := (i + rows/2) % rows
		for j := 0; j < cols; j++ {
			out.Set(si, (j+cols/2)%cols, c.At(i, j))
		}
	}

	return out
}

// ShiftReal is the real counterpart of [Shift].
func ShiftReal(m mat.Matrix) *mat.Dense {
	rows, cols := m.Dims()

	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		si := (i + rows/2) % rows
		for j := 0; j < cols; j++ {
			out.Set(si, (j+cols/2)%cols, m.At(i, j))
		}
	}

	return out
}
