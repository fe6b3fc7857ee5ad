package spectrum

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-radprof/dsp/window"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// rowKernel applies a vecmath reduction to every row of c.
func rowKernel(c mat.CMatrix, kernel func(dst, re, im []float64)) *mat.Dense {
	rows, cols := c.Dims()
	if rows == 0 || cols == 0 {
		return &mat.Dense{}
	}

	out := mat.NewDense(rows, cols, nil)
	re, im, buf := getScratch(cols)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := c.At(i, j)
			re[j] = real(v)
			im[j] = imag(v)
		}

		kernel(out.RawRowView(i), re, im)
	}

	putScratch(buf)
	return out
}

// Magnitude returns |c| element-wise.
//
// Uses the SIMD kernels of algo-vecmath when available. Scratch buffers are
// pooled, so in steady state only the output is allocated.
func Magnitude(c mat.CMatrix) *mat.Dense {
	return rowKernel(c, vecmath.Magnitude)
}

// Power returns |c|^2 element-wise.
func Power(c mat.CMatrix) *mat.Dense {
	return rowKernel(c, vecmath.Power)
}

// Option configures [PowerSpectrum].
type Option func(*config)

type config struct {
	window     window.Type
	windowOpts []window.Option
	shift      bool
}

func defaultConfig() config {
	return config{
		window: window.TypeRectangular,
		shift:  true,
	}
}

// WithWindow apodizes the input with a separable window before transforming.
func WithWindow(t window.Type, opts ...window.Option) Option {
	return func(cfg *config) {
		cfg.window = t
		cfg.windowOpts = opts
	}
}

// WithoutShift keeps the zero frequency at (0, 0).
func WithoutShift() Option {
	return func(cfg *config) {
		cfg.shift = false
	}
}

// PowerSpectrum returns |FFT2(m)|^2 / N with N the padded element count, so
// the spectrum sums to the energy of the (windowed) input. By default the
// result is shifted to put zero frequency at (rows/2, cols/2).
func PowerSpectrum(m mat.Matrix, opts ...Option) (*mat.Dense, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyInput
	}

	src := mat.DenseCopyOf(m)
	if cfg.window != window.TypeRectangular {
		if err := window.Apply2D(cfg.window, src, cfg.windowOpts...); err != nil {
			return nil, fmt.Errorf("spectrum: %w", err)
		}
	}

	x, err := FFT2(src)
	if err != nil {
		return nil, err
	}

	p := Power(x)

	pr, pc := p.Dims()
	p.Scale(1/float64(pr*pc), p)

	if cfg.shift {
		return ShiftReal(p), nil
	}

	return p, nil
}
