package spectrum

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-radprof/dsp/window"
	"github.com/cwbudde/algo-radprof/internal/testutil"
	"gonum.org/v1/gonum/mat"
)

// naiveDFT2 is the O(N^2) reference transform.
func naiveDFT2(m mat.Matrix) *mat.CDense {
	rows, cols := m.Dims()
	out := mat.NewCDense(rows, cols, nil)

	for u := 0; u < rows; u++ {
		for v := 0; v < cols; v++ {
			var sum complex128
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					phase := -2 * math.Pi * (float64(u*i)/float64(rows) + float64(v*j)/float64(cols))
					sum += complex(m.At(i, j), 0) * cmplx.Exp(complex(0, phase))
				}
			}
			out.Set(u, v, sum)
		}
	}

	return out
}

func TestFFT2MatchesNaive(t *testing.T) {
	m := testutil.DeterministicNoise(1, 4, 8, 1)

	got, err := FFT2(m)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireCDenseNearlyEqual(t, got, naiveDFT2(m), 1e-9)
}

func TestFFT2Delta(t *testing.T) {
	m := mat.NewDense(8, 8, nil)
	m.Set(0, 0, 1)

	got, err := FFT2(m)
	if err != nil {
		t.Fatal(err)
	}

	ones := testutil.ComplexOf(testutil.Constant(8, 8, 1), testutil.Constant(8, 8, 0))
	testutil.RequireCDenseNearlyEqual(t, got, ones, 1e-12)
}

func TestFFT2Pads(t *testing.T) {
	got, err := FFT2(testutil.Constant(5, 3, 1))
	if err != nil {
		t.Fatal(err)
	}

	if r, c := got.Dims(); r != 8 || c != 4 {
		t.Fatalf("dims %dx%d, want 8x4", r, c)
	}

	if dc := got.At(0, 0); cmplx.Abs(dc-15) > 1e-12 {
		t.Fatalf("DC = %v, want 15", dc)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	re := testutil.DeterministicNoise(2, 16, 8, 1)
	im := testutil.DeterministicNoise(3, 16, 8, 1)
	x := testutil.ComplexOf(re, im)

	freq, err := FFT2Complex(x)
	if err != nil {
		t.Fatal(err)
	}

	back, err := InverseFFT2(freq)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireCDenseNearlyEqual(t, back, x, 1e-12)
}

func TestInverseRejectsOddSizes(t *testing.T) {
	c := mat.NewCDense(6, 4, nil)
	if _, err := InverseFFT2(c); err == nil {
		t.Fatal("expected error")
	}
}

func TestEmptyInput(t *testing.T) {
	if _, err := FFT2(&mat.Dense{}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("got %v", err)
	}

	if _, err := PowerSpectrum(&mat.Dense{}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("got %v", err)
	}
}

func TestShift(t *testing.T) {
	m := mat.NewDense(4, 6, nil)
	m.Set(0, 0, 1)
	m.Set(3, 5, 2)

	s := ShiftReal(m)
	if s.At(2, 3) != 1 {
		t.Fatalf("zero frequency not at (2,3): %v", mat.Formatted(s))
	}

	if s.At(1, 2) != 2 {
		t.Fatalf("last element not at (1,2): %v", mat.Formatted(s))
	}

	c := Shift(testutil.ComplexOf(m, m))
	if c.At(2, 3) != 1+1i {
		t.Fatalf("complex shift = %v", c.At(2, 3))
	}
}

func TestShiftOddSize(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8})

	want := mat.NewDense(3, 3, []float64{
		8, 6, 7,
		2, 0, 1,
		5, 3, 4,
	})
	testutil.RequireDenseNearlyEqual(t, ShiftReal(m), want, 0)
}

func TestPowerMagnitude(t *testing.T) {
	c := mat.NewCDense(2, 2, []complex128{3 + 4i, -1 - 1i, 0, 2i})

	mag := Magnitude(c)
	pow := Power(c)

	want := []struct{ mag, pow float64 }{{5, 25}, {math.Sqrt2, 2}, {0, 0}, {2, 4}}
	for k, w := range want {
		i, j := k/2, k%2
		if math.Abs(mag.At(i, j)-w.mag) > 1e-12 || math.Abs(pow.At(i, j)-w.pow) > 1e-12 {
			t.Fatalf("(%d,%d): mag %v pow %v, want %v %v", i, j, mag.At(i, j), pow.At(i, j), w.mag, w.pow)
		}
	}
}

func TestPowerSpectrumParseval(t *testing.T) {
	m := testutil.DeterministicNoise(4, 16, 16, 1)

	ps, err := PowerSpectrum(m)
	if err != nil {
		t.Fatal(err)
	}

	var sq mat.Dense
	sq.MulElem(m, m)

	if got, want := mat.Sum(ps), mat.Sum(&sq); math.Abs(got-want) > 1e-9*want {
		t.Fatalf("spectrum sum = %v, energy = %v", got, want)
	}
}

func TestPowerSpectrumCentered(t *testing.T) {
	m := testutil.Constant(8, 8, 2)

	ps, err := PowerSpectrum(m)
	if err != nil {
		t.Fatal(err)
	}

	// 64 samples of 2: |X(0,0)|^2 / 64 = 128^2 / 64.
	if got := ps.At(4, 4); math.Abs(got-256) > 1e-9 {
		t.Fatalf("DC power = %v, want 256", got)
	}

	unshifted, err := PowerSpectrum(m, WithoutShift())
	if err != nil {
		t.Fatal(err)
	}

	if got := unshifted.At(0, 0); math.Abs(got-256) > 1e-9 {
		t.Fatalf("unshifted DC power = %v, want 256", got)
	}
}

func TestPowerSpectrumWindowed(t *testing.T) {
	m := testutil.Constant(16, 16, 1)
	orig := mat.DenseCopyOf(m)

	plain, err := PowerSpectrum(m)
	if err != nil {
		t.Fatal(err)
	}

	hann, err := PowerSpectrum(m, WithWindow(window.TypeHann))
	if err != nil {
		t.Fatal(err)
	}

	if hann.At(8, 8) >= plain.At(8, 8) {
		t.Fatalf("window did not reduce DC power: %v >= %v", hann.At(8, 8), plain.At(8, 8))
	}

	// A constant field leaks into neighbouring bins once apodized.
	if hann.At(8, 9) <= 1e-12 {
		t.Fatalf("expected leakage next to DC, got %v", hann.At(8, 9))
	}

	testutil.RequireDenseNearlyEqual(t, m, orig, 0)

	if _, err := PowerSpectrum(m, WithWindow(window.TypeTukey, window.WithAlpha(2))); err == nil {
		t.Fatal("expected invalid window error")
	}
}
