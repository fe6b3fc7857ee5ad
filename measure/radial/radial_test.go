package radial

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-radprof/dsp/core"
	"github.com/cwbudde/algo-radprof/dsp/interp"
	"github.com/cwbudde/algo-radprof/internal/testutil"
	"github.com/cwbudde/algo-radprof/stats/field"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

func TestConstantImage(t *testing.T) {
	img := testutil.Constant(10, 10, 1)

	res, err := Compute(img, WithBins(5))
	if err != nil {
		t.Fatal(err)
	}

	if res.Center != (Center{Row: 5, Col: 5}) {
		t.Fatalf("Center = %v, want (5,5)", res.Center)
	}

	testutil.RequireDenseNearlyEqual(t, res.Map, img, 0)

	want := []float64{1, 1, 1, 1, 1, 1}
	testutil.RequireSliceNearlyEqual(t, res.Values, want, 0)
}

func TestProfileShape(t *testing.T) {
	img := testutil.DeterministicNoise(3, 17, 17, 1)

	for _, bins := range []int{1, 7, 50} {
		res, err := Compute(img, WithBins(bins))
		if err != nil {
			t.Fatalf("bins=%d: %v", bins, err)
		}

		if r, c := res.Map.Dims(); r != 17 || c != 17 {
			t.Fatalf("bins=%d: map %dx%d", bins, r, c)
		}

		if len(res.Radii) != bins+1 || len(res.Values) != bins+1 || len(res.Counts) != bins+1 {
			t.Fatalf("bins=%d: lengths %d/%d/%d", bins, len(res.Radii), len(res.Values), len(res.Counts))
		}

		if res.Radii[0] != 0 {
			t.Fatalf("bins=%d: Radii[0] = %v", bins, res.Radii[0])
		}

		step := res.MaxDistance / float64(bins)
		if !core.NearlyEqual(res.Radii[1], step/2, 1e-12) {
			t.Fatalf("bins=%d: Radii[1] = %v, want %v", bins, res.Radii[1], step/2)
		}

		for k := 2; k < len(res.Radii); k++ {
			if !core.NearlyEqual(res.Radii[k]-res.Radii[k-1], step, 1e-12) {
				t.Fatalf("bins=%d: uneven spacing at %d", bins, k)
			}
		}

		if last := res.Radii[bins]; last >= res.MaxDistance {
			t.Fatalf("bins=%d: last radius %v beyond max distance %v", bins, last, res.MaxDistance)
		}
	}
}

func TestAnchorHeld(t *testing.T) {
	img := testutil.DeterministicNoise(7, 21, 21, 5)

	for _, kind := range interp.Kinds() {
		res, err := Compute(img, WithBins(8), WithInterpolation(kind))
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}

		c := res.Center
		if got, want := res.Map.At(c.Row, c.Col), img.At(c.Row, c.Col); got != want {
			t.Fatalf("%s: map at center = %v, want %v", kind, got, want)
		}

		if res.Values[0] != img.At(c.Row, c.Col) {
			t.Fatalf("%s: Values[0] = %v", kind, res.Values[0])
		}
	}
}

func TestFarthestPixelExcluded(t *testing.T) {
	img := testutil.DeterministicNoise(11, 9, 9, 1)

	res, err := Compute(img, WithBins(6))
	if err != nil {
		t.Fatal(err)
	}

	total := 0
	for _, c := range res.Counts[1:] {
		total += c
	}

	// The four corners of a 9x9 image are equidistant from (4,4).
	if want := 81 - 4; total != want {
		t.Fatalf("binned pixels = %d, want %d", total, want)
	}

	if res.Counts[0] != 1 {
		t.Fatalf("anchor count = %d", res.Counts[0])
	}
}

func TestGaussianBump(t *testing.T) {
	const amp = 3.0

	img := testutil.Gaussian(64, amp, 6)

	res, err := Compute(img, WithBins(20))
	if err != nil {
		t.Fatal(err)
	}

	for k := 1; k < len(res.Values); k++ {
		if res.Values[k] > res.Values[k-1] {
			t.Fatalf("profile increases at %d: %v > %v", k, res.Values[k], res.Values[k-1])
		}
	}

	resid, err := Residual(img, res)
	if err != nil {
		t.Fatal(err)
	}

	if rms := field.RMS(resid); rms > 0.02*amp {
		t.Fatalf("residual rms = %v", rms)
	}
}

func TestReprofileReproducesProfile(t *testing.T) {
	const amp = 2.0

	img := testutil.Gaussian(64, amp, 8)

	first, err := Compute(img, WithBins(16))
	if err != nil {
		t.Fatal(err)
	}

	second, err := Compute(first.Map, WithBins(16))
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, second.Radii, first.Radii, 1e-12)
	testutil.RequireSliceNearlyEqual(t, second.Values, first.Values, 0.05*amp)
}

func TestCornerCenter(t *testing.T) {
	img := testutil.DeterministicNoise(5, 12, 8, 1)

	res, err := Compute(img, WithCenter(0, 0), WithBins(10))
	if err != nil {
		t.Fatal(err)
	}

	if want := math.Hypot(11, 7); !core.NearlyEqual(res.MaxDistance, want, 1e-12) {
		t.Fatalf("MaxDistance = %v, want %v", res.MaxDistance, want)
	}

	if res.Map.At(0, 0) != img.At(0, 0) {
		t.Fatalf("anchor not held: %v vs %v", res.Map.At(0, 0), img.At(0, 0))
	}

	if r, c := res.Map.Dims(); r != 12 || c != 8 {
		t.Fatalf("map %dx%d", r, c)
	}
}

func TestRescale(t *testing.T) {
	img := testutil.Gaussian(48, 4, 5)
	img.Add(img, testutil.DeterministicNoise(9, 48, 48, 0.5))

	res, err := Compute(img, WithBins(12), WithRescale())
	if err != nil {
		t.Fatal(err)
	}

	wantMean, wantStd := field.MeanStdDev(img)
	gotMean, gotStd := field.MeanStdDev(res.Map)

	if !core.NearlyEqual(gotMean, wantMean, 1e-9) || !core.NearlyEqual(gotStd, wantStd, 1e-9) {
		t.Fatalf("mean/std = %v/%v, want %v/%v", gotMean, gotStd, wantMean, wantStd)
	}
}

func TestRescaleFlatMap(t *testing.T) {
	img := testutil.Constant(10, 10, 2.5)

	res, err := Compute(img, WithBins(4), WithRescale())
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireDenseNearlyEqual(t, res.Map, img, 1e-12)
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	img := testutil.DeterministicNoise(2, 16, 16, 1)
	orig := mat.DenseCopyOf(img)

	if _, err := Compute(img, WithBins(9), WithRescale()); err != nil {
		t.Fatal(err)
	}

	testutil.RequireDenseNearlyEqual(t, img, orig, 0)
}

func TestErrors(t *testing.T) {
	square := testutil.Constant(6, 6, 1)

	tests := []struct {
		name string
		img  mat.Matrix
		opts []Option
		want error
	}{
		{"empty", &mat.Dense{}, nil, ErrEmptyImage},
		{"zero bins", square, []Option{WithBins(0)}, ErrInvalidBins},
		{"negative bins", square, []Option{WithBins(-3)}, ErrInvalidBins},
		{"rectangular default center", testutil.Constant(4, 6, 1), nil, ErrNonSquare},
		{"center row", square, []Option{WithCenter(6, 0)}, ErrCenterOutOfRange},
		{"center col", square, []Option{WithCenter(0, -1)}, ErrCenterOutOfRange},
		{"single pixel", testutil.Constant(1, 1, 1), nil, ErrDegenerateGeometry},
		{"reject empty", testutil.Constant(5, 5, 1), []Option{WithBins(50), WithEmptyBins(EmptyBinsReject)}, ErrEmptyBin},
		{"spline through NaN", testutil.Constant(5, 5, 1), []Option{
			WithBins(50), WithEmptyBins(EmptyBinsPropagate), WithInterpolation(interp.KindCubic),
		}, interp.ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compute(tt.img, tt.opts...); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRectangularWithCenter(t *testing.T) {
	img := testutil.DeterministicNoise(4, 4, 6, 1)

	res, err := Compute(img, WithCenter(2, 3), WithBins(3))
	if err != nil {
		t.Fatal(err)
	}

	if res.Map.At(2, 3) != img.At(2, 3) {
		t.Fatal("anchor not held")
	}
}

func TestEmptyBinsDrop(t *testing.T) {
	img := testutil.DeterministicNoise(8, 5, 5, 1)

	res, err := Compute(img, WithBins(50))
	if err != nil {
		t.Fatal(err)
	}

	if len(res.EmptyBins) == 0 {
		t.Fatal("expected empty bins")
	}

	for _, k := range res.EmptyBins {
		if !math.IsNaN(res.Values[k+1]) || res.Counts[k+1] != 0 {
			t.Fatalf("bin %d: value %v count %d", k, res.Values[k+1], res.Counts[k+1])
		}
	}

	testutil.RequireFinite(t, res.Map.RawMatrix().Data)
}

func TestEmptyBinsPropagate(t *testing.T) {
	img := testutil.DeterministicNoise(8, 5, 5, 1)

	dropped, err := Compute(img, WithBins(50))
	if err != nil {
		t.Fatal(err)
	}

	propagated, err := Compute(img, WithBins(50), WithEmptyBins(EmptyBinsPropagate))
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(dropped.Values, propagated.Values, cmpopts.EquateNaNs()); diff != "" {
		t.Fatalf("profiles differ (-drop +propagate):\n%s", diff)
	}

	nans := 0
	for _, v := range propagated.Map.RawMatrix().Data {
		if math.IsNaN(v) {
			nans++
		}
	}

	if nans == 0 {
		t.Fatal("expected NaN pixels next to empty bins")
	}
}

func TestResidualShapeMismatch(t *testing.T) {
	res, err := Compute(testutil.Constant(6, 6, 1), WithBins(3))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Residual(testutil.Constant(5, 6, 1), res); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("got %v", err)
	}

	if _, err := Residual(testutil.Constant(6, 6, 1), nil); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("got %v", err)
	}
}

func TestResidualOfConstantIsZero(t *testing.T) {
	img := testutil.Constant(8, 8, 3)

	res, err := Compute(img, WithBins(4))
	if err != nil {
		t.Fatal(err)
	}

	resid, err := Residual(img, res)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireDenseNearlyEqual(t, resid, testutil.Constant(8, 8, 0), 0)
}

func TestConcurrentCompute(t *testing.T) {
	img := testutil.Gaussian(32, 1, 4)

	ref, err := Compute(img, WithBins(10))
	if err != nil {
		t.Fatal(err)
	}

	var g errgroup.Group

	results := make([]*Result, 8)
	for i := range results {
		g.Go(func() error {
			res, err := Compute(img, WithBins(10))
			results[i] = res

			return err
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	for _, res := range results {
		testutil.RequireDenseNearlyEqual(t, res.Map, ref.Map, 0)

		if res.Map == ref.Map {
			t.Fatal("results share a map")
		}
	}
}

func TestParseEmptyBinPolicy(t *testing.T) {
	for _, p := range []EmptyBinPolicy{EmptyBinsDrop, EmptyBinsPropagate, EmptyBinsReject} {
		got, err := ParseEmptyBinPolicy(p.String())
		if err != nil || got != p {
			t.Fatalf("ParseEmptyBinPolicy(%q) = %v, %v", p, got, err)
		}
	}

	if _, err := ParseEmptyBinPolicy("ignore"); err == nil {
		t.Fatal("expected error")
	}
}

func TestWithEmptyBinsIgnoresUnknown(t *testing.T) {
	cfg := applyOptions([]Option{WithEmptyBins(EmptyBinsReject), WithEmptyBins(EmptyBinPolicy(9))})
	if cfg.empty != EmptyBinsReject {
		t.Fatalf("policy = %v", cfg.empty)
	}
}
