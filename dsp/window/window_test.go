package window

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestGenerateAllTypes(t *testing.T) {
	for _, typ := range Types() {
		t.Run(Info(typ).Name, func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}

				if !almostEqual(v, w[len(w)-1-i], 1e-12) {
					t.Fatalf("symmetric window not symmetric at %d", i)
				}
			}
		})
	}
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	a := Generate(TypeHann, 16)

	b := Generate(TypeHann, 16, WithPeriodic())
	if len(a) != 16 || len(b) != 16 {
		t.Fatalf("unexpected lengths: %d %d", len(a), len(b))
	}

	if almostEqual(a[15], b[15], 1e-12) {
		t.Fatal("expected different end coefficient for periodic form")
	}
}

func TestSingleSampleIsUnity(t *testing.T) {
	for _, typ := range Types() {
		if w := Generate(typ, 1); !almostEqual(w[0], 1, 1e-12) {
			t.Fatalf("%v: single coefficient = %v, want 1", typ, w[0])
		}
	}
}

func TestParseType(t *testing.T) {
	for _, typ := range Types() {
		got, err := ParseType(typ.String())
		if err != nil || got != typ {
			t.Fatalf("ParseType(%q) = %v, %v", typ, got, err)
		}
	}

	if got, err := ParseType("NONE"); err != nil || got != TypeRectangular {
		t.Fatalf("ParseType(none) = %v, %v", got, err)
	}

	if _, err := ParseType("flattop"); err == nil {
		t.Fatal("expected unknown window error")
	}
}

func TestApplyInPlaceByType(t *testing.T) {
	buf := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	Apply(TypeRectangular, buf)

	for i, v := range buf {
		if v != float64(i+1) {
			t.Fatalf("rectangular should be passthrough at %d: %v", i, v)
		}
	}

	Apply(TypeHann, buf)

	if buf[0] != 0 {
		t.Fatalf("hann first sample should be 0, got %v", buf[0])
	}
}

func TestApply2DSeparable(t *testing.T) {
	m := mat.NewDense(6, 9, nil)
	for i := 0; i < 6; i++ {
		for j := 0; j < 9; j++ {
			m.Set(i, j, 2)
		}
	}

	if err := Apply2D(TypeHamming, m); err != nil {
		t.Fatal(err)
	}

	wy := Generate(TypeHamming, 6)
	wx := Generate(TypeHamming, 9)

	for i := 0; i < 6; i++ {
		for j := 0; j < 9; j++ {
			if want := 2 * wy[i] * wx[j]; !almostEqual(m.At(i, j), want, 1e-12) {
				t.Fatalf("(%d,%d) = %v, want %v", i, j, m.At(i, j), want)
			}
		}
	}
}

func TestApply2DSubview(t *testing.T) {
	parent := mat.NewDense(4, 4, []float64{
		1, 1, 9, 9,
		1, 1, 9, 9,
		9, 9, 9, 9,
		9, 9, 9, 9,
	})
	sub := parent.Slice(0, 2, 0, 2).(*mat.Dense)

	if err := Apply2D(TypeTukey, sub, WithAlpha(0)); err != nil {
		t.Fatal(err)
	}

	if parent.At(0, 2) != 9 || parent.At(2, 0) != 9 {
		t.Fatal("Apply2D touched elements outside the view")
	}
}

func TestGenerate2D(t *testing.T) {
	w, err := Generate2D(TypeHann, 5, 5)
	if err != nil {
		t.Fatal(err)
	}

	if w.At(2, 2) != 1 || w.At(0, 2) != 0 || w.At(2, 4) != 0 {
		t.Fatalf("unexpected 2D hann:\n%v", mat.Formatted(w))
	}

	if _, err := Generate2D(TypeGauss, 4, 4, WithAlpha(0)); err == nil {
		t.Fatal("expected gauss alpha validation error")
	}
}

func TestMetadata(t *testing.T) {
	m := Info(TypeHann)
	if m.Name != "Hann" {
		t.Fatalf("name=%q", m.Name)
	}

	if !almostEqual(m.ENBW, 1.5, 0.01) {
		t.Fatalf("ENBW metadata=%v", m.ENBW)
	}

	if got := Info(Type(99)); got.Name != "" {
		t.Fatalf("unknown type metadata = %+v", got)
	}

	if got := Type(99).String(); got != "Type(99)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestCompatibilityWrappers(t *testing.T) {
	if _, err := Hann(64); err != nil {
		t.Fatal(err)
	}

	if _, err := Kaiser(64, 8); err != nil {
		t.Fatal(err)
	}

	if _, err := Tukey(64, 0.5); err != nil {
		t.Fatal(err)
	}

	if _, err := Gaussian(64, 0.4); err != nil {
		t.Fatal(err)
	}
}

func TestApplyCoefficients(t *testing.T) {
	samples := []float64{1, 2, 3}
	coeffs := []float64{0.5, 0.5, 0.5}

	out, err := ApplyCoefficients(samples, coeffs)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(out[2], 1.5, 1e-12) {
		t.Fatalf("out[2]=%v", out[2])
	}

	if samples[2] != 3 {
		t.Fatal("ApplyCoefficients modified its input")
	}
}

func TestGoldenVectors(t *testing.T) {
	hannExpected := []float64{
		0.0, 0.1882550990706332, 0.6112604669781572, 0.9504844339512095,
		0.9504844339512095, 0.6112604669781573, 0.1882550990706333, 0.0,
	}
	hammingExpected := []float64{
		0.08, 0.25319469114498255, 0.6423596296199047, 0.9544456792351128,
		0.9544456792351128, 0.6423596296199048, 0.25319469114498266, 0.08,
	}
	kaiserExpected := []float64{
		0.002338830460264423, 0.1091958100155291, 0.4871186737556569, 0.9261577358777303,
		0.9261577358777303, 0.4871186737556569, 0.1091958100155291, 0.002338830460264423,
	}

	checkGolden(t, Generate(TypeHann, 8), hannExpected, 1e-10)
	checkGolden(t, Generate(TypeHamming, 8), hammingExpected, 1e-10)
	checkGolden(t, Generate(TypeKaiser, 8, WithAlpha(8)), kaiserExpected, 1e-6)
}

func TestValidationAndEdgeCases(t *testing.T) {
	if got := Generate(TypeHann, 0); got != nil {
		t.Fatalf("expected nil for zero length, got %v", got)
	}

	if _, err := Hann(0); err == nil {
		t.Fatal("expected size validation error")
	}

	if _, err := Kaiser(16, -1); err == nil {
		t.Fatal("expected beta validation error")
	}

	if _, err := Tukey(16, 2); err == nil {
		t.Fatal("expected alpha validation error")
	}

	if _, err := Gaussian(16, 0); err == nil {
		t.Fatal("expected gauss alpha validation error")
	}

	if _, err := ApplyCoefficients([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected mismatch error")
	}

	if err := Apply2D(Type(42), mat.NewDense(2, 2, nil)); err == nil {
		t.Fatal("expected unknown type error")
	}
}

func checkGolden(t *testing.T, got, want []float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("len mismatch got=%d want=%d", len(got), len(want))
	}

	for i := range got {
		if !almostEqual(got[i], want[i], tol) {
			t.Fatalf("index %d: got=%.16f want=%.16f", i, got[i], want[i])
		}
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
