package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-radprof/dsp/core"
	"github.com/cwbudde/algo-radprof/stats/field"
)

func TestConstant(t *testing.T) {
	g := NewGenerator(core.WithSize(12))

	m := g.Constant(3)
	if r, c := m.Dims(); r != 12 || c != 12 {
		t.Fatalf("dims %dx%d", r, c)
	}

	s := field.Calculate(m)
	if s.Min != 3 || s.Max != 3 {
		t.Fatalf("min/max %v/%v", s.Min, s.Max)
	}
}

func TestGaussianFWHM(t *testing.T) {
	// 2 physical units per pixel, fwhm 8 units = 4 pixels.
	g := NewGenerator(core.WithSize(33), core.WithPixelScale(2))
	row, col := g.Center()

	m, err := g.Gaussian(10, 8, row, col)
	if err != nil {
		t.Fatal(err)
	}

	if got := m.At(row, col); got != 10 {
		t.Fatalf("peak = %v, want 10", got)
	}

	// Half width at half maximum is 2 pixels.
	if got := m.At(row, col+2); math.Abs(got-5) > 1e-12 {
		t.Fatalf("value at hwhm = %v, want 5", got)
	}

	if _, err := g.Gaussian(1, 0, row, col); err == nil {
		t.Fatal("expected fwhm validation error")
	}
}

func TestRing(t *testing.T) {
	g := NewGenerator(core.WithSize(41))
	row, col := g.Center()

	m, err := g.Ring(1, 10, 1.5, row, col)
	if err != nil {
		t.Fatal(err)
	}

	if got := m.At(row, col+10); got != 1 {
		t.Fatalf("ring peak = %v, want 1", got)
	}

	if m.At(row, col) >= 1e-6 {
		t.Fatalf("ring center = %v, want ~0", m.At(row, col))
	}

	if _, err := g.Ring(1, -1, 1, row, col); err == nil {
		t.Fatal("expected radius validation error")
	}

	if _, err := g.Ring(1, 1, 0, row, col); err == nil {
		t.Fatal("expected width validation error")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions([]core.FieldOption{core.WithSize(16)}, WithSeed(42))
	g2 := NewGeneratorWithOptions([]core.FieldOption{core.WithSize(16)}, WithSeed(42))

	n1, err := g1.WhiteNoise(1)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	n2, err := g2.WhiteNoise(1)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	d1, d2 := n1.RawMatrix().Data, n2.RawMatrix().Data
	for i := range d1 {
		if d1[i] != d2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, d1[i], d2[i])
		}
	}
}

func TestWhiteNoiseStatistics(t *testing.T) {
	g := NewGeneratorWithOptions([]core.FieldOption{core.WithSize(128)}, WithSeed(7))

	m, err := g.WhiteNoise(2)
	if err != nil {
		t.Fatal(err)
	}

	mean, std := field.MeanStdDev(m)
	if math.Abs(mean) > 0.08 || math.Abs(std-2) > 0.05 {
		t.Fatalf("mean/std = %v/%v, want ~0/2", mean, std)
	}

	if _, err := g.WhiteNoise(-1); err == nil {
		t.Fatal("expected sigma validation error")
	}
}

func TestSetSeed(t *testing.T) {
	g := NewGenerator(core.WithSize(8))
	g.SetSeed(99)

	if g.Seed() != 99 {
		t.Fatalf("Seed()=%d, want 99", g.Seed())
	}

	a, _ := g.WhiteNoise(1)
	g.SetSeed(100)
	b, _ := g.WhiteNoise(1)

	if a.At(0, 0) == b.At(0, 0) && a.At(3, 5) == b.At(3, 5) {
		t.Fatal("expected different noise for different seeds")
	}
}
