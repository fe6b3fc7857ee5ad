package interp

import (
	"fmt"

	gonuminterp "gonum.org/v1/gonum/interp"
)

// MinSplineSamples is the smallest sample count fitted with a spline kind.
// Shorter inputs fall back to [Linear].
const MinSplineSamples = 4

// clamped restricts a gonum predictor to the sampled range.
type clamped struct {
	p        gonuminterp.Predictor
	lo, hi   float64
	yLo, yHi float64
}

func (c *clamped) Predict(x float64) float64 {
	if x <= c.lo {
		return c.yLo
	}

	if x >= c.hi {
		return c.yHi
	}

	return c.p.Predict(x)
}

func newSpline(kind Kind, xs, ys []float64) (Interpolator, error) {
	if err := validateSamples(xs, ys); err != nil {
		return nil, err
	}

	if err := validateFinite(ys); err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}

	if len(xs) < MinSplineSamples {
		return NewLinear(xs, ys)
	}

	var fp gonuminterp.FittablePredictor

	switch kind {
	case KindCubic:
		fp = &gonuminterp.NotAKnotCubic{}
	case KindNaturalCubic:
		fp = &gonuminterp.NaturalCubic{}
	case KindAkima:
		fp = &gonuminterp.AkimaSpline{}
	case KindFritschButland:
		fp = &gonuminterp.FritschButland{}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	if err := fp.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("interp: fit %s: %w", kind, err)
	}

	n := len(xs)

	return &clamped{p: fp, lo: xs[0], hi: xs[n-1], yLo: ys[0], yHi: ys[n-1]}, nil
}
