package interp

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-radprof/dsp/core"
)

// Interpolator evaluates a fitted profile at an arbitrary abscissa.
// It matches gonum's interp.Predictor.
type Interpolator interface {
	Predict(x float64) float64
}

// Kind selects the interpolation scheme.
type Kind int

const (
	KindLinear Kind = iota
	KindNearest
	KindPrevious
	KindNext
	KindCubic
	KindNaturalCubic
	KindAkima
	KindFritschButland
)

var kindNames = [...]string{
	KindLinear:         "linear",
	KindNearest:        "nearest",
	KindPrevious:       "previous",
	KindNext:           "next",
	KindCubic:          "cubic",
	KindNaturalCubic:   "natural",
	KindAkima:          "akima",
	KindFritschButland: "pchip",
}

// String returns the lowercase name used on command lines.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Kinds lists every supported kind.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range out {
		out[i] = Kind(i)
	}

	return out
}

// ParseKind resolves a kind by name. "fritsch-butland" and "monotone" are
// accepted as aliases of "pchip".
func ParseKind(name string) (Kind, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	switch s {
	case "fritsch-butland", "fritschbutland", "monotone":
		return KindFritschButland, nil
	case "natural-cubic", "naturalcubic":
		return KindNaturalCubic, nil
	case "not-a-knot":
		return KindCubic, nil
	}

	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// IsSpline reports whether k is one of the gonum-backed cubic kinds.
func (k Kind) IsSpline() bool {
	switch k {
	case KindCubic, KindNaturalCubic, KindAkima, KindFritschButland:
		return true
	default:
		return false
	}
}

// New fits an interpolant of the given kind. xs must be finite and strictly
// increasing. Spline kinds reject non-finite ys and fall back to linear when
// fewer than [MinSplineSamples] samples are given.
func New(kind Kind, xs, ys []float64) (Interpolator, error) {
	switch kind {
	case KindLinear:
		return NewLinear(xs, ys)
	case KindNearest:
		return NewNearest(xs, ys)
	case KindPrevious:
		return NewStep(xs, ys, false)
	case KindNext:
		return NewStep(xs, ys, true)
	case KindCubic, KindNaturalCubic, KindAkima, KindFritschButland:
		return newSpline(kind, xs, ys)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

// Evaluate predicts every value of in and stores the results in dst, which is
// grown as needed and returned.
func Evaluate(p Interpolator, in, dst []float64) []float64 {
	dst = core.EnsureLen(dst, len(in))
	for i, x := range in {
		dst[i] = p.Predict(x)
	}

	return dst
}
