package interp

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmpty is returned when no samples are supplied.
	ErrEmpty = errors.New("interp: no samples")
	// ErrLengthMismatch is returned when xs and ys differ in length.
	ErrLengthMismatch = errors.New("interp: xs and ys length mismatch")
	// ErrNotIncreasing is returned when xs is not strictly increasing.
	ErrNotIncreasing = errors.New("interp: xs not strictly increasing")
	// ErrNonFinite is returned for NaN or Inf samples a kind cannot handle.
	ErrNonFinite = errors.New("interp: non-finite sample")
	// ErrUnknownKind is returned for an unsupported Kind.
	ErrUnknownKind = errors.New("interp: unknown kind")
)

func validateSamples(xs, ys []float64) error {
	if len(xs) == 0 {
		return ErrEmpty
	}

	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d xs, %d ys", ErrLengthMismatch, len(xs), len(ys))
	}

	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: xs[%d] = %v", ErrNonFinite, i, x)
		}

		if i > 0 && x <= xs[i-1] {
			return fmt.Errorf("%w: xs[%d] = %v after %v", ErrNotIncreasing, i, x, xs[i-1])
		}
	}

	return nil
}

func validateFinite(ys []float64) error {
	for i, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return fmt.Errorf("%w: ys[%d] = %v", ErrNonFinite, i, y)
		}
	}

	return nil
}
