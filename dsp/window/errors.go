package window

import (
	"errors"
	"fmt"
)

var errMismatchedLength = errors.New("samples and coefficients must have same length")

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", size)
	}
	return nil
}

func validateKaiser(size int, beta float64) error {
	if size <= 0 {
		return validateLength(size)
	}
	if beta < 0 {
		return fmt.Errorf("kaiser beta must be >= 0: %f", beta)
	}
	return nil
}

func validateTukey(size int, alpha float64) error {
	if size <= 0 {
		return validateLength(size)
	}
	if alpha < 0 || alpha > 1 {
		return fmt.Errorf("tukey alpha must be in [0,1]: %f", alpha)
	}
	return nil
}

func validateGauss(size int, alpha float64) error {
	if size <= 0 {
		return validateLength(size)
	}
	if alpha <= 0 {
		return fmt.Errorf("gauss alpha must be > 0: %f", alpha)
	}
	return nil
}

// validate checks one axis of a window of type t.
func validate(t Type, size int, cfg config) error {
	switch t {
	case TypeKaiser:
		return validateKaiser(size, cfg.alpha)
	case TypeTukey:
		return validateTukey(size, cfg.alpha)
	case TypeGauss:
		return validateGauss(size, cfg.alpha)
	default:
		if _, ok := metadataByType[t]; !ok {
			return fmt.Errorf("unknown window type %d", int(t))
		}
		return validateLength(size)
	}
}

func validate2D(t Type, rows, cols int, cfg config) error {
	if err := validate(t, rows, cfg); err != nil {
		return err
	}
	return validate(t, cols, cfg)
}
