package plot

import "errors"

var (
	// ErrEmpty is returned for empty maps or profiles.
	ErrEmpty = errors.New("plot: empty input")
	// ErrLengthMismatch is returned when radii and values differ in length.
	ErrLengthMismatch = errors.New("plot: radii and values length mismatch")
	// ErrNoFiniteSamples is returned when a profile has no finite sample.
	ErrNoFiniteSamples = errors.New("plot: no finite profile samples")
)
