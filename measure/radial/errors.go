package radial

import "errors"

var (
	// ErrEmptyImage is returned for an image with zero rows or columns.
	ErrEmptyImage = errors.New("radial: empty image")
	// ErrInvalidBins is returned when the bin count is not positive.
	ErrInvalidBins = errors.New("radial: bin count must be > 0")
	// ErrNonSquare is returned when a rectangular image has no explicit center.
	ErrNonSquare = errors.New("radial: default center requires a square image")
	// ErrCenterOutOfRange is returned when the center lies outside the image.
	ErrCenterOutOfRange = errors.New("radial: center outside image")
	// ErrDegenerateGeometry is returned when every pixel lies at the center.
	ErrDegenerateGeometry = errors.New("radial: maximum distance is zero")
	// ErrEmptyBin is returned under EmptyBinsReject when a bin has no pixels.
	ErrEmptyBin = errors.New("radial: empty bin")
	// ErrShapeMismatch is returned when an image and a result differ in shape.
	ErrShapeMismatch = errors.New("radial: shape mismatch")
)
