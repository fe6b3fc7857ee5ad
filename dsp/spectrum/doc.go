// Package spectrum provides two-dimensional Fourier helpers for image
// cutouts.
//
// Transforms are computed with separable row and column passes of an
// algo-fft plan. Each axis is zero-padded to the next power of two. Power
// and magnitude reductions use the algo-vecmath kernels row by row.
package spectrum
