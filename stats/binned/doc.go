// Package binned reduces labelled samples to per-label means.
//
// It is the labelled-mean primitive behind radial profiles: every pixel
// carries an integer bin label and the mean of each bin is reported, with
// NaN for bins that received no samples.
package binned
