// Package field computes whole-image statistics on gonum matrices.
//
// All moments are population moments, matching the normalisation used when
// a reconstructed radial map is rescaled to the input image.
package field
