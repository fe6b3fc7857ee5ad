// Package fits reads and writes the primary image of FITS files, the
// container used for simulated sky cutouts.
//
// Only 2D primary images are handled. Integer and floating-point BITPIX
// values are read and converted to physical float64 values; images are
// always written with BITPIX -64.
package fits
