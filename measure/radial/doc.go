// Package radial extracts azimuthally averaged profiles from 2D images and
// reconstructs radially symmetric maps from them.
//
// Pixels are binned by their distance from a center pixel, each bin is
// averaged, and the resulting profile is anchored at radius zero with the
// center pixel value. The profile is then interpolated at every pixel's
// exact distance to produce a map of the same shape as the input.
//
// [Compute] handles real images and [ComputeComplex] complex ones, whose
// real and imaginary parts are profiled independently. Both functions are
// pure: inputs are never modified and every result is freshly allocated, so
// concurrent calls need no coordination.
//
// Example:
//
//	res, err := radial.Compute(img, radial.WithBins(32), radial.WithRescale())
//	if err != nil {
//		return err
//	}
//	model := res.Map
package radial
