// Package plot renders diagnostic PNG images for radial profiles.
//
// It consumes the output of [radial.Compute]: the reconstructed map and the
// sampled profile. The radial package never calls into plot; rendering is
// always an explicit step of the caller.
//
// Example:
//
//	res, _ := radial.Compute(img)
//	d := plot.Diagnostics{Dir: "out", Prefix: "star1"}
//	if err := d.Write(res); err != nil {
//		return err
//	}
package plot
