// Package window generates apodization windows for image cutouts.
//
// Windows are evaluated on a normalised position x in [0,1]. The 2D form
// used before Fourier transforms is the separable outer product of a row
// and a column window.
package window
