// Package core holds small numeric helpers and the cutout sampling
// configuration shared by the dsp, stats and measure packages.
package core
