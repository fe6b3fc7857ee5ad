package plot

import (
	"image/color"
	"math"

	"github.com/cwbudde/algo-radprof/dsp/core"
)

// viridis control points, evenly spaced on [0, 1].
var viridis = []color.RGBA{
	{68, 1, 84, 255},
	{59, 82, 139, 255},
	{33, 145, 140, 255},
	{94, 201, 98, 255},
	{253, 231, 37, 255},
}

var nanColor = color.RGBA{128, 128, 128, 255}

// colorAt maps v in [lo, hi] onto the colour map. Non-finite values map to
// grey and a flat range maps to the middle of the scale.
func colorAt(v, lo, hi float64) color.RGBA {
	if !core.IsFinite(v) {
		return nanColor
	}

	t := 0.5
	if hi > lo {
		t = core.Clamp((v-lo)/(hi-lo), 0, 1)
	}

	pos := t * float64(len(viridis)-1)
	k := int(math.Floor(pos))

	if k >= len(viridis)-1 {
		return viridis[len(viridis)-1]
	}

	f := pos - float64(k)
	a, b := viridis[k], viridis[k+1]

	return color.RGBA{
		R: lerp8(a.R, b.R, f),
		G: lerp8(a.G, b.G, f),
		B: lerp8(a.B, b.B, f),
		A: 255,
	}
}

func lerp8(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + f*(float64(b)-float64(a))))
}
