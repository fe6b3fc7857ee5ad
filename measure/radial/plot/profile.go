package plot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"strconv"

	"github.com/cwbudde/algo-radprof/dsp/core"
	"github.com/cwbudde/algo-radprof/dsp/interp"
	"gonum.org/v1/gonum/floats"
)

const (
	marginLeft   = 64
	marginRight  = 16
	marginTop    = 10
	marginBottom = 36
)

// Curve samples the profile on [ProfileSamples] evenly spaced radii spanning
// the finite samples, using the configured interpolation kind.
func Curve(radii, values []float64, opts ...Option) (xs, ys []float64, err error) {
	cfg := applyOptions(opts)

	fx, fy, err := finiteSamples(radii, values)
	if err != nil {
		return nil, nil, err
	}

	p, err := interp.New(cfg.kind, fx, fy)
	if err != nil {
		return nil, nil, fmt.Errorf("plot: build %s curve: %w", cfg.kind, err)
	}

	xs = floats.Span(make([]float64, ProfileSamples), fx[0], fx[len(fx)-1])
	xs[len(xs)-1] = fx[len(fx)-1]
	ys = interp.Evaluate(p, xs, nil)

	return xs, ys, nil
}

// RenderProfile draws the interpolated profile curve with the samples marked
// on top. Non-finite samples are left out.
func RenderProfile(radii, values []float64, opts ...Option) (*image.RGBA, error) {
	cfg := applyOptions(opts)

	xs, ys, err := Curve(radii, values, opts...)
	if err != nil {
		return nil, err
	}

	fx, fy, _ := finiteSamples(radii, values)

	top := marginTop
	if cfg.title != "" {
		top += titleBand
	}

	width := max(cfg.width, marginLeft+marginRight+1)
	height := max(cfg.height, top+marginBottom+1)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fill(img, white)

	area := image.Rect(marginLeft, top, width-marginRight, height-marginBottom)

	xlo, xhi := axisRange(xs[0], xs[len(xs)-1], 0)
	span := append(finiteOnly(ys), fy...)
	ylo, yhi := axisRange(floats.Min(span), floats.Max(span), 0.05)

	px := func(x float64) int {
		return area.Min.X + int(math.Round((x-xlo)/(xhi-xlo)*float64(area.Dx())))
	}
	py := func(y float64) int {
		return area.Max.Y - int(math.Round((y-ylo)/(yhi-ylo)*float64(area.Dy())))
	}

	drawRect(img, area, grey)

	for k := 1; k < len(xs); k++ {
		if !core.IsFinite(ys[k-1]) || !core.IsFinite(ys[k]) {
			continue
		}

		drawLine(img, px(xs[k-1]), py(ys[k-1]), px(xs[k]), py(ys[k]), blue)
	}

	for k := range fx {
		drawMarker(img, px(fx[k]), py(fy[k]), 2, red)
	}

	base := area.Max.Y + 14
	drawText(img, formatTick(xlo), area.Min.X, base, black)
	drawRightText(img, formatTick(xhi), area.Max.X, base, black)
	drawCenteredText(img, "radius [px]", area.Min.X+area.Dx()/2, base+14, black)

	drawRightText(img, formatTick(yhi), area.Min.X-4, area.Min.Y+10, black)
	drawRightText(img, formatTick(ylo), area.Min.X-4, area.Max.Y, black)

	if cfg.title != "" {
		drawCenteredText(img, cfg.title, width/2, marginTop+titleBand-5, black)
	}

	return img, nil
}

// WriteProfilePNG renders the profile with [RenderProfile] and encodes it as
// PNG.
func WriteProfilePNG(w io.Writer, radii, values []float64, opts ...Option) error {
	img, err := RenderProfile(radii, values, opts...)
	if err != nil {
		return err
	}

	return png.Encode(w, img)
}

func finiteSamples(radii, values []float64) (xs, ys []float64, err error) {
	if len(radii) == 0 {
		return nil, nil, ErrEmpty
	}

	if len(radii) != len(values) {
		return nil, nil, fmt.Errorf("%w: %d radii, %d values", ErrLengthMismatch, len(radii), len(values))
	}

	xs = make([]float64, 0, len(radii))
	ys = make([]float64, 0, len(values))

	for k, v := range values {
		if !core.IsFinite(v) || !core.IsFinite(radii[k]) {
			continue
		}

		xs = append(xs, radii[k])
		ys = append(ys, v)
	}

	if len(xs) == 0 {
		return nil, nil, ErrNoFiniteSamples
	}

	return xs, ys, nil
}

func finiteOnly(v []float64) []float64 {
	out := make([]float64, 0, len(v))
	for _, x := range v {
		if core.IsFinite(x) {
			out = append(out, x)
		}
	}

	return out
}

// axisRange pads [lo, hi] by frac of its span and widens a degenerate range
// to one unit.
func axisRange(lo, hi, frac float64) (float64, float64) {
	if hi <= lo {
		return lo - 0.5, lo + 0.5
	}

	pad := frac * (hi - lo)

	return lo - pad, hi + pad
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
