package main

import (
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-radprof/dsp/core"
	"github.com/cwbudde/algo-radprof/dsp/interp"
	"github.com/cwbudde/algo-radprof/dsp/signal"
	"github.com/cwbudde/algo-radprof/dsp/spectrum"
	"github.com/cwbudde/algo-radprof/dsp/window"
	"github.com/cwbudde/algo-radprof/internal/fits"
	"github.com/cwbudde/algo-radprof/measure/radial"
	"github.com/cwbudde/algo-radprof/measure/radial/plot"
	"github.com/cwbudde/algo-radprof/stats/field"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// mode selects what the profile is extracted from.
type mode int

const (
	modeDirect mode = iota
	modePower
	modeFourier
)

var modeNames = []string{"direct", "power", "fourier"}

func (m mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

func modes() []mode {
	return []mode{modeDirect, modePower, modeFourier}
}

func parseMode(name string) (mode, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for _, m := range modes() {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (use direct, power or fourier)", name)
}

type config struct {
	bins       int
	center     *radial.Center
	kind       interp.Kind
	rescale    bool
	empty      radial.EmptyBinPolicy
	mode       mode
	window     window.Type
	pixelScale float64
	outdir     string
	plots      bool
	workers    int
}

// input is one cutout to process. load is called on a worker goroutine.
// base prefixes the output file names; it defaults to the file name without
// its extension.
type input struct {
	name string
	base string
	load func() (*mat.Dense, *fits.Header, error)
}

// result summarizes one processed cutout.
type result struct {
	name      string
	mode      mode
	rows      int
	cols      int
	center    radial.Center
	bins      int
	emptyBins int
	peak      float64
	rms       float64
	files     []string
	warnings  []string
	err       error
}

func fileInputs(paths []string) []input {
	out := make([]input, 0, len(paths))
	for _, p := range paths {
		out = append(out, input{
			name: p,
			load: func() (*mat.Dense, *fits.Header, error) {
				img, err := fits.ReadFile(p)
				if err != nil {
					return nil, nil, err
				}
				return img.Dense(), img.Header, nil
			},
		})
	}
	return out
}

// Synthetic cutout shapes.
const (
	shapeGaussian = "gaussian"
	shapeRing     = "ring"
)

// syntheticSpec describes the generated cutout. For rings fwhm is the
// annulus width and radius its distance from the center, both in physical
// units.
type syntheticSpec struct {
	shape      string
	size       int
	fwhm       float64
	radius     float64
	noise      float64
	seed       int64
	pixelScale float64
}

func parseShape(name string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	switch s {
	case shapeGaussian, shapeRing:
		return s, nil
	}
	return "", fmt.Errorf("unknown synthetic shape %q (use gaussian or ring)", name)
}

// syntheticInput generates a centred Gaussian or ring with optional white
// noise.
func syntheticInput(spec syntheticSpec) input {
	return input{
		name: "synthetic",
		load: func() (*mat.Dense, *fits.Header, error) {
			gen := signal.NewGeneratorWithOptions(
				[]core.FieldOption{core.WithSize(spec.size), core.WithPixelScale(spec.pixelScale)},
				signal.WithSeed(spec.seed),
			)

			row, col := gen.Center()

			var (
				img *mat.Dense
				err error
			)
			if spec.shape == shapeRing {
				img, err = gen.Ring(1, spec.radius, spec.fwhm, row, col)
			} else {
				img, err = gen.Gaussian(1, spec.fwhm, row, col)
			}
			if err != nil {
				return nil, nil, err
			}

			if spec.noise > 0 {
				n, err := gen.WhiteNoise(spec.noise)
				if err != nil {
					return nil, nil, err
				}
				img.Add(img, n)
			}

			hdr := fits.NewHeader()
			hdr.Set("OBJECT", "synthetic")
			hdr.Set("SHAPE", spec.shape)
			hdr.SetFloat("FWHM", spec.fwhm)
			if spec.shape == shapeRing {
				hdr.SetFloat("RADIUS", spec.radius)
			}
			hdr.SetFloat("NOISE", spec.noise)
			hdr.SetInt("SEED", int(spec.seed))
			hdr.SetFloat("PIXSCALE", spec.pixelScale)

			return img, hdr, nil
		},
	}
}

// assignBases sets a unique output prefix on every input. Inputs sharing a
// file name get a 1-based occurrence suffix, so a/x.fits and b/x.fits write
// x_1_* and x_2_*.
func assignBases(inputs []input) {
	total := make(map[string]int, len(inputs))
	for i := range inputs {
		if inputs[i].base == "" {
			inputs[i].base = baseName(inputs[i].name)
		}
		total[inputs[i].base]++
	}

	seen := make(map[string]int, len(inputs))
	for i := range inputs {
		b := inputs[i].base
		if total[b] < 2 {
			continue
		}
		seen[b]++
		inputs[i].base = fmt.Sprintf("%s_%d", b, seen[b])
	}
}

// processAll runs every input on at most cfg.workers goroutines. Results keep
// the input order; the returned error is the first failure, if any.
func processAll(inputs []input, cfg config) ([]result, error) {
	results := make([]result, len(inputs))

	if err := os.MkdirAll(cfg.outdir, 0o755); err != nil {
		for i, in := range inputs {
			results[i] = result{name: in.name, mode: cfg.mode, bins: cfg.bins, peak: math.NaN(), rms: math.NaN(), err: err}
		}
		return results, fmt.Errorf("creating output directory: %w", err)
	}

	var g errgroup.Group
	g.SetLimit(max(1, cfg.workers))

	for i, in := range inputs {
		g.Go(func() error {
			results[i] = process(in, cfg)
			if err := results[i].err; err != nil {
				return fmt.Errorf("%s: %w", in.name, err)
			}
			return nil
		})
	}

	return results, g.Wait()
}

func process(in input, cfg config) result {
	r := result{name: in.name, mode: cfg.mode, bins: cfg.bins, peak: math.NaN(), rms: math.NaN()}

	img, hdr, err := in.load()
	if err != nil {
		r.err = err
		return r
	}
	if hdr == nil {
		hdr = fits.NewHeader()
	}

	r.rows, r.cols = img.Dims()

	if cfg.mode == modeDirect && cfg.window != window.TypeRectangular {
		r.warnings = append(r.warnings, fmt.Sprintf("window %s ignored in direct mode", cfg.window))
	}
	if cfg.mode != modeDirect && cfg.center != nil {
		r.warnings = append(r.warnings, fmt.Sprintf("center %v ignored in %s mode, using zero frequency", *cfg.center, cfg.mode))
	}

	base := in.base
	if base == "" {
		base = baseName(in.name)
	}

	switch cfg.mode {
	case modeDirect:
		r.err = processDirect(&r, img, hdr, base, cfg)
	case modePower:
		r.err = processPower(&r, img, base, cfg)
	case modeFourier:
		r.err = processFourier(&r, img, base, cfg)
	default:
		r.err = fmt.Errorf("unknown mode %v", cfg.mode)
	}

	return r
}

// radialOptions maps cfg onto profile options. center, when non-nil,
// overrides the configured center.
func radialOptions(cfg config, center *radial.Center) []radial.Option {
	opts := []radial.Option{
		radial.WithBins(cfg.bins),
		radial.WithInterpolation(cfg.kind),
		radial.WithEmptyBins(cfg.empty),
	}
	if cfg.rescale {
		opts = append(opts, radial.WithRescale())
	}
	if center != nil {
		opts = append(opts, radial.WithCenter(center.Row, center.Col))
	}
	return opts
}

func processDirect(r *result, img *mat.Dense, hdr *fits.Header, base string, cfg config) error {
	res, err := radial.Compute(img, radialOptions(cfg, cfg.center)...)
	if err != nil {
		return err
	}

	resid, err := radial.Residual(img, res)
	if err != nil {
		return err
	}

	r.center = res.Center
	r.peak = res.Values[0]
	r.rms = field.RMS(resid)
	r.noteEmpty(res.EmptyBins, cfg.empty)

	fc := core.ApplyFieldOptions(core.WithPixelScale(cfg.pixelScale))

	csvPath := r.output(cfg.outdir, base+"_profile.csv")
	if err := writeProfileCSV(csvPath, res.Radii, res.Values, res.Counts, fc.ToPhysical); err != nil {
		return err
	}

	out := annotate(hdr, cfg, res.Center)

	out.Set("RPTYPE", "model")
	if err := fits.WriteFile(r.output(cfg.outdir, base+"_model.fits"), res.Map, out); err != nil {
		return err
	}

	out.Set("RPTYPE", "residual")
	if err := fits.WriteFile(r.output(cfg.outdir, base+"_residual.fits"), resid, out); err != nil {
		return err
	}

	if !cfg.plots {
		return nil
	}

	d := r.diagnostics(cfg.outdir, base, res.Kind)
	if err := d.Write(res); err != nil {
		return err
	}

	r.files = append(r.files, d.Path("residual"))
	return d.WriteMap("residual", resid)
}

func processPower(r *result, img *mat.Dense, base string, cfg config) error {
	power, err := spectrum.PowerSpectrum(img, spectrum.WithWindow(cfg.window))
	if err != nil {
		return err
	}

	res, err := radial.Compute(power, radialOptions(cfg, zeroFrequency(power))...)
	if err != nil {
		return err
	}

	r.center = res.Center
	r.peak = res.Values[0]
	r.noteEmpty(res.EmptyBins, cfg.empty)

	_, n := power.Dims()

	csvPath := r.output(cfg.outdir, base+"_profile.csv")
	if err := writeProfileCSV(csvPath, res.Radii, res.Values, res.Counts, frequency(n, cfg.pixelScale)); err != nil {
		return err
	}

	if !cfg.plots {
		return nil
	}

	d := r.diagnostics(cfg.outdir, base, res.Kind)
	if err := d.Write(res); err != nil {
		return err
	}

	r.files = append(r.files, d.Path("spectrum"))
	return d.WriteMap("spectrum", power)
}

func processFourier(r *result, img *mat.Dense, base string, cfg config) error {
	src := img
	if cfg.window != window.TypeRectangular {
		src = mat.DenseCopyOf(img)
		if err := window.Apply2D(cfg.window, src); err != nil {
			return err
		}
	}

	x, err := spectrum.FFT2(src)
	if err != nil {
		return err
	}
	x = spectrum.Shift(x)

	res, err := radial.ComputeComplex(x, radialOptions(cfg, zeroFrequency(x))...)
	if err != nil {
		return err
	}

	r.center = res.Center
	r.peak = cmplx.Abs(res.Values[0])
	r.noteEmpty(res.EmptyBins, cfg.empty)

	_, n := x.Dims()

	csvPath := r.output(cfg.outdir, base+"_profile.csv")
	if err := writeComplexProfileCSV(csvPath, res.Radii, res.Values, res.Counts, frequency(n, cfg.pixelScale)); err != nil {
		return err
	}

	if !cfg.plots {
		return nil
	}

	re := make([]float64, len(res.Values))
	for k, v := range res.Values {
		re[k] = real(v)
	}

	d := r.diagnostics(cfg.outdir, base, res.Kind)
	if err := d.WriteMap("map", realPart(res.Map)); err != nil {
		return err
	}
	return d.WriteProfile("profile", res.Radii, re)
}

// zeroFrequency returns the pixel a shifted spectrum of any shape keeps its
// zero frequency at.
func zeroFrequency(m interface{ Dims() (r, c int) }) *radial.Center {
	rows, cols := m.Dims()
	return &radial.Center{Row: rows / 2, Col: cols / 2}
}

// frequency converts a radius on an n-point spectrum grid to cycles per
// physical unit.
func frequency(n int, pixelScale float64) func(float64) float64 {
	return func(r float64) float64 {
		return r / (float64(n) * pixelScale)
	}
}

func realPart(c *mat.CDense) *mat.Dense {
	rows, cols := c.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, real(c.At(i, j)))
		}
	}
	return out
}

// annotate copies hdr and records how the profile was computed.
func annotate(hdr *fits.Header, cfg config, c radial.Center) *fits.Header {
	out := hdr.Clone()
	out.Set("RPMODE", cfg.mode.String())
	out.SetInt("RPBINS", cfg.bins)
	out.Set("RPKIND", cfg.kind.String())
	out.SetInt("RPCROW", c.Row)
	out.SetInt("RPCCOL", c.Col)
	if cfg.rescale {
		out.Set("RPRESCAL", "True")
	}
	return out
}

func (r *result) noteEmpty(bins []int, policy radial.EmptyBinPolicy) {
	r.emptyBins = len(bins)
	if len(bins) > 0 {
		r.warnings = append(r.warnings, fmt.Sprintf("%d empty bins %v (%s)", len(bins), bins, policy))
	}
}

func (r *result) output(dir, name string) string {
	p := filepath.Join(dir, name)
	r.files = append(r.files, p)
	return p
}

// diagnostics draws profile curves with the interpolation kind the map was
// rebuilt with.
func (r *result) diagnostics(dir, base string, kind interp.Kind) plot.Diagnostics {
	d := plot.Diagnostics{
		Dir:     dir,
		Prefix:  base,
		Options: []plot.Option{plot.WithTitle(base), plot.WithKind(kind)},
	}
	r.files = append(r.files, d.Path("map"), d.Path("profile"))
	return d
}

func baseName(name string) string {
	b := filepath.Base(name)
	return strings.TrimSuffix(b, filepath.Ext(b))
}
