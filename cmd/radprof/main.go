// Command radprof extracts azimuthally averaged radial profiles from FITS
// cutouts and writes the profile, the radially symmetric model and the
// residual.
//
// Usage:
//
//	radprof [flags] cutout.fits ...
//
// Inputs are processed concurrently; the summary table lists them in the
// order given.
//
// Examples:
//
//	radprof -bins 32 -kind pchip star.fits
//	radprof -center 40,41 -rescale -plots -outdir out star.fits
//	radprof -mode power -window hann field1.fits field2.fits
//	radprof -synthetic -size 64 -fwhm 6 -noise 0.01
//	radprof -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-radprof/dsp/interp"
	"github.com/cwbudde/algo-radprof/dsp/window"
	"github.com/cwbudde/algo-radprof/measure/radial"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("radprof", flag.ContinueOnError)
	fs.SetOutput(stderr)

	bins := fs.Int("bins", radial.DefaultBins, "number of radial bins")
	center := fs.String("center", "", "profile center as row,col (default: image center)")
	kind := fs.String("kind", interp.KindLinear.String(), "interpolation used to rebuild the map")
	rescale := fs.Bool("rescale", false, "match the model mean and standard deviation to the input")
	empty := fs.String("empty", radial.EmptyBinsDrop.String(), "empty bin policy: drop, propagate or reject")
	modeName := fs.String("mode", modeDirect.String(), "profile source: direct, power or fourier")
	win := fs.String("window", "none", "apodization window for power and fourier modes")
	pixelScale := fs.Float64("pixel-scale", 1, "physical size of one pixel")
	outdir := fs.String("outdir", ".", "directory for output files")
	plots := fs.Bool("plots", false, "write PNG diagnostics")
	workers := fs.Int("workers", runtime.NumCPU(), "number of cutouts processed concurrently")
	list := fs.Bool("list", false, "list interpolation kinds, windows, modes and policies")
	synthetic := fs.Bool("synthetic", false, "also process a generated cutout")
	shape := fs.String("shape", shapeGaussian, "synthetic cutout shape: gaussian or ring")
	size := fs.Int("size", 64, "synthetic cutout size in pixels")
	fwhm := fs.Float64("fwhm", 8, "synthetic Gaussian FWHM or ring width in physical units")
	ringRadius := fs.Float64("ring-radius", 16, "synthetic ring radius in physical units")
	noise := fs.Float64("noise", 0, "synthetic white noise sigma")
	seed := fs.Int64("seed", 1, "synthetic noise seed")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: radprof [flags] cutout.fits ...\n\n")
		fmt.Fprintf(stderr, "Extracts radial profiles from FITS cutouts.\n")
		fmt.Fprintf(stderr, "Writes <name>_profile.csv and, in direct mode, <name>_model.fits and <name>_residual.fits.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  radprof -bins 32 -kind pchip star.fits\n")
		fmt.Fprintf(stderr, "  radprof -mode power -window hann field.fits\n")
		fmt.Fprintf(stderr, "  radprof -synthetic -noise 0.01 -plots\n")
		fmt.Fprintf(stderr, "  radprof -synthetic -shape ring -ring-radius 12\n")
		fmt.Fprintf(stderr, "  radprof -list\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *list {
		printList(stdout)
		return 0
	}

	cfg := config{
		bins:       *bins,
		rescale:    *rescale,
		pixelScale: *pixelScale,
		outdir:     *outdir,
		plots:      *plots,
		workers:    *workers,
	}

	var err error
	if cfg.kind, err = interp.ParseKind(*kind); err != nil {
		return fail(stderr, err)
	}
	if cfg.empty, err = radial.ParseEmptyBinPolicy(*empty); err != nil {
		return fail(stderr, err)
	}
	if cfg.mode, err = parseMode(*modeName); err != nil {
		return fail(stderr, err)
	}
	if cfg.window, err = window.ParseType(*win); err != nil {
		return fail(stderr, err)
	}
	if *center != "" {
		c, err := parseCenter(*center)
		if err != nil {
			return fail(stderr, err)
		}
		cfg.center = &c
	}
	if cfg.bins <= 0 {
		return fail(stderr, fmt.Errorf("bins must be > 0: %d", cfg.bins))
	}
	if cfg.pixelScale <= 0 {
		return fail(stderr, fmt.Errorf("pixel scale must be > 0: %g", cfg.pixelScale))
	}

	inputs := fileInputs(fs.Args())
	if *synthetic {
		s, err := parseShape(*shape)
		if err != nil {
			return fail(stderr, err)
		}
		inputs = append(inputs, syntheticInput(syntheticSpec{
			shape:      s,
			size:       *size,
			fwhm:       *fwhm,
			radius:     *ringRadius,
			noise:      *noise,
			seed:       *seed,
			pixelScale: cfg.pixelScale,
		}))
	}

	if len(inputs) == 0 {
		fmt.Fprintf(stderr, "error: no input cutouts (pass FITS files or -synthetic)\n")
		fs.Usage()
		return 2
	}

	assignBases(inputs)

	results, err := processAll(inputs, cfg)

	for _, r := range results {
		for _, w := range r.warnings {
			fmt.Fprintf(stderr, "warning: %s: %s\n", r.name, w)
		}
		if r.err != nil {
			fmt.Fprintf(stderr, "error: %s: %v\n", r.name, r.err)
		}
	}

	if werr := printSummary(stdout, results); werr != nil {
		fmt.Fprintf(stderr, "error: failed to write summary: %v\n", werr)
		return 1
	}

	if err != nil {
		return 1
	}
	return 0
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "error: %v\n", err)
	return 2
}

// parseCenter reads "row,col".
func parseCenter(s string) (radial.Center, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return radial.Center{}, fmt.Errorf("center must be row,col: %q", s)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return radial.Center{}, fmt.Errorf("center row: %w", err)
	}

	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return radial.Center{}, fmt.Errorf("center col: %w", err)
	}

	return radial.Center{Row: row, Col: col}, nil
}

func printList(w io.Writer) {
	fmt.Fprintln(w, "kinds:")
	for _, k := range interp.Kinds() {
		fmt.Fprintf(w, "  %s\n", k)
	}

	fmt.Fprintln(w, "windows:")
	for _, t := range window.Types() {
		fmt.Fprintf(w, "  %s\n", strings.ToLower(t.String()))
	}

	fmt.Fprintln(w, "modes:")
	for _, m := range modes() {
		fmt.Fprintf(w, "  %s\n", m)
	}

	fmt.Fprintln(w, "empty bin policies:")
	for _, p := range []radial.EmptyBinPolicy{radial.EmptyBinsDrop, radial.EmptyBinsPropagate, radial.EmptyBinsReject} {
		fmt.Fprintf(w, "  %s\n", p)
	}
}
