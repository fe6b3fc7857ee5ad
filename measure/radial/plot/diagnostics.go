package plot

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-radprof/measure/radial"
	"gonum.org/v1/gonum/mat"
)

// Diagnostics writes the map and profile images of a result into Dir as
// <Prefix>_map.png and <Prefix>_profile.png.
type Diagnostics struct {
	Dir     string
	Prefix  string
	Options []Option
}

// Write renders both images for res. Dir is created if needed. The profile
// curve uses the interpolation kind res was computed with unless Options
// override it.
func (d Diagnostics) Write(res *radial.Result) error {
	if res == nil || res.Map == nil {
		return ErrEmpty
	}

	if err := d.WriteMap("map", res.Map); err != nil {
		return err
	}

	opts := append([]Option{WithKind(res.Kind)}, d.Options...)

	return d.writeFile("profile", func(w *bufio.Writer) error {
		return WriteProfilePNG(w, res.Radii, res.Values, opts...)
	})
}

// WriteMap writes m to <Prefix>_<suffix>.png.
func (d Diagnostics) WriteMap(suffix string, m mat.Matrix) error {
	return d.writeFile(suffix, func(w *bufio.Writer) error {
		return WriteMapPNG(w, m, d.Options...)
	})
}

// WriteProfile writes the profile curve to <Prefix>_<suffix>.png.
func (d Diagnostics) WriteProfile(suffix string, radii, values []float64) error {
	return d.writeFile(suffix, func(w *bufio.Writer) error {
		return WriteProfilePNG(w, radii, values, d.Options...)
	})
}

// Path returns the file name used for suffix.
func (d Diagnostics) Path(suffix string) string {
	name := suffix + ".png"
	if d.Prefix != "" {
		name = d.Prefix + "_" + name
	}

	return filepath.Join(d.Dir, name)
}

func (d Diagnostics) writeFile(suffix string, render func(*bufio.Writer) error) error {
	if d.Dir != "" {
		if err := os.MkdirAll(d.Dir, 0o755); err != nil {
			return fmt.Errorf("plot: creating %s: %w", d.Dir, err)
		}
	}

	path := d.Path(suffix)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: creating %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if err := render(w); err != nil {
		f.Close()
		return fmt.Errorf("plot: %s: %w", path, err)
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("plot: flushing %s: %w", path, err)
	}

	return f.Close()
}
