package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
)

var (
	realHeader    = []string{"radius_px", "radius_phys", "value", "count"}
	complexHeader = []string{"radius_px", "radius_phys", "re", "im", "count"}
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writeProfileCSV writes one row per profile sample. phys converts a pixel
// radius to the physical column.
func writeProfileCSV(path string, radii, values []float64, counts []int, phys func(float64) float64) error {
	return writeCSVFile(path, func(w *csv.Writer) error {
		if err := w.Write(realHeader); err != nil {
			return err
		}
		for k, r := range radii {
			rec := []string{formatFloat(r), formatFloat(phys(r)), formatFloat(values[k]), strconv.Itoa(counts[k])}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeComplexProfileCSV(path string, radii []float64, values []complex128, counts []int, phys func(float64) float64) error {
	return writeCSVFile(path, func(w *csv.Writer) error {
		if err := w.Write(complexHeader); err != nil {
			return err
		}
		for k, r := range radii {
			rec := []string{
				formatFloat(r), formatFloat(phys(r)),
				formatFloat(real(values[k])), formatFloat(imag(values[k])),
				strconv.Itoa(counts[k]),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeCSVFile(path string, rows func(*csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating profile CSV: %w", err)
	}

	w := csv.NewWriter(f)
	if err := rows(w); err != nil {
		f.Close()
		return fmt.Errorf("writing profile CSV: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing profile CSV: %w", err)
	}

	return f.Close()
}

// printSummary writes one table row per result in input order.
func printSummary(out io.Writer, results []result) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "Input\tMode\tSize\tCenter\tBins\tEmpty\tPeak\tResidual RMS\tFiles\tStatus\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-----\t----\t----\t------\t----\t-----\t----\t------------\t-----\t------\n"); err != nil {
		return err
	}

	for _, r := range results {
		status := "ok"
		if r.err != nil {
			status = "failed"
		}

		size, center := "-", "-"
		if r.rows > 0 {
			size = fmt.Sprintf("%dx%d", r.rows, r.cols)
		}
		if r.err == nil {
			center = r.center.String()
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%s\t%s\t%d\t%s\n",
			r.name,
			r.mode,
			size,
			center,
			r.bins,
			r.emptyBins,
			formatSummary(r.peak),
			formatSummary(r.rms),
			len(r.files),
			status,
		); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func formatSummary(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
