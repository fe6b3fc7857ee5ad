package fits

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// reserved cards are always written by Write and never copied from a
// caller-supplied header.
var reserved = map[string]bool{
	"SIMPLE": true, "BITPIX": true, "NAXIS": true, "NAXIS1": true, "NAXIS2": true,
	"EXTEND": true, "BSCALE": true, "BZERO": true, "END": true,
}

// Write stores m as a BITPIX -64 primary image. Non-structural cards of hdr
// (which may be nil) are copied after the mandatory ones.
func Write(w io.Writer, m mat.Matrix, hdr *Header) error {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("%w: empty image", ErrInvalid)
	}

	var sb strings.Builder
	sb.WriteString(formatCard("SIMPLE", "True"))
	sb.WriteString(formatCard("BITPIX", "-64"))
	sb.WriteString(formatCard("NAXIS", "2"))
	sb.WriteString(formatCard("NAXIS1", fmt.Sprint(cols)))
	sb.WriteString(formatCard("NAXIS2", fmt.Sprint(rows)))

	if hdr != nil {
		for _, k := range hdr.keys {
			if reserved[k] || strings.HasPrefix(k, "NAXIS") {
				continue
			}
			sb.WriteString(formatCard(k, hdr.values[k]))
		}
	}

	sb.WriteString(fmt.Sprintf("%-80s", "END"))
	header := sb.String()
	header += strings.Repeat(" ", padding(len(header)))

	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("writing FITS header: %w", err)
	}

	buf := make([]byte, 8*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			binary.BigEndian.PutUint64(buf[j*8:], math.Float64bits(m.At(i, j)))
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing FITS data: %w", err)
		}
	}

	if pad := padding(8 * rows * cols); pad > 0 {
		if _, err := w.Write(make([]byte, pad)); err != nil {
			return fmt.Errorf("writing FITS padding: %w", err)
		}
	}

	return nil
}

// WriteFile writes m to path, replacing any existing file.
func WriteFile(path string, m mat.Matrix, hdr *Header) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating FITS file: %w", err)
	}

	bw := bufio.NewWriter(f)
	if err := Write(bw, m, hdr); err != nil {
		f.Close()
		return err
	}

	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flushing FITS file: %w", err)
	}

	return f.Close()
}

func padding(n int) int {
	if r := n % blockSize; r != 0 {
		return blockSize - r
	}
	return 0
}
