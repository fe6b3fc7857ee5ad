package fits

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const (
	blockSize = 2880
	cardSize  = 80
)

// ErrInvalid is returned for malformed or unsupported files.
var ErrInvalid = errors.New("fits: invalid file")

// Image is the primary image HDU of a FITS file with physical values
// (BSCALE and BZERO applied).
type Image struct {
	Data   []float64 // row-major, Height rows of Width values
	Width  int       // NAXIS1
	Height int       // NAXIS2
	Bitpix int
	Header *Header
}

// Dense returns the pixels as a Height x Width matrix sharing Data.
func (img *Image) Dense() *mat.Dense {
	return mat.NewDense(img.Height, img.Width, img.Data)
}

// ReadFile reads the primary image of the FITS file at path.
func ReadFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening FITS file: %w", err)
	}
	defer f.Close()

	return Read(bufio.NewReader(f))
}

// Read parses the primary header and image data from r. Axes beyond the
// second must have length 1.
func Read(r io.Reader) (*Image, error) {
	hdr, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	bitpix, _ := hdr.GetInt("BITPIX")
	naxis, _ := hdr.GetInt("NAXIS")
	width, _ := hdr.GetInt("NAXIS1")
	height, _ := hdr.GetInt("NAXIS2")

	if naxis < 2 || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: NAXIS=%d, NAXIS1=%d, NAXIS2=%d", ErrInvalid, naxis, width, height)
	}

	for k := 3; k <= naxis; k++ {
		if n, _ := hdr.GetInt("NAXIS" + strconv.Itoa(k)); n != 1 {
			return nil, fmt.Errorf("%w: NAXIS%d=%d, only 2D images are supported", ErrInvalid, k, n)
		}
	}

	bscale, ok := hdr.GetDouble("BSCALE")
	if !ok {
		bscale = 1
	}
	bzero, _ := hdr.GetDouble("BZERO")

	data, err := readData(r, bitpix, width*height, bscale, bzero)
	if err != nil {
		return nil, err
	}

	return &Image{
		Data:   data,
		Width:  width,
		Height: height,
		Bitpix: bitpix,
		Header: hdr,
	}, nil
}

func readHeader(r io.Reader) (*Header, error) {
	hdr := NewHeader()
	block := make([]byte, blockSize)

	for first := true; ; first = false {
		if _, err := io.ReadFull(r, block); err != nil {
			return nil, fmt.Errorf("reading FITS header block: %w", err)
		}

		for i := 0; i < blockSize/cardSize; i++ {
			record := string(block[i*cardSize : (i+1)*cardSize])
			keyword := strings.TrimSpace(record[:8])

			if first && i == 0 && keyword != "SIMPLE" {
				return nil, fmt.Errorf("%w: missing SIMPLE card", ErrInvalid)
			}

			if keyword == "END" {
				return hdr, nil
			}

			if keyword == "" || record[8] != '=' || record[9] != ' ' {
				continue
			}

			hdr.Set(keyword, parseValue(splitComment(record[10:])))
		}
	}
}

// splitComment returns the value part of a card, ignoring '/' inside quotes.
func splitComment(s string) string {
	inQuote := false
	for i, c := range s {
		switch c {
		case '\'':
			inQuote = !inQuote
		case '/':
			if !inQuote {
				return strings.TrimSpace(s[:i])
			}
		}
	}
	return strings.TrimSpace(s)
}

func readData(r io.Reader, bitpix, n int, bscale, bzero float64) ([]float64, error) {
	var bytesPer int
	switch bitpix {
	case 8:
		bytesPer = 1
	case 16:
		bytesPer = 2
	case 32, -32:
		bytesPer = 4
	case 64, -64:
		bytesPer = 8
	default:
		return nil, fmt.Errorf("%w: unsupported BITPIX %d", ErrInvalid, bitpix)
	}

	raw := make([]byte, n*bytesPer)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("reading BITPIX %d pixel data: %w", bitpix, err)
	}

	out := make([]float64, n)
	for i := range out {
		b := raw[i*bytesPer:]

		var v float64
		switch bitpix {
		case 8:
			v = float64(b[0])
		case 16:
			v = float64(int16(binary.BigEndian.Uint16(b)))
		case 32:
			v = float64(int32(binary.BigEndian.Uint32(b)))
		case 64:
			v = float64(int64(binary.BigEndian.Uint64(b)))
		case -32:
			v = float64(math.Float32frombits(binary.BigEndian.Uint32(b)))
		case -64:
			v = math.Float64frombits(binary.BigEndian.Uint64(b))
		}
		out[i] = v*bscale + bzero
	}

	return out, nil
}
