package plot

import (
	"image"
	"image/png"
	"io"

	"github.com/cwbudde/algo-radprof/stats/field"
	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/mat"
)

// RenderMap colour-maps m between its finite minimum and maximum and upscales
// it with nearest-neighbour sampling. Row 0 is drawn at the top.
func RenderMap(m mat.Matrix, opts ...Option) (*image.RGBA, error) {
	cfg := applyOptions(opts)

	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmpty
	}

	st := field.Calculate(m)

	src := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			src.SetRGBA(j, i, colorAt(m.At(i, j), st.Min, st.Max))
		}
	}

	scale := max(1, min(cfg.width/cols, cfg.height/rows))

	header := 0
	if cfg.title != "" {
		header = titleBand
	}

	w, h := cols*scale, rows*scale
	dst := image.NewRGBA(image.Rect(0, 0, w, h+header))
	fill(dst, white)

	draw.NearestNeighbor.Scale(dst, image.Rect(0, header, w, header+h), src, src.Bounds(), draw.Src, nil)

	if cfg.title != "" {
		drawCenteredText(dst, cfg.title, w/2, header-5, black)
	}

	return dst, nil
}

// WriteMapPNG renders m with [RenderMap] and encodes it as PNG.
func WriteMapPNG(w io.Writer, m mat.Matrix, opts ...Option) error {
	img, err := RenderMap(m, opts...)
	if err != nil {
		return err
	}

	return png.Encode(w, img)
}
