package radial

import (
	"fmt"
	"math"
)

// geometry holds the distance field and bin labels shared by the real and
// complex paths.
type geometry struct {
	rows, cols int
	bins       int
	center     Center
	dist       []float64 // row-major pixel distances
	labels     []int     // bin of each pixel; bins marks the farthest pixels
	maxDist    float64
}

func newGeometry(rows, cols int, cfg *config) (*geometry, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, rows, cols)
	}

	if cfg.bins <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBins, cfg.bins)
	}

	c := cfg.center
	if !cfg.hasCenter {
		if rows != cols {
			return nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, rows, cols)
		}

		c = Center{Row: rows / 2, Col: cols / 2}
	}

	if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
		return nil, fmt.Errorf("%w: %v in %dx%d", ErrCenterOutOfRange, c, rows, cols)
	}

	g := &geometry{
		rows:   rows,
		cols:   cols,
		bins:   cfg.bins,
		center: c,
		dist:   make([]float64, rows*cols),
		labels: make([]int, rows*cols),
	}

	for i := 0; i < rows; i++ {
		di := float64(i - c.Row)
		for j := 0; j < cols; j++ {
			dj := float64(j - c.Col)
			d := math.Sqrt(di*di + dj*dj)
			g.dist[i*cols+j] = d

			if d > g.maxDist {
				g.maxDist = d
			}
		}
	}

	if g.maxDist == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDegenerateGeometry, rows, cols)
	}

	nb := float64(cfg.bins)
	for k, d := range g.dist {
		if d == g.maxDist {
			g.labels[k] = cfg.bins
			continue
		}

		g.labels[k] = min(int(nb*d/g.maxDist), cfg.bins-1)
	}

	return g, nil
}

// radii returns the profile abscissae: zero followed by the bin centers.
func (g *geometry) radii() []float64 {
	out := make([]float64, g.bins+1)

	nb := float64(g.bins)
	half := g.maxDist / (2 * nb)
	for k := 0; k < g.bins; k++ {
		out[k+1] = float64(k)*g.maxDist/nb + half
	}

	return out
}

// anchorIndex is the row-major index of the center pixel.
func (g *geometry) anchorIndex() int {
	return g.center.Row*g.cols + g.center.Col
}

func emptyBins(counts []int) []int {
	var out []int
	for k, c := range counts {
		if c == 0 {
			out = append(out, k)
		}
	}

	return out
}
