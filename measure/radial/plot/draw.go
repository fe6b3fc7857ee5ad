package plot

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
	grey  = color.RGBA{200, 200, 200, 255}
	blue  = color.RGBA{31, 119, 180, 255}
	red   = color.RGBA{214, 39, 40, 255}

	face = basicfont.Face7x13
)

// titleBand is the height reserved above a plot for its title.
const titleBand = 18

func fill(img *image.RGBA, c color.RGBA) {
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// drawText draws s with its baseline starting at (x, y).
func drawText(img *image.RGBA, s string, x, y int, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func textWidth(s string) int {
	return font.MeasureString(face, s).Round()
}

func drawCenteredText(img *image.RGBA, s string, cx, y int, c color.RGBA) {
	drawText(img, s, cx-textWidth(s)/2, y, c)
}

func drawRightText(img *image.RGBA, s string, x, y int, c color.RGBA) {
	drawText(img, s, x-textWidth(s), y, c)
}

// drawLine draws a one pixel Bresenham line.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := intAbs(x1 - x0)
	dy := -intAbs(y1 - y0)
	sx, sy := 1, 1

	if x0 > x1 {
		sx = -1
	}

	if y0 > y1 {
		sy = -1
	}

	err := dx + dy

	for {
		img.SetRGBA(x0, y0, c)

		if x0 == x1 && y0 == y1 {
			return
		}

		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}

		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func drawRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	drawLine(img, r.Min.X, r.Min.Y, r.Max.X, r.Min.Y, c)
	drawLine(img, r.Max.X, r.Min.Y, r.Max.X, r.Max.Y, c)
	drawLine(img, r.Max.X, r.Max.Y, r.Min.X, r.Max.Y, c)
	drawLine(img, r.Min.X, r.Max.Y, r.Min.X, r.Min.Y, c)
}

// drawMarker draws a filled square of side 2*half+1 centered on (x, y).
func drawMarker(img *image.RGBA, x, y, half int, c color.RGBA) {
	r := image.Rect(x-half, y-half, x+half+1, y+half+1)
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

func intAbs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
