package vision

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// toNRGBA converts any image.Image to *image.NRGBA, copying if src is
// already one.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		out := image.NewNRGBA(n.Rect)
		copy(out.Pix, n.Pix)
		return out
	}
	out := image.NewNRGBA(src.Bounds())
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)
	return out
}

// DrawRectangle draws a 1px outline from topLeft to bottomRight and, if
// label is non-empty, the label text above the box's top-left corner.
// Diagnostic rendering only, for annotating detected text-line boxes
// onto a copy of the source image.
func DrawRectangle(img image.Image, topLeft, bottomRight image.Point, col color.Color, label string) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("vision: source image is nil")
	}
	out := toNRGBA(img)
	strokeRect(out, topLeft, bottomRight, col)

	if label != "" {
		d := &font.Drawer{
			Dst:  out,
			Src:  image.NewUniform(col),
			Face: basicfont.Face7x13,
			Dot:  fixed.Point26_6{X: fixed.I(topLeft.X), Y: fixed.I(topLeft.Y - 2)},
		}
		d.DrawString(label)
	}
	return out, nil
}

// strokeRect draws the four edges of the box defined by topLeft and
// bottomRight, clamped to img's bounds.
func strokeRect(img *image.NRGBA, topLeft, bottomRight image.Point, col color.Color) {
	b := img.Bounds()
	x0, y0 := clampInt(topLeft.X, b.Min.X, b.Max.X-1), clampInt(topLeft.Y, b.Min.Y, b.Max.Y-1)
	x1, y1 := clampInt(bottomRight.X, b.Min.X, b.Max.X-1), clampInt(bottomRight.Y, b.Min.Y, b.Max.Y-1)

	for x := x0; x <= x1; x++ {
		img.Set(x, y0, col)
		img.Set(x, y1, col)
	}
	for y := y0; y <= y1; y++ {
		img.Set(x0, y, col)
		img.Set(x1, y, col)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
