package images

import (
	"image"
	"image/color"
	"math"

	"github.com/soocke/swatch-go/domain/selection"
)

// DrawSelection outlines sel on a copy of base with a two-tone border so it
// stays visible on both light and dark images. base is not modified.
func DrawSelection(base *image.RGBA, sel selection.SelectionRect) *image.RGBA {
	if base == nil {
		return nil
	}
	out := image.NewRGBA(base.Rect)
	copy(out.Pix, base.Pix)
	r := image.Rect(
		int(math.Round(sel.X)), int(math.Round(sel.Y)),
		int(math.Round(sel.X+sel.Width)), int(math.Round(sel.Y+sel.Height)),
	).Intersect(out.Rect)
	if r.Empty() {
		return out
	}
	outline(out, r, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})
	if inner := r.Inset(1); !inner.Empty() {
		outline(out, inner, color.RGBA{0x00, 0x00, 0x00, 0xFF})
	}
	return out
}

func outline(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X-1, y, c)
	}
}
