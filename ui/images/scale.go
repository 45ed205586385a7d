package images

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/disintegration/imaging"

	"github.com/soocke/swatch-go/domain/selection"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// Letterbox renders src contain-scaled into a surfaceW x surfaceH canvas filled
// with bg, placing it at the offsets described by m. The result is what the
// pointer coordinates of the preview refer to.
func Letterbox(src image.Image, surfaceW, surfaceH int, m selection.DisplayMetrics, bg color.Color) *image.RGBA {
	if surfaceW < 1 {
		surfaceW = 1
	}
	if surfaceH < 1 {
		surfaceH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, surfaceW, surfaceH))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	if src == nil {
		return dst
	}
	w := int(math.Round(m.DisplayWidth))
	h := int(math.Round(m.DisplayHeight))
	if w < 1 || h < 1 {
		return dst
	}
	scaled := imaging.Resize(src, w, h, imaging.Linear)
	at := image.Pt(int(math.Round(m.OffsetX)), int(math.Round(m.OffsetY)))
	draw.Draw(dst, image.Rectangle{Min: at, Max: at.Add(scaled.Bounds().Size())}, scaled, image.Point{}, draw.Src)
	return dst
}
