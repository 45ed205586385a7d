package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/soocke/swatch-go/domain/selection"
)

func TestLetterbox_PlacesImageAtOffset(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	red := color.RGBA{255, 0, 0, 255}
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			src.SetRGBA(x, y, red)
		}
	}
	m, err := selection.ComputeDisplayMetrics(selection.Size{Width: 100, Height: 100}, 200, 100)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	bg := color.RGBA{0, 0, 0, 255}
	out := Letterbox(src, 100, 100, m, bg)
	if out.Rect.Dx() != 100 || out.Rect.Dy() != 100 {
		t.Fatalf("unexpected surface %v", out.Rect)
	}
	// image is 100x50 at y offset 25
	if got := out.RGBAAt(50, 10); got != bg {
		t.Fatalf("expected letterbox margin at top, got %v", got)
	}
	if got := out.RGBAAt(50, 50); got != red {
		t.Fatalf("expected image pixel in the middle, got %v", got)
	}
	if got := out.RGBAAt(50, 90); got != bg {
		t.Fatalf("expected letterbox margin at bottom, got %v", got)
	}
}
