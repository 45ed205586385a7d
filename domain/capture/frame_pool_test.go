package capture

import (
	"image"
	"image/color"
	"testing"
)

func TestCrop_CopiesRegion(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 20, 10))
	src.SetRGBA(5, 3, color.RGBA{1, 2, 3, 255})
	out := Crop(src, image.Rect(5, 3, 9, 6))
	defer Release(out)
	if out.Rect != image.Rect(0, 0, 4, 3) || len(out.Pix) != 4*3*4 {
		t.Fatalf("unexpected crop geometry rect=%v len=%d", out.Rect, len(out.Pix))
	}
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{1, 2, 3, 255}) {
		t.Fatalf("unexpected pixel %v", got)
	}
}

func TestCrop_KeepsStraightAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 6, 6))
	src.SetNRGBA(2, 2, color.NRGBA{255, 0, 0, 128})
	src.SetNRGBA(3, 2, color.NRGBA{10, 200, 30, 0})
	out := Crop(src, image.Rect(2, 2, 4, 3))
	defer Release(out)
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{255, 0, 0, 128}) {
		t.Fatalf("half-transparent pixel changed: %v", got)
	}
	if got := out.NRGBAAt(1, 0); got != (color.NRGBA{10, 200, 30, 0}) {
		t.Fatalf("transparent pixel lost its colour: %v", got)
	}
}

func TestCrop_SubImageSource(t *testing.T) {
	base := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	base.SetNRGBA(7, 8, color.NRGBA{9, 8, 7, 255})
	sub := base.SubImage(image.Rect(5, 5, 10, 10))
	out := Crop(sub, image.Rect(7, 8, 9, 10))
	defer Release(out)
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{9, 8, 7, 255}) {
		t.Fatalf("unexpected pixel %v", got)
	}
}

func TestCrop_ClipsToSource(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	out := Crop(src, image.Rect(8, 8, 30, 30))
	if out.Rect.Dx() != 2 || out.Rect.Dy() != 2 {
		t.Fatalf("expected 2x2 got %v", out.Rect)
	}
	Release(out)
	empty := Crop(src, image.Rect(20, 20, 30, 30))
	if !empty.Rect.Empty() || len(empty.Pix) != 0 {
		t.Fatalf("expected empty crop, got %v", empty.Rect)
	}
}

func TestCrop_ReusedBufferIsOverwritten(t *testing.T) {
	red := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range red.Pix {
		red.Pix[i] = 0xFF
	}
	Release(Crop(red, red.Rect))
	blue := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(blue.Pix); i += 4 {
		blue.Pix[i+2], blue.Pix[i+3] = 0xFF, 0xFF
	}
	out := Crop(blue, blue.Rect)
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 0 || out.Pix[i+2] != 0xFF {
			t.Fatalf("stale pixel data at %d: %v", i, out.Pix[i:i+4])
		}
	}
}
