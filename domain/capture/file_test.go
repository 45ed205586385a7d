package capture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
)

func TestFileSource_Stdin(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 6, 4))
	src.SetRGBA(5, 3, color.RGBA{200, 100, 50, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode: %v", err)
	}
	img, err := FileSource{Stdin: &buf}.Open(StdinPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if r, g, b, _ := img.At(5, 3).RGBA(); r>>8 != 200 || g>>8 != 100 || b>>8 != 50 {
		t.Fatalf("pixel mismatch")
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	if _, err := (FileSource{}).Open(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
