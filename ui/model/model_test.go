package model

import (
	"image"
	"testing"

	"github.com/soocke/swatch-go/domain/capture"
	"github.com/soocke/swatch-go/domain/palette"
)

func TestImageModel_IgnoresUnreadySnapshots(t *testing.T) {
	m := NewImageModel()
	if m.Ready() {
		t.Fatalf("new model must not be ready")
	}
	good := capture.Snapshot{Image: image.NewRGBA(image.Rect(0, 0, 4, 3))}
	if !m.Set(good) || !m.Ready() {
		t.Fatalf("expected ready after set")
	}
	if m.Set(capture.Snapshot{}) {
		t.Fatalf("empty snapshot must be rejected")
	}
	if w, h := m.NaturalSize(); w != 4 || h != 3 {
		t.Fatalf("previous image should remain, got %dx%d", w, h)
	}
	var nilModel *ImageModel
	if nilModel.Ready() {
		t.Fatalf("nil model must report not ready")
	}
}

func TestPaletteModel_Selection(t *testing.T) {
	m := NewPaletteModel()
	if _, ok := m.Selected(); ok {
		t.Fatalf("nothing selected initially")
	}
	colors := palette.Ranked{{Color: palette.RGB{R: 1}, Count: 3}, {Color: palette.RGB{G: 1}, Count: 1}}
	m.SetResult(image.Rect(0, 0, 5, 5), colors)
	if _, ok := m.Select(2); ok {
		t.Fatalf("out of range selection must fail")
	}
	e, ok := m.Select(1)
	if !ok || e.Color.G != 1 {
		t.Fatalf("unexpected selection %+v %v", e, ok)
	}
	m.SetResult(image.Rect(0, 0, 1, 1), colors)
	if _, ok := m.Selected(); ok {
		t.Fatalf("new result must clear selection")
	}
	m.Clear()
	if len(m.Colors()) != 0 || !m.Region().Empty() {
		t.Fatalf("clear failed")
	}
}
