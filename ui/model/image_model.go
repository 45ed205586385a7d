package model

import (
	"github.com/soocke/swatch-go/domain/capture"
)

// ImageModel holds the image currently shown for selection. The zero value
// has no image and is usable.
type ImageModel struct {
	current capture.Snapshot
}

func NewImageModel() *ImageModel { return &ImageModel{} }

// Ready reports whether a decoded image with a natural size is loaded.
func (m *ImageModel) Ready() bool {
	if m == nil {
		return false
	}
	return m.current.Ready()
}

// Set replaces the current image. Snapshots that are not ready are ignored
// so a failed load never clears a usable image.
func (m *ImageModel) Set(s capture.Snapshot) bool {
	if m == nil || !s.Ready() {
		return false
	}
	m.current = s
	return true
}

// Current returns the loaded snapshot (may be the zero value).
func (m *ImageModel) Current() capture.Snapshot {
	if m == nil {
		return capture.Snapshot{}
	}
	return m.current
}

// NaturalSize returns the intrinsic size of the current image.
func (m *ImageModel) NaturalSize() (int, int) {
	if m == nil {
		return 0, 0
	}
	return m.current.NaturalSize()
}
