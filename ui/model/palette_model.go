package model

import (
	"image"

	"github.com/soocke/swatch-go/domain/palette"
)

// PaletteModel holds the last analysed region, its ranked colours and the
// swatch the user picked. Zero value means nothing analysed and is usable.
// No synchronization needed: updates occur on the UI thread.
type PaletteModel struct {
	region   image.Rectangle
	colors   palette.Ranked
	selected int
}

func NewPaletteModel() *PaletteModel { return &PaletteModel{selected: -1} }

// SetResult stores a new analysis and clears the picked swatch.
func (m *PaletteModel) SetResult(region image.Rectangle, colors palette.Ranked) {
	if m == nil {
		return
	}
	m.region = region
	m.colors = colors
	m.selected = -1
}

// Clear forgets the analysis (e.g. when a new image is loaded).
func (m *PaletteModel) Clear() { m.SetResult(image.Rectangle{}, nil) }

// Region returns the source rectangle of the last analysis (may be empty).
func (m *PaletteModel) Region() image.Rectangle {
	if m == nil {
		return image.Rectangle{}
	}
	return m.region
}

// Colors returns the ranked colours of the last analysis.
func (m *PaletteModel) Colors() palette.Ranked {
	if m == nil {
		return nil
	}
	return m.colors
}

// Select marks swatch i as picked. Out of range indices are ignored.
func (m *PaletteModel) Select(i int) (palette.ColorEntry, bool) {
	if m == nil || i < 0 || i >= len(m.colors) {
		return palette.ColorEntry{}, false
	}
	m.selected = i
	return m.colors[i], true
}

// Selected returns the picked swatch, if any.
func (m *PaletteModel) Selected() (palette.ColorEntry, bool) {
	if m == nil || m.selected < 0 || m.selected >= len(m.colors) {
		return palette.ColorEntry{}, false
	}
	return m.colors[m.selected], true
}
