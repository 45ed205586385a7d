package selection

import (
	"fmt"
	"strings"
)

// DisplayMode selects how pointer coordinates relate to the rendered image.
type DisplayMode int

const (
	// DisplayLetterbox: coordinates are container-relative and the image is
	// contain-scaled with margins on one axis.
	DisplayLetterbox DisplayMode = iota
	// DisplayElement: coordinates are relative to an element that exactly
	// bounds the rendered image, so there is no letterbox offset.
	DisplayElement
)

func (m DisplayMode) String() string {
	switch m {
	case DisplayLetterbox:
		return "letterbox"
	case DisplayElement:
		return "element"
	default:
		return "unknown"
	}
}

// ParseDisplayMode accepts the names produced by DisplayMode.String.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "letterbox":
		return DisplayLetterbox, nil
	case "element":
		return DisplayElement, nil
	default:
		return DisplayLetterbox, fmt.Errorf("selection: unknown display mode %q", s)
	}
}

// Mapper converts display-space selections into source-image rectangles.
type Mapper interface {
	Mode() DisplayMode
	Metrics(surface Size, naturalW, naturalH int) (DisplayMetrics, error)
}

// NewMapper returns the strategy for mode.
func NewMapper(mode DisplayMode) Mapper {
	if mode == DisplayElement {
		return ElementMapper{}
	}
	return LetterboxMapper{}
}

// LetterboxMapper implements contain scaling inside a larger container.
type LetterboxMapper struct{}

func (LetterboxMapper) Mode() DisplayMode { return DisplayLetterbox }

func (LetterboxMapper) Metrics(container Size, naturalW, naturalH int) (DisplayMetrics, error) {
	return ComputeDisplayMetrics(container, naturalW, naturalH)
}

// ElementMapper treats the surface as the image's own rendered box.
type ElementMapper struct{}

func (ElementMapper) Mode() DisplayMode { return DisplayElement }

func (ElementMapper) Metrics(element Size, naturalW, naturalH int) (DisplayMetrics, error) {
	if naturalW <= 0 || naturalH <= 0 {
		return DisplayMetrics{}, ErrImageNotReady
	}
	if element.Width <= 0 || element.Height <= 0 {
		return DisplayMetrics{}, ErrEmptyContainer
	}
	return DisplayMetrics{DisplayWidth: element.Width, DisplayHeight: element.Height}, nil
}

// ComputeDisplayMetrics determines the rendered size and letterbox offset
// of an image of natural size naturalW x naturalH contain-scaled into container.
func ComputeDisplayMetrics(container Size, naturalW, naturalH int) (DisplayMetrics, error) {
	if naturalW <= 0 || naturalH <= 0 {
		return DisplayMetrics{}, ErrImageNotReady
	}
	if container.Width <= 0 || container.Height <= 0 {
		return DisplayMetrics{}, ErrEmptyContainer
	}
	imageAspect := float64(naturalW) / float64(naturalH)
	containerAspect := container.Width / container.Height

	var m DisplayMetrics
	if imageAspect > containerAspect {
		// wider than the container: bars top and bottom
		m.DisplayWidth = container.Width
		m.DisplayHeight = container.Width / imageAspect
		m.OffsetY = (container.Height - m.DisplayHeight) / 2
	} else {
		m.DisplayHeight = container.Height
		m.DisplayWidth = container.Height * imageAspect
		m.OffsetX = (container.Width - m.DisplayWidth) / 2
	}
	return m, nil
}

// ToSourceRect maps a surface-space selection into source pixels: the
// letterbox offset is removed, then each axis is scaled independently by
// natural/display size.
func ToSourceRect(sel SelectionRect, m DisplayMetrics, naturalW, naturalH int) SourceRect {
	if m.DisplayWidth <= 0 || m.DisplayHeight <= 0 {
		return SourceRect{}
	}
	scaleX := float64(naturalW) / m.DisplayWidth
	scaleY := float64(naturalH) / m.DisplayHeight
	return SourceRect{
		X:      (sel.X - m.OffsetX) * scaleX,
		Y:      (sel.Y - m.OffsetY) * scaleY,
		Width:  sel.Width * scaleX,
		Height: sel.Height * scaleY,
	}
}

// Map validates and converts a surface-space selection for the image with
// natural size naturalW x naturalH. ok is false when the selection is
// smaller than min on either axis; such selections are not errors.
func Map(mapper Mapper, surface Size, naturalW, naturalH int, sel SelectionRect, min float64) (src SourceRect, ok bool, err error) {
	metrics, err := mapper.Metrics(surface, naturalW, naturalH)
	if err != nil {
		return SourceRect{}, false, err
	}
	if !sel.Accepts(min) {
		return SourceRect{}, false, nil
	}
	return ToSourceRect(sel, metrics, naturalW, naturalH), true, nil
}
