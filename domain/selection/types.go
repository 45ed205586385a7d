package selection

import (
	"errors"
	"image"
	"math"
)

// MinSelectionSize is the default smallest accepted drag, in display pixels, on either axis.
const MinSelectionSize = 5.0

var (
	// ErrImageNotReady is returned when the image has no natural size yet (not decoded).
	ErrImageNotReady = errors.New("selection: image not ready")
	// ErrEmptyContainer is returned when the display surface has no area.
	ErrEmptyContainer = errors.New("selection: empty container")
)

// Point is a pointer position in display space.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in display pixels.
type Size struct {
	Width, Height float64
}

// DisplayMetrics describes how the image is rendered inside its container:
// the rendered size and the letterbox offset of its top-left corner.
// It is derived per pointer event and never cached.
type DisplayMetrics struct {
	DisplayWidth  float64
	DisplayHeight float64
	OffsetX       float64
	OffsetY       float64
}

// SelectionRect is a normalized drag rectangle in display space.
type SelectionRect struct {
	X, Y          float64
	Width, Height float64
}

// NormalizeSelection builds a rectangle from two drag endpoints using
// independent min/max per axis, so the drag may go in any direction.
func NormalizeSelection(start, end Point) SelectionRect {
	return SelectionRect{
		X:      math.Min(start.X, end.X),
		Y:      math.Min(start.Y, end.Y),
		Width:  math.Abs(end.X - start.X),
		Height: math.Abs(end.Y - start.Y),
	}
}

// Accepts reports whether the selection is at least min pixels on both axes.
func (r SelectionRect) Accepts(min float64) bool {
	return r.Width >= min && r.Height >= min
}

// SourceRect is a selection expressed in source-image pixels.
type SourceRect struct {
	X, Y          float64
	Width, Height float64
}

// Bounds rounds the rectangle to integer pixels and clamps it to the
// natural image size. The result may be empty for selections entirely
// inside a letterbox margin.
func (r SourceRect) Bounds(naturalW, naturalH int) image.Rectangle {
	x0 := int(math.Round(r.X))
	y0 := int(math.Round(r.Y))
	x1 := int(math.Round(r.X + r.Width))
	y1 := int(math.Round(r.Y + r.Height))
	return image.Rect(x0, y0, x1, y1).Intersect(image.Rect(0, 0, naturalW, naturalH))
}
