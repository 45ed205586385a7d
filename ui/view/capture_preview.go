package view

import (
	"image"

	"github.com/soocke/swatch-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Preview is the selection surface: a label showing the letterboxed image
// (plus drag overlay) and forwarding left-button drags in label coordinates.
type Preview interface {
	ShowPreview(img image.Image)
	Reset()
}

// PointerHandlers receive surface-relative pointer positions.
type PointerHandlers struct {
	Press   func(x, y float64)
	Drag    func(x, y float64)
	Release func(x, y float64)
}

type capturePreview struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo; deleted before replacement
	w, h      int
}

// NewCapturePreview creates the preview label sized w x h, grids it at row
// spanning all columns and binds the drag gesture.
func NewCapturePreview(row, w, h int, bg string, ptr PointerHandlers) Preview {
	v := &capturePreview{w: w, h: h}
	v.prevPhoto = NewPhoto(Data(images.EncodePNG(placeholder(w, h))))
	// No border or padding: event coordinates must equal surface pixels.
	v.label = Label(Image(v.prevPhoto), Borderwidth(0), Padx(0), Pady(0), Highlightthickness(0), Background(bg))
	Grid(v.label, Row(row), Column(0), Columnspan(4), Padx("0.4m"), Pady("0.4m"))

	Bind(v.label, "<ButtonPress-1>", Command(func(e *Event) {
		if ptr.Press != nil {
			ptr.Press(eventPoint(e))
		}
	}))
	Bind(v.label, "<B1-Motion>", Command(func(e *Event) {
		if ptr.Drag != nil {
			ptr.Drag(eventPoint(e))
		}
	}))
	Bind(v.label, "<ButtonRelease-1>", Command(func(e *Event) {
		if ptr.Release != nil {
			ptr.Release(eventPoint(e))
		}
	}))
	return v
}

// eventPoint extracts the widget-relative pointer position.
func eventPoint(e *Event) (float64, float64) {
	if e == nil {
		return 0, 0
	}
	return float64(e.X), float64(e.Y)
}

func placeholder(w, h int) *image.RGBA {
	if w < 1 || h < 1 {
		w, h = 1, 1
	}
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func (v *capturePreview) ShowPreview(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	photo := NewPhoto(Data(images.EncodePNG(img)))
	v.label.Configure(Image(photo))
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = photo
}

func (v *capturePreview) Reset() {
	if v == nil {
		return
	}
	v.ShowPreview(placeholder(v.w, v.h))
}
