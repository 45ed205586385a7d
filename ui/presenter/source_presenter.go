package presenter

import (
	"fmt"
	"log/slog"

	"github.com/soocke/swatch-go/domain/capture"
	"github.com/soocke/swatch-go/domain/palette"
	"github.com/soocke/swatch-go/ui/model"
)

// SourceView updates UI elements affected by loading a new image.
type SourceView interface {
	PaletteView
	SetBusy(busy bool)
}

// Renderer draws a freshly loaded snapshot onto the selection surface.
type Renderer interface {
	Render(snap capture.Snapshot) error
}

// Canceler abandons an in-progress drag.
type Canceler interface {
	Cancel()
}

// SourcePresenter owns presentation logic for screen capture and file
// loading. Loads complete asynchronously; Tick applies finished results on
// the UI thread.
type SourcePresenter struct {
	loader  capture.Loader
	images  *model.ImageModel
	palette *model.PaletteModel
	preview Renderer
	view    SourceView
	gesture Canceler
	logger  *slog.Logger
}

func NewSourcePresenter(loader capture.Loader, images *model.ImageModel, pal *model.PaletteModel, preview Renderer, view SourceView, logger *slog.Logger) *SourcePresenter {
	return &SourcePresenter{loader: loader, images: images, palette: pal, preview: preview, view: view, logger: logger}
}

// SetGesture registers the drag to abandon whenever a new image replaces
// the current one, so a drag begun on the old image is never mapped onto
// the new one.
func (p *SourcePresenter) SetGesture(g Canceler) {
	if p != nil {
		p.gesture = g
	}
}

// Capture requests a screen grab. Ignored while another load is running.
func (p *SourcePresenter) Capture() {
	if p == nil || p.loader == nil || p.view == nil {
		return
	}
	if p.loader.RequestScreen() {
		p.view.SetBusy(true)
		p.view.SetStatus("Capturing screen...")
	}
}

// Open requests decoding of the image file at path. Empty paths (a
// cancelled file dialog) are ignored.
func (p *SourcePresenter) Open(path string) {
	if p == nil || p.loader == nil || p.view == nil || path == "" {
		return
	}
	if p.loader.RequestFile(path) {
		p.view.SetBusy(true)
		p.view.SetStatus("Loading " + path + "...")
	}
}

// Tick applies any finished load. It never blocks.
func (p *SourcePresenter) Tick() {
	if p == nil || p.loader == nil || p.view == nil {
		return
	}
	select {
	case res := <-p.loader.Results():
		p.apply(res)
	default:
	}
}

func (p *SourcePresenter) apply(res capture.Result) {
	p.view.SetBusy(false)
	if res.Err != nil {
		// the previous image, if any, stays loaded and selectable
		if p.logger != nil {
			p.logger.Error("image load failed", "error", res.Err)
		}
		p.view.SetStatus("Load failed: " + res.Err.Error())
		return
	}
	snap := res.Snapshot
	if !p.images.Set(snap) {
		return
	}
	if p.gesture != nil {
		p.gesture.Cancel()
	}
	p.palette.Clear()
	p.view.ShowColors(nil)
	p.view.ShowReadout(palette.Readout{})
	if p.preview != nil {
		if err := p.preview.Render(snap); err != nil && p.logger != nil {
			p.logger.Error("preview render failed", "error", err)
		}
	}
	w, h := snap.NaturalSize()
	p.view.SetStatus(fmt.Sprintf("Loaded %s (%s, %dx%d). Drag to select a region.", snap.Origin, snap.Kind, w, h))
	if p.logger != nil {
		p.logger.Info("image loaded", "kind", snap.Kind.String(), "origin", snap.Origin, "width", w, "height", h, "sequence", snap.Sequence)
	}
}
