package presenter

import (
	"image"
	"image/color"
	"math"

	"github.com/soocke/swatch-go/config"
	"github.com/soocke/swatch-go/domain/capture"
	"github.com/soocke/swatch-go/domain/selection"
	"github.com/soocke/swatch-go/ui/images"
)

// PreviewView shows the rendered preview surface.
type PreviewView interface {
	ShowPreview(img image.Image)
}

// PreviewPresenter renders the loaded image onto the selection surface and
// overlays the drag rectangle. Overlay changes are coalesced and pushed to
// the view on Flush.
type PreviewPresenter struct {
	Config     *config.Config
	View       PreviewView
	Background color.Color

	base    *image.RGBA
	surface selection.Size
	overlay selection.SelectionRect
	visible bool
	dirty   bool
}

func NewPreviewPresenter(cfg *config.Config, view PreviewView, bg color.Color) *PreviewPresenter {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if bg == nil {
		bg = color.RGBA{0x20, 0x20, 0x20, 0xFF}
	}
	return &PreviewPresenter{Config: cfg, View: view, Background: bg}
}

// SurfaceFor returns the pointer surface size and its display metrics for an
// image of the given natural size. In letterbox mode the surface is the whole
// container; in element mode it is the rendered image box itself.
func SurfaceFor(cfg *config.Config, naturalW, naturalH int) (selection.Size, selection.DisplayMetrics, error) {
	container := selection.Size{Width: float64(cfg.ViewWidth), Height: float64(cfg.ViewHeight)}
	fit, err := selection.ComputeDisplayMetrics(container, naturalW, naturalH)
	if err != nil {
		return selection.Size{}, selection.DisplayMetrics{}, err
	}
	if cfg.Mode() == selection.DisplayLetterbox {
		return container, fit, nil
	}
	element := selection.Size{Width: math.Round(fit.DisplayWidth), Height: math.Round(fit.DisplayHeight)}
	if element.Width < 1 {
		element.Width = 1
	}
	if element.Height < 1 {
		element.Height = 1
	}
	m, err := selection.ElementMapper{}.Metrics(element, naturalW, naturalH)
	return element, m, err
}

// Render builds the base preview for snap and shows it.
func (p *PreviewPresenter) Render(snap capture.Snapshot) error {
	if p == nil {
		return nil
	}
	w, h := snap.NaturalSize()
	surface, metrics, err := SurfaceFor(p.Config, w, h)
	if err != nil {
		return err
	}
	p.surface = surface
	p.base = images.Letterbox(snap.Image, int(surface.Width), int(surface.Height), metrics, p.Background)
	p.visible = false
	p.dirty = false
	if p.View != nil {
		p.View.ShowPreview(p.base)
	}
	return nil
}

// Surface returns the current pointer surface size; zero before any render.
func (p *PreviewPresenter) Surface() selection.Size {
	if p == nil {
		return selection.Size{}
	}
	return p.surface
}

// Overlay sets (or hides) the selection rectangle drawn on the preview.
func (p *PreviewPresenter) Overlay(sel selection.SelectionRect, visible bool) {
	if p == nil {
		return
	}
	if p.visible == visible && (!visible || p.overlay == sel) {
		return
	}
	p.overlay = sel
	p.visible = visible
	p.dirty = true
}

// Flush pushes a pending overlay change to the view.
func (p *PreviewPresenter) Flush() {
	if p == nil || !p.dirty || p.base == nil || p.View == nil {
		return
	}
	p.dirty = false
	if !p.visible {
		p.View.ShowPreview(p.base)
		return
	}
	p.View.ShowPreview(images.DrawSelection(p.base, p.overlay))
}
