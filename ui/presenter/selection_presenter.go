package presenter

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/soocke/swatch-go/config"
	"github.com/soocke/swatch-go/domain/capture"
	"github.com/soocke/swatch-go/domain/palette"
	"github.com/soocke/swatch-go/domain/selection"
	"github.com/soocke/swatch-go/ui/model"
)

// Analyzer ranks the colours of region within img.
type Analyzer interface {
	Analyze(img image.Image, region image.Rectangle) (palette.Ranked, error)
}

// ExtractorAnalyzer crops the region into a pooled buffer and runs the
// extractor returned by Extractor over it.
type ExtractorAnalyzer struct {
	Extractor func() *palette.Extractor
}

func (a ExtractorAnalyzer) Analyze(img image.Image, region image.Rectangle) (palette.Ranked, error) {
	crop := capture.Crop(img, region)
	defer capture.Release(crop)
	var ex *palette.Extractor
	if a.Extractor != nil {
		ex = a.Extractor()
	}
	return ex.ExtractNRGBA(crop)
}

// ImageSource reports the image available for selection.
type ImageSource interface {
	Ready() bool
	Current() capture.Snapshot
}

// Surface supplies the current pointer surface and draws the drag overlay.
type Surface interface {
	Surface() selection.Size
	Overlay(sel selection.SelectionRect, visible bool)
}

// PaletteView renders ranked colours and the readout of a picked swatch.
type PaletteView interface {
	ShowColors(colors palette.Ranked)
	ShowReadout(r palette.Readout)
	SetStatus(text string)
}

// SelectionPresenter is the interaction controller for drag gestures. It
// owns the gesture state; begin/move/end run synchronously on the UI thread.
type SelectionPresenter struct {
	Config   *config.Config
	Images   ImageSource
	Surface  Surface
	Analyzer Analyzer
	Palette  *model.PaletteModel
	View     PaletteView
	logger   *slog.Logger

	gesture selection.GestureState
	bounds  image.Rectangle // rendered image box on the surface for this gesture
}

func NewSelectionPresenter(cfg *config.Config, images ImageSource, surface Surface, analyzer Analyzer, pal *model.PaletteModel, view PaletteView, logger *slog.Logger) *SelectionPresenter {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if analyzer == nil {
		analyzer = ExtractorAnalyzer{Extractor: cfg.Extractor}
	}
	return &SelectionPresenter{Config: cfg, Images: images, Surface: surface, Analyzer: analyzer, Palette: pal, View: view, logger: logger}
}

// metrics recomputes the display metrics for the current surface and image.
func (p *SelectionPresenter) metrics() (selection.Mapper, selection.Size, selection.DisplayMetrics, error) {
	if p.Images == nil || !p.Images.Ready() {
		return nil, selection.Size{}, selection.DisplayMetrics{}, selection.ErrImageNotReady
	}
	w, h := p.Images.Current().NaturalSize()
	mapper := selection.NewMapper(p.Config.Mode())
	surface := p.Surface.Surface()
	m, err := mapper.Metrics(surface, w, h)
	return mapper, surface, m, err
}

// Begin starts a drag at surface coordinates (x, y). Presses are ignored
// while no image is ready or outside the rendered image.
func (p *SelectionPresenter) Begin(x, y float64) {
	if p == nil || p.Surface == nil {
		return
	}
	_, _, m, err := p.metrics()
	if err != nil {
		p.debug("gesture ignored", err)
		return
	}
	p.bounds = imageBox(m)
	pt := selection.Point{X: x, Y: y}
	if !inside(p.bounds, pt) {
		return
	}
	p.gesture.Begin(pt)
	p.Surface.Overlay(selection.SelectionRect{X: x, Y: y}, true)
}

// Move extends the drag, clamped to the rendered image.
func (p *SelectionPresenter) Move(x, y float64) {
	if p == nil || !p.gesture.Active() {
		return
	}
	if _, _, m, err := p.metrics(); err == nil {
		p.bounds = imageBox(m)
	}
	if sel, ok := p.gesture.Move(clamp(p.bounds, x, y)); ok {
		p.Surface.Overlay(sel, true)
	}
}

// End finishes the drag and analyses the selected region. Selections
// smaller than the configured minimum are dropped without analysis.
func (p *SelectionPresenter) End(x, y float64) {
	if p == nil || !p.gesture.Active() {
		return
	}
	mapper, surface, m, err := p.metrics()
	if err != nil {
		p.gesture.Reset()
		p.Surface.Overlay(selection.SelectionRect{}, false)
		p.debug("gesture aborted", err)
		return
	}
	p.bounds = imageBox(m)
	sel, _ := p.gesture.End(clamp(p.bounds, x, y))
	w, h := p.Images.Current().NaturalSize()
	src, ok, err := selection.Map(mapper, surface, w, h, sel, p.Config.MinSelection)
	if err != nil || !ok {
		p.Surface.Overlay(selection.SelectionRect{}, false)
		return
	}
	p.Surface.Overlay(sel, true)
	p.analyze(src.Bounds(w, h))
}

// Cancel abandons the gesture in progress, if any.
func (p *SelectionPresenter) Cancel() {
	if p == nil || !p.gesture.Active() {
		return
	}
	p.gesture.Reset()
	p.Surface.Overlay(selection.SelectionRect{}, false)
}

// Reanalyze reruns the extractor over the last region, e.g. after the
// filter policy or thresholds changed.
func (p *SelectionPresenter) Reanalyze() {
	if p == nil || p.Palette == nil || p.Images == nil || !p.Images.Ready() {
		return
	}
	if r := p.Palette.Region(); !r.Empty() {
		p.analyze(r)
	}
}

// ToggleFilter flips between counting every pixel and dropping neutrals.
func (p *SelectionPresenter) ToggleFilter() palette.FilterPolicy {
	if p == nil {
		return palette.FilterNone
	}
	next := palette.FilterDropNeutrals
	if p.Config.FilterPolicy() == palette.FilterDropNeutrals {
		next = palette.FilterNone
	}
	p.Config.Filter = next.String()
	p.Reanalyze()
	return next
}

// PickSwatch shows the readout for the i-th ranked colour.
func (p *SelectionPresenter) PickSwatch(i int) {
	if p == nil || p.Palette == nil || p.View == nil {
		return
	}
	e, ok := p.Palette.Select(i)
	if !ok {
		return
	}
	p.View.ShowReadout(palette.Describe(e.Color))
}

func (p *SelectionPresenter) analyze(region image.Rectangle) {
	if region.Empty() {
		return
	}
	colors, err := p.Analyzer.Analyze(p.Images.Current().Image, region)
	if err != nil {
		if p.logger != nil {
			p.logger.Error("analyze region", "region", region.String(), "error", err)
		}
		return
	}
	if p.Palette != nil {
		p.Palette.SetResult(region, colors)
	}
	if p.View != nil {
		p.View.ShowColors(colors)
		p.View.SetStatus(fmt.Sprintf("%dx%d px at (%d,%d): %d colours (%s)",
			region.Dx(), region.Dy(), region.Min.X, region.Min.Y, len(colors), p.Config.FilterPolicy()))
	}
	if p.logger != nil {
		p.logger.Debug("region analyzed", "region", region.String(), "colors", len(colors), "filter", p.Config.FilterPolicy().String())
	}
}

func (p *SelectionPresenter) debug(msg string, err error) {
	if p.logger == nil {
		return
	}
	if errors.Is(err, selection.ErrImageNotReady) {
		p.logger.Debug(msg, "reason", "image not ready")
		return
	}
	p.logger.Debug(msg, "error", err)
}

// imageBox is the rendered image area on the surface.
func imageBox(m selection.DisplayMetrics) image.Rectangle {
	return image.Rect(
		int(math.Floor(m.OffsetX)), int(math.Floor(m.OffsetY)),
		int(math.Ceil(m.OffsetX+m.DisplayWidth)), int(math.Ceil(m.OffsetY+m.DisplayHeight)),
	)
}

func inside(r image.Rectangle, p selection.Point) bool {
	return p.X >= float64(r.Min.X) && p.Y >= float64(r.Min.Y) && p.X < float64(r.Max.X) && p.Y < float64(r.Max.Y)
}

func clamp(r image.Rectangle, x, y float64) selection.Point {
	return selection.Point{
		X: math.Max(float64(r.Min.X), math.Min(x, float64(r.Max.X))),
		Y: math.Max(float64(r.Min.Y), math.Min(y, float64(r.Max.Y))),
	}
}
