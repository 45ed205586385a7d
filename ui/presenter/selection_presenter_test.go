package presenter

import (
	"image"
	"image/color"
	"testing"

	"github.com/soocke/swatch-go/config"
	"github.com/soocke/swatch-go/domain/capture"
	"github.com/soocke/swatch-go/domain/palette"
	"github.com/soocke/swatch-go/domain/selection"
	"github.com/soocke/swatch-go/ui/model"
)

type mockSurface struct {
	size     selection.Size
	overlays int
	last     selection.SelectionRect
	visible  bool
}

func (s *mockSurface) Surface() selection.Size { return s.size }
func (s *mockSurface) Overlay(sel selection.SelectionRect, visible bool) {
	s.overlays++
	s.last, s.visible = sel, visible
}

type countingAnalyzer struct {
	calls   int
	regions []image.Rectangle
	result  palette.Ranked
}

func (a *countingAnalyzer) Analyze(_ image.Image, region image.Rectangle) (palette.Ranked, error) {
	a.calls++
	a.regions = append(a.regions, region)
	return a.result, nil
}

type mockPaletteView struct {
	colors  palette.Ranked
	shown   int
	readout palette.Readout
	status  string
	busy    bool
}

func (v *mockPaletteView) ShowColors(c palette.Ranked)    { v.colors = c; v.shown++ }
func (v *mockPaletteView) ShowReadout(r palette.Readout) { v.readout = r }
func (v *mockPaletteView) SetStatus(s string)            { v.status = s }
func (v *mockPaletteView) SetBusy(b bool)                { v.busy = b }

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

// 200x100 image on a 100x100 surface renders at 100x50 with a 25px bar above.
func newSelectionFixture(img image.Image) (*SelectionPresenter, *mockSurface, *countingAnalyzer, *mockPaletteView) {
	images := model.NewImageModel()
	if img != nil {
		images.Set(capture.Snapshot{Image: img})
	}
	surface := &mockSurface{size: selection.Size{Width: 100, Height: 100}}
	analyzer := &countingAnalyzer{result: palette.Ranked{{Color: palette.RGB{R: 9}, Count: 1}}}
	view := &mockPaletteView{}
	p := NewSelectionPresenter(config.DefaultConfig(), images, surface, analyzer, model.NewPaletteModel(), view, nil)
	return p, surface, analyzer, view
}

func TestSelectionPresenter_MapsLetterboxedDrag(t *testing.T) {
	p, surface, analyzer, view := newSelectionFixture(image.NewRGBA(image.Rect(0, 0, 200, 100)))
	p.Begin(10, 30)
	p.Move(30, 45)
	if !surface.visible || surface.last.Width != 20 {
		t.Fatalf("overlay should follow the drag, got %+v visible=%v", surface.last, surface.visible)
	}
	p.End(50, 60)
	if analyzer.calls != 1 {
		t.Fatalf("expected one analysis, got %d", analyzer.calls)
	}
	if want := image.Rect(20, 10, 100, 70); analyzer.regions[0] != want {
		t.Fatalf("region = %v, want %v", analyzer.regions[0], want)
	}
	if view.shown != 1 || len(view.colors) != 1 {
		t.Fatalf("colours not pushed to view")
	}
	if p.Palette.Region() != image.Rect(20, 10, 100, 70) {
		t.Fatalf("palette model not updated: %v", p.Palette.Region())
	}
}

func TestSelectionPresenter_SmallSelectionNeverAnalyzes(t *testing.T) {
	p, surface, analyzer, _ := newSelectionFixture(image.NewRGBA(image.Rect(0, 0, 200, 100)))
	drags := [][4]float64{{10, 30, 14, 60}, {10, 30, 60, 34}, {10, 30, 10, 30}, {40, 40, 35.5, 44}}
	for _, d := range drags {
		p.Begin(d[0], d[1])
		p.End(d[2], d[3])
	}
	if analyzer.calls != 0 {
		t.Fatalf("extractor invoked %d times for small selections", analyzer.calls)
	}
	if surface.visible {
		t.Fatalf("rejected selection overlay should be hidden")
	}
}

func TestSelectionPresenter_NotReadyIsNoop(t *testing.T) {
	p, surface, analyzer, _ := newSelectionFixture(nil)
	p.Begin(10, 30)
	p.Move(80, 70)
	p.End(80, 70)
	if analyzer.calls != 0 || surface.overlays != 0 {
		t.Fatalf("expected no activity without an image: calls=%d overlays=%d", analyzer.calls, surface.overlays)
	}
}

func TestSelectionPresenter_PressInLetterboxMarginIgnored(t *testing.T) {
	p, _, analyzer, _ := newSelectionFixture(image.NewRGBA(image.Rect(0, 0, 200, 100)))
	p.Begin(10, 10)
	p.End(60, 60)
	if analyzer.calls != 0 {
		t.Fatalf("press in margin must not start a gesture")
	}
}

func TestSelectionPresenter_ClampsToImage(t *testing.T) {
	p, _, analyzer, _ := newSelectionFixture(image.NewRGBA(image.Rect(0, 0, 200, 100)))
	p.Begin(90, 70)
	p.End(200, 200)
	if analyzer.calls != 1 {
		t.Fatalf("expected analysis, got %d calls", analyzer.calls)
	}
	if want := image.Rect(180, 90, 200, 100); analyzer.regions[0] != want {
		t.Fatalf("region = %v, want %v", analyzer.regions[0], want)
	}
}

func TestSelectionPresenter_ElementMode(t *testing.T) {
	p, surface, analyzer, _ := newSelectionFixture(image.NewRGBA(image.Rect(0, 0, 200, 100)))
	p.Config.DisplayMode = "element"
	surface.size = selection.Size{Width: 100, Height: 50}
	p.Begin(0, 0)
	p.End(50, 25)
	if analyzer.calls != 1 || analyzer.regions[0] != image.Rect(0, 0, 100, 50) {
		t.Fatalf("unexpected element-mode mapping %v", analyzer.regions)
	}
}

func TestSelectionPresenter_PickSwatchAndToggleFilter(t *testing.T) {
	img := solid(200, 100, color.RGBA{255, 0, 128, 255})
	p, _, _, view := newSelectionFixture(img)
	p.Analyzer = ExtractorAnalyzer{Extractor: p.Config.Extractor}
	p.Begin(0, 25)
	p.End(100, 75)
	if len(view.colors) != 1 || view.colors[0].Count != 200*100 {
		t.Fatalf("unexpected colours %+v", view.colors)
	}
	p.PickSwatch(0)
	if view.readout.Hex != "#FF0080" || view.readout.RGB != "255, 0, 128" {
		t.Fatalf("unexpected readout %+v", view.readout)
	}
	if got := p.ToggleFilter(); got != palette.FilterDropNeutrals || p.Config.Filter != "drop-neutrals" {
		t.Fatalf("toggle did not switch policy: %v", got)
	}
	if view.shown != 2 {
		t.Fatalf("toggle should reanalyze the last region, shown=%d", view.shown)
	}
}

func TestSelectionPresenter_CancelHidesOverlay(t *testing.T) {
	p, surface, analyzer, _ := newSelectionFixture(image.NewRGBA(image.Rect(0, 0, 200, 100)))
	p.Begin(10, 30)
	p.Cancel()
	p.End(80, 70)
	if analyzer.calls != 0 || surface.visible {
		t.Fatalf("cancelled gesture must not analyze")
	}
}

func TestSelectionPresenter_SettingsApplyAfterToggleKeepsFilter(t *testing.T) {
	img := solid(200, 100, color.RGBA{0, 0, 0, 255})
	p, _, _, view := newSelectionFixture(img)
	p.Analyzer = ExtractorAnalyzer{Extractor: p.Config.Extractor}
	form := model.SettingsValues(p.Config) // form filled before the toggle
	p.Begin(0, 25)
	p.End(100, 75)
	if p.ToggleFilter() != palette.FilterDropNeutrals || len(view.colors) != 0 {
		t.Fatalf("black region should be filtered out, got %+v", view.colors)
	}

	form["nearWhite"] = "230"
	applied, err := model.ApplySettings(*p.Config, form)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	*p.Config = applied
	p.Reanalyze()
	if p.Config.FilterPolicy() != palette.FilterDropNeutrals || p.Config.NearWhite != 230 {
		t.Fatalf("apply reverted the toggle: %+v", p.Config)
	}
	if len(view.colors) != 0 {
		t.Fatalf("reanalysis after apply ignored the filter: %+v", view.colors)
	}
}
