package view

import (
	"image"
	"log/slog"

	"github.com/soocke/swatch-go/config"
	"github.com/soocke/swatch-go/domain/palette"
	"github.com/soocke/swatch-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Preview     Preview
	Swatches    SwatchPanel
	ConfigPanel ConfigPanel

	// Widgets
	StatusLabel *TLabelWidget
	FilterBtn   *TButtonWidget
	captureBtn  *TButtonWidget
	openBtn     *TButtonWidget
}

// Handlers are invoked on user actions. Nil entries are ignored.
type Handlers struct {
	Capture      func()
	Open         func(path string)
	ToggleFilter func() palette.FilterPolicy
	ToggleTheme  func()
	Exit         func()
	Pointer      PointerHandlers
	Cancel       func()
	PickSwatch   func(i int)
	ConfigApply  func()
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

func call(fn func()) func() {
	return func() {
		if fn != nil {
			fn()
		}
	}
}

// Build constructs the layout: buttons on row 0, the preview surface on
// row 1, swatches and readouts on rows 2-3, status on row 4 and the settings
// form below.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	pal := theme.CurrentPalette()

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(0), Columnspan(4), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	rv.captureBtn = TButton(Txt("Capture Screen"), Style(theme.StylePrimaryButton), Command(call(h.Capture)))
	Grid(rv.captureBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.openBtn = TButton(Txt("Open Image..."), Style(theme.StylePrimaryButton), Command(func() {
		if h.Open == nil {
			return
		}
		if files := GetOpenFile(Title("Open Image")); len(files) > 0 {
			h.Open(files[0])
		}
	}))
	Grid(rv.openBtn, In(btnFrame), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.FilterBtn = TButton(Txt(filterText(rv.cfg.FilterPolicy())), Command(func() {
		if h.ToggleFilter != nil {
			rv.FilterBtn.Configure(Txt(filterText(h.ToggleFilter())))
		}
	}))
	Grid(rv.FilterBtn, In(btnFrame), Row(0), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	themeBtn := TButton(Txt("Theme"), Command(call(h.ToggleTheme)))
	Grid(themeBtn, In(btnFrame), Row(0), Column(3), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := TButton(Txt("Exit"), Style(theme.StyleDangerButton), Command(call(h.Exit)))
	Grid(exitBtn, In(btnFrame), Row(0), Column(4), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	rv.Preview = NewCapturePreview(1, rv.cfg.ViewWidth, rv.cfg.ViewHeight, pal.Surface, h.Pointer)
	rv.Swatches = NewSwatchPanel(2, pal.Surface, h.PickSwatch)

	rv.StatusLabel = TLabel(Txt("Capture the screen or open an image."), Style(theme.StyleStatusLabel))
	Grid(rv.StatusLabel, Row(4), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger, func() {
		rv.FilterBtn.Configure(Txt(filterText(rv.cfg.FilterPolicy())))
		if h.ConfigApply != nil {
			h.ConfigApply()
		}
	})
	rv.ConfigPanel.Build(5, 0)

	Bind(App, "<Escape>", Command(call(h.Cancel)))
}

func filterText(p palette.FilterPolicy) string {
	if p == palette.FilterDropNeutrals {
		return "Filter: drop neutrals"
	}
	return "Filter: none"
}

// SetStatus updates the status line.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// SetBusy disables the load buttons while a load is in flight.
func (rv *RootView) SetBusy(busy bool) {
	if rv == nil {
		return
	}
	state := "normal"
	if busy {
		state = "disabled"
	}
	for _, b := range []*TButtonWidget{rv.captureBtn, rv.openBtn} {
		if b != nil {
			b.Configure(State(state))
		}
	}
	if rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(!busy)
	}
}

// ShowPreview proxies to the preview surface.
func (rv *RootView) ShowPreview(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.ShowPreview(img)
	}
}

// ShowColors proxies to the swatch panel.
func (rv *RootView) ShowColors(colors palette.Ranked) {
	if rv != nil && rv.Swatches != nil {
		rv.Swatches.ShowColors(colors)
	}
}

// ShowReadout proxies to the swatch panel.
func (rv *RootView) ShowReadout(r palette.Readout) {
	if rv != nil && rv.Swatches != nil {
		rv.Swatches.ShowReadout(r)
	}
}
