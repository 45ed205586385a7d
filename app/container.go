package app

import (
	"log/slog"

	"github.com/soocke/swatch-go/config"
	"github.com/soocke/swatch-go/domain/capture"
	"github.com/soocke/swatch-go/ui/model"
	"github.com/soocke/swatch-go/ui/presenter"
	"github.com/soocke/swatch-go/ui/theme"
	"github.com/soocke/swatch-go/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	CfgPath  string
	Logger   *slog.Logger
	Images   *model.ImageModel
	Palette  *model.PaletteModel
	Loader   capture.Loader
	RootView *view.RootView

	// Presenters
	PreviewPresenter   *presenter.PreviewPresenter
	SelectionPresenter *presenter.SelectionPresenter
	SourcePresenter    *presenter.SourcePresenter
	Loop               *presenter.Loop
}

// BuildContainer constructs all components. No widgets are created here;
// the root view is built by the app once Tk is ready.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string) *AppContainer {
	c := &AppContainer{Config: cfg, CfgPath: cfgPath, Logger: logger}
	c.Images = model.NewImageModel()
	c.Palette = model.NewPaletteModel()
	c.Loader = capture.NewLoader(logger, capture.ScreenSource{Display: cfg.DisplayIndex}, capture.FileSource{})

	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.PreviewPresenter = presenter.NewPreviewPresenter(cfg, c.RootView, theme.PreviewBackground())
	c.SelectionPresenter = presenter.NewSelectionPresenter(cfg, c.Images, c.PreviewPresenter, nil, c.Palette, c.RootView, logger)
	c.SourcePresenter = presenter.NewSourcePresenter(c.Loader, c.Images, c.Palette, c.PreviewPresenter, c.RootView, logger)
	c.SourcePresenter.SetGesture(c.SelectionPresenter)
	return c
}

// Rerender redraws the preview for the current image, e.g. after the
// display settings or theme changed, and refreshes the last analysis.
func (c *AppContainer) Rerender() {
	if c == nil || !c.Images.Ready() {
		return
	}
	c.SelectionPresenter.Cancel()
	c.PreviewPresenter.Background = theme.PreviewBackground()
	if err := c.PreviewPresenter.Render(c.Images.Current()); err != nil && c.Logger != nil {
		c.Logger.Error("preview render failed", "error", err)
	}
	c.SelectionPresenter.Reanalyze()
}
