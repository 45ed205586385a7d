package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/swatch-go/debug"
	"github.com/soocke/swatch-go/ui/presenter"
	"github.com/soocke/swatch-go/ui/theme"
	"github.com/soocke/swatch-go/ui/view"
)

const (
	// tick drains finished loads and flushes the drag overlay; ~30 redraws/s.
	tick = 33 * time.Millisecond
)

type app struct {
	c       *AppContainer
	logger  *slog.Logger
	title   string
	width   int
	height  int
	afterID string
}

func NewApp(title string, width, height int, c *AppContainer) *app {
	return &app{c: c, logger: c.Logger, title: title, width: width, height: height}
}

// Start builds the window and blocks in the Tk event loop until exit.
func (a *app) Start() {
	theme.InitStyles()
	App.WmTitle(a.title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", a.width, a.height))

	c := a.c
	sel := c.SelectionPresenter
	c.RootView.Build(view.Handlers{
		Capture:      c.SourcePresenter.Capture,
		Open:         c.SourcePresenter.Open,
		ToggleFilter: sel.ToggleFilter,
		ToggleTheme: func() {
			theme.ToggleDark()
			c.Rerender()
		},
		Exit: a.exitHandler,
		Pointer: view.PointerHandlers{
			Press:   sel.Begin,
			Drag:    sel.Move,
			Release: sel.End,
		},
		Cancel:      sel.Cancel,
		PickSwatch:  sel.PickSwatch,
		ConfigApply: c.Rerender,
	})
	c.Loop = presenter.NewLoop(c.SourcePresenter, c.PreviewPresenter, a.scheduleUpdate)

	if c.Config.Debug && a.logger != nil {
		debug.StartRuntimeLogger(2*time.Second, a.logger, c.Loader.Stats)
		debug.StartMemLogger(5*time.Second, a.logger)
	}
	if a.logger != nil {
		a.logger.Info("window ready", "view_width", c.Config.ViewWidth, "view_height", c.Config.ViewHeight, "mode", c.Config.Mode().String())
	}

	a.scheduleUpdate()
	App.Wait()
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.c.Loop.Tick() })
}
