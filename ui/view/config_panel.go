package view

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/soocke/swatch-go/config"
	"github.com/soocke/swatch-go/ui/model"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel encapsulates the extraction settings form and apply logic.
// It owns its widgets and writes back into *config.Config on ApplyChanges.
type ConfigPanel interface {
	Build(startRow, column int) (endRow int) // constructs widgets starting at startRow, returns next free row
	SetEditable(enabled bool)
	Refresh()      // rewrites every field from the current config
	ApplyChanges() // parses widget text into underlying config and persists
}

type configPanel struct {
	cfg       *config.Config
	cfgPath   string
	logger    *slog.Logger
	onApplied func()
	applyBtn  *ButtonWidget
	widgets   map[string]*TextWidget // keyed by model.SettingsField ID
}

// NewConfigPanel creates the view bound to cfg. onApplied runs after a
// successful apply so results can be refreshed.
func NewConfigPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onApplied func()) ConfigPanel {
	return &configPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, onApplied: onApplied, widgets: make(map[string]*TextWidget)}
}

func (v *configPanel) Build(startRow, column int) (row int) {
	row = startRow
	for _, f := range model.SettingsFields {
		lbl := Label(Txt(f.Label), Anchor("w"))
		Grid(lbl, Row(row), Column(column), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(14))
		Grid(w, Row(row), Column(column+1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		v.widgets[f.ID] = w
		row++
	}
	v.Refresh()
	v.applyBtn = Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, Row(row), Column(column), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *configPanel) Refresh() {
	if v.cfg == nil {
		return
	}
	for id, value := range model.SettingsValues(v.cfg) {
		if w := v.widgets[id]; w != nil {
			w.Delete("1.0", END)
			w.Insert("1.0", value)
		}
	}
}

func (v *configPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *configPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.TrimSpace(strings.Join(parts, ""))
}

func (v *configPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	values := make(map[string]string, len(v.widgets))
	for id, w := range v.widgets {
		values[id] = v.text(w)
	}
	cfg, verr := model.ApplySettings(*v.cfg, values)
	if verr != nil {
		if v.logger != nil {
			v.logger.Warn("config rejected", "error", verr)
		}
		return
	}
	*v.cfg = cfg
	// show what was actually applied after clamping
	v.Refresh()
	switch err := v.cfg.Save(v.cfgPath); {
	case errors.Is(err, config.ErrOverwriteMalformed):
		if v.logger != nil {
			v.logger.Warn("config applied but not saved; fix or remove the unreadable file first", "path", v.cfgPath)
		}
	case err != nil:
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	default:
		if v.logger != nil {
			v.logger.Info("config saved", "path", v.cfgPath)
		}
	}
	if v.onApplied != nil {
		v.onApplied()
	}
}
