package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/soocke/swatch-go/config"
)

// SettingsField is one editable row of the settings form.
type SettingsField struct {
	ID    string
	Label string
}

// SettingsFields lists the form rows in display order. The filter policy has
// its own toggle button and is not part of the form.
var SettingsFields = []SettingsField{
	{ID: "topK", Label: "Top K"},
	{ID: "nearBlack", Label: "Near Black (<)"},
	{ID: "nearWhite", Label: "Near White (>)"},
	{ID: "grayDelta", Label: "Gray Delta"},
	{ID: "minSelection", Label: "Min Selection Px"},
	{ID: "displayMode", Label: "Display (letterbox/element)"},
}

// SettingsValues renders cfg as form text keyed by field ID.
func SettingsValues(cfg *config.Config) map[string]string {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return map[string]string{
		"topK":         strconv.Itoa(cfg.TopK),
		"nearBlack":    strconv.Itoa(cfg.NearBlack),
		"nearWhite":    strconv.Itoa(cfg.NearWhite),
		"grayDelta":    strconv.Itoa(cfg.GrayDelta),
		"minSelection": fmt.Sprintf("%.1f", cfg.MinSelection),
		"displayMode":  cfg.DisplayMode,
	}
}

// ApplySettings returns a validated copy of cfg with the form values
// applied. Blank or unparseable entries keep the current value; settings
// without a form row pass through untouched.
func ApplySettings(cfg config.Config, values map[string]string) (config.Config, error) {
	assignInt := func(id string, dst *int) {
		if i, err := strconv.Atoi(strings.TrimSpace(values[id])); err == nil {
			*dst = i
		}
	}
	assignInt("topK", &cfg.TopK)
	assignInt("nearBlack", &cfg.NearBlack)
	assignInt("nearWhite", &cfg.NearWhite)
	assignInt("grayDelta", &cfg.GrayDelta)
	if f, err := strconv.ParseFloat(strings.TrimSpace(values["minSelection"]), 64); err == nil {
		cfg.MinSelection = f
	}
	if s := strings.ToLower(strings.TrimSpace(values["displayMode"])); s != "" {
		cfg.DisplayMode = s
	}
	err := cfg.Validate()
	return cfg, err
}
