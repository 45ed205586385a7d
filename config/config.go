package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/soocke/swatch-go/domain/palette"
	"github.com/soocke/swatch-go/domain/selection"
)

var (
	// ErrMalformed is returned by Load when the file exists but is not a
	// valid config document.
	ErrMalformed = errors.New("config: malformed file")
	// ErrOverwriteMalformed is returned by Save when asked to write over a
	// file that Load could not parse.
	ErrOverwriteMalformed = errors.New("config: refusing to overwrite unparsed file")
)

// Config holds runtime configuration for colour extraction and app behavior.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Extraction parameters
	TopK      int    `json:"top_k"`
	Filter    string `json:"filter"` // "none" or "drop-neutrals"
	NearBlack int    `json:"near_black"`
	NearWhite int    `json:"near_white"`
	GrayDelta int    `json:"gray_delta"`

	// Selection / display
	MinSelection float64 `json:"min_selection"`
	DisplayMode  string  `json:"display_mode"` // "letterbox" or "element"
	ViewWidth    int     `json:"view_width"`
	ViewHeight   int     `json:"view_height"`

	// Screen capture; -1 uses the primary screen.
	DisplayIndex int `json:"display_index"`

	// unparsed is the path Load failed to decode, if any.
	unparsed string
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	th := palette.DefaultThresholds()
	return &Config{
		Debug:        false,
		TopK:         palette.DefaultTopK,
		Filter:       palette.FilterNone.String(),
		NearBlack:    th.NearBlack,
		NearWhite:    th.NearWhite,
		GrayDelta:    th.GrayDelta,
		MinSelection: selection.MinSelectionSize,
		DisplayMode:  selection.DisplayLetterbox.String(),
		ViewWidth:    640,
		ViewHeight:   400,
		DisplayIndex: -1,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.TopK <= 0 {
		c.TopK = palette.DefaultTopK
	}
	if c.TopK > 32 {
		c.TopK = 32
	}
	if _, err := palette.ParseFilterPolicy(c.Filter); err != nil {
		c.Filter = palette.FilterNone.String()
	}
	if c.NearBlack < 0 || c.NearBlack > 255 {
		c.NearBlack = 20
	}
	if c.NearWhite < 0 || c.NearWhite > 255 {
		c.NearWhite = 240
	}
	if c.NearWhite < c.NearBlack {
		c.NearBlack, c.NearWhite = 20, 240
	}
	if c.GrayDelta < 0 || c.GrayDelta > 255 {
		c.GrayDelta = 15
	}
	if c.MinSelection < 1 {
		c.MinSelection = selection.MinSelectionSize
	}
	if _, err := selection.ParseDisplayMode(c.DisplayMode); err != nil {
		c.DisplayMode = selection.DisplayLetterbox.String()
	}
	if c.ViewWidth < 50 {
		c.ViewWidth = 640
	}
	if c.ViewHeight < 50 {
		c.ViewHeight = 400
	}
	if c.DisplayIndex < -1 {
		c.DisplayIndex = -1
	}
	return nil
}

// FilterPolicy returns the parsed filter, defaulting to none.
func (c *Config) FilterPolicy() palette.FilterPolicy {
	p, _ := palette.ParseFilterPolicy(c.Filter)
	return p
}

// Thresholds returns the neutral-tone bounds.
func (c *Config) Thresholds() palette.Thresholds {
	return palette.Thresholds{NearBlack: c.NearBlack, NearWhite: c.NearWhite, GrayDelta: c.GrayDelta}
}

// Mode returns the parsed display mode, defaulting to letterbox.
func (c *Config) Mode() selection.DisplayMode {
	m, _ := selection.ParseDisplayMode(c.DisplayMode)
	return m
}

// Extractor builds a histogram extractor from the current settings.
func (c *Config) Extractor() *palette.Extractor {
	return &palette.Extractor{K: c.TopK, Policy: c.FilterPolicy(), Thresholds: c.Thresholds()}
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with an ErrMalformed
// error, and Save will not write over that path.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		cfg = DefaultConfig()
		cfg.unparsed = path
		return cfg, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	if c.unparsed != "" && c.unparsed == path {
		return fmt.Errorf("%w: %s", ErrOverwriteMalformed, path)
	}
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
