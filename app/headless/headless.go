// Package headless replays a single drag against an image without a window
// and prints the resulting swatches.
package headless

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/swatch-go/config"
	"github.com/soocke/swatch-go/domain/capture"
	"github.com/soocke/swatch-go/domain/selection"
	"github.com/soocke/swatch-go/ui/presenter"
	"github.com/soocke/swatch-go/ui/term"
)

// ErrSelectionTooSmall is returned when the drag is below the minimum size.
var ErrSelectionTooSmall = errors.New("headless: selection below minimum size")

// Options choose the image source and the drag, given in preview surface
// coordinates exactly as the window would report them.
type Options struct {
	Input string // image path; empty grabs the screen
	Start selection.Point
	End   selection.Point
}

// ParseDrag parses "x0,y0,x1,y1".
func ParseDrag(s string) (start, end selection.Point, err error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 4 {
		return start, end, fmt.Errorf("headless: drag %q: want x0,y0,x1,y1", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, perr := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if perr != nil {
			return start, end, fmt.Errorf("headless: drag %q: %w", s, perr)
		}
		v[i] = f
	}
	return selection.Point{X: v[0], Y: v[1]}, selection.Point{X: v[2], Y: v[3]}, nil
}

// Runner performs one load, map and extract cycle.
type Runner struct {
	Config *config.Config
	Logger *slog.Logger
	Screen capture.Grabber
	Files  capture.Decoder
	Out    io.Writer
}

func (r *Runner) load(opts Options) (image.Image, error) {
	if opts.Input != "" {
		if r.Files == nil {
			return nil, errors.New("headless: no file decoder")
		}
		return r.Files.Open(opts.Input)
	}
	if r.Screen == nil {
		return nil, errors.New("headless: no screen source")
	}
	img, err := r.Screen.Grab()
	if err != nil || img == nil {
		return nil, err
	}
	return img, nil
}

// Run loads the image, replays the drag and writes the report to Out.
func (r *Runner) Run(opts Options) error {
	cfg := r.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	img, err := r.load(opts)
	if err != nil {
		return err
	}
	snap := capture.Snapshot{Image: img}
	if !snap.Ready() {
		return selection.ErrImageNotReady
	}
	w, h := snap.NaturalSize()
	surface, _, err := presenter.SurfaceFor(cfg, w, h)
	if err != nil {
		return err
	}

	var g selection.GestureState
	g.Begin(opts.Start)
	sel, _ := g.End(opts.End)
	src, ok, err := selection.Map(selection.NewMapper(cfg.Mode()), surface, w, h, sel, cfg.MinSelection)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %.1fx%.1f", ErrSelectionTooSmall, sel.Width, sel.Height)
	}
	region := src.Bounds(w, h)
	colors, err := presenter.ExtractorAnalyzer{Extractor: cfg.Extractor}.Analyze(img, region)
	if err != nil {
		return err
	}
	if r.Logger != nil {
		r.Logger.Info("region analyzed", "region", region.String(), "colors", len(colors), "mode", cfg.Mode().String())
	}
	if r.Out != nil {
		_, err = io.WriteString(r.Out, term.NewRenderer(r.Out).Report(region, colors, cfg.FilterPolicy()))
	}
	return err
}
