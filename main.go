package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/soocke/swatch-go/app"
	"github.com/soocke/swatch-go/app/headless"
	"github.com/soocke/swatch-go/config"
	"github.com/soocke/swatch-go/domain/capture"
)

func main() {
	cfgPath := flag.String("config", "swatch.json", "path to the JSON config file")
	in := flag.String("in", "", "image file to analyse without opening a window (\"-\" reads stdin)")
	screen := flag.Bool("screen", false, "capture the screen and analyse it without opening a window")
	drag := flag.String("drag", "", "drag in preview coordinates for headless runs: x0,y0,x1,y1")
	debugFlag := flag.Bool("debug", false, "verbose logging and runtime instrumentation")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if *debugFlag {
		cfg.Debug = true
	}
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	switch {
	case errors.Is(err, config.ErrMalformed):
		logger.Warn("config unreadable, using defaults; it will not be overwritten", "path", *cfgPath, "error", err)
	case err != nil:
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}

	if *in != "" || *screen {
		os.Exit(runHeadless(cfg, logger, *in, *drag))
	}

	c := app.BuildContainer(cfg, logger, *cfgPath)
	width, height := cfg.ViewWidth+40, cfg.ViewHeight+420
	app.NewApp("Swatch", width, height, c).Start()
}

func runHeadless(cfg *config.Config, logger *slog.Logger, in, drag string) int {
	if drag == "" {
		fmt.Fprintln(os.Stderr, "-drag x0,y0,x1,y1 is required with -in or -screen")
		return 2
	}
	start, end, err := headless.ParseDrag(drag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	r := &headless.Runner{
		Config: cfg,
		Logger: logger,
		Screen: capture.ScreenSource{Display: cfg.DisplayIndex},
		Files:  capture.FileSource{},
		Out:    os.Stdout,
	}
	if err := r.Run(headless.Options{Input: in, Start: start, End: end}); err != nil {
		logger.Error("headless run failed", "error", err)
		return 1
	}
	return 0
}
