// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/console-chess-go/internal/config"
)

var (
	// Logging
	verbose = flag.Bool("v", false, "Log a running commentary of moves")
	quiet   = flag.Bool("q", false, "Log nothing, not even the game result")
	logFile = flag.String("l", "", "Write the log to this file (default: stderr)")

	// Board rendering
	renderFormat = flag.String("render", "text", "Board format: text, diagram, none")
	showFEN      = flag.Bool("fen", false, "Print a FEN record after each board")
	svgDir       = flag.String("svg", "", "Write one SVG image per turn into this directory")
	tileSize     = flag.Int("tile", config.DefaultTileSize, "SVG square size in pixels")

	// Info
	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("h", false, "Show help")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyLogFlags(cfg)
	return applyRenderFlags(cfg)
}

// applyLogFlags configures verbosity. -q wins over -v.
func applyLogFlags(cfg *config.Config) {
	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyRenderFlags configures board rendering.
func applyRenderFlags(cfg *config.Config) error {
	format, err := config.ParseRenderFormat(*renderFormat)
	if err != nil {
		return err
	}
	cfg.Render.Format = format
	cfg.Render.ShowFEN = *showFEN
	cfg.Render.SVGDir = *svgDir
	cfg.Render.TileSize = *tileSize
	return nil
}
