package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/console-chess-go/internal/errors"
)

// RenderFormat selects how the board is drawn after each turn.
type RenderFormat int

const (
	TextGrid RenderFormat = iota // Rows of " name " cells, "___" for empty
	Diagram                      // Unicode diagram with rank and file labels
	NoBoard                      // Status lines only
)

var renderFormatNames = []string{"text", "diagram", "none"}

// String returns the flag spelling of a format.
func (f RenderFormat) String() string {
	if f >= 0 && int(f) < len(renderFormatNames) {
		return renderFormatNames[f]
	}
	return "unknown"
}

// ParseRenderFormat converts a flag value into a RenderFormat.
func ParseRenderFormat(s string) (RenderFormat, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range renderFormatNames {
		if s == name {
			return RenderFormat(i), nil
		}
	}
	return TextGrid, fmt.Errorf("unknown render format %q: %w", s, errors.ErrInvalidConfig)
}

// RenderConfig holds settings for drawing the board.
type RenderConfig struct {
	// Format is the console board format.
	Format RenderFormat

	// ShowFEN prints the FEN board field after each frame.
	ShowFEN bool

	// SVGDir, when set, receives one SVG image per rendered frame.
	SVGDir string

	// TileSize is the edge of one square in SVG pixels.
	TileSize int
}

// DefaultTileSize is the SVG square edge used when none is configured.
const DefaultTileSize = 64

// NewRenderConfig creates a RenderConfig with default values.
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{
		Format:   TextGrid,
		TileSize: DefaultTileSize,
	}
}

// Validate checks that the render configuration is valid.
func (r *RenderConfig) Validate() error {
	if r.Format < TextGrid || r.Format > NoBoard {
		return fmt.Errorf("render format %d: %w", r.Format, errors.ErrInvalidConfig)
	}
	if r.SVGDir != "" && r.TileSize <= 0 {
		return fmt.Errorf("tile size %d must be positive: %w", r.TileSize, errors.ErrInvalidConfig)
	}
	return nil
}
