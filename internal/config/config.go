// Package config provides configuration for the console chess program.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/console-chess-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game result, 2=running commentary

	// Board rendering
	Render RenderConfig

	// Output streams
	OutputFile io.Writer // Status lines and board frames
	LogFile    io.Writer // Diagnostics gated by Verbosity
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Render:     *NewRenderConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil {
		return fmt.Errorf("no output stream: %w", errors.ErrInvalidConfig)
	}
	if c.LogFile == nil {
		return fmt.Errorf("no log stream: %w", errors.ErrInvalidConfig)
	}
	return c.Render.Validate()
}

// Logf writes a diagnostic line when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
