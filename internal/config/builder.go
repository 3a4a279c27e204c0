package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithRenderFormat sets the console board format.
func (b *ConfigBuilder) WithRenderFormat(format RenderFormat) *ConfigBuilder {
	b.cfg.Render.Format = format
	return b
}

// WithFEN enables the FEN line after each frame.
func (b *ConfigBuilder) WithFEN(enabled bool) *ConfigBuilder {
	b.cfg.Render.ShowFEN = enabled
	return b
}

// WithSVG writes SVG frames into dir using the given tile size.
func (b *ConfigBuilder) WithSVG(dir string, tileSize int) *ConfigBuilder {
	b.cfg.Render.SVGDir = dir
	b.cfg.Render.TileSize = tileSize
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
