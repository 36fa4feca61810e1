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

// WithSavePath sets the save file.
func (b *ConfigBuilder) WithSavePath(path string) *ConfigBuilder {
	b.cfg.Storage.SavePath = path
	return b
}

// WithArchive sets the archive database.
func (b *ConfigBuilder) WithArchive(path string) *ConfigBuilder {
	b.cfg.Storage.ArchivePath = path
	return b
}

// WithClock sets the starting time of each side.
func (b *ConfigBuilder) WithClock(seconds int) *ConfigBuilder {
	b.cfg.Game.ClockSeconds = seconds
	return b
}

// WithNewGame ignores any saved game.
func (b *ConfigBuilder) WithNewGame(enabled bool) *ConfigBuilder {
	b.cfg.Game.ForceNew = enabled
	return b
}

// WithColor enables ANSI colours.
func (b *ConfigBuilder) WithColor(enabled bool) *ConfigBuilder {
	b.cfg.Display.UseColor = enabled
	return b
}

// WithJSON enables JSON output for archive listings and audits.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.Display.JSON = enabled
	return b
}

// WithWorkers sets the audit worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
