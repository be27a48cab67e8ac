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

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output = w
	return b
}

// WithLogFile sets the diagnostics writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithStartFEN sets the starting position for new games.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithHelpFile sets a help text file to use instead of the built-in one.
func (b *ConfigBuilder) WithHelpFile(path string) *ConfigBuilder {
	b.cfg.HelpFile = path
	return b
}

// WithTextStore stores saves as text files in dir.
func (b *ConfigBuilder) WithTextStore(dir string) *ConfigBuilder {
	b.cfg.Store.Backend = TextBackend
	b.cfg.Store.SaveDir = dir
	return b
}

// WithBadgerStore stores saves in a badger database at dir.
func (b *ConfigBuilder) WithBadgerStore(dir string) *ConfigBuilder {
	b.cfg.Store.Backend = BadgerBackend
	b.cfg.Store.BadgerDir = dir
	return b
}

// WithAddr sets the HTTP listen address.
func (b *ConfigBuilder) WithAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}
