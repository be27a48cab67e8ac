// Package config provides configuration for the chess programs.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Verbosity levels for LogFile output.
const (
	Quiet   = 0 // errors only
	Normal  = 1 // session events: new game, save, load, game over
	Verbose = 2 // every move and check
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	// Rendered boards, prompts and help go to Output. Diagnostics go to
	// LogFile.
	Output  io.Writer
	LogFile io.Writer

	// StartFEN is the position a new game starts from. Empty means the
	// standard initial position.
	StartFEN string

	// HelpFile overrides the built-in help text when set.
	HelpFile string

	Store  *StoreConfig
	Server *ServerConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity: Normal,
		Output:    os.Stdout,
		LogFile:   os.Stderr,
		Store:     NewStoreConfig(),
		Server:    NewServerConfig(),
	}
}

// SetOutput sets the writer for boards and prompts.
func (c *Config) SetOutput(w io.Writer) {
	c.Output = w
}

// Validate checks the configuration and every sub-config.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet || c.Verbosity > Verbose {
		return fmt.Errorf("verbosity %d out of range %d-%d: %w",
			c.Verbosity, Quiet, Verbose, errors.ErrInvalidConfig)
	}
	if c.Output == nil || c.LogFile == nil {
		return fmt.Errorf("output and log writers are required: %w", errors.ErrInvalidConfig)
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
