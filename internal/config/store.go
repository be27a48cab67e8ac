package config

import (
	"fmt"
	"path/filepath"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// StoreBackend selects where saved games live.
type StoreBackend string

const (
	TextBackend   StoreBackend = "text"   // one .txt file per save
	BadgerBackend StoreBackend = "badger" // embedded key-value database
)

// StoreConfig holds settings for saved game persistence.
type StoreConfig struct {
	Backend StoreBackend

	// SaveDir holds the text save files.
	SaveDir string

	// BadgerDir is the database directory for the badger backend.
	// Defaults to SaveDir/db when empty.
	BadgerDir string
}

// NewStoreConfig creates a StoreConfig with default values.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{
		Backend: TextBackend,
		SaveDir: ".",
	}
}

// DBDir returns the badger directory, applying the default.
func (s *StoreConfig) DBDir() string {
	if s.BadgerDir != "" {
		return s.BadgerDir
	}
	return filepath.Join(s.SaveDir, "db")
}

// Validate checks that the store configuration is valid.
func (s *StoreConfig) Validate() error {
	switch s.Backend {
	case TextBackend, BadgerBackend:
	default:
		return fmt.Errorf("unknown store backend %q: %w", s.Backend, errors.ErrInvalidConfig)
	}
	if s.SaveDir == "" {
		return fmt.Errorf("save directory is required: %w", errors.ErrInvalidConfig)
	}
	return nil
}
