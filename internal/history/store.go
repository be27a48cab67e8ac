package history

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Store persists move histories under a name.
type Store interface {
	// Save replaces any history stored under name.
	Save(name string, moves []Move) error

	// Load returns the history stored under name, or an error wrapping
	// ErrSaveNotFound.
	Load(name string) ([]Move, error)

	// List returns every stored name, sorted.
	List() ([]string, error)

	Close() error
}

// Open returns the Store selected by cfg.
func Open(cfg *config.StoreConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case config.BadgerBackend:
		return OpenBadgerStore(cfg.DBDir())
	default:
		return NewFileStore(cfg.SaveDir), nil
	}
}

// ValidateName rejects names that are empty or could escape the save
// directory.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("empty name: %w", errors.ErrInvalidSaveName)
	case strings.ContainsAny(name, `/\`), name == ".", name == "..":
		return fmt.Errorf("%q: %w", name, errors.ErrInvalidSaveName)
	}
	return nil
}
