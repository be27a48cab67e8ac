package history

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

const fileExt = ".txt"

// FileStore keeps each history in <dir>/<name>.txt.
type FileStore struct {
	dir string
}

// NewFileStore returns a FileStore rooted at dir. The directory is created
// on the first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+fileExt)
}

// Save implements Store.
func (s *FileStore) Save(name string, moves []Move) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return errors.Wrap(err, "creating save directory")
	}

	var buf bytes.Buffer
	if err := Write(&buf, moves); err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(s.path(name), buf.Bytes(), 0644), "saving %s", name)
}

// Load implements Store.
func (s *FileStore) Load(name string) ([]Move, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	file, err := os.Open(s.path(name)) //nolint:gosec // G304: name is validated above
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", name, errors.ErrSaveNotFound)
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file, name)
}

// List implements Store.
func (s *FileStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), fileExt))
	}
	sort.Strings(names)
	return names, nil
}

// Close implements Store. There is nothing to release.
func (s *FileStore) Close() error {
	return nil
}
