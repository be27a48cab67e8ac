package history

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// keyPrefix namespaces saved histories within the database.
const keyPrefix = "save/"

// BadgerStore keeps histories in a BadgerDB database, one key per save.
// Values use the same text format as FileStore.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens or creates the database in dir. An empty dir opens
// an in-memory database.
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening badger store %s", dir)
	}
	return &BadgerStore{db: db}, nil
}

// Save implements Store.
func (s *BadgerStore) Save(name string, moves []Move) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Write(&buf, moves); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+name), buf.Bytes())
	})
}

// Load implements Store.
func (s *BadgerStore) Load(name string) ([]Move, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	var moves []Move
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + name))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%s: %w", name, errors.ErrSaveNotFound)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			var readErr error
			moves, readErr = Read(bytes.NewReader(val), name)
			return readErr
		})
	})
	return moves, err
}

// List implements Store. Badger iterates keys in byte order, so the names
// come back sorted.
func (s *BadgerStore) List() ([]string, error) {
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := string(it.Item().Key())
			names = append(names, strings.TrimPrefix(key, keyPrefix))
		}
		return nil
	})
	return names, err
}

// Close closes the database.
func (s *BadgerStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
