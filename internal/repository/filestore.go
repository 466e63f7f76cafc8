package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/guttosm/pizzeria-stock/internal/backup"
	"github.com/guttosm/pizzeria-stock/internal/domain/model"
)

// FileStore persists the ledger snapshot as a single JSON document on
// local disk. Writes go to a temporary file in the same directory which
// is then renamed over the target, so a crash mid-write never leaves a
// partially written store.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for the given path. The file does not
// need to exist yet; the parent directory is created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the store file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and decodes the store file. A missing file yields an empty
// snapshot. Files written by the legacy desktop app decode as well; the
// next save rewrites them in the canonical schema.
func (s *FileStore) Load(_ context.Context) (model.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.EmptySnapshot(), nil
		}
		return model.Snapshot{}, fmt.Errorf("read store file %s: %w", s.path, err)
	}

	snap, err := backup.Decode(data)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("decode store file %s: %w", s.path, err)
	}
	return snap, nil
}

// Save encodes the snapshot in the canonical schema and atomically
// replaces the store file.
func (s *FileStore) Save(_ context.Context, snap model.Snapshot) error {
	data, err := backup.Encode(snap)
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp store file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp store file: %w", err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp store file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace store file %s: %w", s.path, err)
	}
	return nil
}
