package store

import (
	"os"
	"path/filepath"
	"sort"

	"iconpack/internal/domain"
)

// FileStore writes collection records to disk.
type FileStore struct{}

func NewFileStore() *FileStore { return &FileStore{} }

// Save writes one collection to path, creating parent directories.
func (s *FileStore) Save(path string, c domain.Collection) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return writeJSON(path, c, 0o644)
}

// SaveAll writes every collection into dir as <key>.json, keys in sorted
// order so repeated runs touch files deterministically.
func (s *FileStore) SaveAll(dir string, cols map[string]domain.Collection) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	keys := make([]string, 0, len(cols))
	for key := range cols {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := writeJSON(filepath.Join(dir, key+".json"), cols[key], 0o644); err != nil {
			return err
		}
	}
	return nil
}

// Load reads one collection back; ok is false when the file does not exist.
func (s *FileStore) Load(path string) (domain.Collection, bool, error) {
	var c domain.Collection
	ok, err := readJSON(path, &c)
	if err != nil {
		return domain.Collection{}, false, err
	}
	return c, ok, nil
}
