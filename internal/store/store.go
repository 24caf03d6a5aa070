// Package store persists board documents as flat JSON files in a
// directory, one file per board name.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrNotFound is returned when a board name has no document on disk.
var ErrNotFound = errors.New("board not found")

// Store reads and writes raw board documents by name.
type Store interface {
	Save(name string, data []byte) error
	Load(name string) ([]byte, error)
	List() ([]string, error)
	Close() error
}

// FileStore keeps each board as <dir>/<name>.json.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates the directory if needed and returns a store over
// it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating board directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Path returns the file path a board name maps to.
func (fs *FileStore) Path(name string) string {
	return filepath.Join(fs.dir, name+".json")
}

// Save writes a document atomically: to a temp file first, then renamed
// into place, so a crash never leaves a half-written board.
func (fs *FileStore) Save(name string, data []byte) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	path := fs.Path(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing board %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing board %s: %w", name, err)
	}
	return nil
}

// Load reads a document by name.
func (fs *FileStore) Load(name string) ([]byte, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, err := os.ReadFile(fs.Path(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading board %s: %w", name, err)
	}
	return data, nil
}

// List returns the stored board names, sorted.
func (fs *FileStore) List() ([]string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		return nil, fmt.Errorf("listing boards: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Close releases nothing for a file store; it satisfies Store.
func (fs *FileStore) Close() error {
	return nil
}
