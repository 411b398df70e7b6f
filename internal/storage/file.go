// ABOUTME: JSON-file snapshot backend, the default storage.
// ABOUTME: One document file under the data directory, written through a temp file.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend stores the snapshot as a single JSON file.
type FileBackend struct {
	path string
}

// OpenFile creates a file backend rooted at the given data directory.
func OpenFile(dataDir string) (*FileBackend, error) {
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileBackend{path: filepath.Join(dataDir, SnapshotName+".json")}, nil
}

// Path returns the snapshot file path.
func (f *FileBackend) Path() string {
	return f.path
}

// Load reads the snapshot file. A missing file means no snapshot yet.
func (f *FileBackend) Load() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return data, nil
}

// Save writes the snapshot via a temp file and rename so a failed write never
// truncates the previous snapshot.
func (f *FileBackend) Save(data []byte) error {
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (f *FileBackend) Close() error {
	return nil
}
