// ABOUTME: Backend interface for whole-document snapshot persistence.
// ABOUTME: One serialized document under a fixed storage name, swappable impls.
package storage

import (
	"os"
	"path/filepath"
)

// SnapshotName is the fixed storage name the document is kept under.
const SnapshotName = "willow"

// Backend persists the serialized application document as a single snapshot.
// Load returns (nil, nil) when no snapshot exists yet. Save replaces the
// snapshot atomically from the caller's perspective; a failed Save leaves the
// in-memory document authoritative.
type Backend interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Close() error
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, SnapshotName)
}
