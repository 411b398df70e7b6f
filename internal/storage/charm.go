// ABOUTME: Charm KV snapshot backend with automatic cloud sync.
// ABOUTME: The document is one value under a fixed key; writes sync after save.
package storage

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
)

const (
	charmHost   = "charm.2389.dev"
	snapshotKey = "snapshot:" + SnapshotName
)

// CharmBackend stores the snapshot in Charm KV. Data is E2E encrypted with the
// user's SSH key and synced across linked devices after every write.
type CharmBackend struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.Mutex
}

// OpenCharm opens the Charm KV database, pulling remote state on startup.
// Falls back to read-only mode when another process holds the lock.
func OpenCharm() (*CharmBackend, error) {
	if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
		return nil, err
	}

	db, err := kv.OpenWithDefaultsFallback(SnapshotName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	b := &CharmBackend{kv: db, autoSync: true}

	if !db.IsReadOnly() {
		_ = db.Sync()
	}

	return b, nil
}

// IsReadOnly returns true when another process (an MCP server, usually) holds
// the write lock.
func (b *CharmBackend) IsReadOnly() bool {
	return b.kv.IsReadOnly()
}

// Load reads the snapshot value. A missing key means no snapshot yet.
func (b *CharmBackend) Load() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	keys, err := b.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	for _, key := range keys {
		if string(key) == snapshotKey {
			data, err := b.kv.Get(key)
			if err != nil {
				return nil, fmt.Errorf("read snapshot: %w", err)
			}
			return data, nil
		}
	}
	return nil, nil
}

// Save writes the snapshot value and syncs to the cloud.
func (b *CharmBackend) Save(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}
	if err := b.kv.Set([]byte(snapshotKey), data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if b.autoSync {
		_ = b.kv.Sync()
	}
	return nil
}

// Sync synchronizes local state with Charm Cloud.
func (b *CharmBackend) Sync() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.kv.IsReadOnly() {
		return nil
	}
	return b.kv.Sync()
}

// SetAutoSync enables or disables automatic sync after writes.
func (b *CharmBackend) SetAutoSync(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.autoSync = enabled
}

// ID returns the Charm user ID for the current account.
func (b *CharmBackend) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("create charm client: %w", err)
	}
	return cc.ID()
}

// Reset wipes local data and rebuilds from Charm Cloud.
func (b *CharmBackend) Reset() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.kv.Reset()
}

// Close closes the KV database connection.
func (b *CharmBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.kv != nil {
		return b.kv.Close()
	}
	return nil
}
