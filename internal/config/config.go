// ABOUTME: Willow configuration with storage backend selection.
// ABOUTME: JSON config at the XDG config path plus a store factory function.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/willow/internal/storage"
	"github.com/harperreed/willow/internal/store"
)

// Config stores willow tool configuration.
type Config struct {
	// Backend selects the snapshot backend: "file" (default), "sqlite",
	// or "charm" (E2E-encrypted cloud sync).
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. Supports ~ expansion.
	// Defaults to ~/.local/share/willow.
	DataDir string `json:"data_dir,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "file".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "file"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenBackend creates a snapshot backend by name.
func (c *Config) OpenBackend(name string) (storage.Backend, error) {
	dataDir := c.GetDataDir()

	switch name {
	case "file":
		return storage.OpenFile(dataDir)
	case "sqlite":
		return storage.OpenSQLite(filepath.Join(dataDir, storage.SnapshotName+".db"))
	case "charm":
		return storage.OpenCharm()
	default:
		return nil, fmt.Errorf("unknown backend: %q", name)
	}
}

// OpenStore opens the state store over the configured backend.
func (c *Config) OpenStore() (*store.Store, error) {
	backend, err := c.OpenBackend(c.GetBackend())
	if err != nil {
		return nil, err
	}
	return store.Open(backend)
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "willow", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
