// ABOUTME: Tests for willow configuration management.
// ABOUTME: Covers defaults, backend selection, path expansion, and save/load.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "file" {
		t.Errorf("GetBackend() = %q, want %q", got, "file")
	}
}

func TestGetBackendExplicit(t *testing.T) {
	cfg := &Config{Backend: "sqlite"}
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q, want %q", got, "sqlite")
	}
}

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetDataDir(); got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestGetDataDirExplicit(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/willow-test"}
	if got := cfg.GetDataDir(); got != "/tmp/willow-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/willow-test")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"/tmp/foo", "/tmp/foo"},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestOpenBackendUnknown(t *testing.T) {
	cfg := &Config{DataDir: t.TempDir()}
	if _, err := cfg.OpenBackend("redis"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestOpenBackendKnown(t *testing.T) {
	cfg := &Config{DataDir: t.TempDir()}

	for _, name := range []string{"file", "sqlite"} {
		b, err := cfg.OpenBackend(name)
		if err != nil {
			t.Fatalf("OpenBackend(%s) error = %v", name, err)
		}
		if err := b.Close(); err != nil {
			t.Errorf("Close(%s) error = %v", name, err)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{Backend: "sqlite", DataDir: "~/wellness"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Backend != "sqlite" {
		t.Errorf("Backend = %q, want sqlite", loaded.Backend)
	}
	if loaded.DataDir != "~/wellness" {
		t.Errorf("DataDir = %q, want ~/wellness", loaded.DataDir)
	}
}

func TestLoadMissingConfigIsDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Backend != "" || cfg.DataDir != "" {
		t.Error("missing config should load as zero value")
	}
}

func TestOpenStore(t *testing.T) {
	cfg := &Config{Backend: "file", DataDir: t.TempDir()}

	s, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
