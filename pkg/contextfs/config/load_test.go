package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/contextfs/pkg/contextfs/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contextfs.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.RootDir != "." {
		t.Errorf("RootDir = %q, want \".\"", cfg.RootDir)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("Log.Format = %q, want \"console\"", cfg.Log.Format)
	}
	if !cfg.Store.CreateDirs {
		t.Error("Store.CreateDirs = false, want true")
	}
	if cfg.Store.FileMode != 0o644 {
		t.Errorf("Store.FileMode = %#o, want 0644", cfg.Store.FileMode)
	}
	if cfg.Store.DirMode != 0o755 {
		t.Errorf("Store.DirMode = %#o, want 0755", cfg.Store.DirMode)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, "root_dir: /srv/context\nlog:\n  level: debug\nstore:\n  create_dirs: false\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.RootDir != "/srv/context" {
		t.Errorf("RootDir = %q, want \"/srv/context\"", cfg.RootDir)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Store.CreateDirs {
		t.Error("Store.CreateDirs = true, want false from file")
	}
	// Untouched keys keep their defaults.
	if cfg.Store.FileMode != 0o644 {
		t.Errorf("Store.FileMode = %#o, want default 0644", cfg.Store.FileMode)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "root_dir: /from/file\nlog:\n  level: info\n")
	t.Setenv("CONTEXTFS_ROOT_DIR", "/from/env")
	t.Setenv("CONTEXTFS_STORE_CREATE_DIRS", "false")
	t.Setenv("CONTEXTFS_STORE_FILE_MODE", "384")
	t.Setenv("CONTEXTFS_LOG_FORMAT", "json")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.RootDir != "/from/env" {
		t.Errorf("RootDir = %q, want \"/from/env\"", cfg.RootDir)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Store.CreateDirs {
		t.Error("Store.CreateDirs = true, want false from env")
	}
	if cfg.Store.FileMode != 0o600 {
		t.Errorf("Store.FileMode = %#o, want 0600", cfg.Store.FileMode)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\" from env", cfg.Log.Format)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "loading config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, "root_dir: \"  \"\nlog:\n  level: loud\n  format: xml\nstore:\n  file_mode: 4096\n")

	_, err := config.Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"root_dir", "log.level", "log.format", "store.file_mode"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in error: %v", want, err)
		}
	}
}

func TestConfig_StoreOptions(t *testing.T) {
	cfg := &config.Config{
		RootDir: ".",
		Log:     config.LogConfig{Level: "warn", Format: "console"},
		Store:   config.StoreConfig{CreateDirs: false, FileMode: 0o600, DirMode: 0o700},
	}

	opts := cfg.StoreOptions()
	if opts.CreateDirs {
		t.Error("CreateDirs = true, want false")
	}
	if opts.FileMode != fs.FileMode(0o600) {
		t.Errorf("FileMode = %v, want 0600", opts.FileMode)
	}
	if opts.DirMode != fs.FileMode(0o700) {
		t.Errorf("DirMode = %v, want 0700", opts.DirMode)
	}
	if opts.Encoder == nil {
		t.Error("Encoder should default to YAML")
	}
}
