// Package config loads contextfs settings using a layered system:
// defaults -> optional YAML file -> CONTEXTFS_ environment variables.
package config

import (
	"io/fs"

	"github.com/arthur-debert/contextfs/pkg/contextfs"
)

// Config holds all configuration for the contextfs CLI.
type Config struct {
	RootDir string      `koanf:"root_dir"`
	Log     LogConfig   `koanf:"log"`
	Store   StoreConfig `koanf:"store"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StoreConfig holds entity store settings.
type StoreConfig struct {
	CreateDirs bool `koanf:"create_dirs"`
	FileMode   int  `koanf:"file_mode"`
	DirMode    int  `koanf:"dir_mode"`
}

// StoreOptions converts the store settings into contextfs.StoreOptions.
func (c *Config) StoreOptions() *contextfs.StoreOptions {
	opts := contextfs.DefaultStoreOptions()
	opts.CreateDirs = c.Store.CreateDirs
	opts.FileMode = fs.FileMode(c.Store.FileMode)
	opts.DirMode = fs.FileMode(c.Store.DirMode)
	return opts
}
