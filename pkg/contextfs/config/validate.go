package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arthur-debert/contextfs/pkg/contextfs"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.RootDir) == "" {
		errs = append(errs, errors.New("root_dir must not be empty"))
	}
	return errors.Join(
		errors.Join(errs...),
		c.Log.validate(),
		c.Store.validate(),
	)
}

func (l *LogConfig) validate() error {
	var errs []error
	if _, err := contextfs.LogLevelFromString(l.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if _, err := contextfs.ParseLogFormat(l.Format); err != nil {
		errs = append(errs, fmt.Errorf("log.format: %w", err))
	}
	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	var errs []error
	if s.FileMode <= 0 || s.FileMode > 0o777 {
		errs = append(errs, fmt.Errorf("store.file_mode must be a permission between 0001 and 0777, got %#o", s.FileMode))
	}
	if s.DirMode <= 0 || s.DirMode > 0o777 {
		errs = append(errs, fmt.Errorf("store.dir_mode must be a permission between 0001 and 0777, got %#o", s.DirMode))
	}
	return errors.Join(errs...)
}
