package config

const (
	defaultFileMode = 0o644
	defaultDirMode  = 0o755
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by the config file and env vars.
func defaults() map[string]any {
	return map[string]any{
		"root_dir": ".",

		"log.level":  "warn",
		"log.format": "console",

		"store.create_dirs": true,
		"store.file_mode":   defaultFileMode,
		"store.dir_mode":    defaultDirMode,
	}
}
