// Package config handles claudio's own configuration loading and defaults.
//
// The project settings documents that claudio merges live in package
// settings; this package only covers how the tool itself behaves: which
// binary to launch, logging, and whether to prompt.
package config

// Default values.
const (
	DefaultClaudeBinary = "claude"
	DefaultLogLevel     = "info"
)

// Config holds the full configuration for claudio.
type Config struct {
	// ClaudeBinary is the downstream executable to launch.
	ClaudeBinary string `toml:"claude_binary"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogTimestamps bool   `toml:"log_timestamps"`

	// NoPrompt picks the default project instead of prompting when several
	// projects are available.
	NoPrompt bool `toml:"no_prompt"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}

func setDefaults(cfg *Config) {
	cfg.ClaudeBinary = DefaultClaudeBinary
	cfg.LogLevel = DefaultLogLevel
	cfg.LogTimestamps = false
	cfg.NoPrompt = false
}
