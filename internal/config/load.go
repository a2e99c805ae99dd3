package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/claudio-cli/claudio/internal/claudedir"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.claude/claudio.toml)
// 3. Project config file (<project root>/.claude/claudio.toml)
// 4. Environment variables
func Load(workDir string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if userDir, err := claudedir.UserDir(); err == nil {
		userConfigFile := filepath.Join(userDir, claudedir.ToolConfigFile)
		if fileExists(userConfigFile) {
			if err := loadConfigFile(cfg, userConfigFile); err != nil {
				return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
			}
		}
	}

	// 3. Try to load from project config file (overrides user config)
	cfg.ProjectRoot = claudedir.ProjectRoot(workDir)
	projectConfigFile := filepath.Join(cfg.ProjectRoot, claudedir.Dir, claudedir.ToolConfigFile)
	if fileExists(projectConfigFile) {
		if err := loadConfigFile(cfg, projectConfigFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
	}

	// 4. Override from environment
	loadFromEnv(cfg)

	return cfg, nil
}

// loadConfigFile loads TOML config from the given file.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("CLAUDE_BIN"); v != "" {
		cfg.ClaudeBinary = v
	}
	if v := os.Getenv("CLAUDIO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CLAUDIO_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
	}
	if v := os.Getenv("CLAUDIO_NO_PROMPT"); v != "" {
		cfg.NoPrompt = boolFromString(v)
	}
}

func boolFromString(v string) bool {
	switch v {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	default:
		return false
	}
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
