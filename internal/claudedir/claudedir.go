// Package claudedir provides constants and utilities for the .claude directory structure.
package claudedir

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	// Dir is the name of the Claude settings directory.
	Dir = ".claude"

	// SettingsFile is the Claude Code settings file name (inside .claude).
	SettingsFile = "settings.json"

	// LocalSettingsFile is the local Claude Code settings file name (inside .claude).
	LocalSettingsFile = "settings.local.json"

	// ClaudioSettingsFile is the claudio project settings file name (inside .claude).
	ClaudioSettingsFile = "claudio.settings.json"

	// ClaudioLocalSettingsFile is the local claudio project settings file name (inside .claude).
	ClaudioLocalSettingsFile = "claudio.settings.local.json"

	// ToolConfigFile is claudio's own config file name (inside .claude).
	ToolConfigFile = "claudio.toml"
)

// UserDir returns the user-scope .claude directory (~/.claude).
func UserDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, Dir), nil
}

// ProjectRoot returns the git toplevel for workDir, falling back to workDir
// itself when git is unavailable or workDir is not inside a repository.
func ProjectRoot(workDir string) string {
	if workDir == "" {
		workDir = "."
	}
	if abs, err := filepath.Abs(workDir); err == nil {
		workDir = abs
	}
	if _, err := exec.LookPath("git"); err == nil {
		cmd := exec.Command("git", "-C", workDir, "rev-parse", "--show-toplevel")
		if output, err := cmd.Output(); err == nil {
			root := strings.TrimSpace(string(output))
			if root != "" {
				return root
			}
		}
	}
	return workDir
}

// ProjectDir returns the project-scope .claude directory for workDir.
func ProjectDir(workDir string) string {
	return filepath.Join(ProjectRoot(workDir), Dir)
}
