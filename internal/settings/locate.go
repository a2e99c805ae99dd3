package settings

import (
	"os"
	"path/filepath"

	"github.com/claudio-cli/claudio/internal/claudedir"
)

// Candidates returns every claudio settings path for the given scope
// directories, lowest precedence first. Either directory may be empty to
// skip its tiers.
func Candidates(userDir, projectDir string) []Layer {
	var layers []Layer
	if userDir != "" {
		layers = append(layers, Layer{
			Scope: ScopeUser,
			Path:  filepath.Join(userDir, claudedir.ClaudioSettingsFile),
		})
	}
	if projectDir != "" {
		layers = append(layers,
			Layer{
				Scope: ScopeProject,
				Path:  filepath.Join(projectDir, claudedir.ClaudioSettingsFile),
			},
			Layer{
				Scope: ScopeProjectLocal,
				Path:  filepath.Join(projectDir, claudedir.ClaudioLocalSettingsFile),
			},
		)
	}
	return layers
}

// Discover returns the candidate layers that exist on disk, preserving
// precedence order. Missing files are not an error; an empty result means
// there is no claudio configuration at all.
func Discover(userDir, projectDir string) []Layer {
	var existing []Layer
	for _, layer := range Candidates(userDir, projectDir) {
		if fi, err := os.Stat(layer.Path); err == nil && !fi.IsDir() {
			existing = append(existing, layer)
		}
	}
	return existing
}
