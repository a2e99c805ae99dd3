package settings

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/claudio-cli/claudio/internal/claudedir"
)

// BaseSettings is one Claude Code settings document, the externally owned
// configuration whose env block claudio rewrites. Every field other than env
// is carried as raw JSON and written back untouched.
type BaseSettings struct {
	Path string
	Env  map[string]string

	fields   map[string]json.RawMessage
	parseErr error
}

// baseCandidates mirrors the claudio discovery tiers with the Claude Code
// file names, lowest precedence first.
func baseCandidates(userDir, projectDir string) []Layer {
	var layers []Layer
	if userDir != "" {
		layers = append(layers, Layer{
			Scope: ScopeUser,
			Path:  filepath.Join(userDir, claudedir.SettingsFile),
		})
	}
	if projectDir != "" {
		layers = append(layers,
			Layer{
				Scope: ScopeProject,
				Path:  filepath.Join(projectDir, claudedir.SettingsFile),
			},
			Layer{
				Scope: ScopeProjectLocal,
				Path:  filepath.Join(projectDir, claudedir.LocalSettingsFile),
			},
		)
	}
	return layers
}

// HighestEnv walks the Claude settings hierarchy from highest to lowest
// precedence and returns the first document that carries an env object.
// When none does, the user-scope file becomes the persist target with an
// empty env. Unreadable or unparsable documents are skipped during the walk;
// an unparsable persist target surfaces as a PersistError at Persist time so
// it is never clobbered.
func HighestEnv(userDir, projectDir string) *BaseSettings {
	candidates := baseCandidates(userDir, projectDir)
	for i := len(candidates) - 1; i >= 0; i-- {
		base, err := loadBase(candidates[i].Path)
		if err != nil {
			continue
		}
		if base.Env != nil {
			return base
		}
	}

	fallback := filepath.Join(userDir, claudedir.SettingsFile)
	base, err := loadBase(fallback)
	if err != nil {
		base = &BaseSettings{Path: fallback}
		if !os.IsNotExist(err) {
			base.parseErr = err
		}
	}
	if base.Env == nil {
		base.Env = map[string]string{}
	}
	return base
}

func loadBase(path string) (*BaseSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	base := &BaseSettings{Path: path, fields: fields}
	if envRaw, ok := fields["env"]; ok {
		var env map[string]string
		if err := json.Unmarshal(envRaw, &env); err == nil {
			base.Env = env
		}
	}
	return base, nil
}

// Persist writes env into the document and saves it atomically. Every other
// field keeps its loaded value. On failure nothing is launched and the
// original file is left in place.
func (b *BaseSettings) Persist(env map[string]string) error {
	if b.parseErr != nil {
		return &PersistError{Path: b.Path, Err: b.parseErr}
	}

	fields := make(map[string]json.RawMessage, len(b.fields)+1)
	for k, v := range b.fields {
		fields[k] = v
	}
	envRaw, err := json.Marshal(env)
	if err != nil {
		return &PersistError{Path: b.Path, Err: err}
	}
	fields["env"] = envRaw

	data, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		return &PersistError{Path: b.Path, Err: err}
	}
	data = append(data, '\n')

	dir := filepath.Dir(b.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &PersistError{Path: b.Path, Err: err}
	}
	tmp, err := os.CreateTemp(dir, ".claudio-settings-*")
	if err != nil {
		return &PersistError{Path: b.Path, Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &PersistError{Path: b.Path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &PersistError{Path: b.Path, Err: err}
	}
	if err := os.Rename(tmp.Name(), b.Path); err != nil {
		os.Remove(tmp.Name())
		return &PersistError{Path: b.Path, Err: err}
	}

	b.fields = fields
	b.Env = env
	return nil
}
