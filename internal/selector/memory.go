package selector

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const lastProjectKey = "lastProject"

// FileMemory stores the last-used project name under the lastProject key of
// the user-scope claudio settings file. Other keys in the file, notably a
// user-level projects list, are preserved on write.
type FileMemory struct {
	path string
}

// NewFileMemory creates a memory store backed by the given settings file.
func NewFileMemory(path string) *FileMemory {
	return &FileMemory{path: path}
}

// LastProject returns the remembered name, or "" when there is none.
func (m *FileMemory) LastProject() string {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return ""
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return ""
	}
	var name string
	if err := json.Unmarshal(raw[lastProjectKey], &name); err != nil {
		return ""
	}
	return name
}

// SetLastProject records name durably, creating the file if needed.
func (m *FileMemory) SetLastProject(name string) error {
	raw := map[string]json.RawMessage{}
	if data, err := os.ReadFile(m.path); err == nil {
		// A malformed file is replaced rather than kept broken.
		_ = json.Unmarshal(data, &raw)
	}

	enc, err := json.Marshal(name)
	if err != nil {
		return err
	}
	raw[lastProjectKey] = enc

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".claudio-memory-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), m.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
