package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCandidatesOrder(t *testing.T) {
	layers := Candidates("/home/u/.claude", "/repo/.claude")
	wantScopes := []Scope{ScopeUser, ScopeProject, ScopeProjectLocal}
	if len(layers) != len(wantScopes) {
		t.Fatalf("got %d layers, want %d", len(layers), len(wantScopes))
	}
	for i, scope := range wantScopes {
		if layers[i].Scope != scope {
			t.Errorf("layer %d: got scope %q, want %q", i, layers[i].Scope, scope)
		}
	}
	if layers[0].Path != filepath.Join("/home/u/.claude", "claudio.settings.json") {
		t.Errorf("user path: got %q", layers[0].Path)
	}
	if layers[2].Path != filepath.Join("/repo/.claude", "claudio.settings.local.json") {
		t.Errorf("local path: got %q", layers[2].Path)
	}
}

func TestCandidatesWithoutProjectDir(t *testing.T) {
	layers := Candidates("/home/u/.claude", "")
	if len(layers) != 1 || layers[0].Scope != ScopeUser {
		t.Fatalf("got %+v, want single user layer", layers)
	}
}

func TestDiscoverOmitsMissingFiles(t *testing.T) {
	tmp := t.TempDir()
	userDir := filepath.Join(tmp, "home", ".claude")
	projectDir := filepath.Join(tmp, "repo", ".claude")

	writeFile(t, filepath.Join(userDir, "claudio.settings.json"), "{}")
	writeFile(t, filepath.Join(projectDir, "claudio.settings.local.json"), "{}")

	layers := Discover(userDir, projectDir)
	if len(layers) != 2 {
		t.Fatalf("got %d layers, want 2: %+v", len(layers), layers)
	}
	if layers[0].Scope != ScopeUser {
		t.Errorf("layer 0: got %q, want user", layers[0].Scope)
	}
	if layers[1].Scope != ScopeProjectLocal {
		t.Errorf("layer 1: got %q, want project-local", layers[1].Scope)
	}
}

func TestDiscoverEmpty(t *testing.T) {
	tmp := t.TempDir()
	layers := Discover(filepath.Join(tmp, ".claude"), filepath.Join(tmp, "repo", ".claude"))
	if len(layers) != 0 {
		t.Fatalf("got %+v, want none", layers)
	}
}
