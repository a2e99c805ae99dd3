package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/claudio-cli/claudio/internal/selector"
	"github.com/claudio-cli/claudio/internal/settings"
)

func pickerProjects(names ...string) []settings.Project {
	projects := make([]settings.Project, len(names))
	for i, name := range names {
		projects[i] = settings.Project{Name: name}
	}
	return projects
}

func TestPickerModelNavigation(t *testing.T) {
	tests := []struct {
		name       string
		keys       []tea.KeyMsg
		wantCursor int
		wantChosen bool
	}{
		{
			name:       "enter confirms default",
			keys:       []tea.KeyMsg{{Type: tea.KeyEnter}},
			wantCursor: 1,
			wantChosen: true,
		},
		{
			name: "arrows move before confirm",
			keys: []tea.KeyMsg{
				{Type: tea.KeyUp},
				{Type: tea.KeyEnter},
			},
			wantCursor: 0,
			wantChosen: true,
		},
		{
			name: "vi keys move down",
			keys: []tea.KeyMsg{
				{Type: tea.KeyRunes, Runes: []rune("j")},
				{Type: tea.KeyEnter},
			},
			wantCursor: 2,
			wantChosen: true,
		},
		{
			name:       "digit jumps and confirms",
			keys:       []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune("3")}},
			wantCursor: 2,
			wantChosen: true,
		},
		{
			name:       "q aborts",
			keys:       []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune("q")}},
			wantCursor: 1,
			wantChosen: false,
		},
		{
			name:       "ctrl+c aborts",
			keys:       []tea.KeyMsg{{Type: tea.KeyCtrlC}},
			wantCursor: 1,
			wantChosen: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var model tea.Model = newPickerModel(pickerProjects("work", "personal", "oss"), 1)
			for _, key := range tt.keys {
				model, _ = model.Update(key)
			}
			m := model.(*pickerModel)
			if m.cursor != tt.wantCursor {
				t.Errorf("cursor: got %d, want %d", m.cursor, tt.wantCursor)
			}
			if m.chosen != tt.wantChosen {
				t.Errorf("chosen: got %v, want %v", m.chosen, tt.wantChosen)
			}
		})
	}
}

func TestPickerModelCursorStaysInBounds(t *testing.T) {
	var model tea.Model = newPickerModel(pickerProjects("work", "personal"), 0)
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})

	if m := model.(*pickerModel); m.cursor != 1 {
		t.Errorf("cursor: got %d, want 1", m.cursor)
	}
}

func TestPickerModelViewMarksDefault(t *testing.T) {
	m := newPickerModel(pickerProjects("work", "personal"), 1)
	view := m.View()
	if !strings.Contains(view, "work") || !strings.Contains(view, "personal") {
		t.Fatalf("view does not list projects:\n%s", view)
	}
	if !strings.Contains(view, "(default)") {
		t.Errorf("view does not mark the default entry:\n%s", view)
	}
}

func TestChoosePlain(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantIndex int
		wantAbort bool
	}{
		{"explicit choice", "2\n", 1, false},
		{"empty input picks default", "\n", 1, false},
		{"whitespace picks default", "  \n", 1, false},
		{"eof aborts", "", 0, true},
		{"non-numeric aborts", "abc\n", 0, true},
		{"out of range aborts", "9\n", 0, true},
		{"zero aborts", "0\n", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := &Picker{In: strings.NewReader(tt.input), Out: &out}

			idx, err := p.choosePlain(pickerProjects("work", "personal", "oss"), 1)
			if tt.wantAbort {
				if !errors.Is(err, selector.ErrAborted) {
					t.Fatalf("choosePlain: got %v, want ErrAborted", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("choosePlain: %v", err)
			}
			if idx != tt.wantIndex {
				t.Errorf("index: got %d, want %d", idx, tt.wantIndex)
			}
			if !strings.Contains(out.String(), "* [2] personal") {
				t.Errorf("output does not mark the default:\n%s", out.String())
			}
		})
	}
}

func TestChooseFallsBackWithoutTTY(t *testing.T) {
	var out bytes.Buffer
	p := &Picker{In: strings.NewReader("1\n"), Out: &out}

	idx, err := p.Choose(t.Context(), pickerProjects("work", "personal"), 0)
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	if idx != 0 {
		t.Errorf("index: got %d, want 0", idx)
	}
	if !strings.Contains(out.String(), "Available projects:") {
		t.Errorf("expected the plain prompt, got:\n%s", out.String())
	}
}
