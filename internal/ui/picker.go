// Package ui provides the interactive project picker.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/claudio-cli/claudio/internal/selector"
	"github.com/claudio-cli/claudio/internal/settings"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	defaultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Picker implements selector.Chooser with a bubbletea list when attached to
// a terminal and a numbered prompt otherwise.
type Picker struct {
	In  io.Reader
	Out io.Writer
}

// NewPicker creates a picker on the process's stdin and stdout.
func NewPicker() *Picker {
	return &Picker{In: os.Stdin, Out: os.Stdout}
}

// Choose presents the projects and returns the chosen index. Cancelling the
// prompt returns selector.ErrAborted.
func (p *Picker) Choose(ctx context.Context, projects []settings.Project, defaultIndex int) (int, error) {
	if IsTTY(p.Out) && IsTTY(p.In) {
		return p.chooseTUI(ctx, projects, defaultIndex)
	}
	return p.choosePlain(projects, defaultIndex)
}

func (p *Picker) chooseTUI(ctx context.Context, projects []settings.Project, defaultIndex int) (int, error) {
	model := newPickerModel(projects, defaultIndex)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.In),
		tea.WithOutput(p.Out),
	)
	final, err := program.Run()
	if err != nil {
		// Context cancellation during the prompt counts as an abort.
		if ctx.Err() != nil {
			return 0, selector.ErrAborted
		}
		return 0, err
	}
	m, ok := final.(*pickerModel)
	if !ok || !m.chosen {
		return 0, selector.ErrAborted
	}
	return m.cursor, nil
}

// choosePlain is the non-TTY prompt: a numbered list with the default
// marked, read from one input line. Empty input picks the default; invalid
// input aborts.
func (p *Picker) choosePlain(projects []settings.Project, defaultIndex int) (int, error) {
	fmt.Fprintln(p.Out, "Available projects:")
	for i, proj := range projects {
		marker := " "
		if i == defaultIndex {
			marker = "*"
		}
		fmt.Fprintf(p.Out, "  %s [%d] %s\n", marker, i+1, proj.Name)
	}
	fmt.Fprintf(p.Out, "\nSelect project [1-%d]: ", len(projects))

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.Out)
		return 0, selector.ErrAborted
	}
	raw := strings.TrimSpace(line)
	if raw == "" {
		return defaultIndex, nil
	}
	choice, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid input %q: %w", raw, selector.ErrAborted)
	}
	if choice < 1 || choice > len(projects) {
		return 0, fmt.Errorf("choice out of range %q: %w", raw, selector.ErrAborted)
	}
	return choice - 1, nil
}

// IsTTY reports whether the reader or writer is a character device.
func IsTTY(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

type pickerModel struct {
	projects     []settings.Project
	defaultIndex int
	cursor       int
	chosen       bool
}

func newPickerModel(projects []settings.Project, defaultIndex int) *pickerModel {
	return &pickerModel{
		projects:     projects,
		defaultIndex: defaultIndex,
		cursor:       defaultIndex,
	}
}

func (m *pickerModel) Init() tea.Cmd {
	return nil
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.chosen = false
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.projects)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			m.chosen = true
			return m, tea.Quit
		default:
			// Digits jump straight to an entry.
			if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(m.projects) {
				m.cursor = n - 1
				m.chosen = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m *pickerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select a project"))
	b.WriteString("\n\n")
	for i, p := range m.projects {
		line := fmt.Sprintf("[%d] %s", i+1, p.Name)
		if i == m.defaultIndex {
			line += defaultStyle.Render(" (default)")
		}
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("up/down move · enter select · q cancel"))
	b.WriteString("\n")
	return b.String()
}
