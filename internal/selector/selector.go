// Package selector decides the active project for a launch.
package selector

import (
	"context"
	"errors"
	"fmt"

	"github.com/claudio-cli/claudio/internal/settings"
)

// ErrAborted is returned when the user cancels the selection prompt. The
// command must then exit without launching and without mutating anything.
var ErrAborted = errors.New("project selection aborted")

// State is a terminal state of the selection machine.
type State int

const (
	// StatePassThrough means no projects were discovered; launch unmodified.
	StatePassThrough State = iota
	// StateAutoSelected means a single project was chosen without prompting.
	StateAutoSelected
	// StateSelected means the user picked a project at the prompt.
	StateSelected
	// StateAborted means the user cancelled the prompt.
	StateAborted
)

func (s State) String() string {
	switch s {
	case StatePassThrough:
		return "pass-through"
	case StateAutoSelected:
		return "auto-selected"
	case StateSelected:
		return "selected"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Chooser presents projects to the user and returns the chosen index.
// Implementations return ErrAborted (possibly wrapped) on cancellation.
type Chooser interface {
	Choose(ctx context.Context, projects []settings.Project, defaultIndex int) (int, error)
}

// Memory persists the last-used project name across runs.
type Memory interface {
	LastProject() string
	SetLastProject(name string) error
}

// Result is the outcome of a selection. Project is nil for pass-through and
// aborted outcomes.
type Result struct {
	State   State
	Project *settings.Project
}

// Selector runs the selection state machine over discovered projects.
type Selector struct {
	chooser Chooser
	memory  Memory
}

// New creates a selector with the given prompt capability and memory store.
func New(chooser Chooser, memory Memory) *Selector {
	return &Selector{chooser: chooser, memory: memory}
}

// Select resolves the active project. Zero projects pass through, one is
// auto-selected, many go to the chooser with the remembered last-used project
// as the default. The chosen name is recorded before the caller may launch,
// so the memory is durable even if the child replaces or outlives us.
func (s *Selector) Select(ctx context.Context, projects []settings.Project) (Result, error) {
	switch len(projects) {
	case 0:
		return Result{State: StatePassThrough}, nil
	case 1:
		p := projects[0]
		if err := s.remember(p.Name); err != nil {
			return Result{}, err
		}
		return Result{State: StateAutoSelected, Project: &p}, nil
	}

	defaultIndex := 0
	if last := s.memory.LastProject(); last != "" {
		for i, p := range projects {
			if p.Name == last {
				defaultIndex = i
				break
			}
		}
	}

	idx, err := s.chooser.Choose(ctx, projects, defaultIndex)
	if err != nil {
		if errors.Is(err, ErrAborted) {
			return Result{State: StateAborted}, err
		}
		return Result{}, err
	}
	if idx < 0 || idx >= len(projects) {
		return Result{}, fmt.Errorf("project choice out of range: %d", idx+1)
	}

	p := projects[idx]
	if err := s.remember(p.Name); err != nil {
		return Result{}, err
	}
	return Result{State: StateSelected, Project: &p}, nil
}

// SelectNamed resolves a project by name without prompting, for the
// --project flag. The name must exist among the discovered projects.
func (s *Selector) SelectNamed(projects []settings.Project, name string) (Result, error) {
	for _, p := range projects {
		if p.Name == name {
			if err := s.remember(p.Name); err != nil {
				return Result{}, err
			}
			return Result{State: StateSelected, Project: &p}, nil
		}
	}
	return Result{}, fmt.Errorf("project %q not found", name)
}

func (s *Selector) remember(name string) error {
	if s.memory == nil {
		return nil
	}
	if err := s.memory.SetLastProject(name); err != nil {
		return fmt.Errorf("record last project: %w", err)
	}
	return nil
}
