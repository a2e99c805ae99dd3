// Package launcher starts the downstream claude process.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
)

// LaunchError reports a downstream binary that could not be found or
// spawned.
type LaunchError struct {
	Binary string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %s: %v", e.Binary, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// ExitError carries a non-zero exit code from the child so the CLI can
// forward it as its own.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Launcher starts the downstream executable with extra environment
// variables and returns its exit code.
type Launcher interface {
	Launch(ctx context.Context, binary string, args []string, extraEnv map[string]string) (int, error)
}

// ExecLauncher runs the binary with inherited stdio, so an interactive
// claude session behaves as if launched directly.
type ExecLauncher struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecLauncher creates a launcher on the process's standard streams.
func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Launch starts the binary, waits for it, and returns its exit code. The
// child sees the current process environment plus extraEnv, with extraEnv
// winning on duplicate keys.
func (l *ExecLauncher) Launch(ctx context.Context, binary string, args []string, extraEnv map[string]string) (int, error) {
	path, err := exec.LookPath(binary)
	if err != nil {
		return 0, &LaunchError{Binary: binary, Err: err}
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr
	cmd.Env = mergedEnviron(os.Environ(), extraEnv)

	if err := cmd.Start(); err != nil {
		return 0, &LaunchError{Binary: binary, Err: err}
	}
	err = cmd.Wait()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, &LaunchError{Binary: binary, Err: err}
}

// mergedEnviron appends extra entries to environ in sorted key order.
// os/exec uses the last value for duplicate keys, so appending overrides.
func mergedEnviron(environ []string, extra map[string]string) []string {
	if len(extra) == 0 {
		return environ
	}
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	merged := make([]string, 0, len(environ)+len(keys))
	merged = append(merged, environ...)
	for _, k := range keys {
		merged = append(merged, k+"="+extra[k])
	}
	return merged
}
