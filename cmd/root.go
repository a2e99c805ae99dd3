// Package cmd implements the CLI command structure for claudio.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/claudio-cli/claudio/internal/claudedir"
	"github.com/claudio-cli/claudio/internal/config"
	"github.com/claudio-cli/claudio/internal/launcher"
	"github.com/claudio-cli/claudio/internal/logging"
	"github.com/claudio-cli/claudio/internal/selector"
	"github.com/claudio-cli/claudio/internal/settings"
	"github.com/claudio-cli/claudio/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

type options struct {
	help    bool
	version bool
	list    bool
	project string
}

// Run executes the claudio CLI. Arguments claudio does not recognize are
// forwarded verbatim to the claude binary.
func Run(ctx context.Context, args []string) error {
	opts, claudeArgs, err := splitArgs(args)
	if err != nil {
		return err
	}
	if opts.help {
		printUsage(os.Stdout)
		return nil
	}
	if opts.version {
		fmt.Printf("claudio %s\n", Version)
		return nil
	}

	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	logger := logging.New(cfg.LogLevel, cfg.LogTimestamps)

	userDir, err := claudedir.UserDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}
	projectDir := filepath.Join(cfg.ProjectRoot, claudedir.Dir)

	launch := func(extraEnv map[string]string) error {
		code, err := launcher.NewExecLauncher().Launch(ctx, cfg.ClaudeBinary, claudeArgs, extraEnv)
		if err != nil {
			return err
		}
		if code != 0 {
			return &launcher.ExitError{Code: code}
		}
		return nil
	}

	layers := settings.Discover(userDir, projectDir)
	if len(layers) == 0 {
		if opts.list {
			fmt.Println("no projects configured")
			return nil
		}
		logger.Debug("no claudio configuration found, passing through")
		return launch(nil)
	}

	docs, err := settings.LoadAll(layers)
	if err != nil {
		return err
	}
	doc, projects := settings.HighestProjects(docs)
	memory := selector.NewFileMemory(filepath.Join(userDir, claudedir.ClaudioSettingsFile))

	if opts.list {
		if doc == nil {
			fmt.Println("no projects configured")
			return nil
		}
		printProjects(os.Stdout, projects, memory.LastProject())
		return nil
	}
	if doc == nil {
		logger.Debug("no projects defined, passing through")
		return launch(nil)
	}
	logger.Debug("using settings document", "path", doc.Path, "scope", doc.Scope)

	var chooser selector.Chooser = ui.NewPicker()
	if cfg.NoPrompt {
		chooser = defaultChooser{}
	}
	sel := selector.New(chooser, memory)

	var res selector.Result
	if opts.project != "" {
		res, err = sel.SelectNamed(projects, opts.project)
	} else {
		res, err = sel.Select(ctx, projects)
	}
	if err != nil {
		return err
	}
	if res.Project == nil {
		return launch(nil)
	}
	logger.Info("using project", "name", res.Project.Name)

	var extraEnv map[string]string
	if len(res.Project.Env) > 0 {
		base := settings.HighestEnv(userDir, projectDir)
		merged := settings.MergeEnv(base.Env, res.Project.Env)
		if err := base.Persist(merged); err != nil {
			return err
		}
		logger.Debug("persisted merged env", "path", base.Path, "keys", len(merged))
		extraEnv = merged
	}
	return launch(extraEnv)
}

// defaultChooser picks the default entry without prompting, for no_prompt
// mode and CLAUDIO_NO_PROMPT.
type defaultChooser struct{}

func (defaultChooser) Choose(_ context.Context, _ []settings.Project, defaultIndex int) (int, error) {
	return defaultIndex, nil
}

// splitArgs separates claudio's own flags from the pass-through arguments.
func splitArgs(args []string) (options, []string, error) {
	var opts options
	var rest []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			opts.help = true
		case arg == "--version":
			opts.version = true
		case arg == "--list":
			opts.list = true
		case arg == "--project":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("--project requires a value")
			}
			i++
			opts.project = args[i]
		case strings.HasPrefix(arg, "--project="):
			opts.project = strings.TrimPrefix(arg, "--project=")
			if opts.project == "" {
				return opts, nil, fmt.Errorf("--project requires a value")
			}
		default:
			rest = append(rest, arg)
		}
	}
	return opts, rest, nil
}

func printProjects(w io.Writer, projects []settings.Project, last string) {
	for _, p := range projects {
		marker := "  "
		if p.Name == last {
			marker = "* "
		}
		fmt.Fprintf(w, "%s%s\n", marker, p.Name)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `claudio - switch between Claude Code projects with different env overrides

Usage:
  claudio [flags] [claude args...]

Arguments claudio does not recognize are forwarded to the claude CLI.

Flags:
  --project NAME   Select a project without prompting
  --list           List discovered projects and exit
  -h, --help       Show this help
      --version    Show version

Configuration files:
  ~/.claude/claudio.settings.json       user projects, last-used memory
  .claude/claudio.settings.json         shared project settings
  .claude/claudio.settings.local.json   local project settings (highest precedence)
  ~/.claude/claudio.toml                claudio tool options

Environment:
  CLAUDE_BIN              Downstream binary (default "claude")
  CLAUDIO_LOG_LEVEL       Log level (default "info")
  CLAUDIO_NO_PROMPT       Pick the default project without prompting
`)
}
