// Command claudio launches claude with a selected project's env overrides.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/claudio-cli/claudio/cmd"
	"github.com/claudio-cli/claudio/internal/launcher"
	"github.com/claudio-cli/claudio/internal/selector"
)

func main() {
	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := cmd.Run(ctx, os.Args[1:]); err != nil {
		var exitErr *launcher.ExitError
		switch {
		case errors.Is(err, selector.ErrAborted):
			fmt.Fprintln(os.Stderr)
			os.Exit(130)
		case errors.As(err, &exitErr):
			os.Exit(exitErr.Code)
		case ctx.Err() != nil:
			fmt.Fprintf(os.Stderr, "\nInterrupted\n")
			os.Exit(130)
		default:
			fmt.Fprintf(os.Stderr, "claudio: %v\n", err)
			os.Exit(1)
		}
	}
}
