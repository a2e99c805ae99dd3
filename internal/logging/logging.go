// Package logging constructs the console logger.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates the claudio console logger on stderr, keeping stdout clean
// for the downstream process. Unknown levels fall back to info.
func New(level string, timestamps bool) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		Formatter:       log.TextFormatter,
		ReportTimestamp: timestamps,
		Prefix:          "claudio",
	})
}
