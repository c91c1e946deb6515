package cli

import (
	"log/slog"

	"github.com/powerpig99/simple-chatbot/internal/logging"
)

// createLogger configures the application logger on Stderr (to separate from the conversation on Stdout).
// Debug records are only emitted with --debug.
func createLogger(opts RunOptions) *slog.Logger {
	return logging.NewWithWriter(opts.Stderr, logging.Level(opts.Debug))
}
