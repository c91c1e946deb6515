package cli

import (
	"context"
	"io"
	"os"
)

// RunOptions contains all the configuration for a chat session.
type RunOptions struct {
	Debug        bool
	PatternsPath string // YAML pattern table; empty uses the built-in table
	DataDir      string // directory with index.noun and noun.exc; empty uses embedded data

	// Stdin/Stdout/Stderr default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Execute handles the root command logic.
func Execute(ctx context.Context, opts RunOptions) error {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return RunSession(ctx, opts)
}
