package runner

import (
	"io"
	"log/slog"

	"github.com/powerpig99/simple-chatbot/pkg/observability"
)

// DefaultExitKeyword ends the conversation when typed on its own line.
const DefaultExitKeyword = "quit"

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
// When set, WithInput, WithOutput and WithLabeler are ignored.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithInput sets the reader lines are read from.
func WithInput(in io.Reader) Option {
	return func(r *Runner) {
		r.Input = in
	}
}

// WithOutput sets the writer the conversation is printed to.
func WithOutput(out io.Writer) Option {
	return func(r *Runner) {
		r.Output = out
	}
}

// WithLabeler configures the speaker label styling (e.g. terminal colours).
func WithLabeler(l Labeler) Option {
	return func(r *Runner) {
		r.Labeler = l
	}
}

// WithExitKeyword replaces the word that ends the conversation.
// Matching is case-insensitive.
func WithExitKeyword(keyword string) Option {
	return func(r *Runner) {
		r.ExitKeyword = keyword
	}
}

// WithMetrics records every answered turn.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Runner) {
		r.Metrics = m
	}
}
