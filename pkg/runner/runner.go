package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/powerpig99/simple-chatbot/pkg/domain"
	"github.com/powerpig99/simple-chatbot/pkg/observability"
	"github.com/powerpig99/simple-chatbot/pkg/ports"
)

// Farewell is printed when the operator types the exit keyword.
const Farewell = "Bye!"

// Runner handles the conversation loop using the provided IO.
// It uses an IOHandler strategy so frontends and tests can replace the console.
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler over Input/Output is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Metrics is optional.
	Metrics *observability.Metrics

	Input       io.Reader
	Output      io.Writer
	Labeler     Labeler
	ExitKeyword string

	state domain.LoopState
}

// NewRunner creates a new Runner with default Stdin/Stdout.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Input:       os.Stdin,
		Output:      os.Stdout,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		ExitKeyword: DefaultExitKeyword,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Greeting returns the line printed when the loop starts.
func (r *Runner) Greeting() string {
	return fmt.Sprintf("Hello! Type '%s' to exit.", r.ExitKeyword)
}

// State reports the loop state. It is empty before Run is called.
func (r *Runner) State() domain.LoopState {
	return r.state
}

// Run executes the loop until the exit keyword is typed or input ends.
// Both cases return nil. The context is checked between turns.
func (r *Runner) Run(ctx context.Context, responder ports.Responder) error {
	handler := r.resolveHandler()
	logger := r.logger()

	if err := handler.Say(ctx, r.Greeting()); err != nil {
		return fmt.Errorf("output error: %w", err)
	}
	r.transition(domain.StateRunning)

	for !r.state.Terminal() {
		if err := ctx.Err(); err != nil {
			r.transition(domain.StateTerminated)
			return err
		}

		line, err := handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Debug("input closed")
				r.transition(domain.StateTerminated)
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		if r.isExit(line) {
			if err := handler.Say(ctx, Farewell); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
			r.transition(domain.StateTerminated)
			return nil
		}

		reply := responder.Reply(SanitizeInput(line))
		if r.Metrics != nil {
			r.Metrics.ObserveReply(reply)
		}

		if err := handler.Say(ctx, reply.Text); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}
	return nil
}

func (r *Runner) isExit(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), r.ExitKeyword)
}

func (r *Runner) transition(next domain.LoopState) {
	r.logger().Debug("state", "from", string(r.state), "state", string(next))
	r.state = next
}

func (r *Runner) resolveHandler() IOHandler {
	if r.Handler != nil {
		return r.Handler
	}
	var opts []TextHandlerOption
	if r.Labeler != nil {
		opts = append(opts, WithTextHandlerLabeler(r.Labeler))
	}
	return NewTextHandler(r.Input, r.Output, opts...)
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}
