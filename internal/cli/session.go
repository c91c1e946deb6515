package cli

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/powerpig99/simple-chatbot/internal/presentation/tui"
	"github.com/powerpig99/simple-chatbot/pkg/observability"
	"github.com/powerpig99/simple-chatbot/pkg/runner"
)

// RunSession executes a single conversation.
func RunSession(ctx context.Context, opts RunOptions) error {
	logger := createLogger(opts)

	bot, err := createBot(opts, logger)
	if err != nil {
		return err
	}

	metrics, err := observability.NewMetrics(nil)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	r := runner.NewRunner(createRunnerOptions(opts, logger, metrics)...)

	runErr := r.Run(ctx, bot)

	logCompletion(logger, r, metrics, runErr)
	return runErr
}

func logCompletion(logger *slog.Logger, r *runner.Runner, metrics *observability.Metrics, runErr error) {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	snapshot, err := metrics.Snapshot()
	if err != nil {
		logger.Debug("metrics unavailable", "error", err)
		return
	}

	responses := make([]any, 0, len(snapshot))
	for _, pattern := range slices.Sorted(maps.Keys(snapshot)) {
		responses = append(responses, slog.Float64(pattern, snapshot[pattern]))
	}

	attrs := []any{"state", string(r.State()), slog.Group("responses", responses...)}
	if runErr != nil {
		attrs = append(attrs, "error", runErr)
	}
	logger.Debug("session finished", attrs...)
}

// createRunnerOptions prepares the functional options for the Runner.
func createRunnerOptions(opts RunOptions, logger *slog.Logger, metrics *observability.Metrics) []runner.Option {
	styler := tui.NewStyler(opts.Stdout)
	return []runner.Option{
		runner.WithLogger(logger),
		runner.WithInput(opts.Stdin),
		runner.WithOutput(opts.Stdout),
		runner.WithLabeler(styler.Label),
		runner.WithMetrics(metrics),
	}
}
