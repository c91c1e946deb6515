package runner

import "context"

// IOHandler defines how the loop talks to the operator.
type IOHandler interface {
	// Say presents one line from the chatbot.
	Say(ctx context.Context, msg string) error

	// Input prompts for and reads one line, without its line terminator.
	// It returns io.EOF when no more input will arrive.
	Input(ctx context.Context) (string, error)
}

// Labeler transforms the speaker label before it is written.
// This allows terminal styling without coupling the loop to a terminal library.
type Labeler func(string) string
