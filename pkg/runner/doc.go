/*
Package runner implements the interactive read-eval-print loop of the chatbot.

It acts as the bridge between a Responder (normalize, then select) and the
operator's console. The loop has two states: it is RUNNING after printing the
greeting, and becomes TERMINATED when the exit keyword is typed or input
ends. TERMINATED has no way out.

# Key Components

  - Runner: the loop itself, configured with functional options.
  - IOHandler: decouples the loop from how lines are read and written.
  - TextHandler: the console implementation (labelled lines, "You: " prompt).

# Usage

	bot, err := chatbot.New()
	if err != nil {
		log.Fatal(err)
	}

	r := runner.NewRunner(runner.WithLogger(logger))
	if err := r.Run(ctx, bot); err != nil {
		log.Fatal(err)
	}
*/
package runner
