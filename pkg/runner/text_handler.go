package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	// DefaultLabel prefixes every chatbot line.
	DefaultLabel = "Chatbot:"
	// DefaultPrompt is written before every read.
	DefaultPrompt = "You: "
)

// TextHandler implements the console protocol on plain readers and writers.
type TextHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Label   string
	Prompt  string
	Labeler Labeler

	// terminal is true when Writer is a terminal; EOF then moves to a fresh line.
	terminal bool
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerLabeler configures the label styling.
func WithTextHandlerLabeler(l Labeler) TextHandlerOption {
	return func(h *TextHandler) {
		h.Labeler = l
	}
}

// WithTextHandlerLabel replaces the speaker label.
func WithTextHandlerLabel(label string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Label = label
	}
}

// WithTextHandlerPrompt replaces the input prompt.
func WithTextHandlerPrompt(prompt string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Prompt = prompt
	}
}

// NewTextHandler creates a handler for standard text IO.
// Nil arguments default to Stdin and Stdout.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader:   bufio.NewReader(r),
		Writer:   w,
		Label:    DefaultLabel,
		Prompt:   DefaultPrompt,
		terminal: isTerminal(w),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Say writes "<label> <msg>" on its own line.
func (h *TextHandler) Say(ctx context.Context, msg string) error {
	label := h.Label
	if h.Labeler != nil {
		label = h.Labeler(label)
	}
	_, err := fmt.Fprintf(h.Writer, "%s %s\n", label, msg)
	return err
}

// Input writes the prompt and reads one line.
// A final line without a newline is still returned; the following call reports io.EOF.
func (h *TextHandler) Input(ctx context.Context) (string, error) {
	if _, err := fmt.Fprint(h.Writer, h.Prompt); err != nil {
		return "", err
	}

	text, err := h.Reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && text != "" {
			return trimLineEnd(text), nil
		}
		if err == io.EOF && h.terminal {
			// Leave the prompt line so the shell starts on a fresh one.
			fmt.Fprintln(h.Writer)
		}
		return "", err
	}
	return trimLineEnd(text), nil
}

func trimLineEnd(s string) string {
	return strings.TrimRight(s, "\r\n")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
