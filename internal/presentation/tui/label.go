// Package tui styles console output with terminal colours.
package tui

import (
	"io"

	"github.com/muesli/termenv"
)

// LabelColor is the indigo used for the speaker label.
const LabelColor = "#818cf8"

// Styler renders labels for one output stream.
// Writers that are not colour terminals get plain text.
type Styler struct {
	out *termenv.Output
}

// NewStyler detects the colour profile of w.
func NewStyler(w io.Writer, opts ...termenv.OutputOption) *Styler {
	return &Styler{out: termenv.NewOutput(w, opts...)}
}

// Label renders text bold in LabelColor.
func (s *Styler) Label(text string) string {
	return s.out.String(text).Foreground(s.out.Color(LabelColor)).Bold().String()
}
