package domain

import (
	"fmt"
	"strings"
)

// DefaultPatternName labels the fallback entry in logs and metrics.
const DefaultPatternName = "default"

// Pattern pairs a lookup substring with its canned response.
type Pattern struct {
	Pattern  string
	Response string
}

// PatternTable is the ordered set of patterns plus the fallback response.
// Entries are matched in declaration order. The table cannot be modified
// after construction.
type PatternTable struct {
	entries []Pattern
	def     string
}

// NewPatternTable validates and freezes a pattern table.
// The entries slice is copied, so later changes by the caller are not observed.
func NewPatternTable(entries []Pattern, defaultResponse string) (*PatternTable, error) {
	if defaultResponse == "" {
		return nil, ErrNoDefault
	}
	frozen := make([]Pattern, len(entries))
	for i, e := range entries {
		if e.Pattern == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyPattern)
		}
		frozen[i] = e
	}
	return &PatternTable{entries: frozen, def: defaultResponse}, nil
}

// Len returns the number of non-default entries.
func (t *PatternTable) Len() int {
	return len(t.entries)
}

// At returns the i-th entry in match order.
func (t *PatternTable) At(i int) Pattern {
	return t.entries[i]
}

// Entries returns a copy of the entries in match order.
func (t *PatternTable) Entries() []Pattern {
	out := make([]Pattern, len(t.entries))
	copy(out, t.entries)
	return out
}

// Default returns the fallback response.
func (t *PatternTable) Default() string {
	return t.def
}

// Tokens is the normalized word sequence of one input line.
type Tokens []string

// Join rebuilds the lookup string by separating tokens with single spaces.
func (t Tokens) Join() string {
	return strings.Join(t, " ")
}

// Reply is the outcome of one turn.
type Reply struct {
	// Text is the response shown to the operator.
	Text string

	// Index is the position of the matching entry, or -1 when the default was used.
	Index int

	// Pattern is the matching pattern text, or DefaultPatternName.
	Pattern string

	// Tokens are the normalized tokens the selection was made on.
	Tokens Tokens
}

// IsDefault reports whether no pattern matched.
func (r Reply) IsDefault() bool {
	return r.Index < 0
}
