/*
Package selector picks a canned response for a normalized token sequence.

The tokens are joined with single spaces and every pattern of the table is
tested, in declaration order, for plain substring containment. The first
pattern found wins; when none is found the table's default response is
returned. Containment is deliberately not word-aware: "this" contains "hi".
*/
package selector

import (
	"strings"

	"github.com/powerpig99/simple-chatbot/pkg/domain"
)

// Selector matches tokens against an immutable pattern table.
// It holds no mutable state and is safe for concurrent use.
type Selector struct {
	table *domain.PatternTable
}

// New creates a Selector over table.
func New(table *domain.PatternTable) *Selector {
	return &Selector{table: table}
}

// Table returns the pattern table the selector matches against.
func (s *Selector) Table() *domain.PatternTable {
	return s.table
}

// Select returns exactly one response for tokens.
func (s *Selector) Select(tokens domain.Tokens) string {
	return s.Match(tokens).Text
}

// Match returns the response for tokens together with the entry that produced it.
func (s *Selector) Match(tokens domain.Tokens) domain.Reply {
	lookup := tokens.Join()
	for i := 0; i < s.table.Len(); i++ {
		p := s.table.At(i)
		if strings.Contains(lookup, p.Pattern) {
			return domain.Reply{Text: p.Response, Index: i, Pattern: p.Pattern, Tokens: tokens}
		}
	}
	return domain.Reply{
		Text:    s.table.Default(),
		Index:   -1,
		Pattern: domain.DefaultPatternName,
		Tokens:  tokens,
	}
}
