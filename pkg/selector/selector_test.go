package selector_test

import (
	"testing"
	"testing/quick"

	"github.com/powerpig99/simple-chatbot/pkg/domain"
	"github.com/powerpig99/simple-chatbot/pkg/ports/tests"
	"github.com/powerpig99/simple-chatbot/pkg/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fallback = "Sorry, I don't understand that. Try something else!"

func defaultSelector(t *testing.T) *selector.Selector {
	t.Helper()
	table, err := selector.DefaultTable()
	require.NoError(t, err)
	return selector.New(table)
}

func TestSelector_Select(t *testing.T) {
	s := defaultSelector(t)

	tests := []struct {
		name   string
		tokens domain.Tokens
		want   string
	}{
		{"Hello", domain.Tokens{"hello"}, "Hi there!"},
		{"Hi", domain.Tokens{"hi"}, "Hello! How can I help you?"},
		{"How Are You", domain.Tokens{"how", "are", "you", "today"}, "I'm doing great, thanks! How about you?"},
		{"Bye", domain.Tokens{"bye", "now"}, "Goodbye!"},
		{"Name", domain.Tokens{"what", "is", "your", "name"}, "I'm Grok, nice to meet you!"},
		{"No Match", domain.Tokens{"xyz123", "gibberish"}, fallback},
		{"Empty", domain.Tokens{}, fallback},
		{"Nil", nil, fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Select(tt.tokens))
		})
	}
}

func TestSelector_SubstringContainment(t *testing.T) {
	s := defaultSelector(t)

	// "this" contains "hi": containment is not word-aware.
	assert.Equal(t, "Hello! How can I help you?", s.Select(domain.Tokens{"this"}))
	// "hello" is declared before "hi", and contains it.
	assert.Equal(t, "Hi there!", s.Select(domain.Tokens{"hello"}))
	// The lookup string spans token boundaries.
	assert.Equal(t, "Goodbye!", s.Select(domain.Tokens{"b", "bye"}))
	assert.Equal(t, fallback, s.Select(domain.Tokens{"b", "ye"}))
}

func TestSelector_FirstMatchPrecedence(t *testing.T) {
	table, err := domain.NewPatternTable([]domain.Pattern{
		{Pattern: "you", Response: "first"},
		{Pattern: "how are you", Response: "second"},
	}, "none")
	require.NoError(t, err)
	s := selector.New(table)

	reply := s.Match(domain.Tokens{"how", "are", "you"})
	assert.Equal(t, "first", reply.Text)
	assert.Equal(t, 0, reply.Index)
	assert.Equal(t, "you", reply.Pattern)
	assert.False(t, reply.IsDefault())
}

func TestSelector_MatchDefault(t *testing.T) {
	s := defaultSelector(t)

	tokens := domain.Tokens{"xyz123", "gibberish"}
	reply := s.Match(tokens)
	assert.True(t, reply.IsDefault())
	assert.Equal(t, -1, reply.Index)
	assert.Equal(t, domain.DefaultPatternName, reply.Pattern)
	assert.Equal(t, fallback, reply.Text)
	assert.Equal(t, tokens, reply.Tokens)
}

func TestSelector_PatternInsideWord(t *testing.T) {
	s := defaultSelector(t)

	// "nothing" contains "hi".
	reply := s.Match(domain.Tokens{"nothing", "here"})
	assert.False(t, reply.IsDefault())
	assert.Equal(t, "hi", reply.Pattern)
	assert.Equal(t, 1, reply.Index)
}

func TestSelector_Totality(t *testing.T) {
	s := defaultSelector(t)
	table := s.Table()

	known := map[string]bool{table.Default(): true}
	for _, p := range table.Entries() {
		known[p.Response] = true
	}

	prop := func(words []string) bool {
		return known[s.Select(domain.Tokens(words))]
	}
	require.NoError(t, quick.Check(prop, nil))
}

func TestSelector_Contract(t *testing.T) {
	s := defaultSelector(t)
	tests.SelectorContractTest(t, s, s.Table())
}
