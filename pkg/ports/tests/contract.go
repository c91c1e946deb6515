package tests

import (
	"strings"
	"testing"

	"github.com/powerpig99/simple-chatbot/pkg/domain"
	"github.com/powerpig99/simple-chatbot/pkg/ports"
)

// SelectorContractTest is a reusable test suite that verifies if an implementation complies with ports.Selector.
// table must be the table the selector was built from.
func SelectorContractTest(t *testing.T, sel ports.Selector, table *domain.PatternTable) {
	t.Helper()

	// 1. Every entry is reachable when its pattern is the whole lookup string,
	//    unless an earlier entry is contained in it.
	t.Run("Entries_Reachable", func(t *testing.T) {
		for i, p := range table.Entries() {
			want := i
			for j := 0; j < i; j++ {
				if strings.Contains(p.Pattern, table.At(j).Pattern) {
					want = j
					break
				}
			}
			reply := sel.Match(domain.Tokens{p.Pattern})
			if reply.Index != want {
				t.Errorf("pattern %q: matched index %d, want %d", p.Pattern, reply.Index, want)
			}
			if reply.Text != table.At(want).Response {
				t.Errorf("pattern %q: got response %q, want %q", p.Pattern, reply.Text, table.At(want).Response)
			}
		}
	})

	// 2. Empty input yields the default response.
	t.Run("Empty_Default", func(t *testing.T) {
		reply := sel.Match(domain.Tokens{})
		if !reply.IsDefault() || reply.Text != table.Default() {
			t.Errorf("empty input: got %+v, want default %q", reply, table.Default())
		}
	})

	// 3. Replies carry the tokens they were computed from.
	t.Run("Reply_Tokens", func(t *testing.T) {
		tokens := domain.Tokens{"contract", "check"}
		reply := sel.Match(tokens)
		if reply.Tokens.Join() != tokens.Join() {
			t.Errorf("reply tokens %v, want %v", reply.Tokens, tokens)
		}
	})
}
