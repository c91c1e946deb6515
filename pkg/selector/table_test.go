package selector_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/powerpig99/simple-chatbot/internal/testutils"
	"github.com/powerpig99/simple-chatbot/pkg/domain"
	"github.com/powerpig99/simple-chatbot/pkg/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable_DeclarationOrder(t *testing.T) {
	table, err := selector.DefaultTable()
	require.NoError(t, err)

	var patterns []string
	for _, p := range table.Entries() {
		patterns = append(patterns, p.Pattern)
	}
	assert.Equal(t, []string{"hello", "hi", "how are you", "bye", "what is your name"}, patterns)
	assert.Equal(t, fallback, table.Default())
}

func TestLoadTable(t *testing.T) {
	doc := `
patterns:
  - pattern: zeta
    response: Z
  - pattern: alpha
    response: A
default: none
`
	table, err := selector.LoadTable(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []domain.Pattern{
		{Pattern: "zeta", Response: "Z"},
		{Pattern: "alpha", Response: "A"},
	}, table.Entries())
	assert.Equal(t, "none", table.Default())
}

func TestLoadTable_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"Empty Document", "", selector.ErrInvalidTable},
		{"Not A Mapping", "- a\n- b\n", selector.ErrInvalidTable},
		{"Unknown Key", "default: x\nextra: 1\n", selector.ErrInvalidTable},
		{"Unknown Entry Key", "default: x\npatterns:\n  - pattern: a\n    reply: b\n", selector.ErrInvalidTable},
		{"Missing Default", "patterns:\n  - pattern: a\n    response: b\n", domain.ErrNoDefault},
		{"Empty Pattern", "default: x\npatterns:\n  - pattern: ''\n    response: b\n", domain.ErrEmptyPattern},
		{"Wrong Type", "default: x\npatterns:\n  - pattern: [a]\n    response: b\n", selector.ErrInvalidTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := selector.LoadTable(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, selector.ErrInvalidTable)
		})
	}
}

func TestLoadTableFile(t *testing.T) {
	path := testutils.WriteFile(t, t.TempDir(), "patterns.yaml",
		"default: fallback\npatterns:\n  - pattern: ping\n    response: pong\n")

	table, err := selector.LoadTableFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pong", selector.New(table).Select(domain.Tokens{"ping"}))

	_, err = selector.LoadTableFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
