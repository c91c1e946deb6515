package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/powerpig99/simple-chatbot/internal/testutils"
	"github.com/powerpig99/simple-chatbot/pkg/lemma"
	"github.com/powerpig99/simple-chatbot/pkg/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, opts RunOptions, input string) (string, string, error) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	opts.Stdin = strings.NewReader(input)
	opts.Stdout = stdout
	opts.Stderr = stderr
	err := Execute(context.Background(), opts)
	return stdout.String(), stderr.String(), err
}

func TestExecute_DefaultSession(t *testing.T) {
	out, logs, err := run(t, RunOptions{}, "hello\nquit\n")
	require.NoError(t, err)

	assert.Equal(t, "Chatbot: Hello! Type 'quit' to exit.\n"+
		"You: Chatbot: Hi there!\n"+
		"You: Chatbot: Bye!\n", out)
	assert.Empty(t, logs)
}

func TestExecute_Debug(t *testing.T) {
	out, logs, err := run(t, RunOptions{Debug: true}, "hello\nxyz\n")
	require.NoError(t, err)

	assert.NotContains(t, out, "level=DEBUG")
	assert.Contains(t, logs, "session finished")
	assert.Contains(t, logs, "state=terminated")
	assert.Contains(t, logs, "responses.hello=1")
	assert.Contains(t, logs, "responses.default=1")
}

func TestExecute_PatternsFile(t *testing.T) {
	path := testutils.WriteFile(t, t.TempDir(), "patterns.yaml",
		"patterns:\n  - pattern: weather\n    response: Sunny.\ndefault: No idea.\n")

	out, _, err := run(t, RunOptions{PatternsPath: path}, "weather today?\nhello\nquit\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Chatbot: Sunny.\n")
	assert.Contains(t, out, "Chatbot: No idea.\n")
}

func TestExecute_StartupFailures(t *testing.T) {
	t.Run("Missing Patterns File", func(t *testing.T) {
		_, _, err := run(t, RunOptions{PatternsPath: filepath.Join(t.TempDir(), "nope.yaml")}, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load pattern table")
	})

	t.Run("Invalid Patterns File", func(t *testing.T) {
		path := testutils.WriteFile(t, t.TempDir(), "bad.yaml", "patterns: []\n")

		out, _, err := run(t, RunOptions{PatternsPath: path}, "hello\n")
		require.ErrorIs(t, err, selector.ErrInvalidTable)
		assert.Empty(t, out, "no greeting before a failed startup")
	})

	t.Run("Missing Exceptions File", func(t *testing.T) {
		dir := testutils.SetupDataDir(t, lemma.IndexFile)
		_, _, err := run(t, RunOptions{DataDir: dir}, "")
		require.ErrorIs(t, err, lemma.ErrAssetsUnavailable)
	})

	t.Run("Empty Data Dir", func(t *testing.T) {
		_, _, err := run(t, RunOptions{DataDir: t.TempDir()}, "")
		require.ErrorIs(t, err, lemma.ErrAssetsUnavailable)
		assert.Contains(t, err.Error(), "failed to load language data")
	})
}

func TestExecute_DataDir(t *testing.T) {
	dir := testutils.SetupDataDir(t, lemma.IndexFile, lemma.ExceptionFile)

	out, _, err := run(t, RunOptions{DataDir: dir}, "Hello!\nquit\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Chatbot: Hi there!\n")
}

func TestLoadTable(t *testing.T) {
	table, err := LoadTable("", createLogger(RunOptions{Stderr: &bytes.Buffer{}}))
	require.NoError(t, err)
	assert.Equal(t, "hello", table.At(0).Pattern)
	assert.Equal(t, 5, table.Len())
}
