package cli

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	chatbot "github.com/powerpig99/simple-chatbot"
	"github.com/powerpig99/simple-chatbot/internal/assets"
	"github.com/powerpig99/simple-chatbot/pkg/domain"
	"github.com/powerpig99/simple-chatbot/pkg/lemma"
	"github.com/powerpig99/simple-chatbot/pkg/selector"
)

// createBot initializes the chatbot with standard CLI conventions.
func createBot(opts RunOptions, logger *slog.Logger) (*chatbot.Bot, error) {
	lex, err := loadLexicon(opts.DataDir, logger)
	if err != nil {
		return nil, err
	}

	table, err := LoadTable(opts.PatternsPath, logger)
	if err != nil {
		return nil, err
	}

	return chatbot.New(
		chatbot.WithLexicon(lex),
		chatbot.WithPatternTable(table),
		chatbot.WithLogger(logger),
	)
}

// LoadTable reads the pattern table from path, or returns the built-in table when path is empty.
func LoadTable(path string, logger *slog.Logger) (*domain.PatternTable, error) {
	if path == "" {
		return selector.DefaultTable()
	}
	table, err := selector.LoadTableFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load pattern table: %w", err)
	}
	logger.Debug("pattern table loaded", "path", path, "patterns", table.Len())
	return table, nil
}

func loadLexicon(dir string, logger *slog.Logger) (*lemma.Lexicon, error) {
	var fsys fs.FS = assets.FS()
	if dir != "" {
		fsys = os.DirFS(dir)
	}

	lex, err := lemma.LoadLexicon(fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to load language data: %w", err)
	}
	logger.Debug("language data loaded", "dir", dir, "nouns", lex.Nouns(), "exceptions", lex.ExceptionCount())
	return lex, nil
}
