package selector

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/powerpig99/simple-chatbot/internal/assets"
	"github.com/powerpig99/simple-chatbot/internal/dto"
	"github.com/powerpig99/simple-chatbot/pkg/domain"
)

// ErrInvalidTable is returned when a pattern document cannot be decoded or validated.
var ErrInvalidTable = errors.New("invalid pattern table")

// LoadTable decodes a YAML pattern document. Entry order in the document is
// the match order.
func LoadTable(r io.Reader) (*domain.PatternTable, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidTable)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}

	var spec dto.PatternFile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &spec,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}

	entries := make([]domain.Pattern, 0, len(spec.Patterns))
	for _, p := range spec.Patterns {
		entries = append(entries, domain.Pattern{Pattern: p.Pattern, Response: p.Response})
	}

	table, err := domain.NewPatternTable(entries, spec.Default)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	return table, nil
}

// LoadTableFile reads a pattern document from disk.
func LoadTableFile(path string) (*domain.PatternTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pattern file: %w", err)
	}
	defer f.Close()

	table, err := LoadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// DefaultTable returns the built-in pattern table.
func DefaultTable() (*domain.PatternTable, error) {
	f, err := assets.FS().Open(assets.PatternsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open built-in patterns: %w", err)
	}
	defer f.Close()

	return LoadTable(f)
}
