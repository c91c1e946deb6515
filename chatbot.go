package chatbot

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/powerpig99/simple-chatbot/internal/assets"
	"github.com/powerpig99/simple-chatbot/pkg/domain"
	"github.com/powerpig99/simple-chatbot/pkg/lemma"
	"github.com/powerpig99/simple-chatbot/pkg/normalize"
	"github.com/powerpig99/simple-chatbot/pkg/ports"
	"github.com/powerpig99/simple-chatbot/pkg/selector"
)

// Bot answers operator lines by normalizing them and selecting a canned response.
// It is the high-level entry point of the library.
type Bot struct {
	normalizer ports.Normalizer
	selector   ports.Selector
	lexicon    *lemma.Lexicon
	table      *domain.PatternTable
	logger     *slog.Logger
}

// Option defines a functional option for configuring the Bot.
type Option func(*Bot)

// WithNormalizer injects a custom Normalizer. The lexicon is then not loaded.
func WithNormalizer(n ports.Normalizer) Option {
	return func(b *Bot) {
		b.normalizer = n
	}
}

// WithSelector injects a custom Selector. The pattern table is then not loaded.
func WithSelector(s ports.Selector) Option {
	return func(b *Bot) {
		b.selector = s
	}
}

// WithLexicon lemmatizes with lex instead of the embedded language data.
func WithLexicon(lex *lemma.Lexicon) Option {
	return func(b *Bot) {
		b.lexicon = lex
	}
}

// WithPatternTable matches against table instead of the built-in one.
func WithPatternTable(table *domain.PatternTable) Option {
	return func(b *Bot) {
		b.table = table
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bot) {
		b.logger = logger
	}
}

// New initializes a Bot.
// Unless replaced through options, it loads the embedded language data and the
// built-in pattern table; failing to load either is returned as an error.
func New(opts ...Option) (*Bot, error) {
	b := &Bot{}
	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if b.normalizer == nil {
		if b.lexicon == nil {
			lex, err := lemma.LoadLexicon(assets.FS())
			if err != nil {
				return nil, fmt.Errorf("failed to load language data: %w", err)
			}
			b.lexicon = lex
		}
		b.logger.Debug("lexicon ready", "nouns", b.lexicon.Nouns(), "exceptions", b.lexicon.ExceptionCount())
		b.normalizer = normalize.FromLexicon(b.lexicon)
	}

	if b.selector == nil {
		if b.table == nil {
			table, err := selector.DefaultTable()
			if err != nil {
				return nil, fmt.Errorf("failed to load pattern table: %w", err)
			}
			b.table = table
		}
		b.logger.Debug("pattern table ready", "patterns", b.table.Len())
		b.selector = selector.New(b.table)
	}

	return b, nil
}

// Normalize returns the normalized tokens of input.
func (b *Bot) Normalize(input string) domain.Tokens {
	return b.normalizer.Normalize(input)
}

// Select returns the response for already normalized tokens.
func (b *Bot) Select(tokens domain.Tokens) string {
	return b.selector.Match(tokens).Text
}

// Reply runs a full turn and reports which pattern produced the response.
func (b *Bot) Reply(input string) domain.Reply {
	tokens := b.normalizer.Normalize(input)
	reply := b.selector.Match(tokens)
	b.logger.Debug("turn", "tokens", tokens.Join(), "pattern", reply.Pattern, "index", reply.Index)
	return reply
}

// Respond returns the response to a raw input line.
func (b *Bot) Respond(input string) string {
	return b.Reply(input).Text
}

// Table returns the pattern table given to or loaded by New.
// It is nil when only a custom Selector was provided.
func (b *Bot) Table() *domain.PatternTable {
	return b.table
}
