// Package normalize turns a raw input line into lemmatized tokens.
package normalize

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/powerpig99/simple-chatbot/pkg/domain"
	"github.com/powerpig99/simple-chatbot/pkg/lemma"
	"github.com/powerpig99/simple-chatbot/pkg/tokenize"
)

// Tokenizer splits text into word tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Lemmatizer reduces a token to its base form.
type Lemmatizer interface {
	Lemmatize(word string) string
}

// Normalizer lowercases, tokenizes and lemmatizes input text.
type Normalizer struct {
	tokenizer  Tokenizer
	lemmatizer Lemmatizer
	tag        language.Tag
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithTokenizer replaces the default Treebank tokenizer.
func WithTokenizer(t Tokenizer) Option {
	return func(n *Normalizer) {
		n.tokenizer = t
	}
}

// WithLanguage sets the casing rules used for lowercasing (default: English).
func WithLanguage(tag language.Tag) Option {
	return func(n *Normalizer) {
		n.tag = tag
	}
}

// New creates a Normalizer that lemmatizes with l.
func New(l Lemmatizer, opts ...Option) *Normalizer {
	n := &Normalizer{
		tokenizer:  tokenize.New(),
		lemmatizer: l,
		tag:        language.English,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// FromLexicon is a shortcut for New(lemma.New(lex), opts...).
func FromLexicon(lex *lemma.Lexicon, opts ...Option) *Normalizer {
	return New(lemma.New(lex), opts...)
}

// Normalize returns the lemmatized tokens of input, in input order.
// The result is empty when input has no tokens.
func (n *Normalizer) Normalize(input string) domain.Tokens {
	// A cases.Caser keeps state and is not safe for concurrent use.
	lower := cases.Lower(n.tag).String(norm.NFC.String(input))

	words := n.tokenizer.Tokenize(lower)
	tokens := make(domain.Tokens, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, n.lemmatizer.Lemmatize(w))
	}
	return tokens
}
