package tokenize

import (
	"regexp"
	"strings"
)

// DefaultAbbreviations are words whose trailing period does not end a sentence.
var DefaultAbbreviations = []string{
	"mr", "mrs", "ms", "dr", "prof", "sr", "jr", "st", "mt",
	"vs", "etc", "inc", "ltd", "co", "corp", "dept", "approx",
	"jan", "feb", "mar", "apr", "jun", "jul", "aug", "sep", "sept", "oct", "nov", "dec",
}

// sentenceEnd matches a terminator run, optional closing quotes or brackets and the
// whitespace that follows them.
var sentenceEnd = regexp.MustCompile(`[.!?]+["'”’)\]}]*\s+`)

// Tokenizer splits text into Treebank-style word tokens.
// It is safe for concurrent use.
type Tokenizer struct {
	abbreviations map[string]struct{}
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithAbbreviations replaces the abbreviation list used for sentence splitting.
func WithAbbreviations(words ...string) Option {
	return func(t *Tokenizer) {
		t.abbreviations = make(map[string]struct{}, len(words))
		for _, w := range words {
			t.abbreviations[strings.ToLower(strings.TrimSuffix(w, "."))] = struct{}{}
		}
	}
}

// New creates a Tokenizer with the default English abbreviation list.
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{}
	WithAbbreviations(DefaultAbbreviations...)(t)
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize splits text into sentences and returns the word tokens of all of them, in order.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	for _, sentence := range t.Sentences(text) {
		tokens = append(tokens, t.Words(sentence)...)
	}
	return tokens
}

// Sentences cuts text at sentence terminators followed by whitespace.
// Ellipses and periods after known abbreviations do not end a sentence.
func (t *Tokenizer) Sentences(text string) []string {
	var out []string
	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		if strings.HasPrefix(text[loc[0]:], "..") || t.endsWithAbbreviation(text[start:loc[0]]) {
			continue
		}
		if s := strings.TrimSpace(text[start:loc[1]]); s != "" {
			out = append(out, s)
		}
		start = loc[1]
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

func (t *Tokenizer) endsWithAbbreviation(segment string) bool {
	fields := strings.Fields(segment)
	if len(fields) == 0 {
		return false
	}
	word := strings.ToLower(strings.TrimLeft(fields[len(fields)-1], "\"'`([{<"))
	if strings.Contains(word, ".") {
		// Dotted forms such as e.g or u.s
		return true
	}
	_, ok := t.abbreviations[word]
	return ok
}

// Words tokenizes a single sentence.
func (t *Tokenizer) Words(sentence string) []string {
	s := applyAll(startingQuotes, sentence)
	s = splitLeadingApostrophe(s)
	s = applyAll(punctuation, s)
	s = parensBrackets.apply(s)
	s = doubleDashes.apply(s)

	s = " " + s + " "
	s = applyAll(endingQuotes, s)
	s = applyAll(contractions, s)

	return strings.Fields(s)
}
