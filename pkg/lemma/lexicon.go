package lemma

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// WordNet database file names.
const (
	IndexFile     = "index.noun"
	ExceptionFile = "noun.exc"
)

var (
	// ErrAssetsUnavailable is returned when a language data file cannot be opened or read.
	ErrAssetsUnavailable = errors.New("lemmatization data unavailable")
	// ErrMalformedAsset is returned when a language data file cannot be parsed.
	ErrMalformedAsset = errors.New("malformed lemmatization data")
)

// maxLineSize bounds a single data line. Real index.noun lines stay well below it.
const maxLineSize = 1 << 20

// Lexicon holds the noun index and the irregular form exceptions.
// It is immutable and safe for concurrent use.
type Lexicon struct {
	nouns      map[string]struct{}
	exceptions map[string][]string
}

// NewLexicon builds a Lexicon from in-memory data.
func NewLexicon(nouns []string, exceptions map[string][]string) *Lexicon {
	lex := &Lexicon{
		nouns:      make(map[string]struct{}, len(nouns)),
		exceptions: make(map[string][]string, len(exceptions)),
	}
	for _, n := range nouns {
		lex.nouns[n] = struct{}{}
	}
	for form, bases := range exceptions {
		lex.exceptions[form] = append([]string(nil), bases...)
	}
	return lex
}

// LoadLexicon reads index.noun and noun.exc from fsys.
func LoadLexicon(fsys fs.FS) (*Lexicon, error) {
	lex := &Lexicon{
		nouns:      make(map[string]struct{}),
		exceptions: make(map[string][]string),
	}

	err := readLines(fsys, IndexFile, func(fields []string) error {
		lex.nouns[fields[0]] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readLines(fsys, ExceptionFile, func(fields []string) error {
		if len(fields) < 2 {
			return fmt.Errorf("exception %q has no base form", fields[0])
		}
		lex.exceptions[fields[0]] = append(lex.exceptions[fields[0]], fields[1:]...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(lex.nouns) == 0 {
		return nil, fmt.Errorf("%w: %s contains no entries", ErrMalformedAsset, IndexFile)
	}
	return lex, nil
}

// readLines feeds the whitespace separated fields of every data line to fn.
// Blank lines and lines starting with a space or '#' (WordNet license header,
// comments) are skipped.
func readLines(fsys fs.FS, name string, fn func(fields []string) error) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", ErrAssetsUnavailable, name, err)
	}
	defer f.Close()

	return scan(f, name, fn)
}

func scan(r io.Reader, name string, fn func(fields []string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || line[0] == ' ' || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if err := fn(fields); err != nil {
			return fmt.Errorf("%w: %s:%d: %v", ErrMalformedAsset, name, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrAssetsUnavailable, name, err)
	}
	return nil
}

// IsNoun reports whether word is a base form in the noun index.
func (l *Lexicon) IsNoun(word string) bool {
	_, ok := l.nouns[word]
	return ok
}

// Exceptions returns the base forms listed for an irregular form, if any.
func (l *Lexicon) Exceptions(word string) ([]string, bool) {
	bases, ok := l.exceptions[word]
	return bases, ok
}

// Nouns returns the number of entries in the noun index.
func (l *Lexicon) Nouns() int {
	return len(l.nouns)
}

// ExceptionCount returns the number of irregular forms.
func (l *Lexicon) ExceptionCount() int {
	return len(l.exceptions)
}
