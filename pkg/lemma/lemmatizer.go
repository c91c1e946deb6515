package lemma

import "strings"

// suffix is a detachment rule: a word ending in from may have base form word[:-len(from)]+to.
type suffix struct {
	from, to string
}

// nounSuffixes are WordNet's detachment rules for nouns, in WordNet order.
var nounSuffixes = []suffix{
	{"s", ""},
	{"ses", "s"},
	{"ves", "f"},
	{"xes", "x"},
	{"zes", "z"},
	{"ches", "ch"},
	{"shes", "sh"},
	{"men", "man"},
	{"ies", "y"},
}

// Lemmatizer resolves nouns to their base form against a Lexicon.
type Lemmatizer struct {
	lex *Lexicon
}

// New returns a Lemmatizer backed by lex.
func New(lex *Lexicon) *Lemmatizer {
	return &Lemmatizer{lex: lex}
}

// Lemmatize returns the shortest base form of word, or word itself when no
// base form is known.
func (l *Lemmatizer) Lemmatize(word string) string {
	candidates := l.Candidates(word)
	if len(candidates) == 0 {
		return word
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c) < len(best) {
			best = c
		}
	}
	return best
}

// Candidates returns every base form of word found in the noun index, in
// discovery order.
func (l *Lemmatizer) Candidates(word string) []string {
	if bases, ok := l.lex.Exceptions(word); ok {
		return l.filter(append([]string{word}, bases...))
	}

	forms := detach([]string{word})
	if found := l.filter(append([]string{word}, forms...)); len(found) > 0 {
		return found
	}

	// Keep detaching until something is found or no rule applies.
	for len(forms) > 0 {
		forms = detach(forms)
		if found := l.filter(forms); len(found) > 0 {
			return found
		}
	}
	return nil
}

func (l *Lemmatizer) filter(forms []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(forms))
	for _, f := range forms {
		if _, dup := seen[f]; dup || !l.lex.IsNoun(f) {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

func detach(forms []string) []string {
	var out []string
	for _, f := range forms {
		for _, s := range nounSuffixes {
			if strings.HasSuffix(f, s.from) {
				out = append(out, strings.TrimSuffix(f, s.from)+s.to)
			}
		}
	}
	return out
}
