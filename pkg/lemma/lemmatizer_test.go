package lemma_test

import (
	"testing"

	"github.com/powerpig99/simple-chatbot/pkg/lemma"
	"github.com/stretchr/testify/assert"
)

func testLexicon() *lemma.Lexicon {
	return lemma.NewLexicon(
		[]string{
			"a", "are", "box", "church", "city", "cat", "dish", "glass", "goose",
			"ha", "hello", "hi", "i", "knife", "leaf", "man", "mouse", "name",
			"today", "u", "wa", "wolf", "woman",
		},
		map[string][]string{
			"geese":  {"goose"},
			"knives": {"knife"},
			"mice":   {"mouse"},
			"oxen":   {"ox"},
		},
	)
}

func TestLemmatizer_Lemmatize(t *testing.T) {
	l := lemma.New(testLexicon())

	tests := []struct {
		name string
		word string
		want string
	}{
		{"Base Form", "hello", "hello"},
		{"Plain Plural", "cats", "cat"},
		{"Ses", "glasses", "glass"},
		{"Ves", "wolves", "wolf"},
		{"Xes", "boxes", "box"},
		{"Ches", "churches", "church"},
		{"Shes", "dishes", "dish"},
		{"Men", "women", "woman"},
		{"Ies", "cities", "city"},
		{"Exception", "geese", "goose"},
		{"Exception Through Rule Would Fail", "knives", "knife"},
		{"Exception Without Indexed Base", "oxen", "oxen"},
		{"Unknown Word", "gibberish", "gibberish"},
		{"Non Noun", "you", "you"},
		{"Punctuation", ".", "."},
		{"Empty", "", ""},
		{"Noun Reading Of Was", "was", "wa"},
		{"Noun Reading Of Has", "has", "ha"},
		{"Noun Reading Of Is", "is", "i"},
		{"Noun Reading Of Us", "us", "u"},
		{"Indexed Form Kept", "are", "are"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Lemmatize(tt.word))
		})
	}
}

func TestLemmatizer_ShortestCandidateWins(t *testing.T) {
	// "leaves" detaches to both "leave" (s) and "leaf" (ves); only indexed forms count.
	lex := lemma.NewLexicon([]string{"leave", "leaf"}, nil)
	l := lemma.New(lex)

	assert.Equal(t, []string{"leave", "leaf"}, l.Candidates("leaves"))
	assert.Equal(t, "leaf", l.Lemmatize("leaves"))
}

func TestLemmatizer_RepeatedDetachment(t *testing.T) {
	// "gass" -> "gas" is not indexed, so the rules run again: "gas" -> "ga".
	l := lemma.New(lemma.NewLexicon([]string{"ga"}, nil))

	assert.Equal(t, []string{"ga"}, l.Candidates("gass"))
	assert.Equal(t, "ga", l.Lemmatize("gass"))
}

func TestLemmatizer_Idempotent(t *testing.T) {
	l := lemma.New(testLexicon())
	for _, w := range []string{"cats", "women", "geese", "hello", "today", "you", "gibberish"} {
		once := l.Lemmatize(w)
		assert.Equal(t, once, l.Lemmatize(once), "lemmatizing %q twice", w)
	}
}
