/*
Package chatbot is a small rule-based chatbot for the command line.

Every operator line goes through a linear pipeline: the text is lowercased
and split into Treebank-style tokens, each token is reduced to its noun
lemma, the lemmas are joined back with single spaces and the result is
matched against an ordered table of (pattern, response) pairs. The first
pattern contained in the lookup string wins; otherwise a default response is
returned. There is no state between turns.

# Concept

The Bot glues two units together: a Normalizer (pkg/normalize) and a
Selector (pkg/selector). Both are interfaces (pkg/ports), so either can be
replaced. The interactive read-eval-print loop lives in pkg/runner and the
command line entry point in cmd/chatbot.

# Language Data

Lemmatization needs a WordNet noun index and exception list. New loads the
copy embedded in the binary; WithLexicon injects one loaded elsewhere (for
example a full WordNet dict directory via lemma.LoadLexicon(os.DirFS(dir))).
Missing data is a startup error: New fails and no turn can be answered.

# Usage

	package main

	import (
		"fmt"
		"log"

		chatbot "github.com/powerpig99/simple-chatbot"
	)

	func main() {
		bot, err := chatbot.New()
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(bot.Respond("Hello"))             // Hi there!
		fmt.Println(bot.Respond("how are you today")) // I'm doing great, thanks! How about you?
		fmt.Println(bot.Respond("xyz123 gibberish"))  // Sorry, I don't understand that. Try something else!
	}
*/
package chatbot
