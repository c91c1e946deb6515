package ports

import "github.com/powerpig99/simple-chatbot/pkg/domain"

// Normalizer converts a raw input line into normalized tokens.
// It never fails; input without words yields an empty sequence.
type Normalizer interface {
	Normalize(input string) domain.Tokens
}

// Selector picks a response for a token sequence.
type Selector interface {
	// Match returns exactly one reply for tokens, falling back to the default response.
	Match(tokens domain.Tokens) domain.Reply
}

// Responder answers one operator line.
type Responder interface {
	Reply(input string) domain.Reply
}
