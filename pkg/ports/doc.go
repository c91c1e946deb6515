/*
Package ports defines the interfaces between the chatbot's collaborating units.

These interfaces decouple the interaction loop from how text is normalized
and how responses are chosen, so each unit can be replaced or tested alone.

# Key Interfaces

  - Normalizer: turns a raw line into lemmatized tokens.
  - Selector: picks a response for a token sequence.
  - Responder: runs a whole turn (normalize, then select).
*/
package ports
