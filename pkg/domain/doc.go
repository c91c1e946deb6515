/*
Package domain contains the core models of the chatbot.

It defines the immutable pattern table that drives response selection, the
transient token sequence produced for every input line, the reply produced
for a turn and the two-state lifecycle of the interaction loop. The package
is pure: no I/O, no logging and no third-party dependencies.

# Key Entities

  - PatternTable: ordered (pattern, response) pairs plus a default response.
  - Tokens: the normalized words of a single input line.
  - Reply: the response chosen for a turn and which pattern produced it.
  - LoopState: RUNNING or TERMINATED.
*/
package domain
