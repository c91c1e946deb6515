package domain

import "errors"

// ErrNoDefault is returned when a pattern table is built without a default response.
var ErrNoDefault = errors.New("pattern table has no default response")

// ErrEmptyPattern is returned when a pattern table entry has an empty pattern.
// An empty pattern is a substring of every input and would shadow the rest of the table.
var ErrEmptyPattern = errors.New("pattern must not be empty")
