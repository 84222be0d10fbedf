package repl

import "errors"

// Sentinel errors.
var (
	ErrNoSubjects  = errors.New("no subject documents loaded")
	ErrOutOfBounds = errors.New("index out of range")
)
