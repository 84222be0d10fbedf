package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// ctrlCommands are the available control commands, entered with a leading
// colon.
var ctrlCommands = []string{"help", "bind", "values", "clear", "quit"}

// typeNames are the runtime type descriptor names usable as bound values.
var typeNames = []string{
	"number", "text", "bool", "symbol", "func", "list", "object",
}

// isWordBoundary returns true if the rune is a word delimiter for completion
// purposes: whitespace and expression operator/punctuation characters.
// Hyphens are excluded because symbols may contain them.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t',
		'(', ')', '{', '}',
		'<', '>', '=', '!',
		'&', '|', ',', ':', '@':
		return true
	}

	return false
}

// wordBounds returns the current word at the cursor position and its byte
// boundaries within input. Returns an empty word when the cursor sits on a
// boundary (after a space, start of line, etc.).
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	// Walk backward from cursor to find word start.
	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	// Walk forward from cursor to find word end.
	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// candidates returns the completion candidate list for the given input. A
// control line completes against command names, an expression line against
// type descriptor names.
func candidates(input string) []string {
	if strings.HasPrefix(input, ":") {
		return ctrlCommands
	}

	return typeNames
}

// matchWord ranks the candidate list against the current word. An empty
// word matches nothing so completions never appear unprompted.
func matchWord(word string, list []string) fuzzy.Matches {
	if word == "" {
		return nil
	}

	return fuzzy.Find(word, list)
}
