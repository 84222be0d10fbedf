package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values). Every compilation failure wraps one
// of these, so callers can branch on the failure class with errors.Is.
var (
	ErrLexical     = NewError("unrecognized input")
	ErrSyntax      = NewError("syntax error")
	ErrPlaceholder = NewError("placeholder out of range")
	ErrBound       = NewError("comparison bound is not a number")
	ErrClassify    = NewError("unclassifiable embedded value")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the same sentinel this error was derived
// from. Derived errors share the sentinel's message but not its identity,
// so message equality stands in for pointer equality.
func (e *Error) Is(target error) bool {
	te := &Error{}
	if !errors.As(target, &te) {
		return false
	}

	return e.msg == te.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// At attaches the failing source position along with a caret snippet
// pointing at it.
func (e *Error) At(source string, pos int) *Error {
	return e.With(
		slog.Int("pos", pos),
		slog.String("snippet", caret(source, pos)),
	)
}

// caret renders a single-line source excerpt with a marker under the
// offending position.
func caret(source string, pos int) string {
	if pos > len(source) {
		pos = len(source)
	}

	// Isolate the line containing pos; expressions are typically one line,
	// but embedded newlines must not smear the marker.
	start := strings.LastIndexByte(source[:pos], '\n') + 1

	end := strings.IndexByte(source[pos:], '\n')
	if end < 0 {
		end = len(source)
	} else {
		end += pos
	}

	var buf strings.Builder

	buf.WriteString("at offset ")
	buf.WriteString(strconv.Itoa(pos))
	buf.WriteString(":\n  | ")
	buf.WriteString(source[start:end])
	buf.WriteString("\n  | ")
	buf.WriteString(strings.Repeat(" ", pos-start))
	buf.WriteString("^")

	return buf.String()
}
