package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// ANSI SGR sequences used by the pretty text handler.
const (
	ansiReset  = "\x1b[0m"
	ansiDim    = "\x1b[2m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
	ansiGray   = "\x1b[90m"
	ansiCyan   = "\x1b[36m"
)

// levelColor maps a record's level to its display color.
func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return ansiRed
	case level >= slog.LevelWarn:
		return ansiYellow
	case level >= slog.LevelInfo:
		return ansiBlue
	case level > levelTraceMask:
		return ansiGray
	default:
		return ansiCyan
	}
}

// prettyTextHandler renders records as colorized single-line text. It
// honors the same HandlerOptions contract as the stdlib handlers, including
// ReplaceAttr and minimum level.
type prettyTextHandler struct {
	opts  *slog.HandlerOptions
	mu    *sync.Mutex
	out   io.Writer
	attrs []slog.Attr
	group string
}

func newPrettyTextHandler(
	w io.Writer, opts *slog.HandlerOptions,
) *prettyTextHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	return &prettyTextHandler{opts: opts, mu: &sync.Mutex{}, out: w}
}

// Enabled implements [slog.Handler].
func (h *prettyTextHandler) Enabled(
	_ context.Context, level slog.Level,
) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

// WithAttrs implements [slog.Handler].
func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)

	return &clone
}

// WithGroup implements [slog.Handler].
func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	clone := *h

	if name != "" {
		if clone.group != "" {
			clone.group += "."
		}

		clone.group += name
	}

	return &clone
}

// Handle implements [slog.Handler].
func (h *prettyTextHandler) Handle(
	_ context.Context, r slog.Record,
) error {
	var sb strings.Builder

	if !r.Time.IsZero() {
		a := h.replace(slog.Time(slog.TimeKey, r.Time))
		if !a.Equal(slog.Attr{}) {
			sb.WriteString(ansiDim)
			sb.WriteString(a.Value.String())
			sb.WriteString(ansiReset)
			sb.WriteString(" ")
		}
	}

	level := h.replace(slog.Any(slog.LevelKey, r.Level))

	sb.WriteString(levelColor(r.Level))
	sb.WriteString(level.Value.String())
	sb.WriteString(ansiReset)
	sb.WriteString(" ")

	sb.WriteString(r.Message)

	for _, a := range h.attrs {
		h.appendAttr(&sb, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&sb, a)

		return true
	})

	sb.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := io.WriteString(h.out, sb.String())

	return err
}

// appendAttr writes one " key=value" pair, flattening groups.
func (h *prettyTextHandler) appendAttr(sb *strings.Builder, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		for _, g := range a.Value.Group() {
			if a.Key != "" {
				g.Key = a.Key + "." + g.Key
			}

			h.appendAttr(sb, g)
		}

		return
	}

	a = h.replace(a)
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if h.group != "" {
		key = h.group + "." + key
	}

	sb.WriteString(" ")
	sb.WriteString(ansiDim)
	sb.WriteString(key)
	sb.WriteString("=")
	sb.WriteString(ansiReset)
	sb.WriteString(quoteIfNeeded(a.Value))
}

// replace applies the configured ReplaceAttr hook, if any.
func (h *prettyTextHandler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(nil, a)
}

// quoteIfNeeded renders a value, quoting strings that contain whitespace or
// quote characters the way the stdlib text handler does.
func quoteIfNeeded(v slog.Value) string {
	s := fmt.Sprint(v.Any())

	if strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}

	return s
}
