// Package log wraps [log/slog] with a trace level below debug, functional
// configuration options, and an optional colorized text handler.
package log

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// Logger is a leveled, structured logger. The zero value discards all
// messages, so a Logger may be embedded and used unconditionally.
type Logger struct {
	slog *slog.Logger
	cfg  config
}

// Make creates a Logger writing to w with the given options applied over
// defaults.
func Make(w io.Writer, opts ...Option) Logger {
	cfg := makeConfig(w, opts...)

	return Logger{slog: slog.New(cfg.handler()), cfg: cfg}
}

// Wrap returns a copy of the Logger with additional options applied. The
// receiver is unmodified.
func (l Logger) Wrap(opts ...Option) Logger {
	if l.slog == nil {
		return Make(nil, opts...)
	}

	cfg := apply(l.cfg, opts...)

	return Logger{slog: slog.New(cfg.handler()), cfg: cfg}
}

// With returns a Logger that includes the given attributes in every message.
func (l Logger) With(args ...any) Logger {
	if l.slog == nil {
		return l
	}

	return Logger{slog: l.slog.With(args...), cfg: l.cfg}
}

// Enabled reports whether the Logger emits messages at the given level.
func (l Logger) Enabled(ctx context.Context, level Level) bool {
	if l.slog == nil {
		return false
	}

	return l.slog.Enabled(ctx, slog.Level(level))
}

// log emits a single record, capturing the caller's program counter so that
// AddSource attributes the message to the caller rather than this package.
func (l Logger) log(
	ctx context.Context, level Level, msg string, args ...any,
) {
	if l.slog == nil || !l.slog.Enabled(ctx, slog.Level(level)) {
		return
	}

	var pcs [1]uintptr

	// Skip runtime.Callers, log, and the exported wrapper.
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pcs[0])
	r.Add(args...)

	_ = l.slog.Handler().Handle(ctx, r)
}

// Trace logs at [LevelTrace].
func (l Logger) Trace(msg string, args ...any) {
	l.log(context.Background(), LevelTrace, msg, args...)
}

// Debug logs at [LevelDebug].
func (l Logger) Debug(msg string, args ...any) {
	l.log(context.Background(), LevelDebug, msg, args...)
}

// Info logs at [LevelInfo].
func (l Logger) Info(msg string, args ...any) {
	l.log(context.Background(), LevelInfo, msg, args...)
}

// Warn logs at [LevelWarn].
func (l Logger) Warn(msg string, args ...any) {
	l.log(context.Background(), LevelWarn, msg, args...)
}

// Error logs at [LevelError].
func (l Logger) Error(msg string, args ...any) {
	l.log(context.Background(), LevelError, msg, args...)
}

// TraceContext logs at [LevelTrace] with a context.
func (l Logger) TraceContext(
	ctx context.Context, msg string, args ...any,
) {
	l.log(ctx, LevelTrace, msg, args...)
}

// DebugContext logs at [LevelDebug] with a context.
func (l Logger) DebugContext(
	ctx context.Context, msg string, args ...any,
) {
	l.log(ctx, LevelDebug, msg, args...)
}

// InfoContext logs at [LevelInfo] with a context.
func (l Logger) InfoContext(
	ctx context.Context, msg string, args ...any,
) {
	l.log(ctx, LevelInfo, msg, args...)
}

// WarnContext logs at [LevelWarn] with a context.
func (l Logger) WarnContext(
	ctx context.Context, msg string, args ...any,
) {
	l.log(ctx, LevelWarn, msg, args...)
}

// ErrorContext logs at [LevelError] with a context.
func (l Logger) ErrorContext(
	ctx context.Context, msg string, args ...any,
) {
	l.log(ctx, LevelError, msg, args...)
}
