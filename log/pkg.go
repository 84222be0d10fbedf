package log

import (
	"context"
	"os"
	"sync/atomic"
)

// defaultLogger is the process-wide logger used by the package-level
// functions. It starts out writing to stderr with default options.
var defaultLogger atomic.Pointer[Logger]

func init() {
	l := Make(os.Stderr)
	defaultLogger.Store(&l)
}

// Default returns the process-wide logger.
func Default() Logger {
	return *defaultLogger.Load()
}

// Config replaces the process-wide logger configuration. It returns the
// resulting logger for callers that want to hold it directly.
func Config(opts ...Option) Logger {
	l := Default().Wrap(opts...)
	defaultLogger.Store(&l)

	return l
}

// Trace logs at [LevelTrace] using the process-wide logger.
func Trace(msg string, args ...any) {
	Default().log(context.Background(), LevelTrace, msg, args...)
}

// Debug logs at [LevelDebug] using the process-wide logger.
func Debug(msg string, args ...any) {
	Default().log(context.Background(), LevelDebug, msg, args...)
}

// Info logs at [LevelInfo] using the process-wide logger.
func Info(msg string, args ...any) {
	Default().log(context.Background(), LevelInfo, msg, args...)
}

// Warn logs at [LevelWarn] using the process-wide logger.
func Warn(msg string, args ...any) {
	Default().log(context.Background(), LevelWarn, msg, args...)
}

// Error logs at [LevelError] using the process-wide logger.
func Error(msg string, args ...any) {
	Default().log(context.Background(), LevelError, msg, args...)
}

// TraceContext logs at [LevelTrace] with a context.
func TraceContext(ctx context.Context, msg string, args ...any) {
	Default().log(ctx, LevelTrace, msg, args...)
}

// DebugContext logs at [LevelDebug] with a context.
func DebugContext(ctx context.Context, msg string, args ...any) {
	Default().log(ctx, LevelDebug, msg, args...)
}

// InfoContext logs at [LevelInfo] with a context.
func InfoContext(ctx context.Context, msg string, args ...any) {
	Default().log(ctx, LevelInfo, msg, args...)
}

// WarnContext logs at [LevelWarn] with a context.
func WarnContext(ctx context.Context, msg string, args ...any) {
	Default().log(ctx, LevelWarn, msg, args...)
}

// ErrorContext logs at [LevelError] with a context.
func ErrorContext(ctx context.Context, msg string, args ...any) {
	Default().log(ctx, LevelError, msg, args...)
}
