package lang

import (
	"context"
	"log/slog"

	"github.com/ardnew/sift/log"
)

// compiler carries the state of one compilation call. Nothing outlives the
// call except the returned predicate and the values it captured.
type compiler struct {
	source string
	values []any
	logger log.Logger
}

// Option configures compilation behavior.
type Option func(*compiler)

// WithValues appends embedded values resolved by placeholder ordinals in
// appearance order.
func WithValues(values ...any) Option {
	return func(c *compiler) {
		c.values = append(c.values, values...)
	}
}

// WithLogger sets the structured logger for trace-level compile
// diagnostics. If not provided, the logger is zero-valued and all logging
// is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(c *compiler) {
		c.logger = logger
	}
}

// Compile compiles an expression into a single reusable predicate.
//
// The source mixes literal operator syntax with '@' placeholder markers.
// A bare '@' refers to the next embedded value by appearance order; '@N'
// refers to the value at ordinal N. Values are supplied with [WithValues].
//
// Compilation is a pure function of its input: it either returns a
// predicate or fails immediately with an error wrapping one of the
// sentinels [ErrLexical], [ErrSyntax], [ErrPlaceholder], [ErrBound], or
// [ErrClassify].
func Compile(
	ctx context.Context,
	source string,
	opts ...Option,
) (Predicate, error) {
	c := compiler{source: source}

	for _, opt := range opts {
		opt(&c)
	}

	return c.compile(ctx)
}

// CompileSegments compiles an expression assembled from interleaved text
// fragments and embedded values, preserving appearance order so ordinal
// references resolve correctly.
func CompileSegments(
	ctx context.Context,
	segments []Segment,
	opts ...Option,
) (Predicate, error) {
	source, values := interleave(segments)

	c := compiler{source: source, values: values}

	for _, opt := range opts {
		opt(&c)
	}

	return c.compile(ctx)
}

// compile runs the lex, parse, and reduce stages in order.
func (c *compiler) compile(ctx context.Context) (Predicate, error) {
	toks, err := scan(c.source)
	if err != nil {
		return nil, err
	}

	c.logger.TraceContext(ctx, "scan complete",
		slog.Int("token_count", len(toks)))

	tree, err := parse(c.source, toks, c.values)
	if err != nil {
		return nil, err
	}

	c.logger.TraceContext(ctx, "parse complete")

	pred, err := c.reduce(tree)
	if err != nil {
		return nil, err
	}

	c.logger.TraceContext(ctx, "reduce complete")

	return pred, nil
}

// Parse compiles only as far as the expression tree, for inspection by
// callers that want to render or analyze the structure without producing a
// predicate.
func Parse(
	ctx context.Context,
	source string,
	opts ...Option,
) (Node, error) {
	c := compiler{source: source}

	for _, opt := range opts {
		opt(&c)
	}

	toks, err := scan(c.source)
	if err != nil {
		return nil, err
	}

	c.logger.TraceContext(ctx, "scan complete",
		slog.Int("token_count", len(toks)))

	return parse(c.source, toks, c.values)
}
