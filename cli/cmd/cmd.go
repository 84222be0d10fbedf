// Package cmd implements the sift subcommands.
package cmd

import (
	"context"

	"github.com/alecthomas/kong"
)

// Kong interpolation variable identifiers shared by all commands.
const (
	ConfigIdentifier = "configPath"
	CacheIdentifier  = "cachePath"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given
// kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// subjectFilesKey stores the subject file paths given at the top level of
// the command line.
type subjectFilesKey struct{}

// WithSubjectFiles returns a new context.Context containing the subject
// document file paths shared by all commands.
func WithSubjectFiles(ctx context.Context, paths []string) context.Context {
	return context.WithValue(ctx, subjectFilesKey{}, paths)
}

// subjectFilesFrom retrieves the subject file paths stored in ctx by
// [WithSubjectFiles]. Returns nil if none were stored.
func subjectFilesFrom(ctx context.Context) []string {
	paths, _ := ctx.Value(subjectFilesKey{}).([]string)

	return paths
}
